// Package kernel provides the shared value objects of the restaurant domain:
// UUID identities and Money amounts.
//
// Both types are immutable and validated at construction. UUID wraps
// github.com/google/uuid; Money wraps github.com/shopspring/decimal and fixes
// the currency precision at two fractional digits with a single rounding rule
// (round half up) applied everywhere amounts are computed, so per-line totals
// and order subtotals can never drift apart.
package kernel
