package order

import (
	"fmt"

	"restaurant/internal/pkg/errs"
)

// Type distinguishes how an order is fulfilled.
type Type int

const (
	// TypeUnknown is the invalid zero value.
	TypeUnknown Type = iota

	// TypeDineIn is an order served at a table.
	TypeDineIn

	// TypeTakeaway is an order picked up by the guest.
	TypeTakeaway

	// TypeDelivery is an order delivered to the guest.
	TypeDelivery
)

func typeStrings() map[Type]string {
	return map[Type]string{
		TypeDineIn:   "dine_in",
		TypeTakeaway: "takeaway",
		TypeDelivery: "delivery",
	}
}

// ParseType converts the wire representation ("dine_in", "takeaway",
// "delivery") into a Type.
func ParseType(s string) (Type, error) {
	for t, str := range typeStrings() {
		if str == s {
			return t, nil
		}
	}
	return TypeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"order type", fmt.Errorf("%q is not a valid order type", s))
}

// Validate rejects TypeUnknown and any out-of-range value.
func (t Type) Validate() error {
	if _, ok := typeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"order type", fmt.Errorf("%d is not a valid order type", t))
	}
	return nil
}

// String returns the wire representation of the type.
func (t Type) String() string {
	if str, ok := typeStrings()[t]; ok {
		return str
	}
	return "unknown"
}
