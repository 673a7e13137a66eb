// Package order provides the order aggregate of the restaurant domain: an
// Order together with its full set of order items, treated as one atomic unit
// for creation, mutation, and cascade deletion.
//
// The package includes:
//   - Order: the aggregate root owning money totals, references, and items
//   - Item: an order line with a snapshot of the menu item price at order time
//   - Status: a state machine enforcing the order lifecycle
//   - Type: dine-in, takeaway, or delivery
//
// Key business rules:
//   - An order always contains at least one item
//   - Item totalPrice is exactly unitPrice times quantity
//   - Order subtotal equals the sum of its items' totals; total adds tax and tip
//   - Status moves strictly forward along pending, confirmed, preparing,
//     ready, served, completed; cancelled is reachable from any non-terminal
//     state; completed and cancelled are terminal
//   - Items are frozen once the order leaves the pending state
//   - The order number is assigned once at creation and never changes
package order
