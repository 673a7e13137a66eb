package order

import (
	"errors"
	"fmt"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrItemsAreImmutable is returned when the item list is changed after
	// the order has left the pending state.
	ErrItemsAreImmutable = errors.New("order items cannot be changed once the order has left the pending state")
)

// Order is the aggregate root of the order lifecycle. It owns its items, its
// money totals, and its references to customer, table, and serving staff.
//
// Invariants:
//   - At least one item at all times
//   - subtotal equals the sum of the items' total prices
//   - total equals subtotal plus tax plus tip
//   - orderNumber is assigned at creation and immutable
//   - status changes follow the Status state machine
//   - items are frozen once status leaves pending
type Order struct {
	id                  kernel.UUID
	number              string
	status              Status
	orderType           Type
	customerID          *kernel.UUID
	tableID             *kernel.UUID
	serverID            *kernel.UUID
	items               []*Item
	subtotal            kernel.Money
	tax                 kernel.Money
	tip                 kernel.Money
	total               kernel.Money
	specialInstructions *string
	orderTime           *time.Time
	servedTime          *time.Time

	// restoredStatus is the status read from persistence, used by the
	// repository's optimistic concurrency predicate. Zero for new orders.
	restoredStatus Status

	isConstructed bool
}

// NewOrder creates a pending order from already-priced items. The caller (the
// create-order command handler) has resolved every reference and priced every
// line; the constructor enforces the aggregate's structural invariants and
// derives subtotal and total.
func NewOrder(
	id kernel.UUID,
	number string,
	orderType Type,
	customerID, tableID, serverID *kernel.UUID,
	items []*Item,
	tax, tip kernel.Money,
	specialInstructions *string,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:        StatusPending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setType(orderType),
		o.setCustomerID(customerID),
		o.setTableID(tableID),
		o.setServerID(serverID),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	o.tax = tax
	o.tip = tip
	o.specialInstructions = specialInstructions
	o.orderTime = &now
	o.recalculateTotals()
	return o, nil
}

// RestoreOrder reconstructs an order aggregate from persistence, including
// its lifecycle state and timestamps. The restored status is remembered for
// the repository's optimistic concurrency check.
func RestoreOrder(
	id kernel.UUID,
	number string,
	status Status,
	orderType Type,
	customerID, tableID, serverID *kernel.UUID,
	items []*Item,
	tax, tip kernel.Money,
	specialInstructions *string,
	orderTime, servedTime *time.Time,
) (*Order, error) {
	o, err := NewOrder(id, number, orderType, customerID, tableID, serverID,
		items, tax, tip, specialInstructions, time.Time{})
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}

	o.status = status
	o.restoredStatus = status
	o.orderTime = orderTime
	o.servedTime = servedTime
	return o, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the internal order identity.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Number returns the human-presentable order number printed on receipts.
// It is distinct from the internal identity and never changes.
func (o *Order) Number() string {
	return o.number
}

// Status returns the current lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// RestoredStatus returns the status the aggregate carried when it was read
// from persistence. Used as the optimistic concurrency predicate on update.
func (o *Order) RestoredStatus() Status {
	return o.restoredStatus
}

// OrderType returns the fulfilment type.
func (o *Order) OrderType() Type {
	return o.orderType
}

// CustomerID returns the optional customer reference.
func (o *Order) CustomerID() *kernel.UUID {
	return o.customerID
}

// TableID returns the optional table reference.
func (o *Order) TableID() *kernel.UUID {
	return o.tableID
}

// ServerID returns the optional serving staff reference.
func (o *Order) ServerID() *kernel.UUID {
	return o.serverID
}

// Items returns the order lines in their original order.
func (o *Order) Items() []*Item {
	return o.items
}

// Subtotal returns the sum of all item totals.
func (o *Order) Subtotal() kernel.Money {
	return o.subtotal
}

// Tax returns the tax amount (0.00 unless supplied).
func (o *Order) Tax() kernel.Money {
	return o.tax
}

// Tip returns the tip amount (0.00 unless supplied).
func (o *Order) Tip() kernel.Money {
	return o.tip
}

// Total returns subtotal plus tax plus tip.
func (o *Order) Total() kernel.Money {
	return o.total
}

// SpecialInstructions returns the optional order-level instructions.
func (o *Order) SpecialInstructions() *string {
	return o.specialInstructions
}

// OrderTime returns when the order was placed.
func (o *Order) OrderTime() *time.Time {
	return o.orderTime
}

// ServedTime returns when the order entered the served state, if it has.
func (o *Order) ServedTime() *time.Time {
	return o.servedTime
}

// ChangeStatus moves the order through its lifecycle. Illegal moves are
// rejected with a StatusTransitionError. Entering the served state records
// the served time; re-applying the current status is a no-op and does not
// touch timestamps.
func (o *Order) ChangeStatus(to Status, now time.Time) error {
	if o.status == to {
		return o.status.CanTransitionTo(to)
	}

	newStatus, err := o.status.TransitionTo(to)
	if err != nil {
		return err
	}

	if newStatus == StatusServed {
		o.servedTime = &now
	}
	o.status = newStatus
	return nil
}

// AssignCustomer sets or clears the customer reference. The caller must have
// resolved a non-nil reference to an existing active customer.
func (o *Order) AssignCustomer(customerID *kernel.UUID) error {
	return o.setCustomerID(customerID)
}

// AssignTable sets or clears the table reference.
func (o *Order) AssignTable(tableID *kernel.UUID) error {
	return o.setTableID(tableID)
}

// AssignServer sets or clears the serving staff reference.
func (o *Order) AssignServer(serverID *kernel.UUID) error {
	return o.setServerID(serverID)
}

// UpdateInstructions sets or clears the order-level special instructions.
func (o *Order) UpdateInstructions(instructions *string) {
	o.specialInstructions = instructions
}

// SetCharges replaces tax and tip and re-derives the total.
func (o *Order) SetCharges(tax, tip kernel.Money) {
	o.tax = tax
	o.tip = tip
	o.recalculateTotals()
}

// ReplaceItems swaps the entire item list and re-derives the totals. Only
// legal while the order is still pending.
func (o *Order) ReplaceItems(items []*Item) error {
	if o.status != StatusPending {
		return ErrItemsAreImmutable
	}

	if err := o.setItems(items); err != nil {
		return err
	}
	o.recalculateTotals()
	return nil
}

// recalculateTotals re-derives subtotal and total from the current items and
// charges. Called by every mutation that can change money amounts so the
// aggregate can never be observed with stale totals.
func (o *Order) recalculateTotals() {
	subtotal := kernel.ZeroMoney()
	for _, item := range o.items {
		subtotal = subtotal.Add(item.TotalPrice())
	}
	o.subtotal = subtotal
	o.total = subtotal.Add(o.tax).Add(o.tip)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	o.number = number
	return nil
}

func (o *Order) setType(orderType Type) error {
	if err := orderType.Validate(); err != nil {
		return err
	}
	o.orderType = orderType
	return nil
}

func (o *Order) setCustomerID(id *kernel.UUID) error {
	if id != nil {
		if err := id.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("customerId", err)
		}
	}
	o.customerID = id
	return nil
}

func (o *Order) setTableID(id *kernel.UUID) error {
	if id != nil {
		if err := id.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("tableId", err)
		}
	}
	o.tableID = id
	return nil
}

func (o *Order) setServerID(id *kernel.UUID) error {
	if id != nil {
		if err := id.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("serverId", err)
		}
	}
	o.serverID = id
	return nil
}

func (o *Order) setItems(items []*Item) error {
	if len(items) == 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"items", fmt.Errorf("order must contain at least one item"))
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = items
	return nil
}
