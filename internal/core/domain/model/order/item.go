package order

import (
	"errors"
	"fmt"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through NewItem or RestoreItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is one line of an order. Its unit price is a snapshot of the menu
// item's price at order time, never a live reference, so later menu price
// changes cannot retroactively alter the order.
//
// Items exist only inside their Order aggregate: they are created, replaced,
// and soft-deleted exclusively through order operations.
type Item struct {
	id                  kernel.UUID
	menuItemID          kernel.UUID
	quantity            int
	unitPrice           kernel.Money
	totalPrice          kernel.Money
	specialInstructions *string

	isConstructed bool
}

// NewItem creates an order line. Quantity must be at least 1; totalPrice is
// derived as unitPrice times quantity and cannot be supplied.
func NewItem(
	id kernel.UUID,
	menuItemID kernel.UUID,
	quantity int,
	unitPrice kernel.Money,
	specialInstructions *string,
) (*Item, error) {
	item := &Item{
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setMenuItemID(menuItemID),
		item.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	item.unitPrice = unitPrice
	item.totalPrice = unitPrice.MulQuantity(quantity)
	item.specialInstructions = specialInstructions
	return item, nil
}

// RestoreItem reconstructs an order line from persistence and verifies the
// stored total still equals unitPrice times quantity.
func RestoreItem(
	id kernel.UUID,
	menuItemID kernel.UUID,
	quantity int,
	unitPrice kernel.Money,
	totalPrice kernel.Money,
	specialInstructions *string,
) (*Item, error) {
	item, err := NewItem(id, menuItemID, quantity, unitPrice, specialInstructions)
	if err != nil {
		return nil, err
	}

	if !item.totalPrice.IsEqual(totalPrice) {
		return nil, errs.NewValueIsInvalidErrorWithCause("totalPrice",
			fmt.Errorf("stored total %s does not equal %s x %d", totalPrice, unitPrice, quantity))
	}
	return item, nil
}

// Validate ensures the Item was created through a constructor.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the line identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// MenuItemID returns the identifier of the menu item this line represents.
func (i *Item) MenuItemID() kernel.UUID {
	return i.menuItemID
}

// Quantity returns the ordered quantity.
func (i *Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price snapshot taken at order time.
func (i *Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// TotalPrice returns unitPrice times quantity at the stored precision.
func (i *Item) TotalPrice() kernel.Money {
	return i.totalPrice
}

// SpecialInstructions returns the optional per-line instructions.
func (i *Item) SpecialInstructions() *string {
	return i.specialInstructions
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setMenuItemID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("menuItemId", err)
	}
	i.menuItemID = id
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is less than 1", quantity))
	}
	i.quantity = quantity
	return nil
}
