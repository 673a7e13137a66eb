package commands

import (
	"errors"
	"fmt"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

// ErrItemInputIsNotConstructed is returned when an ItemInput was not created
// via NewItemInput.
var ErrItemInputIsNotConstructed = errors.New("ItemInput must be created via NewItemInput constructor")

// ItemInput is one requested order line: which menu item, how many, and any
// per-line instructions. Prices are never accepted from callers; the handler
// snapshots them from the menu inside the transaction.
type ItemInput struct { //nolint:recvcheck //using for validation
	menuItemID          kernel.UUID
	quantity            int
	specialInstructions *string

	guard guard.ConstructorGuard
}

// NewItemInput creates a validated order line request.
func NewItemInput(menuItemID kernel.UUID, quantity int, specialInstructions *string) (ItemInput, error) {
	input := ItemInput{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		input.setMenuItemID(menuItemID),
		input.setQuantity(quantity),
	); err != nil {
		return ItemInput{}, err
	}

	input.specialInstructions = specialInstructions
	return input, nil
}

// Validate ensures the input was created through the constructor.
func (i ItemInput) Validate() error {
	return i.guard.Validate(ErrItemInputIsNotConstructed)
}

// MenuItemID returns the referenced menu item identifier.
func (i ItemInput) MenuItemID() kernel.UUID {
	return i.menuItemID
}

// Quantity returns the requested quantity.
func (i ItemInput) Quantity() int {
	return i.quantity
}

// SpecialInstructions returns the optional per-line instructions.
func (i ItemInput) SpecialInstructions() *string {
	return i.specialInstructions
}

func (i *ItemInput) setMenuItemID(menuItemID kernel.UUID) error {
	if err := menuItemID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("menuItemId", err)
	}

	i.menuItemID = menuItemID
	return nil
}

func (i *ItemInput) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is less than 1", quantity))
	}

	i.quantity = quantity
	return nil
}

func validateItemInputs(items []ItemInput) error {
	if len(items) == 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"items", errors.New("order must contain at least one item"))
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	return nil
}
