package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

// ErrUpdateOrderCommandIsNotConstructed is returned when an UpdateOrderCommand
// was not created via NewUpdateOrderCommand.
var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// OrderPatch carries the fields an update request supplied. Unset fields
// leave the order untouched; a set reference field holding nil clears that
// reference. Order number and order type are immutable and have no patch
// fields.
type OrderPatch struct {
	Status              Field[order.Status]
	CustomerID          Field[*kernel.UUID]
	TableID             Field[*kernel.UUID]
	ServerID            Field[*kernel.UUID]
	Items               Field[[]ItemInput]
	Tax                 Field[kernel.Money]
	Tip                 Field[kernel.Money]
	SpecialInstructions Field[*string]
}

// UpdateOrderCommand represents a partial update of an existing order.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	patch   OrderPatch

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to patch an order. Supplied fields
// are validated structurally here; lifecycle rules (status machine, item
// immutability) and reference existence are enforced by the handler against
// the current aggregate state.
func NewUpdateOrderCommand(orderID kernel.UUID, patch OrderPatch) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setPatch(patch),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the identity of the order to patch.
func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Patch returns the supplied fields.
func (c UpdateOrderCommand) Patch() OrderPatch {
	return c.patch
}

func (c *UpdateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setPatch(patch OrderPatch) error {
	if patch.Status.IsSet() {
		if err := patch.Status.Value().Validate(); err != nil {
			return err
		}
	}
	if err := errors.Join(
		validatePatchRef("customerId", patch.CustomerID),
		validatePatchRef("tableId", patch.TableID),
		validatePatchRef("serverId", patch.ServerID),
	); err != nil {
		return err
	}
	if patch.Items.IsSet() {
		if err := validateItemInputs(patch.Items.Value()); err != nil {
			return err
		}
	}

	c.patch = patch
	return nil
}

func validatePatchRef(name string, field Field[*kernel.UUID]) error {
	if !field.IsSet() || field.Value() == nil {
		return nil
	}
	if err := field.Value().Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return nil
}
