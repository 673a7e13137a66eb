package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

// ErrCreateOrderCommandIsNotConstructed is returned when a CreateOrderCommand
// was not created via NewCreateOrderCommand.
var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to place a new order. The customer,
// table, and server references are optional; prices are not accepted from the
// caller and are snapshotted from the menu by the handler. Tax and tip are
// optional and default to zero.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID             kernel.UUID
	orderType           order.Type
	customerID          *kernel.UUID
	tableID             *kernel.UUID
	serverID            *kernel.UUID
	items               []ItemInput
	tax                 kernel.Money
	tip                 kernel.Money
	specialInstructions *string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place an order. It validates the
// order identity, fulfilment type, and every requested line; reference
// existence is checked later, inside the handler's transaction. Nil tax or
// tip means zero.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	orderType order.Type,
	customerID, tableID, serverID *kernel.UUID,
	items []ItemInput,
	tax, tip *kernel.Money,
	specialInstructions *string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		tax:   kernel.ZeroMoney(),
		tip:   kernel.ZeroMoney(),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setOrderType(orderType),
		cmd.setOptionalRef("customerId", customerID, &cmd.customerID),
		cmd.setOptionalRef("tableId", tableID, &cmd.tableID),
		cmd.setOptionalRef("serverId", serverID, &cmd.serverID),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	if tax != nil {
		cmd.tax = *tax
	}
	if tip != nil {
		cmd.tip = *tip
	}
	cmd.specialInstructions = specialInstructions
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identity the new order will carry.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// OrderType returns the fulfilment type.
func (c CreateOrderCommand) OrderType() order.Type {
	return c.orderType
}

// CustomerID returns the optional customer reference.
func (c CreateOrderCommand) CustomerID() *kernel.UUID {
	return c.customerID
}

// TableID returns the optional table reference.
func (c CreateOrderCommand) TableID() *kernel.UUID {
	return c.tableID
}

// ServerID returns the optional serving staff reference.
func (c CreateOrderCommand) ServerID() *kernel.UUID {
	return c.serverID
}

// Items returns the requested order lines.
func (c CreateOrderCommand) Items() []ItemInput {
	return c.items
}

// Tax returns the tax amount, zero unless supplied.
func (c CreateOrderCommand) Tax() kernel.Money {
	return c.tax
}

// Tip returns the tip amount, zero unless supplied.
func (c CreateOrderCommand) Tip() kernel.Money {
	return c.tip
}

// SpecialInstructions returns the optional order-level instructions.
func (c CreateOrderCommand) SpecialInstructions() *string {
	return c.specialInstructions
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setOrderType(orderType order.Type) error {
	if err := orderType.Validate(); err != nil {
		return err
	}

	c.orderType = orderType
	return nil
}

func (c *CreateOrderCommand) setOptionalRef(name string, id *kernel.UUID, target **kernel.UUID) error {
	if id != nil {
		if err := id.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(name, err)
		}
	}

	*target = id
	return nil
}

func (c *CreateOrderCommand) setItems(items []ItemInput) error {
	if err := validateItemInputs(items); err != nil {
		return err
	}

	c.items = items
	return nil
}
