package commands

import (
	"context"
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

// ErrRemoveCustomerCommandIsNotConstructed is returned when a
// RemoveCustomerCommand was not created via NewRemoveCustomerCommand.
var ErrRemoveCustomerCommandIsNotConstructed = errors.New(
	"RemoveCustomerCommand must be created via NewRemoveCustomerCommand constructor",
)

// RemoveCustomerCommand soft deletes a customer. Their order history keeps
// its customer reference.
type RemoveCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveCustomerCommand creates a command to remove a customer.
func NewRemoveCustomerCommand(customerID kernel.UUID) (RemoveCustomerCommand, error) {
	cmd := RemoveCustomerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := customerID.Validate(); err != nil {
		return RemoveCustomerCommand{}, err
	}

	cmd.customerID = customerID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveCustomerCommand) Validate() error {
	return c.guard.Validate(ErrRemoveCustomerCommandIsNotConstructed)
}

// CustomerID returns the identity of the customer to remove.
func (c RemoveCustomerCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// RemoveCustomerCommandHandler handles customer removal.
type RemoveCustomerCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewRemoveCustomerCommandHandler creates a handler for customer removal.
func NewRemoveCustomerCommandHandler(uowFactory CatalogUoWFactory) RemoveCustomerCommandHandler {
	return RemoveCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle soft deletes the customer.
func (h *RemoveCustomerCommandHandler) Handle(ctx context.Context, cmd RemoveCustomerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	customerRepo := uow.CustomerRepository()
	if _, err := customerRepo.Get(ctx, cmd.CustomerID()); err != nil {
		return err
	}

	if err := customerRepo.Remove(ctx, cmd.CustomerID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
