package commands

import (
	"context"
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

// ErrRemoveTableCommandIsNotConstructed is returned when a
// RemoveTableCommand was not created via NewRemoveTableCommand.
var ErrRemoveTableCommandIsNotConstructed = errors.New(
	"RemoveTableCommand must be created via NewRemoveTableCommand constructor",
)

// RemoveTableCommand soft deletes a table. Existing orders keep their table
// reference; the table just stops resolving for new assignments.
type RemoveTableCommand struct { //nolint:recvcheck //using for validation
	tableID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveTableCommand creates a command to remove a table.
func NewRemoveTableCommand(tableID kernel.UUID) (RemoveTableCommand, error) {
	cmd := RemoveTableCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := tableID.Validate(); err != nil {
		return RemoveTableCommand{}, err
	}

	cmd.tableID = tableID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveTableCommand) Validate() error {
	return c.guard.Validate(ErrRemoveTableCommandIsNotConstructed)
}

// TableID returns the identity of the table to remove.
func (c RemoveTableCommand) TableID() kernel.UUID {
	return c.tableID
}

// RemoveTableCommandHandler handles table removal.
type RemoveTableCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewRemoveTableCommandHandler creates a handler for table removal.
func NewRemoveTableCommandHandler(uowFactory CatalogUoWFactory) RemoveTableCommandHandler {
	return RemoveTableCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle soft deletes the table.
func (h *RemoveTableCommandHandler) Handle(ctx context.Context, cmd RemoveTableCommand) error {
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

	tableRepo := uow.TableRepository()
	if _, err := tableRepo.Get(ctx, cmd.TableID()); err != nil {
		return err
	}

	if err := tableRepo.Remove(ctx, cmd.TableID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
