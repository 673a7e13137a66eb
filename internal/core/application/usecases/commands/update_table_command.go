package commands

import (
	"context"
	"errors"

	"restaurant/internal/core/domain/model/dining"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

// ErrUpdateTableCommandIsNotConstructed is returned when an
// UpdateTableCommand was not created via NewUpdateTableCommand.
var ErrUpdateTableCommandIsNotConstructed = errors.New(
	"UpdateTableCommand must be created via NewUpdateTableCommand constructor",
)

// UpdateTableCommand replaces a table's details, occupancy status, and
// active flag.
type UpdateTableCommand struct { //nolint:recvcheck //using for validation
	tableID  kernel.UUID
	number   string
	capacity int
	status   dining.TableStatus
	location *string
	isActive bool

	guard guard.ConstructorGuard
}

// NewUpdateTableCommand creates a command to update a table.
func NewUpdateTableCommand(
	tableID kernel.UUID,
	number string,
	capacity int,
	status dining.TableStatus,
	location *string,
	isActive bool,
) (UpdateTableCommand, error) {
	cmd := UpdateTableCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		tableID.Validate(),
		status.Validate(),
	); err != nil {
		return UpdateTableCommand{}, err
	}

	cmd.tableID = tableID
	cmd.number = number
	cmd.capacity = capacity
	cmd.status = status
	cmd.location = location
	cmd.isActive = isActive
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateTableCommand) Validate() error {
	return c.guard.Validate(ErrUpdateTableCommandIsNotConstructed)
}

// TableID returns the identity of the table to update.
func (c UpdateTableCommand) TableID() kernel.UUID {
	return c.tableID
}

// Number returns the new table label.
func (c UpdateTableCommand) Number() string {
	return c.number
}

// Capacity returns the new seat count.
func (c UpdateTableCommand) Capacity() int {
	return c.capacity
}

// Status returns the new occupancy status.
func (c UpdateTableCommand) Status() dining.TableStatus {
	return c.status
}

// Location returns the new optional location label.
func (c UpdateTableCommand) Location() *string {
	return c.location
}

// IsActive returns the new active flag.
func (c UpdateTableCommand) IsActive() bool {
	return c.isActive
}

// UpdateTableCommandHandler handles table updates.
type UpdateTableCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewUpdateTableCommandHandler creates a handler for table updates.
func NewUpdateTableCommandHandler(uowFactory CatalogUoWFactory) UpdateTableCommandHandler {
	return UpdateTableCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the table, applies the new details, and persists it.
func (h *UpdateTableCommandHandler) Handle(ctx context.Context, cmd UpdateTableCommand) (*dining.Table, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	tableRepo := uow.TableRepository()
	table, err := tableRepo.Get(ctx, cmd.TableID())
	if err != nil {
		return nil, err
	}

	if err = table.UpdateDetails(cmd.Number(), cmd.Capacity(), cmd.Location()); err != nil {
		return nil, err
	}
	if err = table.ChangeStatus(cmd.Status()); err != nil {
		return nil, err
	}
	if cmd.IsActive() {
		table.Activate()
	} else {
		table.Deactivate()
	}

	if err = tableRepo.Update(ctx, table); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return table, nil
}
