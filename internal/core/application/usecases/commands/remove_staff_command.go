package commands

import (
	"context"
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

// ErrRemoveStaffCommandIsNotConstructed is returned when a
// RemoveStaffCommand was not created via NewRemoveStaffCommand.
var ErrRemoveStaffCommandIsNotConstructed = errors.New(
	"RemoveStaffCommand must be created via NewRemoveStaffCommand constructor",
)

// RemoveStaffCommand soft deletes a staff member. Orders they served keep
// their server reference.
type RemoveStaffCommand struct { //nolint:recvcheck //using for validation
	staffID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveStaffCommand creates a command to remove a staff member.
func NewRemoveStaffCommand(staffID kernel.UUID) (RemoveStaffCommand, error) {
	cmd := RemoveStaffCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := staffID.Validate(); err != nil {
		return RemoveStaffCommand{}, err
	}

	cmd.staffID = staffID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveStaffCommand) Validate() error {
	return c.guard.Validate(ErrRemoveStaffCommandIsNotConstructed)
}

// StaffID returns the identity of the staff member to remove.
func (c RemoveStaffCommand) StaffID() kernel.UUID {
	return c.staffID
}

// RemoveStaffCommandHandler handles staff removal.
type RemoveStaffCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewRemoveStaffCommandHandler creates a handler for staff removal.
func NewRemoveStaffCommandHandler(uowFactory CatalogUoWFactory) RemoveStaffCommandHandler {
	return RemoveStaffCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle soft deletes the staff member.
func (h *RemoveStaffCommandHandler) Handle(ctx context.Context, cmd RemoveStaffCommand) error {
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

	staffRepo := uow.StaffRepository()
	if _, err := staffRepo.Get(ctx, cmd.StaffID()); err != nil {
		return err
	}

	if err := staffRepo.Remove(ctx, cmd.StaffID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
