package commands

import (
	"context"
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/staff"
	"restaurant/internal/pkg/guard"
)

// ErrUpdateStaffCommandIsNotConstructed is returned when an
// UpdateStaffCommand was not created via NewUpdateStaffCommand.
var ErrUpdateStaffCommandIsNotConstructed = errors.New(
	"UpdateStaffCommand must be created via NewUpdateStaffCommand constructor",
)

// UpdateStaffCommand replaces a staff member's details, role, and employment
// status. The hire date is immutable after registration.
type UpdateStaffCommand struct { //nolint:recvcheck //using for validation
	staffID    kernel.UUID
	firstName  string
	lastName   string
	email      string
	phone      *string
	role       staff.Role
	status     staff.Status
	hourlyRate *kernel.Money

	guard guard.ConstructorGuard
}

// NewUpdateStaffCommand creates a command to update a staff member.
func NewUpdateStaffCommand(
	staffID kernel.UUID,
	firstName, lastName, email string,
	phone *string,
	role staff.Role,
	status staff.Status,
	hourlyRate *kernel.Money,
) (UpdateStaffCommand, error) {
	cmd := UpdateStaffCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		staffID.Validate(),
		role.Validate(),
		status.Validate(),
	); err != nil {
		return UpdateStaffCommand{}, err
	}

	cmd.staffID = staffID
	cmd.firstName = firstName
	cmd.lastName = lastName
	cmd.email = email
	cmd.phone = phone
	cmd.role = role
	cmd.status = status
	cmd.hourlyRate = hourlyRate
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateStaffCommand) Validate() error {
	return c.guard.Validate(ErrUpdateStaffCommandIsNotConstructed)
}

// StaffID returns the identity of the staff member to update.
func (c UpdateStaffCommand) StaffID() kernel.UUID {
	return c.staffID
}

// FirstName returns the new first name.
func (c UpdateStaffCommand) FirstName() string {
	return c.firstName
}

// LastName returns the new last name.
func (c UpdateStaffCommand) LastName() string {
	return c.lastName
}

// Email returns the new email.
func (c UpdateStaffCommand) Email() string {
	return c.email
}

// Phone returns the new optional phone number.
func (c UpdateStaffCommand) Phone() *string {
	return c.phone
}

// Role returns the new role.
func (c UpdateStaffCommand) Role() staff.Role {
	return c.role
}

// Status returns the new employment status.
func (c UpdateStaffCommand) Status() staff.Status {
	return c.status
}

// HourlyRate returns the new optional hourly pay rate.
func (c UpdateStaffCommand) HourlyRate() *kernel.Money {
	return c.hourlyRate
}

// UpdateStaffCommandHandler handles staff updates.
type UpdateStaffCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewUpdateStaffCommandHandler creates a handler for staff updates.
func NewUpdateStaffCommandHandler(uowFactory CatalogUoWFactory) UpdateStaffCommandHandler {
	return UpdateStaffCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the staff member, applies the new details, and persists them.
func (h *UpdateStaffCommandHandler) Handle(ctx context.Context, cmd UpdateStaffCommand) (*staff.Staff, error) {
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

	staffRepo := uow.StaffRepository()
	member, err := staffRepo.Get(ctx, cmd.StaffID())
	if err != nil {
		return nil, err
	}

	if err = errors.Join(
		member.UpdateDetails(cmd.FirstName(), cmd.LastName(), cmd.Email(), cmd.Phone(), cmd.HourlyRate()),
		member.ChangeRole(cmd.Role()),
		member.ChangeStatus(cmd.Status()),
	); err != nil {
		return nil, err
	}

	if err = staffRepo.Update(ctx, member); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return member, nil
}
