package commands

import (
	"context"
	"errors"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/staff"
	"restaurant/internal/pkg/guard"
)

// ErrCreateStaffCommandIsNotConstructed is returned when a CreateStaffCommand
// was not created via NewCreateStaffCommand.
var ErrCreateStaffCommandIsNotConstructed = errors.New(
	"CreateStaffCommand must be created via NewCreateStaffCommand constructor",
)

// CreateStaffCommand represents a request to register a staff member.
type CreateStaffCommand struct { //nolint:recvcheck //using for validation
	staffID    kernel.UUID
	firstName  string
	lastName   string
	email      string
	phone      *string
	role       staff.Role
	hourlyRate *kernel.Money
	hireDate   *time.Time

	guard guard.ConstructorGuard
}

// NewCreateStaffCommand creates a command to register a staff member. Name
// and email rules are enforced by the Staff aggregate.
func NewCreateStaffCommand(
	staffID kernel.UUID,
	firstName, lastName, email string,
	phone *string,
	role staff.Role,
	hourlyRate *kernel.Money,
	hireDate *time.Time,
) (CreateStaffCommand, error) {
	cmd := CreateStaffCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		staffID.Validate(),
		role.Validate(),
	); err != nil {
		return CreateStaffCommand{}, err
	}

	cmd.staffID = staffID
	cmd.firstName = firstName
	cmd.lastName = lastName
	cmd.email = email
	cmd.phone = phone
	cmd.role = role
	cmd.hourlyRate = hourlyRate
	cmd.hireDate = hireDate
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateStaffCommand) Validate() error {
	return c.guard.Validate(ErrCreateStaffCommandIsNotConstructed)
}

// StaffID returns the identity the new staff member will carry.
func (c CreateStaffCommand) StaffID() kernel.UUID {
	return c.staffID
}

// FirstName returns the first name.
func (c CreateStaffCommand) FirstName() string {
	return c.firstName
}

// LastName returns the last name.
func (c CreateStaffCommand) LastName() string {
	return c.lastName
}

// Email returns the unique work email.
func (c CreateStaffCommand) Email() string {
	return c.email
}

// Phone returns the optional phone number.
func (c CreateStaffCommand) Phone() *string {
	return c.phone
}

// Role returns the staff role.
func (c CreateStaffCommand) Role() staff.Role {
	return c.role
}

// HourlyRate returns the optional hourly pay rate.
func (c CreateStaffCommand) HourlyRate() *kernel.Money {
	return c.hourlyRate
}

// HireDate returns the optional hire date.
func (c CreateStaffCommand) HireDate() *time.Time {
	return c.hireDate
}

// CreateStaffCommandHandler handles staff registration.
type CreateStaffCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewCreateStaffCommandHandler creates a handler for staff registration.
func NewCreateStaffCommandHandler(uowFactory CatalogUoWFactory) CreateStaffCommandHandler {
	return CreateStaffCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle persists a new active staff member and returns them.
func (h *CreateStaffCommandHandler) Handle(ctx context.Context, cmd CreateStaffCommand) (*staff.Staff, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	member, err := staff.NewStaff(
		cmd.StaffID(), cmd.FirstName(), cmd.LastName(), cmd.Email(),
		cmd.Phone(), cmd.Role(), cmd.HourlyRate(), cmd.HireDate())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.StaffRepository().Add(ctx, member); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return member, nil
}
