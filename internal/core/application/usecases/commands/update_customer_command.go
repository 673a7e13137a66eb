package commands

import (
	"context"
	"errors"
	"time"

	"restaurant/internal/core/domain/model/customer"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

// ErrUpdateCustomerCommandIsNotConstructed is returned when an
// UpdateCustomerCommand was not created via NewUpdateCustomerCommand.
var ErrUpdateCustomerCommandIsNotConstructed = errors.New(
	"UpdateCustomerCommand must be created via NewUpdateCustomerCommand constructor",
)

// UpdateCustomerCommand replaces a customer's details and active flag.
type UpdateCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID  kernel.UUID
	firstName   string
	lastName    string
	email       *string
	phone       *string
	dateOfBirth *time.Time
	address     *string
	isActive    bool

	guard guard.ConstructorGuard
}

// NewUpdateCustomerCommand creates a command to update a customer.
func NewUpdateCustomerCommand(
	customerID kernel.UUID,
	firstName, lastName string,
	email, phone *string,
	dateOfBirth *time.Time,
	address *string,
	isActive bool,
) (UpdateCustomerCommand, error) {
	cmd := UpdateCustomerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := customerID.Validate(); err != nil {
		return UpdateCustomerCommand{}, err
	}

	cmd.customerID = customerID
	cmd.firstName = firstName
	cmd.lastName = lastName
	cmd.email = email
	cmd.phone = phone
	cmd.dateOfBirth = dateOfBirth
	cmd.address = address
	cmd.isActive = isActive
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCustomerCommandIsNotConstructed)
}

// CustomerID returns the identity of the customer to update.
func (c UpdateCustomerCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// FirstName returns the new first name.
func (c UpdateCustomerCommand) FirstName() string {
	return c.firstName
}

// LastName returns the new last name.
func (c UpdateCustomerCommand) LastName() string {
	return c.lastName
}

// Email returns the new optional email.
func (c UpdateCustomerCommand) Email() *string {
	return c.email
}

// Phone returns the new optional phone number.
func (c UpdateCustomerCommand) Phone() *string {
	return c.phone
}

// DateOfBirth returns the new optional birth date.
func (c UpdateCustomerCommand) DateOfBirth() *time.Time {
	return c.dateOfBirth
}

// Address returns the new optional address.
func (c UpdateCustomerCommand) Address() *string {
	return c.address
}

// IsActive returns the new active flag.
func (c UpdateCustomerCommand) IsActive() bool {
	return c.isActive
}

// UpdateCustomerCommandHandler handles customer updates.
type UpdateCustomerCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewUpdateCustomerCommandHandler creates a handler for customer updates.
func NewUpdateCustomerCommandHandler(uowFactory CatalogUoWFactory) UpdateCustomerCommandHandler {
	return UpdateCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the customer, applies the new details, and persists them.
func (h *UpdateCustomerCommandHandler) Handle(ctx context.Context, cmd UpdateCustomerCommand) (*customer.Customer, error) {
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

	customerRepo := uow.CustomerRepository()
	aggregate, err := customerRepo.Get(ctx, cmd.CustomerID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.UpdateDetails(
		cmd.FirstName(), cmd.LastName(), cmd.Email(), cmd.Phone(),
		cmd.DateOfBirth(), cmd.Address()); err != nil {
		return nil, err
	}
	if cmd.IsActive() {
		aggregate.Activate()
	} else {
		aggregate.Deactivate()
	}

	if err = customerRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
