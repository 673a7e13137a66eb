package commands

import (
	"context"
	"errors"
	"time"

	"restaurant/internal/core/domain/model/customer"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

// ErrCreateCustomerCommandIsNotConstructed is returned when a
// CreateCustomerCommand was not created via NewCreateCustomerCommand.
var ErrCreateCustomerCommandIsNotConstructed = errors.New(
	"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
)

// CreateCustomerCommand represents a request to register a customer.
type CreateCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID  kernel.UUID
	firstName   string
	lastName    string
	email       *string
	phone       *string
	dateOfBirth *time.Time
	address     *string

	guard guard.ConstructorGuard
}

// NewCreateCustomerCommand creates a command to register a customer. Name and
// email rules are enforced by the Customer aggregate.
func NewCreateCustomerCommand(
	customerID kernel.UUID,
	firstName, lastName string,
	email, phone *string,
	dateOfBirth *time.Time,
	address *string,
) (CreateCustomerCommand, error) {
	cmd := CreateCustomerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := customerID.Validate(); err != nil {
		return CreateCustomerCommand{}, err
	}

	cmd.customerID = customerID
	cmd.firstName = firstName
	cmd.lastName = lastName
	cmd.email = email
	cmd.phone = phone
	cmd.dateOfBirth = dateOfBirth
	cmd.address = address
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

// CustomerID returns the identity the new customer will carry.
func (c CreateCustomerCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// FirstName returns the first name.
func (c CreateCustomerCommand) FirstName() string {
	return c.firstName
}

// LastName returns the last name.
func (c CreateCustomerCommand) LastName() string {
	return c.lastName
}

// Email returns the optional unique email.
func (c CreateCustomerCommand) Email() *string {
	return c.email
}

// Phone returns the optional phone number.
func (c CreateCustomerCommand) Phone() *string {
	return c.phone
}

// DateOfBirth returns the optional birth date.
func (c CreateCustomerCommand) DateOfBirth() *time.Time {
	return c.dateOfBirth
}

// Address returns the optional address.
func (c CreateCustomerCommand) Address() *string {
	return c.address
}

// CreateCustomerCommandHandler handles customer registration.
type CreateCustomerCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewCreateCustomerCommandHandler creates a handler for customer
// registration.
func NewCreateCustomerCommandHandler(uowFactory CatalogUoWFactory) CreateCustomerCommandHandler {
	return CreateCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle persists a new active customer and returns them.
func (h *CreateCustomerCommandHandler) Handle(ctx context.Context, cmd CreateCustomerCommand) (*customer.Customer, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := customer.NewCustomer(
		cmd.CustomerID(), cmd.FirstName(), cmd.LastName(),
		cmd.Email(), cmd.Phone(), cmd.DateOfBirth(), cmd.Address())
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

	if err = uow.CustomerRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
