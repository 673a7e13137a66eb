// Package customer provides the Customer entity: guests that orders may be
// attributed to.
package customer

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

const maxNameLength = 100

// ErrCustomerIsNotConstructed is returned when a Customer instance was not
// created through NewCustomer or RestoreCustomer.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer is a guest record. Email, phone, date of birth, and address are
// all optional; email is unique when present.
type Customer struct {
	id          kernel.UUID
	firstName   string
	lastName    string
	email       *string
	phone       *string
	dateOfBirth *time.Time
	address     *string
	isActive    bool

	isConstructed bool
}

// NewCustomer creates an active customer.
func NewCustomer(
	id kernel.UUID,
	firstName, lastName string,
	email, phone *string,
	dateOfBirth *time.Time,
	address *string,
) (*Customer, error) {
	c := &Customer{
		isActive:      true,
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(firstName, lastName),
		c.setEmail(email),
	); err != nil {
		return nil, err
	}

	c.phone = phone
	c.dateOfBirth = dateOfBirth
	c.address = address
	return c, nil
}

// RestoreCustomer reconstructs a customer from persistence.
func RestoreCustomer(
	id kernel.UUID,
	firstName, lastName string,
	email, phone *string,
	dateOfBirth *time.Time,
	address *string,
	isActive bool,
) (*Customer, error) {
	c, err := NewCustomer(id, firstName, lastName, email, phone, dateOfBirth, address)
	if err != nil {
		return nil, err
	}

	c.isActive = isActive
	return c, nil
}

// Validate ensures the Customer was created through a constructor.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// ID returns the customer identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// FirstName returns the first name.
func (c *Customer) FirstName() string {
	return c.firstName
}

// LastName returns the last name.
func (c *Customer) LastName() string {
	return c.lastName
}

// FullName returns "First Last" for display.
func (c *Customer) FullName() string {
	return c.firstName + " " + c.lastName
}

// Email returns the optional email address.
func (c *Customer) Email() *string {
	return c.email
}

// Phone returns the optional phone number.
func (c *Customer) Phone() *string {
	return c.phone
}

// DateOfBirth returns the optional date of birth.
func (c *Customer) DateOfBirth() *time.Time {
	return c.dateOfBirth
}

// Address returns the optional address.
func (c *Customer) Address() *string {
	return c.address
}

// IsActive reports whether the customer may be referenced by new orders.
func (c *Customer) IsActive() bool {
	return c.isActive
}

// UpdateDetails replaces the mutable profile fields.
func (c *Customer) UpdateDetails(firstName, lastName string, email, phone *string, dateOfBirth *time.Time, address *string) error {
	if err := errors.Join(
		c.setName(firstName, lastName),
		c.setEmail(email),
	); err != nil {
		return err
	}

	c.phone = phone
	c.dateOfBirth = dateOfBirth
	c.address = address
	return nil
}

// Activate marks the customer referenceable by new orders.
func (c *Customer) Activate() {
	c.isActive = true
}

// Deactivate hides the customer from new orders without deleting history.
func (c *Customer) Deactivate() {
	c.isActive = false
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setName(firstName, lastName string) error {
	if firstName == "" {
		return errs.NewValueIsRequiredError("firstName")
	}
	if lastName == "" {
		return errs.NewValueIsRequiredError("lastName")
	}
	if utf8.RuneCountInString(firstName) > maxNameLength || utf8.RuneCountInString(lastName) > maxNameLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"name", fmt.Errorf("name exceeds %d characters", maxNameLength))
	}
	c.firstName = firstName
	c.lastName = lastName
	return nil
}

func (c *Customer) setEmail(email *string) error {
	if email == nil {
		c.email = nil
		return nil
	}
	at := strings.Index(*email, "@")
	if at < 1 || at == len(*email)-1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"email", fmt.Errorf("%q is not an email address", *email))
	}
	c.email = email
	return nil
}
