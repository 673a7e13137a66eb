// Package staff provides the Staff entity: restaurant employees, including
// the servers that orders may be assigned to.
package staff

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

// ErrStaffIsNotConstructed is returned when a Staff instance was not created
// through NewStaff or RestoreStaff.
var ErrStaffIsNotConstructed = errors.New("Staff must be created via NewStaff constructor")

// Role is the job role of a staff member.
type Role int

const (
	// RoleUnknown is the invalid zero value.
	RoleUnknown Role = iota

	RoleManager
	RoleChef
	RoleWaiter
	RoleCashier
	RoleCleaner
)

func roleStrings() map[Role]string {
	return map[Role]string{
		RoleManager: "manager",
		RoleChef:    "chef",
		RoleWaiter:  "waiter",
		RoleCashier: "cashier",
		RoleCleaner: "cleaner",
	}
}

// ParseRole converts the wire representation into a Role.
func ParseRole(s string) (Role, error) {
	for role, str := range roleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause(
		"role", fmt.Errorf("%q is not a valid role", s))
}

// Validate rejects RoleUnknown and any out-of-range value.
func (r Role) Validate() error {
	if _, ok := roleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the wire representation of the role.
func (r Role) String() string {
	if str, ok := roleStrings()[r]; ok {
		return str
	}
	return "unknown"
}

// Status is the employment status of a staff member.
type Status int

const (
	// StatusUnknown is the invalid zero value.
	StatusUnknown Status = iota

	StatusActive
	StatusInactive
	StatusOnLeave
)

func statusStrings() map[Status]string {
	return map[Status]string{
		StatusActive:   "active",
		StatusInactive: "inactive",
		StatusOnLeave:  "on_leave",
	}
}

// ParseStatus converts the wire representation into a Status.
func ParseStatus(s string) (Status, error) {
	for status, str := range statusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"staff status", fmt.Errorf("%q is not a valid status", s))
}

// Validate rejects StatusUnknown and any out-of-range value.
func (s Status) Validate() error {
	if _, ok := statusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"staff status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire representation of the status.
func (s Status) String() string {
	if str, ok := statusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Staff is an employee record. Waiters (and any other role) may be assigned
// to orders as the serving staff member.
type Staff struct {
	id         kernel.UUID
	firstName  string
	lastName   string
	email      string
	phone      *string
	role       Role
	status     Status
	hourlyRate *kernel.Money
	hireDate   *time.Time

	isConstructed bool
}

// NewStaff creates a staff member in active status.
func NewStaff(
	id kernel.UUID,
	firstName, lastName, email string,
	phone *string,
	role Role,
	hourlyRate *kernel.Money,
	hireDate *time.Time,
) (*Staff, error) {
	member := &Staff{
		status:        StatusActive,
		isConstructed: true,
	}

	if err := errors.Join(
		member.setID(id),
		member.setName(firstName, lastName),
		member.setEmail(email),
		member.setRole(role),
	); err != nil {
		return nil, err
	}

	member.phone = phone
	member.hourlyRate = hourlyRate
	member.hireDate = hireDate
	return member, nil
}

// RestoreStaff reconstructs a staff member from persistence.
func RestoreStaff(
	id kernel.UUID,
	firstName, lastName, email string,
	phone *string,
	role Role,
	status Status,
	hourlyRate *kernel.Money,
	hireDate *time.Time,
) (*Staff, error) {
	member, err := NewStaff(id, firstName, lastName, email, phone, role, hourlyRate, hireDate)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}

	member.status = status
	return member, nil
}

// Validate ensures the Staff was created through a constructor.
func (s *Staff) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrStaffIsNotConstructed
	}
	return nil
}

// ID returns the staff identifier.
func (s *Staff) ID() kernel.UUID {
	return s.id
}

// FirstName returns the first name.
func (s *Staff) FirstName() string {
	return s.firstName
}

// LastName returns the last name.
func (s *Staff) LastName() string {
	return s.lastName
}

// FullName returns "First Last" for display.
func (s *Staff) FullName() string {
	return s.firstName + " " + s.lastName
}

// Email returns the unique email address.
func (s *Staff) Email() string {
	return s.email
}

// Phone returns the optional phone number.
func (s *Staff) Phone() *string {
	return s.phone
}

// Role returns the job role.
func (s *Staff) Role() Role {
	return s.role
}

// Status returns the employment status.
func (s *Staff) Status() Status {
	return s.status
}

// HourlyRate returns the optional hourly rate.
func (s *Staff) HourlyRate() *kernel.Money {
	return s.hourlyRate
}

// HireDate returns the optional hire date.
func (s *Staff) HireDate() *time.Time {
	return s.hireDate
}

// UpdateDetails replaces the mutable profile fields.
func (s *Staff) UpdateDetails(firstName, lastName, email string, phone *string, hourlyRate *kernel.Money) error {
	if err := errors.Join(
		s.setName(firstName, lastName),
		s.setEmail(email),
	); err != nil {
		return err
	}

	s.phone = phone
	s.hourlyRate = hourlyRate
	return nil
}

// ChangeRole sets a new job role.
func (s *Staff) ChangeRole(role Role) error {
	return s.setRole(role)
}

// ChangeStatus sets the employment status.
func (s *Staff) ChangeStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	s.status = status
	return nil
}

func (s *Staff) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Staff) setName(firstName, lastName string) error {
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
	s.firstName = firstName
	s.lastName = lastName
	return nil
}

func (s *Staff) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	at := strings.Index(email, "@")
	if at < 1 || at == len(email)-1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"email", fmt.Errorf("%q is not an email address", email))
	}
	s.email = email
	return nil
}

func (s *Staff) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	s.role = role
	return nil
}
