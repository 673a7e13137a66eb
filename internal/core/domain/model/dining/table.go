// Package dining provides the Table entity: a physical table that dine-in
// orders may be seated at.
package dining

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

const (
	maxNumberLength = 20
	minCapacity     = 1
	maxCapacity     = 20
)

// ErrTableIsNotConstructed is returned when a Table instance was not created
// through NewTable or RestoreTable.
var ErrTableIsNotConstructed = errors.New("Table must be created via NewTable constructor")

// TableStatus represents the occupancy state of a table.
type TableStatus int

const (
	// TableStatusUnknown is the invalid zero value.
	TableStatusUnknown TableStatus = iota

	// TableStatusAvailable means the table is free to seat guests.
	TableStatusAvailable

	// TableStatusOccupied means guests are currently seated.
	TableStatusOccupied

	// TableStatusReserved means the table is held for a booking.
	TableStatusReserved

	// TableStatusOutOfService means the table cannot be used.
	TableStatusOutOfService
)

func tableStatusStrings() map[TableStatus]string {
	return map[TableStatus]string{
		TableStatusAvailable:    "available",
		TableStatusOccupied:     "occupied",
		TableStatusReserved:     "reserved",
		TableStatusOutOfService: "out_of_service",
	}
}

// ParseTableStatus converts the wire representation into a TableStatus.
func ParseTableStatus(s string) (TableStatus, error) {
	for status, str := range tableStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return TableStatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"table status", fmt.Errorf("%q is not a valid status", s))
}

// Validate rejects TableStatusUnknown and any out-of-range value.
func (s TableStatus) Validate() error {
	if _, ok := tableStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"table status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire representation of the status.
func (s TableStatus) String() string {
	if str, ok := tableStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Table is a physical table identified by a short unique number label.
//
// Invariants:
//   - Number is 1 to 20 characters and unique across tables
//   - Capacity is between 1 and 20 guests
type Table struct {
	id       kernel.UUID
	number   string
	capacity int
	status   TableStatus
	location *string
	isActive bool

	isConstructed bool
}

// NewTable creates an active, available table.
func NewTable(id kernel.UUID, number string, capacity int, location *string) (*Table, error) {
	table := &Table{
		status:        TableStatusAvailable,
		isActive:      true,
		isConstructed: true,
	}

	if err := errors.Join(
		table.setID(id),
		table.setNumber(number),
		table.setCapacity(capacity),
	); err != nil {
		return nil, err
	}

	table.location = location
	return table, nil
}

// RestoreTable reconstructs a table from persistence.
func RestoreTable(
	id kernel.UUID,
	number string,
	capacity int,
	status TableStatus,
	location *string,
	isActive bool,
) (*Table, error) {
	table, err := NewTable(id, number, capacity, location)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}

	table.status = status
	table.isActive = isActive
	return table, nil
}

// Validate ensures the Table was created through a constructor.
func (t *Table) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTableIsNotConstructed
	}
	return nil
}

// ID returns the table identifier.
func (t *Table) ID() kernel.UUID {
	return t.id
}

// Number returns the human-visible table label, e.g. "T1".
func (t *Table) Number() string {
	return t.number
}

// Capacity returns the number of guests the table seats.
func (t *Table) Capacity() int {
	return t.capacity
}

// Status returns the occupancy status.
func (t *Table) Status() TableStatus {
	return t.status
}

// Location returns the optional location label, e.g. "Patio".
func (t *Table) Location() *string {
	return t.location
}

// IsActive reports whether the table may be referenced by new orders.
func (t *Table) IsActive() bool {
	return t.isActive
}

// UpdateDetails replaces the number, capacity, and location label.
func (t *Table) UpdateDetails(number string, capacity int, location *string) error {
	if err := errors.Join(
		t.setNumber(number),
		t.setCapacity(capacity),
	); err != nil {
		return err
	}

	t.location = location
	return nil
}

// ChangeStatus sets the occupancy status.
func (t *Table) ChangeStatus(status TableStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	t.status = status
	return nil
}

// Activate marks the table usable by new orders.
func (t *Table) Activate() {
	t.isActive = true
}

// Deactivate hides the table from new orders without deleting it.
func (t *Table) Deactivate() {
	t.isActive = false
}

func (t *Table) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Table) setNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("number")
	}
	if length := utf8.RuneCountInString(number); length > maxNumberLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"number", fmt.Errorf("length %d exceeds %d characters", length, maxNumberLength))
	}
	t.number = number
	return nil
}

func (t *Table) setCapacity(capacity int) error {
	if capacity < minCapacity || capacity > maxCapacity {
		return errs.NewValueIsOutOfRangeError("capacity", capacity, minCapacity, maxCapacity)
	}
	t.capacity = capacity
	return nil
}
