package menu

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

// ErrMenuItemIsNotConstructed is returned when a MenuItem instance was not
// created through NewMenuItem or RestoreMenuItem.
var ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via NewMenuItem constructor")

// MenuItem is a priced catalog entry belonging to exactly one category.
//
// Invariants:
//   - Name is 1 to 100 characters
//   - Price is non-negative with two fractional digits
//   - Preparation time, when present, is non-negative
//   - The category reference is required
type MenuItem struct {
	id              kernel.UUID
	categoryID      kernel.UUID
	name            string
	description     *string
	price           kernel.Money
	imageURL        *string
	preparationTime *int
	status          ItemStatus
	isActive        bool

	isConstructed bool
}

// NewMenuItem creates an active, available menu item. The caller is
// responsible for verifying that categoryID names an existing active category
// before persisting.
func NewMenuItem(
	id kernel.UUID,
	categoryID kernel.UUID,
	name string,
	description *string,
	price kernel.Money,
	imageURL *string,
	preparationTime *int,
) (*MenuItem, error) {
	item := &MenuItem{
		status:        ItemStatusAvailable,
		isActive:      true,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setCategoryID(categoryID),
		item.setName(name),
		item.setPreparationTime(preparationTime),
	); err != nil {
		return nil, err
	}

	item.description = description
	item.price = price
	item.imageURL = imageURL
	return item, nil
}

// RestoreMenuItem reconstructs a menu item from persistence.
func RestoreMenuItem(
	id kernel.UUID,
	categoryID kernel.UUID,
	name string,
	description *string,
	price kernel.Money,
	imageURL *string,
	preparationTime *int,
	status ItemStatus,
	isActive bool,
) (*MenuItem, error) {
	item, err := NewMenuItem(id, categoryID, name, description, price, imageURL, preparationTime)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}

	item.status = status
	item.isActive = isActive
	return item, nil
}

// Validate ensures the MenuItem was created through a constructor.
func (m *MenuItem) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMenuItemIsNotConstructed
	}
	return nil
}

// ID returns the menu item identifier.
func (m *MenuItem) ID() kernel.UUID {
	return m.id
}

// CategoryID returns the owning category's identifier.
func (m *MenuItem) CategoryID() kernel.UUID {
	return m.categoryID
}

// Name returns the item name.
func (m *MenuItem) Name() string {
	return m.name
}

// Description returns the optional description.
func (m *MenuItem) Description() *string {
	return m.description
}

// Price returns the current price. Order lines snapshot this value at order
// time; changing it never touches existing orders.
func (m *MenuItem) Price() kernel.Money {
	return m.price
}

// ImageURL returns the optional image reference.
func (m *MenuItem) ImageURL() *string {
	return m.imageURL
}

// PreparationTime returns the optional preparation time in minutes.
func (m *MenuItem) PreparationTime() *int {
	return m.preparationTime
}

// Status returns the availability status.
func (m *MenuItem) Status() ItemStatus {
	return m.status
}

// IsActive reports whether the item may be referenced by new orders.
func (m *MenuItem) IsActive() bool {
	return m.isActive
}

// UpdateDetails replaces name, description, image reference, and preparation time.
func (m *MenuItem) UpdateDetails(name string, description, imageURL *string, preparationTime *int) error {
	if err := errors.Join(
		m.setName(name),
		m.setPreparationTime(preparationTime),
	); err != nil {
		return err
	}

	m.description = description
	m.imageURL = imageURL
	return nil
}

// ChangePrice sets a new current price. Historical order lines keep their
// snapshot and are unaffected.
func (m *MenuItem) ChangePrice(price kernel.Money) {
	m.price = price
}

// ChangeStatus sets the availability status.
func (m *MenuItem) ChangeStatus(status ItemStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	m.status = status
	return nil
}

// Recategorize moves the item to another category. The caller must verify the
// new category exists and is active before persisting.
func (m *MenuItem) Recategorize(categoryID kernel.UUID) error {
	return m.setCategoryID(categoryID)
}

// Activate marks the item referenceable by new orders.
func (m *MenuItem) Activate() {
	m.isActive = true
}

// Deactivate hides the item from new orders without deleting it.
func (m *MenuItem) Deactivate() {
	m.isActive = false
}

func (m *MenuItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *MenuItem) setCategoryID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("categoryId", err)
	}
	m.categoryID = id
	return nil
}

func (m *MenuItem) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if length := utf8.RuneCountInString(name); length > maxNameLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"name", fmt.Errorf("length %d exceeds %d characters", length, maxNameLength))
	}
	m.name = name
	return nil
}

func (m *MenuItem) setPreparationTime(minutes *int) error {
	if minutes != nil && *minutes < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"preparationTime", fmt.Errorf("%d minutes is negative", *minutes))
	}
	m.preparationTime = minutes
	return nil
}
