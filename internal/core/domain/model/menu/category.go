package menu

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

// maxNameLength bounds category and menu item names.
const maxNameLength = 100

// ErrCategoryIsNotConstructed is returned when a Category instance was not
// created through NewCategory or RestoreCategory.
var ErrCategoryIsNotConstructed = errors.New("Category must be created via NewCategory constructor")

// Category is a named grouping of menu items. Menu items reference their
// category by identifier; the category does not hold a live item collection.
type Category struct {
	id          kernel.UUID
	name        string
	description *string
	imageURL    *string
	isActive    bool

	isConstructed bool
}

// NewCategory creates an active category with a validated name.
// Description and image reference are optional.
func NewCategory(id kernel.UUID, name string, description, imageURL *string) (*Category, error) {
	category := &Category{
		isActive:      true,
		isConstructed: true,
	}

	if err := errors.Join(
		category.setID(id),
		category.setName(name),
	); err != nil {
		return nil, err
	}

	category.description = description
	category.imageURL = imageURL
	return category, nil
}

// RestoreCategory reconstructs a category from persistence without applying
// creation defaults.
func RestoreCategory(id kernel.UUID, name string, description, imageURL *string, isActive bool) (*Category, error) {
	category, err := NewCategory(id, name, description, imageURL)
	if err != nil {
		return nil, err
	}

	category.isActive = isActive
	return category, nil
}

// Validate ensures the Category was created through a constructor.
func (c *Category) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCategoryIsNotConstructed
	}
	return nil
}

// ID returns the category identifier.
func (c *Category) ID() kernel.UUID {
	return c.id
}

// Name returns the category name.
func (c *Category) Name() string {
	return c.name
}

// Description returns the optional description.
func (c *Category) Description() *string {
	return c.description
}

// ImageURL returns the optional image reference.
func (c *Category) ImageURL() *string {
	return c.imageURL
}

// IsActive reports whether the category may be referenced by new menu items.
func (c *Category) IsActive() bool {
	return c.isActive
}

// UpdateDetails replaces the name, description, and image reference.
func (c *Category) UpdateDetails(name string, description, imageURL *string) error {
	if err := c.setName(name); err != nil {
		return err
	}

	c.description = description
	c.imageURL = imageURL
	return nil
}

// Activate marks the category usable by new menu items.
func (c *Category) Activate() {
	c.isActive = true
}

// Deactivate hides the category from new references without deleting it.
func (c *Category) Deactivate() {
	c.isActive = false
}

func (c *Category) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Category) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if length := utf8.RuneCountInString(name); length > maxNameLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"name", fmt.Errorf("length %d exceeds %d characters", length, maxNameLength))
	}
	c.name = name
	return nil
}
