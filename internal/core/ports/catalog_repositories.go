package ports

import (
	"context"

	"restaurant/internal/core/domain/model/customer"
	"restaurant/internal/core/domain/model/dining"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/staff"
)

// CategoryRepository defines the persistence contract for menu categories.
type CategoryRepository interface {
	Add(ctx context.Context, category *menu.Category) error
	Update(ctx context.Context, category *menu.Category) error

	// Get retrieves a category by id; soft-deleted records are absent.
	Get(ctx context.Context, id kernel.UUID) (*menu.Category, error)

	// Remove soft-deletes the category.
	Remove(ctx context.Context, id kernel.UUID) error
}

// MenuItemRepository defines the persistence contract for menu items.
type MenuItemRepository interface {
	Add(ctx context.Context, item *menu.MenuItem) error
	Update(ctx context.Context, item *menu.MenuItem) error
	Get(ctx context.Context, id kernel.UUID) (*menu.MenuItem, error)
	Remove(ctx context.Context, id kernel.UUID) error
}

// TableRepository defines the persistence contract for tables.
type TableRepository interface {
	Add(ctx context.Context, table *dining.Table) error
	Update(ctx context.Context, table *dining.Table) error
	Get(ctx context.Context, id kernel.UUID) (*dining.Table, error)
	Remove(ctx context.Context, id kernel.UUID) error
}

// StaffRepository defines the persistence contract for staff members.
type StaffRepository interface {
	Add(ctx context.Context, member *staff.Staff) error
	Update(ctx context.Context, member *staff.Staff) error
	Get(ctx context.Context, id kernel.UUID) (*staff.Staff, error)
	Remove(ctx context.Context, id kernel.UUID) error
}

// CustomerRepository defines the persistence contract for customers.
type CustomerRepository interface {
	Add(ctx context.Context, c *customer.Customer) error
	Update(ctx context.Context, c *customer.Customer) error
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)
	Remove(ctx context.Context, id kernel.UUID) error
}
