package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per request/command, ensuring
// isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. Repositories
// obtained from it execute inside the transaction opened by Begin; the client
// explicitly commits or rolls back. Every aggregate operation that touches
// more than one record (an order with its items, a cascaded soft delete) runs
// inside exactly one UnitOfWork, so concurrent readers never observe a
// partial aggregate.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction. Calling it after a
	// successful Commit is a no-op error and is safe in a defer.
	Rollback(ctx context.Context) error

	// OrderRepository returns an order repository bound to the current transaction.
	OrderRepository() OrderRepository

	// CategoryRepository returns a category repository bound to the current transaction.
	CategoryRepository() CategoryRepository

	// MenuItemRepository returns a menu item repository bound to the current transaction.
	MenuItemRepository() MenuItemRepository

	// TableRepository returns a table repository bound to the current transaction.
	TableRepository() TableRepository

	// StaffRepository returns a staff repository bound to the current transaction.
	StaffRepository() StaffRepository

	// CustomerRepository returns a customer repository bound to the current transaction.
	CustomerRepository() CustomerRepository
}
