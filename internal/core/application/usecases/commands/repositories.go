// Package commands contains the business operations that modify system
// state. Each operation is a command value with constructor validation and a
// handler that opens one unit of work, performs all validation before any
// write, and commits or rolls back atomically.
package commands

import (
	"context"

	"restaurant/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. They are narrowed per command so each handler declares exactly
// the repositories it uses.
type (
	// TxManager handles the database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// CatalogRepoFactory provides the repositories the Reference Resolver
	// reads from within a transaction.
	CatalogRepoFactory interface {
		CategoryRepository() ports.CategoryRepository
		MenuItemRepository() ports.MenuItemRepository
		TableRepository() ports.TableRepository
		StaffRepository() ports.StaffRepository
		CustomerRepository() ports.CustomerRepository
	}

	// CatalogUoW manages transactions for catalog-only operations
	// (category, menu item, table, staff, customer writes).
	CatalogUoW interface {
		TxManager
		CatalogRepoFactory
	}

	// CatalogUoWFactory creates catalog unit of work instances.
	CatalogUoWFactory interface {
		Create() CatalogUoW
	}

	// OrderUoW manages transactions for order aggregate operations. Order
	// writes also need the catalog repositories for reference resolution.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		CatalogRepoFactory
	}

	// OrderUoWFactory creates order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}
)
