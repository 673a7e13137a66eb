// Package ports defines the persistence contracts between the application
// core and infrastructure adapters, enabling dependency inversion and
// testability.
package ports

import (
	"context"
	"errors"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
)

var (
	// ErrDuplicateOrderNumber indicates that a generated order number
	// collided with an existing one. The generator's contract makes this
	// structurally impossible; if it ever surfaces it is a fatal integrity
	// error and the write is rejected, never silently retried.
	ErrDuplicateOrderNumber = errors.New("duplicate order number")

	// ErrConcurrentModification indicates that an update lost a race: the
	// status it was validated against no longer matched at commit time.
	ErrConcurrentModification = errors.New("order was modified concurrently")
)

// OrderNumberGenerator produces human-presentable order numbers, distinct
// from the internal identity and unique across all orders ever created
// (active or soft-deleted). Implementations must be safe for concurrent use.
type OrderNumberGenerator interface {
	Next(ctx context.Context) (string, error)
}

// OrderRepository defines the persistence contract for order aggregates.
// Every write covers the order together with its items; items are never
// persisted independently.
type OrderRepository interface {
	// Add persists a new order aggregate with all its items. A collision on
	// the order number surfaces as ErrDuplicateOrderNumber.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order and, while the order is
	// still pending, its replaced item set. The write is predicated on the
	// status the aggregate was loaded with; a mismatch at commit time
	// surfaces as ErrConcurrentModification.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate with its full item set. Soft-deleted
	// orders are treated as absent.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Remove soft-deletes the order and cascades the soft delete to all its
	// items in the same transaction.
	Remove(ctx context.Context, id kernel.UUID) error

	// GetAllInStatusOlderThan retrieves orders in the given status whose
	// order time is before the cutoff. Used by the stale-order job.
	GetAllInStatusOlderThan(ctx context.Context, status order.Status, cutoff time.Time) ([]*order.Order, error)
}
