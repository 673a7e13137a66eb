package queries

import (
	"errors"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/guard"
)

// ErrListOrdersQueryIsNotConstructed is returned when a ListOrdersQuery was
// not created via NewListOrdersQuery.
var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery retrieves order summaries, optionally filtered by status
// and fulfilment type. Nil filters match everything.
type ListOrdersQuery struct {
	status    *order.Status
	orderType *order.Type

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query over the order list.
func NewListOrdersQuery(status *order.Status, orderType *order.Type) (ListOrdersQuery, error) {
	if status != nil {
		if err := status.Validate(); err != nil {
			return ListOrdersQuery{}, err
		}
	}
	if orderType != nil {
		if err := orderType.Validate(); err != nil {
			return ListOrdersQuery{}, err
		}
	}

	return ListOrdersQuery{
		status:    status,
		orderType: orderType,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Status returns the optional status filter.
func (q ListOrdersQuery) Status() *order.Status {
	return q.status
}

// OrderType returns the optional fulfilment type filter.
func (q ListOrdersQuery) OrderType() *order.Type {
	return q.orderType
}

// OrderSummaryResponse is one row of the order list.
type OrderSummaryResponse struct {
	ID        kernel.UUID
	Number    string
	Status    order.Status
	OrderType order.Type
	Total     kernel.Money
	OrderTime *time.Time
}
