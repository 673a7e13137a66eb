// Package queries contains the read side of the application: parameterized
// query objects and handlers that read the database directly, bypassing the
// aggregate repositories. All reads exclude soft-deleted rows.
package queries

import (
	"errors"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/guard"
)

// ErrGetOrderQueryIsNotConstructed is returned when a GetOrderQuery was not
// created via NewGetOrderQuery.
var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order with its full item set.
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for a single order.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the requested order identity.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// OrderItemResponse is one order line in a query response.
type OrderItemResponse struct {
	ID                  kernel.UUID
	MenuItemID          kernel.UUID
	Quantity            int
	UnitPrice           kernel.Money
	TotalPrice          kernel.Money
	SpecialInstructions *string
}

// GetOrderQueryResponse is a fully hydrated order read model.
type GetOrderQueryResponse struct {
	ID                  kernel.UUID
	Number              string
	Status              order.Status
	OrderType           order.Type
	CustomerID          *kernel.UUID
	TableID             *kernel.UUID
	ServerID            *kernel.UUID
	Items               []OrderItemResponse
	Subtotal            kernel.Money
	Tax                 kernel.Money
	Tip                 kernel.Money
	Total               kernel.Money
	SpecialInstructions *string
	OrderTime           *time.Time
	ServedTime          *time.Time
}
