package queries

import (
	"context"
	"database/sql"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler reads order summaries sorted newest first.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order list reads.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the query and returns matching order summaries.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	q := `
		SELECT id, number, status, order_type, total, order_time
		FROM orders
		WHERE deleted_at IS NULL
	`
	args := make([]any, 0, 2)
	if status := query.Status(); status != nil {
		q += " AND status = ?"
		args = append(args, status.String())
	}
	if orderType := query.OrderType(); orderType != nil {
		q += " AND order_type = ?"
		args = append(args, orderType.String())
	}
	q += " ORDER BY order_time DESC, id"

	rows, err := h.db.WithContext(ctx).Raw(q, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderSummaryResponse, 0)
	for rows.Next() {
		var (
			id                        uuid.UUID
			number, status, orderType string
			total                     decimal.Decimal
			orderTime                 sql.NullTime
		)
		if err = rows.Scan(&id, &number, &status, &orderType, &total, &orderTime); err != nil {
			return nil, err
		}

		summary, err := buildOrderSummary(id, number, status, orderType, total, orderTime)
		if err != nil {
			return nil, err
		}
		orders = append(orders, summary)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return orders, nil
}

func buildOrderSummary(
	id uuid.UUID,
	number, statusStr, orderTypeStr string,
	total decimal.Decimal,
	orderTime sql.NullTime,
) (OrderSummaryResponse, error) {
	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderSummaryResponse{}, err
	}
	status, err := order.ParseStatus(statusStr)
	if err != nil {
		return OrderSummaryResponse{}, err
	}
	orderType, err := order.ParseType(orderTypeStr)
	if err != nil {
		return OrderSummaryResponse{}, err
	}
	totalMoney, err := kernel.NewMoney(total)
	if err != nil {
		return OrderSummaryResponse{}, err
	}

	return OrderSummaryResponse{
		ID:        orderID,
		Number:    number,
		Status:    status,
		OrderType: orderType,
		Total:     totalMoney,
		OrderTime: nullableTime(orderTime),
	}, nil
}
