package queries

import (
	"context"
	"database/sql"
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads one order and its items. Soft-deleted orders
// read as absent; soft-deleted items are excluded from the item list.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order reads.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query and returns the hydrated order.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id, number, status, order_type,
			customer_id, table_id, server_id,
			subtotal, tax, tip, total,
			special_instructions, order_time, served_time
		FROM orders
		WHERE id = ? AND deleted_at IS NULL
	`, query.OrderID().Bytes()).Row()

	var (
		id                         uuid.UUID
		number, status, orderType  string
		customerID                 uuid.NullUUID
		tableID, serverID          uuid.NullUUID
		subtotal, tax, tip, total  decimal.Decimal
		instructions               sql.NullString
		orderTime, servedTime      sql.NullTime
	)
	err := row.Scan(
		&id, &number, &status, &orderType,
		&customerID, &tableID, &serverID,
		&subtotal, &tax, &tip, &total,
		&instructions, &orderTime, &servedTime,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp, err := buildOrderResponse(
		id, number, status, orderType,
		customerID, tableID, serverID,
		subtotal, tax, tip, total,
		instructions, orderTime, servedTime,
	)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	items, err := h.readItems(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.Items = items
	return resp, nil
}

func (h GetOrderQueryHandler) readItems(ctx context.Context, orderID kernel.UUID) ([]OrderItemResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, menu_item_id, quantity, unit_price, total_price, special_instructions
		FROM order_items
		WHERE order_id = ? AND deleted_at IS NULL
		ORDER BY created_at, id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]OrderItemResponse, 0)
	for rows.Next() {
		var (
			id, menuItemID        uuid.UUID
			quantity              int
			unitPrice, totalPrice decimal.Decimal
			instructions          sql.NullString
		)
		if err = rows.Scan(&id, &menuItemID, &quantity, &unitPrice, &totalPrice, &instructions); err != nil {
			return nil, err
		}

		item, err := buildItemResponse(id, menuItemID, quantity, unitPrice, totalPrice, instructions)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func buildOrderResponse(
	id uuid.UUID,
	number, statusStr, orderTypeStr string,
	customerID, tableID, serverID uuid.NullUUID,
	subtotal, tax, tip, total decimal.Decimal,
	instructions sql.NullString,
	orderTime, servedTime sql.NullTime,
) (GetOrderQueryResponse, error) {
	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	status, err := order.ParseStatus(statusStr)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	orderType, err := order.ParseType(orderTypeStr)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp := GetOrderQueryResponse{
		ID:        orderID,
		Number:    number,
		Status:    status,
		OrderType: orderType,
	}

	if resp.CustomerID, err = nullableUUID(customerID); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.TableID, err = nullableUUID(tableID); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.ServerID, err = nullableUUID(serverID); err != nil {
		return GetOrderQueryResponse{}, err
	}

	if resp.Subtotal, err = kernel.NewMoney(subtotal); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.Tax, err = kernel.NewMoney(tax); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.Tip, err = kernel.NewMoney(tip); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.Total, err = kernel.NewMoney(total); err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp.SpecialInstructions = nullableString(instructions)
	resp.OrderTime = nullableTime(orderTime)
	resp.ServedTime = nullableTime(servedTime)
	return resp, nil
}

func buildItemResponse(
	id, menuItemID uuid.UUID,
	quantity int,
	unitPrice, totalPrice decimal.Decimal,
	instructions sql.NullString,
) (OrderItemResponse, error) {
	itemID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderItemResponse{}, err
	}
	menuID, err := kernel.UUIDFromBytes(menuItemID[:])
	if err != nil {
		return OrderItemResponse{}, err
	}

	item := OrderItemResponse{
		ID:                  itemID,
		MenuItemID:          menuID,
		Quantity:            quantity,
		SpecialInstructions: nullableString(instructions),
	}
	if item.UnitPrice, err = kernel.NewMoney(unitPrice); err != nil {
		return OrderItemResponse{}, err
	}
	if item.TotalPrice, err = kernel.NewMoney(totalPrice); err != nil {
		return OrderItemResponse{}, err
	}
	return item, nil
}
