// Package http is the inbound REST adapter. Request DTOs are converted into
// commands and queries; domain objects and read models are converted back
// into wire DTOs. No business rules live here.
package http

import (
	"time"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"

	"github.com/google/uuid"
)

// OrderItemRequest is one requested order line.
type OrderItemRequest struct {
	MenuItemID          uuid.UUID `json:"menu_item_id"`
	Quantity            int       `json:"quantity"`
	SpecialInstructions *string   `json:"special_instructions,omitempty"`
}

// CreateOrderRequest is the payload for placing an order.
type CreateOrderRequest struct {
	OrderType           string             `json:"order_type"`
	CustomerID          *uuid.UUID         `json:"customer_id,omitempty"`
	TableID             *uuid.UUID         `json:"table_id,omitempty"`
	ServerID            *uuid.UUID         `json:"server_id,omitempty"`
	Items               []OrderItemRequest `json:"items"`
	Tax                 *float64           `json:"tax,omitempty"`
	Tip                 *float64           `json:"tip,omitempty"`
	SpecialInstructions *string            `json:"special_instructions,omitempty"`
}

// UpdateOrderRequest is a partial order update. Absent fields are left
// untouched; an explicit null clears the corresponding optional field.
type UpdateOrderRequest struct {
	Status              Patch[string]             `json:"status"`
	CustomerID          Patch[uuid.UUID]          `json:"customer_id"`
	TableID             Patch[uuid.UUID]          `json:"table_id"`
	ServerID            Patch[uuid.UUID]          `json:"server_id"`
	Items               Patch[[]OrderItemRequest] `json:"items"`
	Tax                 Patch[float64]            `json:"tax"`
	Tip                 Patch[float64]            `json:"tip"`
	SpecialInstructions Patch[string]             `json:"special_instructions"`
}

// OrderItemResponse is one order line on the wire.
type OrderItemResponse struct {
	ID                  uuid.UUID `json:"id"`
	MenuItemID          uuid.UUID `json:"menu_item_id"`
	Quantity            int       `json:"quantity"`
	UnitPrice           float64   `json:"unit_price"`
	TotalPrice          float64   `json:"total_price"`
	SpecialInstructions *string   `json:"special_instructions,omitempty"`
}

// OrderResponse is a fully hydrated order on the wire.
type OrderResponse struct {
	ID                  uuid.UUID           `json:"id"`
	Number              string              `json:"number"`
	Status              string              `json:"status"`
	OrderType           string              `json:"order_type"`
	CustomerID          *uuid.UUID          `json:"customer_id,omitempty"`
	TableID             *uuid.UUID          `json:"table_id,omitempty"`
	ServerID            *uuid.UUID          `json:"server_id,omitempty"`
	Items               []OrderItemResponse `json:"items"`
	Subtotal            float64             `json:"subtotal"`
	Tax                 float64             `json:"tax"`
	Tip                 float64             `json:"tip"`
	Total               float64             `json:"total"`
	SpecialInstructions *string             `json:"special_instructions,omitempty"`
	OrderTime           *time.Time          `json:"order_time,omitempty"`
	ServedTime          *time.Time          `json:"served_time,omitempty"`
}

// OrderSummaryResponse is one row of the order list.
type OrderSummaryResponse struct {
	ID        uuid.UUID  `json:"id"`
	Number    string     `json:"number"`
	Status    string     `json:"status"`
	OrderType string     `json:"order_type"`
	Total     float64    `json:"total"`
	OrderTime *time.Time `json:"order_time,omitempty"`
}

func toItemInputs(requests []OrderItemRequest) ([]commands.ItemInput, error) {
	inputs := make([]commands.ItemInput, 0, len(requests))
	for _, req := range requests {
		menuItemID, err := kernel.UUIDFromBytes(req.MenuItemID[:])
		if err != nil {
			return nil, err
		}
		input, err := commands.NewItemInput(menuItemID, req.Quantity, req.SpecialInstructions)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, input)
	}
	return inputs, nil
}

func toOptionalID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromBytes((*raw)[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func toOptionalMoney(raw *float64) (*kernel.Money, error) {
	if raw == nil {
		return nil, nil
	}
	money, err := kernel.MoneyFromFloat(*raw)
	if err != nil {
		return nil, err
	}
	return &money, nil
}

func wireID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func orderFromAggregate(aggregate *order.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemResponse{
			ID:                  item.ID().Bytes(),
			MenuItemID:          item.MenuItemID().Bytes(),
			Quantity:            item.Quantity(),
			UnitPrice:           item.UnitPrice().Float64(),
			TotalPrice:          item.TotalPrice().Float64(),
			SpecialInstructions: item.SpecialInstructions(),
		})
	}

	return OrderResponse{
		ID:                  aggregate.ID().Bytes(),
		Number:              aggregate.Number(),
		Status:              aggregate.Status().String(),
		OrderType:           aggregate.OrderType().String(),
		CustomerID:          wireID(aggregate.CustomerID()),
		TableID:             wireID(aggregate.TableID()),
		ServerID:            wireID(aggregate.ServerID()),
		Items:               items,
		Subtotal:            aggregate.Subtotal().Float64(),
		Tax:                 aggregate.Tax().Float64(),
		Tip:                 aggregate.Tip().Float64(),
		Total:               aggregate.Total().Float64(),
		SpecialInstructions: aggregate.SpecialInstructions(),
		OrderTime:           aggregate.OrderTime(),
		ServedTime:          aggregate.ServedTime(),
	}
}

func orderFromReadModel(model queries.GetOrderQueryResponse) OrderResponse {
	items := make([]OrderItemResponse, 0, len(model.Items))
	for _, item := range model.Items {
		items = append(items, OrderItemResponse{
			ID:                  item.ID.Bytes(),
			MenuItemID:          item.MenuItemID.Bytes(),
			Quantity:            item.Quantity,
			UnitPrice:           item.UnitPrice.Float64(),
			TotalPrice:          item.TotalPrice.Float64(),
			SpecialInstructions: item.SpecialInstructions,
		})
	}

	return OrderResponse{
		ID:                  model.ID.Bytes(),
		Number:              model.Number,
		Status:              model.Status.String(),
		OrderType:           model.OrderType.String(),
		CustomerID:          wireID(model.CustomerID),
		TableID:             wireID(model.TableID),
		ServerID:            wireID(model.ServerID),
		Items:               items,
		Subtotal:            model.Subtotal.Float64(),
		Tax:                 model.Tax.Float64(),
		Tip:                 model.Tip.Float64(),
		Total:               model.Total.Float64(),
		SpecialInstructions: model.SpecialInstructions,
		OrderTime:           model.OrderTime,
		ServedTime:          model.ServedTime,
	}
}

func orderSummaryFromReadModel(model queries.OrderSummaryResponse) OrderSummaryResponse {
	return OrderSummaryResponse{
		ID:        model.ID.Bytes(),
		Number:    model.Number,
		Status:    model.Status.String(),
		OrderType: model.OrderType.String(),
		Total:     model.Total.Float64(),
		OrderTime: model.OrderTime,
	}
}

func toOrderPatch(req UpdateOrderRequest) (commands.OrderPatch, error) {
	var patch commands.OrderPatch

	if req.Status.Set {
		if req.Status.Value == nil {
			return commands.OrderPatch{}, errs.NewValueIsRequiredError("status")
		}
		status, err := order.ParseStatus(*req.Status.Value)
		if err != nil {
			return commands.OrderPatch{}, err
		}
		patch.Status = commands.NewField(status)
	}

	for _, ref := range []struct {
		in  Patch[uuid.UUID]
		out *commands.Field[*kernel.UUID]
	}{
		{req.CustomerID, &patch.CustomerID},
		{req.TableID, &patch.TableID},
		{req.ServerID, &patch.ServerID},
	} {
		if !ref.in.Set {
			continue
		}
		id, err := toOptionalID(ref.in.Value)
		if err != nil {
			return commands.OrderPatch{}, err
		}
		*ref.out = commands.NewField(id)
	}

	if req.Items.Set {
		if req.Items.Value == nil {
			return commands.OrderPatch{}, errs.NewValueIsRequiredError("items")
		}
		items, err := toItemInputs(*req.Items.Value)
		if err != nil {
			return commands.OrderPatch{}, err
		}
		patch.Items = commands.NewField(items)
	}

	if req.Tax.Set {
		money, err := toOptionalMoney(req.Tax.Value)
		if err != nil {
			return commands.OrderPatch{}, err
		}
		if money == nil {
			zero := kernel.ZeroMoney()
			money = &zero
		}
		patch.Tax = commands.NewField(*money)
	}
	if req.Tip.Set {
		money, err := toOptionalMoney(req.Tip.Value)
		if err != nil {
			return commands.OrderPatch{}, err
		}
		if money == nil {
			zero := kernel.ZeroMoney()
			money = &zero
		}
		patch.Tip = commands.NewField(*money)
	}

	if req.SpecialInstructions.Set {
		patch.SpecialInstructions = commands.NewField(req.SpecialInstructions.Value)
	}

	return patch, nil
}
