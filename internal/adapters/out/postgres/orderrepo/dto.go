// Package orderrepo persists order aggregates. The order row and its item
// rows are always written together; items are never reachable except through
// their order.
package orderrepo

import (
	"sort"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderDTO is the database representation of an order aggregate root.
type OrderDTO struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Number              string     `gorm:"uniqueIndex;not null"`
	Status              string     `gorm:"index;not null"`
	OrderType           string     `gorm:"not null"`
	CustomerID          *uuid.UUID `gorm:"type:uuid;index"`
	TableID             *uuid.UUID `gorm:"type:uuid;index"`
	ServerID            *uuid.UUID `gorm:"type:uuid;index"`
	Subtotal            decimal.Decimal `gorm:"type:numeric(10,2)"`
	Tax                 decimal.Decimal `gorm:"type:numeric(10,2)"`
	Tip                 decimal.Decimal `gorm:"type:numeric(10,2)"`
	Total               decimal.Decimal `gorm:"type:numeric(10,2)"`
	SpecialInstructions *string
	OrderTime           *time.Time `gorm:"index"`
	ServedTime          *time.Time
	Items               []OrderItemDTO `gorm:"foreignKey:OrderID"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
	DeletedAt           gorm.DeletedAt `gorm:"index"`
}

// TableName maps the DTO to the orders table.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is the database representation of one order line.
type OrderItemDTO struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID             uuid.UUID `gorm:"type:uuid;index;not null"`
	MenuItemID          uuid.UUID `gorm:"type:uuid;not null"`
	Quantity            int       `gorm:"not null"`
	UnitPrice           decimal.Decimal `gorm:"type:numeric(10,2)"`
	TotalPrice          decimal.Decimal `gorm:"type:numeric(10,2)"`
	SpecialInstructions *string
	CreatedAt           time.Time
	UpdatedAt           time.Time
	DeletedAt           gorm.DeletedAt `gorm:"index"`
}

// TableName maps the DTO to the order_items table.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:                  aggregate.ID().Bytes(),
		Number:              aggregate.Number(),
		Status:              aggregate.Status().String(),
		OrderType:           aggregate.OrderType().String(),
		CustomerID:          optionalID(aggregate.CustomerID()),
		TableID:             optionalID(aggregate.TableID()),
		ServerID:            optionalID(aggregate.ServerID()),
		Subtotal:            aggregate.Subtotal().Decimal(),
		Tax:                 aggregate.Tax().Decimal(),
		Tip:                 aggregate.Tip().Decimal(),
		Total:               aggregate.Total().Decimal(),
		SpecialInstructions: aggregate.SpecialInstructions(),
		OrderTime:           aggregate.OrderTime(),
		ServedTime:          aggregate.ServedTime(),
	}

	dto.Items = make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		dto.Items = append(dto.Items, OrderItemDTO{
			ID:                  item.ID().Bytes(),
			OrderID:             dto.ID,
			MenuItemID:          item.MenuItemID().Bytes(),
			Quantity:            item.Quantity(),
			UnitPrice:           item.UnitPrice().Decimal(),
			TotalPrice:          item.TotalPrice().Decimal(),
			SpecialInstructions: item.SpecialInstructions(),
		})
	}
	return dto
}

func optionalID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	orderType, err := order.ParseType(dto.OrderType)
	if err != nil {
		return nil, err
	}

	customerID, err := optionalKernelID(dto.CustomerID)
	if err != nil {
		return nil, err
	}
	tableID, err := optionalKernelID(dto.TableID)
	if err != nil {
		return nil, err
	}
	serverID, err := optionalKernelID(dto.ServerID)
	if err != nil {
		return nil, err
	}

	tax, err := kernel.NewMoney(dto.Tax)
	if err != nil {
		return nil, err
	}
	tip, err := kernel.NewMoney(dto.Tip)
	if err != nil {
		return nil, err
	}

	// Stable item order: insertion order survives the round trip.
	sort.SliceStable(dto.Items, func(i, j int) bool {
		if dto.Items[i].CreatedAt.Equal(dto.Items[j].CreatedAt) {
			return dto.Items[i].ID.String() < dto.Items[j].ID.String()
		}
		return dto.Items[i].CreatedAt.Before(dto.Items[j].CreatedAt)
	})

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id, dto.Number, status, orderType,
		customerID, tableID, serverID,
		items, tax, tip,
		dto.SpecialInstructions, dto.OrderTime, dto.ServedTime,
	)
}

func itemToDomain(dto OrderItemDTO) (*order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	menuItemID, err := kernel.UUIDFromBytes(dto.MenuItemID[:])
	if err != nil {
		return nil, err
	}
	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return nil, err
	}
	totalPrice, err := kernel.NewMoney(dto.TotalPrice)
	if err != nil {
		return nil, err
	}

	return order.RestoreItem(id, menuItemID, dto.Quantity, unitPrice, totalPrice, dto.SpecialInstructions)
}

func optionalKernelID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromBytes((*raw)[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}
