package queries

import (
	"context"
	"database/sql"
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/pkg/guard"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ErrListMenuItemsQueryIsNotConstructed is returned when a
// ListMenuItemsQuery was not created via NewListMenuItemsQuery.
var ErrListMenuItemsQueryIsNotConstructed = errors.New(
	"ListMenuItemsQuery must be created via NewListMenuItemsQuery constructor",
)

// ListMenuItemsQuery retrieves menu items, optionally restricted to one
// category or to items currently orderable.
type ListMenuItemsQuery struct {
	categoryID    *kernel.UUID
	availableOnly bool

	guard guard.ConstructorGuard
}

// NewListMenuItemsQuery creates a query over the menu. A nil categoryID
// matches every category; availableOnly restricts the result to active items
// in the available status.
func NewListMenuItemsQuery(categoryID *kernel.UUID, availableOnly bool) (ListMenuItemsQuery, error) {
	if categoryID != nil {
		if err := categoryID.Validate(); err != nil {
			return ListMenuItemsQuery{}, err
		}
	}

	return ListMenuItemsQuery{
		categoryID:    categoryID,
		availableOnly: availableOnly,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListMenuItemsQuery) Validate() error {
	return q.guard.Validate(ErrListMenuItemsQueryIsNotConstructed)
}

// CategoryID returns the optional category filter.
func (q ListMenuItemsQuery) CategoryID() *kernel.UUID {
	return q.categoryID
}

// AvailableOnly reports whether the result is restricted to orderable items.
func (q ListMenuItemsQuery) AvailableOnly() bool {
	return q.availableOnly
}

// MenuItemResponse is one row of the menu list.
type MenuItemResponse struct {
	ID              kernel.UUID
	CategoryID      kernel.UUID
	Name            string
	Description     *string
	Price           kernel.Money
	ImageURL        *string
	PreparationTime *int
	Status          menu.ItemStatus
	IsActive        bool
}

// ListMenuItemsQueryHandler reads the menu sorted by name.
type ListMenuItemsQueryHandler struct {
	db *gorm.DB
}

// NewListMenuItemsQueryHandler creates a handler for menu list reads.
func NewListMenuItemsQueryHandler(db *gorm.DB) ListMenuItemsQueryHandler {
	return ListMenuItemsQueryHandler{db: db}
}

// Handle executes the query.
func (h ListMenuItemsQueryHandler) Handle(ctx context.Context, query ListMenuItemsQuery) ([]MenuItemResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	q := `
		SELECT id, category_id, name, description, price, image_url,
			preparation_time, status, is_active
		FROM menu_items
		WHERE deleted_at IS NULL
	`
	args := make([]any, 0, 2)
	if categoryID := query.CategoryID(); categoryID != nil {
		q += " AND category_id = ?"
		args = append(args, categoryID.Bytes())
	}
	if query.AvailableOnly() {
		q += " AND is_active AND status = ?"
		args = append(args, menu.ItemStatusAvailable.String())
	}
	q += " ORDER BY name"

	rows, err := h.db.WithContext(ctx).Raw(q, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]MenuItemResponse, 0)
	for rows.Next() {
		var (
			id, categoryID        uuid.UUID
			name, status          string
			description, imageURL sql.NullString
			price                 decimal.Decimal
			preparationTime       sql.NullInt64
			isActive              bool
		)
		if err = rows.Scan(&id, &categoryID, &name, &description, &price,
			&imageURL, &preparationTime, &status, &isActive); err != nil {
			return nil, err
		}

		item, err := buildMenuItemResponse(
			id, categoryID, name, description, price, imageURL, preparationTime, status, isActive)
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

func buildMenuItemResponse(
	id, categoryID uuid.UUID,
	name string,
	description sql.NullString,
	price decimal.Decimal,
	imageURL sql.NullString,
	preparationTime sql.NullInt64,
	statusStr string,
	isActive bool,
) (MenuItemResponse, error) {
	itemID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return MenuItemResponse{}, err
	}
	catID, err := kernel.UUIDFromBytes(categoryID[:])
	if err != nil {
		return MenuItemResponse{}, err
	}
	priceMoney, err := kernel.NewMoney(price)
	if err != nil {
		return MenuItemResponse{}, err
	}
	status, err := menu.ParseItemStatus(statusStr)
	if err != nil {
		return MenuItemResponse{}, err
	}

	return MenuItemResponse{
		ID:              itemID,
		CategoryID:      catID,
		Name:            name,
		Description:     nullableString(description),
		Price:           priceMoney,
		ImageURL:        nullableString(imageURL),
		PreparationTime: nullableInt(preparationTime),
		Status:          status,
		IsActive:        isActive,
	}, nil
}
