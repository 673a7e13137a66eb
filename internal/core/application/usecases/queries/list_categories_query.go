package queries

import (
	"context"
	"database/sql"
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrListCategoriesQueryIsNotConstructed is returned when a
// ListCategoriesQuery was not created via NewListCategoriesQuery.
var ErrListCategoriesQueryIsNotConstructed = errors.New(
	"ListCategoriesQuery must be created via NewListCategoriesQuery constructor",
)

// ListCategoriesQuery retrieves all menu categories, deactivated ones
// included; only soft-deleted rows are excluded.
type ListCategoriesQuery struct {
	guard guard.ConstructorGuard
}

// NewListCategoriesQuery creates a query over the category list.
func NewListCategoriesQuery() ListCategoriesQuery {
	return ListCategoriesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListCategoriesQuery) Validate() error {
	return q.guard.Validate(ErrListCategoriesQueryIsNotConstructed)
}

// CategoryResponse is one row of the category list.
type CategoryResponse struct {
	ID          kernel.UUID
	Name        string
	Description *string
	ImageURL    *string
	IsActive    bool
}

// ListCategoriesQueryHandler reads the category list sorted by name.
type ListCategoriesQueryHandler struct {
	db *gorm.DB
}

// NewListCategoriesQueryHandler creates a handler for category list reads.
func NewListCategoriesQueryHandler(db *gorm.DB) ListCategoriesQueryHandler {
	return ListCategoriesQueryHandler{db: db}
}

// Handle executes the query.
func (h ListCategoriesQueryHandler) Handle(ctx context.Context, query ListCategoriesQuery) ([]CategoryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, description, image_url, is_active
		FROM categories
		WHERE deleted_at IS NULL
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]CategoryResponse, 0)
	for rows.Next() {
		var (
			id                    uuid.UUID
			name                  string
			description, imageURL sql.NullString
			isActive              bool
		)
		if err = rows.Scan(&id, &name, &description, &imageURL, &isActive); err != nil {
			return nil, err
		}

		categoryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		categories = append(categories, CategoryResponse{
			ID:          categoryID,
			Name:        name,
			Description: nullableString(description),
			ImageURL:    nullableString(imageURL),
			IsActive:    isActive,
		})
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return categories, nil
}
