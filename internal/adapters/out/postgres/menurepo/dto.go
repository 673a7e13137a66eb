// Package menurepo persists menu categories and menu items.
package menurepo

import (
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CategoryDTO is the database representation of a menu category.
type CategoryDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"not null"`
	Description *string
	ImageURL    *string
	IsActive    bool `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

// TableName maps the DTO to the categories table.
func (CategoryDTO) TableName() string {
	return "categories"
}

// MenuItemDTO is the database representation of a menu item.
type MenuItemDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	CategoryID      uuid.UUID `gorm:"type:uuid;index;not null"`
	Name            string    `gorm:"not null"`
	Description     *string
	Price           decimal.Decimal `gorm:"type:numeric(10,2)"`
	ImageURL        *string
	PreparationTime *int
	Status          string `gorm:"not null"`
	IsActive        bool   `gorm:"not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}

// TableName maps the DTO to the menu_items table.
func (MenuItemDTO) TableName() string {
	return "menu_items"
}

func categoryFromDomain(category *menu.Category) CategoryDTO {
	return CategoryDTO{
		ID:          category.ID().Bytes(),
		Name:        category.Name(),
		Description: category.Description(),
		ImageURL:    category.ImageURL(),
		IsActive:    category.IsActive(),
	}
}

func categoryToDomain(dto CategoryDTO) (*menu.Category, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return menu.RestoreCategory(id, dto.Name, dto.Description, dto.ImageURL, dto.IsActive)
}

func menuItemFromDomain(item *menu.MenuItem) MenuItemDTO {
	return MenuItemDTO{
		ID:              item.ID().Bytes(),
		CategoryID:      item.CategoryID().Bytes(),
		Name:            item.Name(),
		Description:     item.Description(),
		Price:           item.Price().Decimal(),
		ImageURL:        item.ImageURL(),
		PreparationTime: item.PreparationTime(),
		Status:          item.Status().String(),
		IsActive:        item.IsActive(),
	}
}

func menuItemToDomain(dto MenuItemDTO) (*menu.MenuItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	categoryID, err := kernel.UUIDFromBytes(dto.CategoryID[:])
	if err != nil {
		return nil, err
	}
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}
	status, err := menu.ParseItemStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return menu.RestoreMenuItem(id, categoryID, dto.Name, dto.Description, price,
		dto.ImageURL, dto.PreparationTime, status, dto.IsActive)
}
