// Package diningrepo persists dining tables.
package diningrepo

import (
	"time"

	"restaurant/internal/core/domain/model/dining"
	"restaurant/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TableDTO is the database representation of a dining table.
type TableDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Number    string    `gorm:"uniqueIndex;not null"`
	Capacity  int       `gorm:"not null"`
	Status    string    `gorm:"not null"`
	Location  *string
	IsActive  bool `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName maps the DTO to the dining_tables table.
func (TableDTO) TableName() string {
	return "dining_tables"
}

func fromDomain(table *dining.Table) TableDTO {
	return TableDTO{
		ID:       table.ID().Bytes(),
		Number:   table.Number(),
		Capacity: table.Capacity(),
		Status:   table.Status().String(),
		Location: table.Location(),
		IsActive: table.IsActive(),
	}
}

func toDomain(dto TableDTO) (*dining.Table, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	status, err := dining.ParseTableStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	return dining.RestoreTable(id, dto.Number, dto.Capacity, status, dto.Location, dto.IsActive)
}
