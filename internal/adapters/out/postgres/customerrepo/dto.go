// Package customerrepo persists customers.
package customerrepo

import (
	"time"

	"restaurant/internal/core/domain/model/customer"
	"restaurant/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CustomerDTO is the database representation of a customer.
type CustomerDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName   string    `gorm:"not null"`
	LastName    string    `gorm:"not null"`
	Email       *string   `gorm:"uniqueIndex"`
	Phone       *string
	DateOfBirth *time.Time `gorm:"type:date"`
	Address     *string
	IsActive    bool `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

// TableName maps the DTO to the customers table.
func (CustomerDTO) TableName() string {
	return "customers"
}

func fromDomain(c *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:          c.ID().Bytes(),
		FirstName:   c.FirstName(),
		LastName:    c.LastName(),
		Email:       c.Email(),
		Phone:       c.Phone(),
		DateOfBirth: c.DateOfBirth(),
		Address:     c.Address(),
		IsActive:    c.IsActive(),
	}
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return customer.RestoreCustomer(id, dto.FirstName, dto.LastName,
		dto.Email, dto.Phone, dto.DateOfBirth, dto.Address, dto.IsActive)
}
