// Package staffrepo persists staff members.
package staffrepo

import (
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/staff"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// StaffDTO is the database representation of a staff member.
type StaffDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName  string    `gorm:"not null"`
	LastName   string    `gorm:"not null"`
	Email      string    `gorm:"uniqueIndex;not null"`
	Phone      *string
	Role       string `gorm:"not null"`
	Status     string `gorm:"not null"`
	HourlyRate *decimal.Decimal `gorm:"type:numeric(10,2)"`
	HireDate   *time.Time       `gorm:"type:date"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

// TableName maps the DTO to the staff table.
func (StaffDTO) TableName() string {
	return "staff"
}

func fromDomain(member *staff.Staff) StaffDTO {
	dto := StaffDTO{
		ID:        member.ID().Bytes(),
		FirstName: member.FirstName(),
		LastName:  member.LastName(),
		Email:     member.Email(),
		Phone:     member.Phone(),
		Role:      member.Role().String(),
		Status:    member.Status().String(),
		HireDate:  member.HireDate(),
	}
	if rate := member.HourlyRate(); rate != nil {
		amount := rate.Decimal()
		dto.HourlyRate = &amount
	}
	return dto
}

func toDomain(dto StaffDTO) (*staff.Staff, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	role, err := staff.ParseRole(dto.Role)
	if err != nil {
		return nil, err
	}
	status, err := staff.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	var hourlyRate *kernel.Money
	if dto.HourlyRate != nil {
		rate, rateErr := kernel.NewMoney(*dto.HourlyRate)
		if rateErr != nil {
			return nil, rateErr
		}
		hourlyRate = &rate
	}

	return staff.RestoreStaff(id, dto.FirstName, dto.LastName, dto.Email,
		dto.Phone, role, status, hourlyRate, dto.HireDate)
}
