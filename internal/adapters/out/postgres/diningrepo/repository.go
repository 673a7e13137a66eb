package diningrepo

import (
	"context"
	"errors"

	"restaurant/internal/core/domain/model/dining"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

const uniqueViolation = "23505"

// GormTableRepository implements ports.TableRepository using GORM.
type GormTableRepository struct {
	db *gorm.DB
}

// NewGormTableRepository creates a new GORM table repository.
func NewGormTableRepository(db *gorm.DB) *GormTableRepository {
	return &GormTableRepository{db: db}
}

func (r *GormTableRepository) Add(ctx context.Context, table *dining.Table) error {
	if err := table.Validate(); err != nil {
		return err
	}

	dto := fromDomain(table)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isUniqueViolation(err) {
			return errs.NewValueIsInvalidErrorWithCause("number", err)
		}
		return err
	}
	return nil
}

func (r *GormTableRepository) Update(ctx context.Context, table *dining.Table) error {
	if err := table.Validate(); err != nil {
		return err
	}

	dto := fromDomain(table)
	result := r.db.WithContext(ctx).
		Model(&TableDTO{}).
		Where("id = ?", dto.ID).
		Select("Number", "Capacity", "Status", "Location", "IsActive", "UpdatedAt").
		Updates(&dto)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return errs.NewValueIsInvalidErrorWithCause("number", result.Error)
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("table", table.ID().String())
	}
	return nil
}

func (r *GormTableRepository) Get(ctx context.Context, id kernel.UUID) (*dining.Table, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TableDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("table", id.String())
		}
		return nil, err
	}
	return toDomain(dto)
}

func (r *GormTableRepository) Remove(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Where("id = ?", id.Bytes()).Delete(&TableDTO{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("table", id.String())
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
