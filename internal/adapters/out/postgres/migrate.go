package postgres

import (
	"restaurant/internal/adapters/out/postgres/customerrepo"
	"restaurant/internal/adapters/out/postgres/diningrepo"
	"restaurant/internal/adapters/out/postgres/menurepo"
	"restaurant/internal/adapters/out/postgres/ordernum"
	"restaurant/internal/adapters/out/postgres/orderrepo"
	"restaurant/internal/adapters/out/postgres/staffrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates the database schema for all persisted models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&menurepo.CategoryDTO{},
		&menurepo.MenuItemDTO{},
		&diningrepo.TableDTO{},
		&staffrepo.StaffDTO{},
		&customerrepo.CustomerDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&ordernum.CounterDTO{},
	)
}
