// Package ordernum issues human-presentable order numbers of the form
// ORD-YYYYMMDD-NNNNNN. The sequence is backed by a per-day database counter,
// so numbers stay unique across restarts and concurrent writers.
package ordernum

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// CounterDTO is the database representation of one day's counter.
type CounterDTO struct {
	Day     string `gorm:"primaryKey"`
	Counter int64  `gorm:"not null"`
}

// TableName maps the DTO to the order_number_counters table.
func (CounterDTO) TableName() string {
	return "order_number_counters"
}

// Generator implements ports.OrderNumberGenerator on PostgreSQL.
type Generator struct {
	db  *gorm.DB
	now func() time.Time
}

// NewGenerator creates a new database-backed order number generator.
func NewGenerator(db *gorm.DB) *Generator {
	return &Generator{
		db:  db,
		now: time.Now,
	}
}

// Next issues the next order number. The atomic upsert makes it safe for
// concurrent callers.
func (g *Generator) Next(ctx context.Context) (string, error) {
	day := g.now().UTC().Format("20060102")

	var counter int64
	err := g.db.WithContext(ctx).Raw(`
		INSERT INTO order_number_counters (day, counter)
		VALUES (?, 1)
		ON CONFLICT (day)
		DO UPDATE SET counter = order_number_counters.counter + 1
		RETURNING counter
	`, day).Scan(&counter).Error
	if err != nil {
		return "", err
	}

	return formatNumber(day, counter), nil
}

func formatNumber(day string, counter int64) string {
	return fmt.Sprintf("ORD-%s-%06d", day, counter)
}
