package queries

import (
	"context"
	"database/sql"
	"errors"

	"restaurant/internal/core/domain/model/dining"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrListTablesQueryIsNotConstructed is returned when a ListTablesQuery was
// not created via NewListTablesQuery.
var ErrListTablesQueryIsNotConstructed = errors.New(
	"ListTablesQuery must be created via NewListTablesQuery constructor",
)

// ListTablesQuery retrieves tables, optionally restricted to free ones.
type ListTablesQuery struct {
	freeOnly bool

	guard guard.ConstructorGuard
}

// NewListTablesQuery creates a query over the table list. freeOnly restricts
// the result to active tables in the available status.
func NewListTablesQuery(freeOnly bool) ListTablesQuery {
	return ListTablesQuery{
		freeOnly: freeOnly,
		guard:    guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q ListTablesQuery) Validate() error {
	return q.guard.Validate(ErrListTablesQueryIsNotConstructed)
}

// FreeOnly reports whether the result is restricted to seatable tables.
func (q ListTablesQuery) FreeOnly() bool {
	return q.freeOnly
}

// TableResponse is one row of the table list.
type TableResponse struct {
	ID       kernel.UUID
	Number   string
	Capacity int
	Status   dining.TableStatus
	Location *string
	IsActive bool
}

// ListTablesQueryHandler reads the table list sorted by number.
type ListTablesQueryHandler struct {
	db *gorm.DB
}

// NewListTablesQueryHandler creates a handler for table list reads.
func NewListTablesQueryHandler(db *gorm.DB) ListTablesQueryHandler {
	return ListTablesQueryHandler{db: db}
}

// Handle executes the query.
func (h ListTablesQueryHandler) Handle(ctx context.Context, query ListTablesQuery) ([]TableResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	q := `
		SELECT id, number, capacity, status, location, is_active
		FROM dining_tables
		WHERE deleted_at IS NULL
	`
	args := make([]any, 0, 1)
	if query.FreeOnly() {
		q += " AND is_active AND status = ?"
		args = append(args, dining.TableStatusAvailable.String())
	}
	q += " ORDER BY number"

	rows, err := h.db.WithContext(ctx).Raw(q, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tables := make([]TableResponse, 0)
	for rows.Next() {
		var (
			id             uuid.UUID
			number, status string
			capacity       int
			location       sql.NullString
			isActive       bool
		)
		if err = rows.Scan(&id, &number, &capacity, &status, &location, &isActive); err != nil {
			return nil, err
		}

		tableID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		tableStatus, statusErr := dining.ParseTableStatus(status)
		if statusErr != nil {
			return nil, statusErr
		}
		tables = append(tables, TableResponse{
			ID:       tableID,
			Number:   number,
			Capacity: capacity,
			Status:   tableStatus,
			Location: nullableString(location),
			IsActive: isActive,
		})
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return tables, nil
}
