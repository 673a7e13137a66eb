package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrListCustomersQueryIsNotConstructed is returned when a
// ListCustomersQuery was not created via NewListCustomersQuery.
var ErrListCustomersQueryIsNotConstructed = errors.New(
	"ListCustomersQuery must be created via NewListCustomersQuery constructor",
)

// ListCustomersQuery retrieves all customers.
type ListCustomersQuery struct {
	guard guard.ConstructorGuard
}

// NewListCustomersQuery creates a query over the customer list.
func NewListCustomersQuery() ListCustomersQuery {
	return ListCustomersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListCustomersQuery) Validate() error {
	return q.guard.Validate(ErrListCustomersQueryIsNotConstructed)
}

// CustomerResponse is one row of the customer list.
type CustomerResponse struct {
	ID          kernel.UUID
	FirstName   string
	LastName    string
	Email       *string
	Phone       *string
	DateOfBirth *time.Time
	Address     *string
	IsActive    bool
}

// ListCustomersQueryHandler reads the customer list sorted by last name.
type ListCustomersQueryHandler struct {
	db *gorm.DB
}

// NewListCustomersQueryHandler creates a handler for customer list reads.
func NewListCustomersQueryHandler(db *gorm.DB) ListCustomersQueryHandler {
	return ListCustomersQueryHandler{db: db}
}

// Handle executes the query.
func (h ListCustomersQueryHandler) Handle(ctx context.Context, query ListCustomersQuery) ([]CustomerResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, first_name, last_name, email, phone, date_of_birth,
			address, is_active
		FROM customers
		WHERE deleted_at IS NULL
		ORDER BY last_name, first_name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := make([]CustomerResponse, 0)
	for rows.Next() {
		var (
			id                   uuid.UUID
			firstName, lastName  string
			email, phone, address sql.NullString
			dateOfBirth          sql.NullTime
			isActive             bool
		)
		if err = rows.Scan(&id, &firstName, &lastName, &email, &phone,
			&dateOfBirth, &address, &isActive); err != nil {
			return nil, err
		}

		customerID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		customers = append(customers, CustomerResponse{
			ID:          customerID,
			FirstName:   firstName,
			LastName:    lastName,
			Email:       nullableString(email),
			Phone:       nullableString(phone),
			DateOfBirth: nullableTime(dateOfBirth),
			Address:     nullableString(address),
			IsActive:    isActive,
		})
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return customers, nil
}
