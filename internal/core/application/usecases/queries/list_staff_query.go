package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/staff"
	"restaurant/internal/pkg/guard"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ErrListStaffQueryIsNotConstructed is returned when a ListStaffQuery was
// not created via NewListStaffQuery.
var ErrListStaffQueryIsNotConstructed = errors.New(
	"ListStaffQuery must be created via NewListStaffQuery constructor",
)

// ListStaffQuery retrieves all staff members, optionally filtered by role.
type ListStaffQuery struct {
	role *staff.Role

	guard guard.ConstructorGuard
}

// NewListStaffQuery creates a query over the staff list. A nil role matches
// every role.
func NewListStaffQuery(role *staff.Role) (ListStaffQuery, error) {
	if role != nil {
		if err := role.Validate(); err != nil {
			return ListStaffQuery{}, err
		}
	}

	return ListStaffQuery{
		role:  role,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListStaffQuery) Validate() error {
	return q.guard.Validate(ErrListStaffQueryIsNotConstructed)
}

// Role returns the optional role filter.
func (q ListStaffQuery) Role() *staff.Role {
	return q.role
}

// StaffResponse is one row of the staff list.
type StaffResponse struct {
	ID         kernel.UUID
	FirstName  string
	LastName   string
	Email      string
	Phone      *string
	Role       staff.Role
	Status     staff.Status
	HourlyRate *kernel.Money
	HireDate   *time.Time
}

// ListStaffQueryHandler reads the staff list sorted by last name.
type ListStaffQueryHandler struct {
	db *gorm.DB
}

// NewListStaffQueryHandler creates a handler for staff list reads.
func NewListStaffQueryHandler(db *gorm.DB) ListStaffQueryHandler {
	return ListStaffQueryHandler{db: db}
}

// Handle executes the query.
func (h ListStaffQueryHandler) Handle(ctx context.Context, query ListStaffQuery) ([]StaffResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	q := `
		SELECT id, first_name, last_name, email, phone, role, status,
			hourly_rate, hire_date
		FROM staff
		WHERE deleted_at IS NULL
	`
	args := make([]any, 0, 1)
	if role := query.Role(); role != nil {
		q += " AND role = ?"
		args = append(args, role.String())
	}
	q += " ORDER BY last_name, first_name"

	rows, err := h.db.WithContext(ctx).Raw(q, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := make([]StaffResponse, 0)
	for rows.Next() {
		var (
			id                                 uuid.UUID
			firstName, lastName, email         string
			phone                              sql.NullString
			roleStr, statusStr                 string
			hourlyRate                         decimal.NullDecimal
			hireDate                           sql.NullTime
		)
		if err = rows.Scan(&id, &firstName, &lastName, &email, &phone,
			&roleStr, &statusStr, &hourlyRate, &hireDate); err != nil {
			return nil, err
		}

		member, err := buildStaffResponse(
			id, firstName, lastName, email, phone, roleStr, statusStr, hourlyRate, hireDate)
		if err != nil {
			return nil, err
		}
		members = append(members, member)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return members, nil
}

func buildStaffResponse(
	id uuid.UUID,
	firstName, lastName, email string,
	phone sql.NullString,
	roleStr, statusStr string,
	hourlyRate decimal.NullDecimal,
	hireDate sql.NullTime,
) (StaffResponse, error) {
	staffID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return StaffResponse{}, err
	}
	role, err := staff.ParseRole(roleStr)
	if err != nil {
		return StaffResponse{}, err
	}
	status, err := staff.ParseStatus(statusStr)
	if err != nil {
		return StaffResponse{}, err
	}

	var rate *kernel.Money
	if hourlyRate.Valid {
		money, moneyErr := kernel.NewMoney(hourlyRate.Decimal)
		if moneyErr != nil {
			return StaffResponse{}, moneyErr
		}
		rate = &money
	}

	return StaffResponse{
		ID:         staffID,
		FirstName:  firstName,
		LastName:   lastName,
		Email:      email,
		Phone:      nullableString(phone),
		Role:       role,
		Status:     status,
		HourlyRate: rate,
		HireDate:   nullableTime(hireDate),
	}, nil
}
