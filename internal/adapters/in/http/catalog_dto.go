package http

import (
	"time"

	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/customer"
	"restaurant/internal/core/domain/model/dining"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/staff"

	"github.com/google/uuid"
	"github.com/oapi-codegen/runtime/types"
)

// CreateCategoryRequest is the payload for adding a category.
type CreateCategoryRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
}

// UpdateCategoryRequest is the full-replace payload for a category.
type UpdateCategoryRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
	IsActive    bool    `json:"is_active"`
}

// CategoryResponse is a category on the wire.
type CategoryResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	ImageURL    *string   `json:"image_url,omitempty"`
	IsActive    bool      `json:"is_active"`
}

// CreateMenuItemRequest is the payload for adding a menu item.
type CreateMenuItemRequest struct {
	CategoryID      uuid.UUID `json:"category_id"`
	Name            string    `json:"name"`
	Description     *string   `json:"description,omitempty"`
	Price           float64   `json:"price"`
	ImageURL        *string   `json:"image_url,omitempty"`
	PreparationTime *int      `json:"preparation_time,omitempty"`
}

// UpdateMenuItemRequest is the full-replace payload for a menu item.
type UpdateMenuItemRequest struct {
	CategoryID      uuid.UUID `json:"category_id"`
	Name            string    `json:"name"`
	Description     *string   `json:"description,omitempty"`
	Price           float64   `json:"price"`
	ImageURL        *string   `json:"image_url,omitempty"`
	PreparationTime *int      `json:"preparation_time,omitempty"`
	Status          string    `json:"status"`
	IsActive        bool      `json:"is_active"`
}

// MenuItemResponse is a menu item on the wire.
type MenuItemResponse struct {
	ID              uuid.UUID `json:"id"`
	CategoryID      uuid.UUID `json:"category_id"`
	Name            string    `json:"name"`
	Description     *string   `json:"description,omitempty"`
	Price           float64   `json:"price"`
	ImageURL        *string   `json:"image_url,omitempty"`
	PreparationTime *int      `json:"preparation_time,omitempty"`
	Status          string    `json:"status"`
	IsActive        bool      `json:"is_active"`
}

// CreateTableRequest is the payload for adding a table.
type CreateTableRequest struct {
	Number   string  `json:"number"`
	Capacity int     `json:"capacity"`
	Location *string `json:"location,omitempty"`
}

// UpdateTableRequest is the full-replace payload for a table.
type UpdateTableRequest struct {
	Number   string  `json:"number"`
	Capacity int     `json:"capacity"`
	Status   string  `json:"status"`
	Location *string `json:"location,omitempty"`
	IsActive bool    `json:"is_active"`
}

// TableResponse is a table on the wire.
type TableResponse struct {
	ID       uuid.UUID `json:"id"`
	Number   string    `json:"number"`
	Capacity int       `json:"capacity"`
	Status   string    `json:"status"`
	Location *string   `json:"location,omitempty"`
	IsActive bool      `json:"is_active"`
}

// CreateStaffRequest is the payload for registering a staff member.
type CreateStaffRequest struct {
	FirstName  string      `json:"first_name"`
	LastName   string      `json:"last_name"`
	Email      string      `json:"email"`
	Phone      *string     `json:"phone,omitempty"`
	Role       string      `json:"role"`
	HourlyRate *float64    `json:"hourly_rate,omitempty"`
	HireDate   *types.Date `json:"hire_date,omitempty"`
}

// UpdateStaffRequest is the full-replace payload for a staff member. The hire
// date is immutable and therefore absent.
type UpdateStaffRequest struct {
	FirstName  string   `json:"first_name"`
	LastName   string   `json:"last_name"`
	Email      string   `json:"email"`
	Phone      *string  `json:"phone,omitempty"`
	Role       string   `json:"role"`
	Status     string   `json:"status"`
	HourlyRate *float64 `json:"hourly_rate,omitempty"`
}

// StaffResponse is a staff member on the wire.
type StaffResponse struct {
	ID         uuid.UUID   `json:"id"`
	FirstName  string      `json:"first_name"`
	LastName   string      `json:"last_name"`
	Email      string      `json:"email"`
	Phone      *string     `json:"phone,omitempty"`
	Role       string      `json:"role"`
	Status     string      `json:"status"`
	HourlyRate *float64    `json:"hourly_rate,omitempty"`
	HireDate   *types.Date `json:"hire_date,omitempty"`
}

// CreateCustomerRequest is the payload for registering a customer.
type CreateCustomerRequest struct {
	FirstName   string      `json:"first_name"`
	LastName    string      `json:"last_name"`
	Email       *string     `json:"email,omitempty"`
	Phone       *string     `json:"phone,omitempty"`
	DateOfBirth *types.Date `json:"date_of_birth,omitempty"`
	Address     *string     `json:"address,omitempty"`
}

// UpdateCustomerRequest is the full-replace payload for a customer.
type UpdateCustomerRequest struct {
	FirstName   string      `json:"first_name"`
	LastName    string      `json:"last_name"`
	Email       *string     `json:"email,omitempty"`
	Phone       *string     `json:"phone,omitempty"`
	DateOfBirth *types.Date `json:"date_of_birth,omitempty"`
	Address     *string     `json:"address,omitempty"`
	IsActive    bool        `json:"is_active"`
}

// CustomerResponse is a customer on the wire.
type CustomerResponse struct {
	ID          uuid.UUID   `json:"id"`
	FirstName   string      `json:"first_name"`
	LastName    string      `json:"last_name"`
	Email       *string     `json:"email,omitempty"`
	Phone       *string     `json:"phone,omitempty"`
	DateOfBirth *types.Date `json:"date_of_birth,omitempty"`
	Address     *string     `json:"address,omitempty"`
	IsActive    bool        `json:"is_active"`
}

func wireDate(t *time.Time) *types.Date {
	if t == nil {
		return nil
	}
	return &types.Date{Time: *t}
}

func toOptionalDate(d *types.Date) *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}

func wireMoney(m *kernel.Money) *float64 {
	if m == nil {
		return nil
	}
	f := m.Float64()
	return &f
}

func categoryFromAggregate(c *menu.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID().Bytes(),
		Name:        c.Name(),
		Description: c.Description(),
		ImageURL:    c.ImageURL(),
		IsActive:    c.IsActive(),
	}
}

func categoryFromReadModel(model queries.CategoryResponse) CategoryResponse {
	return CategoryResponse{
		ID:          model.ID.Bytes(),
		Name:        model.Name,
		Description: model.Description,
		ImageURL:    model.ImageURL,
		IsActive:    model.IsActive,
	}
}

func menuItemFromAggregate(item *menu.MenuItem) MenuItemResponse {
	return MenuItemResponse{
		ID:              item.ID().Bytes(),
		CategoryID:      item.CategoryID().Bytes(),
		Name:            item.Name(),
		Description:     item.Description(),
		Price:           item.Price().Float64(),
		ImageURL:        item.ImageURL(),
		PreparationTime: item.PreparationTime(),
		Status:          item.Status().String(),
		IsActive:        item.IsActive(),
	}
}

func menuItemFromReadModel(model queries.MenuItemResponse) MenuItemResponse {
	return MenuItemResponse{
		ID:              model.ID.Bytes(),
		CategoryID:      model.CategoryID.Bytes(),
		Name:            model.Name,
		Description:     model.Description,
		Price:           model.Price.Float64(),
		ImageURL:        model.ImageURL,
		PreparationTime: model.PreparationTime,
		Status:          model.Status.String(),
		IsActive:        model.IsActive,
	}
}

func tableFromAggregate(t *dining.Table) TableResponse {
	return TableResponse{
		ID:       t.ID().Bytes(),
		Number:   t.Number(),
		Capacity: t.Capacity(),
		Status:   t.Status().String(),
		Location: t.Location(),
		IsActive: t.IsActive(),
	}
}

func tableFromReadModel(model queries.TableResponse) TableResponse {
	return TableResponse{
		ID:       model.ID.Bytes(),
		Number:   model.Number,
		Capacity: model.Capacity,
		Status:   model.Status.String(),
		Location: model.Location,
		IsActive: model.IsActive,
	}
}

func staffFromAggregate(member *staff.Staff) StaffResponse {
	return StaffResponse{
		ID:         member.ID().Bytes(),
		FirstName:  member.FirstName(),
		LastName:   member.LastName(),
		Email:      member.Email(),
		Phone:      member.Phone(),
		Role:       member.Role().String(),
		Status:     member.Status().String(),
		HourlyRate: wireMoney(member.HourlyRate()),
		HireDate:   wireDate(member.HireDate()),
	}
}

func staffFromReadModel(model queries.StaffResponse) StaffResponse {
	return StaffResponse{
		ID:         model.ID.Bytes(),
		FirstName:  model.FirstName,
		LastName:   model.LastName,
		Email:      model.Email,
		Phone:      model.Phone,
		Role:       model.Role.String(),
		Status:     model.Status.String(),
		HourlyRate: wireMoney(model.HourlyRate),
		HireDate:   wireDate(model.HireDate),
	}
}

func customerFromAggregate(c *customer.Customer) CustomerResponse {
	return CustomerResponse{
		ID:          c.ID().Bytes(),
		FirstName:   c.FirstName(),
		LastName:    c.LastName(),
		Email:       c.Email(),
		Phone:       c.Phone(),
		DateOfBirth: wireDate(c.DateOfBirth()),
		Address:     c.Address(),
		IsActive:    c.IsActive(),
	}
}

func customerFromReadModel(model queries.CustomerResponse) CustomerResponse {
	return CustomerResponse{
		ID:          model.ID.Bytes(),
		FirstName:   model.FirstName,
		LastName:    model.LastName,
		Email:       model.Email,
		Phone:       model.Phone,
		DateOfBirth: wireDate(model.DateOfBirth),
		Address:     model.Address,
		IsActive:    model.IsActive,
	}
}
