package http

import (
	"net/http"
	"strconv"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/dining"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/staff"
	"restaurant/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Handlers bundles the application handlers the server dispatches to.
type Handlers struct {
	CreateOrder commands.CreateOrderCommandHandler
	UpdateOrder commands.UpdateOrderCommandHandler
	RemoveOrder commands.RemoveOrderCommandHandler

	CreateCategory commands.CreateCategoryCommandHandler
	UpdateCategory commands.UpdateCategoryCommandHandler
	RemoveCategory commands.RemoveCategoryCommandHandler

	CreateMenuItem commands.CreateMenuItemCommandHandler
	UpdateMenuItem commands.UpdateMenuItemCommandHandler
	RemoveMenuItem commands.RemoveMenuItemCommandHandler

	CreateTable commands.CreateTableCommandHandler
	UpdateTable commands.UpdateTableCommandHandler
	RemoveTable commands.RemoveTableCommandHandler

	CreateStaff commands.CreateStaffCommandHandler
	UpdateStaff commands.UpdateStaffCommandHandler
	RemoveStaff commands.RemoveStaffCommandHandler

	CreateCustomer commands.CreateCustomerCommandHandler
	UpdateCustomer commands.UpdateCustomerCommandHandler
	RemoveCustomer commands.RemoveCustomerCommandHandler

	GetOrder       queries.GetOrderQueryHandler
	ListOrders     queries.ListOrdersQueryHandler
	ListCategories queries.ListCategoriesQueryHandler
	ListMenuItems  queries.ListMenuItemsQueryHandler
	ListTables     queries.ListTablesQueryHandler
	ListStaff      queries.ListStaffQueryHandler
	ListCustomers  queries.ListCustomersQueryHandler
}

// Server dispatches HTTP requests to application command and query handlers.
type Server struct {
	h Handlers
}

// NewServer creates a new HTTP server over the given handlers.
func NewServer(h Handlers) *Server {
	return &Server{h: h}
}

// RegisterRoutes mounts all API routes on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.ListOrders)
	api.GET("/orders/:orderId", s.GetOrder)
	api.PATCH("/orders/:orderId", s.UpdateOrder)
	api.DELETE("/orders/:orderId", s.RemoveOrder)

	api.POST("/categories", s.CreateCategory)
	api.GET("/categories", s.ListCategories)
	api.PUT("/categories/:categoryId", s.UpdateCategory)
	api.DELETE("/categories/:categoryId", s.RemoveCategory)

	api.POST("/menu-items", s.CreateMenuItem)
	api.GET("/menu-items", s.ListMenuItems)
	api.PUT("/menu-items/:menuItemId", s.UpdateMenuItem)
	api.DELETE("/menu-items/:menuItemId", s.RemoveMenuItem)

	api.POST("/tables", s.CreateTable)
	api.GET("/tables", s.ListTables)
	api.PUT("/tables/:tableId", s.UpdateTable)
	api.DELETE("/tables/:tableId", s.RemoveTable)

	api.POST("/staff", s.CreateStaff)
	api.GET("/staff", s.ListStaff)
	api.PUT("/staff/:staffId", s.UpdateStaff)
	api.DELETE("/staff/:staffId", s.RemoveStaff)

	api.POST("/customers", s.CreateCustomer)
	api.GET("/customers", s.ListCustomers)
	api.PUT("/customers/:customerId", s.UpdateCustomer)
	api.DELETE("/customers/:customerId", s.RemoveCustomer)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	orderType, err := order.ParseType(req.OrderType)
	if err != nil {
		return respondError(ctx, err)
	}
	customerID, err := toOptionalID(req.CustomerID)
	if err != nil {
		return respondError(ctx, err)
	}
	tableID, err := toOptionalID(req.TableID)
	if err != nil {
		return respondError(ctx, err)
	}
	serverID, err := toOptionalID(req.ServerID)
	if err != nil {
		return respondError(ctx, err)
	}
	items, err := toItemInputs(req.Items)
	if err != nil {
		return respondError(ctx, err)
	}
	tax, err := toOptionalMoney(req.Tax)
	if err != nil {
		return respondError(ctx, err)
	}
	tip, err := toOptionalMoney(req.Tip)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), orderType,
		customerID, tableID, serverID, items, tax, tip, req.SpecialInstructions)
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.h.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, orderFromAggregate(created))
}

// GetOrder handles GET /api/v1/orders/:orderId.
func (s *Server) GetOrder(ctx echo.Context) error {
	id, err := pathID(ctx, "orderId")
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return respondError(ctx, err)
	}

	model, err := s.h.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, orderFromReadModel(model))
}

// ListOrders handles GET /api/v1/orders with optional status and order_type
// filters.
func (s *Server) ListOrders(ctx echo.Context) error {
	var status *order.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := order.ParseStatus(raw)
		if err != nil {
			return respondError(ctx, err)
		}
		status = &parsed
	}

	var orderType *order.Type
	if raw := ctx.QueryParam("order_type"); raw != "" {
		parsed, err := order.ParseType(raw)
		if err != nil {
			return respondError(ctx, err)
		}
		orderType = &parsed
	}

	query, err := queries.NewListOrdersQuery(status, orderType)
	if err != nil {
		return respondError(ctx, err)
	}

	models, err := s.h.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]OrderSummaryResponse, 0, len(models))
	for _, model := range models {
		response = append(response, orderSummaryFromReadModel(model))
	}
	return ctx.JSON(http.StatusOK, response)
}

// UpdateOrder handles PATCH /api/v1/orders/:orderId.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	id, err := pathID(ctx, "orderId")
	if err != nil {
		return respondError(ctx, err)
	}

	var req UpdateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	patch, err := toOrderPatch(req)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderCommand(id, patch)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.h.UpdateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, orderFromAggregate(updated))
}

// RemoveOrder handles DELETE /api/v1/orders/:orderId.
func (s *Server) RemoveOrder(ctx echo.Context) error {
	id, err := pathID(ctx, "orderId")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRemoveOrderCommand(id)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.h.RemoveOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// CreateCategory handles POST /api/v1/categories.
func (s *Server) CreateCategory(ctx echo.Context) error {
	var req CreateCategoryRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCreateCategoryCommand(kernel.NewUUID(), req.Name, req.Description, req.ImageURL)
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.h.CreateCategory.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, categoryFromAggregate(created))
}

// ListCategories handles GET /api/v1/categories.
func (s *Server) ListCategories(ctx echo.Context) error {
	models, err := s.h.ListCategories.Handle(ctx.Request().Context(), queries.NewListCategoriesQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]CategoryResponse, 0, len(models))
	for _, model := range models {
		response = append(response, categoryFromReadModel(model))
	}
	return ctx.JSON(http.StatusOK, response)
}

// UpdateCategory handles PUT /api/v1/categories/:categoryId.
func (s *Server) UpdateCategory(ctx echo.Context) error {
	id, err := pathID(ctx, "categoryId")
	if err != nil {
		return respondError(ctx, err)
	}

	var req UpdateCategoryRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdateCategoryCommand(id, req.Name, req.Description, req.ImageURL, req.IsActive)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.h.UpdateCategory.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, categoryFromAggregate(updated))
}

// RemoveCategory handles DELETE /api/v1/categories/:categoryId.
func (s *Server) RemoveCategory(ctx echo.Context) error {
	id, err := pathID(ctx, "categoryId")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRemoveCategoryCommand(id)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.h.RemoveCategory.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// CreateMenuItem handles POST /api/v1/menu-items.
func (s *Server) CreateMenuItem(ctx echo.Context) error {
	var req CreateMenuItemRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	categoryID, err := kernel.UUIDFromBytes(req.CategoryID[:])
	if err != nil {
		return respondError(ctx, err)
	}
	price, err := kernel.MoneyFromFloat(req.Price)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCreateMenuItemCommand(kernel.NewUUID(), categoryID,
		req.Name, req.Description, price, req.ImageURL, req.PreparationTime)
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.h.CreateMenuItem.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, menuItemFromAggregate(created))
}

// ListMenuItems handles GET /api/v1/menu-items with optional category_id and
// available_only filters.
func (s *Server) ListMenuItems(ctx echo.Context) error {
	var categoryID *kernel.UUID
	if raw := ctx.QueryParam("category_id"); raw != "" {
		parsed, err := kernel.UUIDFromString(raw)
		if err != nil {
			return respondError(ctx, err)
		}
		categoryID = &parsed
	}

	query, err := queries.NewListMenuItemsQuery(categoryID, boolQueryParam(ctx, "available_only"))
	if err != nil {
		return respondError(ctx, err)
	}

	models, err := s.h.ListMenuItems.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]MenuItemResponse, 0, len(models))
	for _, model := range models {
		response = append(response, menuItemFromReadModel(model))
	}
	return ctx.JSON(http.StatusOK, response)
}

// UpdateMenuItem handles PUT /api/v1/menu-items/:menuItemId.
func (s *Server) UpdateMenuItem(ctx echo.Context) error {
	id, err := pathID(ctx, "menuItemId")
	if err != nil {
		return respondError(ctx, err)
	}

	var req UpdateMenuItemRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	categoryID, err := kernel.UUIDFromBytes(req.CategoryID[:])
	if err != nil {
		return respondError(ctx, err)
	}
	price, err := kernel.MoneyFromFloat(req.Price)
	if err != nil {
		return respondError(ctx, err)
	}
	status, err := menu.ParseItemStatus(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateMenuItemCommand(id, categoryID, req.Name,
		req.Description, price, req.ImageURL, req.PreparationTime, status, req.IsActive)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.h.UpdateMenuItem.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, menuItemFromAggregate(updated))
}

// RemoveMenuItem handles DELETE /api/v1/menu-items/:menuItemId.
func (s *Server) RemoveMenuItem(ctx echo.Context) error {
	id, err := pathID(ctx, "menuItemId")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRemoveMenuItemCommand(id)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.h.RemoveMenuItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// CreateTable handles POST /api/v1/tables.
func (s *Server) CreateTable(ctx echo.Context) error {
	var req CreateTableRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCreateTableCommand(kernel.NewUUID(), req.Number, req.Capacity, req.Location)
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.h.CreateTable.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, tableFromAggregate(created))
}

// ListTables handles GET /api/v1/tables with an optional free_only filter.
func (s *Server) ListTables(ctx echo.Context) error {
	query := queries.NewListTablesQuery(boolQueryParam(ctx, "free_only"))
	models, err := s.h.ListTables.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]TableResponse, 0, len(models))
	for _, model := range models {
		response = append(response, tableFromReadModel(model))
	}
	return ctx.JSON(http.StatusOK, response)
}

// UpdateTable handles PUT /api/v1/tables/:tableId.
func (s *Server) UpdateTable(ctx echo.Context) error {
	id, err := pathID(ctx, "tableId")
	if err != nil {
		return respondError(ctx, err)
	}

	var req UpdateTableRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	status, err := dining.ParseTableStatus(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateTableCommand(id, req.Number, req.Capacity, status, req.Location, req.IsActive)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.h.UpdateTable.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, tableFromAggregate(updated))
}

// RemoveTable handles DELETE /api/v1/tables/:tableId.
func (s *Server) RemoveTable(ctx echo.Context) error {
	id, err := pathID(ctx, "tableId")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRemoveTableCommand(id)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.h.RemoveTable.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// CreateStaff handles POST /api/v1/staff.
func (s *Server) CreateStaff(ctx echo.Context) error {
	var req CreateStaffRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	role, err := staff.ParseRole(req.Role)
	if err != nil {
		return respondError(ctx, err)
	}
	hourlyRate, err := toOptionalMoney(req.HourlyRate)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCreateStaffCommand(kernel.NewUUID(), req.FirstName,
		req.LastName, req.Email, req.Phone, role, hourlyRate, toOptionalDate(req.HireDate))
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.h.CreateStaff.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, staffFromAggregate(created))
}

// ListStaff handles GET /api/v1/staff with an optional role filter.
func (s *Server) ListStaff(ctx echo.Context) error {
	var role *staff.Role
	if raw := ctx.QueryParam("role"); raw != "" {
		parsed, err := staff.ParseRole(raw)
		if err != nil {
			return respondError(ctx, err)
		}
		role = &parsed
	}

	query, err := queries.NewListStaffQuery(role)
	if err != nil {
		return respondError(ctx, err)
	}

	models, err := s.h.ListStaff.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]StaffResponse, 0, len(models))
	for _, model := range models {
		response = append(response, staffFromReadModel(model))
	}
	return ctx.JSON(http.StatusOK, response)
}

// UpdateStaff handles PUT /api/v1/staff/:staffId.
func (s *Server) UpdateStaff(ctx echo.Context) error {
	id, err := pathID(ctx, "staffId")
	if err != nil {
		return respondError(ctx, err)
	}

	var req UpdateStaffRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	role, err := staff.ParseRole(req.Role)
	if err != nil {
		return respondError(ctx, err)
	}
	status, err := staff.ParseStatus(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}
	hourlyRate, err := toOptionalMoney(req.HourlyRate)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateStaffCommand(id, req.FirstName, req.LastName,
		req.Email, req.Phone, role, status, hourlyRate)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.h.UpdateStaff.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, staffFromAggregate(updated))
}

// RemoveStaff handles DELETE /api/v1/staff/:staffId.
func (s *Server) RemoveStaff(ctx echo.Context) error {
	id, err := pathID(ctx, "staffId")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRemoveStaffCommand(id)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.h.RemoveStaff.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// CreateCustomer handles POST /api/v1/customers.
func (s *Server) CreateCustomer(ctx echo.Context) error {
	var req CreateCustomerRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCreateCustomerCommand(kernel.NewUUID(), req.FirstName,
		req.LastName, req.Email, req.Phone, toOptionalDate(req.DateOfBirth), req.Address)
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.h.CreateCustomer.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, customerFromAggregate(created))
}

// ListCustomers handles GET /api/v1/customers.
func (s *Server) ListCustomers(ctx echo.Context) error {
	models, err := s.h.ListCustomers.Handle(ctx.Request().Context(), queries.NewListCustomersQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]CustomerResponse, 0, len(models))
	for _, model := range models {
		response = append(response, customerFromReadModel(model))
	}
	return ctx.JSON(http.StatusOK, response)
}

// UpdateCustomer handles PUT /api/v1/customers/:customerId.
func (s *Server) UpdateCustomer(ctx echo.Context) error {
	id, err := pathID(ctx, "customerId")
	if err != nil {
		return respondError(ctx, err)
	}

	var req UpdateCustomerRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdateCustomerCommand(id, req.FirstName, req.LastName,
		req.Email, req.Phone, toOptionalDate(req.DateOfBirth), req.Address, req.IsActive)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.h.UpdateCustomer.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, customerFromAggregate(updated))
}

// RemoveCustomer handles DELETE /api/v1/customers/:customerId.
func (s *Server) RemoveCustomer(ctx echo.Context) error {
	id, err := pathID(ctx, "customerId")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRemoveCustomerCommand(id)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.h.RemoveCustomer.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func pathID(ctx echo.Context, name string) (kernel.UUID, error) {
	raw, err := uuid.Parse(ctx.Param(name))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return kernel.UUIDFromBytes(raw[:])
}

func boolQueryParam(ctx echo.Context, name string) bool {
	v, _ := strconv.ParseBool(ctx.QueryParam(name))
	return v
}
