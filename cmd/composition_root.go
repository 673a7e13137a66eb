package cmd

import (
	"log/slog"

	httpin "restaurant/internal/adapters/in/http"
	"restaurant/internal/adapters/out/postgres"
	"restaurant/internal/adapters/out/postgres/ordernum"
	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires the adapters into the application handlers. All
// construction happens here; the rest of the code receives its dependencies.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	generator  *ordernum.Generator
	pricing    services.PricingEngine
	logger     *slog.Logger
}

// NewCompositionRoot creates the composition root over an open database.
func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		generator:  ordernum.NewGenerator(gormDB),
		pricing:    services.NewPricingEngine(),
		logger:     logger,
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) catalogUoWFactory() commands.CatalogUoWFactory {
	return FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
}

// NewHTTPServer builds the REST server over all command and query handlers.
func (c *CompositionRoot) NewHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		CreateOrder: commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.generator, c.pricing),
		UpdateOrder: commands.NewUpdateOrderCommandHandler(c.orderUoWFactory(), c.pricing),
		RemoveOrder: commands.NewRemoveOrderCommandHandler(c.orderUoWFactory()),

		CreateCategory: commands.NewCreateCategoryCommandHandler(c.catalogUoWFactory()),
		UpdateCategory: commands.NewUpdateCategoryCommandHandler(c.catalogUoWFactory()),
		RemoveCategory: commands.NewRemoveCategoryCommandHandler(c.catalogUoWFactory()),

		CreateMenuItem: commands.NewCreateMenuItemCommandHandler(c.catalogUoWFactory()),
		UpdateMenuItem: commands.NewUpdateMenuItemCommandHandler(c.catalogUoWFactory()),
		RemoveMenuItem: commands.NewRemoveMenuItemCommandHandler(c.catalogUoWFactory()),

		CreateTable: commands.NewCreateTableCommandHandler(c.catalogUoWFactory()),
		UpdateTable: commands.NewUpdateTableCommandHandler(c.catalogUoWFactory()),
		RemoveTable: commands.NewRemoveTableCommandHandler(c.catalogUoWFactory()),

		CreateStaff: commands.NewCreateStaffCommandHandler(c.catalogUoWFactory()),
		UpdateStaff: commands.NewUpdateStaffCommandHandler(c.catalogUoWFactory()),
		RemoveStaff: commands.NewRemoveStaffCommandHandler(c.catalogUoWFactory()),

		CreateCustomer: commands.NewCreateCustomerCommandHandler(c.catalogUoWFactory()),
		UpdateCustomer: commands.NewUpdateCustomerCommandHandler(c.catalogUoWFactory()),
		RemoveCustomer: commands.NewRemoveCustomerCommandHandler(c.catalogUoWFactory()),

		GetOrder:       queries.NewGetOrderQueryHandler(c.gormDB),
		ListOrders:     queries.NewListOrdersQueryHandler(c.gormDB),
		ListCategories: queries.NewListCategoriesQueryHandler(c.gormDB),
		ListMenuItems:  queries.NewListMenuItemsQueryHandler(c.gormDB),
		ListTables:     queries.NewListTablesQueryHandler(c.gormDB),
		ListStaff:      queries.NewListStaffQueryHandler(c.gormDB),
		ListCustomers:  queries.NewListCustomersQueryHandler(c.gormDB),
	})
}

// NewStaleOrderJob builds the background sweep for abandoned pending orders.
func (c *CompositionRoot) NewStaleOrderJob(config Config) *jobs.StaleOrderJob {
	handler := commands.NewCancelStaleOrdersCommandHandler(c.orderUoWFactory())
	return jobs.NewStaleOrderJob(handler, config.StaleOrderMaxAge, config.StaleOrderSchedule, c.logger)
}

// FuncOrderUoWFactory adapts a closure to commands.OrderUoWFactory.
type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

// FuncCatalogUoWFactory adapts a closure to commands.CatalogUoWFactory.
type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}
