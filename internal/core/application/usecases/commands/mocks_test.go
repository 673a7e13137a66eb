package commands_test

import (
	"context"
	"testing"
	"time"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/customer"
	"restaurant/internal/core/domain/model/dining"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/staff"
	"restaurant/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if aggregate, ok := args.Get(0).(*order.Order); ok {
		return aggregate, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) Remove(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderRepository) GetAllInStatusOlderThan(
	ctx context.Context, status order.Status, cutoff time.Time,
) ([]*order.Order, error) {
	args := m.Called(ctx, status, cutoff)
	if orders, ok := args.Get(0).([]*order.Order); ok {
		return orders, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockCategoryRepository struct{ mock.Mock }

func (m *MockCategoryRepository) Add(ctx context.Context, category *menu.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Update(ctx context.Context, category *menu.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Get(ctx context.Context, id kernel.UUID) (*menu.Category, error) {
	args := m.Called(ctx, id)
	if category, ok := args.Get(0).(*menu.Category); ok {
		return category, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCategoryRepository) Remove(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockMenuItemRepository struct{ mock.Mock }

func (m *MockMenuItemRepository) Add(ctx context.Context, item *menu.MenuItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockMenuItemRepository) Update(ctx context.Context, item *menu.MenuItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockMenuItemRepository) Get(ctx context.Context, id kernel.UUID) (*menu.MenuItem, error) {
	args := m.Called(ctx, id)
	if item, ok := args.Get(0).(*menu.MenuItem); ok {
		return item, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockMenuItemRepository) Remove(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockTableRepository struct{ mock.Mock }

func (m *MockTableRepository) Add(ctx context.Context, table *dining.Table) error {
	args := m.Called(ctx, table)
	return args.Error(0)
}

func (m *MockTableRepository) Update(ctx context.Context, table *dining.Table) error {
	args := m.Called(ctx, table)
	return args.Error(0)
}

func (m *MockTableRepository) Get(ctx context.Context, id kernel.UUID) (*dining.Table, error) {
	args := m.Called(ctx, id)
	if table, ok := args.Get(0).(*dining.Table); ok {
		return table, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTableRepository) Remove(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockStaffRepository struct{ mock.Mock }

func (m *MockStaffRepository) Add(ctx context.Context, member *staff.Staff) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockStaffRepository) Update(ctx context.Context, member *staff.Staff) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockStaffRepository) Get(ctx context.Context, id kernel.UUID) (*staff.Staff, error) {
	args := m.Called(ctx, id)
	if member, ok := args.Get(0).(*staff.Staff); ok {
		return member, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStaffRepository) Remove(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Add(ctx context.Context, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepository) Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	if c, ok := args.Get(0).(*customer.Customer); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCustomerRepository) Remove(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockUoW implements both commands.OrderUoW and commands.CatalogUoW.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) CategoryRepository() ports.CategoryRepository {
	args := m.Called()
	return args.Get(0).(ports.CategoryRepository)
}

func (m *MockUoW) MenuItemRepository() ports.MenuItemRepository {
	args := m.Called()
	return args.Get(0).(ports.MenuItemRepository)
}

func (m *MockUoW) TableRepository() ports.TableRepository {
	args := m.Called()
	return args.Get(0).(ports.TableRepository)
}

func (m *MockUoW) StaffRepository() ports.StaffRepository {
	args := m.Called()
	return args.Get(0).(ports.StaffRepository)
}

func (m *MockUoW) CustomerRepository() ports.CustomerRepository {
	args := m.Called()
	return args.Get(0).(ports.CustomerRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockCatalogUoWFactory struct{ mock.Mock }

func (m *MockCatalogUoWFactory) Create() commands.CatalogUoW {
	args := m.Called()
	return args.Get(0).(commands.CatalogUoW)
}

type MockOrderNumberGenerator struct{ mock.Mock }

func (m *MockOrderNumberGenerator) Next(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func testMenuItem(t *testing.T, price string) *menu.MenuItem {
	t.Helper()
	money, err := kernel.MoneyFromString(price)
	require.NoError(t, err)
	item, err := menu.NewMenuItem(kernel.NewUUID(), kernel.NewUUID(), "Grilled Salmon", nil, money, nil, nil)
	require.NoError(t, err)
	return item
}

func testPendingOrder(t *testing.T, menuItemID kernel.UUID) *order.Order {
	t.Helper()
	unitPrice, err := kernel.MoneyFromString("24.99")
	require.NoError(t, err)
	line, err := order.NewItem(kernel.NewUUID(), menuItemID, 2, unitPrice, nil)
	require.NoError(t, err)

	aggregate, err := order.NewOrder(
		kernel.NewUUID(), "ORD-20260830-000001", order.TypeDineIn,
		nil, nil, nil, []*order.Item{line},
		kernel.ZeroMoney(), kernel.ZeroMoney(), nil, time.Now().UTC())
	require.NoError(t, err)
	return aggregate
}

func restoredOrder(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	unitPrice, err := kernel.MoneyFromString("24.99")
	require.NoError(t, err)
	line, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), 2, unitPrice, nil)
	require.NoError(t, err)

	orderTime := time.Now().UTC().Add(-time.Hour)
	aggregate, err := order.RestoreOrder(
		kernel.NewUUID(), "ORD-20260830-000002", status, order.TypeDineIn,
		nil, nil, nil, []*order.Item{line},
		kernel.ZeroMoney(), kernel.ZeroMoney(), nil, &orderTime, nil)
	require.NoError(t, err)
	return aggregate
}
