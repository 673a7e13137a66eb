package orderrepo_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"restaurant/internal/adapters/out/postgres/orderrepo"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/ports"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite exercises GormOrderRepository against a
// real PostgreSQL container.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
	numberSeq  int
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_items").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Maybe()
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAddAndGetRoundTrip() {
	ctx := context.Background()

	original := suite.newPendingOrder(2)
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal(original.Number(), retrieved.Number())
	suite.Equal(order.StatusPending, retrieved.Status())
	suite.Equal(order.TypeDineIn, retrieved.OrderType())
	suite.Require().Len(retrieved.Items(), 2)
	suite.True(original.Subtotal().IsEqual(retrieved.Subtotal()))
	suite.True(original.Total().IsEqual(retrieved.Total()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAddDuplicateNumber() {
	ctx := context.Background()

	first := suite.newPendingOrder(1)
	suite.Require().NoError(suite.repository.Add(ctx, first))

	duplicate := suite.newOrderWithNumber(first.Number())
	err := suite.repository.Add(ctx, duplicate)
	suite.Require().ErrorIs(err, ports.ErrDuplicateOrderNumber)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetNonExistentOrder() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateStatusPersists() {
	ctx := context.Background()

	original := suite.newPendingOrder(1)
	suite.Require().NoError(suite.repository.Add(ctx, original))

	loaded, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.ChangeStatus(order.StatusConfirmed, time.Now().UTC()))
	suite.Require().NoError(suite.repository.Update(ctx, loaded))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)
	suite.Equal(order.StatusConfirmed, retrieved.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateLosesRaceOnStaleStatus() {
	ctx := context.Background()

	original := suite.newPendingOrder(1)
	suite.Require().NoError(suite.repository.Add(ctx, original))

	first, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)
	second, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(first.ChangeStatus(order.StatusConfirmed, time.Now().UTC()))
	suite.Require().NoError(suite.repository.Update(ctx, first))

	// The second copy was loaded as pending, which no longer matches.
	suite.Require().NoError(second.ChangeStatus(order.StatusCancelled, time.Now().UTC()))
	err = suite.repository.Update(ctx, second)
	suite.Require().ErrorIs(err, ports.ErrConcurrentModification)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateReplacesItemsWhilePending() {
	ctx := context.Background()

	original := suite.newPendingOrder(2)
	suite.Require().NoError(suite.repository.Add(ctx, original))

	loaded, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	replacement := suite.newItem(3, "12.50")
	suite.Require().NoError(loaded.ReplaceItems([]*order.Item{replacement}))
	suite.Require().NoError(suite.repository.Update(ctx, loaded))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)
	suite.Require().Len(retrieved.Items(), 1)
	suite.Equal(replacement.ID(), retrieved.Items()[0].ID())
	suite.Equal(3, retrieved.Items()[0].Quantity())
	suite.Equal("37.50", retrieved.Subtotal().String())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestRemoveSoftDeletesOrderAndItems() {
	ctx := context.Background()

	original := suite.newPendingOrder(2)
	suite.Require().NoError(suite.repository.Add(ctx, original))

	suite.Require().NoError(suite.repository.Remove(ctx, original.ID()))

	_, err := suite.repository.Get(ctx, original.ID())
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	// Rows remain, flagged deleted.
	var orderCount, itemCount int64
	suite.Require().NoError(suite.db.Unscoped().Model(&orderrepo.OrderDTO{}).
		Where("deleted_at IS NOT NULL").Count(&orderCount).Error)
	suite.Require().NoError(suite.db.Unscoped().Model(&orderrepo.OrderItemDTO{}).
		Where("deleted_at IS NOT NULL").Count(&itemCount).Error)
	suite.Equal(int64(1), orderCount)
	suite.Equal(int64(2), itemCount)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestRemoveNonExistentOrder() {
	err := suite.repository.Remove(context.Background(), kernel.NewUUID())

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllInStatusOlderThan() {
	ctx := context.Background()

	stale := suite.newPendingOrder(1)
	suite.Require().NoError(suite.repository.Add(ctx, stale))
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).
		Where("id = ?", stale.ID().Bytes()).
		Update("order_time", time.Now().UTC().Add(-2*time.Hour)).Error)

	fresh := suite.newPendingOrder(1)
	suite.Require().NoError(suite.repository.Add(ctx, fresh))

	result, err := suite.repository.GetAllInStatusOlderThan(ctx, order.StatusPending,
		time.Now().UTC().Add(-time.Hour))
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(stale.ID(), result[0].ID())
}

func (suite *OrderRepositoryIntegrationTestSuite) newItem(quantity int, price string) *order.Item {
	unitPrice, err := kernel.MoneyFromString(price)
	suite.Require().NoError(err)

	item, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), quantity, unitPrice, nil)
	suite.Require().NoError(err)
	return item
}

func (suite *OrderRepositoryIntegrationTestSuite) newPendingOrder(itemCount int) *order.Order {
	suite.numberSeq++
	return suite.newOrderWithItems(fmt.Sprintf("ORD-20260830-%06d", suite.numberSeq), itemCount)
}

func (suite *OrderRepositoryIntegrationTestSuite) newOrderWithNumber(number string) *order.Order {
	return suite.newOrderWithItems(number, 1)
}

func (suite *OrderRepositoryIntegrationTestSuite) newOrderWithItems(number string, itemCount int) *order.Order {
	items := make([]*order.Item, 0, itemCount)
	for range itemCount {
		items = append(items, suite.newItem(1, "9.99"))
	}

	aggregate, err := order.NewOrder(kernel.NewUUID(), number, order.TypeDineIn,
		nil, nil, nil, items, kernel.ZeroMoney(), kernel.ZeroMoney(), nil, time.Now().UTC())
	suite.Require().NoError(err)
	return aggregate
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
