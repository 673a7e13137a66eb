package customerrepo_test

import (
	"context"
	"testing"
	"time"

	"restaurant/internal/adapters/out/postgres/customerrepo"
	"restaurant/internal/core/domain/model/customer"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// CustomerRepositoryIntegrationTestSuite exercises GormCustomerRepository
// against a real PostgreSQL container.
type CustomerRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *customerrepo.GormCustomerRepository
}

func (suite *CustomerRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&customerrepo.CustomerDTO{}))
}

func (suite *CustomerRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE customers").Error)
	suite.repository = customerrepo.NewGormCustomerRepository(suite.db)
}

func (suite *CustomerRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *CustomerRepositoryIntegrationTestSuite) newCustomer(email *string) *customer.Customer {
	c, err := customer.NewCustomer(kernel.NewUUID(), "Alex", "Kim", email, nil, nil, nil)
	suite.Require().NoError(err)
	return c
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestAddAndGetRoundTrip() {
	ctx := context.Background()
	email := "alex@example.com"

	original := suite.newCustomer(&email)
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Equal(original.ID(), retrieved.ID())
	suite.Require().NotNil(retrieved.Email())
	suite.Equal(email, *retrieved.Email())
	suite.True(retrieved.IsActive())
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestAddDuplicateEmail() {
	ctx := context.Background()
	email := "taken@example.com"

	suite.Require().NoError(suite.repository.Add(ctx, suite.newCustomer(&email)))

	err := suite.repository.Add(ctx, suite.newCustomer(&email))
	suite.Require().ErrorIs(err, errs.ErrValueIsInvalid)
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestAddManyCustomersWithoutEmail() {
	ctx := context.Background()

	suite.Require().NoError(suite.repository.Add(ctx, suite.newCustomer(nil)))
	suite.Require().NoError(suite.repository.Add(ctx, suite.newCustomer(nil)))
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestUpdateToTakenEmail() {
	ctx := context.Background()
	taken := "taken@example.com"
	free := "free@example.com"

	suite.Require().NoError(suite.repository.Add(ctx, suite.newCustomer(&taken)))

	other := suite.newCustomer(&free)
	suite.Require().NoError(suite.repository.Add(ctx, other))

	loaded, err := suite.repository.Get(ctx, other.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.UpdateDetails(
		loaded.FirstName(), loaded.LastName(), &taken, nil, nil, nil))

	err = suite.repository.Update(ctx, loaded)
	suite.Require().ErrorIs(err, errs.ErrValueIsInvalid)
}

func TestCustomerRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(CustomerRepositoryIntegrationTestSuite))
}
