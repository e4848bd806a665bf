package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"rapidxcel/internal/adapters/out/postgres/orderrepo"
	"rapidxcel/internal/core/domain/model/kernel"
	"rapidxcel/internal/core/domain/model/order"
	"rapidxcel/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type noopTracker struct{}

func (noopTracker) TrackAggregate(_ kernel.UUID, _ any) {}

// OrderRepositoryIntegrationTestSuite verifies order persistence against a
// real PostgreSQL instance.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
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

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, noopTracker{})
}

func (suite *OrderRepositoryIntegrationTestSuite) mustMoney(s string) kernel.Money {
	m, err := kernel.MoneyFromString(s)
	suite.Require().NoError(err)
	return m
}

func (suite *OrderRepositoryIntegrationTestSuite) mustOrder(address string, weight int, cost string) *order.Order {
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), address, weight, suite.mustMoney(cost))
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAddAndGet_RoundTripsExactly() {
	ctx := context.Background()
	o := suite.mustOrder("221B Baker Street", 5, "50.00")

	suite.Require().NoError(suite.repository.Add(ctx, o))

	loaded, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.True(loaded.ID().IsEqual(o.ID()))
	suite.True(loaded.CustomerID().IsEqual(o.CustomerID()))
	suite.Equal("221B Baker Street", loaded.ShippingAddress())
	suite.Equal(5, loaded.ConsignmentWeight())
	suite.True(loaded.ShippingCost().IsEqual(suite.mustMoney("50.00")))
	suite.Equal(order.Pending, loaded.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsStatusTransition() {
	ctx := context.Background()
	o := suite.mustOrder("221B Baker Street", 5, "50.00")
	suite.Require().NoError(suite.repository.Add(ctx, o))

	suite.Require().NoError(o.Confirm())
	suite.Require().NoError(suite.repository.Update(ctx, o))

	loaded, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Confirmed, loaded.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsConsignmentChange() {
	ctx := context.Background()
	o := suite.mustOrder("221B Baker Street", 5, "50.00")
	suite.Require().NoError(suite.repository.Add(ctx, o))

	suite.Require().NoError(o.ChangeConsignment(8, suite.mustMoney("80.00")))
	suite.Require().NoError(o.ChangeShippingAddress("742 Evergreen Terrace"))
	suite.Require().NoError(suite.repository.Update(ctx, o))

	loaded, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(8, loaded.ConsignmentWeight())
	suite.True(loaded.ShippingCost().IsEqual(suite.mustMoney("80.00")))
	suite.Equal("742 Evergreen Terrace", loaded.ShippingAddress())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NotFound() {
	o := suite.mustOrder("Nowhere", 1, "10.00")
	suite.Require().ErrorIs(suite.repository.Update(context.Background(), o), errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAll_NewestFirst() {
	ctx := context.Background()

	first := suite.mustOrder("First St", 1, "10.00")
	suite.Require().NoError(suite.repository.Add(ctx, first))
	// created_at has microsecond resolution; space the inserts out
	time.Sleep(10 * time.Millisecond)
	second := suite.mustOrder("Second St", 2, "20.00")
	suite.Require().NoError(suite.repository.Add(ctx, second))
	time.Sleep(10 * time.Millisecond)
	third := suite.mustOrder("Third St", 3, "30.00")
	suite.Require().NoError(suite.repository.Add(ctx, third))

	orders, err := suite.repository.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(orders, 3)
	suite.True(orders[0].ID().IsEqual(third.ID()))
	suite.True(orders[1].ID().IsEqual(second.ID()))
	suite.True(orders[2].ID().IsEqual(first.ID()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAll_Empty() {
	orders, err := suite.repository.GetAll(context.Background())
	suite.Require().NoError(err)
	suite.NotNil(orders)
	suite.Empty(orders)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_RemovesOrder() {
	ctx := context.Background()
	o := suite.mustOrder("221B Baker Street", 5, "50.00")
	suite.Require().NoError(suite.repository.Add(ctx, o))

	suite.Require().NoError(suite.repository.Delete(ctx, o.ID()))

	_, err := suite.repository.Get(ctx, o.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_NotFound() {
	err := suite.repository.Delete(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
