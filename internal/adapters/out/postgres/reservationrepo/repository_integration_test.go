package reservationrepo_test

import (
	"context"
	"testing"
	"time"

	"rapidxcel/internal/adapters/out/postgres/reservationrepo"
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

// ReservationRepositoryIntegrationTestSuite verifies reservation persistence
// against a real PostgreSQL instance, including line item round trips and the
// expiry scan used by the release job.
type ReservationRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *reservationrepo.GormReservationRepository
}

func (suite *ReservationRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(
		&reservationrepo.ReservationDTO{},
		&reservationrepo.ReservationItemDTO{},
	))
}

func (suite *ReservationRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ReservationRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE reservations CASCADE").Error)
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE reservation_items").Error)
	suite.repository = reservationrepo.NewGormReservationRepository(suite.db, noopTracker{})
}

func (suite *ReservationRepositoryIntegrationTestSuite) mustMoney(s string) kernel.Money {
	m, err := kernel.MoneyFromString(s)
	suite.Require().NoError(err)
	return m
}

func (suite *ReservationRepositoryIntegrationTestSuite) mustReservation(expiresAt time.Time) *order.Reservation {
	bolts, err := order.NewItem(kernel.NewUUID(), "Bolts", suite.mustMoney("10.00"), 3)
	suite.Require().NoError(err)
	nuts, err := order.NewItem(kernel.NewUUID(), "Nuts", suite.mustMoney("2.50"), 2)
	suite.Require().NoError(err)

	reservation, err := order.NewReservation(
		kernel.NewUUID(),
		"221B Baker Street", "62701", "555-0101",
		[]order.Item{bolts, nuts},
		suite.mustMoney("35.00"), suite.mustMoney("50.00"),
		expiresAt,
	)
	suite.Require().NoError(err)
	return reservation
}

func (suite *ReservationRepositoryIntegrationTestSuite) TestAddAndGet_RoundTripsWithItems() {
	ctx := context.Background()
	reservation := suite.mustReservation(time.Now().Add(30 * time.Minute))

	suite.Require().NoError(suite.repository.Add(ctx, reservation))

	loaded, err := suite.repository.Get(ctx, reservation.ID())
	suite.Require().NoError(err)
	suite.True(loaded.ID().IsEqual(reservation.ID()))
	suite.Equal("221B Baker Street", loaded.DeliveryAddress())
	suite.Equal("62701", loaded.PinCode())
	suite.Equal("555-0101", loaded.PhoneNumber())
	suite.True(loaded.Subtotal().IsEqual(suite.mustMoney("35.00")))
	suite.True(loaded.ShippingCost().IsEqual(suite.mustMoney("50.00")))
	suite.True(loaded.Total().IsEqual(suite.mustMoney("85.00")))
	suite.Equal(order.Reserved, loaded.Status())

	items := loaded.Items()
	suite.Require().Len(items, 2)
	// items come back in stable name order
	suite.Equal("Bolts", items[0].StockName())
	suite.Equal(3, items[0].Quantity())
	suite.True(items[0].UnitPrice().IsEqual(suite.mustMoney("10.00")))
	suite.True(items[0].LineTotal().IsEqual(suite.mustMoney("30.00")))
	suite.Equal("Nuts", items[1].StockName())
	suite.Equal(2, items[1].Quantity())
}

func (suite *ReservationRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ReservationRepositoryIntegrationTestSuite) TestUpdate_PersistsStatus() {
	ctx := context.Background()
	reservation := suite.mustReservation(time.Now().Add(30 * time.Minute))
	suite.Require().NoError(suite.repository.Add(ctx, reservation))

	suite.Require().NoError(reservation.Confirm())
	suite.Require().NoError(suite.repository.Update(ctx, reservation))

	loaded, err := suite.repository.Get(ctx, reservation.ID())
	suite.Require().NoError(err)
	suite.Equal(order.ReservationConfirmed, loaded.Status())
}

func (suite *ReservationRepositoryIntegrationTestSuite) TestUpdate_FirstFinalizerWins() {
	ctx := context.Background()
	reservation := suite.mustReservation(time.Now().Add(30 * time.Minute))
	suite.Require().NoError(suite.repository.Add(ctx, reservation))

	// a second reader holds a stale Reserved copy, like the expiry sweep
	// holding the reservation while a confirmation lands first
	stale, err := suite.repository.Get(ctx, reservation.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(reservation.Confirm())
	suite.Require().NoError(suite.repository.Update(ctx, reservation))

	suite.Require().NoError(stale.Release())
	err = suite.repository.Update(ctx, stale)
	suite.Require().ErrorIs(err, order.ErrReservationStatusConflict)

	// the losing write must not overwrite the finalized status
	loaded, err := suite.repository.Get(ctx, reservation.ID())
	suite.Require().NoError(err)
	suite.Equal(order.ReservationConfirmed, loaded.Status())
}

func (suite *ReservationRepositoryIntegrationTestSuite) TestUpdate_NotFound() {
	reservation := suite.mustReservation(time.Now().Add(30 * time.Minute))
	err := suite.repository.Update(context.Background(), reservation)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ReservationRepositoryIntegrationTestSuite) TestGetAllExpired_ReturnsOnlyExpiredReserved() {
	ctx := context.Background()
	now := time.Now()

	expired := suite.mustReservation(now.Add(-time.Hour))
	live := suite.mustReservation(now.Add(time.Hour))
	released := suite.mustReservation(now.Add(-2 * time.Hour))

	suite.Require().NoError(suite.repository.Add(ctx, expired))
	suite.Require().NoError(suite.repository.Add(ctx, live))
	suite.Require().NoError(suite.repository.Add(ctx, released))

	// a released reservation must not come back even though its deadline passed
	suite.Require().NoError(released.Release())
	suite.Require().NoError(suite.repository.Update(ctx, released))

	result, err := suite.repository.GetAllExpired(ctx, now)
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(result[0].ID().IsEqual(expired.ID()))
	suite.Len(result[0].Items(), 2)
}

func (suite *ReservationRepositoryIntegrationTestSuite) TestGetAllExpired_Empty() {
	result, err := suite.repository.GetAllExpired(context.Background(), time.Now())
	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func TestReservationRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ReservationRepositoryIntegrationTestSuite))
}
