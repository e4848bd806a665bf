package commands_test

import (
	"context"
	"testing"
	"time"

	"rapidxcel/internal/core/application/usecases/commands"
	"rapidxcel/internal/core/domain/model/kernel"
	"rapidxcel/internal/core/domain/model/order"
	"rapidxcel/internal/core/domain/model/stock"
	"rapidxcel/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func mustItem(t *testing.T, id kernel.UUID, name, unitPrice string, quantity int) order.Item {
	t.Helper()
	item, err := order.NewItem(id, name, mustMoney(t, unitPrice), quantity)
	require.NoError(t, err)
	return item
}

type MockStockRepository struct{ mock.Mock }

func (m *MockStockRepository) Add(ctx context.Context, s *stock.Stock) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockStockRepository) Update(ctx context.Context, s *stock.Stock) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockStockRepository) Get(ctx context.Context, id kernel.UUID) (*stock.Stock, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stock.Stock), args.Error(1)
}
func (m *MockStockRepository) GetAll(ctx context.Context) ([]*stock.Stock, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*stock.Stock), args.Error(1)
}
func (m *MockStockRepository) Decrement(ctx context.Context, id kernel.UUID, quantity int) error {
	args := m.Called(ctx, id, quantity)
	return args.Error(0)
}
func (m *MockStockRepository) Replenish(ctx context.Context, id kernel.UUID, quantity int) error {
	args := m.Called(ctx, id, quantity)
	return args.Error(0)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}
func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockReservationRepository struct{ mock.Mock }

func (m *MockReservationRepository) Add(ctx context.Context, r *order.Reservation) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockReservationRepository) Update(ctx context.Context, r *order.Reservation) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockReservationRepository) Get(ctx context.Context, id kernel.UUID) (*order.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Reservation), args.Error(1)
}
func (m *MockReservationRepository) GetAllExpired(
	ctx context.Context, now time.Time,
) ([]*order.Reservation, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Reservation), args.Error(1)
}

type MockReservationUoW struct{ mock.Mock }

func (m *MockReservationUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockReservationUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockReservationUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockReservationUoW) StockRepository() ports.StockRepository {
	args := m.Called()
	return args.Get(0).(ports.StockRepository)
}
func (m *MockReservationUoW) ReservationRepository() ports.ReservationRepository {
	args := m.Called()
	return args.Get(0).(ports.ReservationRepository)
}

type MockReservationUoWFactory struct{ mock.Mock }

func (m *MockReservationUoWFactory) Create() commands.ReservationUoW {
	args := m.Called()
	return args.Get(0).(commands.ReservationUoW)
}

type MockConfirmOrderUoW struct{ mock.Mock }

func (m *MockConfirmOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockConfirmOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockConfirmOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockConfirmOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockConfirmOrderUoW) ReservationRepository() ports.ReservationRepository {
	args := m.Called()
	return args.Get(0).(ports.ReservationRepository)
}

type MockConfirmOrderUoWFactory struct{ mock.Mock }

func (m *MockConfirmOrderUoWFactory) Create() commands.ConfirmOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.ConfirmOrderUoW)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}
