package services_test

import (
	"testing"

	"rapidxcel/internal/core/domain/model/kernel"
	"rapidxcel/internal/core/domain/model/order"
	"rapidxcel/internal/core/domain/model/stock"
	"rapidxcel/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func newTestPricer(t *testing.T, rate string) services.Pricer {
	t.Helper()
	p, err := services.NewPricer(mustMoney(t, rate))
	require.NoError(t, err)
	return p
}

func newTestStock(t *testing.T, name, price string, quantity int) *stock.Stock {
	t.Helper()
	s, err := stock.NewStock(kernel.NewUUID(), name, mustMoney(t, price), quantity)
	require.NoError(t, err)
	return s
}

func TestNewPricer(t *testing.T) {
	t.Run("valid rate", func(t *testing.T) {
		_, err := services.NewPricer(mustMoney(t, "10"))
		require.NoError(t, err)
	})

	t.Run("unconstructed rate", func(t *testing.T) {
		_, err := services.NewPricer(kernel.Money{})
		require.Error(t, err)
	})
}

func TestPricer_PriceLine(t *testing.T) {
	pricer := newTestPricer(t, "10")

	t.Run("computes line total", func(t *testing.T) {
		s := newTestStock(t, "Steel Bolts", "10", 5)

		item, err := pricer.PriceLine(s, 3)
		require.NoError(t, err)

		assert.True(t, item.StockID().IsEqual(s.ID()))
		assert.Equal(t, "Steel Bolts", item.StockName())
		assert.Equal(t, 3, item.Quantity())
		assert.Equal(t, "30.00", item.LineTotal().String())
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		s := newTestStock(t, "Steel Bolts", "10", 5)

		_, err := pricer.PriceLine(s, 0)
		require.Error(t, err)
		_, err = pricer.PriceLine(s, -1)
		require.Error(t, err)
	})

	t.Run("rejects unconstructed stock", func(t *testing.T) {
		_, err := pricer.PriceLine(nil, 1)
		require.Error(t, err)
	})
}

func TestPricer_PriceOrder(t *testing.T) {
	pricer := newTestPricer(t, "10")

	t.Run("empty order prices to zero", func(t *testing.T) {
		subtotal, shipping, err := pricer.PriceOrder(nil)
		require.NoError(t, err)
		assert.True(t, subtotal.IsZero())
		assert.True(t, shipping.IsZero())
	})

	t.Run("subtotal is the exact sum of line totals", func(t *testing.T) {
		bolts, err := pricer.PriceLine(newTestStock(t, "Bolts", "10", 5), 3)
		require.NoError(t, err)
		nuts, err := pricer.PriceLine(newTestStock(t, "Nuts", "2.50", 10), 4)
		require.NoError(t, err)

		subtotal, shipping, err := pricer.PriceOrder([]order.Item{bolts, nuts})
		require.NoError(t, err)

		assert.Equal(t, "40.00", subtotal.String())
		// 7 units at rate 10
		assert.Equal(t, "70.00", shipping.String())
	})

	t.Run("no rounding drift across many lines", func(t *testing.T) {
		s := newTestStock(t, "Penny Washers", "0.10", 1000)
		items := make([]order.Item, 0, 300)
		for range 300 {
			item, err := pricer.PriceLine(s, 1)
			require.NoError(t, err)
			items = append(items, item)
		}

		subtotal, _, err := pricer.PriceOrder(items)
		require.NoError(t, err)
		assert.True(t, subtotal.IsEqual(mustMoney(t, "30.00")))
	})

	t.Run("shipping is deterministic and non-decreasing in quantity", func(t *testing.T) {
		s := newTestStock(t, "Bolts", "10", 100)

		previous := kernel.ZeroMoney()
		for qty := 1; qty <= 10; qty++ {
			item, err := pricer.PriceLine(s, qty)
			require.NoError(t, err)

			_, shipping, err := pricer.PriceOrder([]order.Item{item})
			require.NoError(t, err)
			_, again, err := pricer.PriceOrder([]order.Item{item})
			require.NoError(t, err)

			assert.True(t, shipping.IsEqual(again))
			assert.True(t, shipping.GreaterThanOrEqual(previous))
			previous = shipping
		}
	})

	t.Run("rejects unconstructed items", func(t *testing.T) {
		_, _, err := pricer.PriceOrder([]order.Item{{}})
		require.Error(t, err)
	})
}
