package order_test

import (
	"testing"

	"rapidxcel/internal/core/domain/model/kernel"
	"rapidxcel/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func TestNewItem(t *testing.T) {
	t.Run("computes line total", func(t *testing.T) {
		item, err := order.NewItem(kernel.NewUUID(), "Steel Bolts", mustMoney(t, "10"), 3)
		require.NoError(t, err)
		require.NoError(t, item.Validate())

		assert.Equal(t, "Steel Bolts", item.StockName())
		assert.Equal(t, 3, item.Quantity())
		assert.Equal(t, "30.00", item.LineTotal().String())
	})

	testCases := []struct {
		name      string
		stockID   kernel.UUID
		stockName string
		unitPrice kernel.Money
		quantity  int
	}{
		{"invalid stock id", kernel.UUID{}, "Bolts", kernel.ZeroMoney(), 1},
		{"empty name", kernel.NewUUID(), "", kernel.ZeroMoney(), 1},
		{"unconstructed price", kernel.NewUUID(), "Bolts", kernel.Money{}, 1},
		{"zero quantity", kernel.NewUUID(), "Bolts", kernel.ZeroMoney(), 0},
		{"negative quantity", kernel.NewUUID(), "Bolts", kernel.ZeroMoney(), -3},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := order.NewItem(tc.stockID, tc.stockName, tc.unitPrice, tc.quantity)
			require.Error(t, err)
		})
	}
}

func TestItem_Validate(t *testing.T) {
	var zero order.Item
	require.ErrorIs(t, zero.Validate(), order.ErrItemIsNotConstructed)
}
