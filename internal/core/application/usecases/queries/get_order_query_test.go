package queries_test

import (
	"testing"

	"rapidxcel/internal/core/application/usecases/queries"
	"rapidxcel/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderQuery(t *testing.T) {
	orderID := kernel.NewUUID()

	query, err := queries.NewGetOrderQuery(orderID)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.True(t, query.OrderID().IsEqual(orderID))

	_, err = queries.NewGetOrderQuery(kernel.UUID{})
	require.Error(t, err)

	var zero queries.GetOrderQuery
	assert.ErrorIs(t, zero.Validate(), queries.ErrGetOrderQueryIsNotConstructed)
}
