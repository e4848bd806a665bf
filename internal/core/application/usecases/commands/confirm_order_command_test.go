package commands_test

import (
	"testing"

	"rapidxcel/internal/core/application/usecases/commands"
	"rapidxcel/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfirmOrderCommand_Success(t *testing.T) {
	reservationID := kernel.NewUUID()
	orderID := kernel.NewUUID()
	customerID := kernel.NewUUID()

	cmd, err := commands.NewConfirmOrderCommand(reservationID, orderID, customerID)
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())

	assert.True(t, cmd.ReservationID().IsEqual(reservationID))
	assert.True(t, cmd.OrderID().IsEqual(orderID))
	assert.True(t, cmd.CustomerID().IsEqual(customerID))
}

func TestNewConfirmOrderCommand_InvalidIDs(t *testing.T) {
	valid := kernel.NewUUID()

	_, err := commands.NewConfirmOrderCommand(kernel.UUID{}, valid, valid)
	require.Error(t, err)

	_, err = commands.NewConfirmOrderCommand(valid, kernel.UUID{}, valid)
	require.Error(t, err)

	_, err = commands.NewConfirmOrderCommand(valid, valid, kernel.UUID{})
	require.Error(t, err)
}

func TestConfirmOrderCommand_Validate_NotConstructed(t *testing.T) {
	var cmd commands.ConfirmOrderCommand
	assert.ErrorIs(t, cmd.Validate(), commands.ErrConfirmOrderCommandIsNotConstructed)
}
