package order_test

import (
	"testing"

	"rapidxcel/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		status  order.Status
		wantErr bool
	}{
		{"pending is valid", order.Pending, false},
		{"confirmed is valid", order.Confirmed, false},
		{"cancelled is valid", order.Cancelled, false},
		{"unknown is invalid", order.Unknown, true},
		{"out of range is invalid", order.Status(42), true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.status.Validate()
			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Pending", order.Pending.String())
	assert.Equal(t, "Confirmed", order.Confirmed.String())
	assert.Equal(t, "Cancelled", order.Cancelled.String())
	assert.Equal(t, "Unknown", order.Unknown.String())
	assert.Equal(t, "Unknown", order.Status(42).String())
}

func TestStatusFromString(t *testing.T) {
	t.Run("valid names round trip", func(t *testing.T) {
		for _, s := range []order.Status{order.Pending, order.Confirmed, order.Cancelled} {
			parsed, err := order.StatusFromString(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("unknown name fails", func(t *testing.T) {
		_, err := order.StatusFromString("Shipped")
		require.Error(t, err)
	})
}

func TestStatus_Confirm(t *testing.T) {
	t.Run("pending can be confirmed", func(t *testing.T) {
		newStatus, err := order.Pending.Confirm()
		require.NoError(t, err)
		assert.Equal(t, order.Confirmed, newStatus)
	})

	t.Run("final states cannot be confirmed", func(t *testing.T) {
		for _, s := range []order.Status{order.Confirmed, order.Cancelled, order.Unknown} {
			_, err := s.Confirm()
			require.Error(t, err)
		}
	})
}

func TestStatus_Cancel(t *testing.T) {
	t.Run("pending can be cancelled", func(t *testing.T) {
		newStatus, err := order.Pending.Cancel()
		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, newStatus)
	})

	t.Run("final states cannot be cancelled", func(t *testing.T) {
		for _, s := range []order.Status{order.Confirmed, order.Cancelled, order.Unknown} {
			_, err := s.Cancel()
			require.Error(t, err)
		}
	})
}

func TestReservationStatus_Transitions(t *testing.T) {
	t.Run("reserved can be confirmed", func(t *testing.T) {
		newStatus, err := order.Reserved.Confirm()
		require.NoError(t, err)
		assert.Equal(t, order.ReservationConfirmed, newStatus)
	})

	t.Run("reserved can be released", func(t *testing.T) {
		newStatus, err := order.Reserved.Release()
		require.NoError(t, err)
		assert.Equal(t, order.ReservationReleased, newStatus)
	})

	t.Run("final states reject transitions", func(t *testing.T) {
		for _, s := range []order.ReservationStatus{order.ReservationConfirmed, order.ReservationReleased} {
			_, err := s.Confirm()
			require.Error(t, err)
			_, err = s.Release()
			require.Error(t, err)
		}
	})

	t.Run("validate", func(t *testing.T) {
		require.NoError(t, order.Reserved.Validate())
		require.Error(t, order.ReservationUnknown.Validate())
	})
}
