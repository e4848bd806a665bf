package order

import (
	"fmt"

	"rapidxcel/internal/pkg/errs"
)

// ReservationStatus represents the lifecycle state of a stock reservation.
//
// State transitions:
//
//	Reserved ──┬──> ReservationConfirmed
//	           │
//	           └──> ReservationReleased
//
// ReservationConfirmed and ReservationReleased are final states.
type ReservationStatus int

const (
	// ReservationUnknown represents an invalid or undefined reservation status.
	ReservationUnknown ReservationStatus = iota

	// Reserved is the initial status: stock is decremented and the preview
	// awaits a confirmation call.
	Reserved

	// ReservationConfirmed indicates the preview was turned into a durable order.
	ReservationConfirmed

	// ReservationReleased indicates the reservation expired or was abandoned
	// and the reserved stock was returned to the catalog.
	ReservationReleased
)

func getReservationStatusStrings() map[ReservationStatus]string {
	return map[ReservationStatus]string{
		ReservationUnknown:   "Unknown",
		Reserved:             "Reserved",
		ReservationConfirmed: "Confirmed",
		ReservationReleased:  "Released",
	}
}

// Validate checks if the ReservationStatus value is valid.
// Valid statuses are Reserved, ReservationConfirmed, and ReservationReleased.
func (s ReservationStatus) Validate() error {
	switch s {
	case Reserved, ReservationConfirmed, ReservationReleased:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"reservation status is invalid",
			fmt.Errorf("%d is not a valid reservation status", s),
		)
	}
}

// String returns the human-readable name of the reservation status.
// Implements fmt.Stringer and is safe to call on any value.
func (s ReservationStatus) String() string {
	if str, ok := getReservationStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Confirm transitions the status to ReservationConfirmed.
// Only Reserved reservations can be confirmed.
func (s ReservationStatus) Confirm() (ReservationStatus, error) {
	if s != Reserved {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"reservation status is invalid",
			fmt.Errorf("%s is not a valid status to confirm", s.String()),
		)
	}

	return ReservationConfirmed, nil
}

// Release transitions the status to ReservationReleased.
// Only Reserved reservations can be released.
func (s ReservationStatus) Release() (ReservationStatus, error) {
	if s != Reserved {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"reservation status is invalid",
			fmt.Errorf("%s is not a valid status to release", s.String()),
		)
	}

	return ReservationReleased, nil
}
