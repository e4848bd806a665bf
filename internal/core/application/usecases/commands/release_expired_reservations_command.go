package commands

import (
	"errors"
	"time"

	"rapidxcel/internal/pkg/guard"
)

var ErrReleaseExpiredReservationsCommandIsNotConstructed = errors.New(
	"ReleaseExpiredReservationsCommand must be created via NewReleaseExpiredReservationsCommand constructor",
)

// ReleaseExpiredReservationsCommand triggers a sweep that returns the stock
// of expired, unconfirmed reservations to the catalog. Issued periodically by
// the reservation expiry job.
type ReleaseExpiredReservationsCommand struct {
	now time.Time

	guard guard.ConstructorGuard
}

// NewReleaseExpiredReservationsCommand creates a sweep command evaluated at
// the given instant. Reservations whose deadline precedes now are released.
func NewReleaseExpiredReservationsCommand(now time.Time) ReleaseExpiredReservationsCommand {
	return ReleaseExpiredReservationsCommand{
		now:   now,
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrReleaseExpiredReservationsCommandIsNotConstructed if validation fails.
func (c ReleaseExpiredReservationsCommand) Validate() error {
	return c.guard.Validate(ErrReleaseExpiredReservationsCommandIsNotConstructed)
}

// Now returns the instant against which expiry deadlines are evaluated.
func (c ReleaseExpiredReservationsCommand) Now() time.Time {
	return c.now
}
