package ports

import (
	"context"
	"time"

	"rapidxcel/internal/core/domain/model/kernel"
	"rapidxcel/internal/core/domain/model/order"
)

// ReservationRepository defines the persistence contract for stock
// reservation aggregates (priced order previews awaiting confirmation).
type ReservationRepository interface {
	// Add persists a new reservation together with its line items.
	Add(ctx context.Context, aggregate *order.Reservation) error

	// Update persists changes to an existing reservation.
	// Returns an ObjectNotFoundError if the reservation does not exist.
	Update(ctx context.Context, aggregate *order.Reservation) error

	// Get retrieves a reservation by its unique identifier.
	// Returns an ObjectNotFoundError if the reservation does not exist.
	Get(ctx context.Context, id kernel.UUID) (*order.Reservation, error)

	// GetAllExpired retrieves reservations still in Reserved status whose
	// deadline has passed at the given time. Used by the expiry job to return
	// abandoned stock to the catalog.
	GetAllExpired(ctx context.Context, now time.Time) ([]*order.Reservation, error)
}
