package commands

import (
	"context"
)

// ReleaseExpiredReservationsCommandHandler compensates abandoned order
// attempts: reservations that were never confirmed within their TTL have
// their stock returned to the catalog and are marked Released.
//
// The sweep runs in one transaction so a partially released batch can never
// be observed: either every expired reservation in the batch is released and
// its stock replenished, or none are.
type ReleaseExpiredReservationsCommandHandler struct {
	uowFactory ReservationUoWFactory
}

// NewReleaseExpiredReservationsCommandHandler creates a handler for the expiry sweep.
func NewReleaseExpiredReservationsCommandHandler(
	uowFactory ReservationUoWFactory,
) ReleaseExpiredReservationsCommandHandler {
	return ReleaseExpiredReservationsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the sweep and returns the number of reservations released.
func (h *ReleaseExpiredReservationsCommandHandler) Handle(
	ctx context.Context,
	cmd ReleaseExpiredReservationsCommand,
) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	reservationRepo := uow.ReservationRepository()
	expired, err := reservationRepo.GetAllExpired(ctx, cmd.Now())
	if err != nil {
		return 0, err
	}

	stockRepo := uow.StockRepository()
	for _, reservation := range expired {
		for _, item := range reservation.Items() {
			if err = stockRepo.Replenish(ctx, item.StockID(), item.Quantity()); err != nil {
				return 0, err
			}
		}

		if err = reservation.Release(); err != nil {
			return 0, err
		}

		if err = reservationRepo.Update(ctx, reservation); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(expired), nil
}
