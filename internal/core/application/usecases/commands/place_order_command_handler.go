package commands

import (
	"context"
	"time"

	"rapidxcel/internal/core/domain/model/order"
	"rapidxcel/internal/core/domain/services"
)

// PlaceOrderCommandHandler handles the business logic for an order attempt:
// serviceability validation, atomic stock reservation, and pricing. On
// success it produces a persisted Reservation - the priced order preview
// awaiting confirmation.
//
// The attempt walks the catalog in stable order and decrements stock for every
// strictly positive requested quantity inside a single transaction. If any
// decrement cannot be covered the whole attempt rolls back, so no order is
// ever partially fulfilled. Unserviceable destinations are rejected before the
// transaction begins and never touch stock.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, serviceArea, pricer, 30*time.Minute)
//	preview, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, services.ErrUnserviceableArea) {
//	    // destination not deliverable, nothing was reserved
//	}
//	if errors.Is(err, stock.ErrInsufficientStock) {
//	    // some stock could not cover the request, nothing was reserved
//	}
type PlaceOrderCommandHandler struct {
	uowFactory     ReservationUoWFactory
	serviceArea    services.ServiceArea
	pricer         services.Pricer
	reservationTTL time.Duration
}

// NewPlaceOrderCommandHandler creates a handler for order attempts.
// reservationTTL bounds how long reserved stock is held before the expiry job
// returns it to the catalog.
func NewPlaceOrderCommandHandler(
	uowFactory ReservationUoWFactory,
	serviceArea services.ServiceArea,
	pricer services.Pricer,
	reservationTTL time.Duration,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory:     uowFactory,
		serviceArea:    serviceArea,
		pricer:         pricer,
		reservationTTL: reservationTTL,
	}
}

// Handle processes the order attempt.
//
// Returns the persisted reservation on success, or:
//   - an UnserviceableAreaError when the destination is not deliverable
//     (no stock touched)
//   - an InsufficientStockError when a requested quantity cannot be covered
//     (whole attempt rolled back)
//   - ErrNoItemsRequested / order.ErrReservationHasNoItems when no requested
//     quantity matches a catalog item
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*order.Reservation, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if !h.serviceArea.IsServiceable(cmd.PinCode()) {
		return nil, services.NewUnserviceableAreaError(cmd.PinCode())
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	stockRepo := uow.StockRepository()
	stocks, err := stockRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(stocks))
	for _, s := range stocks {
		quantity := cmd.QuantityFor(s.ID())
		if quantity <= 0 {
			continue
		}

		if err = stockRepo.Decrement(ctx, s.ID(), quantity); err != nil {
			return nil, err
		}

		item, itemErr := h.pricer.PriceLine(s, quantity)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	subtotal, shippingCost, err := h.pricer.PriceOrder(items)
	if err != nil {
		return nil, err
	}

	reservation, err := order.NewReservation(
		cmd.ReservationID(),
		cmd.DeliveryAddress(),
		cmd.PinCode(),
		cmd.PhoneNumber(),
		items,
		subtotal,
		shippingCost,
		time.Now().Add(h.reservationTTL),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.ReservationRepository().Add(ctx, reservation); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return reservation, nil
}
