package commands

import (
	"context"

	"rapidxcel/internal/core/domain/model/order"
)

// ConfirmOrderCommandHandler turns a Reserved reservation into a durable
// Pending order. Stock is not re-validated: it was already decremented when
// the reservation was created. Confirming the reservation and creating the
// order happen in a single transaction so the two records can never disagree.
type ConfirmOrderCommandHandler struct {
	uowFactory ConfirmOrderUoWFactory
}

// NewConfirmOrderCommandHandler creates a handler for order confirmation.
// Requires a ConfirmOrderUoWFactory for transactional persistence.
func NewConfirmOrderCommandHandler(uowFactory ConfirmOrderUoWFactory) ConfirmOrderCommandHandler {
	return ConfirmOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the confirmation command.
//
// The consignment weight of the durable order is the reservation's total
// ordered quantity (the quantity-as-weight shipping model) and the shipping
// cost is carried over from the priced preview unchanged.
//
// Returns the created order, or:
//   - an ObjectNotFoundError when the reservation does not exist
//   - a status transition error when the reservation is not in Reserved status
//     (already confirmed, or released by the expiry job)
func (h *ConfirmOrderCommandHandler) Handle(ctx context.Context, cmd ConfirmOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	reservationRepo := uow.ReservationRepository()
	reservation, err := reservationRepo.Get(ctx, cmd.ReservationID())
	if err != nil {
		return nil, err
	}

	if err = reservation.Confirm(); err != nil {
		return nil, err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.CustomerID(),
		reservation.DeliveryAddress(),
		reservation.TotalQuantity(),
		reservation.ShippingCost(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = reservationRepo.Update(ctx, reservation); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newOrder, nil
}
