package commands

import (
	"context"

	"rapidxcel/internal/core/domain/model/order"
	"rapidxcel/internal/core/domain/services"
	"rapidxcel/internal/pkg/errs"
)

// UpdateOrderCommandHandler applies partial updates to persisted orders.
//
// Weight updates recompute the shipping cost through the pricing service;
// any cost a client might send alongside the weight is ignored by design.
// Status updates drive the Pending -> Confirmed | Cancelled state machine.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	pricer     services.Pricer
}

// NewUpdateOrderCommandHandler creates a handler for partial order updates.
// The pricer is required so weight changes can recompute shipping cost.
func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory, pricer services.Pricer) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
		pricer:     pricer,
	}
}

// Handle processes the partial update.
//
// Returns the updated order, or:
//   - an ObjectNotFoundError when the order does not exist
//   - a status transition error when the requested status is not reachable
//     from the order's current status
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
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

	orderRepo := uow.OrderRepository()
	existing, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if address := cmd.ShippingAddress(); address != nil {
		if err = existing.ChangeShippingAddress(*address); err != nil {
			return nil, err
		}
	}

	if weight := cmd.ConsignmentWeight(); weight != nil {
		if err = existing.ChangeConsignment(*weight, h.pricer.ShippingCost(*weight)); err != nil {
			return nil, err
		}
	}

	if status := cmd.Status(); status != nil {
		if err = h.applyStatus(existing, *status); err != nil {
			return nil, err
		}
	}

	if err = orderRepo.Update(ctx, existing); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return existing, nil
}

func (h *UpdateOrderCommandHandler) applyStatus(o *order.Order, target order.Status) error {
	switch target {
	case order.Confirmed:
		return o.Confirm()
	case order.Cancelled:
		return o.Cancel()
	default:
		// Pending is the initial status; nothing transitions back into it.
		return errs.NewValueIsInvalidError("status")
	}
}
