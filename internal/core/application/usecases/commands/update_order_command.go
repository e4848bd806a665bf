package commands

import (
	"errors"
	"fmt"

	"rapidxcel/internal/core/domain/model/kernel"
	"rapidxcel/internal/core/domain/model/order"
	"rapidxcel/internal/pkg/errs"
	"rapidxcel/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand represents a partial update of a persisted order.
// Nil fields are left unchanged. At least one field must be provided.
//
// A consignment weight update never carries a shipping cost: the cost is
// always recomputed server-side from the new weight, so a client-supplied
// value has nowhere to enter the system.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID           kernel.UUID
	shippingAddress   *string
	consignmentWeight *int
	status            *order.Status

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a partial-update command for the given order.
// Validates that at least one field is provided, that a provided weight is
// positive, and that a provided status is a valid lifecycle status.
func NewUpdateOrderCommand(
	orderID kernel.UUID,
	shippingAddress *string,
	consignmentWeight *int,
	status *order.Status,
) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setFields(shippingAddress, consignmentWeight, status),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateOrderCommandIsNotConstructed if validation fails.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being updated.
func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ShippingAddress returns the new delivery address, or nil when unchanged.
func (c UpdateOrderCommand) ShippingAddress() *string {
	return c.shippingAddress
}

// ConsignmentWeight returns the new billable weight, or nil when unchanged.
func (c UpdateOrderCommand) ConsignmentWeight() *int {
	return c.consignmentWeight
}

// Status returns the target lifecycle status, or nil when unchanged.
func (c UpdateOrderCommand) Status() *order.Status {
	return c.status
}

func (c *UpdateOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *UpdateOrderCommand) setFields(address *string, weight *int, status *order.Status) error {
	if address == nil && weight == nil && status == nil {
		return errs.NewValueIsRequiredError("update fields")
	}

	if address != nil && *address == "" {
		return errs.NewValueIsRequiredError("shippingAddress")
	}

	if weight != nil && *weight <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"consignmentWeight",
			fmt.Errorf("%d is not greater than 0", *weight),
		)
	}

	if status != nil {
		if err := status.Validate(); err != nil {
			return err
		}
	}

	c.shippingAddress = address
	c.consignmentWeight = weight
	c.status = status
	return nil
}
