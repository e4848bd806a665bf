package commands

import (
	"errors"

	"rapidxcel/internal/core/domain/model/kernel"
	"rapidxcel/internal/pkg/guard"
)

var ErrConfirmOrderCommandIsNotConstructed = errors.New(
	"ConfirmOrderCommand must be created via NewConfirmOrderCommand constructor",
)

// ConfirmOrderCommand represents a request to turn a priced reservation into
// a durable order for a customer.
type ConfirmOrderCommand struct { //nolint:recvcheck //using for validation
	reservationID kernel.UUID
	orderID       kernel.UUID
	customerID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewConfirmOrderCommand creates a command to confirm a reservation.
// All three identifiers must be valid UUIDs.
func NewConfirmOrderCommand(reservationID, orderID, customerID kernel.UUID) (ConfirmOrderCommand, error) {
	cmd := ConfirmOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setReservationID(reservationID),
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
	); err != nil {
		return ConfirmOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrConfirmOrderCommandIsNotConstructed if validation fails.
func (c ConfirmOrderCommand) Validate() error {
	return c.guard.Validate(ErrConfirmOrderCommandIsNotConstructed)
}

// ReservationID returns the identifier of the reservation being confirmed.
func (c ConfirmOrderCommand) ReservationID() kernel.UUID {
	return c.reservationID
}

// OrderID returns the identifier assigned to the durable order.
func (c ConfirmOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the ordering customer's identifier.
func (c ConfirmOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c *ConfirmOrderCommand) setReservationID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.reservationID = id
	return nil
}

func (c *ConfirmOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *ConfirmOrderCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.customerID = id
	return nil
}
