package commands

import (
	"errors"
	"fmt"

	"rapidxcel/internal/core/domain/model/kernel"
	"rapidxcel/internal/pkg/errs"
	"rapidxcel/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrNoItemsRequested = errors.New("order must request at least one item")
)

// PlaceOrderCommand represents an order attempt: a destination plus the
// requested quantity per catalog item. Quantities are keyed by stock ID;
// absent entries mean "not ordered" and default to zero.
//
// Example:
//
//	quantities := map[kernel.UUID]int{boltsID: 3}
//	cmd, err := NewPlaceOrderCommand(
//	    kernel.NewUUID(), "221B Baker Street", "62701", "555-0101", quantities)
//	if err != nil {
//	    return fmt.Errorf("invalid order attempt: %w", err)
//	}
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, serviceArea, pricer, ttl)
//	preview, err := handler.Handle(ctx, cmd)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	reservationID   kernel.UUID
	deliveryAddress string
	pinCode         string
	phoneNumber     string
	quantities      map[kernel.UUID]int

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command for an order attempt.
// Validates the destination fields and the requested quantities before any
// store access: negative quantities are rejected, and at least one strictly
// positive quantity must be present.
func NewPlaceOrderCommand(
	reservationID kernel.UUID,
	deliveryAddress string,
	pinCode string,
	phoneNumber string,
	quantities map[kernel.UUID]int,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setReservationID(reservationID),
		cmd.setDestination(deliveryAddress, pinCode, phoneNumber),
		cmd.setQuantities(quantities),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPlaceOrderCommandIsNotConstructed if validation fails.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// ReservationID returns the identifier assigned to the resulting reservation.
func (c PlaceOrderCommand) ReservationID() kernel.UUID {
	return c.reservationID
}

// DeliveryAddress returns the destination address.
func (c PlaceOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// PinCode returns the destination service-area code.
func (c PlaceOrderCommand) PinCode() string {
	return c.pinCode
}

// PhoneNumber returns the contact phone number.
func (c PlaceOrderCommand) PhoneNumber() string {
	return c.phoneNumber
}

// QuantityFor returns the requested quantity for the given stock ID.
// Absent entries default to zero, meaning "not ordered".
func (c PlaceOrderCommand) QuantityFor(stockID kernel.UUID) int {
	return c.quantities[stockID]
}

func (c *PlaceOrderCommand) setReservationID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.reservationID = id
	return nil
}

func (c *PlaceOrderCommand) setDestination(address, pinCode, phone string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}
	if pinCode == "" {
		return errs.NewValueIsRequiredError("pinCode")
	}
	if phone == "" {
		return errs.NewValueIsRequiredError("phoneNumber")
	}

	c.deliveryAddress = address
	c.pinCode = pinCode
	c.phoneNumber = phone
	return nil
}

func (c *PlaceOrderCommand) setQuantities(quantities map[kernel.UUID]int) error {
	requested := make(map[kernel.UUID]int, len(quantities))
	anyPositive := false

	for id, qty := range quantities {
		if err := id.Validate(); err != nil {
			return err
		}
		if qty < 0 {
			return errs.NewValueIsInvalidErrorWithCause(
				"quantity",
				fmt.Errorf("%d for stock %s is negative", qty, id.String()),
			)
		}
		if qty > 0 {
			requested[id] = qty
			anyPositive = true
		}
	}

	if !anyPositive {
		return ErrNoItemsRequested
	}

	c.quantities = requested
	return nil
}
