package order

import (
	"errors"
	"fmt"

	"rapidxcel/internal/core/domain/model/kernel"
	"rapidxcel/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory methods. This ensures all
// orders are properly validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

// Order represents a durable, confirmed retail order. It is the aggregate root
// that manages the order lifecycle from confirmation through fulfilment or
// cancellation.
//
// Order follows these invariants:
//   - Must have valid unique order and customer identifiers
//   - Must have a non-empty shipping address
//   - Consignment weight must be positive (greater than 0)
//   - Shipping cost is always derived from the consignment weight server-side,
//     never taken from a caller
//   - Status transitions follow the rules defined by Status
//   - Can only be created through NewOrder or RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID identifies the ordering customer
	customerID kernel.UUID

	// shippingAddress is the delivery destination
	shippingAddress string

	// consignmentWeight is the billable weight of the consignment (must be positive)
	consignmentWeight int

	// shippingCost is the computed delivery charge
	shippingCost kernel.Money

	// status represents the current state in the order lifecycle
	status Status

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order in Pending status with validation. This is the
// only way to create a valid Order at confirmation time, ensuring all business
// invariants are maintained.
//
// Parameters:
//   - id: Unique identifier for the order (must be a valid UUID)
//   - customerID: Identifier of the ordering customer (must be a valid UUID)
//   - shippingAddress: Delivery destination (must not be empty)
//   - consignmentWeight: Billable weight (must be positive)
//   - shippingCost: Computed delivery charge (must be a constructed Money)
//
// Returns the created order, or a validation error if any parameter is invalid.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	shippingAddress string,
	consignmentWeight int,
	shippingCost kernel.Money,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setShippingAddress(shippingAddress),
		o.setConsignmentWeight(consignmentWeight),
		o.setShippingCost(shippingCost),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence, including its status.
// Applies the same field validation as NewOrder plus status validation, so
// invalid rows fail fast instead of producing a corrupt aggregate.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	shippingAddress string,
	consignmentWeight int,
	shippingCost kernel.Money,
	status Status,
) (*Order, error) {
	o, err := NewOrder(id, customerID, shippingAddress, consignmentWeight, shippingCost)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	o.status = status

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
// Returns ErrOrderIsNotConstructed otherwise. This method should be called
// when reconstructing orders from persistence to ensure data integrity.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the ordering customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// ShippingAddress returns the delivery destination.
func (o *Order) ShippingAddress() string {
	return o.shippingAddress
}

// ConsignmentWeight returns the billable weight of the consignment.
func (o *Order) ConsignmentWeight() int {
	return o.consignmentWeight
}

// ShippingCost returns the computed delivery charge.
func (o *Order) ShippingCost() kernel.Money {
	return o.shippingCost
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Confirm marks the order as accepted for fulfilment.
//
// Business rules:
//   - The order must be in Pending status
//   - Confirmed is a final state with no further transitions
func (o *Order) Confirm() error {
	newStatus, err := o.status.Confirm()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel withdraws the order before fulfilment.
//
// Business rules:
//   - The order must be in Pending status
//   - Cancelled is a final state with no further transitions
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// ChangeConsignment updates the consignment weight together with its freshly
// computed shipping cost. The cost always accompanies the weight so the two
// can never drift apart; callers recompute it through the pricing service and
// never accept a client-supplied value.
func (o *Order) ChangeConsignment(weight int, shippingCost kernel.Money) error {
	if err := errors.Join(
		validateConsignmentWeight(weight),
		shippingCost.Validate(),
	); err != nil {
		return err
	}

	o.consignmentWeight = weight
	o.shippingCost = shippingCost
	return nil
}

// ChangeShippingAddress updates the delivery destination.
func (o *Order) ChangeShippingAddress(address string) error {
	return o.setShippingAddress(address)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setShippingAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("shippingAddress")
	}
	o.shippingAddress = address
	return nil
}

func (o *Order) setConsignmentWeight(weight int) error {
	if err := validateConsignmentWeight(weight); err != nil {
		return err
	}
	o.consignmentWeight = weight
	return nil
}

func (o *Order) setShippingCost(cost kernel.Money) error {
	if err := cost.Validate(); err != nil {
		return err
	}
	o.shippingCost = cost
	return nil
}

func validateConsignmentWeight(weight int) error {
	if weight <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"consignmentWeight",
			fmt.Errorf("%d is not greater than 0", weight),
		)
	}
	return nil
}
