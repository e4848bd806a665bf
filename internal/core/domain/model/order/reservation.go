package order

import (
	"errors"
	"time"

	"rapidxcel/internal/core/domain/model/kernel"
	"rapidxcel/internal/pkg/errs"
)

// ErrReservationIsNotConstructed is returned when a Reservation was not
// created through the NewReservation or RestoreReservation factory methods.
var ErrReservationIsNotConstructed = errors.New(
	"Reservation must be created via NewReservation or RestoreReservation constructor")

// ErrReservationHasNoItems is returned when a reservation is created without
// any priced line items. An order attempt with no positive quantities never
// reaches pricing, so this guards against programming errors upstream.
var ErrReservationHasNoItems = errors.New("reservation must contain at least one item")

// ErrReservationStatusConflict is returned when a reservation's persisted
// status changed underneath a transition, i.e. a confirmation and the expiry
// sweep raced over the same reservation and the other writer won.
var ErrReservationStatusConflict = errors.New("reservation was already finalized by a concurrent operation")

// Reservation is the aggregate root for a priced order preview with its stock
// already decremented. It is the hand-off artifact between the order attempt
// and the confirmation step: stock is reserved when the Reservation is
// created, and either converted into a durable Order on confirmation or
// returned to the catalog when the reservation expires.
//
// Reservation follows these invariants:
//   - Must have a valid unique identifier
//   - Destination address, pin code, and phone are required
//   - Holds at least one line item, each with a strictly positive quantity
//   - total = subtotal + shippingCost, computed with decimal arithmetic
//   - Status transitions follow the rules defined by ReservationStatus
type Reservation struct {
	id kernel.UUID

	// destination captured from the place-order request
	deliveryAddress string
	pinCode         string
	phoneNumber     string

	// priced line items, in catalog order
	items []Item

	subtotal     kernel.Money
	shippingCost kernel.Money
	total        kernel.Money

	status    ReservationStatus
	expiresAt time.Time

	isConstructed bool
}

// NewReservation creates a reservation in Reserved status.
//
// Parameters:
//   - id: Unique identifier (must be a valid UUID)
//   - deliveryAddress, pinCode, phoneNumber: Destination details (required)
//   - items: Priced line items (at least one, each constructed via NewItem)
//   - subtotal: Sum of line totals (must be a constructed Money)
//   - shippingCost: Computed delivery charge (must be a constructed Money)
//   - expiresAt: Deadline after which the reserved stock is returned
//
// The grand total is derived as subtotal + shippingCost; it is never taken
// from a caller.
func NewReservation(
	id kernel.UUID,
	deliveryAddress string,
	pinCode string,
	phoneNumber string,
	items []Item,
	subtotal kernel.Money,
	shippingCost kernel.Money,
	expiresAt time.Time,
) (*Reservation, error) {
	r := &Reservation{
		status:        Reserved,
		expiresAt:     expiresAt,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setDestination(deliveryAddress, pinCode, phoneNumber),
		r.setItems(items),
		r.setAmounts(subtotal, shippingCost),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreReservation reconstructs a Reservation from persistence, including
// its status. Applies the same validation as NewReservation.
func RestoreReservation(
	id kernel.UUID,
	deliveryAddress string,
	pinCode string,
	phoneNumber string,
	items []Item,
	subtotal kernel.Money,
	shippingCost kernel.Money,
	status ReservationStatus,
	expiresAt time.Time,
) (*Reservation, error) {
	r, err := NewReservation(id, deliveryAddress, pinCode, phoneNumber, items, subtotal, shippingCost, expiresAt)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	r.status = status

	return r, nil
}

// Validate ensures the Reservation instance was properly constructed.
func (r *Reservation) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrReservationIsNotConstructed
	}
	return nil
}

// ID returns the reservation's unique identifier.
func (r *Reservation) ID() kernel.UUID {
	return r.id
}

// DeliveryAddress returns the destination address.
func (r *Reservation) DeliveryAddress() string {
	return r.deliveryAddress
}

// PinCode returns the destination service-area code.
func (r *Reservation) PinCode() string {
	return r.pinCode
}

// PhoneNumber returns the contact phone number.
func (r *Reservation) PhoneNumber() string {
	return r.phoneNumber
}

// Items returns the priced line items in catalog order.
// The returned slice is a copy; mutating it does not affect the reservation.
func (r *Reservation) Items() []Item {
	items := make([]Item, len(r.items))
	copy(items, r.items)
	return items
}

// Subtotal returns the sum of all line totals.
func (r *Reservation) Subtotal() kernel.Money {
	return r.subtotal
}

// ShippingCost returns the computed delivery charge.
func (r *Reservation) ShippingCost() kernel.Money {
	return r.shippingCost
}

// Total returns subtotal + shippingCost.
func (r *Reservation) Total() kernel.Money {
	return r.total
}

// Status returns the current reservation status.
func (r *Reservation) Status() ReservationStatus {
	return r.status
}

// ExpiresAt returns the deadline after which the reservation may be released.
func (r *Reservation) ExpiresAt() time.Time {
	return r.expiresAt
}

// TotalQuantity returns the summed ordered quantity across all line items.
// This is the consignment weight under the quantity-as-weight shipping model.
func (r *Reservation) TotalQuantity() int {
	total := 0
	for _, item := range r.items {
		total += item.Quantity()
	}
	return total
}

// IsExpired reports whether the reservation deadline has passed at the given time.
func (r *Reservation) IsExpired(now time.Time) bool {
	return now.After(r.expiresAt)
}

// Confirm marks the reservation as converted into a durable order.
// Only Reserved reservations can be confirmed.
func (r *Reservation) Confirm() error {
	newStatus, err := r.status.Confirm()
	if err != nil {
		return err
	}

	r.status = newStatus
	return nil
}

// Release marks the reservation as abandoned so its stock can be returned to
// the catalog. Only Reserved reservations can be released.
func (r *Reservation) Release() error {
	newStatus, err := r.status.Release()
	if err != nil {
		return err
	}

	r.status = newStatus
	return nil
}

func (r *Reservation) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Reservation) setDestination(address, pinCode, phone string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}
	if pinCode == "" {
		return errs.NewValueIsRequiredError("pinCode")
	}
	if phone == "" {
		return errs.NewValueIsRequiredError("phoneNumber")
	}

	r.deliveryAddress = address
	r.pinCode = pinCode
	r.phoneNumber = phone
	return nil
}

func (r *Reservation) setItems(items []Item) error {
	if len(items) == 0 {
		return ErrReservationHasNoItems
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	r.items = make([]Item, len(items))
	copy(r.items, items)
	return nil
}

func (r *Reservation) setAmounts(subtotal, shippingCost kernel.Money) error {
	if err := errors.Join(subtotal.Validate(), shippingCost.Validate()); err != nil {
		return err
	}

	r.subtotal = subtotal
	r.shippingCost = shippingCost
	r.total = subtotal.Add(shippingCost)
	return nil
}
