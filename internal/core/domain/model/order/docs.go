// Package order provides domain entities and business logic for the order
// side of the retail workflow: the priced preview produced by an order
// attempt and the durable order created on confirmation.
//
// The package includes:
//   - Item: A priced line item (stock, strictly positive quantity, line total)
//   - Reservation: The aggregate root for a priced order preview whose stock
//     has already been decremented, awaiting confirmation or release
//   - ReservationStatus: State machine Reserved -> Confirmed | Released
//   - Order: The aggregate root for a durable order with its consignment
//     weight and server-computed shipping cost
//   - Status: State machine Pending -> Confirmed | Cancelled
//
// Key business rules:
//   - Line totals and order totals use fixed-precision decimal arithmetic
//   - total = subtotal + shippingCost, always derived, never caller-supplied
//   - Reservations hold at least one item and expire after a deadline,
//     at which point their stock is returned to the catalog
//   - Order status only moves forward; Confirmed and Cancelled are final
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
