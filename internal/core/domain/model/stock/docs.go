// Package stock provides the catalog side of the order workflow: the Stock
// aggregate holding a unit price and the currently available quantity.
//
// Key business rules:
//   - Quantity never goes negative
//   - Quantity is only decremented inside an order attempt's transaction
//     boundary; a request that cannot be covered fails the whole attempt with
//     InsufficientStockError
//   - Released reservations replenish quantity back to the pre-attempt state
package stock
