package order

import (
	"errors"
	"fmt"

	"rapidxcel/internal/core/domain/model/kernel"
	"rapidxcel/internal/pkg/errs"
	"rapidxcel/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item was not created through NewItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is an immutable value object representing one line of an order attempt:
// a stock item paired with a strictly positive ordered quantity and the
// resulting line total.
//
// Items are request-scoped: they exist inside a Reservation and are discarded
// once the order is confirmed or the reservation is released. Line totals are
// computed once at construction with decimal arithmetic
// (lineTotal = unitPrice * quantity).
type Item struct {
	stockID   kernel.UUID
	stockName string
	unitPrice kernel.Money
	quantity  int
	lineTotal kernel.Money

	guard guard.ConstructorGuard
}

// NewItem creates a priced line item.
//
// Business rules:
//   - stockID must be a valid UUID
//   - stockName must not be empty
//   - unitPrice must be a constructed Money value
//   - quantity must be strictly positive (zero-quantity requests are filtered
//     out upstream and never priced)
func NewItem(stockID kernel.UUID, stockName string, unitPrice kernel.Money, quantity int) (Item, error) {
	if err := stockID.Validate(); err != nil {
		return Item{}, err
	}
	if stockName == "" {
		return Item{}, errs.NewValueIsRequiredError("stockName")
	}
	if err := unitPrice.Validate(); err != nil {
		return Item{}, err
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	return Item{
		stockID:   stockID,
		stockName: stockName,
		unitPrice: unitPrice,
		quantity:  quantity,
		lineTotal: unitPrice.Mul(quantity),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// StockID returns the identifier of the ordered catalog item.
func (i Item) StockID() kernel.UUID {
	return i.stockID
}

// StockName returns the display name of the ordered catalog item.
func (i Item) StockName() string {
	return i.stockName
}

// UnitPrice returns the price per unit at the time the item was priced.
func (i Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Quantity returns the ordered quantity (always > 0).
func (i Item) Quantity() int {
	return i.quantity
}

// LineTotal returns unitPrice * quantity computed with decimal arithmetic.
func (i Item) LineTotal() kernel.Money {
	return i.lineTotal
}

// Validate ensures the Item was created through NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}
