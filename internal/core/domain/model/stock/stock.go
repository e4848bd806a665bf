package stock

import (
	"errors"
	"fmt"

	"rapidxcel/internal/core/domain/model/kernel"
	"rapidxcel/internal/pkg/errs"
)

var (
	// ErrStockIsNotConstructed is returned when a Stock instance was not created
	// through the NewStock or RestoreStock factory methods.
	ErrStockIsNotConstructed = errors.New("Stock must be created via NewStock or RestoreStock constructor")

	// ErrInsufficientStock is the sentinel for rejected order attempts where a
	// requested quantity exceeds the available quantity. Use errors.Is against
	// this sentinel; the concrete InsufficientStockError names the failing stock.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// InsufficientStockError reports which stock item could not cover a requested
// quantity. The whole order attempt is rolled back when this error occurs, so
// the available quantity reflects the pre-attempt state.
type InsufficientStockError struct {
	StockID   kernel.UUID
	StockName string
	Requested int
	Available int
}

// NewInsufficientStockError creates an InsufficientStockError for the given stock item.
func NewInsufficientStockError(id kernel.UUID, name string, requested, available int) *InsufficientStockError {
	return &InsufficientStockError{
		StockID:   id,
		StockName: name,
		Requested: requested,
		Available: available,
	}
}

// Error implements the error interface.
func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock: %s (requested %d, available %d)",
		e.StockName, e.Requested, e.Available)
}

// Unwrap returns ErrInsufficientStock to support errors.Is.
func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}

// Stock is the aggregate root for a catalog item. It holds the unit price and
// the currently available quantity.
//
// Stock follows these invariants:
//   - Must have a valid unique identifier
//   - Must have a non-empty name
//   - Unit price is a valid non-negative Money value
//   - Quantity never goes negative; it is mutated only through Decrement and
//     Replenish inside an order attempt's transaction boundary
//   - Can only be created through NewStock or RestoreStock
type Stock struct {
	// id is the unique identifier for the catalog item
	id kernel.UUID

	// name is the display name of the catalog item
	name string

	// price is the unit price
	price kernel.Money

	// quantity is the currently available amount (never negative)
	quantity int

	// isConstructed ensures the stock was created via a constructor
	isConstructed bool
}

// NewStock creates a new Stock instance with validation. This is the only way
// to create a valid catalog item, ensuring all invariants hold.
//
// Parameters:
//   - id: Unique identifier (must be a valid UUID)
//   - name: Display name (must not be empty)
//   - price: Unit price (must be a constructed, non-negative Money)
//   - quantity: Available amount (must not be negative)
//
// Returns the created stock, or a validation error if any parameter is invalid.
func NewStock(id kernel.UUID, name string, price kernel.Money, quantity int) (*Stock, error) {
	s := &Stock{isConstructed: true}

	if err := errors.Join(
		s.setID(id),
		s.setName(name),
		s.setPrice(price),
		s.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreStock reconstructs a Stock from persistence.
// Applies the same validation as NewStock.
func RestoreStock(id kernel.UUID, name string, price kernel.Money, quantity int) (*Stock, error) {
	return NewStock(id, name, price, quantity)
}

// Validate ensures the Stock instance was properly constructed.
func (s *Stock) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrStockIsNotConstructed
	}
	return nil
}

// IsEqual compares two stocks by their unique identifiers.
func (s *Stock) IsEqual(other *Stock) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the stock's unique identifier.
func (s *Stock) ID() kernel.UUID {
	return s.id
}

// Name returns the display name of the catalog item.
func (s *Stock) Name() string {
	return s.name
}

// Price returns the unit price.
func (s *Stock) Price() kernel.Money {
	return s.price
}

// Quantity returns the currently available amount.
func (s *Stock) Quantity() int {
	return s.quantity
}

// Decrement reserves the given quantity by reducing the available amount.
//
// Business rules:
//   - quantity must be greater than 0
//   - the available amount must cover the request; otherwise an
//     InsufficientStockError naming this stock is returned and the available
//     amount is left unchanged
func (s *Stock) Decrement(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	if s.quantity < quantity {
		return NewInsufficientStockError(s.id, s.name, quantity, s.quantity)
	}

	s.quantity -= quantity
	return nil
}

// Replenish returns the given quantity to the available amount.
// Used when a stock reservation is released without confirmation.
func (s *Stock) Replenish(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	s.quantity += quantity
	return nil
}

func (s *Stock) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Stock) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	s.name = name
	return nil
}

func (s *Stock) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	s.price = price
	return nil
}

func (s *Stock) setQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is negative", quantity),
		)
	}
	s.quantity = quantity
	return nil
}
