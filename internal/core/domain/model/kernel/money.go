package kernel

import (
	"fmt"

	"rapidxcel/internal/pkg/errs"
	"rapidxcel/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNotConstructed is returned when attempting to use an improperly initialized Money.
// Money must be created using one of the constructor functions to ensure validity.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoney, MoneyFromString, MoneyFromInt, or ZeroMoney")

// Money is an immutable value object representing a non-negative monetary
// amount. It is backed by a fixed-precision decimal so that repeated additions
// and multiplications across many order lines never accumulate binary
// floating-point rounding drift.
//
// The zero value of Money is invalid and will fail validation - use the
// constructors to create instances.
//
// Example:
//
//	price, err := kernel.MoneyFromString("10.50")
//	if err != nil {
//	    // Handle validation error
//	}
//	lineTotal := price.Mul(3)         // 31.50
//	total := lineTotal.Add(shipping)  // exact decimal arithmetic
type Money struct {
	amount decimal.Decimal

	guard guard.ConstructorGuard
}

// NewMoney creates a Money value from a decimal amount.
// Returns an error if the amount is negative.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"money amount",
			fmt.Errorf("%s is negative", amount.String()),
		)
	}

	return Money{amount: amount, guard: guard.NewConstructorGuard()}, nil
}

// MoneyFromString parses a Money value from its decimal string representation,
// e.g. "10.50". Returns an error if the string is not a valid decimal or the
// amount is negative.
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money amount", err)
	}
	return NewMoney(amount)
}

// MoneyFromInt creates a Money value from a whole number of currency units.
// Returns an error if the value is negative.
func MoneyFromInt(n int64) (Money, error) {
	return NewMoney(decimal.NewFromInt(n))
}

// ZeroMoney returns a valid Money value of zero.
// Used as the identity element when summing line totals.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero, guard: guard.NewConstructorGuard()}
}

// Amount returns the underlying decimal amount.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Add returns the sum of two Money values.
// The sum of two non-negative amounts is always valid.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount), guard: guard.NewConstructorGuard()}
}

// Mul multiplies the amount by a non-negative integer quantity.
// Multiplying by a negative quantity is a programming error; the result is
// clamped by construction since callers validate quantities upstream.
func (m Money) Mul(quantity int) Money {
	return Money{
		amount: m.amount.Mul(decimal.NewFromInt(int64(quantity))),
		guard:  guard.NewConstructorGuard(),
	}
}

// IsZero reports whether the amount equals zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsEqual compares two Money values for exact decimal equality.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// GreaterThanOrEqual reports whether the amount is >= the other amount.
func (m Money) GreaterThanOrEqual(other Money) bool {
	return m.amount.GreaterThanOrEqual(other.amount)
}

// String returns the amount formatted with two decimal places, e.g. "30.00".
func (m Money) String() string {
	return m.amount.StringFixed(2)
}

// Validate checks if the Money value is properly constructed.
// Returns ErrMoneyIsNotConstructed for zero-value instances.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}
