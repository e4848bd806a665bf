package services

import (
	"rapidxcel/internal/core/domain/model/kernel"
	"rapidxcel/internal/core/domain/model/order"
	"rapidxcel/internal/core/domain/model/stock"
)

// Pricer is a domain service that prices order attempts: individual line
// items and the order-level subtotal and shipping cost.
//
// The shipping model bills by total shipped weight, approximated as the total
// ordered quantity, at a configurable rate per unit. The model guarantees:
//   - deterministic results for identical inputs
//   - shipping cost monotonically non-decreasing in total quantity
//   - zero shipping cost for an empty order
//
// All arithmetic uses fixed-precision decimals via kernel.Money, so totals are
// exact regardless of how many lines an order carries.
type Pricer struct {
	weightRate kernel.Money
}

// NewPricer creates a Pricer with the given shipping rate per unit of weight.
// Returns an error if the rate is not a constructed Money value.
func NewPricer(weightRate kernel.Money) (Pricer, error) {
	if err := weightRate.Validate(); err != nil {
		return Pricer{}, err
	}
	return Pricer{weightRate: weightRate}, nil
}

// PriceLine prices a single requested quantity of a stock item.
// Requires quantity > 0; zero and negative requests are filtered out upstream
// and must never reach pricing. The resulting line total is
// unitPrice * quantity.
func (p Pricer) PriceLine(s *stock.Stock, quantity int) (order.Item, error) {
	if err := s.Validate(); err != nil {
		return order.Item{}, err
	}

	return order.NewItem(s.ID(), s.Name(), s.Price(), quantity)
}

// PriceOrder computes the subtotal and shipping cost for a set of priced line
// items. The subtotal is the exact decimal sum of line totals; the shipping
// cost is weightRate * total quantity. Both are zero for an empty item set.
func (p Pricer) PriceOrder(items []order.Item) (subtotal, shippingCost kernel.Money, err error) {
	subtotal = kernel.ZeroMoney()
	totalQuantity := 0

	for _, item := range items {
		if err = item.Validate(); err != nil {
			return kernel.Money{}, kernel.Money{}, err
		}
		subtotal = subtotal.Add(item.LineTotal())
		totalQuantity += item.Quantity()
	}

	return subtotal, p.ShippingCost(totalQuantity), nil
}

// ShippingCost computes the delivery charge for a consignment of the given
// total weight. Weights of zero or less price to zero.
func (p Pricer) ShippingCost(totalWeight int) kernel.Money {
	if totalWeight <= 0 {
		return kernel.ZeroMoney()
	}
	return p.weightRate.Mul(totalWeight)
}
