package queries

import (
	"errors"
	"time"

	"rapidxcel/internal/core/domain/model/kernel"
	"rapidxcel/internal/core/domain/model/order"
	"rapidxcel/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves all persisted orders for tracking and management.
type GetOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query to retrieve all orders.
func NewGetOrdersQuery() GetOrdersQuery {
	return GetOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersQueryIsNotConstructed if validation fails.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// GetOrdersQueryResponse represents one persisted order in the listing.
type GetOrdersQueryResponse struct {
	ID                kernel.UUID
	CustomerID        kernel.UUID
	ShippingAddress   string
	ConsignmentWeight int
	ShippingCost      kernel.Money
	Status            order.Status
	CreatedAt         time.Time
}
