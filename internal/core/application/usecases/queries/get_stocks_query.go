package queries

import (
	"errors"

	"rapidxcel/internal/core/domain/model/kernel"
	"rapidxcel/internal/pkg/guard"
)

var ErrGetStocksQueryIsNotConstructed = errors.New(
	"GetStocksQuery must be created via NewGetStocksQuery constructor",
)

// GetStocksQuery retrieves the full catalog with live availability.
// Customers browse this listing to decide what to order.
//
// Example:
//
//	query := NewGetStocksQuery()
//	handler := NewGetStocksQueryHandler(db)
//
//	stocks, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get catalog: %w", err)
//	}
type GetStocksQuery struct {
	guard guard.ConstructorGuard
}

// NewGetStocksQuery creates a query to retrieve the catalog.
// This is a parameterless query that fetches every stock item.
func NewGetStocksQuery() GetStocksQuery {
	return GetStocksQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetStocksQueryIsNotConstructed if validation fails.
func (q GetStocksQuery) Validate() error {
	return q.guard.Validate(ErrGetStocksQueryIsNotConstructed)
}

// GetStocksQueryResponse represents one catalog item with its availability.
type GetStocksQueryResponse struct {
	ID       kernel.UUID
	Name     string
	Price    kernel.Money
	Quantity int
}
