package ports

import (
	"context"

	"rapidxcel/internal/core/domain/model/kernel"
	"rapidxcel/internal/core/domain/model/stock"
)

// StockRepository defines the persistence contract for catalog stock aggregates.
type StockRepository interface {
	// Add persists a new stock aggregate to storage.
	Add(ctx context.Context, aggregate *stock.Stock) error

	// Update persists changes to an existing stock aggregate.
	Update(ctx context.Context, aggregate *stock.Stock) error

	// Get retrieves a stock aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*stock.Stock, error)

	// GetAll retrieves the full catalog in stable (name) order.
	// Order attempts walk this list so line items come out deterministically.
	GetAll(ctx context.Context) ([]*stock.Stock, error)

	// Decrement atomically reduces the available quantity by the given amount,
	// failing with an InsufficientStockError when the remaining quantity does
	// not cover the request. The decrement is conditional at the storage level
	// so two concurrent attempts over the same stock serialize
	// first-committer-wins; the loser observes the committed decrement.
	Decrement(ctx context.Context, id kernel.UUID, quantity int) error

	// Replenish atomically returns the given amount to the available quantity.
	// Used when an expired reservation is released.
	Replenish(ctx context.Context, id kernel.UUID, quantity int) error
}
