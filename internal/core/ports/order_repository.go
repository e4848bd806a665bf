package ports

import (
	"context"

	"rapidxcel/internal/core/domain/model/kernel"
	"rapidxcel/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for durable order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// Returns an ObjectNotFoundError if the order does not exist.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns an ObjectNotFoundError if the order does not exist.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll retrieves all persisted orders, newest first.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// Delete removes an order by its unique identifier.
	// Returns an ObjectNotFoundError if the order does not exist.
	Delete(ctx context.Context, id kernel.UUID) error
}
