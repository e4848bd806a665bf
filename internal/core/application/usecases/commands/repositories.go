// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"rapidxcel/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// StockRepoFactory provides access to the stock repository within a transaction.
	StockRepoFactory interface {
		StockRepository() ports.StockRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ReservationRepoFactory provides access to the reservation repository within a transaction.
	ReservationRepoFactory interface {
		ReservationRepository() ports.ReservationRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used when commands only modify order aggregates.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// ReservationUoW manages transactions spanning stock and reservation
	// aggregates. Used by the place-order attempt (decrement + reserve) and
	// the expiry release (replenish + release), where stock movements and the
	// reservation record must commit or roll back together.
	ReservationUoW interface {
		TxManager
		StockRepoFactory
		ReservationRepoFactory
	}

	// ReservationUoWFactory creates new reservation unit of work instances.
	ReservationUoWFactory interface {
		Create() ReservationUoW
	}

	// ConfirmOrderUoW manages transactions spanning reservation and order
	// aggregates: confirming a reservation and creating the durable order is
	// a single atomic step.
	ConfirmOrderUoW interface {
		TxManager
		OrderRepoFactory
		ReservationRepoFactory
	}

	// ConfirmOrderUoWFactory creates new confirm-order unit of work instances.
	ConfirmOrderUoWFactory interface {
		Create() ConfirmOrderUoW
	}
)
