// Package orderrepo provides data transfer objects and mapping functions for
// durable order persistence. It implements the repository pattern for the
// order domain aggregate, converting between domain entities and their
// relational representation.
package orderrepo

import (
	"time"

	"rapidxcel/internal/core/domain/model/kernel"
	"rapidxcel/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Timestamps are managed by GORM; created_at drives the newest-first listing.
type OrderDTO struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID        uuid.UUID       `gorm:"type:uuid;index"`
	ShippingAddress   string
	ConsignmentWeight int
	ShippingCost      decimal.Decimal `gorm:"type:decimal(12,2)"`
	Status            int             `gorm:"index"`
	CreatedAt         time.Time       `gorm:"autoCreateTime;index"`
	UpdatedAt         time.Time       `gorm:"autoUpdateTime"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:                aggregate.ID().Bytes(),
		CustomerID:        aggregate.CustomerID().Bytes(),
		ShippingAddress:   aggregate.ShippingAddress(),
		ConsignmentWeight: aggregate.ConsignmentWeight(),
		ShippingCost:      aggregate.ShippingCost().Amount(),
		Status:            int(aggregate.Status()),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstruction goes through RestoreOrder so invalid rows fail fast.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	shippingCost, err := kernel.NewMoney(dto.ShippingCost)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		customerID,
		dto.ShippingAddress,
		dto.ConsignmentWeight,
		shippingCost,
		order.Status(dto.Status),
	)
}
