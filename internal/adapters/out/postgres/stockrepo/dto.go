// Package stockrepo provides data transfer objects and mapping functions for
// catalog stock persistence. It implements the repository pattern for the
// stock domain aggregate, including the conditional quantity updates that keep
// concurrent order attempts from overselling.
package stockrepo

import (
	"rapidxcel/internal/core/domain/model/kernel"
	"rapidxcel/internal/core/domain/model/stock"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StockDTO represents the database structure for persisting stock aggregates.
// The unit price is stored as a fixed-precision decimal so monetary values
// survive the round trip exactly.
type StockDTO struct {
	ID       uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name     string          `gorm:"index"`
	Price    decimal.Decimal `gorm:"type:decimal(12,2)"`
	Quantity int
}

// TableName specifies the database table name for stock entities.
func (StockDTO) TableName() string {
	return "stocks"
}

// fromDomain converts a stock domain aggregate to its database representation.
func fromDomain(aggregate *stock.Stock) StockDTO {
	return StockDTO{
		ID:       aggregate.ID().Bytes(),
		Name:     aggregate.Name(),
		Price:    aggregate.Price().Amount(),
		Quantity: aggregate.Quantity(),
	}
}

// toDomain converts a database DTO to a stock domain aggregate.
func toDomain(dto StockDTO) (*stock.Stock, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return stock.RestoreStock(id, dto.Name, price, dto.Quantity)
}
