package stockrepo

import (
	"context"
	"errors"
	"fmt"

	"rapidxcel/internal/core/domain/model/kernel"
	"rapidxcel/internal/core/domain/model/stock"
	"rapidxcel/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormStockRepository implements StockRepository using GORM.
type GormStockRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormStockRepository creates a new GORM stock repository.
func NewGormStockRepository(db *gorm.DB, tracker aggregateTracker) *GormStockRepository {
	return &GormStockRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new stock item to the database.
func (r *GormStockRepository) Add(ctx context.Context, aggregate *stock.Stock) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing stock item to the database.
func (r *GormStockRepository) Update(ctx context.Context, aggregate *stock.Stock) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&StockDTO{}).
		Where("id = ?", dto.ID).
		Select("name", "price", "quantity").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("stock", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a stock item by ID.
func (r *GormStockRepository) Get(ctx context.Context, id kernel.UUID) (*stock.Stock, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto StockDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("stock", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves the full catalog sorted by name so order attempts walk the
// catalog in a stable order.
func (r *GormStockRepository) GetAll(ctx context.Context) ([]*stock.Stock, error) {
	var dtos []StockDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	stocks := make([]*stock.Stock, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		stocks = append(stocks, s)
	}

	return stocks, nil
}

// Decrement reduces the available quantity with a conditional update.
// The quantity check and the subtraction happen in one statement, so two
// concurrent attempts over the same row serialize at the database: the first
// committer wins and the second observes the already decremented quantity.
func (r *GormStockRepository) Decrement(ctx context.Context, id kernel.UUID, quantity int) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	result := r.db.WithContext(ctx).
		Model(&StockDTO{}).
		Where("id = ? AND quantity >= ?", id.Bytes(), quantity).
		Update("quantity", gorm.Expr("quantity - ?", quantity))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		// either the row is missing or the quantity could not cover the request
		var dto StockDTO
		if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NewObjectNotFoundError("stock", id.String())
			}
			return err
		}
		return stock.NewInsufficientStockError(id, dto.Name, quantity, dto.Quantity)
	}

	return nil
}

// Replenish returns the given quantity to the available amount.
func (r *GormStockRepository) Replenish(ctx context.Context, id kernel.UUID, quantity int) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	result := r.db.WithContext(ctx).
		Model(&StockDTO{}).
		Where("id = ?", id.Bytes()).
		Update("quantity", gorm.Expr("quantity + ?", quantity))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("stock", id.String())
	}

	return nil
}
