package reservationrepo

import (
	"context"
	"errors"
	"time"

	"rapidxcel/internal/core/domain/model/kernel"
	"rapidxcel/internal/core/domain/model/order"
	"rapidxcel/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormReservationRepository implements ReservationRepository using GORM.
type GormReservationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormReservationRepository creates a new GORM reservation repository.
func NewGormReservationRepository(db *gorm.DB, tracker aggregateTracker) *GormReservationRepository {
	return &GormReservationRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new reservation together with its line items.
func (r *GormReservationRepository) Add(ctx context.Context, aggregate *order.Reservation) error {
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

// Update persists reservation changes. Line items are immutable once
// reserved; only the lifecycle status ever changes, and every legal
// transition starts from Reserved, so the write is guarded on that
// pre-state. A confirmation and the expiry sweep racing over the same
// reservation therefore cannot overwrite each other: the first committer
// wins and the loser gets ErrReservationStatusConflict.
func (r *GormReservationRepository) Update(ctx context.Context, aggregate *order.Reservation) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&ReservationDTO{}).
		Where("id = ? AND status = ?", aggregate.ID().Bytes(), int(order.Reserved)).
		Update("status", int(aggregate.Status()))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var dto ReservationDTO
		err := r.db.WithContext(ctx).
			Select("id").
			First(&dto, "id = ?", aggregate.ID().Bytes()).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NewObjectNotFoundError("reservation", aggregate.ID().String())
		}
		if err != nil {
			return err
		}
		return order.ErrReservationStatusConflict
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a reservation by ID with its line items in stable name order.
func (r *GormReservationRepository) Get(ctx context.Context, id kernel.UUID) (*order.Reservation, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ReservationDTO
	err := r.db.WithContext(ctx).
		Preload("Items", itemOrder).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("reservation", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllExpired retrieves reservations still in Reserved status whose
// deadline has passed at the given time.
func (r *GormReservationRepository) GetAllExpired(
	ctx context.Context,
	now time.Time,
) ([]*order.Reservation, error) {
	var dtos []ReservationDTO
	err := r.db.WithContext(ctx).
		Preload("Items", itemOrder).
		Where("status = ? AND expires_at < ?", int(order.Reserved), now).
		Order("expires_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	reservations := make([]*order.Reservation, 0, len(dtos))
	for _, dto := range dtos {
		reservation, domainErr := toDomain(dto)
		if domainErr != nil {
			return nil, domainErr
		}
		reservations = append(reservations, reservation)
	}

	return reservations, nil
}

func itemOrder(db *gorm.DB) *gorm.DB {
	return db.Order("stock_name")
}
