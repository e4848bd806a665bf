// Package reservationrepo provides data transfer objects and mapping
// functions for stock reservation persistence. A reservation row carries the
// priced order preview; its line items live in a child table keyed by
// reservation and stock.
package reservationrepo

import (
	"time"

	"rapidxcel/internal/core/domain/model/kernel"
	"rapidxcel/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReservationDTO represents the database structure for persisting reservation
// aggregates. The grand total is not stored: the domain derives it from
// subtotal and shipping cost, so a stored copy could only drift.
type ReservationDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	DeliveryAddress string
	PinCode         string
	PhoneNumber     string
	Subtotal        decimal.Decimal      `gorm:"type:decimal(12,2)"`
	ShippingCost    decimal.Decimal      `gorm:"type:decimal(12,2)"`
	Status          int                  `gorm:"index"`
	ExpiresAt       time.Time            `gorm:"index"`
	Items           []ReservationItemDTO `gorm:"foreignKey:ReservationID;constraint:OnDelete:CASCADE"`
	CreatedAt       time.Time            `gorm:"autoCreateTime"`
	UpdatedAt       time.Time            `gorm:"autoUpdateTime"`
}

// TableName specifies the database table name for reservation entities.
func (ReservationDTO) TableName() string {
	return "reservations"
}

// ReservationItemDTO represents one priced line item of a reservation.
// A stock item appears at most once per reservation.
type ReservationItemDTO struct {
	ReservationID uuid.UUID `gorm:"type:uuid;primaryKey"`
	StockID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	StockName     string
	UnitPrice     decimal.Decimal `gorm:"type:decimal(12,2)"`
	Quantity      int
}

// TableName specifies the database table name for reservation line items.
func (ReservationItemDTO) TableName() string {
	return "reservation_items"
}

// fromDomain converts a reservation domain aggregate to its database representation.
func fromDomain(aggregate *order.Reservation) ReservationDTO {
	items := aggregate.Items()
	itemDTOs := make([]ReservationItemDTO, 0, len(items))
	for _, item := range items {
		itemDTOs = append(itemDTOs, ReservationItemDTO{
			ReservationID: aggregate.ID().Bytes(),
			StockID:       item.StockID().Bytes(),
			StockName:     item.StockName(),
			UnitPrice:     item.UnitPrice().Amount(),
			Quantity:      item.Quantity(),
		})
	}

	return ReservationDTO{
		ID:              aggregate.ID().Bytes(),
		DeliveryAddress: aggregate.DeliveryAddress(),
		PinCode:         aggregate.PinCode(),
		PhoneNumber:     aggregate.PhoneNumber(),
		Subtotal:        aggregate.Subtotal().Amount(),
		ShippingCost:    aggregate.ShippingCost().Amount(),
		Status:          int(aggregate.Status()),
		ExpiresAt:       aggregate.ExpiresAt(),
		Items:           itemDTOs,
	}
}

// toDomain converts a database DTO to a reservation domain aggregate.
func toDomain(dto ReservationDTO) (*order.Reservation, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := toDomainItem(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	subtotal, err := kernel.NewMoney(dto.Subtotal)
	if err != nil {
		return nil, err
	}

	shippingCost, err := kernel.NewMoney(dto.ShippingCost)
	if err != nil {
		return nil, err
	}

	return order.RestoreReservation(
		id,
		dto.DeliveryAddress,
		dto.PinCode,
		dto.PhoneNumber,
		items,
		subtotal,
		shippingCost,
		order.ReservationStatus(dto.Status),
		dto.ExpiresAt,
	)
}

func toDomainItem(dto ReservationItemDTO) (order.Item, error) {
	stockID, err := kernel.UUIDFromBytes(dto.StockID[:])
	if err != nil {
		return order.Item{}, err
	}

	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return order.Item{}, err
	}

	return order.NewItem(stockID, dto.StockName, unitPrice, dto.Quantity)
}
