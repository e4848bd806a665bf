package queries

import (
	"context"
	"time"

	"rapidxcel/internal/core/domain/model/kernel"
	"rapidxcel/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler retrieves the order listing from the database.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order listing queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all orders, newest first.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			shipping_address,
			consignment_weight,
			shipping_cost,
			status,
			created_at
		FROM orders
		ORDER BY created_at DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		resp, scanErr := scanOrderRow(rows.Scan)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// scanOrderRow maps one orders row onto a response. Shared with the
// single-order query so both read sides stay in sync with the schema.
func scanOrderRow(scan func(dest ...any) error) (GetOrdersQueryResponse, error) {
	var id, customerID uuid.UUID
	var shippingAddress string
	var consignmentWeight, status int
	var shippingCost decimal.Decimal
	var createdAt time.Time

	if err := scan(
		&id,
		&customerID,
		&shippingAddress,
		&consignmentWeight,
		&shippingCost,
		&status,
		&createdAt,
	); err != nil {
		return GetOrdersQueryResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrdersQueryResponse{}, err
	}

	custID, err := kernel.UUIDFromBytes(customerID[:])
	if err != nil {
		return GetOrdersQueryResponse{}, err
	}

	cost, err := kernel.NewMoney(shippingCost)
	if err != nil {
		return GetOrdersQueryResponse{}, err
	}

	return GetOrdersQueryResponse{
		ID:                orderID,
		CustomerID:        custID,
		ShippingAddress:   shippingAddress,
		ConsignmentWeight: consignmentWeight,
		ShippingCost:      cost,
		Status:            order.Status(status),
		CreatedAt:         createdAt,
	}, nil
}
