package queries

import (
	"context"

	"rapidxcel/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetStocksQueryHandler retrieves the catalog from the database.
// Reads go straight to SQL, bypassing the aggregate layer, since the listing
// needs no domain behavior.
type GetStocksQueryHandler struct {
	db *gorm.DB
}

// NewGetStocksQueryHandler creates a handler for catalog queries.
// Requires a GORM database connection for query execution.
func NewGetStocksQueryHandler(db *gorm.DB) GetStocksQueryHandler {
	return GetStocksQueryHandler{db: db}
}

// Handle executes the query to retrieve all catalog items.
// Results are sorted by name for consistent output.
func (h GetStocksQueryHandler) Handle(
	ctx context.Context,
	query GetStocksQuery,
) ([]GetStocksQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stocks := make([]GetStocksQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			price,
			quantity
		FROM stocks
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var name string
		var price decimal.Decimal
		var quantity int

		if err = rows.Scan(&id, &name, &price, &quantity); err != nil {
			return nil, err
		}

		stockID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		money, moneyErr := kernel.NewMoney(price)
		if moneyErr != nil {
			return nil, moneyErr
		}

		stocks = append(stocks, GetStocksQueryResponse{
			ID:       stockID,
			Name:     name,
			Price:    money,
			Quantity: quantity,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return stocks, nil
}
