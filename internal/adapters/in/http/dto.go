package http

import (
	"time"

	"rapidxcel/internal/core/application/usecases/queries"
	"rapidxcel/internal/core/domain/model/order"
)

// errorResponse is the uniform error body for all failure statuses.
type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// placeOrderRequest carries an order attempt: destination plus requested
// quantities per stock item.
type placeOrderRequest struct {
	DeliveryAddress string             `json:"delivery_address"`
	PinCode         string             `json:"pin_code"`
	PhoneNumber     string             `json:"phone_number"`
	Items           []orderItemRequest `json:"order_items"`
}

type orderItemRequest struct {
	StockID  string `json:"stock_id"`
	Quantity int    `json:"quantity"`
}

// confirmOrderRequest turns a priced reservation into a durable order.
type confirmOrderRequest struct {
	ReservationID string `json:"reservation_id"`
	CustomerID    string `json:"customer_id"`
}

// updateOrderRequest is a partial update; absent fields stay unchanged.
// There is intentionally no shipping_cost field: the cost is always recomputed
// server-side from the weight.
type updateOrderRequest struct {
	ShippingAddress   *string `json:"shipping_address"`
	ConsignmentWeight *int    `json:"consignment_weight"`
	Status            *string `json:"status"`
}

type stockResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Quantity int    `json:"quantity"`
}

type reservationItemResponse struct {
	StockID   string `json:"stock_id"`
	StockName string `json:"stock_name"`
	UnitPrice string `json:"unit_price"`
	Quantity  int    `json:"quantity"`
	LineTotal string `json:"line_total"`
}

// reservationResponse is the priced order preview returned by an order attempt.
type reservationResponse struct {
	ID              string                    `json:"id"`
	DeliveryAddress string                    `json:"delivery_address"`
	PinCode         string                    `json:"pin_code"`
	PhoneNumber     string                    `json:"phone_number"`
	Items           []reservationItemResponse `json:"order_items"`
	Subtotal        string                    `json:"subtotal"`
	ShippingCost    string                    `json:"shipping_cost"`
	TotalCost       string                    `json:"total_cost"`
	Status          string                    `json:"status"`
	ExpiresAt       time.Time                 `json:"expires_at"`
}

type orderResponse struct {
	ID                string     `json:"id"`
	CustomerID        string     `json:"customer_id"`
	ShippingAddress   string     `json:"shipping_address"`
	ConsignmentWeight int        `json:"consignment_weight"`
	ShippingCost      string     `json:"shipping_cost"`
	Status            string     `json:"status"`
	CreatedAt         *time.Time `json:"created_at,omitempty"`
}

func toReservationResponse(r *order.Reservation) reservationResponse {
	items := r.Items()
	itemResponses := make([]reservationItemResponse, 0, len(items))
	for _, item := range items {
		itemResponses = append(itemResponses, reservationItemResponse{
			StockID:   item.StockID().String(),
			StockName: item.StockName(),
			UnitPrice: item.UnitPrice().String(),
			Quantity:  item.Quantity(),
			LineTotal: item.LineTotal().String(),
		})
	}

	return reservationResponse{
		ID:              r.ID().String(),
		DeliveryAddress: r.DeliveryAddress(),
		PinCode:         r.PinCode(),
		PhoneNumber:     r.PhoneNumber(),
		Items:           itemResponses,
		Subtotal:        r.Subtotal().String(),
		ShippingCost:    r.ShippingCost().String(),
		TotalCost:       r.Total().String(),
		Status:          r.Status().String(),
		ExpiresAt:       r.ExpiresAt(),
	}
}

func toOrderResponse(o *order.Order) orderResponse {
	return orderResponse{
		ID:                o.ID().String(),
		CustomerID:        o.CustomerID().String(),
		ShippingAddress:   o.ShippingAddress(),
		ConsignmentWeight: o.ConsignmentWeight(),
		ShippingCost:      o.ShippingCost().String(),
		Status:            o.Status().String(),
	}
}

func toOrderResponseFromQuery(q queries.GetOrdersQueryResponse) orderResponse {
	createdAt := q.CreatedAt
	return orderResponse{
		ID:                q.ID.String(),
		CustomerID:        q.CustomerID.String(),
		ShippingAddress:   q.ShippingAddress,
		ConsignmentWeight: q.ConsignmentWeight,
		ShippingCost:      q.ShippingCost.String(),
		Status:            q.Status.String(),
		CreatedAt:         &createdAt,
	}
}
