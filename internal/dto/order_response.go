package dto

import "time"

type PlaceOrderResponse struct {
	Message string `json:"message"`
	OrderID uint   `json:"orderId"`
}

// OrderSummary is one entry of the order history listing, with the line
// items already folded into the order.
type OrderSummary struct {
	ID           uint               `json:"id"`
	CustomerName string             `json:"customer_name"`
	Phone        string             `json:"phone"`
	Address      string             `json:"address"`
	Note         string             `json:"note"`
	TotalAmount  float64            `json:"total_amount"`
	Status       string             `json:"status"`
	CreatedAt    time.Time          `json:"created_at"`
	Items        []OrderItemSummary `json:"items"`
}

type OrderItemSummary struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type ListOrdersResponse struct {
	Message string         `json:"message"`
	Orders  []OrderSummary `json:"orders"`
}

// OrderDetail is the full view of a single order: the header plus the
// ungrouped item rows.
type OrderDetail struct {
	ID           uint           `json:"id"`
	UserID       uint           `json:"user_id"`
	CustomerName string         `json:"customer_name"`
	Phone        string         `json:"phone"`
	Address      string         `json:"address"`
	Note         string         `json:"note"`
	TotalAmount  float64        `json:"total_amount"`
	Status       string         `json:"status"`
	CreatedAt    time.Time      `json:"created_at"`
	Items        []OrderItemDTO `json:"items"`
}

type OrderItemDTO struct {
	ID          uint    `json:"id"`
	OrderID     uint    `json:"order_id"`
	ProductID   int     `json:"product_id"`
	ProductName string  `json:"product_name"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
}

type GetOrderResponse struct {
	Message string      `json:"message"`
	Order   OrderDetail `json:"order"`
}
