package domain

import "time"

type Order struct {
	ID           uint
	UserID       uint
	CustomerName string
	Phone        string
	Address      string
	Note         string
	TotalAmount  float64
	Status       string
	CreatedAt    time.Time
}

const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusDelivered = "delivered"
	OrderStatusCanceled  = "canceled"
)
