package model

import (
	"time"

	"github.com/google/uuid"
)

// Order status constants
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// Order quantity bounds per line item.
const (
	MinOrderQuantity = 1
	MaxOrderQuantity = 100
)

// OrderItem is a validated order line; name and price are captured from the
// catalog at validation time.
type OrderItem struct {
	MedicineID   string  `json:"medicineId"`
	Quantity     int     `json:"quantity"`
	MedicineName string  `json:"medicineName"`
	Price        float64 `json:"price"`
}

// Order represents a pharmacy order. Status is mutated by admins only;
// orders are never deleted.
type Order struct {
	ID        uuid.UUID   `json:"id"`
	UserID    uuid.UUID   `json:"userId"`
	Items     []OrderItem `json:"items"`
	Total     float64     `json:"total"`
	Address   string      `json:"address"`
	Phone     string      `json:"phone"`
	Status    string      `json:"status"`
	CreatedAt time.Time   `json:"createdAt"`
}

// OrderItemRequest is a raw submitted line item.
type OrderItemRequest struct {
	MedicineID string `json:"medicineId"`
	Quantity   int    `json:"quantity"`
}

// CreateOrderRequest represents order placement parameters.
type CreateOrderRequest struct {
	Items   []OrderItemRequest `json:"items"`
	Address string             `json:"address"`
	Phone   string             `json:"phone"`
}
