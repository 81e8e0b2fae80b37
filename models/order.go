package models

import (
	"errors"
	"strings"
	"time"
)

type OrderStatus string
type PaymentStatus string

const (
	// Order statuses (typical e-commerce flow)
	OrderStatusPending     OrderStatus = "pending"       // Order placed, awaiting confirmation
	OrderStatusConfirmed   OrderStatus = "confirmed"     // Confirmed by seller
	OrderStatusReadyToShip OrderStatus = "ready_to_ship" // Handed to courier
	OrderStatusShipped     OrderStatus = "shipped"       // Out for delivery
	OrderStatusDelivered   OrderStatus = "delivered"     // Customer received the item
	OrderStatusReturned    OrderStatus = "returned"      // Customer returned the item
	OrderStatusCancelled   OrderStatus = "cancelled"     // Cancelled before shipping

	// Payment statuses
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// MapOrderStatus validates a raw status string.
func MapOrderStatus(status string) (OrderStatus, error) {
	switch OrderStatus(strings.ToLower(status)) {
	case OrderStatusPending:
		return OrderStatusPending, nil
	case OrderStatusConfirmed:
		return OrderStatusConfirmed, nil
	case OrderStatusReadyToShip:
		return OrderStatusReadyToShip, nil
	case OrderStatusShipped:
		return OrderStatusShipped, nil
	case OrderStatusDelivered:
		return OrderStatusDelivered, nil
	case OrderStatusReturned:
		return OrderStatusReturned, nil
	case OrderStatusCancelled:
		return OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

// MapPaymentStatus validates a raw payment status string.
func MapPaymentStatus(status string) (PaymentStatus, error) {
	switch PaymentStatus(strings.ToLower(status)) {
	case PaymentStatusPending:
		return PaymentStatusPending, nil
	case PaymentStatusPaid:
		return PaymentStatusPaid, nil
	case PaymentStatusFailed:
		return PaymentStatusFailed, nil
	case PaymentStatusRefunded:
		return PaymentStatusRefunded, nil
	default:
		return "", errors.New("invalid payment status")
	}
}

type Order struct {
	ID             uint          `gorm:"primaryKey" json:"id"`
	OrderRef       string        `gorm:"uniqueIndex" json:"order_ref"`
	UserID         string        `gorm:"not null;index" json:"user_id"`
	User           User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Items          []OrderItem   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	RecipientName  string        `json:"recipient_name"`
	RecipientPhone string        `json:"recipient_phone"`
	Address        string        `json:"address"`
	PaymentMethod  string        `json:"payment_method"` // e.g. "card", "cod"
	PaymentRef     string        `json:"payment_ref"`
	Subtotal       float64       `json:"subtotal"`
	DeliveryFee    float64       `json:"delivery_fee"`
	Total          float64       `json:"total"`
	ItemQuantity   int           `json:"item_quantity"`
	ItemWeight     float64       `json:"item_weight"` // kilograms
	Status         OrderStatus   `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	PaymentStatus  PaymentStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"payment_status"`
	CreatedAt      time.Time     `json:"created_at"`
}

// OrderItem snapshots the product at order time and is never mutated.
type OrderItem struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	OrderID      uint    `gorm:"index" json:"order_id"`
	ProductID    uint    `json:"product_id"`
	ProductName  string  `json:"product_name"`
	ProductSKU   string  `json:"product_sku"`
	ProductImage string  `json:"product_image"`
	UnitPrice    float64 `json:"unit_price"`
	Quantity     int     `json:"quantity"`
	Subtotal     float64 `json:"subtotal"`
}
