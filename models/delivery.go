package models

import "time"

// DeliveryDetail records the courier consignment created for an order
// when an admin dispatches it.
type DeliveryDetail struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	OrderID       uint      `gorm:"uniqueIndex;not null" json:"order_id"`
	ConsignmentID string    `json:"consignment_id"`
	TrackingCode  string    `json:"tracking_code"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
