package models

import "time"

type DiscountType string

const (
	DiscountTypePercentage DiscountType = "percentage"
	DiscountTypeFixed      DiscountType = "fixed"
)

// Discount targets either a single product or a whole category, never
// both. Nil start/end means unbounded on that side.
type Discount struct {
	ID         uint         `gorm:"primaryKey" json:"id"`
	ProductID  *uint        `gorm:"index" json:"product_id,omitempty"`
	CategoryID *uint        `gorm:"index" json:"category_id,omitempty"`
	Type       DiscountType `gorm:"type:VARCHAR(20);not null" json:"type"`
	Value      float64      `gorm:"not null" json:"value"`
	Active     bool         `gorm:"default:true" json:"active"`
	StartDate  *time.Time   `json:"start_date,omitempty"`
	EndDate    *time.Time   `json:"end_date,omitempty"`
	CreatedAt  time.Time    `json:"created_at"`
}
