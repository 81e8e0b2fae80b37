package models

import "time"

type IntentStatus string

const (
	IntentStatusPending   IntentStatus = "pending"
	IntentStatusCompleted IntentStatus = "completed"
	IntentStatusFailed    IntentStatus = "failed"
)

// CheckoutIntent is written before any checkout side effect so a crash
// mid-sequence leaves a record to reconcile against on restart. The
// order ref is chosen up front, which lets reconciliation find the
// order row even when the crash happened before OrderID was recorded.
type CheckoutIntent struct {
	ID        string       `gorm:"primaryKey" json:"id"` // uuid
	UserID    string       `gorm:"index;not null" json:"user_id"`
	OrderRef  string       `gorm:"index;not null" json:"order_ref"`
	OrderID   uint         `gorm:"index" json:"order_id"`
	Status    IntentStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}
