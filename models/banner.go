package models

import "time"

// PopupBanner is shown on the storefront while active and inside its
// optional display window.
type PopupBanner struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Title     string     `json:"title"`
	ImageURL  string     `gorm:"not null" json:"image_url"`
	Link      string     `json:"link"`
	Active    bool       `gorm:"default:true" json:"active"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// RestrictedURL is a path prefix denied to the manager role.
type RestrictedURL struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Pattern string `gorm:"uniqueIndex;not null" json:"pattern"`
}
