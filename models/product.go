package models

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID          uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string         `gorm:"not null" json:"name"`
	SKU         string         `gorm:"uniqueIndex;not null" json:"sku"`
	Description string         `json:"description"`
	Price       float64        `gorm:"not null" json:"price"`
	Image       string         `json:"image"`
	WeightKG    float64        `gorm:"not null" json:"weight_kg"` // per-unit weight
	Stock       int            `json:"stock"`
	Categories  []Category     `gorm:"many2many:product_categories;" json:"categories,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

type Category struct {
	ID       uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string    `gorm:"unique;not null" json:"name"`
	Image    string    `json:"image"`
	Products []Product `gorm:"many2many:product_categories" json:"products,omitempty"`
}
