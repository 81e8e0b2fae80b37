package models

import "time"

// CartEntry is one (user, product) line in a user's cart. The composite
// unique index enforces at most one row per pair; quantity is bounded by
// the product's live stock, re-checked on every mutation rather than by
// a database constraint.
type CartEntry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"uniqueIndex:idx_cart_user_product;not null" json:"user_id"`
	ProductID uint      `gorm:"uniqueIndex:idx_cart_user_product;not null" json:"product_id"`
	Product   Product   `gorm:"foreignKey:ProductID" json:"product"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	AddedAt   time.Time `json:"added_at"`
}

// WishlistEntry mirrors CartEntry without a quantity.
type WishlistEntry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"uniqueIndex:idx_wish_user_product;not null" json:"user_id"`
	ProductID uint      `gorm:"uniqueIndex:idx_wish_user_product;not null" json:"product_id"`
	Product   Product   `gorm:"foreignKey:ProductID" json:"product"`
	AddedAt   time.Time `json:"added_at"`
}
