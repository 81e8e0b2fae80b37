// Package pricing resolves the discount effective on a product and
// applies it to a price.
package pricing

import (
	"time"

	"github.com/aaban-saad/nextgen-circuits-api/models"
	"gorm.io/gorm"
)

// WindowContains reports whether now falls inside [start, end]. A nil
// bound is open on that side.
func WindowContains(start, end *time.Time, now time.Time) bool {
	if start != nil && now.Before(*start) {
		return false
	}
	if end != nil && now.After(*end) {
		return false
	}
	return true
}

// pickEffective returns the first date-valid discount, relying on the
// caller to have ordered candidates by id so ties resolve the same way
// every time.
func pickEffective(candidates []models.Discount, now time.Time) *models.Discount {
	for i := range candidates {
		if WindowContains(candidates[i].StartDate, candidates[i].EndDate, now) {
			return &candidates[i]
		}
	}
	return nil
}

// Resolve returns the single discount effective on the product right
// now, or nil. Product-scoped discounts take precedence over
// category-scoped ones; within a scope the lowest id wins.
func Resolve(db *gorm.DB, productID uint, categoryIDs []uint) (*models.Discount, error) {
	return ResolveAt(db, productID, categoryIDs, time.Now())
}

// ResolveAt is Resolve evaluated at an explicit instant.
func ResolveAt(db *gorm.DB, productID uint, categoryIDs []uint, now time.Time) (*models.Discount, error) {
	var candidates []models.Discount
	if err := db.Where("product_id = ? AND active = ?", productID, true).
		Order("id ASC").Find(&candidates).Error; err != nil {
		return nil, err
	}
	if d := pickEffective(candidates, now); d != nil {
		return d, nil
	}

	if len(categoryIDs) == 0 {
		return nil, nil
	}
	candidates = candidates[:0]
	if err := db.Where("category_id IN ? AND active = ?", categoryIDs, true).
		Order("id ASC").Find(&candidates).Error; err != nil {
		return nil, err
	}
	return pickEffective(candidates, now), nil
}

// DiscountedPrice applies d to price. Percentage discounts subtract
// value% of the price; fixed discounts subtract value currency units,
// floored at zero. A nil discount leaves the price untouched.
func DiscountedPrice(price float64, d *models.Discount) float64 {
	if d == nil {
		return price
	}
	switch d.Type {
	case models.DiscountTypePercentage:
		price -= price * d.Value / 100
	case models.DiscountTypeFixed:
		price -= d.Value
	}
	if price < 0 {
		return 0
	}
	return price
}
