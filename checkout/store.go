package checkout

import (
	"context"
	"time"

	"github.com/aaban-saad/nextgen-circuits-api/models"
	"github.com/aaban-saad/nextgen-circuits-api/pricing"
	"gorm.io/gorm"
)

// Store is the persistence surface the orchestrator needs. The GORM
// implementation below is the real one; tests substitute a mock.
type Store interface {
	// Transact runs fn against a transactional view of the store. If fn
	// returns an error every write made through tx is rolled back.
	Transact(ctx context.Context, fn func(tx Store) error) error

	CartEntries(ctx context.Context, userID string) ([]models.CartEntry, error)
	EffectiveDiscount(ctx context.Context, productID uint, categoryIDs []uint) (*models.Discount, error)

	CreateIntent(ctx context.Context, intent *models.CheckoutIntent) error
	UpdateIntent(ctx context.Context, intent *models.CheckoutIntent) error
	StalePendingIntents(ctx context.Context, olderThan time.Duration) ([]models.CheckoutIntent, error)

	CreateOrder(ctx context.Context, order *models.Order) error
	// OrderIDByRef returns the id of the order carrying orderRef, or 0
	// when no such order exists.
	OrderIDByRef(ctx context.Context, orderRef string) (uint, error)
	// DecrementStock applies an atomic conditional decrement and returns
	// ErrInsufficientStock when the product has fewer than qty in stock.
	DecrementStock(ctx context.Context, productID uint, qty int) error
	ClearCart(ctx context.Context, userID string) error
}

// NewGormStore wraps db in the Store interface.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

type gormStore struct {
	db *gorm.DB
}

func (s *gormStore) Transact(ctx context.Context, fn func(tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormStore{db: tx})
	})
}

func (s *gormStore) CartEntries(ctx context.Context, userID string) ([]models.CartEntry, error) {
	var entries []models.CartEntry
	err := s.db.WithContext(ctx).
		Preload("Product").
		Preload("Product.Categories").
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&entries).Error
	return entries, err
}

func (s *gormStore) EffectiveDiscount(ctx context.Context, productID uint, categoryIDs []uint) (*models.Discount, error) {
	return pricing.Resolve(s.db.WithContext(ctx), productID, categoryIDs)
}

func (s *gormStore) CreateIntent(ctx context.Context, intent *models.CheckoutIntent) error {
	return s.db.WithContext(ctx).Create(intent).Error
}

func (s *gormStore) UpdateIntent(ctx context.Context, intent *models.CheckoutIntent) error {
	return s.db.WithContext(ctx).Save(intent).Error
}

func (s *gormStore) StalePendingIntents(ctx context.Context, olderThan time.Duration) ([]models.CheckoutIntent, error) {
	var intents []models.CheckoutIntent
	cutoff := time.Now().Add(-olderThan)
	err := s.db.WithContext(ctx).
		Where("status = ? AND created_at < ?", models.IntentStatusPending, cutoff).
		Find(&intents).Error
	return intents, err
}

func (s *gormStore) CreateOrder(ctx context.Context, order *models.Order) error {
	return s.db.WithContext(ctx).Create(order).Error
}

func (s *gormStore) OrderIDByRef(ctx context.Context, orderRef string) (uint, error) {
	var order models.Order
	err := s.db.WithContext(ctx).Select("id").Where("order_ref = ?", orderRef).First(&order).Error
	if err == gorm.ErrRecordNotFound {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return order.ID, nil
}

func (s *gormStore) DecrementStock(ctx context.Context, productID uint, qty int) error {
	res := s.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ? AND stock >= ?", productID, qty).
		UpdateColumn("stock", gorm.Expr("stock - ?", qty))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrInsufficientStock
	}
	return nil
}

func (s *gormStore) ClearCart(ctx context.Context, userID string) error {
	return s.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.CartEntry{}).Error
}
