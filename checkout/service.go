// Package checkout turns a user's cart into an order: it prices the
// lines, computes the delivery fee, and persists the order, the stock
// decrements and the cart clear in one transaction guarded by an intent
// record.
package checkout

import (
	"context"
	"fmt"
	"time"

	"github.com/aaban-saad/nextgen-circuits-api/models"
	"github.com/aaban-saad/nextgen-circuits-api/pricing"
	"github.com/aaban-saad/nextgen-circuits-api/shipping"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Notifier receives orders the moment they are committed. The admin
// WebSocket feed implements it.
type Notifier interface {
	OrderPlaced(order models.Order)
}

type Service struct {
	store     Store
	notifier  Notifier
	localCity string
}

// NewService builds the orchestrator. notifier may be nil.
func NewService(store Store, notifier Notifier, localCity string) *Service {
	if localCity == "" {
		localCity = shipping.DefaultLocalCity
	}
	return &Service{store: store, notifier: notifier, localCity: localCity}
}

// Request carries the recipient and payment fields the user submits.
type Request struct {
	RecipientName  string `json:"recipient_name" binding:"required"`
	RecipientPhone string `json:"recipient_phone" binding:"required"`
	Address        string `json:"address" binding:"required"`
	PaymentMethod  string `json:"payment_method" binding:"required"` // e.g. "card", "cod"
	PaymentRef     string `json:"payment_ref"`
}

// Result is returned to the caller on success.
type Result struct {
	OrderID     uint    `json:"order_id"`
	OrderRef    string  `json:"order_ref"`
	Subtotal    float64 `json:"subtotal"`
	DeliveryFee float64 `json:"delivery_fee"`
	Total       float64 `json:"total"`
}

func orderRef(intentID string) string {
	return time.Now().Format("20060102150405") + "-" + intentID
}

// PlaceOrder runs the whole checkout for userID. The sequence:
//
//  1. load the cart; empty carts and missing identities fail fast
//  2. price each line with its effective discount, aggregate quantity
//     and weight, compute the delivery fee
//  3. write a pending CheckoutIntent before any side effect
//  4. in one transaction: insert the order with item snapshots, apply a
//     conditional stock decrement per line, clear the cart
//  5. mark the intent completed
//
// A failed decrement rolls the whole transaction back, so no order or
// item rows survive a stock conflict.
func (s *Service) PlaceOrder(ctx context.Context, userID string, req Request) (*Result, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}

	entries, err := s.store.CartEntries(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: load cart: %v", ErrWriteFailed, err)
	}
	if len(entries) == 0 {
		return nil, ErrEmptyCart
	}

	var (
		items       []models.OrderItem
		subtotal    float64
		totalQty    int
		totalWeight float64
	)
	for _, e := range entries {
		catIDs := make([]uint, 0, len(e.Product.Categories))
		for _, c := range e.Product.Categories {
			catIDs = append(catIDs, c.ID)
		}
		d, err := s.store.EffectiveDiscount(ctx, e.ProductID, catIDs)
		if err != nil {
			return nil, fmt.Errorf("%w: resolve discount: %v", ErrWriteFailed, err)
		}
		unitPrice := pricing.DiscountedPrice(e.Product.Price, d)
		lineSubtotal := unitPrice * float64(e.Quantity)

		subtotal += lineSubtotal
		totalQty += e.Quantity
		totalWeight += e.Product.WeightKG * float64(e.Quantity)

		items = append(items, models.OrderItem{
			ProductID:    e.ProductID,
			ProductName:  e.Product.Name,
			ProductSKU:   e.Product.SKU,
			ProductImage: e.Product.Image,
			UnitPrice:    unitPrice,
			Quantity:     e.Quantity,
			Subtotal:     lineSubtotal,
		})
	}

	fee := shipping.FeeForCity(totalWeight, req.Address, s.localCity)
	total := subtotal + fee

	intent := &models.CheckoutIntent{
		ID:     uuid.NewString(),
		UserID: userID,
		Status: models.IntentStatusPending,
	}
	intent.OrderRef = orderRef(intent.ID)
	if err := s.store.CreateIntent(ctx, intent); err != nil {
		return nil, fmt.Errorf("%w: create intent: %v", ErrWriteFailed, err)
	}

	order := models.Order{
		OrderRef:       intent.OrderRef,
		UserID:         userID,
		Items:          items,
		RecipientName:  req.RecipientName,
		RecipientPhone: req.RecipientPhone,
		Address:        req.Address,
		PaymentMethod:  req.PaymentMethod,
		PaymentRef:     req.PaymentRef,
		Subtotal:       subtotal,
		DeliveryFee:    fee,
		Total:          total,
		ItemQuantity:   totalQty,
		ItemWeight:     totalWeight,
		Status:         models.OrderStatusPending,
		PaymentStatus:  models.PaymentStatusPending,
		CreatedAt:      time.Now(),
	}

	err = s.store.Transact(ctx, func(tx Store) error {
		if err := tx.CreateOrder(ctx, &order); err != nil {
			return fmt.Errorf("%w: create order: %v", ErrWriteFailed, err)
		}
		for _, item := range items {
			if err := tx.DecrementStock(ctx, item.ProductID, item.Quantity); err != nil {
				return err
			}
		}
		return tx.ClearCart(ctx, userID)
	})
	if err != nil {
		s.failIntent(ctx, intent)
		return nil, err
	}

	intent.OrderID = order.ID
	intent.Status = models.IntentStatusCompleted
	if uerr := s.store.UpdateIntent(ctx, intent); uerr != nil {
		// the order row is committed; reconciliation will complete the
		// intent later by finding the order through its ref
		zap.L().Warn("failed to complete checkout intent",
			zap.String("intent_id", intent.ID), zap.Error(uerr))
	}

	if s.notifier != nil {
		s.notifier.OrderPlaced(order)
	}

	return &Result{
		OrderID:     order.ID,
		OrderRef:    order.OrderRef,
		Subtotal:    subtotal,
		DeliveryFee: fee,
		Total:       total,
	}, nil
}

func (s *Service) failIntent(ctx context.Context, intent *models.CheckoutIntent) {
	intent.Status = models.IntentStatusFailed
	if err := s.store.UpdateIntent(ctx, intent); err != nil {
		zap.L().Warn("failed to mark checkout intent failed",
			zap.String("intent_id", intent.ID), zap.Error(err))
	}
}

// staleAfter is how long a pending intent may sit before reconciliation
// treats it as a crashed checkout.
const staleAfter = 10 * time.Minute

// ReconcileIntents settles checkouts that died mid-sequence. The order,
// stock decrements and cart clear commit as one transaction, so a stale
// pending intent either has a committed order (the process died after
// commit but before acknowledging the intent) or none at all. The first
// kind is marked completed against its order; the second, failed. Run
// once at boot.
func (s *Service) ReconcileIntents(ctx context.Context) error {
	intents, err := s.store.StalePendingIntents(ctx, staleAfter)
	if err != nil {
		return err
	}
	for i := range intents {
		intent := &intents[i]
		orderID, err := s.store.OrderIDByRef(ctx, intent.OrderRef)
		if err != nil {
			return err
		}
		if orderID != 0 {
			intent.OrderID = orderID
			intent.Status = models.IntentStatusCompleted
		} else {
			intent.Status = models.IntentStatusFailed
		}
		if err := s.store.UpdateIntent(ctx, intent); err != nil {
			return err
		}
	}
	return nil
}
