package orderControllers

import (
	"errors"
	"net/http"

	"github.com/aaban-saad/nextgen-circuits-api/checkout"
	"github.com/aaban-saad/nextgen-circuits-api/courier"
	"github.com/aaban-saad/nextgen-circuits-api/middleware"
	"github.com/aaban-saad/nextgen-circuits-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status" binding:"required"`
}

// CheckoutHandler places an order from the user's cart.
// POST /user/checkout
func CheckoutHandler(svc *checkout.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req checkout.Request
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		res, err := svc.PlaceOrder(c.Request.Context(), middleware.UserID(c), req)
		if err != nil {
			switch {
			case errors.Is(err, checkout.ErrUnauthenticated):
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			case errors.Is(err, checkout.ErrEmptyCart):
				c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Cart is empty"})
			case errors.Is(err, checkout.ErrInsufficientStock):
				c.JSON(http.StatusConflict, gin.H{"error": "Insufficient stock for one or more items"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
			}
			return
		}
		c.JSON(http.StatusCreated, res)
	}
}

// GetUserOrdersHandler lists the caller's orders, newest first.
// GET /user/orders
func GetUserOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.UserID(c)
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var orders []models.Order
		if err := db.
			Where("user_id = ?", userID).
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GetAllOrdersHandler lists every order for the admin panel.
// GET /admin/orders
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Preload("User").
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GetOrderByIDHandler fetches a single order by numeric id or order_ref.
func GetOrderByIDHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("orderID")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}

		var order models.Order
		if err := db.
			Preload("User").
			Preload("Items").
			Where("id::text = ? OR order_ref = ?", id, id).
			First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// UpdateOrderStatusHandler moves an order along the fulfilment flow.
// PUT /admin/orders/:orderID/status
func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		newStatus, err := models.MapOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := db.Model(&models.Order{}).Where("id = ?", orderID).
			Update("status", newStatus).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update order status"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully"})
	}
}

// UpdatePaymentStatusHandler records payment state changes.
// PUT /admin/orders/:orderID/payment-status
func UpdatePaymentStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		var req UpdatePaymentStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		newStatus, err := models.MapPaymentStatus(req.PaymentStatus)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := db.Model(&models.Order{}).Where("id = ?", orderID).
			Update("payment_status", newStatus).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update payment status"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Payment status updated successfully"})
	}
}

// DispatchOrderHandler hands a confirmed order to the courier: issues a
// consignment and stores the delivery detail, then marks the order
// ready to ship.
// POST /admin/orders/:orderID/dispatch
func DispatchOrderHandler(db *gorm.DB, client *courier.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")

		var order models.Order
		if err := db.Preload("Items").First(&order, "id = ?", orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load order"})
			return
		}

		// a failed read here must not fall through to the courier call,
		// or a transient DB error could issue a duplicate consignment
		var existing models.DeliveryDetail
		err := db.Where("order_id = ?", order.ID).First(&existing).Error
		if err == nil {
			c.JSON(http.StatusConflict, gin.H{"error": "order already dispatched", "delivery": existing})
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to check dispatch state"})
			return
		}

		collect := 0.0
		if order.PaymentStatus != models.PaymentStatusPaid {
			collect = order.Total
		}
		con, err := client.CreateConsignment(courier.ConsignmentRequest{
			OrderRef:        order.OrderRef,
			RecipientName:   order.RecipientName,
			RecipientPhone:  order.RecipientPhone,
			Address:         order.Address,
			WeightKG:        order.ItemWeight,
			Quantity:        order.ItemQuantity,
			AmountToCollect: collect,
			Description:     itemSummary(order.Items),
		})
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}

		detail := models.DeliveryDetail{
			OrderID:       order.ID,
			ConsignmentID: con.ConsignmentID,
			TrackingCode:  con.TrackingCode,
			Status:        con.Status,
		}
		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&detail).Error; err != nil {
				return err
			}
			return tx.Model(&order).Update("status", models.OrderStatusReadyToShip).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record delivery"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order dispatched", "delivery": detail})
	}
}

func itemSummary(items []models.OrderItem) string {
	if len(items) == 0 {
		return ""
	}
	summary := items[0].ProductName
	if len(items) > 1 {
		summary += " and more"
	}
	return summary
}
