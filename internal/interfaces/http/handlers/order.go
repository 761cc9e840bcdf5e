// internal/interfaces/http/handlers/order.go
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/soqi-sistemas/pedefacil-backend/internal/config"
	"github.com/soqi-sistemas/pedefacil-backend/internal/domain/cart"
	"github.com/soqi-sistemas/pedefacil-backend/internal/domain/order"
	"github.com/soqi-sistemas/pedefacil-backend/internal/domain/settings"
	"github.com/soqi-sistemas/pedefacil-backend/internal/pkg/email"
)

// OrderHandler handles order endpoints
type OrderHandler struct {
	orderService    *order.Service
	cartService     *cart.Service
	settingsService *settings.Service
	emailService    *email.Service
	config          *config.Config
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(db *gorm.DB, redisClient *redis.Client, cfg *config.Config) *OrderHandler {
	return &OrderHandler{
		orderService:    order.NewService(db, cfg),
		cartService:     cart.NewService(db, redisClient, cfg),
		settingsService: settings.NewService(db, redisClient, cfg),
		emailService:    email.NewService(cfg),
		config:          cfg,
	}
}

// SubmitOrder handles POST /orders. The session cart becomes an order
// and is cleared once the order is persisted.
func (h *OrderHandler) SubmitOrder(c *gin.Context) {
	sessionID, err := c.Cookie("session_id")
	if err != nil || sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "No cart session found",
		})
		return
	}

	var req order.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	snapshot, err := h.cartService.GetCart(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve cart",
		})
		return
	}

	createdOrder, err := h.orderService.SubmitOrder(&req, snapshot)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	if err := h.cartService.ClearCart(c.Request.Context(), sessionID); err != nil {
		logrus.WithError(err).WithField("order_number", createdOrder.OrderNumber).
			Warn("Failed to clear cart after order submission")
	}

	// Notification is best effort; the order is already persisted.
	go h.notifyStore(createdOrder)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order submitted successfully",
		"data":    createdOrder,
	})
}

// TrackOrder handles GET /orders/:number for customers following up on
// an order.
func (h *OrderHandler) TrackOrder(c *gin.Context) {
	orderNumber := c.Param("number")

	found, err := h.orderService.GetOrderByNumber(orderNumber)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve order",
		})
		return
	}
	if found == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Order not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": found})
}

// ListOrders handles GET /admin/orders
func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.orderService.ListOrders()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve orders",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": orders})
}

// GetOrder handles GET /admin/orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid order ID",
		})
		return
	}

	found, err := h.orderService.GetOrder(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Order not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": found})
}

// UpdateStatus handles PUT /admin/orders/:id/status
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid order ID",
		})
		return
	}

	var req order.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	updated, err := h.orderService.UpdateStatus(id, req.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order status updated successfully",
		"data":    updated,
	})
}

// notifyStore emails the configured notification address about a new
// order.
func (h *OrderHandler) notifyStore(o *order.Order) {
	if !h.emailService.Enabled() {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	to := h.settingsService.NotificationEmail(ctx)
	if to == "" {
		return
	}

	data := &email.OrderNotificationData{
		OrderNumber:   o.OrderNumber,
		CustomerName:  o.CustomerName,
		CustomerPhone: o.CustomerPhone,
		TotalPrice:    o.TotalPrice.StringFixed(2),
		PaymentMethod: string(o.PaymentMethod),
	}
	for _, item := range o.Items {
		data.Items = append(data.Items, email.OrderNotificationItem{
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Price:       item.Price.StringFixed(2),
		})
	}

	if err := h.emailService.SendOrderNotification(to, data); err != nil {
		logrus.WithError(err).WithField("order_number", o.OrderNumber).
			Warn("Failed to send order notification email")
	}
}
