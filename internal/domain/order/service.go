// internal/domain/order/service.go
package order

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/soqi-sistemas/pedefacil-backend/internal/config"
	"github.com/soqi-sistemas/pedefacil-backend/internal/domain/cart"
	"gorm.io/gorm"
)

// Service handles order business logic
type Service struct {
	db     *gorm.DB
	config *config.Config
}

// NewService creates a new order service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:     db,
		config: cfg,
	}
}

// CreateOrderRequest represents order creation data
type CreateOrderRequest struct {
	CustomerName  string        `json:"customer_name" binding:"required"`
	CustomerPhone string        `json:"customer_phone" binding:"required"`
	PaymentMethod PaymentMethod `json:"payment_method" binding:"required,oneof=cash credit debit pix"`
	Observations  string        `json:"observations,omitempty"`
}

// UpdateStatusRequest represents an order status update
type UpdateStatusRequest struct {
	Status Status `json:"status" binding:"required"`
}

// SubmitOrder creates an order from the cart snapshot. Header and items
// are written in a single transaction, so a failed item write can never
// leave an orphaned header behind.
func (s *Service) SubmitOrder(req *CreateOrderRequest, snapshot *cart.Snapshot) (*Order, error) {
	if len(snapshot.Lines) == 0 {
		return nil, fmt.Errorf("cart is empty")
	}

	order := Order{
		OrderNumber:   GenerateOrderNumber(),
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		TotalPrice:    snapshot.TotalPrice,
		Status:        StatusPending,
		Observations:  req.Observations,
		PaymentMethod: req.PaymentMethod,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		items := ItemsFromCart(snapshot)
		for i := range items {
			items[i].OrderID = order.ID
		}

		if err := tx.Create(&items).Error; err != nil {
			return fmt.Errorf("failed to create order items: %w", err)
		}

		order.Items = items
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &order, nil
}

// GetOrderByNumber retrieves an order with its items by order number.
// A missing order returns (nil, nil): an empty result, not a failure.
func (s *Service) GetOrderByNumber(orderNumber string) (*Order, error) {
	var order Order
	result := s.db.
		Preload("Items").
		Where("order_number = ?", orderNumber).
		First(&order)

	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to retrieve order: %w", result.Error)
	}

	return &order, nil
}

// GetOrder retrieves a single order by ID
func (s *Service) GetOrder(id uuid.UUID) (*Order, error) {
	var order Order
	result := s.db.
		Preload("Items").
		Where("id = ?", id).
		First(&order)

	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("order not found")
		}
		return nil, fmt.Errorf("failed to retrieve order: %w", result.Error)
	}

	return &order, nil
}

// ListOrders retrieves all orders with items, newest first
func (s *Service) ListOrders() ([]Order, error) {
	var orders []Order
	err := s.db.
		Preload("Items").
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve orders: %w", err)
	}
	return orders, nil
}

// UpdateStatus moves an order to a new status. Transitions are guarded:
// the original console allowed any status to follow any other, which let
// delivered orders silently reopen; the guard closes that.
func (s *Service) UpdateStatus(orderID uuid.UUID, newStatus Status) (*Order, error) {
	if !IsValidStatus(newStatus) {
		return nil, fmt.Errorf("invalid status: %s", newStatus)
	}

	var order Order
	if err := s.db.First(&order, "id = ?", orderID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("order not found")
		}
		return nil, fmt.Errorf("failed to retrieve order: %w", err)
	}

	if !order.CanTransitionTo(newStatus) {
		return nil, fmt.Errorf("invalid status transition from %s to %s", order.Status, newStatus)
	}

	if err := s.db.Model(&order).Update("status", newStatus).Error; err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	order.Status = newStatus
	return &order, nil
}
