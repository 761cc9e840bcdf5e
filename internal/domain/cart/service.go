// internal/domain/cart/service.go
package cart

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/soqi-sistemas/pedefacil-backend/internal/config"
	"github.com/soqi-sistemas/pedefacil-backend/internal/domain/catalog"
	"gorm.io/gorm"
)

// Service handles cart business logic. Carts live in Redis keyed by
// session ID; the database is only consulted to validate products.
type Service struct {
	db          *gorm.DB
	redisClient *redis.Client
	config      *config.Config
}

// NewService creates a new cart service
func NewService(db *gorm.DB, redisClient *redis.Client, cfg *config.Config) *Service {
	return &Service{
		db:          db,
		redisClient: redisClient,
		config:      cfg,
	}
}

// AddItemRequest represents an add-to-cart request
type AddItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity"`
}

// UpdateQuantityRequest represents a quantity update request
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// SetNoteRequest represents a line note request
type SetNoteRequest struct {
	Note string `json:"note"`
}

// GetCart retrieves the cart snapshot for a session
func (s *Service) GetCart(ctx context.Context, sessionID string) (*Snapshot, error) {
	cart, err := s.loadCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	snapshot := cart.Snapshot()
	return &snapshot, nil
}

// AddItem adds a product to the session cart. The product must exist and
// be available; the line is created from the product's current catalog
// data, so a later price change does not move lines already in carts.
func (s *Service) AddItem(ctx context.Context, sessionID string, req *AddItemRequest) (*Snapshot, error) {
	var product catalog.Product
	result := s.db.Where("id = ? AND available = ?", req.ProductID, true).First(&product)
	if result.Error != nil {
		return nil, fmt.Errorf("product not found or unavailable")
	}

	cart, err := s.loadCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	cart.AddItem(Line{
		ProductID: product.ID,
		Name:      product.Name,
		UnitPrice: product.Price,
		Image:     product.Image,
	}, req.Quantity)

	if err := s.saveCart(ctx, cart); err != nil {
		return nil, err
	}

	snapshot := cart.Snapshot()
	return &snapshot, nil
}

// UpdateQuantity sets the quantity of a cart line. Zero or negative
// quantities remove the line.
func (s *Service) UpdateQuantity(ctx context.Context, sessionID string, productID uuid.UUID, req *UpdateQuantityRequest) (*Snapshot, error) {
	cart, err := s.loadCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	cart.UpdateQuantity(productID, req.Quantity)

	if err := s.saveCart(ctx, cart); err != nil {
		return nil, err
	}

	snapshot := cart.Snapshot()
	return &snapshot, nil
}

// RemoveItem removes a product from the session cart
func (s *Service) RemoveItem(ctx context.Context, sessionID string, productID uuid.UUID) (*Snapshot, error) {
	return s.UpdateQuantity(ctx, sessionID, productID, &UpdateQuantityRequest{Quantity: 0})
}

// SetNote attaches a free-text note to a cart line
func (s *Service) SetNote(ctx context.Context, sessionID string, productID uuid.UUID, req *SetNoteRequest) (*Snapshot, error) {
	cart, err := s.loadCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	cart.SetNote(productID, req.Note)

	if err := s.saveCart(ctx, cart); err != nil {
		return nil, err
	}

	snapshot := cart.Snapshot()
	return &snapshot, nil
}

// ClearCart removes the whole session cart. Called after successful
// order submission.
func (s *Service) ClearCart(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return fmt.Errorf("session ID required")
	}
	return s.redisClient.Del(ctx, s.cartKey(sessionID)).Err()
}

// Private helper methods

func (s *Service) cartKey(sessionID string) string {
	return fmt.Sprintf("cart:session:%s", sessionID)
}

func (s *Service) loadCart(ctx context.Context, sessionID string) (*Cart, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("session ID required")
	}

	data, err := s.redisClient.Get(ctx, s.cartKey(sessionID)).Result()
	if err == redis.Nil {
		// Cart doesn't exist yet, start empty
		return NewCart(sessionID), nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	var cart Cart
	if err := json.Unmarshal([]byte(data), &cart); err != nil {
		return nil, fmt.Errorf("failed to decode cart: %w", err)
	}

	return &cart, nil
}

func (s *Service) saveCart(ctx context.Context, cart *Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}

	err = s.redisClient.Set(ctx, s.cartKey(cart.SessionID), data, s.config.Cart.SessionTTL).Err()
	if err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}
