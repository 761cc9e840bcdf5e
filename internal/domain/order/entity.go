// internal/domain/order/entity.go
package order

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/soqi-sistemas/pedefacil-backend/internal/domain/cart"
	"gorm.io/gorm"
)

// Status represents the order status
type Status string

const (
	StatusPending   Status = "pending"
	StatusPreparing Status = "preparing"
	StatusReady     Status = "ready"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

// PaymentMethod represents how the customer pays at delivery/pickup
type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "cash"
	PaymentCredit PaymentMethod = "credit"
	PaymentDebit  PaymentMethod = "debit"
	PaymentPix    PaymentMethod = "pix"
)

// Order represents the order header
type Order struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	OrderNumber   string          `gorm:"uniqueIndex;not null;size:50" json:"order_number"`
	CustomerName  string          `gorm:"not null;size:255" json:"customer_name"`
	CustomerPhone string          `gorm:"not null;size:30" json:"customer_phone"`
	TotalPrice    decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"total_price"`
	Status        Status          `gorm:"not null;default:'pending'" json:"status"`
	Observations  string          `gorm:"type:text" json:"observations,omitempty"`
	PaymentMethod PaymentMethod   `gorm:"size:20" json:"payment_method,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	DeletedAt     gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	Items []Item `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
}

// Item is a frozen copy of a cart line taken at submission time, so
// later catalog price changes do not retroactively alter the order.
type Item struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	OrderID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"order_id"`
	ProductID    *uuid.UUID      `gorm:"type:uuid;index" json:"product_id,omitempty"` // Nullable, product may be deleted later
	ProductName  string          `gorm:"not null;size:255" json:"product_name"`
	Quantity     int             `gorm:"not null" json:"quantity"`
	Price        decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	Observations string          `gorm:"type:text" json:"observations,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

// TableName overrides
func (Order) TableName() string { return "orders" }
func (Item) TableName() string  { return "order_items" }

// ValidStatuses lists the closed set of order statuses.
func ValidStatuses() []Status {
	return []Status{StatusPending, StatusPreparing, StatusReady, StatusDelivered, StatusCancelled}
}

// IsValidStatus reports whether s is a member of the closed status set.
func IsValidStatus(s Status) bool {
	for _, v := range ValidStatuses() {
		if v == s {
			return true
		}
	}
	return false
}

// CanTransitionTo reports whether the order may move to the given
// status. Delivered and cancelled are terminal.
func (o *Order) CanTransitionTo(next Status) bool {
	transitions := map[Status][]Status{
		StatusPending:   {StatusPreparing, StatusCancelled},
		StatusPreparing: {StatusReady, StatusCancelled},
		StatusReady:     {StatusDelivered, StatusCancelled},
	}

	for _, allowed := range transitions[o.Status] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ItemsFromCart builds frozen order items from a cart snapshot.
// Name, unit price, quantity and note are copied as they stand.
func ItemsFromCart(snapshot *cart.Snapshot) []Item {
	items := make([]Item, len(snapshot.Lines))
	for i, line := range snapshot.Lines {
		productID := line.ProductID
		items[i] = Item{
			ProductID:    &productID,
			ProductName:  line.Name,
			Quantity:     line.Quantity,
			Price:        line.UnitPrice,
			Observations: line.Note,
		}
	}
	return items
}

// GenerateOrderNumber generates a human-readable order number.
// Format: PED-YYYYMMDD-XXXXXX
func GenerateOrderNumber() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:6])
	return fmt.Sprintf("PED-%s-%s", time.Now().Format("20060102"), suffix)
}
