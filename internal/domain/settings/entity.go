// internal/domain/settings/entity.go
package settings

import (
	"time"

	"github.com/google/uuid"
)

// PaymentMethod represents a payment option offered at checkout
type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "cash"
	PaymentCredit PaymentMethod = "credit"
	PaymentDebit  PaymentMethod = "debit"
	PaymentPix    PaymentMethod = "pix"
)

// StoreSettings is the single-row record with the store's presentation
// and operational settings.
type StoreSettings struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name              string          `gorm:"not null;size:255" json:"name"`
	Logo              string          `gorm:"size:500" json:"logo,omitempty"`
	OpeningTime       string          `gorm:"size:5;not null" json:"opening_time"`
	ClosingTime       string          `gorm:"size:5;not null" json:"closing_time"`
	OpenDays          []int           `gorm:"serializer:json" json:"open_days"`
	WhatsappEnabled   bool            `gorm:"default:false" json:"whatsapp_enabled"`
	WhatsappNumber    string          `gorm:"size:30" json:"whatsapp_number,omitempty"`
	PaymentMethods    []PaymentMethod `gorm:"serializer:json" json:"payment_methods"`
	NotificationEmail string          `gorm:"size:255" json:"notification_email,omitempty"`
	PrimaryColor      string          `gorm:"size:20" json:"primary_color,omitempty"`
	SecondaryColor    string          `gorm:"size:20" json:"secondary_color,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// TableName overrides the table name
func (StoreSettings) TableName() string {
	return "store_settings"
}

// UpdateRequest represents a partial settings update; nil fields are
// left untouched.
type UpdateRequest struct {
	Name              *string          `json:"name"`
	Logo              *string          `json:"logo"`
	OpeningTime       *string          `json:"opening_time"`
	ClosingTime       *string          `json:"closing_time"`
	OpenDays          *[]int           `json:"open_days"`
	WhatsappEnabled   *bool            `json:"whatsapp_enabled"`
	WhatsappNumber    *string          `json:"whatsapp_number"`
	PaymentMethods    *[]PaymentMethod `json:"payment_methods"`
	NotificationEmail *string          `json:"notification_email"`
	PrimaryColor      *string          `json:"primary_color"`
	SecondaryColor    *string          `json:"secondary_color"`
}

// Defaults returns the settings record created when the store has none
// yet. Open every day, generic name, cash only.
func Defaults() StoreSettings {
	return StoreSettings{
		Name:           "Minha Loja",
		OpeningTime:    "08:00",
		ClosingTime:    "18:00",
		OpenDays:       []int{0, 1, 2, 3, 4, 5, 6},
		PaymentMethods: []PaymentMethod{PaymentCash},
	}
}

// Apply merges the non-nil fields of the request into the record.
func (s *StoreSettings) Apply(req *UpdateRequest) {
	if req.Name != nil {
		s.Name = *req.Name
	}
	if req.Logo != nil {
		s.Logo = *req.Logo
	}
	if req.OpeningTime != nil {
		s.OpeningTime = *req.OpeningTime
	}
	if req.ClosingTime != nil {
		s.ClosingTime = *req.ClosingTime
	}
	if req.OpenDays != nil {
		s.OpenDays = *req.OpenDays
	}
	if req.WhatsappEnabled != nil {
		s.WhatsappEnabled = *req.WhatsappEnabled
	}
	if req.WhatsappNumber != nil {
		s.WhatsappNumber = *req.WhatsappNumber
	}
	if req.PaymentMethods != nil {
		s.PaymentMethods = *req.PaymentMethods
	}
	if req.NotificationEmail != nil {
		s.NotificationEmail = *req.NotificationEmail
	}
	if req.PrimaryColor != nil {
		s.PrimaryColor = *req.PrimaryColor
	}
	if req.SecondaryColor != nil {
		s.SecondaryColor = *req.SecondaryColor
	}
}

// ValidPaymentMethods lists the payment options a store may enable.
func ValidPaymentMethods() []PaymentMethod {
	return []PaymentMethod{PaymentCash, PaymentCredit, PaymentDebit, PaymentPix}
}

// IsValidPaymentMethod reports whether m is a known payment option.
func IsValidPaymentMethod(m PaymentMethod) bool {
	for _, v := range ValidPaymentMethods() {
		if v == m {
			return true
		}
	}
	return false
}
