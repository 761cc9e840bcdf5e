// internal/domain/settings/settings_test.go
package settings

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultsOpenEveryDay(t *testing.T) {
	s := Defaults()

	require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, s.OpenDays)
	require.Equal(t, []PaymentMethod{PaymentCash}, s.PaymentMethods)
	require.NotEmpty(t, s.Name)
	require.Equal(t, "08:00", s.OpeningTime)
	require.Equal(t, "18:00", s.ClosingTime)
}

func TestApplyMergesOnlyProvidedFields(t *testing.T) {
	s := Defaults()
	s.NotificationEmail = "pedidos@loja.com"

	name := "Cantina da Praça"
	enabled := true
	number := "+5511999990000"
	methods := []PaymentMethod{PaymentCash, PaymentPix}

	s.Apply(&UpdateRequest{
		Name:            &name,
		WhatsappEnabled: &enabled,
		WhatsappNumber:  &number,
		PaymentMethods:  &methods,
	})

	require.Equal(t, "Cantina da Praça", s.Name)
	require.True(t, s.WhatsappEnabled)
	require.Equal(t, "+5511999990000", s.WhatsappNumber)
	require.Equal(t, methods, s.PaymentMethods)

	// untouched fields keep their previous values
	require.Equal(t, "pedidos@loja.com", s.NotificationEmail)
	require.Equal(t, "08:00", s.OpeningTime)
	require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, s.OpenDays)
}

func TestApplyAllowsClearingStrings(t *testing.T) {
	s := Defaults()
	s.Logo = "https://cdn.example.com/logo.png"

	empty := ""
	s.Apply(&UpdateRequest{Logo: &empty})

	require.Empty(t, s.Logo)
}

func TestIsValidPaymentMethod(t *testing.T) {
	require.True(t, IsValidPaymentMethod(PaymentPix))
	require.True(t, IsValidPaymentMethod(PaymentCash))
	require.False(t, IsValidPaymentMethod(PaymentMethod("bitcoin")))
}
