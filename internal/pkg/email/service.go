// internal/pkg/email/service.go
package email

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
	"strings"

	"github.com/soqi-sistemas/pedefacil-backend/internal/config"
)

// Email represents an outgoing email message
type Email struct {
	To          []string
	Subject     string
	HTMLContent string
}

// Service sends transactional email over SMTP
type Service struct {
	config *config.Config
}

// NewService creates a new email service
func NewService(cfg *config.Config) *Service {
	return &Service{
		config: cfg,
	}
}

// Enabled reports whether email sending is configured
func (s *Service) Enabled() bool {
	return s.config.Email.Enabled && s.config.Email.SMTPHost != ""
}

// Send delivers the email through the configured SMTP server
func (s *Service) Send(email *Email) error {
	if !s.Enabled() {
		return fmt.Errorf("email sending is disabled")
	}
	if len(email.To) == 0 {
		return fmt.Errorf("no recipients")
	}

	var auth smtp.Auth
	if s.config.Email.SMTPUser != "" {
		auth = smtp.PlainAuth("",
			s.config.Email.SMTPUser,
			s.config.Email.SMTPPass,
			s.config.Email.SMTPHost)
	}

	from := s.config.Email.FromEmail
	if s.config.Email.FromName != "" {
		from = fmt.Sprintf("%s <%s>", s.config.Email.FromName, s.config.Email.FromEmail)
	}

	headers := make(map[string]string)
	headers["From"] = from
	headers["To"] = strings.Join(email.To, ", ")
	headers["Subject"] = email.Subject
	headers["MIME-Version"] = "1.0"
	headers["Content-Type"] = "text/html; charset=\"utf-8\""

	var msg bytes.Buffer
	for key, value := range headers {
		msg.WriteString(fmt.Sprintf("%s: %s\r\n", key, value))
	}
	msg.WriteString("\r\n")
	msg.WriteString(email.HTMLContent)

	serverAddr := fmt.Sprintf("%s:%d", s.config.Email.SMTPHost, s.config.Email.SMTPPort)
	return smtp.SendMail(serverAddr, auth, s.config.Email.FromEmail, email.To, msg.Bytes())
}

// OrderNotificationData carries the fields rendered into the new-order
// notification email.
type OrderNotificationData struct {
	OrderNumber   string
	CustomerName  string
	CustomerPhone string
	TotalPrice    string
	PaymentMethod string
	Items         []OrderNotificationItem
}

// OrderNotificationItem is one line of the notification email
type OrderNotificationItem struct {
	ProductName string
	Quantity    int
	Price       string
}

var orderNotificationTemplate = template.Must(template.New("order_notification").Parse(`
<h2>Novo pedido recebido</h2>
<p><strong>Pedido:</strong> {{.OrderNumber}}</p>
<p><strong>Cliente:</strong> {{.CustomerName}} ({{.CustomerPhone}})</p>
<p><strong>Pagamento:</strong> {{.PaymentMethod}}</p>
<table border="1" cellpadding="6" cellspacing="0">
  <tr><th>Item</th><th>Qtd</th><th>Preço</th></tr>
  {{range .Items}}
  <tr><td>{{.ProductName}}</td><td>{{.Quantity}}</td><td>R$ {{.Price}}</td></tr>
  {{end}}
</table>
<p><strong>Total: R$ {{.TotalPrice}}</strong></p>
`))

// SendOrderNotification emails the store about a newly placed order.
func (s *Service) SendOrderNotification(to string, data *OrderNotificationData) error {
	if to == "" {
		return fmt.Errorf("no notification address configured")
	}

	var body bytes.Buffer
	if err := orderNotificationTemplate.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to render notification: %w", err)
	}

	return s.Send(&Email{
		To:          []string{to},
		Subject:     fmt.Sprintf("Novo pedido %s", data.OrderNumber),
		HTMLContent: body.String(),
	})
}
