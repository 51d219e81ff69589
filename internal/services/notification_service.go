package services

import (
	"bytes"
	"fmt"
	"log"
	"text/template"
	"time"

	"hardware_store/internal/config"
	"hardware_store/internal/models"
	"hardware_store/pkg/mailer"
)

type DeliveryOutcome string

const (
	Delivered DeliveryOutcome = "delivered"
	Degraded  DeliveryOutcome = "degraded" // primary channel failed, fallback took over
	Failed    DeliveryOutcome = "failed"
)

// DeliveryResult reports what happened to one send without throwing.
type DeliveryResult struct {
	Recipient string
	Channel   string
	Outcome   DeliveryOutcome
	Reason    string
}

// NotificationService sends order confirmation messages on a best-effort
// basis. It never returns an error: failure to notify must never affect
// order persistence.
type NotificationService interface {
	SendOrderConfirmation(order *models.Order) []DeliveryResult
}

type notificationService struct {
	primary   mailer.Sender
	fallback  mailer.Sender
	from      string
	adminTo   string
	sendDelay time.Duration
}

// NewNotificationService picks the delivery channel from configuration:
// the transactional email API when a key is set, SMTP when configured
// without an API key, and the console sink otherwise. The console sink is
// always the fallback for a failing primary.
func NewNotificationService(cfg *config.Config) NotificationService {
	console := mailer.NewConsoleSender()

	var primary mailer.Sender = console
	if cfg.EmailAPIKey != "" {
		primary = mailer.NewClient(cfg.EmailAPIURL, cfg.EmailAPIKey)
	} else if cfg.SMTPHost != "" && cfg.SMTPUsername != "" {
		primary = mailer.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)
	}

	return &notificationService{
		primary:   primary,
		fallback:  console,
		from:      cfg.EmailFrom,
		adminTo:   cfg.AdminEmail,
		sendDelay: cfg.EmailSendDelay,
	}
}

// NewNotificationServiceWithSenders wires explicit senders; used by tests
// and by callers that already hold a configured channel.
func NewNotificationServiceWithSenders(primary, fallback mailer.Sender, from, adminTo string, sendDelay time.Duration) NotificationService {
	return &notificationService{
		primary:   primary,
		fallback:  fallback,
		from:      from,
		adminTo:   adminTo,
		sendDelay: sendDelay,
	}
}

func (s *notificationService) SendOrderConfirmation(order *models.Order) []DeliveryResult {
	customerName := fmt.Sprintf("%s %s", order.FirstName, order.LastName)

	// Each send is attempted and failed independently; a bad customer
	// address must not block the admin notification.
	customer := s.deliver(order, order.Email, customerName,
		fmt.Sprintf("Order Confirmation - %s", order.OrderNumber), false)

	if s.primary.Name() == "api" && s.sendDelay > 0 {
		// Short pause between the two API calls to stay under the
		// provider rate limit.
		time.Sleep(s.sendDelay)
	}

	admin := s.deliver(order, s.adminTo, "Admin",
		fmt.Sprintf("New Order Received - %s", order.OrderNumber), true)

	return []DeliveryResult{customer, admin}
}

func (s *notificationService) deliver(order *models.Order, to, recipientName, subject string, isAdmin bool) DeliveryResult {
	if to == "" {
		return DeliveryResult{Recipient: to, Outcome: Failed, Reason: "no recipient address"}
	}

	body, err := renderOrderConfirmation(order, recipientName, isAdmin)
	if err != nil {
		return DeliveryResult{Recipient: to, Outcome: Failed, Reason: err.Error()}
	}

	msg := &mailer.Message{
		From:    s.from,
		To:      to,
		Subject: subject,
		HTML:    body,
	}

	if err := s.primary.Send(msg); err != nil {
		log.Printf("notification: %s send to %s failed: %v, falling back to %s",
			s.primary.Name(), to, err, s.fallback.Name())
		if fbErr := s.fallback.Send(msg); fbErr != nil {
			return DeliveryResult{
				Recipient: to,
				Channel:   s.fallback.Name(),
				Outcome:   Failed,
				Reason:    fbErr.Error(),
			}
		}
		return DeliveryResult{
			Recipient: to,
			Channel:   s.fallback.Name(),
			Outcome:   Degraded,
			Reason:    err.Error(),
		}
	}

	return DeliveryResult{Recipient: to, Channel: s.primary.Name(), Outcome: Delivered}
}

// Customer and admin share one template; only the greeting differs.
var orderConfirmationTmpl = template.Must(template.New("order_confirmation").Parse(`<html>
<body>
{{if .IsAdmin}}<p>Hello Admin,</p>
<p>A new order has been received.</p>
{{else}}<p>Hello {{.RecipientName}},</p>
<p>Thank you for your order! Here are the details:</p>
{{end}}<h3>Order {{.Order.OrderNumber}}</h3>
<p>Customer: {{.Order.FirstName}} {{.Order.LastName}} ({{.Order.Email}}, {{.Order.Phone}})</p>
<p>Shipping: {{.Order.ShippingAddress}}, {{.Order.City}}, {{.Order.Region}}</p>
<table>
{{range .Order.Items}}<tr><td>{{.Quantity}} x {{.ProductName}} ({{.ProductSKU}})</td><td>{{.Subtotal}}</td></tr>
{{end}}</table>
<p>Subtotal: {{.Order.TotalAmount}}</p>
<p>Shipping: {{.Order.ShippingCost}}</p>
<p>Tax: {{.Order.TaxAmount}}</p>
<p><strong>Grand Total: {{.GrandTotal}}</strong></p>
<p>Payment method: {{.Order.PaymentMethod}}</p>
</body>
</html>`))

func renderOrderConfirmation(order *models.Order, recipientName string, isAdmin bool) (string, error) {
	var buf bytes.Buffer
	err := orderConfirmationTmpl.Execute(&buf, map[string]interface{}{
		"Order":         order,
		"RecipientName": recipientName,
		"IsAdmin":       isAdmin,
		"GrandTotal":    order.GrandTotal(),
	})
	if err != nil {
		return "", fmt.Errorf("failed to render order confirmation: %w", err)
	}
	return buf.String(), nil
}
