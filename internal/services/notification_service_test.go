package services

import (
	"errors"
	"strings"
	"testing"

	"hardware_store/internal/models"
	"hardware_store/pkg/mailer"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSender records sent messages and optionally fails every send.
type fakeSender struct {
	name string
	err  error
	sent []*mailer.Message
}

func (s *fakeSender) Name() string { return s.name }

func (s *fakeSender) Send(msg *mailer.Message) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, msg)
	return nil
}

func testOrder() *models.Order {
	return &models.Order{
		ID:           uuid.New(),
		OrderNumber:  "ORD-1700000000-1234",
		FirstName:    "John",
		LastName:     "Doe",
		Email:        "john@example.com",
		Phone:        "+233201234567",
		City:         "Accra",
		Region:       "Greater Accra",
		TotalAmount:  decimal.RequireFromString("200.00"),
		ShippingCost: decimal.RequireFromString("10.00"),
		TaxAmount:    decimal.RequireFromString("5.00"),
		Items: []models.OrderItem{
			{ProductName: "Cordless Drill 18V", ProductSKU: "DRL-18V-001",
				Price: decimal.RequireFromString("100.00"), Quantity: 2},
		},
	}
}

func TestSendOrderConfirmation_BothDelivered(t *testing.T) {
	primary := &fakeSender{name: "api"}
	svc := NewNotificationServiceWithSenders(primary, &fakeSender{name: "console"},
		"noreply@example.com", "admin@example.com", 0)

	results := svc.SendOrderConfirmation(testOrder())
	require.Len(t, results, 2)

	assert.Equal(t, Delivered, results[0].Outcome)
	assert.Equal(t, "john@example.com", results[0].Recipient)
	assert.Equal(t, Delivered, results[1].Outcome)
	assert.Equal(t, "admin@example.com", results[1].Recipient)

	require.Len(t, primary.sent, 2)
	assert.Equal(t, "Order Confirmation - ORD-1700000000-1234", primary.sent[0].Subject)
	assert.Equal(t, "New Order Received - ORD-1700000000-1234", primary.sent[1].Subject)
}

func TestSendOrderConfirmation_FallsBackToConsole(t *testing.T) {
	primary := &fakeSender{name: "api", err: errors.New("connection refused")}
	fallback := &fakeSender{name: "console"}
	svc := NewNotificationServiceWithSenders(primary, fallback,
		"noreply@example.com", "admin@example.com", 0)

	results := svc.SendOrderConfirmation(testOrder())
	require.Len(t, results, 2)

	for _, res := range results {
		assert.Equal(t, Degraded, res.Outcome)
		assert.Equal(t, "console", res.Channel)
		assert.Contains(t, res.Reason, "connection refused")
	}
	assert.Len(t, fallback.sent, 2)
}

func TestSendOrderConfirmation_TotalFailureIsContained(t *testing.T) {
	primary := &fakeSender{name: "api", err: errors.New("down")}
	fallback := &fakeSender{name: "console", err: errors.New("also down")}
	svc := NewNotificationServiceWithSenders(primary, fallback,
		"noreply@example.com", "admin@example.com", 0)

	results := svc.SendOrderConfirmation(testOrder())
	require.Len(t, results, 2)
	for _, res := range results {
		assert.Equal(t, Failed, res.Outcome)
	}
}

func TestSendOrderConfirmation_MissingCustomerAddressDoesNotBlockAdmin(t *testing.T) {
	primary := &fakeSender{name: "api"}
	svc := NewNotificationServiceWithSenders(primary, &fakeSender{name: "console"},
		"noreply@example.com", "admin@example.com", 0)

	order := testOrder()
	order.Email = ""

	results := svc.SendOrderConfirmation(order)
	require.Len(t, results, 2)
	assert.Equal(t, Failed, results[0].Outcome)
	assert.Equal(t, Delivered, results[1].Outcome)
	require.Len(t, primary.sent, 1)
	assert.Equal(t, "admin@example.com", primary.sent[0].To)
}

func TestRenderOrderConfirmation_GreetingDiffers(t *testing.T) {
	order := testOrder()

	customer, err := renderOrderConfirmation(order, "John Doe", false)
	require.NoError(t, err)
	assert.Contains(t, customer, "Hello John Doe")
	assert.Contains(t, customer, "Thank you for your order")
	assert.Contains(t, customer, "ORD-1700000000-1234")
	assert.Contains(t, customer, "Grand Total: 215")
	assert.Contains(t, customer, "2 x Cordless Drill 18V")

	admin, err := renderOrderConfirmation(order, "Admin", true)
	require.NoError(t, err)
	assert.Contains(t, admin, "Hello Admin")
	assert.Contains(t, admin, "A new order has been received")

	// Same template, only the greeting block differs.
	assert.True(t, strings.Contains(admin, "ORD-1700000000-1234"))
}
