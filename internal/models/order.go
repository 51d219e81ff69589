package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Order struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	OrderNumber string    `json:"order_number" gorm:"uniqueIndex;not null"`
	UserID      *uint     `json:"user_id"`

	// Customer information
	FirstName string `json:"first_name" gorm:"not null"`
	LastName  string `json:"last_name" gorm:"not null"`
	Email     string `json:"email" gorm:"not null"`
	Phone     string `json:"phone" gorm:"not null"`

	// Shipping information
	ShippingAddress string `json:"shipping_address" gorm:"type:text;not null"`
	City            string `json:"city" gorm:"not null"`
	Region          string `json:"region" gorm:"not null"`
	PostalCode      string `json:"postal_code"`
	OrderNotes      string `json:"order_notes" gorm:"type:text"`

	// Order details
	TotalAmount  decimal.Decimal `json:"total_amount" gorm:"type:decimal(10,2);not null"`
	ShippingCost decimal.Decimal `json:"shipping_cost" gorm:"type:decimal(10,2);default:0"`
	TaxAmount    decimal.Decimal `json:"tax_amount" gorm:"type:decimal(10,2);default:0"`

	// Payment information
	PaymentMethod string `json:"payment_method" gorm:"not null"`              // cod, mobile_money, card
	PaymentStatus string `json:"payment_status" gorm:"default:'pending'"`     // pending, paid, failed, refunded
	Status        string `json:"status" gorm:"default:'pending'"`             // pending, confirmed, processing, shipped, delivered, cancelled

	// Tracking
	TrackingNumber    string     `json:"tracking_number"`
	EstimatedDelivery *time.Time `json:"estimated_delivery"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Items         []OrderItem         `json:"items" gorm:"constraint:OnDelete:CASCADE"`
	StatusUpdates []OrderStatusUpdate `json:"status_updates" gorm:"constraint:OnDelete:CASCADE"`
}

// GrandTotal is total_amount + shipping_cost + tax_amount.
func (o *Order) GrandTotal() decimal.Decimal {
	return o.TotalAmount.Add(o.ShippingCost).Add(o.TaxAmount)
}

type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderConfirmed  OrderStatus = "confirmed"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

func ValidOrderStatus(status string) bool {
	switch OrderStatus(status) {
	case OrderPending, OrderConfirmed, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

type PaymentMethod string

const (
	PaymentCOD         PaymentMethod = "cod"
	PaymentMobileMoney PaymentMethod = "mobile_money"
	PaymentCard        PaymentMethod = "card"
)

func ValidPaymentMethod(method string) bool {
	switch PaymentMethod(method) {
	case PaymentCOD, PaymentMobileMoney, PaymentCard:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)
