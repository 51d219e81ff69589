package services

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"hardware_store/internal/models"
	"hardware_store/internal/repository"
	"hardware_store/internal/validation"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// maxOrderNumberAttempts bounds the regenerate-and-retry loop on order
// number collisions. With 9000 possible suffixes per timestamp second this
// is never reached in practice.
const maxOrderNumberAttempts = 10

type OrderService interface {
	CreateOrder(req *validation.CreateOrderRequest, user *models.User) (*models.Order, error)
	GetOrder(orderNumber string, user *models.User) (*models.Order, error)
	ListOrders(user *models.User) ([]models.Order, error)
	UpdateStatus(orderNumber, status, notes string, actor *models.User) (*models.Order, error)
}

type orderService struct {
	orderRepo repository.OrderRepository
	notifier  NotificationService
}

func NewOrderService(orderRepo repository.OrderRepository, notifier NotificationService) OrderService {
	return &orderService{orderRepo: orderRepo, notifier: notifier}
}

// CreateOrder persists the order, its items and the initial pending status
// update as one atomic unit, then attempts customer and admin notification.
// Notification failure never affects the persisted order.
func (s *orderService) CreateOrder(req *validation.CreateOrderRequest, user *models.User) (*models.Order, error) {
	if err := validateOrderInput(req); err != nil {
		return nil, err
	}

	order := &models.Order{
		ID:              uuid.New(),
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Phone:           req.Phone,
		ShippingAddress: req.ShippingAddress,
		City:            req.City,
		Region:          req.Region,
		PostalCode:      req.PostalCode,
		OrderNotes:      req.OrderNotes,
		TotalAmount:     req.TotalAmount,
		ShippingCost:    req.ShippingCost,
		TaxAmount:       req.TaxAmount,
		PaymentMethod:   req.PaymentMethod,
		PaymentStatus:   string(models.PaymentStatusPending),
		Status:          string(models.OrderPending),
	}
	if user != nil {
		order.UserID = &user.ID
	}

	for _, it := range req.Items {
		order.Items = append(order.Items, models.OrderItem{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			ProductSKU:  it.ProductSKU,
			Price:       it.Price,
			Quantity:    it.Quantity,
		})
	}

	order.StatusUpdates = []models.OrderStatusUpdate{{
		Status: string(models.OrderPending),
		Notes:  "Order placed successfully",
	}}

	if err := s.createWithUniqueNumber(order); err != nil {
		return nil, err
	}

	// Best effort: log anything that did not go out cleanly, then move on.
	for _, res := range s.notifier.SendOrderConfirmation(order) {
		if res.Outcome != Delivered {
			log.Printf("order %s: notification to %s %s (%s)",
				order.OrderNumber, res.Recipient, res.Outcome, res.Reason)
		}
	}

	return order, nil
}

// createWithUniqueNumber inserts the order, relying on the database unique
// constraint to detect order-number collisions. On a duplicate-key error the
// random suffix is regenerated and the insert retried; there is no separate
// existence check to race against.
func (s *orderService) createWithUniqueNumber(order *models.Order) error {
	for attempt := 0; attempt < maxOrderNumberAttempts; attempt++ {
		order.OrderNumber = generateOrderNumber()
		err := s.orderRepo.Create(order)
		if err == nil {
			return nil
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			continue
		}
		return fmt.Errorf("failed to create order: %w", err)
	}
	return fmt.Errorf("failed to allocate a unique order number after %d attempts", maxOrderNumberAttempts)
}

func generateOrderNumber() string {
	timestamp := time.Now().Unix()
	suffix := 1000 + rand.Intn(9000)
	return fmt.Sprintf("ORD-%d-%d", timestamp, suffix)
}

// validateOrderInput re-checks the constraints the order manager owns:
// payment method enum, positive quantities, non-negative money and the
// reconciliation of item subtotals against total_amount.
func validateOrderInput(req *validation.CreateOrderRequest) error {
	if !models.ValidPaymentMethod(req.PaymentMethod) {
		return fmt.Errorf("%w: unknown payment method %q", ErrInvalidOrder, req.PaymentMethod)
	}
	if len(req.Items) == 0 {
		return fmt.Errorf("%w: order has no items", ErrInvalidOrder)
	}
	if req.TotalAmount.IsNegative() || req.ShippingCost.IsNegative() || req.TaxAmount.IsNegative() {
		return fmt.Errorf("%w: monetary values must be non-negative", ErrInvalidOrder)
	}

	sum := decimal.Zero
	for _, it := range req.Items {
		if it.Quantity <= 0 {
			return fmt.Errorf("%w: quantity must be positive", ErrInvalidOrder)
		}
		if it.Price.IsNegative() {
			return fmt.Errorf("%w: item price must be non-negative", ErrInvalidOrder)
		}
		item := models.OrderItem{Price: it.Price, Quantity: it.Quantity}
		sum = sum.Add(item.Subtotal())
	}
	if !sum.Equal(req.TotalAmount) {
		return fmt.Errorf("%w: item subtotals %s do not reconcile with total_amount %s",
			ErrInvalidOrder, sum, req.TotalAmount)
	}
	return nil
}

// GetOrder returns a single order with items and status history. Ordinary
// users only see their own orders; missing and not-visible both map to
// ErrOrderNotFound.
func (s *orderService) GetOrder(orderNumber string, user *models.User) (*models.Order, error) {
	if user == nil {
		return nil, ErrPermissionDenied
	}

	var (
		order *models.Order
		err   error
	)
	if user.IsStaff() {
		order, err = s.orderRepo.GetByOrderNumber(orderNumber)
	} else {
		order, err = s.orderRepo.GetByOrderNumberForUser(orderNumber, user.ID)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to load order: %w", err)
	}
	return order, nil
}

func (s *orderService) ListOrders(user *models.User) ([]models.Order, error) {
	if user == nil {
		return nil, ErrPermissionDenied
	}
	if user.IsStaff() {
		return s.orderRepo.ListAll()
	}
	return s.orderRepo.ListByUser(user.ID)
}

// UpdateStatus sets a new lifecycle status and appends an audit record.
// Staff only. Prior audit entries are never altered.
func (s *orderService) UpdateStatus(orderNumber, status, notes string, actor *models.User) (*models.Order, error) {
	if actor == nil || !actor.IsStaff() {
		return nil, ErrPermissionDenied
	}

	order, err := s.orderRepo.GetByOrderNumber(orderNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to load order: %w", err)
	}
	if !models.ValidOrderStatus(status) {
		return nil, ErrInvalidStatus
	}

	order.Status = status
	update := &models.OrderStatusUpdate{
		OrderID:   order.ID,
		Status:    status,
		Notes:     notes,
		CreatedBy: &actor.ID,
	}
	if err := s.orderRepo.UpdateStatus(order, update); err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	order.StatusUpdates = append([]models.OrderStatusUpdate{*update}, order.StatusUpdates...)
	return order, nil
}
