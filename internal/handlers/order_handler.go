package handlers

import (
	"errors"
	"net/http"

	"hardware_store/internal/middleware"
	"hardware_store/internal/models"
	"hardware_store/internal/services"
	"hardware_store/internal/validation"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"
)

type OrderHandler struct {
	orderService services.OrderService
	validate     *validatorv10.Validate
}

func NewOrderHandler(orderService services.OrderService, validate *validatorv10.Validate) *OrderHandler {
	return &OrderHandler{orderService: orderService, validate: validate}
}

// orderResponse hydrates an order with its derived grand total.
func orderResponse(order *models.Order) gin.H {
	return gin.H{
		"id":                 order.ID,
		"order_number":       order.OrderNumber,
		"user_id":            order.UserID,
		"first_name":         order.FirstName,
		"last_name":          order.LastName,
		"email":              order.Email,
		"phone":              order.Phone,
		"shipping_address":   order.ShippingAddress,
		"city":               order.City,
		"region":             order.Region,
		"postal_code":        order.PostalCode,
		"order_notes":        order.OrderNotes,
		"total_amount":       order.TotalAmount,
		"shipping_cost":      order.ShippingCost,
		"tax_amount":         order.TaxAmount,
		"grand_total":        order.GrandTotal(),
		"payment_method":     order.PaymentMethod,
		"payment_status":     order.PaymentStatus,
		"status":             order.Status,
		"tracking_number":    order.TrackingNumber,
		"estimated_delivery": order.EstimatedDelivery,
		"created_at":         order.CreatedAt,
		"updated_at":         order.UpdatedAt,
		"items":              order.Items,
		"status_updates":     order.StatusUpdates,
	}
}

func (h *OrderHandler) Create(c *gin.Context) {
	var req validation.CreateOrderRequest
	if err := validation.BindAndValidate(c, &req, h.validate); err != nil {
		return
	}

	order, err := h.orderService.CreateOrder(&req, middleware.CurrentUser(c))
	if err != nil {
		if errors.Is(err, services.ErrInvalidOrder) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "order creation failed"})
		return
	}

	c.JSON(http.StatusCreated, orderResponse(order))
}

func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.orderService.ListOrders(middleware.CurrentUser(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list orders"})
		return
	}

	results := make([]gin.H, 0, len(orders))
	for i := range orders {
		results = append(results, orderResponse(&orders[i]))
	}
	c.JSON(http.StatusOK, gin.H{
		"count":   len(results),
		"results": results,
	})
}

func (h *OrderHandler) Detail(c *gin.Context) {
	order, err := h.orderService.GetOrder(c.Param("order_number"), middleware.CurrentUser(c))
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load order"})
		return
	}

	c.JSON(http.StatusOK, orderResponse(order))
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req validation.UpdateOrderStatusRequest
	if err := validation.BindAndValidate(c, &req, h.validate); err != nil {
		return
	}

	order, err := h.orderService.UpdateStatus(
		c.Param("order_number"), req.Status, req.Notes, middleware.CurrentUser(c))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPermissionDenied):
			c.JSON(http.StatusForbidden, gin.H{"error": "Permission denied"})
		case errors.Is(err, services.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		case errors.Is(err, services.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "status update failed"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Status updated successfully",
		"order":   orderResponse(order),
	})
}
