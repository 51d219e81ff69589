package validation

import (
	"testing"

	"github.com/shopspring/decimal"
)

func validOrderRequest() CreateOrderRequest {
	return CreateOrderRequest{
		FirstName:       "John",
		LastName:        "Doe",
		Email:           "john@example.com",
		Phone:           "0201234567",
		ShippingAddress: "123 Test Street",
		City:            "Accra",
		Region:          "Greater Accra",
		TotalAmount:     decimal.RequireFromString("200.00"),
		ShippingCost:    decimal.RequireFromString("10.00"),
		TaxAmount:       decimal.RequireFromString("5.00"),
		PaymentMethod:   "cod",
		Items: []OrderItemRequest{
			{ProductID: 1, ProductName: "Cordless Drill 18V", ProductSKU: "DRL-18V-001",
				Price: decimal.RequireFromString("100.00"), Quantity: 2},
		},
	}
}

func TestCreateOrderRequest_Valid(t *testing.T) {
	v := New()

	if err := v.Struct(validOrderRequest()); err != nil {
		t.Fatalf("expected valid, got error: %v", err)
	}
}

func TestCreateOrderRequest_TotalMismatch(t *testing.T) {
	v := New()

	req := validOrderRequest()
	req.TotalAmount = decimal.RequireFromString("199.99")

	if err := v.Struct(req); err == nil {
		t.Fatal("expected validation error for total mismatch, got nil")
	}
}

func TestCreateOrderRequest_ZeroQuantity(t *testing.T) {
	v := New()

	req := validOrderRequest()
	req.Items[0].Quantity = 0

	if err := v.Struct(req); err == nil {
		t.Fatal("expected validation error for zero quantity, got nil")
	}
}

func TestCreateOrderRequest_UnknownPaymentMethod(t *testing.T) {
	v := New()

	req := validOrderRequest()
	req.PaymentMethod = "cheque"

	if err := v.Struct(req); err == nil {
		t.Fatal("expected validation error for unknown payment method, got nil")
	}
}

func TestCreateOrderRequest_NegativeShippingCost(t *testing.T) {
	v := New()

	req := validOrderRequest()
	req.ShippingCost = decimal.RequireFromString("-1.00")

	if err := v.Struct(req); err == nil {
		t.Fatal("expected validation error for negative shipping cost, got nil")
	}
}

func TestCreateOrderRequest_MissingFields(t *testing.T) {
	v := New()

	req := CreateOrderRequest{}
	if err := v.Struct(req); err == nil {
		t.Fatal("expected validation errors for missing required fields, got nil")
	}
}

func validProductRequest() ProductRequest {
	return ProductRequest{
		Name:       "Impact Driver 12V",
		Slug:       "impact-driver-12v",
		SKU:        "IMP-12V-001",
		CategoryID: 1,
		BrandID:    2,
		Price:      decimal.RequireFromString("320.00"),
	}
}

func TestProductRequest_Valid(t *testing.T) {
	v := New()

	if err := v.Struct(validProductRequest()); err != nil {
		t.Fatalf("expected valid, got error: %v", err)
	}
}

func TestProductRequest_NegativePrice(t *testing.T) {
	v := New()

	req := validProductRequest()
	req.Price = decimal.RequireFromString("-1.00")

	if err := v.Struct(req); err == nil {
		t.Fatal("expected validation error for negative price, got nil")
	}
}

func TestProductRequest_NegativeComparePrice(t *testing.T) {
	v := New()

	compare := decimal.RequireFromString("-10.00")
	req := validProductRequest()
	req.ComparePrice = &compare

	if err := v.Struct(req); err == nil {
		t.Fatal("expected validation error for negative compare price, got nil")
	}
}

func TestProductRequest_UnknownCondition(t *testing.T) {
	v := New()

	req := validProductRequest()
	req.Condition = "broken"

	if err := v.Struct(req); err == nil {
		t.Fatal("expected validation error for unknown condition, got nil")
	}
}

func TestProductRequest_MissingRequiredFields(t *testing.T) {
	v := New()

	if err := v.Struct(ProductRequest{}); err == nil {
		t.Fatal("expected validation errors for missing required fields, got nil")
	}
}

func TestCreateOrderRequest_NoItems(t *testing.T) {
	v := New()

	req := validOrderRequest()
	req.Items = nil
	req.TotalAmount = decimal.Zero

	if err := v.Struct(req); err == nil {
		t.Fatal("expected validation error for empty items, got nil")
	}
}
