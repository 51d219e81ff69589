package validation

import (
	"fmt"

	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// New returns a configured validator with struct-level validation registered.
func New() *validatorv10.Validate {
	v := validatorv10.New()
	v.RegisterStructValidation(createOrderStructValidation, CreateOrderRequest{})
	v.RegisterStructValidation(productStructValidation, ProductRequest{})
	return v
}

func productStructValidation(sl validatorv10.StructLevel) {
	req := sl.Current().Interface().(ProductRequest)

	if req.Price.IsNegative() {
		sl.ReportError(req.Price, "price", "Price", "min_zero", "")
	}
	if req.ComparePrice != nil && req.ComparePrice.IsNegative() {
		sl.ReportError(req.ComparePrice, "compare_price", "ComparePrice", "min_zero", "")
	}
	if req.CostPrice != nil && req.CostPrice.IsNegative() {
		sl.ReportError(req.CostPrice, "cost_price", "CostPrice", "min_zero", "")
	}
}

// createOrderStructValidation enforces the monetary constraints that field
// tags cannot express: non-negative amounts and the reconciliation of item
// subtotals against total_amount. Decimal arithmetic throughout, no
// float rounding.
func createOrderStructValidation(sl validatorv10.StructLevel) {
	req := sl.Current().Interface().(CreateOrderRequest)

	if req.TotalAmount.IsNegative() {
		sl.ReportError(req.TotalAmount, "total_amount", "TotalAmount", "min_zero", "")
	}
	if req.ShippingCost.IsNegative() {
		sl.ReportError(req.ShippingCost, "shipping_cost", "ShippingCost", "min_zero", "")
	}
	if req.TaxAmount.IsNegative() {
		sl.ReportError(req.TaxAmount, "tax_amount", "TaxAmount", "min_zero", "")
	}

	sum := decimal.Zero
	for _, it := range req.Items {
		if it.Price.IsNegative() {
			sl.ReportError(it.Price, "items", "Items", "min_zero", "")
			return
		}
		sum = sum.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	if !sum.Equal(req.TotalAmount) {
		sl.ReportError(req.TotalAmount, "total_amount", "TotalAmount", "amount_match_items",
			fmt.Sprintf("items sum %s != total_amount %s", sum, req.TotalAmount))
	}
}
