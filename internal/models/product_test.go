package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestProductDiscountPercentage(t *testing.T) {
	compare := decimal.RequireFromString("550.00")
	product := &Product{
		Price:        decimal.RequireFromString("450.00"),
		ComparePrice: &compare,
	}
	// (550 - 450) / 550 * 100 = 18.18... -> 18.2
	assert.True(t, product.DiscountPercentage().Equal(decimal.RequireFromString("18.2")))
}

func TestProductDiscountPercentage_ZeroCases(t *testing.T) {
	// No compare price at all.
	noCompare := &Product{Price: decimal.RequireFromString("450.00")}
	assert.True(t, noCompare.DiscountPercentage().IsZero())

	// Compare price equal to price.
	equal := decimal.RequireFromString("450.00")
	samePrice := &Product{Price: decimal.RequireFromString("450.00"), ComparePrice: &equal}
	assert.True(t, samePrice.DiscountPercentage().IsZero())

	// Compare price below price.
	lower := decimal.RequireFromString("400.00")
	markedUp := &Product{Price: decimal.RequireFromString("450.00"), ComparePrice: &lower}
	assert.True(t, markedUp.DiscountPercentage().IsZero())
}

func TestProductStockFlags(t *testing.T) {
	tracked := &Product{TrackStock: true, StockQuantity: 10, LowStockThreshold: 5}
	assert.True(t, tracked.IsInStock())
	assert.False(t, tracked.IsLowStock())

	low := &Product{TrackStock: true, StockQuantity: 3, LowStockThreshold: 5}
	assert.True(t, low.IsInStock())
	assert.True(t, low.IsLowStock())

	out := &Product{TrackStock: true, StockQuantity: 0, LowStockThreshold: 5}
	assert.False(t, out.IsInStock())
	assert.True(t, out.IsLowStock())

	// Untracked products are always in stock and never low.
	untracked := &Product{TrackStock: false, StockQuantity: 0}
	assert.True(t, untracked.IsInStock())
	assert.False(t, untracked.IsLowStock())
}
