package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Category struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Name        string         `json:"name" gorm:"unique;not null"`
	Slug        string         `json:"slug" gorm:"unique;not null"`
	Description string         `json:"description" gorm:"type:text"`
	Image       string         `json:"image"`
	ParentID    *uint          `json:"parent_id"`
	IsActive    bool           `json:"is_active" gorm:"default:true"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

type Brand struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Name        string         `json:"name" gorm:"unique;not null"`
	Slug        string         `json:"slug" gorm:"unique;not null"`
	Description string         `json:"description" gorm:"type:text"`
	Logo        string         `json:"logo"`
	Website     string         `json:"website"`
	IsActive    bool           `json:"is_active" gorm:"default:true"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

type Warehouse struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Code      string    `json:"code" gorm:"unique;not null"` // e.g. TEMA, ACCRA
	Address   string    `json:"address" gorm:"type:text"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	IsActive  bool      `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`
}

type Product struct {
	ID               uint   `json:"id" gorm:"primaryKey"`
	Name             string `json:"name" gorm:"not null"`
	Slug             string `json:"slug" gorm:"unique;not null"`
	Description      string `json:"description" gorm:"type:text"`
	ShortDescription string `json:"short_description"`
	SKU              string `json:"sku" gorm:"unique;not null"`
	Barcode          string `json:"barcode"`

	CategoryID uint     `json:"category_id" gorm:"not null"`
	Category   Category `json:"category"`
	BrandID    uint     `json:"brand_id" gorm:"not null"`
	Brand      Brand    `json:"brand"`

	// Pricing
	Price        decimal.Decimal  `json:"price" gorm:"type:decimal(10,2);not null"`
	ComparePrice *decimal.Decimal `json:"compare_price" gorm:"type:decimal(10,2)"`
	CostPrice    *decimal.Decimal `json:"cost_price" gorm:"type:decimal(10,2)"`

	// Product details
	Condition  string `json:"condition" gorm:"default:'new'"` // new, refurbished, used
	Weight     string `json:"weight"`
	Dimensions string `json:"dimensions"` // LxWxH
	ImageURL   string `json:"image_url"`

	// Stock
	TrackStock        bool `json:"track_stock" gorm:"default:true"`
	StockQuantity     int  `json:"stock_quantity" gorm:"default:0"`
	LowStockThreshold int  `json:"low_stock_threshold" gorm:"default:5"`

	// Status
	IsActive   bool `json:"is_active" gorm:"default:true"`
	IsFeatured bool `json:"is_featured" gorm:"default:false"`
	IsDigital  bool `json:"is_digital" gorm:"default:false"`

	// SEO
	MetaTitle       string `json:"meta_title"`
	MetaDescription string `json:"meta_description"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at" gorm:"index"`

	Images         []ProductImage           `json:"images" gorm:"constraint:OnDelete:CASCADE"`
	Specifications []TechnicalSpecification `json:"specifications" gorm:"constraint:OnDelete:CASCADE"`
	WarehouseStock []WarehouseStock         `json:"warehouse_stock" gorm:"constraint:OnDelete:CASCADE"`
	Reviews        []ProductReview          `json:"reviews" gorm:"constraint:OnDelete:CASCADE"`
}

func (p *Product) IsInStock() bool {
	return !p.TrackStock || p.StockQuantity > 0
}

func (p *Product) IsLowStock() bool {
	return p.TrackStock && p.StockQuantity <= p.LowStockThreshold
}

// DiscountPercentage returns the discount implied by compare_price,
// rounded to one decimal place. Zero unless compare_price > price.
func (p *Product) DiscountPercentage() decimal.Decimal {
	if p.ComparePrice == nil || !p.ComparePrice.GreaterThan(p.Price) {
		return decimal.Zero
	}
	hundred := decimal.NewFromInt(100)
	return p.ComparePrice.Sub(p.Price).Div(*p.ComparePrice).Mul(hundred).Round(1)
}

type ProductCondition string

const (
	ConditionNew         ProductCondition = "new"
	ConditionRefurbished ProductCondition = "refurbished"
	ConditionUsed        ProductCondition = "used"
)

type ProductImage struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	ProductID uint      `json:"product_id" gorm:"not null;index"`
	Image     string    `json:"image" gorm:"not null"`
	AltText   string    `json:"alt_text"`
	IsPrimary bool      `json:"is_primary" gorm:"default:false"`
	SortOrder int       `json:"sort_order" gorm:"default:0"`
	CreatedAt time.Time `json:"created_at"`
}

type TechnicalSpecification struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	ProductID uint   `json:"product_id" gorm:"not null;index"`
	Label     string `json:"label" gorm:"not null"`
	Value     string `json:"value" gorm:"not null"`
	SpecType  string `json:"spec_type" gorm:"default:'other'"` // voltage, material, size, capacity, power, weight, dimensions, other
	SortOrder int    `json:"sort_order" gorm:"default:0"`
}

type WarehouseStock struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	ProductID   uint      `json:"product_id" gorm:"not null;uniqueIndex:idx_product_warehouse"`
	WarehouseID uint      `json:"warehouse_id" gorm:"not null;uniqueIndex:idx_product_warehouse"`
	Warehouse   Warehouse `json:"warehouse"`
	Quantity    int       `json:"quantity" gorm:"default:0"`
	LastUpdated time.Time `json:"last_updated" gorm:"autoUpdateTime"`
}

type ProductReview struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	ProductID  uint      `json:"product_id" gorm:"not null;uniqueIndex:idx_product_user_review"`
	UserID     uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_product_user_review"`
	Rating     int       `json:"rating" gorm:"not null"` // 1-5 stars
	Title      string    `json:"title" gorm:"not null"`
	Content    string    `json:"content" gorm:"type:text"`
	IsVerified bool      `json:"is_verified" gorm:"default:false"` // verified purchase
	IsApproved bool      `json:"is_approved" gorm:"default:true"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
