package validation

import "github.com/shopspring/decimal"

// OrderItemRequest is a single line-item descriptor. Name, SKU and price are
// snapshotted onto the order item as supplied.
type OrderItemRequest struct {
	ProductID   uint            `json:"product_id" validate:"required"`
	ProductName string          `json:"product_name" validate:"required"`
	ProductSKU  string          `json:"product_sku" validate:"required"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity" validate:"required,min=1"`
}

// CreateOrderRequest is the payload for POST /orders/create.
type CreateOrderRequest struct {
	FirstName       string `json:"first_name" validate:"required"`
	LastName        string `json:"last_name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone" validate:"required"`
	ShippingAddress string `json:"shipping_address" validate:"required"`
	City            string `json:"city" validate:"required"`
	Region          string `json:"region" validate:"required"`
	PostalCode      string `json:"postal_code"`
	OrderNotes      string `json:"order_notes"`

	TotalAmount  decimal.Decimal `json:"total_amount"`
	ShippingCost decimal.Decimal `json:"shipping_cost"`
	TaxAmount    decimal.Decimal `json:"tax_amount"`

	PaymentMethod string `json:"payment_method" validate:"required,oneof=cod mobile_money card"`

	Items []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// UpdateOrderStatusRequest is the payload for POST /orders/:order_number/update-status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
	Notes  string `json:"notes"`
}

type RegisterRequest struct {
	Username    string `json:"username" validate:"required,min=3,max=150"`
	Password    string `json:"password" validate:"required,min=8"`
	Email       string `json:"email" validate:"omitempty,email"`
	Role        string `json:"role" validate:"omitempty,oneof=CUSTOMER PRO_CONTRACTOR ADMIN"`
	PhoneNumber string `json:"phone_number"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	Refresh string `json:"refresh" validate:"required"`
}

type LogoutRequest struct {
	Refresh string `json:"refresh" validate:"required"`
}

type UpdateProfileRequest struct {
	Email       string `json:"email" validate:"omitempty,email"`
	PhoneNumber string `json:"phone_number"`
}

type CreateJobSiteRequest struct {
	Name                 string `json:"name" validate:"required"`
	AddressLine1         string `json:"address_line_1" validate:"required"`
	AddressLine2         string `json:"address_line_2"`
	City                 string `json:"city"`
	Region               string `json:"region"`
	ContactName          string `json:"contact_name"`
	ContactPhone         string `json:"contact_phone"`
	DeliveryInstructions string `json:"delivery_instructions"`
}

type ProductSpecificationRequest struct {
	Label     string `json:"label" validate:"required"`
	Value     string `json:"value" validate:"required"`
	SpecType  string `json:"spec_type"`
	SortOrder int    `json:"sort_order"`
}

// ProductRequest is the payload for product create and update (staff only).
// Specifications are replaced wholesale on update.
type ProductRequest struct {
	Name             string `json:"name" validate:"required"`
	Slug             string `json:"slug" validate:"required"`
	Description      string `json:"description"`
	ShortDescription string `json:"short_description"`
	SKU              string `json:"sku" validate:"required"`
	Barcode          string `json:"barcode"`

	CategoryID uint `json:"category_id" validate:"required"`
	BrandID    uint `json:"brand_id" validate:"required"`

	Price        decimal.Decimal  `json:"price"`
	ComparePrice *decimal.Decimal `json:"compare_price"`
	CostPrice    *decimal.Decimal `json:"cost_price"`

	Condition  string `json:"condition" validate:"omitempty,oneof=new refurbished used"`
	Weight     string `json:"weight"`
	Dimensions string `json:"dimensions"`
	ImageURL   string `json:"image_url"`

	TrackStock        *bool `json:"track_stock"`
	StockQuantity     int   `json:"stock_quantity" validate:"min=0"`
	LowStockThreshold int   `json:"low_stock_threshold" validate:"min=0"`

	IsActive   *bool `json:"is_active"`
	IsFeatured bool  `json:"is_featured"`
	IsDigital  bool  `json:"is_digital"`

	MetaTitle       string `json:"meta_title"`
	MetaDescription string `json:"meta_description"`

	Specifications []ProductSpecificationRequest `json:"specifications" validate:"omitempty,dive"`
}

type CreateReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Title   string `json:"title" validate:"required"`
	Content string `json:"content"`
}
