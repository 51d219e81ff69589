package repository

import (
	"hardware_store/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductFilter is the typed query surface for the catalog. Handlers fill it
// from query parameters; no dynamic filter composition happens below this.
type ProductFilter struct {
	CategorySlug string
	BrandSlug    string
	Condition    string
	Search       string
	MinPrice     *decimal.Decimal
	MaxPrice     *decimal.Decimal
	InStock      bool
	Featured     bool
	Ordering     string // price, -price, name, created_at, -created_at
	Page         int
	PageSize     int
}

const (
	DefaultPageSize = 12
	MaxPageSize     = 100
)

type ProductRepository interface {
	List(filter ProductFilter) ([]models.Product, int64, error)
	GetBySlug(slug string) (*models.Product, error)
	// GetBySlugAny looks up a product regardless of is_active; catalog
	// management needs to reach deactivated products too.
	GetBySlugAny(slug string) (*models.Product, error)
	CreateProduct(product *models.Product) error
	// UpdateProduct saves the product and replaces its specifications in
	// one transaction.
	UpdateProduct(product *models.Product) error
	DeleteProduct(product *models.Product) error
	ListCategories() ([]models.Category, error)
	ListBrands() ([]models.Brand, error)
	ListWarehouses() ([]models.Warehouse, error)
	CreateReview(review *models.ProductReview) error
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) List(filter ProductFilter) ([]models.Product, int64, error) {
	query := r.db.Model(&models.Product{}).Where("is_active = ?", true)

	if filter.CategorySlug != "" {
		query = query.Joins("JOIN categories ON categories.id = products.category_id").
			Where("categories.slug = ?", filter.CategorySlug)
	}
	if filter.BrandSlug != "" {
		query = query.Joins("JOIN brands ON brands.id = products.brand_id").
			Where("brands.slug = ?", filter.BrandSlug)
	}
	if filter.Condition != "" {
		query = query.Where("condition = ?", filter.Condition)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where(
			"products.name ILIKE ? OR products.description ILIKE ? OR products.short_description ILIKE ? OR products.sku ILIKE ?",
			like, like, like, like,
		)
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", filter.MaxPrice)
	}
	if filter.InStock {
		query = query.Where("track_stock = ? OR stock_quantity > 0", false)
	}
	if filter.Featured {
		query = query.Where("is_featured = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order(orderingClause(filter.Ordering))

	pageSize := filter.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	page := filter.Page
	if page <= 0 {
		page = 1
	}

	var products []models.Product
	err := query.
		Preload("Category").
		Preload("Brand").
		Preload("Images").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&products).Error
	return products, total, err
}

func orderingClause(ordering string) string {
	switch ordering {
	case "price":
		return "price ASC"
	case "-price":
		return "price DESC"
	case "name":
		return "products.name ASC"
	case "created_at":
		return "products.created_at ASC"
	default:
		return "products.created_at DESC"
	}
}

func (r *productRepository) GetBySlug(slug string) (*models.Product, error) {
	var product models.Product
	err := r.db.
		Preload("Category").
		Preload("Brand").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC, created_at ASC")
		}).
		Preload("Specifications", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Preload("WarehouseStock.Warehouse").
		Preload("Reviews", "is_approved = ?", true).
		Where("slug = ? AND is_active = ?", slug, true).
		First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) GetBySlugAny(slug string) (*models.Product, error) {
	var product models.Product
	err := r.db.
		Preload("Specifications").
		Where("slug = ?", slug).
		First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) CreateProduct(product *models.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepository) UpdateProduct(product *models.Product) error {
	specs := product.Specifications
	product.Specifications = nil
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", product.ID).
			Delete(&models.TechnicalSpecification{}).Error; err != nil {
			return err
		}
		if err := tx.Save(product).Error; err != nil {
			return err
		}
		for i := range specs {
			specs[i].ID = 0
			specs[i].ProductID = product.ID
		}
		if len(specs) > 0 {
			if err := tx.Create(&specs).Error; err != nil {
				return err
			}
		}
		product.Specifications = specs
		return nil
	})
}

func (r *productRepository) DeleteProduct(product *models.Product) error {
	return r.db.Delete(product).Error
}

func (r *productRepository) ListCategories() ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Where("is_active = ?", true).Order("name ASC").Find(&categories).Error
	return categories, err
}

func (r *productRepository) ListBrands() ([]models.Brand, error) {
	var brands []models.Brand
	err := r.db.Where("is_active = ?", true).Order("name ASC").Find(&brands).Error
	return brands, err
}

func (r *productRepository) ListWarehouses() ([]models.Warehouse, error) {
	var warehouses []models.Warehouse
	err := r.db.Where("is_active = ?", true).Order("name ASC").Find(&warehouses).Error
	return warehouses, err
}

func (r *productRepository) CreateReview(review *models.ProductReview) error {
	return r.db.Create(review).Error
}
