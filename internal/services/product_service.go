package services

import (
	"errors"
	"fmt"

	"hardware_store/internal/models"
	"hardware_store/internal/repository"
	"hardware_store/internal/validation"

	"gorm.io/gorm"
)

type ProductService interface {
	ListProducts(filter repository.ProductFilter) ([]models.Product, int64, error)
	GetProduct(slug string) (*models.Product, error)
	CreateProduct(user *models.User, req *validation.ProductRequest) (*models.Product, error)
	UpdateProduct(slug string, user *models.User, req *validation.ProductRequest) (*models.Product, error)
	DeleteProduct(slug string, user *models.User) error
	ListCategories() ([]models.Category, error)
	ListBrands() ([]models.Brand, error)
	ListWarehouses() ([]models.Warehouse, error)
	CreateReview(productSlug string, user *models.User, req *validation.CreateReviewRequest) (*models.ProductReview, error)
}

type productService struct {
	productRepo repository.ProductRepository
}

func NewProductService(productRepo repository.ProductRepository) ProductService {
	return &productService{productRepo: productRepo}
}

func (s *productService) ListProducts(filter repository.ProductFilter) ([]models.Product, int64, error) {
	return s.productRepo.List(filter)
}

func (s *productService) GetProduct(slug string) (*models.Product, error) {
	product, err := s.productRepo.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to load product: %w", err)
	}
	return product, nil
}

func (s *productService) CreateProduct(user *models.User, req *validation.ProductRequest) (*models.Product, error) {
	if user == nil || !user.IsStaff() {
		return nil, ErrPermissionDenied
	}

	product := &models.Product{TrackStock: true, IsActive: true}
	applyProductRequest(product, req)

	if err := s.productRepo.CreateProduct(product); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrProductExists
		}
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return product, nil
}

func (s *productService) UpdateProduct(slug string, user *models.User, req *validation.ProductRequest) (*models.Product, error) {
	if user == nil || !user.IsStaff() {
		return nil, ErrPermissionDenied
	}

	product, err := s.productRepo.GetBySlugAny(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to load product: %w", err)
	}

	applyProductRequest(product, req)
	if err := s.productRepo.UpdateProduct(product); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrProductExists
		}
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return product, nil
}

func (s *productService) DeleteProduct(slug string, user *models.User) error {
	if user == nil || !user.IsStaff() {
		return ErrPermissionDenied
	}

	product, err := s.productRepo.GetBySlugAny(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return fmt.Errorf("failed to load product: %w", err)
	}

	if err := s.productRepo.DeleteProduct(product); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}

// applyProductRequest copies the request onto the product. Tri-state bools
// keep their current value when absent from the payload.
func applyProductRequest(product *models.Product, req *validation.ProductRequest) {
	product.Name = req.Name
	product.Slug = req.Slug
	product.Description = req.Description
	product.ShortDescription = req.ShortDescription
	product.SKU = req.SKU
	product.Barcode = req.Barcode
	product.CategoryID = req.CategoryID
	product.BrandID = req.BrandID
	product.Price = req.Price
	product.ComparePrice = req.ComparePrice
	product.CostPrice = req.CostPrice
	if req.Condition != "" {
		product.Condition = req.Condition
	}
	product.Weight = req.Weight
	product.Dimensions = req.Dimensions
	product.ImageURL = req.ImageURL
	if req.TrackStock != nil {
		product.TrackStock = *req.TrackStock
	}
	product.StockQuantity = req.StockQuantity
	if req.LowStockThreshold > 0 {
		product.LowStockThreshold = req.LowStockThreshold
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}
	product.IsFeatured = req.IsFeatured
	product.IsDigital = req.IsDigital
	product.MetaTitle = req.MetaTitle
	product.MetaDescription = req.MetaDescription

	specs := make([]models.TechnicalSpecification, 0, len(req.Specifications))
	for _, sp := range req.Specifications {
		spec := models.TechnicalSpecification{
			Label:     sp.Label,
			Value:     sp.Value,
			SpecType:  sp.SpecType,
			SortOrder: sp.SortOrder,
		}
		if spec.SpecType == "" {
			spec.SpecType = "other"
		}
		specs = append(specs, spec)
	}
	product.Specifications = specs
}

func (s *productService) ListCategories() ([]models.Category, error) {
	return s.productRepo.ListCategories()
}

func (s *productService) ListBrands() ([]models.Brand, error) {
	return s.productRepo.ListBrands()
}

func (s *productService) ListWarehouses() ([]models.Warehouse, error) {
	return s.productRepo.ListWarehouses()
}

// CreateReview stores one review per user per product; the unique index
// backs that up.
func (s *productService) CreateReview(productSlug string, user *models.User, req *validation.CreateReviewRequest) (*models.ProductReview, error) {
	if user == nil {
		return nil, ErrPermissionDenied
	}
	product, err := s.GetProduct(productSlug)
	if err != nil {
		return nil, err
	}

	review := &models.ProductReview{
		ProductID:  product.ID,
		UserID:     user.ID,
		Rating:     req.Rating,
		Title:      req.Title,
		Content:    req.Content,
		IsApproved: true,
	}
	if err := s.productRepo.CreateReview(review); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateReview
		}
		return nil, fmt.Errorf("failed to create review: %w", err)
	}
	return review, nil
}
