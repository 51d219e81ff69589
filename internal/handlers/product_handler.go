package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"hardware_store/internal/middleware"
	"hardware_store/internal/repository"
	"hardware_store/internal/services"
	"hardware_store/internal/validation"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

type ProductHandler struct {
	productService services.ProductService
	validate       *validatorv10.Validate
}

func NewProductHandler(productService services.ProductService, validate *validatorv10.Validate) *ProductHandler {
	return &ProductHandler{productService: productService, validate: validate}
}

func (h *ProductHandler) List(c *gin.Context) {
	filter := repository.ProductFilter{
		CategorySlug: c.Query("category_slug"),
		BrandSlug:    c.Query("brand_slug"),
		Condition:    c.Query("condition"),
		Search:       c.Query("search"),
		InStock:      c.Query("in_stock") == "true",
		Featured:     c.Query("is_featured") == "true",
		Ordering:     c.Query("ordering"),
	}

	if v := c.Query("min_price"); v != "" {
		if d, err := decimal.NewFromString(v); err == nil {
			filter.MinPrice = &d
		}
	}
	if v := c.Query("max_price"); v != "" {
		if d, err := decimal.NewFromString(v); err == nil {
			filter.MaxPrice = &d
		}
	}
	if v := c.Query("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filter.Page = n
		}
	}
	if v := c.Query("page_size"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filter.PageSize = n
		}
	}

	products, total, err := h.productService.ListProducts(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list products"})
		return
	}

	results := make([]gin.H, 0, len(products))
	for i := range products {
		p := &products[i]
		results = append(results, gin.H{
			"id":                  p.ID,
			"name":                p.Name,
			"slug":                p.Slug,
			"short_description":   p.ShortDescription,
			"sku":                 p.SKU,
			"category":            p.Category,
			"brand":               p.Brand,
			"price":               p.Price,
			"compare_price":       p.ComparePrice,
			"condition":           p.Condition,
			"image_url":           p.ImageURL,
			"images":              p.Images,
			"is_in_stock":         p.IsInStock(),
			"is_low_stock":        p.IsLowStock(),
			"discount_percentage": p.DiscountPercentage(),
			"is_featured":         p.IsFeatured,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"count":   total,
		"results": results,
	})
}

func (h *ProductHandler) Detail(c *gin.Context) {
	product, err := h.productService.GetProduct(c.Param("slug"))
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":                  product.ID,
		"name":                product.Name,
		"slug":                product.Slug,
		"description":         product.Description,
		"short_description":   product.ShortDescription,
		"sku":                 product.SKU,
		"barcode":             product.Barcode,
		"category":            product.Category,
		"brand":               product.Brand,
		"price":               product.Price,
		"compare_price":       product.ComparePrice,
		"condition":           product.Condition,
		"weight":              product.Weight,
		"dimensions":          product.Dimensions,
		"image_url":           product.ImageURL,
		"images":              product.Images,
		"specifications":      product.Specifications,
		"warehouse_stock":     product.WarehouseStock,
		"reviews":             product.Reviews,
		"stock_quantity":      product.StockQuantity,
		"is_in_stock":         product.IsInStock(),
		"is_low_stock":        product.IsLowStock(),
		"discount_percentage": product.DiscountPercentage(),
		"is_featured":         product.IsFeatured,
		"created_at":          product.CreatedAt,
	})
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req validation.ProductRequest
	if err := validation.BindAndValidate(c, &req, h.validate); err != nil {
		return
	}

	product, err := h.productService.CreateProduct(middleware.CurrentUser(c), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPermissionDenied):
			c.JSON(http.StatusForbidden, gin.H{"error": "Permission denied"})
		case errors.Is(err, services.ErrProductExists):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create product"})
		}
		return
	}

	c.JSON(http.StatusCreated, product)
}

func (h *ProductHandler) Update(c *gin.Context) {
	var req validation.ProductRequest
	if err := validation.BindAndValidate(c, &req, h.validate); err != nil {
		return
	}

	product, err := h.productService.UpdateProduct(c.Param("slug"), middleware.CurrentUser(c), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPermissionDenied):
			c.JSON(http.StatusForbidden, gin.H{"error": "Permission denied"})
		case errors.Is(err, services.ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		case errors.Is(err, services.ErrProductExists):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update product"})
		}
		return
	}

	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	err := h.productService.DeleteProduct(c.Param("slug"), middleware.CurrentUser(c))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPermissionDenied):
			c.JSON(http.StatusForbidden, gin.H{"error": "Permission denied"})
		case errors.Is(err, services.ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete product"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ProductHandler) ListCategories(c *gin.Context) {
	categories, err := h.productService.ListCategories()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list categories"})
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *ProductHandler) ListBrands(c *gin.Context) {
	brands, err := h.productService.ListBrands()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list brands"})
		return
	}
	c.JSON(http.StatusOK, brands)
}

func (h *ProductHandler) ListWarehouses(c *gin.Context) {
	warehouses, err := h.productService.ListWarehouses()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list warehouses"})
		return
	}
	c.JSON(http.StatusOK, warehouses)
}

func (h *ProductHandler) CreateReview(c *gin.Context) {
	var req validation.CreateReviewRequest
	if err := validation.BindAndValidate(c, &req, h.validate); err != nil {
		return
	}

	review, err := h.productService.CreateReview(c.Param("slug"), middleware.CurrentUser(c), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		case errors.Is(err, services.ErrDuplicateReview):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create review"})
		}
		return
	}

	c.JSON(http.StatusCreated, review)
}
