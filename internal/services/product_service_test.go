package services

import (
	"testing"

	"hardware_store/internal/models"
	"hardware_store/internal/repository"
	"hardware_store/internal/validation"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeProductRepo is an in-memory ProductRepository keyed by slug.
type fakeProductRepo struct {
	products   map[string]*models.Product
	warehouses []models.Warehouse
	reviews    map[[2]uint]*models.ProductReview // product ID, user ID
	nextID     uint
	deleted    []string
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{
		products: map[string]*models.Product{},
		reviews:  map[[2]uint]*models.ProductReview{},
		nextID:   1,
	}
}

func (r *fakeProductRepo) List(filter repository.ProductFilter) ([]models.Product, int64, error) {
	var out []models.Product
	for _, p := range r.products {
		if p.IsActive {
			out = append(out, *p)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeProductRepo) GetBySlug(slug string) (*models.Product, error) {
	p, ok := r.products[slug]
	if !ok || !p.IsActive {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *p
	return &copied, nil
}

func (r *fakeProductRepo) GetBySlugAny(slug string) (*models.Product, error) {
	p, ok := r.products[slug]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *p
	return &copied, nil
}

func (r *fakeProductRepo) CreateProduct(product *models.Product) error {
	if _, exists := r.products[product.Slug]; exists {
		return gorm.ErrDuplicatedKey
	}
	product.ID = r.nextID
	r.nextID++
	copied := *product
	r.products[product.Slug] = &copied
	return nil
}

func (r *fakeProductRepo) UpdateProduct(product *models.Product) error {
	for slug, p := range r.products {
		if p.ID == product.ID {
			delete(r.products, slug)
		} else if slug == product.Slug {
			return gorm.ErrDuplicatedKey
		}
	}
	copied := *product
	r.products[product.Slug] = &copied
	return nil
}

func (r *fakeProductRepo) DeleteProduct(product *models.Product) error {
	delete(r.products, product.Slug)
	r.deleted = append(r.deleted, product.Slug)
	return nil
}

func (r *fakeProductRepo) ListCategories() ([]models.Category, error) { return nil, nil }

func (r *fakeProductRepo) ListBrands() ([]models.Brand, error) { return nil, nil }

func (r *fakeProductRepo) ListWarehouses() ([]models.Warehouse, error) {
	return r.warehouses, nil
}

func (r *fakeProductRepo) CreateReview(review *models.ProductReview) error {
	key := [2]uint{review.ProductID, review.UserID}
	if _, exists := r.reviews[key]; exists {
		return gorm.ErrDuplicatedKey
	}
	r.reviews[key] = review
	return nil
}

func productRequest() *validation.ProductRequest {
	return &validation.ProductRequest{
		Name:       "Impact Driver 12V",
		Slug:       "impact-driver-12v",
		SKU:        "IMP-12V-001",
		CategoryID: 1,
		BrandID:    2,
		Price:      decimal.RequireFromString("320.00"),
		Specifications: []validation.ProductSpecificationRequest{
			{Label: "Voltage", Value: "12V", SpecType: "voltage", SortOrder: 1},
			{Label: "Chuck", Value: "1/4 in hex"},
		},
	}
}

func TestCreateProduct_StaffOnly(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewProductService(repo)

	_, err := svc.CreateProduct(nil, productRequest())
	require.ErrorIs(t, err, ErrPermissionDenied)

	_, err = svc.CreateProduct(customerUser(7), productRequest())
	require.ErrorIs(t, err, ErrPermissionDenied)

	assert.Empty(t, repo.products)
}

func TestCreateProduct_Success(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewProductService(repo)

	product, err := svc.CreateProduct(staffUser(), productRequest())
	require.NoError(t, err)

	assert.NotZero(t, product.ID)
	assert.Equal(t, "impact-driver-12v", product.Slug)
	assert.True(t, product.Price.Equal(decimal.RequireFromString("320.00")))

	// Unspecified flags fall back to storefront defaults.
	assert.True(t, product.TrackStock)
	assert.True(t, product.IsActive)

	require.Len(t, product.Specifications, 2)
	assert.Equal(t, "voltage", product.Specifications[0].SpecType)
	assert.Equal(t, "other", product.Specifications[1].SpecType)
}

func TestCreateProduct_ExplicitFlagsRespected(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewProductService(repo)

	off := false
	req := productRequest()
	req.TrackStock = &off
	req.IsActive = &off

	product, err := svc.CreateProduct(staffUser(), req)
	require.NoError(t, err)
	assert.False(t, product.TrackStock)
	assert.False(t, product.IsActive)
}

func TestCreateProduct_DuplicateSlug(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewProductService(repo)

	_, err := svc.CreateProduct(staffUser(), productRequest())
	require.NoError(t, err)

	_, err = svc.CreateProduct(staffUser(), productRequest())
	require.ErrorIs(t, err, ErrProductExists)
}

func TestUpdateProduct_ReplacesFieldsAndSpecifications(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewProductService(repo)

	_, err := svc.CreateProduct(staffUser(), productRequest())
	require.NoError(t, err)

	req := productRequest()
	req.Price = decimal.RequireFromString("299.00")
	req.Specifications = []validation.ProductSpecificationRequest{
		{Label: "Torque", Value: "135 Nm", SpecType: "power"},
	}

	updated, err := svc.UpdateProduct("impact-driver-12v", staffUser(), req)
	require.NoError(t, err)
	assert.True(t, updated.Price.Equal(decimal.RequireFromString("299.00")))
	require.Len(t, updated.Specifications, 1)
	assert.Equal(t, "Torque", updated.Specifications[0].Label)
}

func TestUpdateProduct_DeactivatedProductStillReachable(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewProductService(repo)

	off := false
	req := productRequest()
	req.IsActive = &off
	_, err := svc.CreateProduct(staffUser(), req)
	require.NoError(t, err)

	// Storefront lookup misses it, management lookup does not.
	_, err = svc.GetProduct("impact-driver-12v")
	require.ErrorIs(t, err, ErrProductNotFound)

	on := true
	req.IsActive = &on
	updated, err := svc.UpdateProduct("impact-driver-12v", staffUser(), req)
	require.NoError(t, err)
	assert.True(t, updated.IsActive)
}

func TestUpdateProduct_UnknownSlug(t *testing.T) {
	svc := NewProductService(newFakeProductRepo())

	_, err := svc.UpdateProduct("no-such-product", staffUser(), productRequest())
	require.ErrorIs(t, err, ErrProductNotFound)
}

func TestUpdateProduct_StaffOnly(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewProductService(repo)

	_, err := svc.CreateProduct(staffUser(), productRequest())
	require.NoError(t, err)

	_, err = svc.UpdateProduct("impact-driver-12v", customerUser(7), productRequest())
	require.ErrorIs(t, err, ErrPermissionDenied)
}

func TestDeleteProduct(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewProductService(repo)

	_, err := svc.CreateProduct(staffUser(), productRequest())
	require.NoError(t, err)

	require.ErrorIs(t, svc.DeleteProduct("impact-driver-12v", customerUser(7)), ErrPermissionDenied)
	assert.Empty(t, repo.deleted)

	require.NoError(t, svc.DeleteProduct("impact-driver-12v", staffUser()))
	assert.Equal(t, []string{"impact-driver-12v"}, repo.deleted)

	require.ErrorIs(t, svc.DeleteProduct("impact-driver-12v", staffUser()), ErrProductNotFound)
}

func TestListWarehouses(t *testing.T) {
	repo := newFakeProductRepo()
	repo.warehouses = []models.Warehouse{{ID: 1, Name: "Tema Warehouse", Code: "TEMA"}}
	svc := NewProductService(repo)

	warehouses, err := svc.ListWarehouses()
	require.NoError(t, err)
	require.Len(t, warehouses, 1)
	assert.Equal(t, "TEMA", warehouses[0].Code)
}

func TestCreateReview_OnePerUserPerProduct(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewProductService(repo)

	_, err := svc.CreateProduct(staffUser(), productRequest())
	require.NoError(t, err)

	req := &validation.CreateReviewRequest{Rating: 5, Title: "Solid driver"}

	_, err = svc.CreateReview("impact-driver-12v", nil, req)
	require.ErrorIs(t, err, ErrPermissionDenied)

	review, err := svc.CreateReview("impact-driver-12v", customerUser(7), req)
	require.NoError(t, err)
	assert.Equal(t, 5, review.Rating)

	_, err = svc.CreateReview("impact-driver-12v", customerUser(7), req)
	require.ErrorIs(t, err, ErrDuplicateReview)
}
