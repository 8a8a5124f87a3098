package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"localconnect/internal/repositories"
	"localconnect/models"
	"localconnect/pkg/kvstore"
)

func newCatalogService(t *testing.T) (*CatalogService, *repositories.ProductRepository) {
	t.Helper()
	log := testLogger()
	repo := repositories.NewProductRepository(kvstore.NewMemoryStore(), log)
	return NewCatalogService(repo, log), repo
}

func validProductRequest() ProductRequest {
	return ProductRequest{
		Name:          "Spinach",
		Category:      models.CategoryVegetables,
		Price:         25,
		Unit:          models.UnitKg,
		UnitIncrement: 0.25,
		Stock:         40,
		Location:      models.LocationTNagar,
	}
}

func TestCatalogAddAssignsID(t *testing.T) {
	svc, _ := newCatalogService(t)

	result, err := svc.AddProduct(validProductRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, result.Product.ID)
	assert.False(t, result.CategoryCoerced)

	got, err := svc.GetProduct(result.Product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Spinach", got.Name)
}

func TestCatalogAddCoercesUnknownCategory(t *testing.T) {
	svc, _ := newCatalogService(t)

	req := validProductRequest()
	req.Category = "electronics"

	result, err := svc.AddProduct(req)
	require.NoError(t, err)
	assert.True(t, result.CategoryCoerced)
	assert.Equal(t, models.CategoryVegetables, result.Product.Category)
}

func TestCatalogAddValidation(t *testing.T) {
	svc, _ := newCatalogService(t)

	req := validProductRequest()
	req.Name = "   "
	_, err := svc.AddProduct(req)
	assert.ErrorContains(t, err, "name is required")

	req = validProductRequest()
	req.Price = -1
	_, err = svc.AddProduct(req)
	assert.ErrorContains(t, err, "negative")

	req = validProductRequest()
	req.Unit = "barrels"
	_, err = svc.AddProduct(req)
	assert.ErrorContains(t, err, "invalid unit")

	req = validProductRequest()
	req.Location = "mars"
	_, err = svc.AddProduct(req)
	assert.ErrorContains(t, err, "unknown vendor location")
}

func TestCatalogUpdateKeepsID(t *testing.T) {
	svc, _ := newCatalogService(t)

	req := validProductRequest()
	req.Price = 35
	result, err := svc.UpdateProduct("1", req)
	require.NoError(t, err)
	assert.Equal(t, "1", result.Product.ID)
	assert.Equal(t, 35.0, result.Product.Price)
}

func TestCatalogListByLocation(t *testing.T) {
	svc, _ := newCatalogService(t)

	products, err := svc.ListByLocation(models.LocationRoyapuram)
	require.NoError(t, err)
	assert.NotEmpty(t, products)
	for _, p := range products {
		assert.Equal(t, models.LocationRoyapuram, p.Location)
	}

	_, err = svc.ListByLocation("atlantis")
	assert.ErrorContains(t, err, "unknown vendor location")
}

func TestCatalogResetRestoresSeed(t *testing.T) {
	svc, _ := newCatalogService(t)

	require.NoError(t, svc.DeleteProduct("1"))
	require.NoError(t, svc.ResetProducts())

	products, err := svc.ListProducts()
	require.NoError(t, err)
	assert.Len(t, products, 26)
}
