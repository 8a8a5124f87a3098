package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"localconnect/internal/repositories"
	"localconnect/models"
	"localconnect/pkg/kvstore"
)

func newPreOrderFixture(t *testing.T) (*PreOrderService, *repositories.ProductRepository) {
	t.Helper()
	log := testLogger()
	productRepo := repositories.NewProductRepository(kvstore.NewMemoryStore(), log)
	preOrderRepo := repositories.NewPreOrderRepository(log)
	return NewPreOrderService(preOrderRepo, productRepo, log), productRepo
}

func markOutOfStock(t *testing.T, repo *repositories.ProductRepository, id string) {
	t.Helper()
	product, err := repo.GetByID(id)
	require.NoError(t, err)
	product.Stock = 0
	require.NoError(t, repo.Update(id, *product))
}

func TestPreOrderOnlyForOutOfStockProducts(t *testing.T) {
	svc, productRepo := newPreOrderFixture(t)

	_, _, err := svc.RequestPreOrder("13", "customer")
	assert.ErrorContains(t, err, "in stock")

	markOutOfStock(t, productRepo, "13")
	item, created, err := svc.RequestPreOrder("13", "customer")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, models.PreOrderPending, item.Status)
	assert.Equal(t, "Milk (Full Cream)", item.ProductName)
	assert.Equal(t, models.LocationRoyapuram, item.VendorLocation)
}

func TestPreOrderRepeatReturnsExisting(t *testing.T) {
	svc, productRepo := newPreOrderFixture(t)
	markOutOfStock(t, productRepo, "13")

	first, created, err := svc.RequestPreOrder("13", "customer")
	require.NoError(t, err)
	require.True(t, created)

	second, created, err := svc.RequestPreOrder("13", "customer")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
}

func TestPreOrderVendorDecision(t *testing.T) {
	svc, productRepo := newPreOrderFixture(t)
	markOutOfStock(t, productRepo, "13")

	item, _, err := svc.RequestPreOrder("13", "customer")
	require.NoError(t, err)

	require.NoError(t, svc.DecidePreOrder(item.ID, true))

	items, err := svc.GetCustomerPreOrders("customer")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, models.PreOrderAccepted, items[0].Status)

	assert.ErrorContains(t, svc.DecidePreOrder(item.ID, false), "not pending")
}

func TestPreOrderUnknownProduct(t *testing.T) {
	svc, _ := newPreOrderFixture(t)

	_, _, err := svc.RequestPreOrder("ghost", "customer")
	assert.ErrorContains(t, err, "not found")
}
