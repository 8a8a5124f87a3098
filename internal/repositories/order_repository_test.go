package repositories

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"localconnect/models"
)

func sampleOrder(id string, location models.VendorLocation) models.Order {
	now := time.Now()
	item := models.CartItem{
		Product:  sampleProduct("p1", "Tomato", 50, location),
		Quantity: 1,
	}
	return models.Order{
		ID:                 id,
		Items:              []models.CartItem{item},
		Total:              50,
		CustomerName:       "customer",
		CustomerAddress:    "12 Beach Road",
		VendorLocation:     models.VendorCoordinates[location],
		VendorLocationName: location,
		PaymentMethod:      models.PaymentCOD,
		Status:             models.StatusOrderPlaced,
		Timestamp:          now,
		StatusUpdatedAt:    now,
	}
}

func TestOrderRepositoryAddAndGet(t *testing.T) {
	repo := NewOrderRepository(testLogger())

	require.NoError(t, repo.Add(sampleOrder("o1", models.LocationRoyapuram)))
	require.NoError(t, repo.Add(sampleOrder("o2", models.LocationTNagar)))

	orders, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "o2", orders[0].ID, "newest order first")

	got, err := repo.GetByID("o1")
	require.NoError(t, err)
	assert.Equal(t, models.LocationRoyapuram, got.VendorLocationName)

	_, err = repo.GetByID("nope")
	assert.ErrorContains(t, err, "not found")
}

func TestOrderRepositoryRejectsDuplicatesAndInvalid(t *testing.T) {
	repo := NewOrderRepository(testLogger())
	require.NoError(t, repo.Add(sampleOrder("o1", models.LocationRoyapuram)))

	assert.ErrorContains(t, repo.Add(sampleOrder("o1", models.LocationRoyapuram)), "already exists")

	empty := sampleOrder("o2", models.LocationRoyapuram)
	empty.Items = nil
	assert.ErrorContains(t, repo.Add(empty), "at least one item")

	badVendor := sampleOrder("o3", models.VendorLocation("mars"))
	assert.ErrorContains(t, repo.Add(badVendor), "unknown vendor location")
}

func TestOrderRepositoryFilters(t *testing.T) {
	repo := NewOrderRepository(testLogger())
	require.NoError(t, repo.Add(sampleOrder("o1", models.LocationRoyapuram)))

	other := sampleOrder("o2", models.LocationTNagar)
	other.CustomerName = "someone-else"
	require.NoError(t, repo.Add(other))

	byCustomer, err := repo.GetByCustomer("customer")
	require.NoError(t, err)
	require.Len(t, byCustomer, 1)
	assert.Equal(t, "o1", byCustomer[0].ID)

	byVendor, err := repo.GetByVendor(models.LocationTNagar)
	require.NoError(t, err)
	require.Len(t, byVendor, 1)
	assert.Equal(t, "o2", byVendor[0].ID)
}

func TestOrderRepositoryAdvanceStatusWalksLifecycle(t *testing.T) {
	repo := NewOrderRepository(testLogger())
	require.NoError(t, repo.Add(sampleOrder("o1", models.LocationRoyapuram)))

	expected := []models.OrderStatus{
		models.StatusPreparing,
		models.StatusOutForDelivery,
		models.StatusDelivered,
	}
	for _, want := range expected {
		status, moved, err := repo.AdvanceStatus("o1", time.Now())
		require.NoError(t, err)
		assert.True(t, moved)
		assert.Equal(t, want, status)
	}

	// Delivered is terminal
	status, moved, err := repo.AdvanceStatus("o1", time.Now())
	require.NoError(t, err)
	assert.False(t, moved)
	assert.Equal(t, models.StatusDelivered, status)

	_, _, err = repo.AdvanceStatus("ghost", time.Now())
	assert.ErrorContains(t, err, "not found")
}

func TestOrderRepositoryAdvanceStampsTransitionTime(t *testing.T) {
	repo := NewOrderRepository(testLogger())
	require.NoError(t, repo.Add(sampleOrder("o1", models.LocationRoyapuram)))

	stamp := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	_, _, err := repo.AdvanceStatus("o1", stamp)
	require.NoError(t, err)

	got, err := repo.GetByID("o1")
	require.NoError(t, err)
	assert.Equal(t, stamp, got.StatusUpdatedAt)
}

func TestOrderItemsAreSnapshots(t *testing.T) {
	repo := NewOrderRepository(testLogger())

	order := sampleOrder("o1", models.LocationRoyapuram)
	require.NoError(t, repo.Add(order))

	// Mutating the caller's slice must not touch the stored order
	order.Items[0].Quantity = 99

	got, err := repo.GetByID("o1")
	require.NoError(t, err)
	assert.Equal(t, 1.0, got.Items[0].Quantity)
}
