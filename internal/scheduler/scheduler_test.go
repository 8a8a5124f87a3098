package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"localconnect/internal/repositories"
	"localconnect/models"
	"localconnect/pkg/logger"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) advance(d time.Duration) { c.now = c.now.Add(d) }

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Level: logger.LevelError, Format: "text", Output: "stderr"})
}

func placedOrder(id string, placedAt time.Time) models.Order {
	item := models.CartItem{
		Product: models.Product{
			ID:       "p1",
			Name:     "Tomato",
			Category: models.CategoryVegetables,
			Price:    50,
			Unit:     models.UnitKg,
			Location: models.LocationRoyapuram,
		},
		Quantity: 1,
	}
	return models.Order{
		ID:                 id,
		Items:              []models.CartItem{item},
		Total:              50,
		CustomerName:       "customer",
		CustomerAddress:    "12 Beach Road",
		VendorLocation:     models.VendorCoordinates[models.LocationRoyapuram],
		VendorLocationName: models.LocationRoyapuram,
		PaymentMethod:      models.PaymentCOD,
		Status:             models.StatusOrderPlaced,
		Timestamp:          placedAt,
		StatusUpdatedAt:    placedAt,
	}
}

func orderStatus(t *testing.T, repo *repositories.OrderRepository, id string) models.OrderStatus {
	t.Helper()
	order, err := repo.GetByID(id)
	require.NoError(t, err)
	return order.Status
}

func TestSweepAdvancesOrdersOneStagePerInterval(t *testing.T) {
	repo := repositories.NewOrderRepository(testLogger())
	clock := &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	s := NewDeliveryScheduler(repo, 15*time.Second, clock, testLogger())

	require.NoError(t, repo.Add(placedOrder("o1", clock.now)))

	// Before a full interval has elapsed nothing moves
	clock.advance(5 * time.Second)
	s.Sweep()
	assert.Equal(t, models.StatusOrderPlaced, orderStatus(t, repo, "o1"))

	clock.advance(10 * time.Second)
	s.Sweep()
	assert.Equal(t, models.StatusPreparing, orderStatus(t, repo, "o1"))

	// A single sweep never skips stages, no matter how late it runs
	clock.advance(10 * time.Minute)
	s.Sweep()
	assert.Equal(t, models.StatusOutForDelivery, orderStatus(t, repo, "o1"))

	clock.advance(15 * time.Second)
	s.Sweep()
	assert.Equal(t, models.StatusDelivered, orderStatus(t, repo, "o1"))

	// Delivered is terminal
	clock.advance(time.Hour)
	s.Sweep()
	assert.Equal(t, models.StatusDelivered, orderStatus(t, repo, "o1"))
}

func TestSweepHandlesOrdersIndependently(t *testing.T) {
	repo := repositories.NewOrderRepository(testLogger())
	clock := &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	s := NewDeliveryScheduler(repo, 15*time.Second, clock, testLogger())

	require.NoError(t, repo.Add(placedOrder("old", clock.now)))
	clock.advance(15 * time.Second)
	require.NoError(t, repo.Add(placedOrder("fresh", clock.now)))

	s.Sweep()
	assert.Equal(t, models.StatusPreparing, orderStatus(t, repo, "old"))
	assert.Equal(t, models.StatusOrderPlaced, orderStatus(t, repo, "fresh"))

	clock.advance(15 * time.Second)
	s.Sweep()
	assert.Equal(t, models.StatusOutForDelivery, orderStatus(t, repo, "old"))
	assert.Equal(t, models.StatusPreparing, orderStatus(t, repo, "fresh"))
}

func TestSweepOnEmptyRepositoryIsQuiet(t *testing.T) {
	repo := repositories.NewOrderRepository(testLogger())
	s := NewDeliveryScheduler(repo, 15*time.Second, &fakeClock{now: time.Now()}, testLogger())
	s.Sweep()
}
