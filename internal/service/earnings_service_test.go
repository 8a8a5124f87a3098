package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"localconnect/internal/repositories"
	"localconnect/models"
)

func placeOrder(t *testing.T, repo *repositories.OrderRepository, id string, location models.VendorLocation, day time.Time, items []models.CartItem) {
	t.Helper()

	total := 0.0
	for _, item := range items {
		total += item.LineTotal()
	}
	order := models.Order{
		ID:                 id,
		Items:              items,
		Total:              total,
		CustomerName:       "customer",
		CustomerAddress:    "12 Beach Road",
		VendorLocation:     models.VendorCoordinates[location],
		VendorLocationName: location,
		PaymentMethod:      models.PaymentCOD,
		Status:             models.StatusOrderPlaced,
		Timestamp:          day,
		StatusUpdatedAt:    day,
	}
	require.NoError(t, repo.Add(order))
}

func line(id, name string, price, quantity float64) models.CartItem {
	return models.CartItem{
		Product: models.Product{
			ID:       id,
			Name:     name,
			Category: models.CategoryVegetables,
			Price:    price,
			Unit:     models.UnitKg,
			Location: models.LocationRoyapuram,
		},
		Quantity: quantity,
	}
}

func TestEarningsReportAggregatesVendorOrders(t *testing.T) {
	log := testLogger()
	orderRepo := repositories.NewOrderRepository(log)
	svc := NewEarningsService(orderRepo, log)

	day1 := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)

	placeOrder(t, orderRepo, "o1", models.LocationRoyapuram, day1, []models.CartItem{
		line("p1", "Tomato", 50, 2),
		line("p2", "Carrot", 40, 1),
	})
	placeOrder(t, orderRepo, "o2", models.LocationRoyapuram, day2, []models.CartItem{
		line("p1", "Tomato", 50, 1),
	})
	// Another vendor's order stays out of the report
	placeOrder(t, orderRepo, "o3", models.LocationTNagar, day1, []models.CartItem{
		line("p9", "Milk", 60, 5),
	})

	report, err := svc.GetEarningsReport(models.LocationRoyapuram)
	require.NoError(t, err)

	assert.Equal(t, models.LocationRoyapuram, report.VendorLocation)
	assert.Equal(t, 2, report.OrderCount)
	assert.Equal(t, 190.0, report.TotalRevenue)

	require.Len(t, report.SalesByProduct, 2)
	assert.Equal(t, "Tomato", report.SalesByProduct[0].Name, "sorted by revenue")
	assert.Equal(t, 3.0, report.SalesByProduct[0].Quantity)
	assert.Equal(t, 150.0, report.SalesByProduct[0].Revenue)
	assert.Equal(t, 40.0, report.SalesByProduct[1].Revenue)

	assert.Equal(t, 140.0, report.SalesOverTime["2025-06-01"])
	assert.Equal(t, 50.0, report.SalesOverTime["2025-06-02"])
}

func TestEarningsReportUsesOfferPrices(t *testing.T) {
	log := testLogger()
	orderRepo := repositories.NewOrderRepository(log)
	svc := NewEarningsService(orderRepo, log)

	discounted := line("p1", "Milk (Full Cream)", 65, 2)
	discounted.Offer = &models.Offer{Percentage: 5, NewPrice: 61.75}
	placeOrder(t, orderRepo, "o1", models.LocationRoyapuram,
		time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
		[]models.CartItem{discounted})

	report, err := svc.GetEarningsReport(models.LocationRoyapuram)
	require.NoError(t, err)
	assert.Equal(t, 123.50, report.TotalRevenue)
	assert.Equal(t, 123.50, report.SalesByProduct[0].Revenue)
}

func TestEarningsReportEmptyVendor(t *testing.T) {
	log := testLogger()
	svc := NewEarningsService(repositories.NewOrderRepository(log), log)

	report, err := svc.GetEarningsReport(models.LocationSaidapetu)
	require.NoError(t, err)
	assert.Equal(t, 0, report.OrderCount)
	assert.Equal(t, 0.0, report.TotalRevenue)
	assert.Empty(t, report.SalesByProduct)

	_, err = svc.GetEarningsReport("atlantis")
	assert.ErrorContains(t, err, "unknown vendor location")
}
