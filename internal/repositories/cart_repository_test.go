package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"localconnect/models"
)

func sampleProduct(id, name string, price float64, location models.VendorLocation) models.Product {
	return models.Product{
		ID:            id,
		Name:          name,
		Category:      models.CategoryVegetables,
		Price:         price,
		Unit:          models.UnitKg,
		UnitIncrement: 0.25,
		Stock:         100,
		Location:      location,
	}
}

func TestCartAddAccumulatesQuantity(t *testing.T) {
	repo := NewCartRepository(testLogger())
	p := sampleProduct("p1", "Tomato", 50, models.LocationRoyapuram)

	repo.Add("customer", p, 0.5)
	repo.Add("customer", p, 0.25)

	items := repo.Items("customer")
	assert.Len(t, items, 1)
	assert.Equal(t, 0.75, items[0].Quantity)
}

func TestCartKeepsLinesPerProduct(t *testing.T) {
	repo := NewCartRepository(testLogger())

	repo.Add("customer", sampleProduct("p1", "Tomato", 50, models.LocationRoyapuram), 1)
	repo.Add("customer", sampleProduct("p2", "Carrot", 40, models.LocationTNagar), 2)

	items := repo.Items("customer")
	assert.Len(t, items, 2)
	assert.Equal(t, "p1", items[0].ID, "insertion order is preserved")
	assert.Equal(t, "p2", items[1].ID)
}

func TestCartRemoveDecrementsByOne(t *testing.T) {
	repo := NewCartRepository(testLogger())
	repo.Add("customer", sampleProduct("p1", "Tomato", 50, models.LocationRoyapuram), 3)

	repo.Remove("customer", "p1")
	items := repo.Items("customer")
	assert.Equal(t, 2.0, items[0].Quantity)
}

func TestCartRemoveDropsLineAtOneOrBelow(t *testing.T) {
	repo := NewCartRepository(testLogger())
	repo.Add("customer", sampleProduct("p1", "Tomato", 50, models.LocationRoyapuram), 0.75)

	repo.Remove("customer", "p1")
	assert.Empty(t, repo.Items("customer"))
}

func TestCartsAreIsolatedPerCustomer(t *testing.T) {
	repo := NewCartRepository(testLogger())
	repo.Add("alice", sampleProduct("p1", "Tomato", 50, models.LocationRoyapuram), 1)

	assert.Len(t, repo.Items("alice"), 1)
	assert.Empty(t, repo.Items("bob"))
}

func TestCartClear(t *testing.T) {
	repo := NewCartRepository(testLogger())
	repo.Add("customer", sampleProduct("p1", "Tomato", 50, models.LocationRoyapuram), 1)

	repo.Clear("customer")
	assert.Empty(t, repo.Items("customer"))
}
