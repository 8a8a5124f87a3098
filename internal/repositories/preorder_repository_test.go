package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"localconnect/models"
)

func TestPreOrderAddIsIdempotentPerPair(t *testing.T) {
	repo := NewPreOrderRepository(testLogger())

	first, created := repo.Add("p1", "Mangoes", "customer", models.LocationRoyapuram)
	assert.True(t, created)
	assert.Equal(t, models.PreOrderPending, first.Status)

	second, created := repo.Add("p1", "Mangoes", "customer", models.LocationRoyapuram)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)

	assert.Len(t, repo.GetByCustomer("customer"), 1)
}

func TestPreOrderRemoveAndExists(t *testing.T) {
	repo := NewPreOrderRepository(testLogger())
	repo.Add("p1", "Mangoes", "customer", models.LocationRoyapuram)

	assert.True(t, repo.Exists("p1", "customer"))
	repo.Remove("p1", "customer")
	assert.False(t, repo.Exists("p1", "customer"))
}

func TestPreOrderVendorScope(t *testing.T) {
	repo := NewPreOrderRepository(testLogger())
	repo.Add("p1", "Mangoes", "alice", models.LocationRoyapuram)
	repo.Add("p2", "Grapes", "bob", models.LocationTNagar)

	royapuram := repo.GetByVendor(models.LocationRoyapuram)
	require.Len(t, royapuram, 1)
	assert.Equal(t, "p1", royapuram[0].ProductID)
}

func TestPreOrderDecisionsAreTerminal(t *testing.T) {
	repo := NewPreOrderRepository(testLogger())
	item, _ := repo.Add("p1", "Mangoes", "customer", models.LocationRoyapuram)

	require.NoError(t, repo.UpdateStatus(item.ID, models.PreOrderAccepted))

	got := repo.GetByCustomer("customer")
	require.Len(t, got, 1)
	assert.Equal(t, models.PreOrderAccepted, got[0].Status)

	// A decided pre-order cannot be decided again
	assert.ErrorContains(t, repo.UpdateStatus(item.ID, models.PreOrderRejected), "not pending")
}

func TestPreOrderDecisionValidation(t *testing.T) {
	repo := NewPreOrderRepository(testLogger())
	item, _ := repo.Add("p1", "Mangoes", "customer", models.LocationRoyapuram)

	assert.ErrorContains(t, repo.UpdateStatus(item.ID, models.PreOrderPending), "invalid pre-order decision")
	assert.ErrorContains(t, repo.UpdateStatus("ghost", models.PreOrderAccepted), "not found")
}

func TestFavoritesAddRemoveIdempotent(t *testing.T) {
	repo := NewFavoritesRepository(testLogger())

	assert.True(t, repo.Add("p1", "customer"))
	assert.False(t, repo.Add("p1", "customer"), "re-adding is a no-op")
	assert.True(t, repo.Exists("p1", "customer"))
	assert.Len(t, repo.GetByCustomer("customer"), 1)

	repo.Remove("p1", "customer")
	assert.False(t, repo.Exists("p1", "customer"))
	repo.Remove("p1", "customer")
}
