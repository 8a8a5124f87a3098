package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextStatusWalksSequence(t *testing.T) {
	next, ok := NextStatus(StatusOrderPlaced)
	assert.True(t, ok)
	assert.Equal(t, StatusPreparing, next)

	next, ok = NextStatus(StatusPreparing)
	assert.True(t, ok)
	assert.Equal(t, StatusOutForDelivery, next)

	next, ok = NextStatus(StatusOutForDelivery)
	assert.True(t, ok)
	assert.Equal(t, StatusDelivered, next)
}

func TestNextStatusTerminal(t *testing.T) {
	next, ok := NextStatus(StatusDelivered)
	assert.False(t, ok)
	assert.Equal(t, StatusDelivered, next)

	_, ok = NextStatus(OrderStatus("bogus"))
	assert.False(t, ok)
}

func TestCartItemLineTotalUsesOffer(t *testing.T) {
	item := CartItem{
		Product: Product{
			Price: 65,
			Offer: &Offer{Percentage: 5, NewPrice: 61.75},
		},
		Quantity: 2,
	}
	assert.Equal(t, 123.50, item.LineTotal())

	item.Offer = nil
	assert.Equal(t, 130.0, item.LineTotal())
}

func TestEnsureValidCategory(t *testing.T) {
	assert.Equal(t, CategoryDairy, EnsureValidCategory(CategoryDairy))
	assert.Equal(t, CategoryVegetables, EnsureValidCategory("gadgets"))
	assert.Equal(t, CategoryVegetables, EnsureValidCategory(""))
}
