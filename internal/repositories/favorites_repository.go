package repositories

import (
	"sync"

	"localconnect/models"
	"localconnect/pkg/logger"
)

type FavoritesRepositoryInterface interface {
	GetByCustomer(customerName string) []models.FavoriteItem
	Add(productID, customerName string) bool
	Remove(productID, customerName string)
	Exists(productID, customerName string) bool
}

// FavoritesRepository is a plain (product, customer) relation set.
type FavoritesRepository struct {
	items  []models.FavoriteItem
	mutex  sync.RWMutex
	logger *logger.Logger
}

// NewFavoritesRepository creates an empty favorites store
func NewFavoritesRepository(log *logger.Logger) *FavoritesRepository {
	return &FavoritesRepository{
		logger: log.WithComponent("favorites_repository"),
	}
}

// Add records the pair; adding an existing pair is a no-op. The return
// reports whether a new entry was created.
func (r *FavoritesRepository) Add(productID, customerName string) bool {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	for _, item := range r.items {
		if item.ProductID == productID && item.CustomerName == customerName {
			return false
		}
	}
	r.items = append(r.items, models.FavoriteItem{ProductID: productID, CustomerName: customerName})
	return true
}

// Remove drops the pair, if present
func (r *FavoritesRepository) Remove(productID, customerName string) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	for i, item := range r.items {
		if item.ProductID == productID && item.CustomerName == customerName {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return
		}
	}
}

// Exists reports membership
func (r *FavoritesRepository) Exists(productID, customerName string) bool {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	for _, item := range r.items {
		if item.ProductID == productID && item.CustomerName == customerName {
			return true
		}
	}
	return false
}

// GetByCustomer returns the customer's favorites
func (r *FavoritesRepository) GetByCustomer(customerName string) []models.FavoriteItem {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	var items []models.FavoriteItem
	for _, item := range r.items {
		if item.CustomerName == customerName {
			items = append(items, item)
		}
	}
	return items
}
