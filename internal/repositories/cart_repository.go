package repositories

import (
	"sync"

	"localconnect/models"
	"localconnect/pkg/logger"
)

type CartRepositoryInterface interface {
	Items(customerName string) []models.CartItem
	Add(customerName string, product models.Product, quantity float64)
	Remove(customerName string, productID string)
	Clear(customerName string)
}

// CartRepository keeps one cart per customer session, in memory only.
// Each line is unique per product ID; adding an already-present product
// accumulates its quantity.
type CartRepository struct {
	carts  map[string][]models.CartItem
	mutex  sync.RWMutex
	logger *logger.Logger
}

// NewCartRepository creates an empty cart store
func NewCartRepository(log *logger.Logger) *CartRepository {
	return &CartRepository{
		carts:  make(map[string][]models.CartItem),
		logger: log.WithComponent("cart_repository"),
	}
}

// Items returns a copy of the customer's cart lines in insertion order
func (r *CartRepository) Items(customerName string) []models.CartItem {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	items := make([]models.CartItem, len(r.carts[customerName]))
	copy(items, r.carts[customerName])
	return items
}

// Add accumulates quantity on an existing line or appends a new one
func (r *CartRepository) Add(customerName string, product models.Product, quantity float64) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	cart := r.carts[customerName]
	for i := range cart {
		if cart[i].ID == product.ID {
			cart[i].Quantity += quantity
			r.logger.Debug("Accumulated cart line",
				"customer", customerName,
				"product_id", product.ID,
				"quantity", cart[i].Quantity)
			return
		}
	}

	r.carts[customerName] = append(cart, models.CartItem{Product: product, Quantity: quantity})
	r.logger.Debug("Added cart line",
		"customer", customerName,
		"product_id", product.ID,
		"quantity", quantity)
}

// Remove decrements a line's quantity by exactly 1; a line at quantity 1 or
// below is dropped entirely. The decrement is a fixed 1 regardless of the
// product's unit increment, matching the storefront's observed behavior for
// fractional kg/L lines.
func (r *CartRepository) Remove(customerName string, productID string) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	cart := r.carts[customerName]
	for i := range cart {
		if cart[i].ID != productID {
			continue
		}
		if cart[i].Quantity > 1 {
			cart[i].Quantity -= 1
		} else {
			r.carts[customerName] = append(cart[:i], cart[i+1:]...)
		}
		return
	}
}

// Clear empties the customer's cart
func (r *CartRepository) Clear(customerName string) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	delete(r.carts, customerName)
	r.logger.Debug("Cleared cart", "customer", customerName)
}
