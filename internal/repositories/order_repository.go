package repositories

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"localconnect/models"
	"localconnect/pkg/logger"
)

type OrderRepositoryInterface interface {
	GetAll() ([]models.Order, error)
	GetByID(id string) (*models.Order, error)
	GetByCustomer(customerName string) ([]models.Order, error)
	GetByVendor(location models.VendorLocation) ([]models.Order, error)
	Add(order models.Order) error
	AdvanceStatus(id string, now time.Time) (models.OrderStatus, bool, error)
}

// OrderRepository holds all placed orders for the session, newest first.
// Orders are stored and returned by value: items are snapshots, so later
// catalog or cart mutations never affect order history. Only Status (and
// its transition time) ever changes after placement.
type OrderRepository struct {
	orders []models.Order
	mutex  sync.RWMutex
	logger *logger.Logger
}

// NewOrderRepository creates an empty in-memory order store
func NewOrderRepository(log *logger.Logger) *OrderRepository {
	return &OrderRepository{
		logger: log.WithComponent("order_repository"),
	}
}

// Add prepends a new order, newest first
func (r *OrderRepository) Add(order models.Order) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if err := r.validateOrder(order); err != nil {
		r.logger.Error("Failed to validate order", "error", err, "order_id", order.ID)
		return err
	}

	for _, existing := range r.orders {
		if existing.ID == order.ID {
			r.logger.Warn("Attempted to add duplicate order", "order_id", order.ID)
			return fmt.Errorf("order with id %s already exists", order.ID)
		}
	}

	// Defensive copy of the item slice so the caller's cart cannot alias it
	items := make([]models.CartItem, len(order.Items))
	copy(items, order.Items)
	order.Items = items

	r.orders = append([]models.Order{order}, r.orders...)
	r.logger.Info("Added new order",
		"order_id", order.ID,
		"customer", order.CustomerName,
		"vendor", order.VendorLocationName,
		"total", order.Total)
	return nil
}

// GetAll retrieves all orders, newest first
func (r *OrderRepository) GetAll() ([]models.Order, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	orders := make([]models.Order, len(r.orders))
	copy(orders, r.orders)
	return orders, nil
}

// GetByID retrieves a single order by ID
func (r *OrderRepository) GetByID(id string) (*models.Order, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	for _, order := range r.orders {
		if order.ID == id {
			orderCopy := order
			return &orderCopy, nil
		}
	}
	r.logger.Warn("Order not found", "order_id", id)
	return nil, fmt.Errorf("order with id %s not found", id)
}

// GetByCustomer retrieves the orders placed by a customer, newest first
func (r *OrderRepository) GetByCustomer(customerName string) ([]models.Order, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	var orders []models.Order
	for _, order := range r.orders {
		if order.CustomerName == customerName {
			orders = append(orders, order)
		}
	}
	return orders, nil
}

// GetByVendor retrieves the orders destined for a vendor location, newest first
func (r *OrderRepository) GetByVendor(location models.VendorLocation) ([]models.Order, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	var orders []models.Order
	for _, order := range r.orders {
		if order.VendorLocationName == location {
			orders = append(orders, order)
		}
	}
	return orders, nil
}

// AdvanceStatus moves an order one stage forward in its lifecycle and
// stamps the transition time. Terminal orders are left untouched and
// reported as not advanced. Stages are never skipped.
func (r *OrderRepository) AdvanceStatus(id string, now time.Time) (models.OrderStatus, bool, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	for i := range r.orders {
		if r.orders[i].ID != id {
			continue
		}

		next, ok := models.NextStatus(r.orders[i].Status)
		if !ok {
			return r.orders[i].Status, false, nil
		}

		r.orders[i].Status = next
		r.orders[i].StatusUpdatedAt = now
		r.logger.Info("Order status advanced", "order_id", id, "status", next)
		return next, true, nil
	}

	r.logger.Warn("Attempted to advance non-existent order", "order_id", id)
	return "", false, fmt.Errorf("order with id %s not found", id)
}

// validateOrder validates order data before it enters the store
func (r *OrderRepository) validateOrder(order models.Order) error {
	if order.ID == "" {
		return errors.New("order ID cannot be empty")
	}
	if order.CustomerName == "" {
		return errors.New("customer name cannot be empty")
	}
	if len(order.Items) == 0 {
		return errors.New("order must have at least one item")
	}
	if !models.IsValidVendorLocation(order.VendorLocationName) {
		return fmt.Errorf("unknown vendor location %q", order.VendorLocationName)
	}

	for i, item := range order.Items {
		if item.ID == "" {
			return fmt.Errorf("item %d: product ID cannot be empty", i+1)
		}
		if item.Quantity <= 0 {
			return fmt.Errorf("item %d: quantity must be positive", i+1)
		}
	}
	return nil
}
