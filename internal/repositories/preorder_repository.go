package repositories

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"localconnect/models"
	"localconnect/pkg/logger"
)

type PreOrderRepositoryInterface interface {
	GetByCustomer(customerName string) []models.PreOrderItem
	GetByVendor(location models.VendorLocation) []models.PreOrderItem
	Add(productID, productName, customerName string, location models.VendorLocation) (*models.PreOrderItem, bool)
	Remove(productID, customerName string)
	Exists(productID, customerName string) bool
	UpdateStatus(preOrderID string, status models.PreOrderStatus) error
}

// PreOrderRepository holds pre-order requests in memory. At most one entry
// exists per (productID, customerName) pair.
type PreOrderRepository struct {
	items  []models.PreOrderItem
	mutex  sync.RWMutex
	logger *logger.Logger
}

// NewPreOrderRepository creates an empty pre-order store
func NewPreOrderRepository(log *logger.Logger) *PreOrderRepository {
	return &PreOrderRepository{
		logger: log.WithComponent("preorder_repository"),
	}
}

// Add records a pending pre-order unless the pair already exists; the
// second return reports whether a new entry was created.
func (r *PreOrderRepository) Add(productID, productName, customerName string, location models.VendorLocation) (*models.PreOrderItem, bool) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	for _, item := range r.items {
		if item.ProductID == productID && item.CustomerName == customerName {
			existing := item
			return &existing, false
		}
	}

	item := models.PreOrderItem{
		ID:             uuid.New().String()[:8],
		ProductID:      productID,
		ProductName:    productName,
		CustomerName:   customerName,
		VendorLocation: location,
		Status:         models.PreOrderPending,
	}
	r.items = append(r.items, item)
	r.logger.Info("Pre-order recorded",
		"preorder_id", item.ID,
		"product_id", productID,
		"customer", customerName,
		"vendor", location)
	return &item, true
}

// Remove drops the entry for the pair, if any
func (r *PreOrderRepository) Remove(productID, customerName string) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	for i, item := range r.items {
		if item.ProductID == productID && item.CustomerName == customerName {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return
		}
	}
}

// Exists reports whether the pair has a pre-order
func (r *PreOrderRepository) Exists(productID, customerName string) bool {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	for _, item := range r.items {
		if item.ProductID == productID && item.CustomerName == customerName {
			return true
		}
	}
	return false
}

// GetByCustomer returns the customer's pre-orders
func (r *PreOrderRepository) GetByCustomer(customerName string) []models.PreOrderItem {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	var items []models.PreOrderItem
	for _, item := range r.items {
		if item.CustomerName == customerName {
			items = append(items, item)
		}
	}
	return items
}

// GetByVendor returns the pre-orders aimed at a vendor location
func (r *PreOrderRepository) GetByVendor(location models.VendorLocation) []models.PreOrderItem {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	var items []models.PreOrderItem
	for _, item := range r.items {
		if item.VendorLocation == location {
			items = append(items, item)
		}
	}
	return items
}

// UpdateStatus applies a vendor decision. Only pending items can move, and
// only to accepted or rejected; both decisions are terminal.
func (r *PreOrderRepository) UpdateStatus(preOrderID string, status models.PreOrderStatus) error {
	if status != models.PreOrderAccepted && status != models.PreOrderRejected {
		return fmt.Errorf("invalid pre-order decision %q", status)
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	for i, item := range r.items {
		if item.ID != preOrderID {
			continue
		}
		if item.Status != models.PreOrderPending {
			r.logger.Warn("Ignored decision on non-pending pre-order",
				"preorder_id", preOrderID,
				"status", item.Status)
			return fmt.Errorf("pre-order %s is not pending", preOrderID)
		}
		r.items[i].Status = status
		r.logger.Info("Pre-order decided", "preorder_id", preOrderID, "status", status)
		return nil
	}

	return fmt.Errorf("pre-order with id %s not found", preOrderID)
}
