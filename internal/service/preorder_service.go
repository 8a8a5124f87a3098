package service

import (
	"fmt"

	"localconnect/internal/repositories"
	"localconnect/models"
	"localconnect/pkg/logger"
)

type PreOrderServiceInterface interface {
	RequestPreOrder(productID, customerName string) (*models.PreOrderItem, bool, error)
	CancelPreOrder(productID, customerName string) error
	GetCustomerPreOrders(customerName string) ([]models.PreOrderItem, error)
	GetVendorPreOrders(location models.VendorLocation) ([]models.PreOrderItem, error)
	DecidePreOrder(preOrderID string, accept bool) error
}

// PreOrderService lets customers reserve out-of-stock products and vendors
// accept or reject those reservations. Accepting a pre-order does not place
// an order; it only signals intent both ways.
type PreOrderService struct {
	preOrderRepo repositories.PreOrderRepositoryInterface
	productRepo  repositories.ProductRepositoryInterface
	logger       *logger.Logger
}

// NewPreOrderService creates a new PreOrderService
func NewPreOrderService(preOrderRepo repositories.PreOrderRepositoryInterface, productRepo repositories.ProductRepositoryInterface, log *logger.Logger) *PreOrderService {
	return &PreOrderService{
		preOrderRepo: preOrderRepo,
		productRepo:  productRepo,
		logger:       log.WithComponent("preorder_service"),
	}
}

// RequestPreOrder records a pre-order for an out-of-stock product. The bool
// return reports whether a new request was created; repeating a request is
// harmless and returns the existing one.
func (s *PreOrderService) RequestPreOrder(productID, customerName string) (*models.PreOrderItem, bool, error) {
	if productID == "" {
		return nil, false, fmt.Errorf("product ID is required")
	}
	if customerName == "" {
		return nil, false, fmt.Errorf("customer name is required")
	}

	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, false, err
	}
	if product.Stock > 0 {
		s.logger.Warn("Pre-order rejected: product in stock",
			"product_id", productID,
			"stock", product.Stock)
		return nil, false, fmt.Errorf("product %s is in stock", productID)
	}

	item, created := s.preOrderRepo.Add(productID, product.Name, customerName, product.Location)
	return item, created, nil
}

// CancelPreOrder withdraws the customer's pre-order for a product
func (s *PreOrderService) CancelPreOrder(productID, customerName string) error {
	if productID == "" {
		return fmt.Errorf("product ID is required")
	}
	if customerName == "" {
		return fmt.Errorf("customer name is required")
	}

	s.preOrderRepo.Remove(productID, customerName)
	s.logger.Info("Pre-order cancelled", "product_id", productID, "customer", customerName)
	return nil
}

// GetCustomerPreOrders lists a customer's pre-orders
func (s *PreOrderService) GetCustomerPreOrders(customerName string) ([]models.PreOrderItem, error) {
	if customerName == "" {
		return nil, fmt.Errorf("customer name is required")
	}
	return s.preOrderRepo.GetByCustomer(customerName), nil
}

// GetVendorPreOrders lists the pre-orders aimed at a vendor location
func (s *PreOrderService) GetVendorPreOrders(location models.VendorLocation) ([]models.PreOrderItem, error) {
	if !models.IsValidVendorLocation(location) {
		return nil, fmt.Errorf("unknown vendor location %q", location)
	}
	return s.preOrderRepo.GetByVendor(location), nil
}

// DecidePreOrder applies the vendor's accept/reject decision
func (s *PreOrderService) DecidePreOrder(preOrderID string, accept bool) error {
	if preOrderID == "" {
		return fmt.Errorf("pre-order ID is required")
	}

	status := models.PreOrderRejected
	if accept {
		status = models.PreOrderAccepted
	}
	return s.preOrderRepo.UpdateStatus(preOrderID, status)
}
