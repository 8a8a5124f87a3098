package service

import (
	"fmt"

	"localconnect/internal/repositories"
	"localconnect/models"
	"localconnect/pkg/geo"
	"localconnect/pkg/logger"
)

// OrderView is an order enriched with the delivery distance, when the
// customer's position was known at placement time.
type OrderView struct {
	models.Order
	DistanceKm *float64 `json:"distance_km,omitempty"`
}

type OrderServiceInterface interface {
	GetAllOrders() ([]OrderView, error)
	GetOrder(id string) (*OrderView, error)
	GetCustomerOrders(customerName string) ([]OrderView, error)
	GetVendorOrders(location models.VendorLocation) ([]OrderView, error)
}

// OrderService exposes order history reads. Status changes are driven by
// the delivery scheduler, not by this service.
type OrderService struct {
	orderRepo repositories.OrderRepositoryInterface
	logger    *logger.Logger
}

// NewOrderService creates a new OrderService with the given repository and logger
func NewOrderService(orderRepo repositories.OrderRepositoryInterface, log *logger.Logger) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		logger:    log.WithComponent("order_service"),
	}
}

// GetAllOrders retrieves every order, newest first
func (s *OrderService) GetAllOrders() ([]OrderView, error) {
	orders, err := s.orderRepo.GetAll()
	if err != nil {
		s.logger.Error("Failed to fetch orders", "error", err)
		return nil, err
	}
	return toViews(orders), nil
}

// GetOrder retrieves a single order by ID
func (s *OrderService) GetOrder(id string) (*OrderView, error) {
	if id == "" {
		return nil, fmt.Errorf("order ID is required")
	}

	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	view := toView(*order)
	return &view, nil
}

// GetCustomerOrders retrieves a customer's order history, newest first
func (s *OrderService) GetCustomerOrders(customerName string) ([]OrderView, error) {
	if customerName == "" {
		return nil, fmt.Errorf("customer name is required")
	}

	orders, err := s.orderRepo.GetByCustomer(customerName)
	if err != nil {
		s.logger.Error("Failed to fetch customer orders", "customer", customerName, "error", err)
		return nil, err
	}
	return toViews(orders), nil
}

// GetVendorOrders retrieves the incoming orders for a vendor location
func (s *OrderService) GetVendorOrders(location models.VendorLocation) ([]OrderView, error) {
	if !models.IsValidVendorLocation(location) {
		return nil, fmt.Errorf("unknown vendor location %q", location)
	}

	orders, err := s.orderRepo.GetByVendor(location)
	if err != nil {
		s.logger.Error("Failed to fetch vendor orders", "vendor", location, "error", err)
		return nil, err
	}
	return toViews(orders), nil
}

func toView(order models.Order) OrderView {
	view := OrderView{Order: order}
	if order.CustomerLocation != nil {
		distance := geo.Distance(*order.CustomerLocation, order.VendorLocation)
		view.DistanceKm = &distance
	}
	return view
}

func toViews(orders []models.Order) []OrderView {
	views := make([]OrderView, 0, len(orders))
	for _, order := range orders {
		views = append(views, toView(order))
	}
	return views
}
