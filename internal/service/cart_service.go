package service

import (
	"fmt"
	"math"

	"localconnect/internal/repositories"
	"localconnect/models"
	"localconnect/pkg/logger"
)

// CartView is a customer's cart with its running total at effective prices.
type CartView struct {
	Items []models.CartItem `json:"items"`
	Total float64           `json:"total"`
}

type CartServiceInterface interface {
	GetCart(customerName string) (*CartView, error)
	AddToCart(customerName, productID string, quantity float64) (*CartView, error)
	RemoveFromCart(customerName, productID string) (*CartView, error)
	ClearCart(customerName string) error
}

// CartService mediates between the catalog and the per-customer carts:
// lines always carry a snapshot of the product as it was when added.
type CartService struct {
	cartRepo    repositories.CartRepositoryInterface
	productRepo repositories.ProductRepositoryInterface
	logger      *logger.Logger
}

// NewCartService creates a new CartService with the given repositories and logger
func NewCartService(cartRepo repositories.CartRepositoryInterface, productRepo repositories.ProductRepositoryInterface, log *logger.Logger) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		logger:      log.WithComponent("cart_service"),
	}
}

// GetCart returns the customer's current cart and total
func (s *CartService) GetCart(customerName string) (*CartView, error) {
	if customerName == "" {
		return nil, fmt.Errorf("customer name is required")
	}
	return s.buildView(customerName), nil
}

// AddToCart adds quantity of a catalog product to the customer's cart
func (s *CartService) AddToCart(customerName, productID string, quantity float64) (*CartView, error) {
	s.logger.Info("Adding to cart",
		"customer", customerName,
		"product_id", productID,
		"quantity", quantity)

	if customerName == "" {
		return nil, fmt.Errorf("customer name is required")
	}
	if productID == "" {
		return nil, fmt.Errorf("product ID is required")
	}
	if quantity <= 0 {
		return nil, fmt.Errorf("quantity must be positive")
	}

	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		s.logger.Warn("Add to cart failed: product lookup", "product_id", productID, "error", err)
		return nil, err
	}

	s.cartRepo.Add(customerName, *product, quantity)
	return s.buildView(customerName), nil
}

// RemoveFromCart decrements a cart line by one step
func (s *CartService) RemoveFromCart(customerName, productID string) (*CartView, error) {
	if customerName == "" {
		return nil, fmt.Errorf("customer name is required")
	}
	if productID == "" {
		return nil, fmt.Errorf("product ID is required")
	}

	s.cartRepo.Remove(customerName, productID)
	return s.buildView(customerName), nil
}

// ClearCart empties the customer's cart
func (s *CartService) ClearCart(customerName string) error {
	if customerName == "" {
		return fmt.Errorf("customer name is required")
	}
	s.cartRepo.Clear(customerName)
	return nil
}

// buildView assembles the cart with its total, rounded to paise
func (s *CartService) buildView(customerName string) *CartView {
	items := s.cartRepo.Items(customerName)

	total := 0.0
	for _, item := range items {
		total += item.LineTotal()
	}

	return &CartView{
		Items: items,
		Total: math.Round(total*100) / 100,
	}
}
