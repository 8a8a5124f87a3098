package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"localconnect/internal/geolocation"
	"localconnect/internal/repositories"
	"localconnect/models"
	"localconnect/pkg/geo"
	"localconnect/pkg/logger"
)

// chocolateToast is shown when the cart pairs white chocolate with one of
// the dark chocolate listings.
const chocolateToast = "december i found ya"

// CardDetails are collected for card payments but never charged or stored
// beyond presence validation.
type CardDetails struct {
	Number     string `json:"number"`
	HolderName string `json:"holder_name"`
	Expiry     string `json:"expiry"`
	CVV        string `json:"cvv"`
}

// CheckoutRequest is everything the customer submits at the payment step.
type CheckoutRequest struct {
	CustomerName    string               `json:"customer_name"`
	CustomerAddress string               `json:"customer_address"`
	PaymentMethod   models.PaymentMethod `json:"payment_method"`
	UpiMode         models.UpiMode       `json:"upi_mode,omitempty"`
	UpiID           string               `json:"upi_id,omitempty"`
	Card            *CardDetails         `json:"card,omitempty"`
}

// CheckoutResult reports the orders a checkout decomposed into, plus any
// customer-facing notices.
type CheckoutResult struct {
	Orders  []models.Order `json:"orders"`
	Notices []string       `json:"notices,omitempty"`
}

type CheckoutServiceInterface interface {
	Checkout(ctx context.Context, req CheckoutRequest) (*CheckoutResult, error)
}

// CheckoutService turns a mixed-vendor cart into per-vendor orders. It
// validates payment details, resolves the customer's position (best effort),
// splits the cart by vendor location and clears the cart once every order
// is stored.
type CheckoutService struct {
	cartRepo        repositories.CartRepositoryInterface
	orderRepo       repositories.OrderRepositoryInterface
	locator         geolocation.Locator
	locationTimeout time.Duration
	logger          *logger.Logger
}

// NewCheckoutService creates a new CheckoutService
func NewCheckoutService(
	cartRepo repositories.CartRepositoryInterface,
	orderRepo repositories.OrderRepositoryInterface,
	locator geolocation.Locator,
	locationTimeout time.Duration,
	log *logger.Logger,
) *CheckoutService {
	if locationTimeout <= 0 {
		locationTimeout = 3 * time.Second
	}
	return &CheckoutService{
		cartRepo:        cartRepo,
		orderRepo:       orderRepo,
		locator:         locator,
		locationTimeout: locationTimeout,
		logger:          log.WithComponent("checkout_service"),
	}
}

// Checkout decomposes the customer's cart into one order per vendor
// location. All orders from one checkout share the customer data, payment
// details and placement time; they differ only in items, total and vendor.
func (s *CheckoutService) Checkout(ctx context.Context, req CheckoutRequest) (*CheckoutResult, error) {
	s.logger.Info("Checkout started",
		"customer", req.CustomerName,
		"payment_method", req.PaymentMethod)

	if err := s.validateRequest(req); err != nil {
		s.logger.Warn("Checkout rejected", "customer", req.CustomerName, "error", err)
		return nil, err
	}

	items := s.cartRepo.Items(req.CustomerName)
	if len(items) == 0 {
		return nil, fmt.Errorf("cart is empty")
	}

	// Surprise toast is decided on the cart as a whole, before it is split
	notices := s.cartNotices(items)

	// Position lookup is best effort: a denied or slow provider must never
	// block the purchase, so failure just leaves the location unset.
	customerLocation := s.resolveLocation(ctx)

	now := time.Now()
	groups, groupOrder := groupByVendor(items)

	orders := make([]models.Order, 0, len(groups))
	for _, location := range groupOrder {
		groupItems := groups[location]

		total := 0.0
		for _, item := range groupItems {
			total += item.LineTotal()
		}

		order := models.Order{
			ID:                 newOrderID(now, location),
			Items:              groupItems,
			Total:              math.Round(total*100) / 100,
			CustomerName:       req.CustomerName,
			CustomerAddress:    req.CustomerAddress,
			CustomerLocation:   customerLocation,
			VendorLocation:     models.VendorCoordinates[location],
			VendorLocationName: location,
			PaymentMethod:      req.PaymentMethod,
			UpiMode:            req.UpiMode,
			UpiID:              req.UpiID,
			Status:             models.StatusOrderPlaced,
			Timestamp:          now,
			StatusUpdatedAt:    now,
		}

		if err := s.orderRepo.Add(order); err != nil {
			s.logger.Error("Failed to store order", "order_id", order.ID, "error", err)
			return nil, fmt.Errorf("failed to place order: %w", err)
		}

		if customerLocation != nil {
			s.logger.Info("Order placed",
				"order_id", order.ID,
				"vendor", location,
				"total", order.Total,
				"distance_km", geo.Distance(*customerLocation, order.VendorLocation))
		} else {
			s.logger.Info("Order placed",
				"order_id", order.ID,
				"vendor", location,
				"total", order.Total)
		}
		orders = append(orders, order)
	}

	s.cartRepo.Clear(req.CustomerName)
	s.logger.Info("Checkout completed",
		"customer", req.CustomerName,
		"orders", len(orders))

	return &CheckoutResult{Orders: orders, Notices: notices}, nil
}

// resolveLocation asks the locator for the customer's position, bounded by
// the configured timeout. Any failure yields a nil location.
func (s *CheckoutService) resolveLocation(ctx context.Context) *models.Location {
	locateCtx, cancel := context.WithTimeout(ctx, s.locationTimeout)
	defer cancel()

	location, err := s.locator.Locate(locateCtx)
	if err != nil {
		s.logger.Warn("Customer location unavailable", "error", err)
		return nil
	}
	return location
}

// cartNotices inspects the whole cart for notice-worthy combinations
func (s *CheckoutService) cartNotices(items []models.CartItem) []string {
	hasWhite := false
	hasDark := false
	for _, item := range items {
		switch item.Name {
		case "White Chocolate (100g)":
			hasWhite = true
		case "Dark Chocolate (100g)", "Dark Chocolate (70%)":
			hasDark = true
		}
	}
	if hasWhite && hasDark {
		return []string{chocolateToast}
	}
	return nil
}

// validateRequest checks the customer and payment fields
func (s *CheckoutService) validateRequest(req CheckoutRequest) error {
	if strings.TrimSpace(req.CustomerName) == "" {
		return fmt.Errorf("customer name is required")
	}
	if strings.TrimSpace(req.CustomerAddress) == "" {
		return fmt.Errorf("delivery address is required")
	}

	switch req.PaymentMethod {
	case models.PaymentCOD:
		return nil
	case models.PaymentUPI:
		switch req.UpiMode {
		case models.UpiModeQR:
			return nil
		case models.UpiModeID:
			if !strings.Contains(req.UpiID, "@") {
				return fmt.Errorf("invalid UPI id")
			}
			return nil
		default:
			return fmt.Errorf("invalid UPI mode %q", req.UpiMode)
		}
	case models.PaymentCard:
		if req.Card == nil {
			return fmt.Errorf("card details are required")
		}
		fields := []string{req.Card.Number, req.Card.HolderName, req.Card.Expiry, req.Card.CVV}
		for _, field := range fields {
			if strings.TrimSpace(field) == "" {
				return fmt.Errorf("all card fields are required")
			}
		}
		return nil
	default:
		return fmt.Errorf("invalid payment method %q", req.PaymentMethod)
	}
}

// groupByVendor splits cart lines per vendor location, preserving both the
// order vendors first appear in the cart and the line order within each group.
func groupByVendor(items []models.CartItem) (map[models.VendorLocation][]models.CartItem, []models.VendorLocation) {
	groups := make(map[models.VendorLocation][]models.CartItem)
	var order []models.VendorLocation
	for _, item := range items {
		if _, seen := groups[item.Location]; !seen {
			order = append(order, item.Location)
		}
		groups[item.Location] = append(groups[item.Location], item)
	}
	return groups, order
}

// newOrderID builds a readable order ID: placement time, a vendor prefix,
// and a random suffix so two orders minted in the same millisecond cannot
// collide.
func newOrderID(now time.Time, location models.VendorLocation) string {
	prefix := strings.ToUpper(string(location))
	if len(prefix) > 2 {
		prefix = prefix[:2]
	}
	return fmt.Sprintf("ORD-%d-%s-%s", now.UnixMilli(), prefix, uuid.New().String()[:8])
}
