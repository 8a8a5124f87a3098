package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"localconnect/internal/geolocation"
	"localconnect/internal/repositories"
	"localconnect/models"
	"localconnect/pkg/kvstore"
	"localconnect/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Level: logger.LevelError, Format: "text", Output: "stderr"})
}

type checkoutFixture struct {
	productRepo *repositories.ProductRepository
	cartRepo    *repositories.CartRepository
	orderRepo   *repositories.OrderRepository
	service     *CheckoutService
}

func newCheckoutFixture(t *testing.T, locator geolocation.Locator) *checkoutFixture {
	t.Helper()
	log := testLogger()

	f := &checkoutFixture{
		productRepo: repositories.NewProductRepository(kvstore.NewMemoryStore(), log),
		cartRepo:    repositories.NewCartRepository(log),
		orderRepo:   repositories.NewOrderRepository(log),
	}
	f.service = NewCheckoutService(f.cartRepo, f.orderRepo, locator, time.Second, log)
	return f
}

func (f *checkoutFixture) addToCart(t *testing.T, productID string, quantity float64) {
	t.Helper()
	product, err := f.productRepo.GetByID(productID)
	require.NoError(t, err)
	f.cartRepo.Add("customer", *product, quantity)
}

func codRequest() CheckoutRequest {
	return CheckoutRequest{
		CustomerName:    "customer",
		CustomerAddress: "12 Beach Road, Chennai",
		PaymentMethod:   models.PaymentCOD,
	}
}

func TestCheckoutSplitsCartPerVendor(t *testing.T) {
	f := newCheckoutFixture(t, geolocation.NewSimulatedLocator(0))

	// Milk (Full Cream) is discounted to 61.75 at royapuram; Carrot is 40 at t.nagar
	f.addToCart(t, "13", 2)
	f.addToCart(t, "6", 1)

	result, err := f.service.Checkout(context.Background(), codRequest())
	require.NoError(t, err)
	require.Len(t, result.Orders, 2)

	first, second := result.Orders[0], result.Orders[1]
	assert.Equal(t, models.LocationRoyapuram, first.VendorLocationName, "vendor order follows cart order")
	assert.Equal(t, 123.50, first.Total)
	assert.Equal(t, models.LocationTNagar, second.VendorLocationName)
	assert.Equal(t, 40.0, second.Total)

	for _, order := range result.Orders {
		assert.Equal(t, models.StatusOrderPlaced, order.Status)
		assert.Equal(t, "customer", order.CustomerName)
		assert.NotNil(t, order.CustomerLocation)
		assert.Equal(t, models.VendorCoordinates[order.VendorLocationName], order.VendorLocation)
		assert.True(t, strings.HasPrefix(order.ID, "ORD-"))
	}
	assert.NotEqual(t, first.ID, second.ID)

	// Orders are stored and the cart is cleared
	stored, err := f.orderRepo.GetAll()
	require.NoError(t, err)
	assert.Len(t, stored, 2)
	assert.Empty(t, f.cartRepo.Items("customer"))
}

func TestCheckoutSingleVendorProducesOneOrder(t *testing.T) {
	f := newCheckoutFixture(t, geolocation.NewSimulatedLocator(0))
	f.addToCart(t, "13", 1)
	f.addToCart(t, "14", 2)

	result, err := f.service.Checkout(context.Background(), codRequest())
	require.NoError(t, err)
	require.Len(t, result.Orders, 1)
	assert.Len(t, result.Orders[0].Items, 2)
}

func TestCheckoutEmptyCart(t *testing.T) {
	f := newCheckoutFixture(t, geolocation.NewSimulatedLocator(0))

	_, err := f.service.Checkout(context.Background(), codRequest())
	assert.ErrorContains(t, err, "cart is empty")
}

func TestCheckoutProceedsWithoutLocation(t *testing.T) {
	f := newCheckoutFixture(t, geolocation.FailingLocator{})
	f.addToCart(t, "13", 1)

	result, err := f.service.Checkout(context.Background(), codRequest())
	require.NoError(t, err)
	require.Len(t, result.Orders, 1)
	assert.Nil(t, result.Orders[0].CustomerLocation)
}

func TestCheckoutChocolateToast(t *testing.T) {
	f := newCheckoutFixture(t, geolocation.NewSimulatedLocator(0))

	// White Chocolate (100g) plus Dark Chocolate (70%) triggers the toast
	f.addToCart(t, "11", 1)
	f.addToCart(t, "14", 1)

	result, err := f.service.Checkout(context.Background(), codRequest())
	require.NoError(t, err)
	require.Len(t, result.Notices, 1)
	assert.Equal(t, "december i found ya", result.Notices[0])
}

func TestCheckoutChocolateToastNeedsBothKinds(t *testing.T) {
	f := newCheckoutFixture(t, geolocation.NewSimulatedLocator(0))
	f.addToCart(t, "11", 3)

	result, err := f.service.Checkout(context.Background(), codRequest())
	require.NoError(t, err)
	assert.Empty(t, result.Notices)
}

func TestCheckoutToastReportedOncePerCheckout(t *testing.T) {
	f := newCheckoutFixture(t, geolocation.NewSimulatedLocator(0))

	// Chocolates from different vendors still yield a single notice
	f.addToCart(t, "11", 1) // t.nagar
	f.addToCart(t, "4", 1)  // saidapetu

	result, err := f.service.Checkout(context.Background(), codRequest())
	require.NoError(t, err)
	require.Len(t, result.Orders, 2)
	assert.Len(t, result.Notices, 1)
}

func TestCheckoutValidatesCustomerFields(t *testing.T) {
	f := newCheckoutFixture(t, geolocation.NewSimulatedLocator(0))
	f.addToCart(t, "13", 1)

	req := codRequest()
	req.CustomerName = "  "
	_, err := f.service.Checkout(context.Background(), req)
	assert.ErrorContains(t, err, "customer name")

	req = codRequest()
	req.CustomerAddress = ""
	_, err = f.service.Checkout(context.Background(), req)
	assert.ErrorContains(t, err, "address")
}

func TestCheckoutValidatesUpi(t *testing.T) {
	f := newCheckoutFixture(t, geolocation.NewSimulatedLocator(0))
	f.addToCart(t, "13", 1)

	req := codRequest()
	req.PaymentMethod = models.PaymentUPI
	req.UpiMode = models.UpiModeID
	req.UpiID = "no-at-sign"
	_, err := f.service.Checkout(context.Background(), req)
	assert.ErrorContains(t, err, "invalid UPI id")

	req.UpiID = "customer@upi"
	result, err := f.service.Checkout(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentUPI, result.Orders[0].PaymentMethod)
	assert.Equal(t, "customer@upi", result.Orders[0].UpiID)
}

func TestCheckoutUpiQrNeedsNoID(t *testing.T) {
	f := newCheckoutFixture(t, geolocation.NewSimulatedLocator(0))
	f.addToCart(t, "13", 1)

	req := codRequest()
	req.PaymentMethod = models.PaymentUPI
	req.UpiMode = models.UpiModeQR

	_, err := f.service.Checkout(context.Background(), req)
	assert.NoError(t, err)
}

func TestCheckoutValidatesCard(t *testing.T) {
	f := newCheckoutFixture(t, geolocation.NewSimulatedLocator(0))
	f.addToCart(t, "13", 1)

	req := codRequest()
	req.PaymentMethod = models.PaymentCard
	_, err := f.service.Checkout(context.Background(), req)
	assert.ErrorContains(t, err, "card details")

	req.Card = &CardDetails{Number: "4111111111111111", HolderName: "Customer", Expiry: "12/27", CVV: " "}
	_, err = f.service.Checkout(context.Background(), req)
	assert.ErrorContains(t, err, "all card fields")

	req.Card.CVV = "123"
	_, err = f.service.Checkout(context.Background(), req)
	assert.NoError(t, err)
}

func TestCheckoutRejectsUnknownPaymentMethod(t *testing.T) {
	f := newCheckoutFixture(t, geolocation.NewSimulatedLocator(0))
	f.addToCart(t, "13", 1)

	req := codRequest()
	req.PaymentMethod = "barter"
	_, err := f.service.Checkout(context.Background(), req)
	assert.ErrorContains(t, err, "invalid payment method")
}
