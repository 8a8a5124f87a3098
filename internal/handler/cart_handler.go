package handler

import (
	"net/http"
	"strings"

	"localconnect/internal/service"
	"localconnect/pkg/logger"
)

// addToCartRequest is the body of POST /api/v1/cart/{customer}/items
type addToCartRequest struct {
	ProductID string  `json:"product_id"`
	Quantity  float64 `json:"quantity"`
}

// CartHandler struct
type CartHandler struct {
	cartService service.CartServiceInterface
	logger      *logger.Logger
}

// NewCartHandler creates a new CartHandler with the given service and logger
func NewCartHandler(cartService service.CartServiceInterface, logger *logger.Logger) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		logger:      logger.WithComponent("cart_handler"),
	}
}

// GetCart handles GET /api/v1/cart/{customer}
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	reqCtx := newRequestContext(r)
	h.logger.LogRequest(reqCtx)

	customer := r.PathValue("customer")
	cart, err := h.cartService.GetCart(customer)
	if err != nil {
		h.logger.Warn("Failed to get cart", "customer", customer, "error", err)
		writeErrorResponse(h.logger, w, http.StatusBadRequest, err.Error())
		reqCtx.StatusCode = http.StatusBadRequest
		h.logger.LogResponse(reqCtx)
		return
	}

	writeJSONResponse(h.logger, w, http.StatusOK, cart)
	reqCtx.StatusCode = http.StatusOK
	h.logger.LogResponse(reqCtx)
}

// AddItem handles POST /api/v1/cart/{customer}/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	reqCtx := newRequestContext(r)
	h.logger.LogRequest(reqCtx)

	customer := r.PathValue("customer")

	var req addToCartRequest
	if err := parseRequestBody(r, &req); err != nil {
		h.logger.Warn("Invalid request body for add to cart", "error", err)
		writeErrorResponse(h.logger, w, http.StatusBadRequest, "Invalid request body")
		reqCtx.StatusCode = http.StatusBadRequest
		h.logger.LogResponse(reqCtx)
		return
	}

	cart, err := h.cartService.AddToCart(customer, req.ProductID, req.Quantity)
	if err != nil {
		h.logger.Warn("Failed to add to cart", "customer", customer, "error", err)
		statusCode := http.StatusBadRequest
		if strings.Contains(err.Error(), "not found") {
			statusCode = http.StatusNotFound
		}
		writeErrorResponse(h.logger, w, statusCode, err.Error())
		reqCtx.StatusCode = statusCode
		h.logger.LogResponse(reqCtx)
		return
	}

	writeJSONResponse(h.logger, w, http.StatusOK, cart)
	reqCtx.StatusCode = http.StatusOK
	h.logger.LogResponse(reqCtx)
}

// RemoveItem handles DELETE /api/v1/cart/{customer}/items/{productID}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	reqCtx := newRequestContext(r)
	h.logger.LogRequest(reqCtx)

	customer := r.PathValue("customer")
	productID := r.PathValue("productID")

	cart, err := h.cartService.RemoveFromCart(customer, productID)
	if err != nil {
		h.logger.Warn("Failed to remove from cart", "customer", customer, "error", err)
		writeErrorResponse(h.logger, w, http.StatusBadRequest, err.Error())
		reqCtx.StatusCode = http.StatusBadRequest
		h.logger.LogResponse(reqCtx)
		return
	}

	writeJSONResponse(h.logger, w, http.StatusOK, cart)
	reqCtx.StatusCode = http.StatusOK
	h.logger.LogResponse(reqCtx)
}

// ClearCart handles DELETE /api/v1/cart/{customer}
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	reqCtx := newRequestContext(r)
	h.logger.LogRequest(reqCtx)

	customer := r.PathValue("customer")
	if err := h.cartService.ClearCart(customer); err != nil {
		h.logger.Warn("Failed to clear cart", "customer", customer, "error", err)
		writeErrorResponse(h.logger, w, http.StatusBadRequest, err.Error())
		reqCtx.StatusCode = http.StatusBadRequest
		h.logger.LogResponse(reqCtx)
		return
	}

	writeJSONResponse(h.logger, w, http.StatusOK, map[string]string{"message": "Cart cleared"})
	reqCtx.StatusCode = http.StatusOK
	h.logger.LogResponse(reqCtx)
}
