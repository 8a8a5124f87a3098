package handler

import (
	"net/http"
	"strings"

	"localconnect/internal/service"
	"localconnect/pkg/logger"
)

// CheckoutHandler struct
type CheckoutHandler struct {
	checkoutService service.CheckoutServiceInterface
	logger          *logger.Logger
}

// NewCheckoutHandler creates a new CheckoutHandler with the given service and logger
func NewCheckoutHandler(checkoutService service.CheckoutServiceInterface, logger *logger.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
		logger:          logger.WithComponent("checkout_handler"),
	}
}

// Checkout handles POST /api/v1/checkout
func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	reqCtx := newRequestContext(r)
	h.logger.LogRequest(reqCtx)

	var req service.CheckoutRequest
	if err := parseRequestBody(r, &req); err != nil {
		h.logger.Warn("Invalid request body for checkout", "error", err)
		writeErrorResponse(h.logger, w, http.StatusBadRequest, "Invalid request body")
		reqCtx.StatusCode = http.StatusBadRequest
		h.logger.LogResponse(reqCtx)
		return
	}

	result, err := h.checkoutService.Checkout(r.Context(), req)
	if err != nil {
		h.logger.Warn("Checkout failed", "customer", req.CustomerName, "error", err)
		statusCode := http.StatusBadRequest
		if strings.Contains(err.Error(), "cart is empty") {
			statusCode = http.StatusConflict
		} else if strings.Contains(err.Error(), "failed to place order") {
			statusCode = http.StatusInternalServerError
		}
		writeErrorResponse(h.logger, w, statusCode, err.Error())
		reqCtx.StatusCode = statusCode
		h.logger.LogResponse(reqCtx)
		return
	}

	writeJSONResponse(h.logger, w, http.StatusCreated, result)
	reqCtx.StatusCode = http.StatusCreated
	h.logger.LogResponse(reqCtx)
}
