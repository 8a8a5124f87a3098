package handler

import (
	"net/http"

	"localconnect/internal/service"
	"localconnect/models"
	"localconnect/pkg/logger"
)

// OrderHandler struct
type OrderHandler struct {
	orderService service.OrderServiceInterface
	logger       *logger.Logger
}

// NewOrderHandler creates a new OrderHandler with the given service and logger
func NewOrderHandler(orderService service.OrderServiceInterface, logger *logger.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		logger:       logger.WithComponent("order_handler"),
	}
}

// ListOrders handles GET /api/v1/orders, optionally scoped by ?customer= or
// ?vendor=. The two filters are mutually exclusive; customer wins if both
// are supplied.
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	reqCtx := newRequestContext(r)
	h.logger.LogRequest(reqCtx)

	query := r.URL.Query()
	customer := query.Get("customer")
	vendor := query.Get("vendor")

	var (
		orders []service.OrderView
		err    error
	)
	switch {
	case customer != "":
		orders, err = h.orderService.GetCustomerOrders(customer)
	case vendor != "":
		orders, err = h.orderService.GetVendorOrders(models.VendorLocation(vendor))
	default:
		orders, err = h.orderService.GetAllOrders()
	}

	if err != nil {
		h.logger.Warn("Failed to list orders", "customer", customer, "vendor", vendor, "error", err)
		writeErrorResponse(h.logger, w, http.StatusBadRequest, err.Error())
		reqCtx.StatusCode = http.StatusBadRequest
		h.logger.LogResponse(reqCtx)
		return
	}

	writeJSONResponse(h.logger, w, http.StatusOK, orders)
	reqCtx.StatusCode = http.StatusOK
	h.logger.LogResponse(reqCtx)
}

// GetOrder handles GET /api/v1/orders/{id}
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	reqCtx := newRequestContext(r)
	h.logger.LogRequest(reqCtx)

	id := r.PathValue("id")
	order, err := h.orderService.GetOrder(id)
	if err != nil {
		h.logger.Warn("Order not found", "id", id, "error", err)
		writeErrorResponse(h.logger, w, http.StatusNotFound, "Order not found")
		reqCtx.StatusCode = http.StatusNotFound
		h.logger.LogResponse(reqCtx)
		return
	}

	writeJSONResponse(h.logger, w, http.StatusOK, order)
	reqCtx.StatusCode = http.StatusOK
	h.logger.LogResponse(reqCtx)
}
