package handler

import (
	"net/http"
	"strings"

	"localconnect/internal/service"
	"localconnect/models"
	"localconnect/pkg/logger"
)

// preOrderRequest is the body of POST /api/v1/preorders and its DELETE twin
type preOrderRequest struct {
	ProductID    string `json:"product_id"`
	CustomerName string `json:"customer_name"`
}

// preOrderDecisionRequest is the body of POST /api/v1/preorders/{id}/decision
type preOrderDecisionRequest struct {
	Accept bool `json:"accept"`
}

// PreOrderHandler struct
type PreOrderHandler struct {
	preOrderService service.PreOrderServiceInterface
	logger          *logger.Logger
}

// NewPreOrderHandler creates a new PreOrderHandler with the given service and logger
func NewPreOrderHandler(preOrderService service.PreOrderServiceInterface, logger *logger.Logger) *PreOrderHandler {
	return &PreOrderHandler{
		preOrderService: preOrderService,
		logger:          logger.WithComponent("preorder_handler"),
	}
}

// CreatePreOrder handles POST /api/v1/preorders
func (h *PreOrderHandler) CreatePreOrder(w http.ResponseWriter, r *http.Request) {
	reqCtx := newRequestContext(r)
	h.logger.LogRequest(reqCtx)

	var req preOrderRequest
	if err := parseRequestBody(r, &req); err != nil {
		h.logger.Warn("Invalid request body for pre-order", "error", err)
		writeErrorResponse(h.logger, w, http.StatusBadRequest, "Invalid request body")
		reqCtx.StatusCode = http.StatusBadRequest
		h.logger.LogResponse(reqCtx)
		return
	}

	item, created, err := h.preOrderService.RequestPreOrder(req.ProductID, req.CustomerName)
	if err != nil {
		h.logger.Warn("Failed to create pre-order", "product_id", req.ProductID, "error", err)
		statusCode := http.StatusBadRequest
		if strings.Contains(err.Error(), "not found") {
			statusCode = http.StatusNotFound
		} else if strings.Contains(err.Error(), "in stock") {
			statusCode = http.StatusConflict
		}
		writeErrorResponse(h.logger, w, statusCode, err.Error())
		reqCtx.StatusCode = statusCode
		h.logger.LogResponse(reqCtx)
		return
	}

	statusCode := http.StatusOK
	if created {
		statusCode = http.StatusCreated
	}
	writeJSONResponse(h.logger, w, statusCode, item)
	reqCtx.StatusCode = statusCode
	h.logger.LogResponse(reqCtx)
}

// CancelPreOrder handles DELETE /api/v1/preorders
func (h *PreOrderHandler) CancelPreOrder(w http.ResponseWriter, r *http.Request) {
	reqCtx := newRequestContext(r)
	h.logger.LogRequest(reqCtx)

	var req preOrderRequest
	if err := parseRequestBody(r, &req); err != nil {
		h.logger.Warn("Invalid request body for pre-order cancel", "error", err)
		writeErrorResponse(h.logger, w, http.StatusBadRequest, "Invalid request body")
		reqCtx.StatusCode = http.StatusBadRequest
		h.logger.LogResponse(reqCtx)
		return
	}

	if err := h.preOrderService.CancelPreOrder(req.ProductID, req.CustomerName); err != nil {
		h.logger.Warn("Failed to cancel pre-order", "product_id", req.ProductID, "error", err)
		writeErrorResponse(h.logger, w, http.StatusBadRequest, err.Error())
		reqCtx.StatusCode = http.StatusBadRequest
		h.logger.LogResponse(reqCtx)
		return
	}

	writeJSONResponse(h.logger, w, http.StatusOK, map[string]string{"message": "Pre-order cancelled"})
	reqCtx.StatusCode = http.StatusOK
	h.logger.LogResponse(reqCtx)
}

// ListPreOrders handles GET /api/v1/preorders scoped by ?customer= or ?vendor=
func (h *PreOrderHandler) ListPreOrders(w http.ResponseWriter, r *http.Request) {
	reqCtx := newRequestContext(r)
	h.logger.LogRequest(reqCtx)

	query := r.URL.Query()
	customer := query.Get("customer")
	vendor := query.Get("vendor")

	if customer == "" && vendor == "" {
		h.logger.Warn("Pre-order listing requires customer or vendor filter")
		writeErrorResponse(h.logger, w, http.StatusBadRequest, "customer or vendor query parameter is required")
		reqCtx.StatusCode = http.StatusBadRequest
		h.logger.LogResponse(reqCtx)
		return
	}

	var (
		items []models.PreOrderItem
		err   error
	)
	if customer != "" {
		items, err = h.preOrderService.GetCustomerPreOrders(customer)
	} else {
		items, err = h.preOrderService.GetVendorPreOrders(models.VendorLocation(vendor))
	}

	if err != nil {
		h.logger.Warn("Failed to list pre-orders", "customer", customer, "vendor", vendor, "error", err)
		writeErrorResponse(h.logger, w, http.StatusBadRequest, err.Error())
		reqCtx.StatusCode = http.StatusBadRequest
		h.logger.LogResponse(reqCtx)
		return
	}

	if items == nil {
		items = []models.PreOrderItem{}
	}
	writeJSONResponse(h.logger, w, http.StatusOK, items)
	reqCtx.StatusCode = http.StatusOK
	h.logger.LogResponse(reqCtx)
}

// DecidePreOrder handles POST /api/v1/preorders/{id}/decision
func (h *PreOrderHandler) DecidePreOrder(w http.ResponseWriter, r *http.Request) {
	reqCtx := newRequestContext(r)
	h.logger.LogRequest(reqCtx)

	id := r.PathValue("id")

	var req preOrderDecisionRequest
	if err := parseRequestBody(r, &req); err != nil {
		h.logger.Warn("Invalid request body for pre-order decision", "error", err)
		writeErrorResponse(h.logger, w, http.StatusBadRequest, "Invalid request body")
		reqCtx.StatusCode = http.StatusBadRequest
		h.logger.LogResponse(reqCtx)
		return
	}

	if err := h.preOrderService.DecidePreOrder(id, req.Accept); err != nil {
		h.logger.Warn("Failed to decide pre-order", "id", id, "error", err)
		statusCode := http.StatusBadRequest
		if strings.Contains(err.Error(), "not found") {
			statusCode = http.StatusNotFound
		} else if strings.Contains(err.Error(), "not pending") {
			statusCode = http.StatusConflict
		}
		writeErrorResponse(h.logger, w, statusCode, err.Error())
		reqCtx.StatusCode = statusCode
		h.logger.LogResponse(reqCtx)
		return
	}

	writeJSONResponse(h.logger, w, http.StatusOK, map[string]string{"preorder_id": id, "message": "Decision recorded"})
	reqCtx.StatusCode = http.StatusOK
	h.logger.LogResponse(reqCtx)
}
