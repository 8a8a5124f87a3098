package handler

import (
	"net/http"
	"strings"

	"localconnect/internal/service"
	"localconnect/models"
	"localconnect/pkg/logger"
)

// ProductHandler struct
type ProductHandler struct {
	catalogService service.CatalogServiceInterface
	logger         *logger.Logger
}

// NewProductHandler creates a new ProductHandler with the given service and logger
func NewProductHandler(catalogService service.CatalogServiceInterface, logger *logger.Logger) *ProductHandler {
	return &ProductHandler{
		catalogService: catalogService,
		logger:         logger.WithComponent("product_handler"),
	}
}

// ListProducts handles GET /api/v1/products, optionally scoped by ?location=
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	reqCtx := newRequestContext(r)
	h.logger.LogRequest(reqCtx)

	location := r.URL.Query().Get("location")

	var (
		products []models.Product
		err      error
	)
	if location != "" {
		products, err = h.catalogService.ListByLocation(models.VendorLocation(location))
	} else {
		products, err = h.catalogService.ListProducts()
	}

	if err != nil {
		h.logger.Warn("Failed to list products", "location", location, "error", err)
		statusCode := http.StatusInternalServerError
		if strings.Contains(err.Error(), "unknown vendor location") {
			statusCode = http.StatusBadRequest
		}
		writeErrorResponse(h.logger, w, statusCode, err.Error())
		reqCtx.StatusCode = statusCode
		h.logger.LogResponse(reqCtx)
		return
	}

	writeJSONResponse(h.logger, w, http.StatusOK, products)
	reqCtx.StatusCode = http.StatusOK
	h.logger.LogResponse(reqCtx)
}

// GetProduct handles GET /api/v1/products/{id}
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	reqCtx := newRequestContext(r)
	h.logger.LogRequest(reqCtx)

	id := r.PathValue("id")
	product, err := h.catalogService.GetProduct(id)
	if err != nil {
		h.logger.Warn("Product not found", "id", id, "error", err)
		writeErrorResponse(h.logger, w, http.StatusNotFound, "Product not found")
		reqCtx.StatusCode = http.StatusNotFound
		h.logger.LogResponse(reqCtx)
		return
	}

	writeJSONResponse(h.logger, w, http.StatusOK, product)
	reqCtx.StatusCode = http.StatusOK
	h.logger.LogResponse(reqCtx)
}

// CreateProduct handles POST /api/v1/products
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	reqCtx := newRequestContext(r)
	h.logger.LogRequest(reqCtx)

	var req service.ProductRequest
	if err := parseRequestBody(r, &req); err != nil {
		h.logger.Warn("Invalid request body for create product", "error", err)
		writeErrorResponse(h.logger, w, http.StatusBadRequest, "Invalid request body")
		reqCtx.StatusCode = http.StatusBadRequest
		h.logger.LogResponse(reqCtx)
		return
	}

	result, err := h.catalogService.AddProduct(req)
	if err != nil {
		h.logger.Warn("Failed to create product", "error", err)
		writeErrorResponse(h.logger, w, http.StatusBadRequest, err.Error())
		reqCtx.StatusCode = http.StatusBadRequest
		h.logger.LogResponse(reqCtx)
		return
	}

	writeJSONResponse(h.logger, w, http.StatusCreated, result)
	reqCtx.StatusCode = http.StatusCreated
	h.logger.LogResponse(reqCtx)
}

// UpdateProduct handles PUT /api/v1/products/{id}
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	reqCtx := newRequestContext(r)
	h.logger.LogRequest(reqCtx)

	id := r.PathValue("id")

	var req service.ProductRequest
	if err := parseRequestBody(r, &req); err != nil {
		h.logger.Warn("Invalid request body for update product", "error", err)
		writeErrorResponse(h.logger, w, http.StatusBadRequest, "Invalid request body")
		reqCtx.StatusCode = http.StatusBadRequest
		h.logger.LogResponse(reqCtx)
		return
	}

	result, err := h.catalogService.UpdateProduct(id, req)
	if err != nil {
		h.logger.Warn("Failed to update product", "id", id, "error", err)
		statusCode := http.StatusBadRequest
		if strings.Contains(err.Error(), "not found") {
			statusCode = http.StatusNotFound
		}
		writeErrorResponse(h.logger, w, statusCode, err.Error())
		reqCtx.StatusCode = statusCode
		h.logger.LogResponse(reqCtx)
		return
	}

	writeJSONResponse(h.logger, w, http.StatusOK, result)
	reqCtx.StatusCode = http.StatusOK
	h.logger.LogResponse(reqCtx)
}

// DeleteProduct handles DELETE /api/v1/products/{id}
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	reqCtx := newRequestContext(r)
	h.logger.LogRequest(reqCtx)

	id := r.PathValue("id")
	if err := h.catalogService.DeleteProduct(id); err != nil {
		h.logger.Warn("Failed to delete product", "id", id, "error", err)
		writeErrorResponse(h.logger, w, http.StatusNotFound, "Product not found")
		reqCtx.StatusCode = http.StatusNotFound
		h.logger.LogResponse(reqCtx)
		return
	}

	writeJSONResponse(h.logger, w, http.StatusOK, map[string]interface{}{"product_id": id, "message": "Product deleted"})
	reqCtx.StatusCode = http.StatusOK
	h.logger.LogResponse(reqCtx)
}

// ResetProducts handles POST /api/v1/products/reset
func (h *ProductHandler) ResetProducts(w http.ResponseWriter, r *http.Request) {
	reqCtx := newRequestContext(r)
	h.logger.LogRequest(reqCtx)

	if err := h.catalogService.ResetProducts(); err != nil {
		h.logger.Error("Failed to reset catalog", "error", err)
		writeErrorResponse(h.logger, w, http.StatusInternalServerError, "Failed to reset catalog")
		reqCtx.StatusCode = http.StatusInternalServerError
		h.logger.LogResponse(reqCtx)
		return
	}

	writeJSONResponse(h.logger, w, http.StatusOK, map[string]string{"message": "Catalog reset to seed products"})
	reqCtx.StatusCode = http.StatusOK
	h.logger.LogResponse(reqCtx)
}
