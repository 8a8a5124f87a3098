package handler

import (
	"net/http"
	"strings"

	"localconnect/internal/service"
	"localconnect/pkg/logger"
)

// toggleFavoriteRequest is the body of POST /api/v1/favorites/toggle
type toggleFavoriteRequest struct {
	ProductID    string `json:"product_id"`
	CustomerName string `json:"customer_name"`
}

// FavoritesHandler struct
type FavoritesHandler struct {
	favoritesService service.FavoritesServiceInterface
	logger           *logger.Logger
}

// NewFavoritesHandler creates a new FavoritesHandler with the given service and logger
func NewFavoritesHandler(favoritesService service.FavoritesServiceInterface, logger *logger.Logger) *FavoritesHandler {
	return &FavoritesHandler{
		favoritesService: favoritesService,
		logger:           logger.WithComponent("favorites_handler"),
	}
}

// ToggleFavorite handles POST /api/v1/favorites/toggle
func (h *FavoritesHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	reqCtx := newRequestContext(r)
	h.logger.LogRequest(reqCtx)

	var req toggleFavoriteRequest
	if err := parseRequestBody(r, &req); err != nil {
		h.logger.Warn("Invalid request body for toggle favorite", "error", err)
		writeErrorResponse(h.logger, w, http.StatusBadRequest, "Invalid request body")
		reqCtx.StatusCode = http.StatusBadRequest
		h.logger.LogResponse(reqCtx)
		return
	}

	favorited, err := h.favoritesService.ToggleFavorite(req.ProductID, req.CustomerName)
	if err != nil {
		h.logger.Warn("Failed to toggle favorite", "product_id", req.ProductID, "error", err)
		statusCode := http.StatusBadRequest
		if strings.Contains(err.Error(), "not found") {
			statusCode = http.StatusNotFound
		}
		writeErrorResponse(h.logger, w, statusCode, err.Error())
		reqCtx.StatusCode = statusCode
		h.logger.LogResponse(reqCtx)
		return
	}

	writeJSONResponse(h.logger, w, http.StatusOK, map[string]interface{}{
		"product_id": req.ProductID,
		"favorited":  favorited,
	})
	reqCtx.StatusCode = http.StatusOK
	h.logger.LogResponse(reqCtx)
}

// ListFavorites handles GET /api/v1/favorites?customer=
func (h *FavoritesHandler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	reqCtx := newRequestContext(r)
	h.logger.LogRequest(reqCtx)

	customer := r.URL.Query().Get("customer")
	products, err := h.favoritesService.GetFavorites(customer)
	if err != nil {
		h.logger.Warn("Failed to list favorites", "customer", customer, "error", err)
		writeErrorResponse(h.logger, w, http.StatusBadRequest, err.Error())
		reqCtx.StatusCode = http.StatusBadRequest
		h.logger.LogResponse(reqCtx)
		return
	}

	writeJSONResponse(h.logger, w, http.StatusOK, products)
	reqCtx.StatusCode = http.StatusOK
	h.logger.LogResponse(reqCtx)
}
