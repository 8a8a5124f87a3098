package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"localconnect/internal/service"
	"localconnect/pkg/logger"
)

// generateRecipeRequest is the body of POST /api/v1/recipes/generate
type generateRecipeRequest struct {
	CustomerName string `json:"customer_name"`
}

// RecipeHandler struct
type RecipeHandler struct {
	recipeService service.RecipeServiceInterface
	logger        *logger.Logger
}

// NewRecipeHandler creates a new RecipeHandler with the given service and logger
func NewRecipeHandler(recipeService service.RecipeServiceInterface, logger *logger.Logger) *RecipeHandler {
	return &RecipeHandler{
		recipeService: recipeService,
		logger:        logger.WithComponent("recipe_handler"),
	}
}

// DailyRecipes handles GET /api/v1/recipes/daily
func (h *RecipeHandler) DailyRecipes(w http.ResponseWriter, r *http.Request) {
	reqCtx := newRequestContext(r)
	h.logger.LogRequest(reqCtx)

	recipes, err := h.recipeService.DailyRecipes(r.Context())
	if err != nil {
		h.logger.Warn("Failed to fetch daily recipes", "error", err)
		statusCode := http.StatusInternalServerError
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			statusCode = http.StatusRequestTimeout
		}
		writeErrorResponse(h.logger, w, statusCode, "Could not fetch recipes right now")
		reqCtx.StatusCode = statusCode
		h.logger.LogResponse(reqCtx)
		return
	}

	writeJSONResponse(h.logger, w, http.StatusOK, recipes)
	reqCtx.StatusCode = http.StatusOK
	h.logger.LogResponse(reqCtx)
}

// GenerateRecipe handles POST /api/v1/recipes/generate
func (h *RecipeHandler) GenerateRecipe(w http.ResponseWriter, r *http.Request) {
	reqCtx := newRequestContext(r)
	h.logger.LogRequest(reqCtx)

	var req generateRecipeRequest
	if err := parseRequestBody(r, &req); err != nil {
		h.logger.Warn("Invalid request body for generate recipe", "error", err)
		writeErrorResponse(h.logger, w, http.StatusBadRequest, "Invalid request body")
		reqCtx.StatusCode = http.StatusBadRequest
		h.logger.LogResponse(reqCtx)
		return
	}

	recipe, err := h.recipeService.GenerateFromCart(r.Context(), req.CustomerName)
	if err != nil {
		h.logger.Warn("Failed to generate recipe", "customer", req.CustomerName, "error", err)
		statusCode := http.StatusBadRequest
		if strings.Contains(err.Error(), "cart is empty") {
			statusCode = http.StatusConflict
		}
		writeErrorResponse(h.logger, w, statusCode, err.Error())
		reqCtx.StatusCode = statusCode
		h.logger.LogResponse(reqCtx)
		return
	}

	writeJSONResponse(h.logger, w, http.StatusOK, map[string]string{"recipe": recipe})
	reqCtx.StatusCode = http.StatusOK
	h.logger.LogResponse(reqCtx)
}
