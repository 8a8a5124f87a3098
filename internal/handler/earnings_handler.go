package handler

import (
	"net/http"

	"localconnect/internal/service"
	"localconnect/models"
	"localconnect/pkg/logger"
)

// EarningsHandler struct
type EarningsHandler struct {
	earningsService service.EarningsServiceInterface
	logger          *logger.Logger
}

// NewEarningsHandler creates a new EarningsHandler with the given service and logger
func NewEarningsHandler(earningsService service.EarningsServiceInterface, logger *logger.Logger) *EarningsHandler {
	return &EarningsHandler{
		earningsService: earningsService,
		logger:          logger.WithComponent("earnings_handler"),
	}
}

// GetEarningsReport handles GET /api/v1/earnings?vendor=
func (h *EarningsHandler) GetEarningsReport(w http.ResponseWriter, r *http.Request) {
	reqCtx := newRequestContext(r)
	h.logger.LogRequest(reqCtx)

	vendor := r.URL.Query().Get("vendor")
	report, err := h.earningsService.GetEarningsReport(models.VendorLocation(vendor))
	if err != nil {
		h.logger.Warn("Failed to build earnings report", "vendor", vendor, "error", err)
		writeErrorResponse(h.logger, w, http.StatusBadRequest, err.Error())
		reqCtx.StatusCode = http.StatusBadRequest
		h.logger.LogResponse(reqCtx)
		return
	}

	writeJSONResponse(h.logger, w, http.StatusOK, report)
	reqCtx.StatusCode = http.StatusOK
	h.logger.LogResponse(reqCtx)
}
