package handler

import (
	"net/http"
	"strings"

	"localconnect/internal/service"
	"localconnect/models"
	"localconnect/pkg/logger"
)

// loginRequest is the body of POST /api/v1/auth/login
type loginRequest struct {
	Username string          `json:"username"`
	Password string          `json:"password"`
	UserType models.UserType `json:"user_type"`
}

// preferenceRequest carries a theme or language change
type preferenceRequest struct {
	Theme    models.Theme    `json:"theme,omitempty"`
	Language models.Language `json:"language,omitempty"`
}

// AuthHandler struct
type AuthHandler struct {
	authService service.AuthServiceInterface
	logger      *logger.Logger
}

// NewAuthHandler creates a new AuthHandler with the given service and logger
func NewAuthHandler(authService service.AuthServiceInterface, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger.WithComponent("auth_handler"),
	}
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	reqCtx := newRequestContext(r)
	h.logger.LogRequest(reqCtx)

	var req loginRequest
	if err := parseRequestBody(r, &req); err != nil {
		h.logger.Warn("Invalid request body for login", "error", err)
		writeErrorResponse(h.logger, w, http.StatusBadRequest, "Invalid request body")
		reqCtx.StatusCode = http.StatusBadRequest
		h.logger.LogResponse(reqCtx)
		return
	}

	session, err := h.authService.Login(req.Username, req.Password, req.UserType)
	if err != nil {
		h.logger.Warn("Login rejected", "username", req.Username, "error", err)
		statusCode := http.StatusUnauthorized
		if strings.Contains(err.Error(), "required") {
			statusCode = http.StatusBadRequest
		}
		writeErrorResponse(h.logger, w, statusCode, err.Error())
		reqCtx.StatusCode = statusCode
		h.logger.LogResponse(reqCtx)
		return
	}

	writeJSONResponse(h.logger, w, http.StatusOK, session)
	reqCtx.StatusCode = http.StatusOK
	h.logger.LogResponse(reqCtx)
}

// Logout handles POST /api/v1/auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	reqCtx := newRequestContext(r)
	h.logger.LogRequest(reqCtx)

	token := bearerToken(r)
	if err := h.authService.Logout(token); err != nil {
		h.logger.Warn("Logout failed", "error", err)
		writeErrorResponse(h.logger, w, http.StatusInternalServerError, "Logout failed")
		reqCtx.StatusCode = http.StatusInternalServerError
		h.logger.LogResponse(reqCtx)
		return
	}

	writeJSONResponse(h.logger, w, http.StatusOK, map[string]string{"message": "Logged out"})
	reqCtx.StatusCode = http.StatusOK
	h.logger.LogResponse(reqCtx)
}

// GetSession handles GET /api/v1/auth/session
func (h *AuthHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	reqCtx := newRequestContext(r)
	h.logger.LogRequest(reqCtx)

	session, err := h.authService.GetSession(bearerToken(r))
	if err != nil {
		writeErrorResponse(h.logger, w, http.StatusUnauthorized, "Invalid session token")
		reqCtx.StatusCode = http.StatusUnauthorized
		h.logger.LogResponse(reqCtx)
		return
	}

	writeJSONResponse(h.logger, w, http.StatusOK, session)
	reqCtx.StatusCode = http.StatusOK
	h.logger.LogResponse(reqCtx)
}

// SetTheme handles PUT /api/v1/auth/preferences/theme
func (h *AuthHandler) SetTheme(w http.ResponseWriter, r *http.Request) {
	reqCtx := newRequestContext(r)
	h.logger.LogRequest(reqCtx)

	var req preferenceRequest
	if err := parseRequestBody(r, &req); err != nil {
		h.logger.Warn("Invalid request body for theme change", "error", err)
		writeErrorResponse(h.logger, w, http.StatusBadRequest, "Invalid request body")
		reqCtx.StatusCode = http.StatusBadRequest
		h.logger.LogResponse(reqCtx)
		return
	}

	session, err := h.authService.SetTheme(bearerToken(r), req.Theme)
	if err != nil {
		statusCode := http.StatusBadRequest
		if strings.Contains(err.Error(), "invalid session") {
			statusCode = http.StatusUnauthorized
		}
		writeErrorResponse(h.logger, w, statusCode, err.Error())
		reqCtx.StatusCode = statusCode
		h.logger.LogResponse(reqCtx)
		return
	}

	writeJSONResponse(h.logger, w, http.StatusOK, session)
	reqCtx.StatusCode = http.StatusOK
	h.logger.LogResponse(reqCtx)
}

// SetLanguage handles PUT /api/v1/auth/preferences/language
func (h *AuthHandler) SetLanguage(w http.ResponseWriter, r *http.Request) {
	reqCtx := newRequestContext(r)
	h.logger.LogRequest(reqCtx)

	var req preferenceRequest
	if err := parseRequestBody(r, &req); err != nil {
		h.logger.Warn("Invalid request body for language change", "error", err)
		writeErrorResponse(h.logger, w, http.StatusBadRequest, "Invalid request body")
		reqCtx.StatusCode = http.StatusBadRequest
		h.logger.LogResponse(reqCtx)
		return
	}

	session, err := h.authService.SetLanguage(bearerToken(r), req.Language)
	if err != nil {
		statusCode := http.StatusBadRequest
		if strings.Contains(err.Error(), "invalid session") {
			statusCode = http.StatusUnauthorized
		}
		writeErrorResponse(h.logger, w, statusCode, err.Error())
		reqCtx.StatusCode = statusCode
		h.logger.LogResponse(reqCtx)
		return
	}

	writeJSONResponse(h.logger, w, http.StatusOK, session)
	reqCtx.StatusCode = http.StatusOK
	h.logger.LogResponse(reqCtx)
}

// bearerToken extracts the session token from the Authorization header
func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	return strings.TrimPrefix(auth, "Bearer ")
}
