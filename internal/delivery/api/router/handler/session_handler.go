package handler

import (
	"net/http"

	"leadgrid/internal/delivery/api/middleware"
	"leadgrid/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// SessionHandler reports the identity carried by an access token
type SessionHandler struct{}

// NewSessionHandler creates a new SessionHandler instance
func NewSessionHandler() *SessionHandler {
	return &SessionHandler{}
}

// Me returns the operator ID and roles set by the auth middleware
func (h *SessionHandler) Me(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "CONTEXT_ERROR", "User ID not found in context")
	}

	roles, ok := middleware.GetRoles(c)
	if !ok {
		return response.Unauthorized(c, "CONTEXT_ERROR", "User roles not found in context")
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"userID": userID,
		"roles":  roles.ToStrings(),
	})
}
