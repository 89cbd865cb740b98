// Package handler contains the echo handlers of the admin API.
package handler

import (
	"net/http"
	"strconv"

	"leadgrid/internal/delivery/api/middleware"
	domainerrors "leadgrid/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

var errMissingOperator = domainerrors.NewBaseError(http.StatusUnauthorized, "INVALID_TOKEN", "Invalid user ID in token", "")

// HealthCheck reports that the process is serving.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// parseIDParam parses a UUID path parameter.
func parseIDParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.NewValidationError(name, "must be a UUID")
	}

	return id, nil
}

// queryInt parses an optional integer query parameter.
func queryInt(c echo.Context, name string) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domainerrors.NewValidationError(name, "must be an integer")
	}

	return value, nil
}

// operatorID returns the operator authenticated by the auth middleware.
func operatorID(c echo.Context) (uuid.UUID, error) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return uuid.Nil, errMissingOperator
	}

	return userID, nil
}
