package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"leadgrid/internal/delivery/api/response"
	"leadgrid/internal/domain/entity"
	"leadgrid/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ActivationHandlerParams holds dependencies for ActivationHandler, injected by Fx.
type ActivationHandlerParams struct {
	fx.In

	ActivationUC usecase.ActivationUsecase
	Logger       *slog.Logger
}

// ActivationHandler holds dependencies for activation lookup handlers
type ActivationHandler struct {
	activationUC usecase.ActivationUsecase
	logger       *slog.Logger
}

// NewActivationHandler is the constructor for ActivationHandler
func NewActivationHandler(params ActivationHandlerParams) *ActivationHandler {
	return &ActivationHandler{
		activationUC: params.ActivationUC,
		logger:       params.Logger,
	}
}

// GetActivation returns the activation of a payment transaction
func (h *ActivationHandler) GetActivation(c echo.Context) error {
	activation, err := h.activationUC.GetActivation(c.Request().Context(), c.Param("transactionId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, activation)
}

// ListActivations returns activations filtered by a comma-separated status list
func (h *ActivationHandler) ListActivations(c echo.Context) error {
	limit, err := queryInt(c, "limit")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var statuses []entity.ActivationStatus
	if raw := c.QueryParam("status"); raw != "" {
		for _, status := range strings.Split(raw, ",") {
			statuses = append(statuses, entity.ActivationStatus(strings.TrimSpace(status)))
		}
	}

	activations, err := h.activationUC.ListActivations(c.Request().Context(), statuses, limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, activations)
}
