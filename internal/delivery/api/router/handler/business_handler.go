package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"leadgrid/internal/delivery/api/response"
	"leadgrid/internal/domain/entity"
	"leadgrid/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// BusinessHandlerParams holds dependencies for BusinessHandler, injected by Fx.
type BusinessHandlerParams struct {
	fx.In

	FilterUC usecase.BusinessFilterUsecase
	Logger   *slog.Logger
}

// BusinessHandler holds dependencies for business search and filter preset handlers
type BusinessHandler struct {
	filterUC usecase.BusinessFilterUsecase
	logger   *slog.Logger
}

// NewBusinessHandler is the constructor for BusinessHandler
func NewBusinessHandler(params BusinessHandlerParams) *BusinessHandler {
	return &BusinessHandler{
		filterUC: params.FilterUC,
		logger:   params.Logger,
	}
}

// SearchBusinessesRequest represents the request body of a business search or export
type SearchBusinessesRequest struct {
	PresetID *uuid.UUID        `json:"preset_id,omitempty"`
	Filter   entity.FilterSpec `json:"filter"`
	Page     int               `json:"page" validate:"gte=0"`
	PageSize int               `json:"page_size" validate:"gte=0"`
}

func (r *SearchBusinessesRequest) toInput() *usecase.BusinessSearchInput {
	return &usecase.BusinessSearchInput{
		PresetID: r.PresetID,
		Filter:   r.Filter,
		Page:     r.Page,
		PageSize: r.PageSize,
	}
}

// CreatePresetRequest represents the request body for creating a filter preset
type CreatePresetRequest struct {
	Name     string            `json:"name" validate:"required,max=255"`
	IsPublic bool              `json:"is_public"`
	Filter   entity.FilterSpec `json:"filter" validate:"required"`
}

// SearchBusinesses returns one page of businesses matching the filter
func (h *BusinessHandler) SearchBusinesses(c echo.Context) error {
	callerID, err := operatorID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req SearchBusinessesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid search input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.filterUC.Search(c.Request().Context(), callerID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// ExportBusinesses streams the matching businesses as a spreadsheet
func (h *BusinessHandler) ExportBusinesses(c echo.Context) error {
	callerID, err := operatorID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req SearchBusinessesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid export input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	file, err := h.filterUC.Export(c.Request().Context(), callerID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+file.Filename+`"`)
	c.Response().Header().Set("X-Export-Rows", strconv.Itoa(file.Rows))

	return c.Blob(http.StatusOK, file.ContentType, file.Content)
}

// CreatePreset stores a filter preset owned by the caller
func (h *BusinessHandler) CreatePreset(c echo.Context) error {
	ownerID, err := operatorID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CreatePresetRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid preset input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	preset, err := h.filterUC.CreatePreset(c.Request().Context(), ownerID, &usecase.CreatePresetInput{
		Name:     req.Name,
		IsPublic: req.IsPublic,
		Filter:   req.Filter,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, preset)
}

// ListPresets returns the presets visible to the caller
func (h *BusinessHandler) ListPresets(c echo.Context) error {
	callerID, err := operatorID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	presets, err := h.filterUC.ListPresets(c.Request().Context(), callerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, presets)
}

// DeletePreset removes a preset owned by the caller
func (h *BusinessHandler) DeletePreset(c echo.Context) error {
	callerID, err := operatorID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	presetID, err := parseIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.filterUC.DeletePreset(c.Request().Context(), callerID, presetID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
