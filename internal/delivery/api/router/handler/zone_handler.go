package handler

import (
	"log/slog"
	"net/http"

	"leadgrid/internal/delivery/api/response"
	"leadgrid/internal/domain/entity"
	"leadgrid/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ZoneHandlerParams holds dependencies for ZoneHandler, injected by Fx.
type ZoneHandlerParams struct {
	fx.In

	ZoneUC   usecase.ZoneUsecase
	ReportUC usecase.ReportUsecase
	Logger   *slog.Logger
}

// ZoneHandler holds dependencies for zone and coverage report handlers
type ZoneHandler struct {
	zoneUC   usecase.ZoneUsecase
	reportUC usecase.ReportUsecase
	logger   *slog.Logger
}

// NewZoneHandler is the constructor for ZoneHandler
func NewZoneHandler(params ZoneHandlerParams) *ZoneHandler {
	return &ZoneHandler{
		zoneUC:   params.ZoneUC,
		reportUC: params.ReportUC,
		logger:   params.Logger,
	}
}

// GetZone returns a zone
func (h *ZoneHandler) GetZone(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	zone, err := h.zoneUC.GetZone(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, zone)
}

// ScrapeZone runs a scrape of one zone synchronously
func (h *ZoneHandler) ScrapeZone(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req ScrapeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid scrape input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.zoneUC.ScrapeZone(c.Request().Context(), id, entity.ScrapeMode(req.Mode))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// RetryZone returns a failed zone to pending
func (h *ZoneHandler) RetryZone(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	zone, err := h.zoneUC.RetryZone(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, zone)
}

// ZoneReport returns the coverage report of a zone
func (h *ZoneHandler) ZoneReport(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	report, err := h.reportUC.ZoneReport(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, report)
}

// StrategyReport returns the coverage rollup of a strategy
func (h *ZoneHandler) StrategyReport(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	report, err := h.reportUC.StrategyReport(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, report)
}

// SweepZones returns zones stuck in progress to pending
func (h *ZoneHandler) SweepZones(c echo.Context) error {
	released, err := h.zoneUC.ReleaseStaleZones(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	h.logger.Info("Stale zones released on request", slog.Int("released", released))

	return response.Success(c, http.StatusOK, map[string]int{"released": released})
}
