package handler

import (
	"log/slog"
	"net/http"

	"leadgrid/internal/delivery/api/response"
	"leadgrid/internal/domain/entity"
	"leadgrid/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb"
	"go.uber.org/fx"
)

// StrategyHandlerParams holds dependencies for StrategyHandler, injected by Fx.
type StrategyHandlerParams struct {
	fx.In

	StrategyUC usecase.StrategyUsecase
	Logger     *slog.Logger
}

// StrategyHandler holds dependencies for strategy-related handlers
type StrategyHandler struct {
	strategyUC usecase.StrategyUsecase
	logger     *slog.Logger
}

// NewStrategyHandler is the constructor for StrategyHandler
func NewStrategyHandler(params StrategyHandlerParams) *StrategyHandler {
	return &StrategyHandler{
		strategyUC: params.StrategyUC,
		logger:     params.Logger,
	}
}

// BoundsRequest is a lon/lat bounding box.
type BoundsRequest struct {
	MinLng float64 `json:"min_lng" validate:"min=-180,max=180"`
	MinLat float64 `json:"min_lat" validate:"min=-90,max=90"`
	MaxLng float64 `json:"max_lng" validate:"min=-180,max=180,gtfield=MinLng"`
	MaxLat float64 `json:"max_lat" validate:"min=-90,max=90,gtfield=MinLat"`
}

func (b BoundsRequest) toBound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{b.MinLng, b.MinLat},
		Max: orb.Point{b.MaxLng, b.MaxLat},
	}
}

// CreateStrategyRequest represents the request body for creating a strategy
type CreateStrategyRequest struct {
	Region   string        `json:"region" validate:"required,max=255"`
	Category string        `json:"category" validate:"required,max=255"`
	Bounds   BoundsRequest `json:"bounds"`
}

// ChangeStatusRequest represents the request body for a strategy status change
type ChangeStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=draft active archived"`
}

// ScrapeRequest selects the mode of a scrape run
type ScrapeRequest struct {
	Mode string `json:"mode" validate:"required,oneof=draft live"`
}

// CreateStrategy generates a strategy and its zones for a market
func (h *StrategyHandler) CreateStrategy(c echo.Context) error {
	var req CreateStrategyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid strategy input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	detail, err := h.strategyUC.CreateStrategy(c.Request().Context(), entity.MarketDescriptor{
		Region:   req.Region,
		Category: req.Category,
		Bounds:   req.Bounds.toBound(),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, detail)
}

// ListStrategies returns strategies, newest first
func (h *StrategyHandler) ListStrategies(c echo.Context) error {
	limit, err := queryInt(c, "limit")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	offset, err := queryInt(c, "offset")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	strategies, err := h.strategyUC.ListStrategies(c.Request().Context(), limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, strategies)
}

// GetStrategy returns a strategy and its zones
func (h *StrategyHandler) GetStrategy(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	detail, err := h.strategyUC.GetStrategy(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, detail)
}

// ChangeStatus moves a strategy along its lifecycle
func (h *StrategyHandler) ChangeStatus(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req ChangeStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	strategy, err := h.strategyUC.ChangeStatus(c.Request().Context(), id, entity.StrategyStatus(req.Status))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, strategy)
}

// DispatchScrapes publishes a scrape message for every pending zone of a strategy
func (h *StrategyHandler) DispatchScrapes(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req ScrapeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid dispatch input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.strategyUC.DispatchScrapes(c.Request().Context(), id, entity.ScrapeMode(req.Mode))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	h.logger.Info("Strategy scrapes dispatched",
		slog.String("strategyID", id.String()),
		slog.Int("dispatched", len(result.Dispatched)),
		slog.Int("failed", len(result.Failed)),
	)

	return response.Success(c, http.StatusAccepted, result)
}
