package handler

import (
	"log/slog"
	"net/http"

	"leadgrid/internal/delivery/api/response"
	"leadgrid/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DraftHandlerParams holds dependencies for DraftHandler, injected by Fx.
type DraftHandlerParams struct {
	fx.In

	DraftUC usecase.DraftUsecase
	Logger  *slog.Logger
}

// DraftHandler holds dependencies for draft campaign review handlers
type DraftHandler struct {
	draftUC usecase.DraftUsecase
	logger  *slog.Logger
}

// NewDraftHandler is the constructor for DraftHandler
func NewDraftHandler(params DraftHandlerParams) *DraftHandler {
	return &DraftHandler{
		draftUC: params.DraftUC,
		logger:  params.Logger,
	}
}

// ListDrafts returns the drafts of a strategy
func (h *DraftHandler) ListDrafts(c echo.Context) error {
	strategyID, err := parseIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	drafts, err := h.draftUC.ListDrafts(c.Request().Context(), strategyID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, drafts)
}

// GetDraft returns a draft campaign
func (h *DraftHandler) GetDraft(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	draft, err := h.draftUC.GetDraft(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, draft)
}

// PromoteDraft approves a draft and hands it to outreach
func (h *DraftHandler) PromoteDraft(c echo.Context) error {
	reviewerID, err := operatorID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	draft, err := h.draftUC.PromoteDraft(c.Request().Context(), id, reviewerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, draft)
}

// DiscardDraft rejects a draft
func (h *DraftHandler) DiscardDraft(c echo.Context) error {
	reviewerID, err := operatorID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	draft, err := h.draftUC.DiscardDraft(c.Request().Context(), id, reviewerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, draft)
}
