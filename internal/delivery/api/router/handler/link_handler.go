package handler

import (
	"log/slog"
	"net/http"

	"leadgrid/internal/delivery/api/response"
	"leadgrid/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LinkHandlerParams holds dependencies for LinkHandler, injected by Fx.
type LinkHandlerParams struct {
	fx.In

	ShortLinkUC usecase.ShortLinkUsecase
	Logger      *slog.Logger
}

// LinkHandler serves short link redirects and management
type LinkHandler struct {
	shortLinkUC usecase.ShortLinkUsecase
	logger      *slog.Logger
}

// NewLinkHandler is the constructor for LinkHandler
func NewLinkHandler(params LinkHandlerParams) *LinkHandler {
	return &LinkHandler{
		shortLinkUC: params.ShortLinkUC,
		logger:      params.Logger,
	}
}

// IssueLinkRequest represents the request body for issuing a short link
type IssueLinkRequest struct {
	Destination string `json:"destination" validate:"required,url"`
	LinkType    string `json:"link_type" validate:"required,max=32"`
}

type issuedLink struct {
	ID       string `json:"id"`
	Token    string `json:"token"`
	ShortURL string `json:"short_url"`
}

// Redirect resolves a token and redirects to its destination
func (h *LinkHandler) Redirect(c echo.Context) error {
	destination, err := h.shortLinkUC.Resolve(c.Request().Context(), c.Param("token"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Redirect(http.StatusFound, destination)
}

// QRCode renders the short URL of a token as a PNG
func (h *LinkHandler) QRCode(c echo.Context) error {
	png, err := h.shortLinkUC.GenerateQRCode(c.Request().Context(), c.Param("token"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// IssueLink returns the active link of a destination, creating it if absent
func (h *LinkHandler) IssueLink(c echo.Context) error {
	var req IssueLinkRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid link input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	link, err := h.shortLinkUC.Issue(c.Request().Context(), req.Destination, req.LinkType)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, issuedLink{
		ID:       link.ID.String(),
		Token:    link.Token,
		ShortURL: h.shortLinkUC.PublicURL(link.Token),
	})
}

// DeactivateLink soft-deletes a short link
func (h *LinkHandler) DeactivateLink(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.shortLinkUC.Deactivate(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
