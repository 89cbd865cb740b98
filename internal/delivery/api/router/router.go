// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"leadgrid/internal/delivery/api/middleware"
	"leadgrid/internal/delivery/api/router/handler"
	"leadgrid/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	StrategyHandler   *handler.StrategyHandler
	ZoneHandler       *handler.ZoneHandler
	DraftHandler      *handler.DraftHandler
	BusinessHandler   *handler.BusinessHandler
	ActivationHandler *handler.ActivationHandler
	WebhookHandler    *handler.WebhookHandler
	LinkHandler       *handler.LinkHandler
	SessionHandler    *handler.SessionHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	strategyHandler   *handler.StrategyHandler
	zoneHandler       *handler.ZoneHandler
	draftHandler      *handler.DraftHandler
	businessHandler   *handler.BusinessHandler
	activationHandler *handler.ActivationHandler
	webhookHandler    *handler.WebhookHandler
	linkHandler       *handler.LinkHandler
	sessionHandler    *handler.SessionHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		strategyHandler:   params.StrategyHandler,
		zoneHandler:       params.ZoneHandler,
		draftHandler:      params.DraftHandler,
		businessHandler:   params.BusinessHandler,
		activationHandler: params.ActivationHandler,
		webhookHandler:    params.WebhookHandler,
		linkHandler:       params.LinkHandler,
		sessionHandler:    params.SessionHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Echo matches static segments before parameters, so literal routes such as
// /zones/sweep and /l/:token/qr are never captured by their parameterized siblings.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Payment provider webhook, authenticated by its HMAC signature
	e.POST("/webhooks/payments", r.webhookHandler.HandlePaymentSucceeded)

	// Public short links
	linkGroup := e.Group("/l")
	{
		linkGroup.GET("/:token", r.linkHandler.Redirect)
		linkGroup.GET("/:token/qr", r.linkHandler.QRCode)
	}

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication

	apiV1.GET("/me", r.sessionHandler.Me)

	operator := apiV1.Group("")
	operator.Use(r.authMiddleware.RequireRole(entity.RoleOperator))

	strategiesGroup := operator.Group("/strategies")
	{
		strategiesGroup.POST("", r.strategyHandler.CreateStrategy)
		strategiesGroup.GET("", r.strategyHandler.ListStrategies)
		strategiesGroup.GET("/:id", r.strategyHandler.GetStrategy)
		strategiesGroup.PATCH("/:id/status", r.strategyHandler.ChangeStatus)
		strategiesGroup.POST("/:id/dispatch", r.strategyHandler.DispatchScrapes)
		strategiesGroup.GET("/:id/report", r.zoneHandler.StrategyReport)
		strategiesGroup.GET("/:id/drafts", r.draftHandler.ListDrafts)
	}

	zonesGroup := operator.Group("/zones")
	{
		zonesGroup.POST("/sweep", r.zoneHandler.SweepZones)
		zonesGroup.GET("/:id", r.zoneHandler.GetZone)
		zonesGroup.POST("/:id/scrape", r.zoneHandler.ScrapeZone)
		zonesGroup.POST("/:id/retry", r.zoneHandler.RetryZone)
		zonesGroup.GET("/:id/report", r.zoneHandler.ZoneReport)
	}

	businessesGroup := operator.Group("/businesses")
	{
		businessesGroup.POST("/search", r.businessHandler.SearchBusinesses)
		businessesGroup.POST("/export", r.businessHandler.ExportBusinesses)
	}

	presetsGroup := operator.Group("/filter-presets")
	{
		presetsGroup.POST("", r.businessHandler.CreatePreset)
		presetsGroup.GET("", r.businessHandler.ListPresets)
		presetsGroup.DELETE("/:id", r.businessHandler.DeletePreset)
	}

	activationsGroup := operator.Group("/activations")
	{
		activationsGroup.GET("", r.activationHandler.ListActivations)
		activationsGroup.GET("/:transactionId", r.activationHandler.GetActivation)
	}

	linksGroup := operator.Group("/links")
	{
		linksGroup.POST("", r.linkHandler.IssueLink)
		linksGroup.DELETE("/:id", r.linkHandler.DeactivateLink)
	}

	draftsGroup := apiV1.Group("/drafts")
	{
		draftsGroup.GET("/:id", r.draftHandler.GetDraft)

		review := draftsGroup.Group("")
		review.Use(r.authMiddleware.RequireRole(entity.RoleReviewer))
		review.POST("/:id/promote", r.draftHandler.PromoteDraft)
		review.POST("/:id/discard", r.draftHandler.DiscardDraft)
	}
}
