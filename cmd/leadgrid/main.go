package main

import (
	"context"
	"log/slog"
	"os"

	"leadgrid/config"
	"leadgrid/internal/delivery"
	"leadgrid/internal/delivery/api"
	apimiddleware "leadgrid/internal/delivery/api/middleware"
	"leadgrid/internal/delivery/api/router/handler"
	"leadgrid/internal/infra/archive"
	"leadgrid/internal/infra/auth"
	"leadgrid/internal/infra/cache"
	"leadgrid/internal/infra/export"
	logs "leadgrid/internal/infra/log"
	"leadgrid/internal/infra/payment"
	"leadgrid/internal/infra/persistence/postgres"
	"leadgrid/internal/infra/provider"
	"leadgrid/internal/infra/pubsub"
	"leadgrid/internal/infra/qrcode"
	"leadgrid/internal/infra/strategy"
	"leadgrid/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewStrategyRepository,
			postgres.NewZoneRepository,
			postgres.NewBusinessRepository,
			postgres.NewDraftCampaignRepository,
			postgres.NewFilterPresetRepository,
			postgres.NewSiteRepository,
			postgres.NewCustomerRepository,
			postgres.NewSubscriptionRepository,
			postgres.NewActivationRepository,
			postgres.NewShortLinkRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			cache.NewReportCache,
			archive.NewRawArchive,
			pubsub.NewEventPublisher,
			provider.NewHTTPProvider,
			payment.NewHTTPGateway,
			strategy.NewStrategyGenerator,
			export.NewXLSXExporter,
			qrcode.NewFromConfig,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewStrategyService,
			impl.NewZoneService,
			impl.NewCoverageReportService,
			impl.NewDraftService,
			impl.NewBusinessFilterService,
			impl.NewShortLinkService,
			impl.NewActivationService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewStrategyHandler,
			handler.NewZoneHandler,
			handler.NewDraftHandler,
			handler.NewBusinessHandler,
			handler.NewActivationHandler,
			handler.NewWebhookHandler,
			handler.NewLinkHandler,
			handler.NewSessionHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
