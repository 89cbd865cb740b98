package main

import (
	"context"
	"log/slog"
	"os"

	"leadgrid/config"
	"leadgrid/internal/delivery"
	"leadgrid/internal/delivery/sweeper"
	"leadgrid/internal/delivery/worker"
	"leadgrid/internal/delivery/worker/handler"
	"leadgrid/internal/infra/archive"
	"leadgrid/internal/infra/cache"
	logs "leadgrid/internal/infra/log"
	"leadgrid/internal/infra/persistence/postgres"
	"leadgrid/internal/infra/provider"
	"leadgrid/internal/infra/pubsub"
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
		injectHandler(),
		injectDelivery(),
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
			postgres.NewZoneRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			cache.NewReportCache,
			archive.NewRawArchive,
			pubsub.NewEventPublisher,
			provider.NewHTTPProvider,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewZoneService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				sweeper.NewSweeper,
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

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
