package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"leadgrid/config"
	logs "leadgrid/internal/infra/log"
	"leadgrid/internal/infra/persistence/migrations"
	"leadgrid/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Supported commands: up, down, status, reset.

func main() {
	flag.Usage = printUsage
	flag.Parse()

	command := migrations.CommandUp
	if flag.NArg() > 0 {
		command = flag.Arg(0)
	}

	if err := run(context.Background(), command); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, command string) error {
	var (
		db     *gorm.DB
		logger *slog.Logger
	)

	app := fx.New(
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
		),
		fx.Populate(&db, &logger),
		fx.NopLogger,
	)

	if err := app.Start(ctx); err != nil {
		return errors.Wrap(err, "failed to start migration app")
	}
	defer func() {
		if err := app.Stop(ctx); err != nil {
			slog.Error("Failed to stop migration app", slog.Any("error", err))
		}
	}()

	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get sql.DB")
	}

	if err := migrations.Run(ctx, sqlDB, command, logger); err != nil {
		return err
	}

	logger.Info("Migration finished", slog.String("command", command))

	return nil
}

func printUsage() {
	fmt.Println("Usage: migrate [command]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  up      Apply all pending migrations (default)")
	fmt.Println("  down    Roll back the latest migration")
	fmt.Println("  status  Print the migration status")
	fmt.Println("  reset   Roll back every migration")
}
