// Package migrations embeds the SQL schema and applies it with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"
	"strings"

	"leadgrid/internal/errors"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedded embed.FS

// Supported commands
const (
	CommandUp     = "up"
	CommandDown   = "down"
	CommandStatus = "status"
	CommandReset  = "reset"
)

// Run applies a goose command against db using the embedded migrations.
func Run(ctx context.Context, db *sql.DB, command string, logger *slog.Logger) error {
	goose.SetBaseFS(embedded)
	goose.SetLogger(&gooseLogger{logger: logger})

	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Wrap(err, "failed to set goose dialect")
	}

	var err error
	switch command {
	case CommandUp:
		err = goose.UpContext(ctx, db, ".")
	case CommandDown:
		err = goose.DownContext(ctx, db, ".")
	case CommandStatus:
		err = goose.StatusContext(ctx, db, ".")
	case CommandReset:
		err = goose.ResetContext(ctx, db, ".")
	default:
		return errors.Errorf("unknown migration command: %s", command)
	}

	if err != nil {
		return errors.Wrapf(err, "migration %s failed", command)
	}

	return nil
}

// gooseLogger routes goose output through slog.
type gooseLogger struct {
	logger *slog.Logger
}

func (l *gooseLogger) Fatalf(format string, v ...any) {
	l.logger.Error("goose", slog.String("message", strings.TrimSpace(fmt.Sprintf(format, v...))))
}

func (l *gooseLogger) Printf(format string, v ...any) {
	l.logger.Info("goose", slog.String("message", strings.TrimSpace(fmt.Sprintf(format, v...))))
}
