// Package main is the entry point for the equipment ledger console.
// Its sole responsibility is wiring dependencies together and starting the session.
// No business logic belongs here.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx" driver for database/sql

	"github.com/pkordes/decom-ledger/internal/config"
	"github.com/pkordes/decom-ledger/internal/console"
	"github.com/pkordes/decom-ledger/internal/i18n"
	"github.com/pkordes/decom-ledger/internal/logging"
	"github.com/pkordes/decom-ledger/internal/report"
	"github.com/pkordes/decom-ledger/internal/repo"
	"github.com/pkordes/decom-ledger/internal/service"
	"github.com/pkordes/decom-ledger/internal/validate"
	"github.com/pkordes/decom-ledger/migrations"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "ledger:", err)
		os.Exit(1)
	}
}

// run is main with deferred cleanup that os.Exit would otherwise skip.
func run() error {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// --- Logger -----------------------------------------------------------
	// Stdout is the menu, so JSON log lines go to a rotating file instead.
	// Every line of one run carries the same session_id.
	logFile := logging.NewFileWriter(cfg.LogFile, cfg.LogMaxSizeMB)
	defer logFile.Close()

	logger := logging.New(logFile, cfg.LogLevel).With("session_id", uuid.NewString())
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Store ------------------------------------------------------------
	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		slog.Error("failed to open record store", "backend", cfg.StoreBackend, "error", err)
		return err
	}
	defer closeStore()
	slog.Info("record store ready", "backend", cfg.StoreBackend)

	svc := service.NewEquipmentService(store, validate.New())
	exporter := report.NewFileExporter(cfg.ExportDir, cfg.ExportFormat)

	// --- Terminal ---------------------------------------------------------
	// Raw key reading needs a real terminal; redirected input falls back to
	// plain line reading, with Enter still selecting the highlighted item.
	var (
		term console.Terminal = console.NewPipe(os.Stdin, os.Stdout)
		tty  *console.TTY
	)
	if console.IsTerminal(os.Stdin) {
		tty, err = console.NewTTY(os.Stdin, os.Stdout)
		if err != nil {
			slog.Error("failed to open terminal", "error", err)
			return err
		}
		term = tty
	}

	app := console.New(svc, exporter, term, i18n.NewPrinter(cfg.Locale), logger)

	// The session blocks on stdin, so a signal cannot interrupt it directly.
	// Wait for whichever comes first and put the terminal back on a signal.
	done := make(chan error, 1)
	go func() {
		slog.Info("session started", "locale", i18n.Match(cfg.Locale).String())
		done <- app.Run(ctx)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		if tty != nil {
			_ = tty.Restore()
		}
		slog.Info("received signal, exiting")
		return nil
	}
}

// openStore builds the configured RecordStore and returns a func that releases it.
// The Postgres backend has its migrations applied before the store is returned.
func openStore(ctx context.Context, cfg config.Config) (repo.RecordStore, func(), error) {
	if cfg.StoreBackend != config.BackendPostgres {
		return repo.NewMemoryRecordStore(), func() {}, nil
	}

	// pgxpool.New does not open connections immediately; Ping does.
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("create database pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("connect to database: %w", err)
	}

	// goose needs database/sql, not a pgx pool.
	db, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("open migration connection: %w", err)
	}
	applied, err := migrations.Up(ctx, db)
	db.Close()
	if err != nil {
		pool.Close()
		return nil, nil, err
	}
	slog.Info("database migrations applied", "count", applied)

	return repo.NewPostgresRecordStore(pool), pool.Close, nil
}
