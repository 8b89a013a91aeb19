package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/errgroup"

	"github.com/sismk/tracker/internal/config"
	"github.com/sismk/tracker/internal/server"
	"github.com/sismk/tracker/internal/tracker"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, stdout io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))

	// --- Data layer ---
	svc, err := tracker.New(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("opening data dir: %w", err)
	}

	catalog, err := svc.LoadCatalog()
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}
	logger.Info("catalog loaded",
		"game", svc.CurrentGame().ID,
		"characters", len(catalog.Characters),
		"items", len(catalog.Items),
	)

	// --- Editor lock ---
	var editorHash []byte
	if cfg.EditorPassword != "" {
		editorHash, err = bcrypt.GenerateFromPassword([]byte(cfg.EditorPassword), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hashing editor password: %w", err)
		}
		logger.Info("editor lock enabled")
	}

	// --- HTTP Server ---
	srv := server.New(cfg.HTTPAddr, logger, svc, editorHash, cfg.SPADir)

	// --- Run ---
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting http server", "addr", cfg.HTTPAddr)
		return srv.Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")
		return srv.Shutdown(context.Background())
	})

	return g.Wait()
}
