package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"

	"github.com/randomtoy/cardstore-go/internal/adapters/cards"
	httpadapter "github.com/randomtoy/cardstore-go/internal/adapters/http"
	"github.com/randomtoy/cardstore-go/internal/app"
	"github.com/randomtoy/cardstore-go/internal/config"
)

// maxBodySize matches the 100kb default of the Express JSON parser.
const maxBodySize = "100K"

type rootFlags struct {
	configPath string
	addr       string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	var f rootFlags

	cmd := &cobra.Command{
		Use:   "cardsd",
		Short: "HTTP service for an in-memory collection of playing cards",
		Long: `cardsd serves CRUD endpoints over a volatile playing-card collection.

The collection starts with three seed cards on every start:
  GET    /cards       list all cards
  GET    /cards/:id   fetch one card
  POST   /cards       add a card ({"suit": "...", "value": "..."})
  DELETE /cards/:id   remove a card`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(f)
			if err != nil {
				slog.Error("failed to load config", "error", err)
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "Path to a TOML config file (default $CARDS_CONFIG)")
	cmd.Flags().StringVarP(&f.addr, "addr", "a", "", "Listen address, overrides HTTP_ADDR")
	cmd.Flags().StringVarP(&f.logLevel, "log-level", "l", "", "Log level: debug, info, warn or error")

	return cmd
}

func loadConfig(f rootFlags) (config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return config.Config{}, err
	}
	if f.addr != "" {
		cfg.HTTPAddr = f.addr
	}
	if f.logLevel != "" {
		level, err := config.ParseLogLevel(f.logLevel)
		if err != nil {
			return config.Config{}, err
		}
		cfg.LogLevel = level
	}
	return cfg, nil
}

func serve(ctx context.Context, cfg config.Config) error {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	store, err := cards.NewSeededStore()
	if err != nil {
		logger.Error("failed to seed card store", "error", err)
		return err
	}

	svc := app.NewCardService(store, logger)

	e := newEcho(logger, svc)

	// Graceful shutdown.
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", cfg.HTTPAddr)
		if err := e.Start(cfg.HTTPAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", "error", err)
			return fmt.Errorf("serve %s: %w", cfg.HTTPAddr, err)
		}
		return nil
	case <-ctx.Done():
	}
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
		return err
	}
	return nil
}

func newEcho(logger *slog.Logger, svc *app.CardService) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(httpadapter.RequestIDMiddleware())
	e.Use(httpadapter.LoggingMiddleware(logger))
	e.Use(middleware.BodyLimit(maxBodySize))

	handler := httpadapter.NewHandler(svc)
	handler.Register(e)
	return e
}
