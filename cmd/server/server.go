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
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"

	"github.com/paragonforge/planner-api/internal/clients/calculation"
	"github.com/paragonforge/planner-api/internal/clients/gamedata"
	"github.com/paragonforge/planner-api/internal/handlers/rest"
	redisclient "github.com/paragonforge/planner-api/internal/redis"
	"github.com/paragonforge/planner-api/internal/services/session"
	"github.com/paragonforge/planner-api/internal/storage"
)

// serverConfig is populated from the environment
type serverConfig struct {
	Port              int           `env:"PORT" envDefault:"8080"`
	RedisAddr         string        `env:"REDIS_ADDR"`
	CalculationAPIURL string        `env:"CALCULATION_API_URL,required"`
	GameDataAPIURL    string        `env:"GAMEDATA_API_URL,required"`
	RecalcDebounce    time.Duration `env:"RECALC_DEBOUNCE" envDefault:"200ms"`
}

var serverPort int

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP server",
	Long:  `Start the planner API HTTP server with all configured services.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&serverPort, "port", 0, "HTTP server port (overrides PORT)")
}

func runServer(cmd *cobra.Command, args []string) error {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	var cfg serverConfig
	if err := env.Parse(&cfg); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	if serverPort != 0 {
		cfg.Port = serverPort
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		logger.Info("received shutdown signal, gracefully stopping")
		cancel()
	}()

	// Sessions survive restarts only with Redis; the in-memory store is for
	// local development
	var store storage.Store
	if cfg.RedisAddr != "" {
		client, err := redisclient.NewClient(cfg.RedisAddr, nil)
		if err != nil {
			return fmt.Errorf("failed to create redis client: %w", err)
		}
		store = storage.NewRedis(client)
		logger.Info("using redis storage", "addr", cfg.RedisAddr)
	} else {
		store = storage.NewMemory()
		logger.Warn("REDIS_ADDR not set, using in-memory storage")
	}

	calcClient, err := calculation.New(&calculation.Config{
		BaseURL: cfg.CalculationAPIURL,
	})
	if err != nil {
		return fmt.Errorf("failed to create calculation client: %w", err)
	}

	gameDataClient, err := gamedata.New(&gamedata.Config{
		BaseURL: cfg.GameDataAPIURL,
	})
	if err != nil {
		return fmt.Errorf("failed to create gamedata client: %w", err)
	}

	sessions, err := session.NewManager(&session.Config{
		Storage:        store,
		Calculation:    calcClient,
		DebounceWindow: cfg.RecalcDebounce,
		Logger:         logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create session manager: %w", err)
	}

	handler, err := rest.NewHandler(&rest.Config{
		Sessions: sessions,
		GameData: gameDataClient,
		Logger:   logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create handler: %w", err)
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           handler.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		logger.Info("HTTP server starting", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down HTTP server")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed, forcing close", "error", err)
			_ = srv.Close()
		}
		sessions.Shutdown()

		logger.Info("server stopped")
		return nil
	case err := <-errChan:
		return err
	}
}
