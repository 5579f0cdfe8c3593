package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/m04kA/RestaurantBookingService/internal/config"
	"github.com/m04kA/RestaurantBookingService/internal/integrations/discord"
	createBookingUC "github.com/m04kA/RestaurantBookingService/internal/usecase/create_booking"
	"github.com/m04kA/RestaurantBookingService/pkg/logger"
	"github.com/m04kA/RestaurantBookingService/pkg/metrics"
)

func newServeCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), *configPath)
		},
	}
}

func runServe(ctx context.Context, configPath string) error {
	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer log.Close()

	log.Info("Starting RestaurantBookingService...")
	log.Info("Configuration loaded from %s", configPath)

	loc, err := cfg.Location()
	if err != nil {
		return err
	}
	log.Info("Restaurant timezone: %s", loc)

	// Метрики
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	stopMetricsCh := make(chan struct{})
	defer close(stopMetricsCh)

	st, err := openStorage(ctx, cfg.Database, metricsCollector, stopMetricsCh, log)
	if err != nil {
		return err
	}
	defer st.close()

	notifier, err := newNotifier(cfg.Discord, loc, log)
	if err != nil {
		return err
	}

	r := newRouter(routerDeps{
		storage:           st,
		loc:               loc,
		notifier:          notifier,
		metrics:           metricsCollector,
		metricsPath:       cfg.Metrics.Path,
		adminPasswordHash: cfg.Admin.PasswordHash,
		sessionSecret:     cfg.Admin.SessionSecret,
		sessionTTL:        cfg.Admin.SessionTTL(),
		cookieSecure:      cfg.Admin.CookieSecure,
		log:               log,
	})

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	case <-quit:
	case <-ctx.Done():
	}

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}

func newNotifier(cfg config.DiscordConfig, loc *time.Location, log *logger.Logger) (createBookingUC.Notifier, error) {
	if !cfg.Enabled {
		log.Info("Discord notifications disabled")
		return discord.NopNotifier{}, nil
	}

	session, err := discord.NewSession(cfg.Token)
	if err != nil {
		return nil, err
	}

	log.Info("Discord notifications enabled for channel %s", cfg.ChannelID)
	return discord.NewNotifier(session, cfg.ChannelID, loc, log), nil
}
