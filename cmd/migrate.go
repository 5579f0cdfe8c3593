package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/m04kA/RestaurantBookingService/internal/config"
	"github.com/m04kA/RestaurantBookingService/migrations"
	"github.com/m04kA/RestaurantBookingService/pkg/logger"
	"github.com/m04kA/RestaurantBookingService/pkg/txmanager"
)

func newMigrateCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database schema migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrate(cmd.Context(), *configPath)
		},
	}
}

func runMigrate(ctx context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer log.Close()

	if cfg.Database.Driver != config.DriverPostgres {
		log.Info("Nothing to migrate for driver %s", cfg.Database.Driver)
		return nil
	}

	db, closeDB, err := openPostgres(ctx, cfg.Database, nil, nil, log)
	if err != nil {
		return err
	}
	defer closeDB()

	applied, err := migrations.NewMigrator(db, txmanager.NewTransactionManager(db), log).Up(ctx)
	if err != nil {
		return err
	}

	log.Info("Migrations applied: %d", applied)
	return nil
}
