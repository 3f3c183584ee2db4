package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/suteetoe/employee-service/internal/model"
	"github.com/suteetoe/employee-service/pkg/config"
	"github.com/suteetoe/employee-service/pkg/database"
	"github.com/suteetoe/employee-service/pkg/logger"
)

func newRootCmd() *cobra.Command {
	serve := newServeCmd()

	cmd := &cobra.Command{
		Use:           "employee-service",
		Short:         "Employee records web application",
		SilenceUsage:  true,
		SilenceErrors: false,
		// running without a subcommand serves
		RunE: serve.RunE,
	}
	cmd.AddCommand(serve, newMigrateCmd(), newSeedCmd())
	return cmd
}

// bootstrap loads configuration, initialises the logger and opens the
// database, running migrations when enabled or forced.
func bootstrap(forceMigrate bool) (*config.Config, *zap.Logger, *gorm.DB, error) {
	appConfig, err := config.Load()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := logger.InitLogger(appConfig); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.GetLogger()
	log.Info("Configuration loaded", appConfig.LogFields()...)

	db, err := database.InitDB(&appConfig.DB, log)
	if err != nil {
		return nil, nil, nil, err
	}

	if forceMigrate || appConfig.DB.AutoMigrate {
		if err := database.MigrateModels(db, log, &model.Employee{}); err != nil {
			_ = database.Close(db)
			return nil, nil, nil, err
		}
	}

	return appConfig, log, db, nil
}
