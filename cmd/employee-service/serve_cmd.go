package main

import (
	"context"
	"errors"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/suteetoe/employee-service/internal/handler"
	"github.com/suteetoe/employee-service/internal/repository"
	"github.com/suteetoe/employee-service/internal/seed"
	"github.com/suteetoe/employee-service/internal/service"
	"github.com/suteetoe/employee-service/pkg/database"
	"github.com/suteetoe/employee-service/pkg/metrics"
	"github.com/suteetoe/employee-service/pkg/validator"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the web application",
		RunE: func(cmd *cobra.Command, args []string) error {
			appConfig, log, db, err := bootstrap(false)
			if err != nil {
				return err
			}
			defer log.Sync()
			defer database.Close(db)

			log.Info("Starting employee-service",
				zap.String("environment", appConfig.Server.Env),
				zap.String("port", appConfig.Server.Port))

			// Initialize Prometheus metrics
			m := metrics.New(appConfig.Metrics.Prefix, prometheus.DefaultRegisterer)
			log.Info("Prometheus metrics initialized",
				zap.String("metrics_prefix", appConfig.Metrics.Prefix))

			repo := repository.NewEmployeeRepository(db, m)
			svc := service.NewEmployeeService(repo, validator.New(), m,
				service.WithPageSize(appConfig.Listing.PageSize))

			if appConfig.Seed.OnStart {
				rng := rand.New(rand.NewPCG(uint64(appConfig.Seed.RandomSeed), uint64(appConfig.Seed.RandomSeed)))
				if _, err := seed.Employees(cmd.Context(), repo, rng, time.Now()); err != nil {
					log.Error("Failed to seed employees", zap.Error(err))
					return err
				}
			}

			e, err := handler.NewServer(handler.ServerOptions{
				Service:  svc,
				DB:       repo,
				Logger:   log,
				Metrics:  m,
				Gatherer: prometheus.DefaultGatherer,
				CSRF:     appConfig.Server.CSRFEnabled,
			})
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				port := appConfig.Server.Port
				log.Info("Starting server", zap.String("port", port))
				if err := e.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			select {
			case err := <-errCh:
				if err != nil {
					log.Error("Server error", zap.Error(err))
					return err
				}
				return nil
			case <-ctx.Done():
			}

			log.Info("Shutting down server", zap.Duration("timeout", appConfig.Server.ShutdownTimeout))
			shutdownCtx, cancel := context.WithTimeout(context.Background(), appConfig.Server.ShutdownTimeout)
			defer cancel()
			if err := e.Shutdown(shutdownCtx); err != nil {
				log.Error("Graceful shutdown failed", zap.Error(err))
				return err
			}
			log.Info("Server stopped")
			return nil
		},
	}
}
