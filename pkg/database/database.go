package database

import (
	"fmt"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/suteetoe/employee-service/pkg/config"
)

// InitDB opens the database described by cfg and configures the pool
func InitDB(cfg *config.DBConfig, log *zap.Logger) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: NewGormLogger(log, ParseLogLevel(cfg.LogLevel, gormlogger.Warn)),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	maxOpen, lifetime := cfg.MaxOpenConns, cfg.ConnMaxLifetime
	if cfg.Driver == config.DriverSQLite && isMemoryDSN(cfg.GetDSN()) {
		// every new connection would see its own empty in-memory database
		maxOpen, lifetime = 1, 0
	}

	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if maxOpen > 0 {
		sqlDB.SetMaxOpenConns(maxOpen)
	}
	if lifetime > 0 {
		sqlDB.SetConnMaxLifetime(lifetime)
	}

	log.Info("Database connected",
		zap.String("driver", cfg.Driver),
		zap.Int("max_open_conns", maxOpen))

	return db, nil
}

// MigrateModels runs migrations for the provided models
func MigrateModels(db *gorm.DB, log *zap.Logger, models ...interface{}) error {
	if db == nil {
		return fmt.Errorf("database is not initialized")
	}

	start := time.Now()
	if err := db.AutoMigrate(models...); err != nil {
		log.Error("Database migration failed", zap.Error(err))
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	log.Info("Database migration completed",
		zap.Int("models", len(models)),
		zap.Duration("duration", time.Since(start)))
	return nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func dialectorFor(cfg *config.DBConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case config.DriverPostgres, "":
		return postgres.New(postgres.Config{
			DSN:                  cfg.GetDSN(),
			PreferSimpleProtocol: true, // Disables implicit prepared statement usage
		}), nil
	case config.DriverSQLite:
		return sqlite.Open(cfg.GetDSN()), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

func isMemoryDSN(dsn string) bool {
	return strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory")
}
