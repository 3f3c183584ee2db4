package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suteetoe/employee-service/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir()) // no .env here

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "employee-service", cfg.ServiceName)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Env)
	assert.True(t, cfg.Server.CSRFEnabled)
	assert.Equal(t, config.DriverPostgres, cfg.DB.Driver)
	assert.Equal(t, time.Hour, cfg.DB.ConnMaxLifetime)
	assert.Equal(t, 5, cfg.Listing.PageSize)
	assert.False(t, cfg.Seed.OnStart)
	assert.Equal(t, int64(42), cfg.Seed.RandomSeed)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("APP_ENV", "production")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_SQLITE_PATH", "/tmp/emp.db")
	t.Setenv("LIST_PAGE_SIZE", "6")
	t.Setenv("DB_CONN_MAX_LIFETIME", "30m")
	t.Setenv("SEED_ON_START", "true")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, config.DriverSQLite, cfg.DB.Driver)
	assert.Equal(t, "/tmp/emp.db", cfg.DB.GetDSN())
	assert.Equal(t, 6, cfg.Listing.PageSize)
	assert.Equal(t, 30*time.Minute, cfg.DB.ConnMaxLifetime)
	assert.True(t, cfg.Seed.OnStart)
}

func TestLoad_RejectsInvalidSettings(t *testing.T) {
	t.Run("driver", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv("DB_DRIVER", "mysql")

		_, err := config.Load()
		require.ErrorContains(t, err, "unsupported DB_DRIVER")
	})

	t.Run("page size", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv("LIST_PAGE_SIZE", "0")

		_, err := config.Load()
		require.ErrorContains(t, err, "LIST_PAGE_SIZE")
	})

	t.Run("unparsable int", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv("DB_MAX_OPEN_CONNS", "many")

		_, err := config.Load()
		require.ErrorContains(t, err, "failed to parse environment")
	})
}

func TestDBConfig_GetDSN(t *testing.T) {
	t.Parallel()

	c := config.DBConfig{
		Driver:   config.DriverPostgres,
		Host:     "db",
		Port:     "5433",
		User:     "u",
		Password: "p",
		DBName:   "emp",
		SSLMode:  "disable",
	}
	assert.Equal(t, "host=db port=5433 user=u password=p dbname=emp sslmode=disable", c.GetDSN())

	c.DSN = "postgres://override"
	assert.Equal(t, "postgres://override", c.GetDSN())
}

func TestConfig_LogFieldsOmitPassword(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{DB: config.DBConfig{Password: "s3cret"}}
	for _, f := range cfg.LogFields() {
		assert.NotEqual(t, "s3cret", f.String, "field %s leaks the password", f.Key)
	}
}
