package database_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	gormlogger "gorm.io/gorm/logger"

	"github.com/suteetoe/employee-service/pkg/config"
	"github.com/suteetoe/employee-service/pkg/database"
)

type widget struct {
	ID   uint
	Name string
}

func TestInitDB_SQLiteMemory(t *testing.T) {
	t.Parallel()

	cfg := &config.DBConfig{Driver: config.DriverSQLite, SQLitePath: ":memory:", MaxOpenConns: 10, LogLevel: "silent"}
	db, err := database.InitDB(cfg, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)

	require.NoError(t, database.MigrateModels(db, zap.NewNop(), &widget{}))
	require.NoError(t, db.Create(&widget{Name: "a"}).Error)

	var n int64
	require.NoError(t, db.Model(&widget{}).Count(&n).Error)
	assert.Equal(t, int64(1), n)
}

func TestInitDB_UnsupportedDriver(t *testing.T) {
	t.Parallel()

	_, err := database.InitDB(&config.DBConfig{Driver: "oracle"}, zap.NewNop())
	require.ErrorContains(t, err, "unsupported database driver")
}

func TestMigrateModels_NilDB(t *testing.T) {
	t.Parallel()

	require.Error(t, database.MigrateModels(nil, zap.NewNop()))
}

func TestGormLogger(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	l := database.NewGormLogger(zap.New(core), gormlogger.Warn)
	ctx := context.Background()
	fc := func() (string, int64) { return "SELECT 1", 1 }

	l.Trace(ctx, time.Now(), fc, errors.New("boom"))
	l.Trace(ctx, time.Now(), fc, nil) // fast and below info: dropped
	l.Info(ctx, "hidden %d", 1)

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "SQL failed", logs.All()[0].Message)

	l.LogMode(gormlogger.Silent).Trace(ctx, time.Now(), fc, errors.New("boom"))
	assert.Equal(t, 1, logs.Len())

	assert.Equal(t, gormlogger.Info, database.ParseLogLevel("info", gormlogger.Silent))
	assert.Equal(t, gormlogger.Error, database.ParseLogLevel("nope", gormlogger.Error))
}
