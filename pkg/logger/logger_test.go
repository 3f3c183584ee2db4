package logger_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/suteetoe/employee-service/pkg/config"
	"github.com/suteetoe/employee-service/pkg/logger"
)

func TestInitLogger(t *testing.T) {
	cfg := &config.Config{ServiceName: "employee-service"}
	cfg.Server.Env = "production"
	cfg.Log.Level = "warn"

	require.NoError(t, logger.InitLogger(cfg))
	l := logger.GetLogger()
	require.NotNil(t, l)
	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, l.Core().Enabled(zapcore.WarnLevel))

	cfg.Server.Env = "development"
	cfg.Log.Level = "not-a-level"
	require.NoError(t, logger.InitLogger(cfg))
	assert.True(t, logger.GetLogger().Core().Enabled(zapcore.InfoLevel))
}

func TestFromCtx(t *testing.T) {
	core, _ := observer.New(zapcore.DebugLevel)
	l := zap.New(core)

	ctx := logger.WithContext(context.Background(), l)
	assert.Same(t, l, logger.FromCtx(ctx))

	logger.SetLogger(zap.NewNop())
	assert.NotNil(t, logger.FromCtx(context.Background()))
}

func TestMiddleware(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	e := echo.New()
	e.Use(logger.Middleware(zap.New(core)))

	var fromHandler *zap.Logger
	e.GET("/ok", func(c echo.Context) error {
		fromHandler = logger.FromContext(c)
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/boom", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusTeapot, "boom")
	})

	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set(echo.HeaderXRequestID, "req-1")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, fromHandler)
	entries := logs.FilterMessage("HTTP request completed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "req-1", entries[0].ContextMap()["request_id"])
	assert.EqualValues(t, http.StatusOK, entries[0].ContextMap()["status"])

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	failed := logs.FilterMessage("HTTP request failed").All()
	require.Len(t, failed, 1)
	assert.EqualValues(t, http.StatusTeapot, failed[0].ContextMap()["status"])
}
