//go:build integration

package repository_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"

	"github.com/suteetoe/employee-service/internal/model"
	"github.com/suteetoe/employee-service/internal/repository"
	"github.com/suteetoe/employee-service/pkg/config"
	"github.com/suteetoe/employee-service/pkg/database"
)

func TestPostgresRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode.")
	}

	ctx := t.Context()
	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("employees"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpassword"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgContainer.Terminate(ctx) })

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := database.InitDB(&config.DBConfig{Driver: config.DriverPostgres, DSN: dsn, LogLevel: "silent"}, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	require.NoError(t, database.MigrateModels(db, zap.NewNop(), &model.Employee{}))

	repo := repository.NewEmployeeRepository(db, nil)

	ann := &model.Employee{FirstName: "Ann", LastName: "Lee", Department: model.DepartmentHR, EmailAddress: strPtr("ann@x.com"), IsActive: true, JoinedDate: epoch}
	pct := &model.Employee{FirstName: "Dan", LastName: "100%", Department: model.DepartmentIT, IsActive: false, JoinedDate: epoch.AddDate(1, 0, 0)}
	require.NoError(t, repo.Add(ctx, ann))
	require.NoError(t, repo.Add(ctx, pct))

	rows, err := repo.FindMatching(repo.Query(ctx).Scopes(repository.Search("ANN"), repository.OrderBy(model.SortDefault)))
	require.NoError(t, err)
	assert.Equal(t, []string{"Ann Lee"}, names(rows))

	rows, err = repo.FindMatching(repo.Query(ctx).Scopes(repository.Search("%")))
	require.NoError(t, err)
	assert.Equal(t, []string{"Dan 100%"}, names(rows))

	rows, err = repo.FindMatching(repo.Query(ctx).Scopes(repository.OrderBy(model.SortDepartmentDesc)))
	require.NoError(t, err)
	assert.Equal(t, []string{"Dan 100%", "Ann Lee"}, names(rows))

	got, err := repo.GetByID(ctx, pct.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)

	ann.IsActive = false
	require.NoError(t, repo.Update(ctx, ann))
	require.NoError(t, repo.Delete(ctx, pct.ID))
	require.NoError(t, repo.Delete(ctx, pct.ID))

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	require.NoError(t, repo.Ping(ctx))
}
