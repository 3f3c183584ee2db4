package seed_test

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suteetoe/employee-service/internal/model"
	"github.com/suteetoe/employee-service/internal/seed"
)

type memStore struct {
	rows []model.Employee
	err  error
}

func (m *memStore) Count(context.Context) (int64, error) { return int64(len(m.rows)), nil }

func (m *memStore) Add(_ context.Context, e *model.Employee) error {
	if m.err != nil {
		return m.err
	}
	e.ID = uint(len(m.rows) + 1)
	m.rows = append(m.rows, *e)
	return nil
}

var now = time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)

func TestEmployees_Deterministic(t *testing.T) {
	t.Parallel()

	a, b := &memStore{}, &memStore{}
	n, err := seed.Employees(context.Background(), a, rand.New(rand.NewPCG(42, 42)), now)
	require.NoError(t, err)
	assert.Equal(t, 30, n)

	_, err = seed.Employees(context.Background(), b, rand.New(rand.NewPCG(42, 42)), now)
	require.NoError(t, err)

	emails := map[string]bool{}
	for i := range a.rows {
		assert.Equal(t, a.rows[i].JoinedDate, b.rows[i].JoinedDate)
		assert.False(t, a.rows[i].JoinedDate.After(now))
		assert.True(t, a.rows[i].JoinedDate.After(now.AddDate(-5, 0, -1)))
		assert.True(t, a.rows[i].Department.Valid())

		email := model.StringValue(a.rows[i].EmailAddress)
		assert.False(t, emails[email], "duplicate %s", email)
		emails[email] = true
	}
	assert.True(t, emails["liam.oconnor@example.com"])
	assert.Equal(t, "01010010001", model.StringValue(a.rows[0].Phone))
}

func TestEmployees_FixedDatesAndSkip(t *testing.T) {
	t.Parallel()

	store := &memStore{}
	_, err := seed.Employees(context.Background(), store, nil, now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2020, 12, 1, 0, 0, 0, 0, time.UTC), store.rows[0].JoinedDate)

	n, err := seed.Employees(context.Background(), store, nil, now)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Len(t, store.rows, 30)
}

func TestEmployees_StoreError(t *testing.T) {
	t.Parallel()

	_, err := seed.Employees(context.Background(), &memStore{err: assert.AnError}, nil, now)
	require.ErrorIs(t, err, assert.AnError)
}
