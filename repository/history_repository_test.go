package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joeyg6393/fincalcs/domain"
)

func record(id, calculator string, at time.Time) domain.HistoryRecord {
	return domain.HistoryRecord{
		ID:         id,
		Calculator: calculator,
		Input:      json.RawMessage(`{"amount":1000}`),
		Result:     json.RawMessage(`{"monthlyPayment":88.85}`),
		Status:     "ok",
		CreatedAt:  at,
	}
}

func exerciseHistory(t *testing.T, repo HistoryRepository) {
	t.Helper()
	ctx := context.Background()
	base := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Save(ctx, record("a", "loan", base)))
	require.NoError(t, repo.Save(ctx, record("b", "mortgage", base.Add(time.Minute))))
	failed := record("c", "loan", base.Add(2*time.Minute))
	failed.Result = nil
	failed.Status = "invalid"
	failed.Reason = "amount: must be greater than zero, got 0"
	require.NoError(t, repo.Save(ctx, failed))

	all, err := repo.List(ctx, "", 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"c", "b", "a"}, []string{all[0].ID, all[1].ID, all[2].ID})

	loans, err := repo.List(ctx, "loan", 10)
	require.NoError(t, err)
	require.Len(t, loans, 2)
	assert.Equal(t, "invalid", loans[0].Status)
	assert.Equal(t, failed.Reason, loans[0].Reason)
	assert.Empty(t, loans[0].Result)
	assert.JSONEq(t, `{"monthlyPayment":88.85}`, string(loans[1].Result))
	assert.True(t, base.Equal(loans[1].CreatedAt))

	limited, err := repo.List(ctx, "", 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, "c", limited[0].ID)

	none, err := repo.List(ctx, "black-scholes", 5)
	require.NoError(t, err)
	assert.Empty(t, none)

	// Same second, saved out of order, with fractions of different widths.
	second := time.Date(2026, time.January, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, repo.Save(ctx, record("half", "rule-72", second.Add(500*time.Millisecond))))
	require.NoError(t, repo.Save(ctx, record("whole", "rule-72", second)))
	require.NoError(t, repo.Save(ctx, record("fine", "rule-72", second.Add(123400*time.Microsecond))))

	ordered, err := repo.List(ctx, "rule-72", 10)
	require.NoError(t, err)
	require.Len(t, ordered, 3)
	assert.Equal(t, []string{"half", "fine", "whole"}, []string{ordered[0].ID, ordered[1].ID, ordered[2].ID})
	assert.True(t, second.Add(500*time.Millisecond).Equal(ordered[0].CreatedAt))
}

func TestHistoryRepositoryMemory(t *testing.T) {
	exerciseHistory(t, NewHistoryRepositoryMemory())
}

func TestHistoryRepositorySQLite(t *testing.T) {
	repo, err := NewHistoryRepositorySQLite(context.Background(), filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	defer repo.Close()

	exerciseHistory(t, repo)
}

func TestHistoryRepositorySQLite_ReopenKeepsRecords(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "history.db")

	repo, err := NewHistoryRepositorySQLite(ctx, path)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, record("a", "loan", time.Now().UTC())))
	require.NoError(t, repo.Close())

	reopened, err := NewHistoryRepositorySQLite(ctx, path)
	require.NoError(t, err)
	defer reopened.Close()

	recs, err := reopened.List(ctx, "loan", 5)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "a", recs[0].ID)
}

func TestHistoryRepositorySQLite_MigratesTextTimestamps(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "history.db")

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	tx, err := db.Begin()
	require.NoError(t, err)
	for _, m := range migrations[:2] {
		require.NoError(t, m.Up(tx))
	}
	for _, row := range [][2]string{
		{"whole", "2026-01-02T03:04:05Z"},
		{"half", "2026-01-02T03:04:05.5Z"},
	} {
		_, err := tx.Exec(`INSERT INTO history (id, calculator, input, status, created_at) VALUES (?, 'loan', '{}', 'ok', ?)`,
			row[0], row[1])
		require.NoError(t, err)
	}
	_, err = tx.Exec("PRAGMA user_version = 2")
	require.NoError(t, err)
	require.NoError(t, tx.Commit())
	require.NoError(t, db.Close())

	repo, err := NewHistoryRepositorySQLite(ctx, path)
	require.NoError(t, err)
	defer repo.Close()

	recs, err := repo.List(ctx, "loan", 5)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "half", recs[0].ID)
	assert.Equal(t, "whole", recs[1].ID)
	assert.True(t, time.Date(2026, time.January, 2, 3, 4, 5, 0, time.UTC).Equal(recs[1].CreatedAt))
}

func TestHistoryRepositoryMemory_OrdersByTime(t *testing.T) {
	ctx := context.Background()
	repo := NewHistoryRepositoryMemory()
	base := time.Date(2026, time.January, 2, 3, 4, 5, 0, time.UTC)

	require.NoError(t, repo.Save(ctx, record("later", "loan", base.Add(time.Second))))
	require.NoError(t, repo.Save(ctx, record("earlier", "loan", base)))
	require.NoError(t, repo.Save(ctx, record("tie", "loan", base)))

	recs, err := repo.List(ctx, "", 2)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "later", recs[0].ID)
	assert.Equal(t, "tie", recs[1].ID)
}

func TestHistoryRepositorySQLite_DuplicateID(t *testing.T) {
	ctx := context.Background()
	repo, err := NewHistoryRepositorySQLite(ctx, filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	defer repo.Close()

	rec := record("dup", "loan", time.Now().UTC())
	require.NoError(t, repo.Save(ctx, rec))
	assert.Error(t, repo.Save(ctx, rec))
}

func TestHistoryRepositoryMemory_DefaultLimit(t *testing.T) {
	ctx := context.Background()
	repo := NewHistoryRepositoryMemory()
	for i := 0; i < DefaultHistoryLimit+5; i++ {
		require.NoError(t, repo.Save(ctx, record(fmt.Sprint(i), "loan", time.Now())))
	}

	recs, err := repo.List(ctx, "", -1)
	require.NoError(t, err)
	assert.Len(t, recs, DefaultHistoryLimit)
}

func TestMemoryCache(t *testing.T) {
	cache := NewMemoryCache()

	_, ok := cache.Get("missing")
	assert.False(t, ok)

	require.NoError(t, cache.Set("k", "v"))
	val, ok := cache.Get("k")
	assert.True(t, ok)
	assert.Equal(t, "v", val)
	assert.Equal(t, 1, cache.Len())
}
