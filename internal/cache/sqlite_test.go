package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/dayplan/internal/domain"
	"github.com/alexanderramin/dayplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteStore_SetGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	s := NewSQLiteStore(db, nil)

	want := resultWithTip("물 마시기")
	want.Timeline = []domain.TimelineEntry{{ID: 1, Start: "09:00", End: "10:00", Title: "회의",
		Priority: domain.PriorityHigh, Category: domain.CategoryWork}}
	s.Set("k", want)

	got, ok := s.Get("k")
	require.True(t, ok)
	assert.Equal(t, want, got)

	_, ok = s.Get("missing")
	assert.False(t, ok)
}

func TestSQLiteStore_CorruptEntryIsMiss(t *testing.T) {
	db := testutil.NewTestDB(t)
	s := NewSQLiteStore(db, nil)

	_, err := db.Exec(`INSERT INTO analysis_cache (key, result_json, created_at) VALUES ('k', 'not json', '')`)
	require.NoError(t, err)

	_, ok := s.Get("k")
	assert.False(t, ok)
}

func TestSQLiteStore_ClosedDBDegradesToMiss(t *testing.T) {
	db := testutil.NewTestDB(t)
	s := NewSQLiteStore(db, nil)
	s.Set("k", resultWithTip("x"))
	require.NoError(t, db.Close())

	assert.NotPanics(t, func() { s.Set("k2", resultWithTip("y")) })
	_, ok := s.Get("k")
	assert.False(t, ok)
}

func TestSQLiteStore_Prune(t *testing.T) {
	db := testutil.NewTestDB(t)
	s := NewSQLiteStore(db, nil)

	_, err := db.Exec(`INSERT INTO analysis_cache (key, result_json, created_at)
		VALUES ('old', '{}', '2020-01-01T00:00:00Z')`)
	require.NoError(t, err)
	s.Set("new", resultWithTip("x"))

	n, err := s.Prune(context.Background(), time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, ok := s.Get("new")
	assert.True(t, ok)
}
