package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/dayplan/internal/domain"
	"github.com/alexanderramin/dayplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayRecordRepo_UpsertAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteDayRecordRepo(db)
	ctx := context.Background()

	meeting := testutil.NewTestRecord("투자자미팅", 9, 0, testutil.WithPriority(domain.PriorityHigh))
	rec := testutil.NewTestDayRecord(testutil.Date(2026, 3, 2),
		testutil.WithEnergy(domain.EnergyHigh),
		testutil.WithRecords(meeting),
		testutil.WithAdvisors("em", "wb"),
	)
	require.NoError(t, repo.Upsert(ctx, rec))

	got, err := repo.Get(ctx, "2026-03-02")
	require.NoError(t, err)
	assert.Equal(t, domain.EnergyHigh, got.Energy)
	require.Len(t, got.Records, 1)
	assert.Equal(t, meeting, got.Records[0])
	assert.Equal(t, []string{"em", "wb"}, got.Advisors)
	assert.False(t, got.UpdatedAt.IsZero())
}

func TestDayRecordRepo_UpsertOverwrites(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteDayRecordRepo(db)
	ctx := context.Background()

	day := testutil.Date(2026, 3, 2)
	require.NoError(t, repo.Upsert(ctx, testutil.NewTestDayRecord(day,
		testutil.WithRecords(testutil.NewTestRecord("회의", 10, 0)))))
	require.NoError(t, repo.Upsert(ctx, testutil.NewTestDayRecord(day,
		testutil.WithReview("good day", 3))))

	got, err := repo.Get(ctx, "2026-03-02")
	require.NoError(t, err)
	assert.Empty(t, got.Records)
	assert.Equal(t, "good day", got.Review)
	assert.Equal(t, 3, got.CompletedCount)
}

func TestDayRecordRepo_NilSlicesStoredAsEmpty(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteDayRecordRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, &domain.DayRecord{Date: "2026-03-02"}))

	got, err := repo.Get(ctx, "2026-03-02")
	require.NoError(t, err)
	assert.NotNil(t, got.Records)
	assert.NotNil(t, got.Advisors)
	assert.Equal(t, domain.DefaultEnergy, got.Energy)
}

func TestDayRecordRepo_Get_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteDayRecordRepo(db)

	_, err := repo.Get(context.Background(), "2026-01-01")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDayRecordRepo_Upsert_RejectsBadDate(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteDayRecordRepo(db)

	for _, date := range []string{"", "2026-3-2", "2026-02-30", "today"} {
		err := repo.Upsert(context.Background(), &domain.DayRecord{Date: date})
		assert.Error(t, err, "date %q", date)
	}
}

func TestDayRecordRepo_ListRange(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteDayRecordRepo(db)
	ctx := context.Background()

	for _, d := range []int{5, 1, 3, 9} {
		require.NoError(t, repo.Upsert(ctx, testutil.NewTestDayRecord(testutil.Date(2026, 3, d))))
	}

	got, err := repo.ListRange(ctx, "2026-03-01", "2026-03-05")
	require.NoError(t, err)
	var dates []string
	for _, r := range got {
		dates = append(dates, r.Date)
	}
	assert.Equal(t, []string{"2026-03-01", "2026-03-03", "2026-03-05"}, dates)
}

func TestDayRecordRepo_Delete(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteDayRecordRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, testutil.NewTestDayRecord(testutil.Date(2026, 3, 2))))
	require.NoError(t, repo.Delete(ctx, "2026-03-02"))

	_, err := repo.Get(ctx, "2026-03-02")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, "2026-03-02"), ErrNotFound)
}

func TestDayRecordRepo_CorruptJSONSurfacesError(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteDayRecordRepo(db)
	ctx := context.Background()

	_, err := db.ExecContext(ctx,
		`INSERT INTO day_records (date, schedules_json, updated_at) VALUES ('2026-03-02', '{oops', '')`)
	require.NoError(t, err)

	_, err = repo.Get(ctx, "2026-03-02")
	assert.ErrorContains(t, err, "schedules_json")
}
