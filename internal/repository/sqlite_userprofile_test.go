package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/dayplan/internal/domain"
	"github.com/alexanderramin/dayplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserProfileRepo_Get_DefaultSeededProfile(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteUserProfileRepo(db)

	profile, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.True(t, profile.IsEmpty())
	assert.NotNil(t, profile.Traits)
}

func TestUserProfileRepo_Upsert_UpdatesProfile(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteUserProfileRepo(db)
	ctx := context.Background()

	updated := &domain.UserProfile{
		Traits:      []string{"ADHD", "아침형"},
		Medications: []string{"콘서타 09:00"},
		Preferences: []string{"짧은 휴식"},
		SleepGoal:   "23:30",
		Notes:       "오후 집중력 저하",
	}
	require.NoError(t, repo.Upsert(ctx, updated))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestUserProfileRepo_Get_NotFoundWhenDefaultDeleted(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteUserProfileRepo(db)
	ctx := context.Background()

	_, err := db.ExecContext(ctx, `DELETE FROM user_profile WHERE id = 'default'`)
	require.NoError(t, err)

	_, err = repo.Get(ctx)
	assert.ErrorIs(t, err, ErrNotFound)
}
