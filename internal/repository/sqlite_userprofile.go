package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/dayplan/internal/db"
	"github.com/alexanderramin/dayplan/internal/domain"
)

const defaultProfileID = "default"

// SQLiteUserProfileRepo implements UserProfileRepo using a SQLite database.
type SQLiteUserProfileRepo struct {
	db db.DBTX
}

// NewSQLiteUserProfileRepo creates a new SQLiteUserProfileRepo.
func NewSQLiteUserProfileRepo(conn db.DBTX) *SQLiteUserProfileRepo {
	return &SQLiteUserProfileRepo{db: conn}
}

func (r *SQLiteUserProfileRepo) Get(ctx context.Context) (*domain.UserProfile, error) {
	query := `SELECT traits_json, medications_json, preferences_json, sleep_goal, notes
		FROM user_profile WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, defaultProfileID)

	var p domain.UserProfile
	var traits, meds, prefs string
	if err := row.Scan(&traits, &meds, &prefs, &p.SleepGoal, &p.Notes); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user profile: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning user profile: %w", err)
	}

	var err error
	if p.Traits, err = decodeJSON[string]("traits_json", traits); err != nil {
		return nil, err
	}
	if p.Medications, err = decodeJSON[string]("medications_json", meds); err != nil {
		return nil, err
	}
	if p.Preferences, err = decodeJSON[string]("preferences_json", prefs); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *SQLiteUserProfileRepo) Upsert(ctx context.Context, p *domain.UserProfile) error {
	traits, err := encodeJSON(p.Traits)
	if err != nil {
		return fmt.Errorf("encoding traits: %w", err)
	}
	meds, err := encodeJSON(p.Medications)
	if err != nil {
		return fmt.Errorf("encoding medications: %w", err)
	}
	prefs, err := encodeJSON(p.Preferences)
	if err != nil {
		return fmt.Errorf("encoding preferences: %w", err)
	}

	query := `INSERT OR REPLACE INTO user_profile (id, traits_json, medications_json,
		preferences_json, sleep_goal, notes)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query, defaultProfileID, traits, meds, prefs, p.SleepGoal, p.Notes)
	if err != nil {
		return fmt.Errorf("upserting user profile: %w", err)
	}
	return nil
}
