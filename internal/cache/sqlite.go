package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/alexanderramin/dayplan/internal/db"
	"github.com/alexanderramin/dayplan/internal/domain"
)

// SQLiteStore persists results in the analysis_cache table. Every failure
// is logged and degrades to a miss or a dropped write.
type SQLiteStore struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewSQLiteStore(conn db.DBTX, logger *slog.Logger) *SQLiteStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &SQLiteStore{db: conn, logger: logger}
}

var _ Scoper = (*SQLiteStore)(nil)

// ScopeKey folds profile and detail mode into key, since persisted entries
// are read back after either may have changed.
func (s *SQLiteStore) ScopeKey(key string, profile domain.UserProfile, detail domain.DetailMode) string {
	return ScopedKey(key, profile, detail)
}

func (s *SQLiteStore) Get(key string) (domain.AnalysisResult, bool) {
	var raw string
	err := s.db.QueryRowContext(context.Background(),
		`SELECT result_json FROM analysis_cache WHERE key = ?`, key).Scan(&raw)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			s.logger.Warn("cache read failed", "error", err)
		}
		return domain.AnalysisResult{}, false
	}

	var r domain.AnalysisResult
	if err := json.Unmarshal([]byte(raw), &r); err != nil {
		s.logger.Warn("cache entry corrupt", "error", err)
		return domain.AnalysisResult{}, false
	}
	return r, true
}

func (s *SQLiteStore) Set(key string, result domain.AnalysisResult) {
	data, err := json.Marshal(result)
	if err != nil {
		s.logger.Warn("cache encode failed", "error", err)
		return
	}
	_, err = s.db.ExecContext(context.Background(),
		`INSERT OR REPLACE INTO analysis_cache (key, result_json, created_at) VALUES (?, ?, ?)`,
		key, string(data), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		s.logger.Warn("cache write failed", "error", err)
	}
}

// Prune deletes entries created before cutoff and returns how many were removed.
func (s *SQLiteStore) Prune(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM analysis_cache WHERE created_at < ?`, cutoff.UTC().Format(time.RFC3339))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
