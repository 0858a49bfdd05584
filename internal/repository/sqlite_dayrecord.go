package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/dayplan/internal/db"
	"github.com/alexanderramin/dayplan/internal/domain"
)

// SQLiteDayRecordRepo implements DayRecordRepo using a SQLite database.
type SQLiteDayRecordRepo struct {
	db db.DBTX
}

// NewSQLiteDayRecordRepo creates a new SQLiteDayRecordRepo.
func NewSQLiteDayRecordRepo(conn db.DBTX) *SQLiteDayRecordRepo {
	return &SQLiteDayRecordRepo{db: conn}
}

const dayRecordColumns = `date, energy, schedules_json, advisors_json, review, completed_count, updated_at`

func (r *SQLiteDayRecordRepo) Get(ctx context.Context, date string) (*domain.DayRecord, error) {
	query := `SELECT ` + dayRecordColumns + ` FROM day_records WHERE date = ?`
	rec, err := scanDayRecord(r.db.QueryRowContext(ctx, query, date))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("day record %s: %w", date, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning day record: %w", err)
	}
	return rec, nil
}

func (r *SQLiteDayRecordRepo) Upsert(ctx context.Context, rec *domain.DayRecord) error {
	if err := validDate(rec.Date); err != nil {
		return err
	}
	energy := rec.Energy
	if !domain.ValidEnergyLevels[energy] {
		energy = domain.DefaultEnergy
	}
	schedules, err := encodeJSON(rec.Records)
	if err != nil {
		return fmt.Errorf("encoding schedules: %w", err)
	}
	advisors, err := encodeJSON(rec.Advisors)
	if err != nil {
		return fmt.Errorf("encoding advisors: %w", err)
	}

	query := `INSERT INTO day_records (` + dayRecordColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET
			energy = excluded.energy,
			schedules_json = excluded.schedules_json,
			advisors_json = excluded.advisors_json,
			review = excluded.review,
			completed_count = excluded.completed_count,
			updated_at = excluded.updated_at`
	_, err = r.db.ExecContext(ctx, query,
		rec.Date,
		string(energy),
		schedules,
		advisors,
		rec.Review,
		max(rec.CompletedCount, 0),
		nowUTC(),
	)
	if err != nil {
		return fmt.Errorf("upserting day record: %w", err)
	}
	return nil
}

func (r *SQLiteDayRecordRepo) ListRange(ctx context.Context, from, to string) ([]*domain.DayRecord, error) {
	query := `SELECT ` + dayRecordColumns + ` FROM day_records
		WHERE date >= ? AND date <= ? ORDER BY date`
	rows, err := r.db.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("listing day records: %w", err)
	}
	defer rows.Close()

	var out []*domain.DayRecord
	for rows.Next() {
		rec, err := scanDayRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning day record row: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating day records: %w", err)
	}
	return out, nil
}

func (r *SQLiteDayRecordRepo) Delete(ctx context.Context, date string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM day_records WHERE date = ?`, date)
	if err != nil {
		return fmt.Errorf("deleting day record: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("day record %s: %w", date, ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDayRecord(row rowScanner) (*domain.DayRecord, error) {
	var rec domain.DayRecord
	var energy, schedules, advisors, updatedAt string
	if err := row.Scan(&rec.Date, &energy, &schedules, &advisors, &rec.Review, &rec.CompletedCount, &updatedAt); err != nil {
		return nil, err
	}

	var err error
	rec.Energy = domain.EnergyLevel(energy)
	if rec.Records, err = decodeJSON[domain.ScheduleRecord]("schedules_json", schedules); err != nil {
		return nil, err
	}
	if rec.Advisors, err = decodeJSON[string]("advisors_json", advisors); err != nil {
		return nil, err
	}
	rec.UpdatedAt = parseTime(updatedAt)
	return &rec, nil
}
