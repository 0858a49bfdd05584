package repository

import (
	"context"

	"github.com/alexanderramin/dayplan/internal/domain"
)

type DayRecordRepo interface {
	Get(ctx context.Context, date string) (*domain.DayRecord, error)
	Upsert(ctx context.Context, rec *domain.DayRecord) error
	// ListRange returns records with from <= date <= to, oldest first.
	ListRange(ctx context.Context, from, to string) ([]*domain.DayRecord, error)
	Delete(ctx context.Context, date string) error
}

type UserProfileRepo interface {
	Get(ctx context.Context) (*domain.UserProfile, error)
	Upsert(ctx context.Context, p *domain.UserProfile) error
}
