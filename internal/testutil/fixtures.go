package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/dayplan/internal/domain"
)

// Record options
type RecordOption func(*domain.ScheduleRecord)

func WithPriority(p domain.Priority) RecordOption {
	return func(r *domain.ScheduleRecord) {
		r.Priority = p
	}
}

func WithCategory(c domain.Category) RecordOption {
	return func(r *domain.ScheduleRecord) {
		r.Category = c
	}
}

func WithEnd(hour, minute int) RecordOption {
	return func(r *domain.ScheduleRecord) {
		r.End = MustClock(hour, minute)
	}
}

// MustClock builds a clock value, panicking on an out-of-range time.
func MustClock(hour, minute int) domain.Clock {
	c, ok := domain.NewClock(hour, minute)
	if !ok {
		panic("testutil: invalid clock")
	}
	return c
}

// NewTestRecord creates an hour-long medium work record starting at hour:minute.
func NewTestRecord(title string, hour, minute int, opts ...RecordOption) domain.ScheduleRecord {
	start := MustClock(hour, minute)
	r := domain.ScheduleRecord{
		ID:       uuid.New().String(),
		Start:    start,
		End:      start.Add(60),
		Title:    title,
		Priority: domain.PriorityMedium,
		Category: domain.CategoryWork,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// DayRecord options
type DayOption func(*domain.DayRecord)

func WithEnergy(e domain.EnergyLevel) DayOption {
	return func(d *domain.DayRecord) {
		d.Energy = e
	}
}

func WithRecords(records ...domain.ScheduleRecord) DayOption {
	return func(d *domain.DayRecord) {
		d.Records = records
	}
}

func WithAdvisors(ids ...string) DayOption {
	return func(d *domain.DayRecord) {
		d.Advisors = ids
	}
}

func WithReview(review string, completed int) DayOption {
	return func(d *domain.DayRecord) {
		d.Review = review
		d.CompletedCount = completed
	}
}

func NewTestDayRecord(date time.Time, opts ...DayOption) *domain.DayRecord {
	d := &domain.DayRecord{
		Date:     date.Format(domain.DateLayout),
		Energy:   domain.EnergyMedium,
		Records:  []domain.ScheduleRecord{},
		Advisors: []string{},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Date returns midnight UTC of the given calendar day.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
