package domain

import "time"

// DateLayout is the canonical YYYY-MM-DD day key.
const DateLayout = "2006-01-02"

// DayRecord is the persisted state of one planned day. It lives outside the
// analysis pipeline; only the CLI reads and writes it.
type DayRecord struct {
	Date           string // YYYY-MM-DD
	Energy         EnergyLevel
	Records        []ScheduleRecord
	Advisors       []string // advisor ids selected for the day
	Review         string
	CompletedCount int
	UpdatedAt      time.Time
}
