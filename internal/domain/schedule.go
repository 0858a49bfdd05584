package domain

import "sort"

// ScheduleRecord is one user-intended time block for the day.
type ScheduleRecord struct {
	ID       string   `json:"id"`
	Start    Clock    `json:"start_time"`
	End      Clock    `json:"end_time"`
	Title    string   `json:"title"`
	Priority Priority `json:"priority"`
	Category Category `json:"category"`
}

// DurationMin returns the length of the block in minutes, accounting for
// blocks that wrap past midnight.
func (r ScheduleRecord) DurationMin() int {
	d := int(r.End) - int(r.Start)
	if d <= 0 {
		d += MinutesPerDay
	}
	return d
}

// SortRecords returns a copy of records ordered by start time. Equal start
// times keep their input order.
func SortRecords(records []ScheduleRecord) []ScheduleRecord {
	out := make([]ScheduleRecord, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Start < out[j].Start
	})
	return out
}
