package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// MinutesPerDay is the number of minutes in a wall-clock day.
const MinutesPerDay = 24 * 60

// Clock is a wall-clock time of day at minute resolution, stored as
// minutes since midnight in [0, MinutesPerDay).
type Clock int

// NewClock builds a Clock from an hour and minute. Returns false if either
// component is out of range.
func NewClock(hour, minute int) (Clock, bool) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, false
	}
	return Clock(hour*60 + minute), true
}

// ParseClock parses an "HH:MM" (or "H:MM") string.
func ParseClock(s string) (Clock, bool) {
	h, m, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return 0, false
	}
	hour, err := strconv.Atoi(h)
	if err != nil {
		return 0, false
	}
	minute, err := strconv.Atoi(m)
	if err != nil || len(m) != 2 {
		return 0, false
	}
	return NewClock(hour, minute)
}

func (c Clock) Hour() int   { return int(c) / 60 }
func (c Clock) Minute() int { return int(c) % 60 }

// Add returns the clock shifted by the given number of minutes, wrapping
// around midnight.
func (c Clock) Add(minutes int) Clock {
	v := (int(c) + minutes) % MinutesPerDay
	if v < 0 {
		v += MinutesPerDay
	}
	return Clock(v)
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}

func (c Clock) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *Clock) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("clock must be a string: %w", err)
	}
	parsed, ok := ParseClock(s)
	if !ok {
		return fmt.Errorf("invalid clock %q", s)
	}
	*c = parsed
	return nil
}
