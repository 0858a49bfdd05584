package repository

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/alexanderramin/dayplan/internal/domain"
)

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// parseTime parses an RFC3339 column, returning the zero time for legacy or
// malformed values.
func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// encodeJSON marshals v for a *_json TEXT column. Nil slices are stored as
// "[]" so the column default and written rows agree.
func encodeJSON[T any](v []T) (string, error) {
	if v == nil {
		return "[]", nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// decodeJSON unmarshals a *_json TEXT column into a non-nil slice.
func decodeJSON[T any](column, s string) ([]T, error) {
	out := []T{}
	if s == "" {
		return out, nil
	}
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", column, err)
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

func validDate(date string) error {
	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		return fmt.Errorf("invalid date %q: want YYYY-MM-DD", date)
	}
	return nil
}
