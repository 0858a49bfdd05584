package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"slices"
	"strconv"
	"strings"

	"github.com/alexanderramin/dayplan/internal/domain"
)

// KeyPrefix starts every fingerprint.
const KeyPrefix = "analysis:"

// Fingerprint builds the cache key for a request. Records are ordered by
// (start, end, title, priority, category) and advisor ids are sorted, so
// reordering either input yields the same key. Record ids are ignored.
func Fingerprint(records []domain.ScheduleRecord, energy domain.EnergyLevel, advisorIDs []string) string {
	tuples := make([]string, 0, len(records))
	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, compareRecords)
	for _, r := range sorted {
		tuples = append(tuples, r.Start.String()+"-"+r.End.String()+"-"+
			strconv.Quote(r.Title)+"-"+string(r.Priority)+"-"+string(r.Category))
	}

	ids := slices.Clone(advisorIDs)
	slices.Sort(ids)

	var b strings.Builder
	b.WriteString(KeyPrefix)
	b.WriteString(strings.Join(tuples, "|"))
	b.WriteByte(':')
	b.WriteString(string(energy))
	b.WriteByte(':')
	b.WriteString(strings.Join(ids, ","))
	return b.String()
}

func compareRecords(a, b domain.ScheduleRecord) int {
	if a.Start != b.Start {
		return int(a.Start) - int(b.Start)
	}
	if a.End != b.End {
		return int(a.End) - int(b.End)
	}
	if c := strings.Compare(a.Title, b.Title); c != 0 {
		return c
	}
	if c := strings.Compare(string(a.Priority), string(b.Priority)); c != 0 {
		return c
	}
	return strings.Compare(string(a.Category), string(b.Category))
}

// Scoper is implemented by stores whose entries outlive a session. Such
// stores widen the key with inputs that are stable within a session but may
// change between sessions.
type Scoper interface {
	ScopeKey(key string, profile domain.UserProfile, detail domain.DetailMode) string
}

// ScopedKey appends the detail mode and a digest of the profile to key.
// Nil and empty profile lists produce the same digest.
func ScopedKey(key string, profile domain.UserProfile, detail domain.DetailMode) string {
	quoteAll := func(vals []string) string {
		q := make([]string, len(vals))
		for i, v := range vals {
			q[i] = strconv.Quote(v)
		}
		return strings.Join(q, ",")
	}
	canonical := strings.Join([]string{
		quoteAll(profile.Traits),
		quoteAll(profile.Medications),
		quoteAll(profile.Preferences),
		strconv.Quote(profile.SleepGoal),
		strconv.Quote(profile.Notes),
	}, ";")
	sum := sha256.Sum256([]byte(canonical))
	return key + ":" + string(detail) + ":" + hex.EncodeToString(sum[:8])
}
