// Package schedparse turns free-form day descriptions such as
// "9시 투자자미팅, 오후 2시~4시 프로젝트" into typed schedule records.
//
// Parsing never fails. Segments that do not match the line grammar are
// dropped rather than reported as errors; callers that need to tell the
// user "time not recognized" check Result.Unrecognized.
package schedparse

import (
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"

	"github.com/alexanderramin/dayplan/internal/domain"
)

// DefaultDurationMin is the length given to records without an end time.
const DefaultDurationMin = 60

// Result is the outcome of parsing a block of text.
type Result struct {
	Records []domain.ScheduleRecord
	// Dropped lists the segments that matched no line grammar, in input order.
	Dropped []string
	input   string
}

// Unrecognized reports the parse-empty state: the input had text but no
// segment produced a record.
func (r Result) Unrecognized() bool {
	return strings.TrimSpace(r.input) != "" && len(r.Records) == 0
}

// Parse converts text into schedule records sorted by start time.
func Parse(text string) []domain.ScheduleRecord {
	return ParseDetailed(text).Records
}

// ParseDetailed is Parse plus the list of dropped segments.
func ParseDetailed(text string) Result {
	res := Result{Records: []domain.ScheduleRecord{}, input: text}

	for _, seg := range Segments(text) {
		rec, ok := recordFromSegment(seg)
		if !ok {
			res.Dropped = append(res.Dropped, seg)
			continue
		}
		res.Records = append(res.Records, rec)
	}

	res.Records = domain.SortRecords(res.Records)
	return res
}

var separatorReplacer = strings.NewReplacer("〜", "~", "‐", "-", "–", "-", "—", "-")

// Segments normalizes the text and splits it on commas, newlines and
// periods into trimmed, non-empty segments.
func Segments(text string) []string {
	text = width.Fold.String(norm.NFC.String(text))
	text = separatorReplacer.Replace(text)

	parts := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == '\n' || r == '.'
	})
	segs := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			segs = append(segs, p)
		}
	}
	return segs
}

func recordFromSegment(seg string) (domain.ScheduleRecord, bool) {
	ln, ok := ParseLine(seg)
	if !ok {
		return domain.ScheduleRecord{}, false
	}

	startHour := shiftHour(ln.Start.Hour, ln.Meridiem)
	start, ok := domain.NewClock(startHour, ln.Start.Minutes())
	if !ok {
		return domain.ScheduleRecord{}, false
	}

	end := start.Add(DefaultDurationMin)
	if ln.End != nil {
		endHour := shiftHour(ln.End.Hour, ln.Meridiem)
		// A range end that is invalid or not after the start counts as no
		// end at all, so a stray number never produces a midnight wrap.
		if explicit, ok := domain.NewClock(endHour, ln.End.Minutes()); ok && explicit > start {
			end = explicit
		}
	}

	return domain.ScheduleRecord{
		ID:       uuid.NewString(),
		Start:    start,
		End:      end,
		Title:    ln.Title,
		Priority: ClassifyPriority(ln.Title),
		Category: ClassifyCategory(ln.Title),
	}, true
}

// shiftHour applies the meridiem: afternoon hours below 12 move forward
// and a morning 12 is midnight.
func shiftHour(hour int, m Meridiem) int {
	switch {
	case m == MeridiemAfternoon && hour < 12:
		return hour + 12
	case m == MeridiemMorning && hour == 12:
		return 0
	}
	return hour
}
