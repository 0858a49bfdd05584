// Package analysis turns untrusted model text into a domain.AnalysisResult.
//
// Normalization is total: any input string, including empty or binary-looking
// text, yields a result with every collection non-nil. Text that holds no
// JSON object degrades to a fallback result flagged with ParseFailed.
package analysis

import (
	"encoding/json"
	"strings"
	"unicode/utf8"

	"github.com/alexanderramin/dayplan/internal/domain"
)

// Source names the fallback-chain step that produced a result.
type Source string

const (
	SourceDirect       Source = "direct"
	SourceFenced       Source = "fenced"
	SourceExtracted    Source = "extracted"
	SourceTextFallback Source = "text_fallback"
)

// FallbackExcerptRunes bounds the raw-text excerpt kept in a fallback result.
const FallbackExcerptRunes = 200

// Report is a normalized result plus diagnostics about how it was built.
type Report struct {
	Result domain.AnalysisResult
	Source Source
	// Defaulted lists field paths such as "timeline[0].priority" that were
	// missing, mistyped or out of range.
	Defaulted []string
}

// Normalize converts raw model output into an AnalysisResult.
func Normalize(raw string) domain.AnalysisResult {
	return NormalizeDetailed(raw).Result
}

// NormalizeDetailed is Normalize plus the diagnostics report.
func NormalizeDetailed(raw string) Report {
	obj, src, ok := decodeObject(raw)
	if !ok {
		return textFallback(raw)
	}

	var c coercer
	res := resultSchema.decode(&c, obj, "", 0)
	uniqueTimelineIDs(&c, res.Timeline)
	return Report{
		Result:    res,
		Source:    src,
		Defaulted: c.defaulted,
	}
}

// uniqueTimelineIDs makes timeline ids distinct. The first entry carrying a
// model-supplied id keeps it; defaulted ids that collide and repeated ids
// move to the smallest unused integer.
func uniqueTimelineIDs(c *coercer, timeline []domain.TimelineEntry) {
	defaulted := make(map[string]bool, len(c.defaulted))
	for _, p := range c.defaulted {
		defaulted[p] = true
	}
	path := func(i int) string { return indexPath("timeline", i) + ".id" }

	used := make(map[int]bool, len(timeline))
	keep := make([]bool, len(timeline))
	for i, e := range timeline {
		if !defaulted[path(i)] && !used[e.ID] {
			used[e.ID] = true
			keep[i] = true
		}
	}
	for i := range timeline {
		if keep[i] || !defaulted[path(i)] {
			continue
		}
		if !used[timeline[i].ID] {
			used[timeline[i].ID] = true
			keep[i] = true
		}
	}

	next := 0
	for i := range timeline {
		if keep[i] {
			continue
		}
		for used[next] {
			next++
		}
		timeline[i].ID = next
		used[next] = true
		if !defaulted[path(i)] {
			c.note(path(i))
		}
	}
}

// decodeObject runs the fallback chain until one step yields a JSON object.
func decodeObject(raw string) (map[string]any, Source, bool) {
	trimmed := strings.TrimSpace(raw)

	if obj, ok := parseObject(trimmed); ok {
		return obj, SourceDirect, true
	}
	if inner, found := fencedBlock(trimmed); found {
		if obj, ok := parseObject(inner); ok {
			return obj, SourceFenced, true
		}
	}
	if block := extractJSONBlock(stripCodeFences(trimmed)); block != "" {
		block = normalizeLeadingDecimalNumbers(stripJSONComments(block))
		if obj, ok := parseObject(block); ok {
			return obj, SourceExtracted, true
		}
	}
	return nil, SourceTextFallback, false
}

func parseObject(s string) (map[string]any, bool) {
	if s == "" || s[0] != '{' {
		return nil, false
	}
	var obj map[string]any
	if err := json.Unmarshal([]byte(s), &obj); err != nil || obj == nil {
		return nil, false
	}
	return obj, true
}

func textFallback(raw string) Report {
	res := domain.EmptyResult()
	res.OverallTip = excerpt(raw, FallbackExcerptRunes)
	res.ParseFailed = true
	return Report{Result: res, Source: SourceTextFallback}
}

// excerpt returns at most n runes of the trimmed text, with invalid UTF-8
// replaced.
func excerpt(raw string, n int) string {
	s := strings.ToValidUTF8(strings.TrimSpace(raw), "�")
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
