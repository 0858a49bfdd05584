package analysis

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/dayplan/internal/domain"
)

func assertCollectionsNonNil(t *testing.T, r domain.AnalysisResult) {
	t.Helper()
	assert.NotNil(t, r.Timeline)
	assert.NotNil(t, r.ScheduleTips)
	assert.NotNil(t, r.AdvisorComments)
	assert.NotNil(t, r.EnergyChart)
	assert.NotNil(t, r.Briefings)
	assert.NotNil(t, r.RecoverySuggestions)
}

func TestNormalize_NeverFails(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"\x00\xff\xfe garbage \x01",
		"null",
		"[]",
		"[1,2,3]",
		"42",
		`"just a string"`,
		`{"foo":1}`,
		`{"timeline":"nope","schedule_tips":{},"advisor_comments":7}`,
		`{"timeline":[null, 3, "x", {"id":"abc"}]}`,
		"{{{{",
		"```",
		"```json\n{broken\n```",
		strings.Repeat("{", 10000),
	}
	for _, in := range inputs {
		r := Normalize(in)
		assertCollectionsNonNil(t, r)
	}
}

func TestNormalize_WrongShapeObject(t *testing.T) {
	rep := NormalizeDetailed(`{"foo":1}`)

	assert.Equal(t, SourceDirect, rep.Source)
	assert.False(t, rep.Result.ParseFailed)
	assert.Empty(t, rep.Result.Timeline)
	assert.Empty(t, rep.Result.OverallTip)
	assertCollectionsNonNil(t, rep.Result)
	assert.Contains(t, rep.Defaulted, "timeline")
	assert.Contains(t, rep.Defaulted, "overall_tip")
	assert.NotContains(t, rep.Defaulted, "briefings")
}

func TestNormalize_FencedBlock(t *testing.T) {
	rep := NormalizeDetailed("```json\n{\"overall_tip\":\"x\"}\n```")
	assert.Equal(t, SourceFenced, rep.Source)
	assert.Equal(t, "x", rep.Result.OverallTip)
	assert.False(t, rep.Result.ParseFailed)
}

func TestNormalize_FencedWithoutLanguageTag(t *testing.T) {
	r := Normalize("Here you go:\n```\n{\"overall_tip\":\"plain\"}\n```\nEnjoy")
	assert.Equal(t, "plain", r.OverallTip)
}

func TestNormalize_ExtractedWithCommentsAndLeadingDecimals(t *testing.T) {
	raw := "Sure! Here is the plan:\n" +
		"{\n" +
		"  // the plan\n" +
		"  \"overall_tip\": \"see https://example.com\", /* inline */\n" +
		"  \"timeline\": [{\"id\": 1, \"title\": \"standup\", \"buffer_before\": .5e1}]\n" +
		"}\nHope it helps."

	rep := NormalizeDetailed(raw)
	require.Equal(t, SourceExtracted, rep.Source)
	assert.Equal(t, "see https://example.com", rep.Result.OverallTip)
	require.Len(t, rep.Result.Timeline, 1)
	assert.Equal(t, 5, rep.Result.Timeline[0].BufferBefore)
}

func TestNormalize_TextFallback(t *testing.T) {
	raw := strings.Repeat("가", 500)
	rep := NormalizeDetailed(raw)

	assert.Equal(t, SourceTextFallback, rep.Source)
	assert.True(t, rep.Result.ParseFailed)
	assert.Equal(t, FallbackExcerptRunes, utf8.RuneCountInString(rep.Result.OverallTip))
	assert.True(t, strings.HasPrefix(raw, rep.Result.OverallTip))
	assertCollectionsNonNil(t, rep.Result)
	assert.Empty(t, rep.Result.Timeline)
}

func TestNormalize_TextFallbackShortText(t *testing.T) {
	r := Normalize("  sorry, I cannot help  ")
	assert.True(t, r.ParseFailed)
	assert.Equal(t, "sorry, I cannot help", r.OverallTip)
}

func TestNormalize_TimelineIDsAreUnique(t *testing.T) {
	rep := NormalizeDetailed(`{"timeline":[{"id":1,"title":"a"},{"title":"b"},{"id":1,"title":"c"}]}`)
	tl := rep.Result.Timeline
	require.Len(t, tl, 3)

	assert.Equal(t, 1, tl[0].ID, "first explicit id is kept")
	ids := map[int]bool{}
	for _, e := range tl {
		ids[e.ID] = true
	}
	assert.Len(t, ids, 3)
	assert.Contains(t, rep.Defaulted, "timeline[1].id")
	assert.Contains(t, rep.Defaulted, "timeline[2].id")
	assert.NotContains(t, rep.Defaulted, "timeline[0].id")
}

func TestNormalize_TimelineIDPathsSkipDroppedElements(t *testing.T) {
	rep := NormalizeDetailed(`{"timeline":["junk",{"id":0,"title":"a"},{"title":"b"}]}`)
	tl := rep.Result.Timeline
	require.Len(t, tl, 2)

	assert.Equal(t, 0, tl[0].ID)
	assert.Equal(t, 1, tl[1].ID)
	assert.Contains(t, rep.Defaulted, "timeline[1].id")
	assert.NotContains(t, rep.Defaulted, "timeline[0].id")
}

func TestNormalize_TimelineCoercion(t *testing.T) {
	raw := `{"timeline":[
		{"id":7,"start":"09:00","end":"10:00","title":"미팅","priority":"HIGH","category":"family","buffer_before":"10","buffer_after":5},
		{"title":"정리","priority":"urgent","category":42},
		"not an object"
	]}`
	rep := NormalizeDetailed(raw)
	tl := rep.Result.Timeline
	require.Len(t, tl, 2)

	assert.Equal(t, 7, tl[0].ID)
	assert.Equal(t, domain.PriorityHigh, tl[0].Priority)
	assert.Equal(t, domain.CategoryFamily, tl[0].Category)
	assert.Equal(t, 10, tl[0].BufferBefore)
	assert.Equal(t, 5, tl[0].BufferAfter)

	assert.Equal(t, 1, tl[1].ID, "missing id defaults to array index")
	assert.Equal(t, domain.PriorityMedium, tl[1].Priority)
	assert.Equal(t, domain.CategoryWork, tl[1].Category)
	assert.Equal(t, "", tl[1].Start)
	assert.Equal(t, 0, tl[1].BufferBefore)

	assert.Contains(t, rep.Defaulted, "timeline[1].id")
	assert.Contains(t, rep.Defaulted, "timeline[1].priority")
	assert.Contains(t, rep.Defaulted, "timeline[1].category")
	assert.Contains(t, rep.Defaulted, "timeline[2]")
	assert.NotContains(t, rep.Defaulted, "timeline[1].buffer_before")
	assert.NotContains(t, rep.Defaulted, "timeline[0].priority")
}

func TestNormalize_TipsAndAliases(t *testing.T) {
	raw := `{
		"neuro_tips":[{"schedule_id":"2","tips":[{"emoji":"💧","label":"물 마시기","reason":"집중"},{"label":"산책","duration":15}]}],
		"advisors":[{"name":"워런 버핏","initials":"WB","comment":"천천히","target_schedule":"미팅"}]
	}`
	r := Normalize(raw)

	require.Len(t, r.ScheduleTips, 1)
	assert.Equal(t, 2, r.ScheduleTips[0].ScheduleID)
	tips := r.TipsFor(2)
	require.Len(t, tips, 2)
	assert.Equal(t, DefaultTipDurationMin, tips[0].Duration)
	assert.Equal(t, 15, tips[1].Duration)

	require.Len(t, r.AdvisorComments, 1)
	assert.Equal(t, "WB", r.AdvisorComments[0].Initials)
	assert.Nil(t, r.TipsFor(99))
}

func TestNormalize_PrimaryKeyWinsOverAlias(t *testing.T) {
	r := Normalize(`{"advisor_comments":[{"name":"A"}],"advisors":[{"name":"B"}]}`)
	require.Len(t, r.AdvisorComments, 1)
	assert.Equal(t, "A", r.AdvisorComments[0].Name)
}

func TestNormalize_Briefings(t *testing.T) {
	raw := `{"briefings":[
		{"id":0,"title":"투자 미팅","confidence":9,"before":["자료 확인", 3],"during":"x","is_family":"true"},
		{"title":"가족","confidence":4}
	]}`
	rep := NormalizeDetailed(raw)
	b := rep.Result.Briefings
	require.Len(t, b, 2)

	assert.Equal(t, DefaultConfidence, b[0].Confidence, "out of range confidence")
	assert.Equal(t, []string{"자료 확인"}, b[0].Before)
	assert.NotNil(t, b[0].During)
	assert.Empty(t, b[0].During)
	assert.NotNil(t, b[0].After)
	assert.True(t, b[0].IsFamily)

	assert.Equal(t, 1, b[1].ID)
	assert.Equal(t, 4, b[1].Confidence)

	assert.Contains(t, rep.Defaulted, "briefings[0].confidence")
	assert.Contains(t, rep.Defaulted, "briefings[0].before[1]")
	assert.Contains(t, rep.Defaulted, "briefings[0].during")
}

func TestNormalize_OptionalSections(t *testing.T) {
	raw := `{
		"energy_chart":[{"hour":9,"level":8,"label":"peak"},{"hour":30,"level":0}],
		"specialist_advice":{"name":"수면 코치","summary":"일찍 자기","points":["23시 취침"]},
		"overload_warning":null,
		"recovery_suggestions":["10분 휴식"],
		"rest_mode_tip":"푹 쉬세요"
	}`
	rep := NormalizeDetailed(raw)
	r := rep.Result

	require.Len(t, r.EnergyChart, 2)
	assert.Equal(t, 9, r.EnergyChart[0].Hour)
	assert.Equal(t, 8, r.EnergyChart[0].Level)
	assert.Equal(t, 1, r.EnergyChart[1].Hour)
	assert.Equal(t, DefaultEnergyLevel, r.EnergyChart[1].Level)

	require.NotNil(t, r.SpecialistAdvice)
	assert.Equal(t, []string{"23시 취침"}, r.SpecialistAdvice.Points)
	assert.Empty(t, r.OverloadWarning)
	assert.Equal(t, []string{"10분 휴식"}, r.RecoverySuggestions)
	assert.Equal(t, "푹 쉬세요", r.RestModeTip)
	assert.NotContains(t, rep.Defaulted, "overload_warning")
}

func TestNormalize_SpecialistAdviceAbsentIsNil(t *testing.T) {
	r := Normalize(`{"overall_tip":"x"}`)
	assert.Nil(t, r.SpecialistAdvice)
}

func TestNormalize_Deterministic(t *testing.T) {
	raw := `{"timeline":[{"title":"a"}],"overall_tip":"t"}`
	assert.Equal(t, NormalizeDetailed(raw), NormalizeDetailed(raw))
}
