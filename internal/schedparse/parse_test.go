package schedparse

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/dayplan/internal/domain"
)

func clock(t *testing.T, s string) domain.Clock {
	t.Helper()
	c, ok := domain.ParseClock(s)
	require.True(t, ok, s)
	return c
}

func TestParse_HourLineYieldsOneHourBlock(t *testing.T) {
	for h := 0; h < 24; h++ {
		in := fmt.Sprintf("%d시   일정 %d  ", h, h)
		recs := Parse(in)
		require.Len(t, recs, 1, in)

		start, _ := domain.NewClock(h, 0)
		end, _ := domain.NewClock((h+1)%24, 0)
		assert.Equal(t, start, recs[0].Start, in)
		assert.Equal(t, end, recs[0].End, in)
		assert.Equal(t, fmt.Sprintf("일정 %d", h), recs[0].Title)
	}
}

func TestParse_NoTimeYieldsEmpty(t *testing.T) {
	assert.Empty(t, Parse(""))
	assert.Empty(t, Parse("아무거나"))
	assert.NotNil(t, Parse(""))
}

func TestParse_ThreeLines(t *testing.T) {
	recs := Parse("14시 프로젝트\n9시 미팅\n11시 팀회의")
	require.Len(t, recs, 3)

	assert.Equal(t, "미팅", recs[0].Title)
	assert.Equal(t, "팀회의", recs[1].Title)
	assert.Equal(t, "프로젝트", recs[2].Title)

	assert.Equal(t, domain.PriorityHigh, recs[0].Priority)
	assert.Equal(t, domain.PriorityMedium, recs[2].Priority)
	assert.Equal(t, domain.CategoryWork, recs[2].Category)

	ids := map[string]bool{}
	for _, r := range recs {
		assert.NotEmpty(t, r.ID)
		ids[r.ID] = true
	}
	assert.Len(t, ids, 3)
}

func TestParse_IdempotentExceptID(t *testing.T) {
	text := "9시 미팅, 오후 2시~4시 프로젝트. 저녁 7시 가족 저녁식사"
	a, b := Parse(text), Parse(text)
	require.Len(t, a, 3)
	require.Len(t, b, 3)
	for i := range a {
		assert.NotEqual(t, a[i].ID, b[i].ID)
		a[i].ID, b[i].ID = "", ""
	}
	assert.Equal(t, a, b)
}

func TestParse_AfternoonRange(t *testing.T) {
	recs := Parse("오후 2시~4시 프로젝트")
	require.Len(t, recs, 1)
	assert.Equal(t, clock(t, "14:00"), recs[0].Start)
	assert.Equal(t, clock(t, "16:00"), recs[0].End)
}

func TestParse_AfternoonNoonIsNotShifted(t *testing.T) {
	recs := Parse("오후 12시 점심")
	require.Len(t, recs, 1)
	assert.Equal(t, clock(t, "12:00"), recs[0].Start)
}

func TestParse_MorningTwelveIsMidnight(t *testing.T) {
	recs := Parse("오전 12시 수면")
	require.Len(t, recs, 1)
	assert.Equal(t, clock(t, "00:00"), recs[0].Start)
}

func TestParse_SpacedHalf(t *testing.T) {
	recs := Parse("9시 반 회의")
	require.Len(t, recs, 1)
	assert.Equal(t, clock(t, "09:30"), recs[0].Start)
	assert.Equal(t, "회의", recs[0].Title)
}

func TestParse_HalfGluedToWordIsTitle(t *testing.T) {
	recs := Parse("7시 반찬 만들기")
	require.Len(t, recs, 1)
	assert.Equal(t, clock(t, "07:00"), recs[0].Start)
	assert.Equal(t, "반찬 만들기", recs[0].Title)
}

func TestParse_ChildKeywordIsFamily(t *testing.T) {
	recs := Parse("오후 4시 아이 병원")
	require.Len(t, recs, 1)
	assert.Equal(t, clock(t, "16:00"), recs[0].Start)
	assert.Equal(t, domain.CategoryFamily, recs[0].Category)
}

func TestParse_HalfAndMinutes(t *testing.T) {
	recs := Parse("9시반 스탠드업, 10:15~11:45 코드 리뷰")
	require.Len(t, recs, 2)
	assert.Equal(t, clock(t, "09:30"), recs[0].Start)
	assert.Equal(t, clock(t, "10:30"), recs[0].End)
	assert.Equal(t, clock(t, "10:15"), recs[1].Start)
	assert.Equal(t, clock(t, "11:45"), recs[1].End)
}

func TestParse_EndNotAfterStartFallsBack(t *testing.T) {
	recs := Parse("15시~3시 회고")
	require.Len(t, recs, 1)
	assert.Equal(t, clock(t, "15:00"), recs[0].Start)
	assert.Equal(t, clock(t, "16:00"), recs[0].End)
}

func TestParse_LateStartWrapsAtMidnight(t *testing.T) {
	recs := Parse("23시 야식")
	require.Len(t, recs, 1)
	assert.Equal(t, clock(t, "00:00"), recs[0].End)
}

func TestParse_FullWidthInput(t *testing.T) {
	recs := Parse("１４：００～１５：３０ 발표")
	require.Len(t, recs, 1)
	assert.Equal(t, clock(t, "14:00"), recs[0].Start)
	assert.Equal(t, clock(t, "15:30"), recs[0].End)
	assert.Equal(t, domain.PriorityHigh, recs[0].Priority)
}

func TestParse_OutOfRangeHourDropped(t *testing.T) {
	assert.Empty(t, Parse("25시 회의"))
	assert.Empty(t, Parse("24시 회의"))

	recs := Parse("오후 13시 회의")
	require.Len(t, recs, 1)
	assert.Equal(t, clock(t, "13:00"), recs[0].Start)
}

func TestParse_StableOnTies(t *testing.T) {
	recs := Parse("9시 첫번째\n9시 두번째")
	require.Len(t, recs, 2)
	assert.Equal(t, "첫번째", recs[0].Title)
	assert.Equal(t, "두번째", recs[1].Title)
}

func TestParseDetailed_Dropped(t *testing.T) {
	res := ParseDetailed("9시 미팅, 아무거나,  , 점심 먹기")
	require.Len(t, res.Records, 1)
	assert.Equal(t, []string{"아무거나", "점심 먹기"}, res.Dropped)
	assert.False(t, res.Unrecognized())
}

func TestResultUnrecognized(t *testing.T) {
	assert.True(t, ParseDetailed("아무거나").Unrecognized())
	assert.False(t, ParseDetailed("   ").Unrecognized())
	assert.False(t, ParseDetailed("").Unrecognized())
}

func TestSegments(t *testing.T) {
	assert.Equal(t, []string{"a", "b c", "d"}, Segments(" a ,b c\n\n. d."))
}
