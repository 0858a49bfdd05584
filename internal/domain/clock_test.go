package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClock_Range(t *testing.T) {
	c, ok := NewClock(9, 30)
	require.True(t, ok)
	assert.Equal(t, "09:30", c.String())

	_, ok = NewClock(24, 0)
	assert.False(t, ok)
	_, ok = NewClock(10, 60)
	assert.False(t, ok)
	_, ok = NewClock(-1, 0)
	assert.False(t, ok)
}

func TestParseClock(t *testing.T) {
	c, ok := ParseClock("14:05")
	require.True(t, ok)
	assert.Equal(t, 14, c.Hour())
	assert.Equal(t, 5, c.Minute())

	for _, bad := range []string{"", "14", "14:5", "aa:bb", "25:00"} {
		_, ok := ParseClock(bad)
		assert.False(t, ok, "should reject %q", bad)
	}
}

func TestClockAdd_WrapsAtMidnight(t *testing.T) {
	c, _ := NewClock(23, 30)
	assert.Equal(t, "00:30", c.Add(60).String())
	assert.Equal(t, "22:30", c.Add(-60).String())
}

func TestClockJSON(t *testing.T) {
	c, _ := NewClock(7, 0)
	data, err := json.Marshal(c)
	require.NoError(t, err)
	assert.Equal(t, `"07:00"`, string(data))

	var back Clock
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, c, back)

	assert.Error(t, json.Unmarshal([]byte(`"7h"`), &back))
	assert.Error(t, json.Unmarshal([]byte(`420`), &back))
}

func TestSortRecords_StableOnTies(t *testing.T) {
	nine, _ := NewClock(9, 0)
	eight, _ := NewClock(8, 0)
	in := []ScheduleRecord{
		{ID: "a", Start: nine},
		{ID: "b", Start: eight},
		{ID: "c", Start: nine},
	}
	out := SortRecords(in)

	ids := []string{out[0].ID, out[1].ID, out[2].ID}
	assert.Equal(t, []string{"b", "a", "c"}, ids)
	assert.Equal(t, "a", in[0].ID, "input must not be reordered")
}

func TestScheduleRecordDurationMin(t *testing.T) {
	start, _ := NewClock(23, 30)
	r := ScheduleRecord{Start: start, End: start.Add(60)}
	assert.Equal(t, 60, r.DurationMin())
}

func TestPromptRequestAdvisorIDs_CustomUsesName(t *testing.T) {
	req := PromptRequest{Advisors: []AdvisorSpec{{ID: "em", Name: "Elon"}, {Name: "Grandma"}}}
	assert.Equal(t, []string{"em", "custom:Grandma"}, req.AdvisorIDs())
}
