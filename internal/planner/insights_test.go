package planner

import (
	"testing"

	"github.com/alexanderramin/dayplan/internal/domain"
	"github.com/alexanderramin/dayplan/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func nRecords(n int, p domain.Priority) []domain.ScheduleRecord {
	out := make([]domain.ScheduleRecord, n)
	for i := range out {
		// two hours apart so no continuous blocks form
		out[i] = testutil.NewTestRecord("일정", (i*2)%24, 0, testutil.WithPriority(p))
	}
	return out
}

func TestCheckOverload(t *testing.T) {
	assert.Empty(t, CheckOverload(nil))
	assert.Empty(t, CheckOverload(nRecords(5, domain.PriorityMedium)))
	assert.Equal(t, "일정이 6개입니다. 에너지 배분에 유의하세요.", CheckOverload(nRecords(6, domain.PriorityMedium)))
	assert.Equal(t, "고중요도 일정이 3개입니다. 중간에 반드시 휴식을 넣으세요.", CheckOverload(nRecords(3, domain.PriorityHigh)))
	assert.Equal(t, "일정 6개, 고중요도 6개 - 과부하 주의! 일부 일정을 축소하거나 위임하세요.",
		CheckOverload(nRecords(6, domain.PriorityHigh)))
}

func TestFindRecoverySuggestions(t *testing.T) {
	assert.Empty(t, FindRecoverySuggestions(nil))
	assert.Empty(t, FindRecoverySuggestions(nRecords(1, domain.PriorityMedium)))

	records := []domain.ScheduleRecord{
		testutil.NewTestRecord("c", 11, 10),
		testutil.NewTestRecord("a", 9, 0),
		testutil.NewTestRecord("b", 10, 0),
		testutil.NewTestRecord("d", 15, 0),
		testutil.NewTestRecord("e", 16, 15, testutil.WithEnd(16, 45)),
	}
	// 09:00-12:10 is one block (gaps 0 and 10); 15:00-16:45 is too short.
	assert.Equal(t, []string{"09:00~12:10 연속 일정 구간에 10~15분 회복 시간을 넣으세요."},
		FindRecoverySuggestions(records))
}

func TestFindRecoverySuggestions_GapBreaksBlock(t *testing.T) {
	records := []domain.ScheduleRecord{
		testutil.NewTestRecord("a", 9, 0),
		testutil.NewTestRecord("b", 10, 16),
	}
	assert.Empty(t, FindRecoverySuggestions(records))
}

func TestFindRecoverySuggestions_ContainedRecordKeepsBlockEnd(t *testing.T) {
	records := []domain.ScheduleRecord{
		testutil.NewTestRecord("long", 9, 0, testutil.WithEnd(12, 0)),
		testutil.NewTestRecord("inner", 9, 30),
	}
	assert.Equal(t, []string{"09:00~12:00 연속 일정 구간에 10~15분 회복 시간을 넣으세요."},
		FindRecoverySuggestions(records))
}

func TestIsRestDay(t *testing.T) {
	assert.True(t, IsRestDay(nil))
	assert.True(t, IsRestDay([]domain.ScheduleRecord{
		testutil.NewTestRecord("요가", 8, 0, testutil.WithCategory(domain.CategoryHealth)),
		testutil.NewTestRecord("독서", 20, 0, testutil.WithCategory(domain.CategoryPersonal)),
	}))
	assert.False(t, IsRestDay([]domain.ScheduleRecord{
		testutil.NewTestRecord("저녁식사", 19, 0, testutil.WithCategory(domain.CategoryFamily)),
	}))
}

func TestEnergyTip(t *testing.T) {
	high := nRecords(1, domain.PriorityHigh)
	low := nRecords(1, domain.PriorityLow)

	assert.Contains(t, EnergyTip(domain.EnergyLow, high), "고중요도 일정에 에너지를 집중")
	assert.Contains(t, EnergyTip(domain.EnergyLow, low), "핵심 업무만")
	assert.Contains(t, EnergyTip(domain.EnergyHigh, high), "도전적인 목표")
	assert.Empty(t, EnergyTip(domain.EnergyHigh, low))
	assert.Empty(t, EnergyTip(domain.EnergyMedium, high))
}
