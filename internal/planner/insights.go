package planner

import (
	"fmt"

	"github.com/alexanderramin/dayplan/internal/domain"
)

// Thresholds for the deterministic schedule checks.
const (
	OverloadItemCount   = 6
	OverloadHighCount   = 3
	RecoveryBlockMin    = 120
	ContinuousGapMaxMin = 15
)

// RestModeTip is used when a rest-day result comes back without one.
const RestModeTip = "오늘은 회복에 집중하는 날입니다. 가벼운 산책이나 낮잠으로 에너지를 채우고, 내일을 위한 준비는 10분 이내로 짧게 끝내세요."

// CheckOverload returns a warning when the day has too many items or too
// many high-priority items, or "" when the load is fine.
func CheckOverload(records []domain.ScheduleRecord) string {
	high := countHigh(records)
	n := len(records)
	switch {
	case n >= OverloadItemCount && high >= OverloadHighCount:
		return fmt.Sprintf("일정 %d개, 고중요도 %d개 - 과부하 주의! 일부 일정을 축소하거나 위임하세요.", n, high)
	case n >= OverloadItemCount:
		return fmt.Sprintf("일정이 %d개입니다. 에너지 배분에 유의하세요.", n)
	case high >= OverloadHighCount:
		return fmt.Sprintf("고중요도 일정이 %d개입니다. 중간에 반드시 휴식을 넣으세요.", high)
	}
	return ""
}

// FindRecoverySuggestions finds runs of back-to-back records (gaps of at
// most ContinuousGapMaxMin) lasting RecoveryBlockMin or longer and suggests
// a break inside each.
func FindRecoverySuggestions(records []domain.ScheduleRecord) []string {
	out := []string{}
	if len(records) < 2 {
		return out
	}

	sorted := domain.SortRecords(records)
	blockStart, blockEnd := sorted[0].Start, sorted[0].End
	flush := func() {
		if int(blockEnd)-int(blockStart) >= RecoveryBlockMin {
			out = append(out, fmt.Sprintf("%s~%s 연속 일정 구간에 10~15분 회복 시간을 넣으세요.", blockStart, blockEnd))
		}
	}
	for _, r := range sorted[1:] {
		if int(r.Start)-int(blockEnd) <= ContinuousGapMaxMin {
			if r.End > blockEnd {
				blockEnd = r.End
			}
			continue
		}
		flush()
		blockStart, blockEnd = r.Start, r.End
	}
	flush()
	return out
}

// IsRestDay reports whether the day has no records or only personal and
// health records.
func IsRestDay(records []domain.ScheduleRecord) bool {
	for _, r := range records {
		if r.Category != domain.CategoryPersonal && r.Category != domain.CategoryHealth {
			return false
		}
	}
	return true
}

// EnergyTip returns a strategy line for the energy level, or "" when none applies.
func EnergyTip(energy domain.EnergyLevel, records []domain.ScheduleRecord) string {
	high := countHigh(records)
	switch {
	case energy == domain.EnergyLow && high > 0:
		return "에너지가 낮은 날입니다. 고중요도 일정에 에너지를 집중하고, 나머지는 최대한 단순화하세요."
	case energy == domain.EnergyLow:
		return "에너지가 낮은 날입니다. 무리하지 말고, 핵심 업무만 처리하세요."
	case energy == domain.EnergyHigh && high > 0:
		return "에너지가 좋은 날입니다! 도전적인 목표를 세워보세요."
	}
	return ""
}

// mergeInsights fills the sections the model left empty with the
// deterministic checks. Model-provided text always wins.
func mergeInsights(r *domain.AnalysisResult, req domain.PromptRequest) {
	if r.OverloadWarning == "" {
		r.OverloadWarning = CheckOverload(req.Records)
	}
	if len(r.RecoverySuggestions) == 0 {
		r.RecoverySuggestions = FindRecoverySuggestions(req.Records)
	}
	if r.RestModeTip == "" && req.IsRestDay {
		r.RestModeTip = RestModeTip
	}
}

func countHigh(records []domain.ScheduleRecord) int {
	n := 0
	for _, r := range records {
		if r.Priority == domain.PriorityHigh {
			n++
		}
	}
	return n
}
