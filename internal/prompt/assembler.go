// Package prompt builds the role-tagged messages sent to the model for a
// day analysis.
package prompt

import (
	"fmt"
	"strings"
	"sync"

	"github.com/alexanderramin/dayplan/internal/domain"
	"github.com/alexanderramin/dayplan/internal/llm"
)

// Placeholders written when a section has no content.
const (
	NoProfileSentinel  = "(no profile)"
	NoAdvisorsSentinel = "(no advisors)"
	NoScheduleSentinel = "(no schedule)"
)

const sectionRule = "\n\n---\n\n"

const outputDirective = "반드시 아래 JSON 스키마에 맞춰 순수 JSON으로만 응답하십시오. 마크다운이나 코드블록(```)으로 감싸지 마십시오.\n\n"

var energyLabels = map[domain.EnergyLevel]string{
	domain.EnergyHigh:   "high (좋음)",
	domain.EnergyMedium: "medium (보통)",
	domain.EnergyLow:    "low (낮음)",
}

var detailDirectives = map[domain.DetailMode]string{
	domain.DetailShort: "답변 길이: short. 각 항목은 한 줄로 간결하게. energy_chart, briefings, specialist_advice는 생략하세요.",
	domain.DetailLong:  "답변 길이: long. 각 항목을 여러 문장으로 자세히 쓰고, energy_chart와 일정별 briefings를 반드시 포함하세요.",
}

const restDayLine = "오늘은 쉬는 날입니다. 업무 최적화보다 회복과 리커버리 전략을 중심으로 제안하세요."

// Assembler turns a PromptRequest into model messages. It is safe for
// concurrent use; the system prompt is built once on first use.
type Assembler struct {
	assets Assets

	once   sync.Once
	system string
}

func NewAssembler(assets Assets) *Assembler {
	return &Assembler{assets: assets}
}

// SystemPrompt returns the instruction, catalog and schema documents joined
// in fixed order.
func (a *Assembler) SystemPrompt() string {
	a.once.Do(func() {
		a.system = strings.Join([]string{
			a.assets.Instructions,
			sectionRule + "## Reference: Advisor Pool\n",
			a.assets.AdvisorCatalog,
			sectionRule + "## Output Format\n",
			outputDirective,
			a.assets.OutputSchema,
		}, "")
	})
	return a.system
}

// Assemble returns exactly one system and one user message. Equal requests
// produce byte-identical output.
func (a *Assembler) Assemble(req domain.PromptRequest) []llm.Message {
	return []llm.Message{
		{Role: llm.RoleSystem, Content: a.SystemPrompt()},
		{Role: llm.RoleUser, Content: UserMessage(req)},
	}
}

// UserMessage renders the request state as the user turn.
func UserMessage(req domain.PromptRequest) string {
	sections := []string{
		"## Profile\n" + profileSection(req.Profile),
		"## Energy\n" + energyLabel(req.Energy),
		"## Advisors\n" + advisorSection(req.Advisors),
		"## Schedule\n" + scheduleSection(req.Records),
	}
	if req.IsRestDay {
		sections = append(sections, "## Rest day\n"+restDayLine)
	}
	sections = append(sections, detailDirective(req.Detail))
	return strings.Join(sections, "\n\n")
}

func profileSection(p domain.UserProfile) string {
	var lines []string
	add := func(label string, vals ...string) {
		var kept []string
		for _, v := range vals {
			if v = strings.TrimSpace(v); v != "" {
				kept = append(kept, v)
			}
		}
		if len(kept) > 0 {
			lines = append(lines, fmt.Sprintf("- %s: %s", label, strings.Join(kept, ", ")))
		}
	}
	add("특성", p.Traits...)
	add("복용 약", p.Medications...)
	add("선호", p.Preferences...)
	add("수면 목표", p.SleepGoal)
	add("메모", p.Notes)
	if len(lines) == 0 {
		return NoProfileSentinel
	}
	return strings.Join(lines, "\n")
}

func energyLabel(e domain.EnergyLevel) string {
	if l, ok := energyLabels[e]; ok {
		return l
	}
	return energyLabels[domain.DefaultEnergy]
}

func advisorSection(advisors []domain.AdvisorSpec) string {
	if len(advisors) == 0 {
		return NoAdvisorsSentinel
	}
	lines := make([]string, 0, domain.MaxAdvisors)
	for i, a := range advisors {
		if i == domain.MaxAdvisors {
			break
		}
		lines = append(lines, fmt.Sprintf("- %s (%s)", a.Name, domain.CoalesceStr(a.Style, CustomStyle)))
	}
	return strings.Join(lines, "\n")
}

func scheduleSection(records []domain.ScheduleRecord) string {
	if len(records) == 0 {
		return NoScheduleSentinel
	}
	sorted := domain.SortRecords(records)
	lines := make([]string, len(sorted))
	for i, r := range sorted {
		lines[i] = FormatRecord(i+1, r)
	}
	return strings.Join(lines, "\n")
}

// FormatRecord renders one schedule line as "{i}. {start}~{end} {title} [{priority}/{category}]".
func FormatRecord(index int, r domain.ScheduleRecord) string {
	return fmt.Sprintf("%d. %s~%s %s [%s/%s]", index, r.Start, r.End, r.Title, r.Priority, r.Category)
}

func detailDirective(d domain.DetailMode) string {
	if s, ok := detailDirectives[d]; ok {
		return s
	}
	return detailDirectives[domain.DefaultDetail]
}
