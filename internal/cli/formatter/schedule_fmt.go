package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/dayplan/internal/domain"
)

// FormatRecords renders parsed schedule records as a table.
func FormatRecords(records []domain.ScheduleRecord) string {
	if len(records) == 0 {
		return Dim("No schedule items.") + "\n"
	}
	rows := make([][]string, 0, len(records))
	for i, r := range domain.SortRecords(records) {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			TimeRange(r.Start.String(), r.End.String()),
			r.Title,
			PriorityBadge(r.Priority),
			CategoryBadge(r.Category),
			FormatMinutes(r.DurationMin()),
		})
	}
	return RenderTable([]string{"#", "TIME", "TITLE", "PRIORITY", "CATEGORY", "LENGTH"}, rows)
}

// FormatDropped lists the segments the parser could not read.
func FormatDropped(segments []string) string {
	if len(segments) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(StyleYellow.Render(fmt.Sprintf("Skipped %d segment(s) without a time:", len(segments))))
	b.WriteString("\n")
	b.WriteString(Bullets("-", segments))
	return b.String()
}

// FormatDay renders a stored day record.
func FormatDay(rec *domain.DayRecord) string {
	var b strings.Builder
	b.WriteString(Header(KoreanDate(rec.Date)))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%s %s\n", Dim("Energy:"), EnergyBadge(rec.Energy))
	if len(rec.Advisors) > 0 {
		fmt.Fprintf(&b, "%s %s\n", Dim("Advisors:"), strings.Join(rec.Advisors, ", "))
	}
	b.WriteString("\n")
	b.WriteString(FormatRecords(rec.Records))
	if rec.Review != "" || rec.CompletedCount > 0 {
		b.WriteString("\n")
		fmt.Fprintf(&b, "%s %d\n", Dim("Completed:"), rec.CompletedCount)
		if rec.Review != "" {
			fmt.Fprintf(&b, "%s %s\n", Dim("Review:"), rec.Review)
		}
	}
	return b.String()
}

// FormatDayList renders one summary row per stored day.
func FormatDayList(days []*domain.DayRecord) string {
	if len(days) == 0 {
		return Dim("No saved days in range.") + "\n"
	}
	rows := make([][]string, 0, len(days))
	for _, d := range days {
		rows = append(rows, []string{
			d.Date,
			EnergyBadge(d.Energy),
			strconv.Itoa(len(d.Records)),
			strconv.Itoa(d.CompletedCount),
		})
	}
	return RenderTable([]string{"DATE", "ENERGY", "ITEMS", "DONE"}, rows)
}

// FormatAdvisors renders the advisor roster.
func FormatAdvisors(advisors []domain.AdvisorSpec, defaults []string) string {
	isDefault := make(map[string]bool, len(defaults))
	for _, id := range defaults {
		isDefault[id] = true
	}
	rows := make([][]string, 0, len(advisors))
	for _, a := range advisors {
		id := a.ID
		if isDefault[id] {
			id = StyleGreen.Render(id + "*")
		}
		rows = append(rows, []string{id, a.Name, a.NameEn, a.Style})
	}
	return RenderTable([]string{"ID", "NAME", "", "STYLE"}, rows) + Dim("* default selection") + "\n"
}

// FormatProfile renders the user profile.
func FormatProfile(p *domain.UserProfile) string {
	if p.IsEmpty() {
		return Dim("Profile is empty. Set it with `dayplan profile set`.") + "\n"
	}
	var b strings.Builder
	line := func(label, value string) {
		if value != "" {
			fmt.Fprintf(&b, "%s %s\n", Dim(label+":"), value)
		}
	}
	line("Traits", strings.Join(p.Traits, ", "))
	line("Medications", strings.Join(p.Medications, ", "))
	line("Preferences", strings.Join(p.Preferences, ", "))
	line("Sleep goal", p.SleepGoal)
	line("Notes", p.Notes)
	return b.String()
}
