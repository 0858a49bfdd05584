package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/dayplan/internal/domain"
	"github.com/alexanderramin/dayplan/internal/planner"
)

// FormatAnalysis renders an analysis outcome as a CLI report.
func FormatAnalysis(out *planner.Outcome) string {
	r := out.Result
	var b strings.Builder

	if out.CacheHit {
		b.WriteString(Dim("(cached result)") + "\n\n")
	}
	if r.ParseFailed {
		b.WriteString(StyleYellow.Render("모델 응답을 해석하지 못했습니다. 원문 일부를 표시합니다.") + "\n\n")
	}

	if r.OverloadWarning != "" {
		b.WriteString(StyleRed.Render("⚠ "+r.OverloadWarning) + "\n\n")
	}
	if out.EnergyTip != "" {
		b.WriteString(StylePurple.Render(out.EnergyTip) + "\n\n")
	}

	if len(r.Timeline) > 0 {
		b.WriteString(Header("Timeline") + "\n\n")
		b.WriteString(formatTimeline(r))
		b.WriteString("\n")
	}

	if len(r.EnergyChart) > 0 {
		b.WriteString(Header("Energy") + "\n\n")
		for _, e := range r.EnergyChart {
			fmt.Fprintf(&b, "%02d:00 %s %s\n", e.Hour, RenderLevel(e.Level, 10, 10), Dim(e.Label))
		}
		b.WriteString("\n")
	}

	if len(r.Briefings) > 0 {
		b.WriteString(Header("Briefings") + "\n\n")
		for _, br := range r.Briefings {
			b.WriteString(formatBriefing(br))
			b.WriteString("\n")
		}
	}

	if len(r.AdvisorComments) > 0 {
		b.WriteString(Header("Advisors") + "\n\n")
		for _, c := range r.AdvisorComments {
			tag := domain.CoalesceStr(c.Initials, c.Name)
			fmt.Fprintf(&b, "%s %s", StylePurple.Render("["+tag+"]"), Bold(c.Name))
			if c.TargetSchedule != "" {
				fmt.Fprintf(&b, " %s", Dim("→ "+c.TargetSchedule))
			}
			fmt.Fprintf(&b, "\n   %s\n", c.Comment)
		}
		b.WriteString("\n")
	}

	if sa := r.SpecialistAdvice; sa != nil && (sa.Summary != "" || len(sa.Points) > 0) {
		b.WriteString(Header(domain.CoalesceStr(sa.Name, "Specialist")) + "\n\n")
		if sa.Summary != "" {
			b.WriteString(sa.Summary + "\n")
		}
		b.WriteString(Bullets("•", sa.Points))
		b.WriteString("\n")
	}

	if len(r.RecoverySuggestions) > 0 {
		b.WriteString(Header("Recovery") + "\n\n")
		b.WriteString(Bullets("•", r.RecoverySuggestions))
		b.WriteString("\n")
	}
	if r.RestModeTip != "" {
		b.WriteString(StyleGreen.Render("☾ "+r.RestModeTip) + "\n\n")
	}

	if r.OverallTip != "" {
		b.WriteString(RenderBox("Overall", r.OverallTip))
		b.WriteString("\n")
	}
	return b.String()
}

func formatTimeline(r domain.AnalysisResult) string {
	var b strings.Builder
	for _, e := range r.Timeline {
		fmt.Fprintf(&b, "%s %s  %s %s",
			TimeRange(e.Start, e.End),
			StyleFg.Render(e.Title),
			PriorityBadge(e.Priority),
			CategoryBadge(e.Category),
		)
		if e.BufferBefore > 0 || e.BufferAfter > 0 {
			b.WriteString(Dim(fmt.Sprintf("  (준비 %s / 정리 %s)", FormatMinutes(e.BufferBefore), FormatMinutes(e.BufferAfter))))
		}
		b.WriteString("\n")
		for _, tip := range r.TipsFor(e.ID) {
			label := strings.TrimSpace(tip.Emoji + " " + tip.Label)
			fmt.Fprintf(&b, "   %s %s", label, Dim(FormatMinutes(tip.Duration)))
			if tip.Reason != "" {
				fmt.Fprintf(&b, " %s", Dim("- "+tip.Reason))
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

func formatBriefing(br domain.Briefing) string {
	var b strings.Builder
	title := Bold(br.Title)
	if br.IsFamily {
		title += " " + StylePurple.Render("♥")
	}
	fmt.Fprintf(&b, "%s  %s\n", title, RenderConfidence(br.Confidence))
	section := func(label string, items []string) {
		if len(items) == 0 {
			return
		}
		b.WriteString("   " + StyleBlue.Render(label) + "\n")
		for _, it := range items {
			b.WriteString("     - " + it + "\n")
		}
	}
	section("Before", br.Before)
	section("During", br.During)
	section("After", br.After)
	if br.Transition != "" {
		fmt.Fprintf(&b, "   %s %s\n", StyleBlue.Render("Next:"), br.Transition)
	}
	if br.EmotionNote != "" {
		fmt.Fprintf(&b, "   %s\n", Dim(br.EmotionNote))
	}
	return b.String()
}
