package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/dayplan/internal/domain"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

var weekdaysKo = [...]string{"일", "월", "화", "수", "목", "금", "토"}

// KoreanDate formats a YYYY-MM-DD key as "2026년 3월 2일 (월)". Keys that do
// not parse are returned unchanged.
func KoreanDate(date string) string {
	t, err := time.Parse(domain.DateLayout, date)
	if err != nil {
		return date
	}
	return fmt.Sprintf("%d년 %d월 %d일 (%s)", t.Year(), int(t.Month()), t.Day(), weekdaysKo[t.Weekday()])
}

// FormatMinutes converts raw minutes into human-friendly format.
func FormatMinutes(min int) string {
	if min <= 0 {
		return "0m"
	}
	h := min / 60
	m := min % 60
	if h > 0 && m > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	if h > 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dm", m)
}

// TimeRange renders "09:00~10:00".
func TimeRange(start, end string) string {
	return StyleBlue.Render(start + "~" + end)
}

// Bullets renders each item on its own indented line with the given marker.
func Bullets(marker string, items []string) string {
	var b strings.Builder
	for _, it := range items {
		b.WriteString("   " + Dim(marker) + " " + it + "\n")
	}
	return b.String()
}
