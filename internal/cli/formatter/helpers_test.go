package formatter

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// ansiPattern matches ANSI escape sequences so assertions are terminal-independent.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestKoreanDate(t *testing.T) {
	assert.Equal(t, "2026년 3월 2일 (월)", KoreanDate("2026-03-02"))
	assert.Equal(t, "not-a-date", KoreanDate("not-a-date"))
}

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0m"},
		{-5, "0m"},
		{45, "45m"},
		{60, "1h"},
		{90, "1h 30m"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatMinutes(tt.in))
	}
}

func TestRenderLevel(t *testing.T) {
	assert.Equal(t, "[██████░░░░]  6/10", stripANSI(RenderLevel(6, 10, 10)))
	assert.Equal(t, "[██████████] 10/10", stripANSI(RenderLevel(15, 10, 10)))
	assert.Equal(t, "[░░░░░░░░░░]  0/10", stripANSI(RenderLevel(-1, 0, 10)))
}

func TestRenderConfidence(t *testing.T) {
	assert.Equal(t, "●●●○○", stripANSI(RenderConfidence(3)))
	assert.Equal(t, "●●●●●", stripANSI(RenderConfidence(9)))
}

func TestRenderTable_AlignsWideRunes(t *testing.T) {
	out := stripANSI(RenderTable([]string{"A", "B"}, [][]string{{"회의", "x"}, {"ab", "y"}}))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	assert.Len(t, lines, 4)
	assert.Equal(t, "A     B", lines[0])
	assert.Equal(t, "회의  x", lines[2])
	assert.Equal(t, "ab    y", lines[3])
}

func TestRenderTable_NoHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, [][]string{{"x"}}))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcd…", truncate("abcdefgh", 5))
	assert.Equal(t, "가나…", truncate("가나다라", 6))
}
