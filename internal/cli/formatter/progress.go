package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderLevel renders an energy level as a bar like [██████░░░░] 6/10.
// The bar is green from 7, yellow from 4 and red below.
func RenderLevel(level, scale, width int) string {
	if scale <= 0 {
		scale = 10
	}
	level = min(max(level, 0), scale)
	if width < 2 {
		width = 2
	}

	filled := level * width / scale
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	switch pct := float64(level) / float64(scale); {
	case pct < 0.4:
		style = StyleRed
	case pct < 0.7:
		style = StyleYellow
	}
	return fmt.Sprintf("[%s] %2d/%d", style.Render(bar), level, scale)
}

// RenderConfidence renders a 1-5 confidence score as filled and empty dots.
func RenderConfidence(score int) string {
	score = min(max(score, 0), 5)
	return StyleYellow.Render(strings.Repeat("●", score)) + StyleDim.Render(strings.Repeat("○", 5-score))
}
