package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a completion bar such as [████░░░░]  45% for a
// ratio in [0, 1]. Out-of-range input clamps; width is the bar's cell
// count. Color tracks the ratio: red for the bottom third, yellow for the
// middle, green above.
func RenderProgress(pct float64, width int) string {
	switch {
	case pct < 0:
		pct = 0
	case pct > 1:
		pct = 1
	}
	if width < 2 {
		width = 2
	}

	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	switch {
	case pct < 1.0/3:
		style = StyleRed
	case pct < 2.0/3:
		style = StyleYellow
	}

	return fmt.Sprintf("[%s] %3.0f%%", style.Render(bar), pct*100)
}
