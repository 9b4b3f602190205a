package widgets

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// VStack piles widgets top to bottom, each at its natural height, with Gap
// blank rows between them. A positive height clips the pile.
type VStack struct {
	Widgets []Widget
	Gap     int
}

func (v VStack) Render(width, height int) string {
	if width <= 0 || len(v.Widgets) == 0 {
		return ""
	}
	var rows []string
	for i, w := range v.Widgets {
		part := w.Render(width, 0)
		if part == "" {
			continue
		}
		if i > 0 && len(rows) > 0 {
			for range v.Gap {
				rows = append(rows, "")
			}
		}
		rows = append(rows, strings.Split(part, "\n")...)
	}
	if height > 0 && len(rows) > height {
		rows = rows[:height]
	}
	return strings.Join(rows, "\n")
}

// HStack puts widgets side by side. Column widths follow Ratios, or are
// equal when Ratios does not match Widgets.
type HStack struct {
	Widgets []Widget
	Ratios  []float64
	Gap     int
}

func (h HStack) Render(width, height int) string {
	n := len(h.Widgets)
	if n == 0 || width <= 0 || height <= 0 {
		return ""
	}
	cols := splitWidths(width-h.Gap*(n-1), n, h.Ratios)
	parts := make([][]string, n)
	rows := 0
	for i, w := range h.Widgets {
		parts[i] = strings.Split(w.Render(cols[i], height), "\n")
		rows = max(rows, len(parts[i]))
	}
	rows = min(rows, height)
	gap := strings.Repeat(" ", max(0, h.Gap))
	out := make([]string, rows)
	for r := range rows {
		var b strings.Builder
		for i := range parts {
			if i > 0 {
				b.WriteString(gap)
			}
			line := ""
			if r < len(parts[i]) {
				line = parts[i][r]
			}
			b.WriteString(padRight(line, cols[i]))
		}
		out[r] = b.String()
	}
	return strings.Join(out, "\n")
}

// splitWidths shares total among n columns by weight. Weights that are
// missing or not positive count as 1. The parts always add up to total.
func splitWidths(total, n int, ratios []float64) []int {
	if n <= 0 {
		return nil
	}
	total = max(0, total)
	weights := make([]float64, n)
	sum := 0.0
	for i := range weights {
		weights[i] = 1
		if len(ratios) == n && ratios[i] > 0 {
			weights[i] = ratios[i]
		}
		sum += weights[i]
	}
	out := make([]int, n)
	used := 0
	for i, w := range weights {
		out[i] = int(w / sum * float64(total))
		used += out[i]
	}
	// hand out the rounding remainder left to right
	for i := 0; used < total; i = (i + 1) % n {
		out[i]++
		used++
	}
	return out
}

// padRight clips or pads s to exactly width cells.
func padRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	if gap := width - ansi.StringWidth(s); gap > 0 {
		s += strings.Repeat(" ", gap)
	}
	return s
}

// FitHeight pads or clips s to exactly height lines.
func FitHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	return strings.Join(splitToLines(s, height), "\n")
}
