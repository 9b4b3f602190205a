package widgets

import "strings"

type Widget interface {
	Render(width, height int) string
}

// Static is pre-rendered content fitted to width. A positive height fits it
// to exactly that many rows; zero keeps its own height.
type Static struct {
	Content string
}

func (s Static) Render(width, height int) string {
	if width <= 0 || height < 0 || (height == 0 && s.Content == "") {
		return ""
	}
	lines := splitToLines(s.Content, height)
	for i := range lines {
		lines[i] = padRight(lines[i], width)
	}
	return strings.Join(lines, "\n")
}
