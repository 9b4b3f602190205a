package widgets

// Box is a bordered card, accented while focused. A height of zero lets the
// content decide.
type Box struct {
	Content string
	Focused bool
}

func (b Box) Render(width, height int) string {
	if width <= 2 || height < 0 {
		return ""
	}
	border := colorBorder
	if b.Focused {
		border = colorAccent
	}
	style := cardStyle.BorderForeground(border).Width(width - 2)
	if height > 2 {
		style = style.Height(height - 2)
	}
	return style.Render(b.Content)
}
