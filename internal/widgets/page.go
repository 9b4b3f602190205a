package widgets

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/smartattend/internal/surface"
	"github.com/jask/smartattend/internal/views"
)

// State is the live region state a descriptor is drawn with.
// *surface.Layer satisfies it.
type State interface {
	Value(formID, field string) string
	Flag(id string) bool
	Text(id string) (string, bool)
	Focused() string
}

// Editor returns the live editor rendering for a focused field id, if the
// caller has one.
type Editor func(fieldID string) (string, bool)

// Page draws a mounted view: the optional dashboard chrome around its blocks.
type Page struct {
	Title  string
	Chrome *views.Chrome
	Blocks []views.Block
	State  State
	Editor Editor
}

func (p Page) Render(width, height int) string {
	if width <= 0 || height <= 0 || p.State == nil {
		return ""
	}
	r := blockRenderer{st: p.State, ed: p.Editor}
	var top []string
	if p.Chrome != nil {
		top = append(top, r.topBar(p.Title, p.Chrome, width))
		if p.State.Flag(views.RegionProfileMenu) {
			top = append(top, r.menu(p.Chrome, width))
		}
	}
	bodyHeight := height
	if len(top) > 0 {
		bodyHeight = max(1, height-lipgloss.Height(joinLines(top)))
	}

	var body string
	if p.Chrome != nil && p.Chrome.Sidebar && width >= 60 {
		ratios, gap := []float64{2, 1}, 2
		cols := splitWidths(width-gap, 2, ratios)
		body = HStack{
			Widgets: []Widget{
				Static{Content: r.blocks(p.Blocks, cols[0])},
				Static{Content: r.sidebar(p.Chrome, cols[1])},
			},
			Ratios: ratios,
			Gap:    gap,
		}.Render(width, bodyHeight)
	} else {
		content := r.blocks(p.Blocks, width)
		if p.Chrome != nil && p.Chrome.Sidebar {
			content += "\n" + r.sidebar(p.Chrome, width)
		}
		body = Static{Content: content}.Render(width, bodyHeight)
	}
	return FitHeight(joinLines(append(top, body)), height)
}

// Dialog draws modal content. It is meant to be passed through RenderPopup.
type Dialog struct {
	Title  string
	Blocks []views.Block
	State  State
	Editor Editor
}

func (d Dialog) Render(width int) string {
	if d.State == nil {
		return ""
	}
	r := blockRenderer{st: d.State, ed: d.Editor}
	inner := max(20, width)
	return headingStyle.Render(d.Title) + "\n\n" + r.blocks(d.Blocks, inner)
}

type blockRenderer struct {
	st State
	ed Editor
}

func (r blockRenderer) focused(id string) bool { return id != "" && r.st.Focused() == id }

func (r blockRenderer) topBar(title string, c *views.Chrome, width int) string {
	left := brandStyle.Render("● " + views.AppName)
	if title != "" {
		left += mutedStyle.Render("  ·  " + title)
	}
	avatar := " " + c.Avatar + " "
	if r.focused(views.RegionProfile) {
		avatar = focusedButtonStyle.Render(avatar)
	} else {
		avatar = primaryButtonStyle.Render(avatar)
	}
	gap := max(1, width-lipgloss.Width(left)-lipgloss.Width(avatar))
	return barStyle.Width(width).Render(left + strings.Repeat(" ", gap) + avatar)
}

func (r blockRenderer) menu(c *views.Chrome, width int) string {
	rows := make([]string, 0, len(c.Menu))
	for _, b := range c.Menu {
		rows = append(rows, r.button(b))
	}
	card := cardStyle.Render(joinLines(rows))
	return lipgloss.PlaceHorizontal(width, lipgloss.Right, card)
}

func (r blockRenderer) sidebar(c *views.Chrome, width int) string {
	blocks := views.Sidebar(c)
	stack := VStack{Widgets: make([]Widget, 0, len(blocks))}
	for _, b := range blocks {
		stack.Widgets = append(stack.Widgets, blockWidget{r: r, b: b})
	}
	return stack.Render(max(10, width), 0)
}

// blockWidget lets a single block sit in a stack.
type blockWidget struct {
	r blockRenderer
	b views.Block
}

func (w blockWidget) Render(width, _ int) string { return w.r.block(w.b, width) }

func (r blockRenderer) blocks(blocks []views.Block, width int) string {
	var out []string
	var row []string
	flush := func() {
		if len(row) > 0 {
			out = append(out, lipgloss.JoinHorizontal(lipgloss.Top, withGaps(row)...))
			row = nil
		}
	}
	for _, b := range blocks {
		switch b := b.(type) {
		case views.Button:
			row = append(row, r.button(b))
			continue
		case views.Link:
			row = append(row, r.link(b))
			continue
		}
		flush()
		if s := r.block(b, width); s != "" {
			out = append(out, s)
		}
	}
	flush()
	return strings.Join(out, "\n\n")
}

func (r blockRenderer) block(b views.Block, width int) string {
	wrap := lipgloss.NewStyle().Width(max(1, width))
	switch b := b.(type) {
	case views.Heading:
		s := headingStyle.Render(b.Text)
		if b.Sub != "" {
			s += "\n" + mutedStyle.Inherit(wrap).Render(b.Sub)
		}
		return s
	case views.Text:
		if b.Muted {
			return mutedStyle.Inherit(wrap).Render(b.Text)
		}
		return textStyle.Inherit(wrap).Render(b.Text)
	case views.Button:
		return r.button(b)
	case views.Link:
		return r.link(b)
	case views.Notes:
		return r.notes(b, width)
	case views.Panel:
		if !r.st.Flag(b.ID) {
			return ""
		}
		lines := append([]string(nil), b.Lines...)
		if b.TextID != "" {
			if t, ok := r.st.Text(b.TextID); ok && t != "" {
				lines = append(lines, mutedStyle.Render(t))
			}
		}
		return Box{Content: joinLines(lines)}.Render(max(4, width), 0)
	case views.Indicator:
		return r.indicator(b)
	case views.Placeholder:
		content := mutedStyle.Render(b.Label)
		if b.TextID != "" {
			if t, ok := r.st.Text(b.TextID); ok {
				content += "\n" + textStyle.Render(t)
			}
		}
		return Box{Content: content}.Render(max(4, width), 0)
	case views.Form:
		return r.form(b, width)
	}
	return ""
}

func (r blockRenderer) button(b views.Button) string {
	switch {
	case r.focused(b.ID):
		return focusedButtonStyle.Render(b.Label)
	case b.Primary:
		return primaryButtonStyle.Render(b.Label)
	default:
		return buttonStyle.Render(b.Label)
	}
}

func (r blockRenderer) link(l views.Link) string {
	if r.focused(l.ID) {
		return focusedLinkStyle.Render("› " + l.Label)
	}
	return linkStyle.Render(l.Label)
}

func (r blockRenderer) notes(n views.Notes, width int) string {
	rows := []string{headingStyle.Render(n.Title)}
	if len(n.Items) == 0 {
		rows = append(rows, mutedStyle.Render("Nothing here yet"))
	}
	wrap := lipgloss.NewStyle().Width(max(1, width-4))
	for _, it := range n.Items {
		var lines []string
		if it.Title != "" || it.Meta != "" {
			head := textStyle.Bold(true).Render(it.Title)
			if it.Meta != "" {
				head += mutedStyle.Render("  " + it.Meta)
			}
			lines = append(lines, head)
		}
		if it.Body != "" {
			lines = append(lines, wrap.Render(it.Body))
		}
		rows = append(rows, Box{Content: joinLines(lines)}.Render(max(4, width), 0))
	}
	return joinLines(rows)
}

func (r blockRenderer) indicator(b views.Indicator) string {
	on := r.st.Flag(b.ID)
	dot := lipgloss.NewStyle().Foreground(colorError).Render("◯")
	state := b.OffLabel
	if on {
		dot = lipgloss.NewStyle().Foreground(colorSuccess).Render("●")
		state = b.OnLabel
	}
	s := dot + " " + textStyle.Render(b.Label)
	if state != "" {
		s += mutedStyle.Render("  " + state)
	}
	return s
}

func (r blockRenderer) form(f views.Form, width int) string {
	inner := max(8, width-4)
	rows := make([]string, 0, len(f.Fields)+4)
	for _, fld := range f.Fields {
		rows = append(rows, r.field(f.ID, fld))
	}
	if nested := r.blocks(f.Blocks, inner); nested != "" {
		rows = append(rows, "", nested)
	}
	submit := views.Button{ID: f.ID, Label: f.Submit, Primary: true}
	rows = append(rows, "", r.button(submit))
	if f.Footer != nil {
		rows = append(rows, r.link(*f.Footer))
	}
	return Box{Content: joinLines(rows), Focused: r.formFocused(f)}.Render(max(10, width), 0)
}

func (r blockRenderer) formFocused(f views.Form) bool {
	id := r.st.Focused()
	return id == f.ID || strings.HasPrefix(id, f.ID+".")
}

func (r blockRenderer) field(formID string, f views.Field) string {
	id := surface.FieldID(formID, f.Name)
	marker, ls := "  ", labelStyle
	if r.focused(id) {
		marker, ls = "› ", focusedLabelStyle
	}
	label := ls.Render(f.Label)
	if f.Required {
		label += requiredStyle.Render("*")
	}
	value := ""
	if r.focused(id) && r.ed != nil {
		if s, ok := r.ed(id); ok {
			value = s
		}
	}
	if value == "" {
		value = FieldValue(f, r.st.Value(formID, f.Name))
	}
	if f.Kind == views.FieldCheckbox {
		return marker + value + " " + label
	}
	return marker + label + "\n    " + value
}

// FieldValue renders the current value of a field without an editor.
func FieldValue(f views.Field, v string) string {
	switch f.Kind {
	case views.FieldPassword:
		if v == "" {
			return mutedStyle.Render(f.Placeholder)
		}
		return textStyle.Render(strings.Repeat("•", utf8.RuneCountInString(v)))
	case views.FieldCheckbox:
		if v == surface.CheckboxOn {
			return textStyle.Render("[x]")
		}
		return textStyle.Render("[ ]")
	case views.FieldChoice:
		opts := make([]string, 0, len(f.Options))
		for _, o := range f.Options {
			if o == v {
				opts = append(opts, textStyle.Bold(true).Render("(•) "+o))
			} else {
				opts = append(opts, mutedStyle.Render("( ) "+o))
			}
		}
		return strings.Join(opts, "  ")
	case views.FieldRange:
		n, err := strconv.Atoi(v)
		if err != nil {
			n = f.Min
		}
		var b strings.Builder
		for i := f.Min; i <= f.Max; i++ {
			if i == n {
				b.WriteString("●")
			} else {
				b.WriteString("─")
			}
		}
		return textStyle.Render(fmt.Sprintf("%d %s %d  (%d)", f.Min, b.String(), f.Max, n))
	default:
		if v == "" {
			hint := f.Placeholder
			if hint == "" && f.Kind == views.FieldDate {
				hint = "YYYY-MM-DD"
			}
			return mutedStyle.Render(hint)
		}
		return textStyle.Render(v)
	}
}

func withGaps(parts []string) []string {
	out := make([]string, 0, len(parts)*2)
	for i, p := range parts {
		if i > 0 {
			out = append(out, "  ")
		}
		out = append(out, p)
	}
	return out
}

func joinLines(rows []string) string { return strings.Join(rows, "\n") }
