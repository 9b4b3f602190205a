package tui

import (
	"strconv"
	"unicode"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/smartattend/internal/surface"
	"github.com/jask/smartattend/internal/views"
)

// editors holds one text input per typeable field of a layer. They are
// rebuilt whenever the layer is remounted.
type editors struct {
	layer  *surface.Layer
	gen    uint64
	inputs map[string]*textinput.Model
	kinds  map[string]views.FieldKind
}

func typeable(k views.FieldKind) bool {
	switch k {
	case views.FieldText, views.FieldPassword, views.FieldDate, views.FieldNumber:
		return true
	}
	return false
}

// sync rebuilds for a new mount and copies layer values into the inputs.
func (e *editors) sync(l *surface.Layer) {
	if l != e.layer || l.Generation() != e.gen {
		e.layer, e.gen = l, l.Generation()
		e.inputs = map[string]*textinput.Model{}
		e.kinds = map[string]views.FieldKind{}
		for _, f := range views.Forms(l.Blocks()) {
			for _, fld := range f.Fields {
				e.kinds[surface.FieldID(f.ID, fld.Name)] = fld.Kind
				if !typeable(fld.Kind) {
					continue
				}
				ti := textinput.New()
				ti.Prompt = ""
				ti.Placeholder = fld.Placeholder
				if fld.Kind == views.FieldPassword {
					ti.EchoMode = textinput.EchoPassword
					ti.EchoCharacter = '•'
				}
				e.inputs[surface.FieldID(f.ID, fld.Name)] = &ti
			}
		}
	}
	focused := l.Focused()
	for id, ti := range e.inputs {
		form, field, _ := l.SplitFieldID(id)
		if v := l.Value(form, field); ti.Value() != v {
			ti.SetValue(v)
		}
		if id == focused {
			if !ti.Focused() {
				ti.Focus()
				ti.CursorEnd()
			}
		} else {
			ti.Blur()
		}
	}
}

// focusedInput returns the input of the focused field, if it is typeable.
func (e *editors) focusedInput() (string, *textinput.Model, bool) {
	if e.layer == nil {
		return "", nil, false
	}
	id := e.layer.Focused()
	ti, ok := e.inputs[id]
	return id, ti, ok
}

// update feeds msg to the focused input and writes the result back.
func (e *editors) update(msg tea.KeyMsg) tea.Cmd {
	id, ti, ok := e.focusedInput()
	if !ok || !accepts(e.kinds[id], msg) {
		return nil
	}
	next, cmd := ti.Update(msg)
	*ti = next
	if form, field, ok := e.layer.SplitFieldID(id); ok {
		e.layer.SetValue(form, field, ti.Value())
	}
	return cmd
}

// accepts filters typed runes for numeric and date fields.
func accepts(kind views.FieldKind, msg tea.KeyMsg) bool {
	if msg.Type != tea.KeyRunes && msg.Type != tea.KeySpace {
		return true
	}
	for _, r := range msg.Runes {
		switch kind {
		case views.FieldNumber:
			if !unicode.IsDigit(r) {
				return false
			}
		case views.FieldDate:
			if !unicode.IsDigit(r) && r != '-' {
				return false
			}
		}
	}
	return true
}

// view is the widgets.Editor for the focused field.
func (e *editors) view(id string) (string, bool) {
	ti, ok := e.inputs[id]
	if !ok {
		return "", false
	}
	return ti.View(), true
}

// cycle moves a choice or range field one step.
func cycle(l *surface.Layer, id string, delta int) bool {
	form, field, ok := l.SplitFieldID(id)
	if !ok {
		return false
	}
	f, _ := l.Form(form)
	fld, _ := f.Field(field)
	cur := l.Value(form, field)
	switch fld.Kind {
	case views.FieldChoice:
		if len(fld.Options) == 0 {
			return false
		}
		idx := -1
		for i, o := range fld.Options {
			if o == cur {
				idx = i
			}
		}
		switch {
		case idx < 0 && delta > 0:
			idx = 0
		case idx < 0:
			idx = len(fld.Options) - 1
		default:
			idx = (idx + delta + len(fld.Options)) % len(fld.Options)
		}
		return l.SetValue(form, field, fld.Options[idx])
	case views.FieldRange:
		n, err := strconv.Atoi(cur)
		if err != nil {
			n = fld.Min
		}
		n = min(fld.Max, max(fld.Min, n+delta))
		return l.SetValue(form, field, strconv.Itoa(n))
	}
	return false
}

// toggleCheckbox flips a checkbox field.
func toggleCheckbox(l *surface.Layer, id string) bool {
	form, field, ok := l.SplitFieldID(id)
	if !ok {
		return false
	}
	f, _ := l.Form(form)
	if fld, _ := f.Field(field); fld.Kind != views.FieldCheckbox {
		return false
	}
	next := surface.CheckboxOn
	if l.Value(form, field) == surface.CheckboxOn {
		next = ""
	}
	return l.SetValue(form, field, next)
}
