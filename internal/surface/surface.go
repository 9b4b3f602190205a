// Package surface is the rendering surface views are mounted into. A Layer
// holds the mounted descriptor plus its live state (field values, flags,
// text overrides, focus) and the handlers bound to its regions. Mounting is
// destructive: every handler, listener and piece of live state from the
// previous mount is dropped.
package surface

import (
	"slices"

	"github.com/jask/smartattend/internal/views"
)

// Submission is the key/value content of a form at submit time.
type Submission map[string]string

// CheckboxOn is the submitted value of a checked checkbox. Unchecked
// checkboxes are left out of the submission.
const CheckboxOn = "on"

// Event is passed to handlers. Form is set for form submissions.
type Event struct {
	Region string
	Form   Submission
}

type Handler func(Event)

// Layer is one mount point: the page, or the modal.
type Layer struct {
	gen       uint64
	chrome    *views.Chrome
	blocks    []views.Block
	regions   map[string]bool
	forms     map[string]views.Form
	handlers  map[string]Handler
	listeners []func(target string)
	values    map[string]string
	flags     map[string]bool
	text      map[string]string
	focus     string
}

func New() *Layer {
	l := &Layer{}
	l.reset()
	return l
}

func (l *Layer) reset() {
	l.gen++
	l.chrome = nil
	l.blocks = nil
	l.regions = map[string]bool{}
	l.forms = map[string]views.Form{}
	l.handlers = map[string]Handler{}
	l.listeners = nil
	l.values = map[string]string{}
	l.flags = map[string]bool{}
	l.text = map[string]string{}
	l.focus = ""
}

// Mount replaces the layer content with v.
func (l *Layer) Mount(v views.View) {
	l.mount(v.Chrome, v.Blocks, v.Regions())
}

// MountBlocks replaces the layer content with bare blocks.
func (l *Layer) MountBlocks(blocks []views.Block) {
	l.mount(nil, blocks, views.BlockRegions(blocks))
}

func (l *Layer) mount(chrome *views.Chrome, blocks []views.Block, regions []string) {
	l.reset()
	l.chrome = chrome
	l.blocks = blocks
	for _, id := range regions {
		l.regions[id] = true
	}
	l.init(blocks)
	if focus := l.Focusables(); len(focus) > 0 {
		l.focus = focus[0]
	}
}

func (l *Layer) init(blocks []views.Block) {
	for _, b := range blocks {
		switch b := b.(type) {
		case views.Panel:
			l.flags[b.ID] = b.Visible
		case views.Indicator:
			l.flags[b.ID] = b.On
		case views.Form:
			l.forms[b.ID] = b
			for _, f := range b.Fields {
				l.values[FieldID(b.ID, f.Name)] = f.Value
			}
			l.init(b.Blocks)
		}
	}
}

// Clear empties the layer.
func (l *Layer) Clear() { l.reset() }

// Generation changes on every mount.
func (l *Layer) Generation() uint64 { return l.gen }

func (l *Layer) Chrome() *views.Chrome { return l.chrome }

func (l *Layer) Blocks() []views.Block { return l.blocks }

// Has reports whether id is a region of the current mount.
func (l *Layer) Has(id string) bool { return l.regions[id] }

// AttachRegion binds h to a region of the current mount, replacing any
// previous binding. It reports false when the region does not exist.
func (l *Layer) AttachRegion(id string, h Handler) bool {
	if !l.regions[id] || h == nil {
		return false
	}
	l.handlers[id] = h
	return true
}

// Listen registers a document-level listener told about every activation,
// before the target's own handler runs.
func (l *Layer) Listen(fn func(target string)) {
	if fn != nil {
		l.listeners = append(l.listeners, fn)
	}
}

// Activate clicks a region, or submits it when it is a form. It reports
// whether a handler ran.
func (l *Layer) Activate(id string) bool {
	gen := l.gen
	for _, fn := range slices.Clone(l.listeners) {
		fn(id)
		if l.gen != gen {
			return false
		}
	}
	if _, ok := l.forms[id]; ok {
		return l.submit(id)
	}
	h, ok := l.handlers[id]
	if !ok {
		return false
	}
	h(Event{Region: id})
	return true
}

// Submit submits a form of the current mount.
func (l *Layer) Submit(formID string) bool {
	if _, ok := l.forms[formID]; !ok {
		return false
	}
	return l.Activate(formID)
}

func (l *Layer) submit(formID string) bool {
	h, ok := l.handlers[formID]
	if !ok {
		return false
	}
	h(Event{Region: formID, Form: l.Values(formID)})
	return true
}

// Form returns the descriptor of a mounted form.
func (l *Layer) Form(formID string) (views.Form, bool) {
	f, ok := l.forms[formID]
	return f, ok
}

// Values extracts the current submission of a form.
func (l *Layer) Values(formID string) Submission {
	f, ok := l.forms[formID]
	if !ok {
		return nil
	}
	sub := Submission{}
	for _, fld := range f.Fields {
		v := l.values[FieldID(formID, fld.Name)]
		if fld.Kind == views.FieldCheckbox {
			if v == CheckboxOn {
				sub[fld.Name] = CheckboxOn
			}
			continue
		}
		sub[fld.Name] = v
	}
	return sub
}

func (l *Layer) Value(formID, field string) string {
	return l.values[FieldID(formID, field)]
}

// SetValue writes a field value. It reports false for unknown fields.
func (l *Layer) SetValue(formID, field, v string) bool {
	key := FieldID(formID, field)
	if _, ok := l.values[key]; !ok {
		return false
	}
	l.values[key] = v
	return true
}

// Flag reads a binary region state: panel visibility, indicator on, menu
// open.
func (l *Layer) Flag(id string) bool { return l.flags[id] }

// SetFlag writes a binary region state. Writes to regions that are not part
// of the current mount are ignored.
func (l *Layer) SetFlag(id string, on bool) bool {
	if !l.regions[id] {
		return false
	}
	l.flags[id] = on
	return true
}

// Toggle flips a binary region state and returns the new value.
func (l *Layer) Toggle(id string) bool {
	if !l.regions[id] {
		return false
	}
	l.flags[id] = !l.flags[id]
	return l.flags[id]
}

// SetText replaces the text of a region. Writes to regions that are not part
// of the current mount are no-ops and report false.
func (l *Layer) SetText(id, text string) bool {
	if !l.regions[id] {
		return false
	}
	l.text[id] = text
	return true
}

func (l *Layer) Text(id string) (string, bool) {
	t, ok := l.text[id]
	return t, ok
}

func (l *Layer) Focused() string { return l.focus }

// Focus moves focus to a region or field id of the current mount.
func (l *Layer) Focus(id string) bool {
	if !slices.Contains(l.Focusables(), id) {
		return false
	}
	l.focus = id
	return true
}

// FocusNext moves focus by delta through Focusables, wrapping around.
func (l *Layer) FocusNext(delta int) string {
	items := l.Focusables()
	if len(items) == 0 {
		l.focus = ""
		return ""
	}
	i := slices.Index(items, l.focus)
	if i < 0 {
		i = 0
		if delta < 0 {
			i = len(items) - 1
		}
		l.focus = items[i]
		return l.focus
	}
	l.focus = items[((i+delta)%len(items)+len(items))%len(items)]
	return l.focus
}

// Focusables lists focus targets in document order. Menu entries are only
// focusable while the profile menu is open.
func (l *Layer) Focusables() []string {
	var out []string
	if l.chrome != nil {
		out = append(out, views.RegionProfile)
		if l.flags[views.RegionProfileMenu] {
			for _, b := range l.chrome.Menu {
				out = append(out, b.ID)
			}
		}
	}
	return appendFocusables(out, l.blocks)
}

func appendFocusables(out []string, blocks []views.Block) []string {
	for _, b := range blocks {
		switch b := b.(type) {
		case views.Button:
			out = append(out, b.ID)
		case views.Link:
			out = append(out, b.ID)
		case views.Form:
			for _, f := range b.Fields {
				out = append(out, FieldID(b.ID, f.Name))
			}
			out = appendFocusables(out, b.Blocks)
			out = append(out, b.ID)
			if b.Footer != nil {
				out = append(out, b.Footer.ID)
			}
		}
	}
	return out
}

// FieldID is the focus id of a form field.
func FieldID(formID, field string) string { return formID + "." + field }

// SplitFieldID undoes FieldID. ok is false for ids that are not fields of a
// mounted form.
func (l *Layer) SplitFieldID(id string) (formID, field string, ok bool) {
	for fid, f := range l.forms {
		for _, fld := range f.Fields {
			if FieldID(fid, fld.Name) == id {
				return fid, fld.Name, true
			}
		}
	}
	return "", "", false
}
