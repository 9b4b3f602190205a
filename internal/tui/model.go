package tui

import (
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/smartattend/internal/app"
	"github.com/jask/smartattend/internal/route"
	"github.com/jask/smartattend/internal/widgets"
)

const (
	DefaultClockInterval = time.Second
	suggestionCount      = 3
)

type Options struct {
	ClockInterval time.Duration
	Log           *slog.Logger
}

// Model adapts the app to Bubble Tea. Every key goes through Update on the
// program goroutine, which is the only place app state changes.
type Model struct {
	app     *app.App
	keys    *KeyRegistry
	every   time.Duration
	log     *slog.Logger
	width   int
	height  int
	editors editors

	addressing  bool
	addr        textinput.Model
	suggestions []string
}

func New(a *app.App, opts Options) *Model {
	if opts.ClockInterval <= 0 {
		opts.ClockInterval = DefaultClockInterval
	}
	if opts.Log == nil {
		opts.Log = slog.Default()
	}
	addr := textinput.New()
	addr.Prompt = "go to: "
	addr.Placeholder = route.PathRoot
	m := &Model{
		app:   a,
		keys:  NewKeyRegistry(DefaultKeyBindings()),
		every: opts.ClockInterval,
		log:   opts.Log.With("component", "tui"),
		addr:  addr,
	}
	m.editors.sync(a.ActiveLayer())
	return m
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(clockTick(m.every), m.scheduleToasts())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case clockTickMsg:
		m.app.TickClock()
		// catches toasts whose expiry tick was lost
		m.app.Notify.Sweep()
		return m, clockTick(m.every)
	case toastExpiredMsg:
		m.app.Notify.Expire(msg.ID)
		return m, nil
	case tea.KeyMsg:
		m.editors.sync(m.app.ActiveLayer())
		cmd := m.handleKey(msg)
		m.editors.sync(m.app.ActiveLayer())
		return m, tea.Batch(cmd, m.scheduleToasts())
	}
	return m, nil
}

func (m *Model) scope() string {
	switch {
	case m.alerting():
		return scopeAlert
	case m.addressing:
		return scopeAddress
	case m.modalOpen():
		return scopeModal
	default:
		return scopePage
	}
}

func (m *Model) alerting() bool {
	_, ok := m.app.Notify.Alerting()
	return ok
}

func (m *Model) modalOpen() bool {
	modal, _ := m.app.Notify.Modal()
	return modal != nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	scope := m.scope()
	_, _, typing := m.editors.focusedInput()
	if scope == scopeAddress {
		typing = true
	}
	action, ok := m.keys.Action(msg, scope, typing)
	if !ok {
		return m.typeKey(scope, msg)
	}
	switch scope {
	case scopeAlert:
		return m.alertAction(action)
	case scopeAddress:
		return m.addressAction(action, msg)
	}
	return m.layerAction(action, scope)
}

func (m *Model) typeKey(scope string, msg tea.KeyMsg) tea.Cmd {
	switch scope {
	case scopeAddress:
		var cmd tea.Cmd
		m.addr, cmd = m.addr.Update(msg)
		m.suggestions = route.Suggest(m.addr.Value(), suggestionCount)
		return cmd
	case scopePage, scopeModal:
		return m.editors.update(msg)
	}
	return nil
}

func (m *Model) alertAction(action string) tea.Cmd {
	switch action {
	case actQuit:
		return tea.Quit
	case actDismiss:
		m.app.Notify.DismissAlert()
	}
	return nil
}

func (m *Model) openAddress() {
	m.addressing = true
	m.addr.SetValue(m.app.Address.Current())
	m.addr.CursorEnd()
	m.addr.Focus()
	m.suggestions = route.Suggest(m.addr.Value(), suggestionCount)
}

func (m *Model) closeAddress() {
	m.addressing = false
	m.addr.Blur()
	m.suggestions = nil
}

func (m *Model) addressAction(action string, msg tea.KeyMsg) tea.Cmd {
	switch action {
	case actQuit:
		return tea.Quit
	case actClose:
		m.closeAddress()
	case actComplete:
		if len(m.suggestions) > 0 {
			m.addr.SetValue(m.suggestions[0])
			m.addr.CursorEnd()
			m.suggestions = route.Suggest(m.addr.Value(), suggestionCount)
		}
	case actGo:
		to := strings.TrimSpace(m.addr.Value())
		m.closeAddress()
		m.log.Debug("address entered", "address", to)
		m.app.Navigate(to)
	default:
		return m.typeKey(scopeAddress, msg)
	}
	return nil
}

func (m *Model) layerAction(action, scope string) tea.Cmd {
	l := m.app.ActiveLayer()
	focused := l.Focused()
	switch action {
	case actQuit:
		return tea.Quit
	case actFocusNext:
		l.FocusNext(1)
	case actFocusPrev:
		l.FocusNext(-1)
	case actActivate:
		if form, _, ok := l.SplitFieldID(focused); ok {
			if !toggleCheckbox(l, focused) {
				l.Activate(form)
			}
			return nil
		}
		l.Activate(focused)
	case actToggle:
		if !toggleCheckbox(l, focused) {
			if _, _, isField := l.SplitFieldID(focused); !isField {
				l.Activate(focused)
			}
		}
	case actPrevOption:
		cycle(l, focused, -1)
	case actNextOption:
		cycle(l, focused, 1)
	case actClose:
		if scope == scopeModal {
			m.app.Notify.CloseModal()
			return nil
		}
		// A click on nothing: document listeners still see it.
		l.Activate("")
	case actAddress:
		m.openAddress()
	case actBack:
		m.app.Back()
	}
	return nil
}

// scheduleToasts arms an expiry timer for every toast raised since the last
// call.
func (m *Model) scheduleToasts() tea.Cmd {
	fresh := m.app.Notify.TakeNew()
	if len(fresh) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(fresh))
	for _, t := range fresh {
		cmds = append(cmds, expireToast(t.ID, time.Until(t.Expires)))
	}
	return tea.Batch(cmds...)
}

func (m *Model) View() string {
	w, h := max(20, m.width), max(8, m.height)
	if m.width == 0 || m.height == 0 {
		w, h = 100, 40
	}
	bodyHeight := max(1, h-2)
	page := m.app.Page()
	v := m.app.View()
	p := widgets.Page{Title: v.Title, Chrome: page.Chrome(), Blocks: page.Blocks(), State: page}
	modal, modalLayer := m.app.Notify.Modal()
	if modal == nil {
		p.Editor = m.editors.view
	}
	out := p.Render(w, bodyHeight)
	if modal != nil {
		d := widgets.Dialog{Title: modal.Title, Blocks: modalLayer.Blocks(), State: modalLayer, Editor: m.editors.view}
		out = widgets.RenderPopup(out, d.Render(min(56, w-10)), w, bodyHeight)
	}
	out = widgets.RenderToasts(out, m.app.Notify.Toasts(), w, bodyHeight)
	if msg, ok := m.app.Notify.Alerting(); ok {
		out = widgets.RenderAlert(out, msg, w, bodyHeight)
	}
	return out + "\n" + m.statusLine(w) + "\n" + m.helpLine(w)
}

func (m *Model) statusLine(width int) string {
	if m.addressing {
		line := m.addr.View()
		if len(m.suggestions) > 0 {
			line += "   " + strings.Join(m.suggestions, "  ")
		}
		return widgets.StatusBar(line, width, false)
	}
	match := route.Resolve(m.app.Address.Current())
	text := "#" + route.Normalize(m.app.Address.Current()) + "  " + match.Screen.String()
	if r := m.app.Session.Role(); r != "" {
		text += "  (" + r.Title() + ")"
	}
	return widgets.StatusBar(text, width, false)
}

func (m *Model) helpLine(width int) string {
	bindings := m.keys.BindingsForScope(m.scope())
	items := make([]widgets.Help, 0, len(bindings))
	seen := map[string]bool{}
	for _, b := range bindings {
		if len(b.Keys) == 0 || seen[b.Description] {
			continue
		}
		seen[b.Description] = true
		kb := key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(helpKey(b.Keys[0]), b.Description))
		h := kb.Help()
		items = append(items, widgets.Help{Key: h.Key, Desc: h.Desc})
	}
	return widgets.HelpBar(items, width)
}

func helpKey(k string) string {
	if k == " " {
		return "space"
	}
	return k
}
