package tui

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Input scopes, innermost first.
const (
	scopeAlert   = "alert"
	scopeAddress = "address"
	scopeModal   = "modal"
	scopePage    = "page"
)

// Actions.
const (
	actQuit       = "quit"
	actFocusNext  = "focus-next"
	actFocusPrev  = "focus-prev"
	actActivate   = "activate"
	actToggle     = "toggle"
	actPrevOption = "option-prev"
	actNextOption = "option-next"
	actClose      = "close"
	actAddress    = "address"
	actBack       = "back"
	actDismiss    = "dismiss"
	actGo         = "go"
	actComplete   = "complete"
)

type KeyBinding struct {
	Keys        []string
	Action      string
	Description string
	Scopes      []string
	// Typing marks keys a focused text field consumes first.
	Typing bool
}

type KeyRegistry struct {
	bindings []KeyBinding
}

func NewKeyRegistry(bindings []KeyBinding) *KeyRegistry {
	return &KeyRegistry{bindings: slices.Clone(bindings)}
}

func (r *KeyRegistry) BindingsForScope(scope string) []KeyBinding {
	out := make([]KeyBinding, 0, len(r.bindings))
	for _, b := range r.bindings {
		if scopeMatch(scope, b.Scopes) {
			out = append(out, b)
		}
	}
	return out
}

// Action returns the action bound to msg in scope. When typing is true,
// bindings marked Typing are skipped so the key reaches the text field.
func (r *KeyRegistry) Action(msg tea.KeyMsg, scope string, typing bool) (string, bool) {
	pressed := normalizeKey(msg.String())
	for _, b := range r.bindings {
		if !scopeMatch(scope, b.Scopes) || (typing && b.Typing) {
			continue
		}
		for _, k := range b.Keys {
			if normalizeKey(k) == pressed {
				return b.Action, true
			}
		}
	}
	return "", false
}

func normalizeKey(k string) string {
	if k == " " {
		return "space"
	}
	return strings.ToLower(strings.TrimSpace(k))
}

func scopeMatch(scope string, scopes []string) bool {
	if len(scopes) == 0 {
		return true
	}
	for _, s := range scopes {
		if s == "*" || s == scope {
			return true
		}
	}
	return false
}

func DefaultKeyBindings() []KeyBinding {
	nav := []string{scopePage, scopeModal}
	return []KeyBinding{
		{Keys: []string{"ctrl+c"}, Action: actQuit, Description: "quit", Scopes: []string{"*"}},
		{Keys: []string{"enter", "esc", " "}, Action: actDismiss, Description: "ok", Scopes: []string{scopeAlert}},
		{Keys: []string{"enter"}, Action: actGo, Description: "go", Scopes: []string{scopeAddress}},
		{Keys: []string{"tab"}, Action: actComplete, Description: "complete", Scopes: []string{scopeAddress}},
		{Keys: []string{"esc"}, Action: actClose, Description: "cancel", Scopes: []string{scopeAddress}},
		{Keys: []string{"tab", "down"}, Action: actFocusNext, Description: "next", Scopes: nav},
		{Keys: []string{"shift+tab", "up"}, Action: actFocusPrev, Description: "prev", Scopes: nav},
		{Keys: []string{"enter"}, Action: actActivate, Description: "activate", Scopes: nav},
		{Keys: []string{" "}, Action: actToggle, Description: "toggle", Scopes: nav, Typing: true},
		{Keys: []string{"left"}, Action: actPrevOption, Description: "option", Scopes: nav, Typing: true},
		{Keys: []string{"right"}, Action: actNextOption, Description: "option", Scopes: nav, Typing: true},
		{Keys: []string{"esc"}, Action: actClose, Description: "close", Scopes: nav},
		{Keys: []string{"ctrl+l"}, Action: actAddress, Description: "address", Scopes: nav},
		{Keys: []string{":"}, Action: actAddress, Description: "address", Scopes: nav, Typing: true},
		{Keys: []string{"alt+left"}, Action: actBack, Description: "back", Scopes: []string{scopePage}},
		{Keys: []string{"backspace"}, Action: actBack, Description: "back", Scopes: []string{scopePage}, Typing: true},
		{Keys: []string{"q"}, Action: actQuit, Description: "quit", Scopes: nav, Typing: true},
	}
}
