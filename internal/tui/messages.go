package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type clockTickMsg time.Time

type toastExpiredMsg struct {
	ID string
}

func clockTick(every time.Duration) tea.Cmd {
	return tea.Tick(every, func(t time.Time) tea.Msg { return clockTickMsg(t) })
}

func expireToast(id string, after time.Duration) tea.Cmd {
	return tea.Tick(max(0, after), func(time.Time) tea.Msg { return toastExpiredMsg{ID: id} })
}
