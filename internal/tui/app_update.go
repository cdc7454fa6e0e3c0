package tui

import (
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4ri/weekdaytab/internal/logging"
	"github.com/hy4ri/weekdaytab/internal/tui/components"
	"github.com/hy4ri/weekdaytab/internal/tui/styles"
	"github.com/hy4ri/weekdaytab/internal/week"
)

// dateLayout is used for the status line and clipboard.
const dateLayout = "2006-01-02"

type errMsg struct{ err error }

type statusMsg struct{ msg string }

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd = a.handleKeyMsg(msg)

	case tea.MouseMsg:
		cmd = a.handleMouseMsg(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.strip.SetSize(msg.Width-styles.App.GetHorizontalFrameSize(), 0)
		a.help.Width = msg.Width - styles.App.GetHorizontalFrameSize()

	case components.TabChangedMsg:
		cmd = a.handleTabChanged(msg)

	case errMsg:
		a.err = msg.err
		a.statusMsg = ""

	case statusMsg:
		a.err = nil
		a.statusMsg = msg.msg
	}

	a.syncStrip()
	return a, cmd
}

// handleKeyMsg processes host key bindings.
func (a *App) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, a.keymap.Quit):
		return tea.Quit

	case key.Matches(msg, a.keymap.PrevWeek):
		a.anchor = week.Shift(a.anchor, -1)

	case key.Matches(msg, a.keymap.NextWeek):
		a.anchor = week.Shift(a.anchor, 1)

	case key.Matches(msg, a.keymap.Today):
		now := a.clock.Now()
		a.anchor = now
		a.activeKey = week.KeyFor(now)

	case key.Matches(msg, a.keymap.Copy):
		day, ok := a.selectedDay()
		if !ok {
			return nil
		}
		return a.copyDate(day.Format(dateLayout))

	case key.Matches(msg, a.keymap.Help):
		a.help.ShowAll = !a.help.ShowAll
	}
	return nil
}

// handleMouseMsg forwards clicks to the strip in its own coordinates.
func (a *App) handleMouseMsg(msg tea.MouseMsg) tea.Cmd {
	x, y := a.stripOrigin()
	msg.X -= x
	msg.Y -= y
	_, cmd := a.strip.Update(msg)
	return cmd
}

// handleTabChanged reacts to a user pick after OnChange stored the key.
func (a *App) handleTabChanged(msg components.TabChangedMsg) tea.Cmd {
	day, ok := week.DayFor(a.anchor, a.config.WeekStartDay(), msg.Key)
	if !ok {
		slog.Warn("picked key outside week", logging.KeyComponent, "app", logging.KeyKey, msg.Key)
		return nil
	}

	slog.Info("day selected", logging.KeyComponent, "app", logging.KeyKey, msg.Key, "date", day.Format(dateLayout))
	a.err = nil
	a.statusMsg = fmt.Sprintf("%s %s", a.tr.Weekday(day.Weekday()), day.Format(dateLayout))

	if !a.config.UI.NotifyOnChange {
		return nil
	}
	return a.notifyChange(a.statusMsg)
}

// notifyChange sends a desktop notification without blocking the UI.
func (a *App) notifyChange(text string) tea.Cmd {
	notify := a.notify
	return func() tea.Msg {
		if err := notify("weekdaytab", text); err != nil {
			slog.Error("failed to send notification", logging.KeyComponent, "app", logging.KeyError, err)
		}
		return nil
	}
}

// copyDate copies text to the system clipboard.
func (a *App) copyDate(text string) tea.Cmd {
	write := a.writeClipboard
	return func() tea.Msg {
		if err := write(text); err != nil {
			return errMsg{fmt.Errorf("failed to copy to clipboard: %w", err)}
		}
		return statusMsg{msg: "Copied " + text}
	}
}
