package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/hy4ri/weekdaytab/internal/tui/styles"
	"github.com/hy4ri/weekdaytab/internal/week"
)

// View implements tea.Model.
func (a *App) View() string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		a.renderHeader(),
		"",
		a.strip.View(),
		"",
		a.renderStatusBar(),
		a.help.View(a.keymap),
	)
	return styles.App.Render(body)
}

// renderHeader renders the title line above the strip.
func (a *App) renderHeader() string {
	first := week.StartOf(a.anchor, a.config.WeekStartDay())
	last := first.AddDate(0, 0, 6)
	return styles.Title.Render(fmt.Sprintf("%s ~ %s", first.Format(dateLayout), last.Format(dateLayout)))
}

// renderStatusBar shows the last error, the last status, or the selected day.
func (a *App) renderStatusBar() string {
	switch {
	case a.err != nil:
		return styles.StatusBarError.Render("Error: " + a.err.Error())
	case a.statusMsg != "":
		return styles.StatusBarSuccess.Render(a.statusMsg)
	}

	day, ok := a.selectedDay()
	if !ok {
		return styles.Subtitle.Render("No day selected")
	}
	return styles.Subtitle.Render(fmt.Sprintf("%s %s", a.tr.Weekday(day.Weekday()), day.Format(dateLayout)))
}

// stripOrigin returns the screen position of the strip's top-left corner.
// It must follow the layout in View: header, blank line, strip.
func (a *App) stripOrigin() (x, y int) {
	return styles.LeftFrame(styles.App), styles.TopFrame(styles.App) + lipgloss.Height(a.renderHeader()) + 1
}
