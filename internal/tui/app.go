// Package tui provides the terminal user interface hosting the weekday tabs.
package tui

import (
	"log/slog"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/gen2brain/beeep"

	"github.com/hy4ri/weekdaytab/internal/config"
	"github.com/hy4ri/weekdaytab/internal/locale"
	"github.com/hy4ri/weekdaytab/internal/logging"
	"github.com/hy4ri/weekdaytab/internal/tui/components"
	"github.com/hy4ri/weekdaytab/internal/tui/styles"
	"github.com/hy4ri/weekdaytab/internal/week"
)

// ClassOtherWeek is added to the strip while it shows a week other than the
// current one.
const ClassOtherWeek = "other-week"

// App is the main Bubble Tea model for the application. It owns the
// externally controlled active key of the tab strip.
type App struct {
	// Dependencies
	config *config.Config
	tr     *locale.Translator
	clock  week.Clock

	// Side effects, replaceable in tests
	notify         func(title, message string) error
	writeClipboard func(text string) error

	// Selection state owned by the host
	anchor    time.Time // any day of the displayed week
	activeKey string

	// UI state
	strip     *components.TabStrip
	statusMsg string
	err       error
	width     int
	height    int

	keymap Keymap
	help   help.Model
}

// NewApp creates a new App showing the current week with today selected.
func NewApp(cfg *config.Config, tr *locale.Translator) *App {
	return newApp(cfg, tr, week.RealClock{})
}

func newApp(cfg *config.Config, tr *locale.Translator, clock week.Clock) *App {
	if !styles.Has(ClassOtherWeek) {
		styles.Register(ClassOtherWeek, lipgloss.NewStyle().Faint(true))
	}

	now := clock.Now()
	a := &App{
		config: cfg,
		tr:     tr,
		clock:  clock,
		notify: func(title, message string) error {
			return beeep.Notify(title, message, "")
		},
		writeClipboard: clipboard.WriteAll,
		anchor:         now,
		activeKey:      week.KeyFor(now),
		keymap:         DefaultKeymap(),
		help:           help.New(),
	}

	a.strip = components.NewTabStrip(a.props())
	todayLabel := cfg.UI.TodayLabel
	if todayLabel == "" {
		todayLabel = tr.Today()
	}
	a.strip.SetTodayLabel(todayLabel)
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.SetWindowTitle(config.AppName)
}

// props builds the strip's inputs from host state.
func (a *App) props() components.Props {
	start := a.config.WeekStartDay()
	now := a.clock.Now()

	var class string
	if !week.SameDay(week.StartOf(a.anchor, start), week.StartOf(now, start)) {
		class = ClassOtherWeek
	}

	return components.Props{
		Tabs: week.Build(a.anchor, week.Options{
			Start:  start,
			Today:  now,
			Labels: a.tr,
		}),
		ActiveKey: a.activeKey,
		OnChange:  a.handleTabChange,
		ClassName: class,
	}
}

// handleTabChange stores the user's pick so the next props echo it back.
func (a *App) handleTabChange(key string) {
	slog.Debug("tab picked", logging.KeyComponent, "app", logging.KeyKey, key)
	a.activeKey = key
}

// syncStrip hands the strip fresh props, reconciling any host-side change.
func (a *App) syncStrip() {
	if a.strip.SetProps(a.props()) {
		slog.Debug("selection reconciled", logging.KeyComponent, "app", logging.KeyKey, a.activeKey)
	}
}

// selectedDay returns the date of the selected tab in the displayed week.
func (a *App) selectedDay() (time.Time, bool) {
	return week.DayFor(a.anchor, a.config.WeekStartDay(), a.strip.Current())
}

// ActiveKey returns the host-owned active key.
func (a *App) ActiveKey() string {
	return a.activeKey
}
