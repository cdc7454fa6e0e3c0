// Package styles provides Lip Gloss styles for the TUI.
package styles

import "github.com/charmbracelet/lipgloss"

// Terminal-adaptive colors that work in both light and dark terminals.
var (
	// Subtle is a muted color for secondary text
	Subtle = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"}

	// Highlight is the accent color for selected items
	Highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#990000"}

	// Special colors
	ErrorColor   = lipgloss.AdaptiveColor{Light: "#FF0000", Dark: "#FF6666"}
	SuccessColor = lipgloss.AdaptiveColor{Light: "#00AA00", Dark: "#66FF66"}
)

// Base styles
var (
	// App is the base style for the entire application
	App = lipgloss.NewStyle().
		Padding(1, 2)

	// Title is the style for section titles
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Highlight)

	// Subtitle is for secondary headings
	Subtitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Subtle)
)

// StatusBar styles
var (
	// StatusBar is the base style for the status bar
	StatusBar = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#DDDDDD"}).
			Background(lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#1F1F1F"}).
			Padding(0, 1)

	// StatusBarError is for error messages
	StatusBarError = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Background(lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#1F1F1F"}).
			Bold(true)

	// StatusBarSuccess is for success messages
	StatusBarSuccess = lipgloss.NewStyle().
				Foreground(SuccessColor).
				Background(lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#1F1F1F"}).
				Bold(true)
)

// Weekday tab styles, keyed by class name in the sheet below.
// NOTE: No vertical margins - click hit testing assumes the strip starts at row 0.
var (
	// WeekdayTab is the root container
	WeekdayTab = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(Subtle).
			PaddingLeft(1).
			PaddingRight(1)

	// WeekdayTabList holds the items
	WeekdayTabList = lipgloss.NewStyle()

	// WeekdayTabItem is for a single day cell
	WeekdayTabItem = lipgloss.NewStyle().
			Padding(0, 1)

	// WeekdayTabActive is for the selected day
	WeekdayTabActive = lipgloss.NewStyle().
				Bold(true).
				Foreground(Highlight)

	// WeekdayTabToday is for the day marked as today
	WeekdayTabToday = lipgloss.NewStyle().
			Foreground(SuccessColor)

	WeekdayTabLabel = lipgloss.NewStyle()

	WeekdayTabDate = lipgloss.NewStyle().
			Bold(true)

	// WeekdayTabIndicator is the underline below the selected day
	WeekdayTabIndicator = lipgloss.NewStyle().
				Foreground(Highlight)
)

// IndicatorRune is repeated across the cell width to draw the selection indicator.
const IndicatorRune = "━"

var sheet = map[string]lipgloss.Style{
	"weekday-tab":           WeekdayTab,
	"weekday-tab-list":      WeekdayTabList,
	"weekday-tab-item":      WeekdayTabItem,
	"active":                WeekdayTabActive,
	"today":                 WeekdayTabToday,
	"weekday-tab-label":     WeekdayTabLabel,
	"weekday-tab-date":      WeekdayTabDate,
	"weekday-tab-indicator": WeekdayTabIndicator,
}

// Register adds or replaces the style for a class. Hosts use it to give
// meaning to the extra class names they pass to components.
func Register(class string, style lipgloss.Style) {
	sheet[class] = style
}

// Has reports whether a class has a registered style.
func Has(class string) bool {
	_, ok := sheet[class]
	return ok
}

// Lookup merges the styles of the given classes. Earlier classes win for
// colors and text attributes; box spacing (padding, margins, borders) comes
// from the first registered class. Unknown classes are ignored.
func Lookup(classes ...string) lipgloss.Style {
	merged := lipgloss.NewStyle()
	var box *lipgloss.Style
	for _, class := range classes {
		s, ok := sheet[class]
		if !ok {
			continue
		}
		if box == nil {
			b := s
			box = &b
		}
		merged = merged.Inherit(s)
	}
	if box == nil {
		return merged
	}
	return merged.
		Padding(box.GetPaddingTop(), box.GetPaddingRight(), box.GetPaddingBottom(), box.GetPaddingLeft()).
		Margin(box.GetMarginTop(), box.GetMarginRight(), box.GetMarginBottom(), box.GetMarginLeft()).
		BorderStyle(box.GetBorderStyle()).
		BorderTop(box.GetBorderTop()).
		BorderRight(box.GetBorderRight()).
		BorderBottom(box.GetBorderBottom()).
		BorderLeft(box.GetBorderLeft())
}

// LeftFrame returns the number of cells a style adds before its content.
func LeftFrame(s lipgloss.Style) int {
	return s.GetMarginLeft() + s.GetBorderLeftSize() + s.GetPaddingLeft()
}

// TopFrame returns the number of rows a style adds above its content.
func TopFrame(s lipgloss.Style) int {
	return s.GetMarginTop() + s.GetBorderTopSize() + s.GetPaddingTop()
}
