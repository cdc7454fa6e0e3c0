package components

// Class names of the rendered tree. The stylesheet in the styles package is
// keyed by these.
const (
	ClassRoot      = "weekday-tab"
	ClassList      = "weekday-tab-list"
	ClassItem      = "weekday-tab-item"
	ClassActive    = "active"
	ClassToday     = "today"
	ClassLabel     = "weekday-tab-label"
	ClassDate      = "weekday-tab-date"
	ClassIndicator = "weekday-tab-indicator"
)

// DefaultTodayLabel replaces the label of the entry marked as today.
const DefaultTodayLabel = "今天"

// Tab describes one day entry. Keys must be unique within a strip.
type Tab struct {
	Key     string
	Label   string
	Date    int
	IsToday bool
}

// ViewEntry is the render-ready form of a Tab.
type ViewEntry struct {
	Key       string
	Label     string
	Date      int
	Active    bool
	Today     bool
	Indicator bool
	Classes   []string
}

// RenderEntries maps tabs to view entries using DefaultTodayLabel.
func RenderEntries(tabs []Tab, currentKey string) []ViewEntry {
	return RenderEntriesWithLabel(tabs, currentKey, DefaultTodayLabel)
}

// RenderEntriesWithLabel maps tabs to view entries in order. Only the first
// tab whose key matches currentKey is marked active, so duplicate keys never
// produce two indicators. An empty todayLabel falls back to DefaultTodayLabel.
func RenderEntriesWithLabel(tabs []Tab, currentKey, todayLabel string) []ViewEntry {
	if todayLabel == "" {
		todayLabel = DefaultTodayLabel
	}

	entries := make([]ViewEntry, 0, len(tabs))
	matched := false
	for _, tab := range tabs {
		active := !matched && currentKey != "" && tab.Key == currentKey
		if active {
			matched = true
		}

		label := tab.Label
		if tab.IsToday {
			label = todayLabel
		}

		classes := []string{ClassItem}
		if active {
			classes = append(classes, ClassActive)
		}
		if tab.IsToday {
			classes = append(classes, ClassToday)
		}

		entries = append(entries, ViewEntry{
			Key:       tab.Key,
			Label:     label,
			Date:      tab.Date,
			Active:    active,
			Today:     tab.IsToday,
			Indicator: active,
			Classes:   classes,
		})
	}
	return entries
}
