// Package week builds the day tabs shown for a calendar week.
package week

import (
	"time"

	"github.com/hy4ri/weekdaytab/internal/tui/components"
)

// Clock abstracts time.Now() to allow deterministic testing.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the standard time package.
type RealClock struct{}

// Now returns the current local time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// Labeler names weekdays for display.
type Labeler interface {
	Weekday(d time.Weekday) string
}

// Options controls how a week is laid out.
type Options struct {
	// Start is the first day of the week, Monday or Sunday.
	Start time.Weekday
	// Today marks the matching entry as today. The zero time marks none.
	Today time.Time
	// Labels names the days; nil uses English short names.
	Labels Labeler
}

var keys = [7]string{
	time.Sunday:    "sun",
	time.Monday:    "mon",
	time.Tuesday:   "tue",
	time.Wednesday: "wed",
	time.Thursday:  "thu",
	time.Friday:    "fri",
	time.Saturday:  "sat",
}

// KeyFor returns the tab key of the day t falls on.
func KeyFor(t time.Time) string {
	return keys[t.Weekday()]
}

// StartOf returns midnight of the first day of the week containing t.
func StartOf(t time.Time, start time.Weekday) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	offset := (int(day.Weekday()) - int(start) + 7) % 7
	return day.AddDate(0, 0, -offset)
}

// Shift moves t by whole weeks.
func Shift(t time.Time, weeks int) time.Time {
	return t.AddDate(0, 0, 7*weeks)
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// DayFor returns the date in the week containing anchor whose tab key is key.
func DayFor(anchor time.Time, start time.Weekday, key string) (time.Time, bool) {
	first := StartOf(anchor, start)
	for i := 0; i < 7; i++ {
		day := first.AddDate(0, 0, i)
		if KeyFor(day) == key {
			return day, true
		}
	}
	return time.Time{}, false
}

// Build returns seven tabs for the week containing anchor.
func Build(anchor time.Time, opts Options) []components.Tab {
	labels := opts.Labels
	if labels == nil {
		labels = englishLabels{}
	}

	first := StartOf(anchor, opts.Start)
	tabs := make([]components.Tab, 0, 7)
	for i := 0; i < 7; i++ {
		day := first.AddDate(0, 0, i)
		tabs = append(tabs, components.Tab{
			Key:     KeyFor(day),
			Label:   labels.Weekday(day.Weekday()),
			Date:    day.Day(),
			IsToday: !opts.Today.IsZero() && SameDay(day, opts.Today),
		})
	}
	return tabs
}

type englishLabels struct{}

func (englishLabels) Weekday(d time.Weekday) string {
	return d.String()[:3]
}
