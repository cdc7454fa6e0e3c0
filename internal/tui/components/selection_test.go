package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func weekTabs() []Tab {
	return []Tab{
		{Key: "mon", Label: "Mon", Date: 1},
		{Key: "tue", Label: "Tue", Date: 2, IsToday: true},
		{Key: "wed", Label: "Wed", Date: 3},
	}
}

func TestNewSelection(t *testing.T) {
	tests := []struct {
		name      string
		tabs      []Tab
		activeKey string
		want      string
	}{
		{"explicit key wins", weekTabs(), "wed", "wed"},
		{"falls back to first tab", weekTabs(), "", "mon"},
		{"no tabs no key", nil, "", ""},
		{"unmatched key is kept", weekTabs(), "sun", "sun"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewSelection(tt.tabs, tt.activeKey).Current())
		})
	}
}

func TestSelection_Reconcile(t *testing.T) {
	s := NewSelection(weekTabs(), "mon")

	assert.False(t, s.Reconcile(""), "empty key must be ignored")
	assert.Equal(t, "mon", s.Current())

	assert.False(t, s.Reconcile("mon"), "same key must be a no-op")
	assert.Equal(t, "mon", s.Current())

	assert.True(t, s.Reconcile("wed"))
	assert.Equal(t, "wed", s.Current())

	for i := 0; i < 3; i++ {
		assert.False(t, s.Reconcile("wed"))
	}
	assert.Equal(t, "wed", s.Current())
}

func TestSelection_Select(t *testing.T) {
	s := NewSelection(weekTabs(), "")

	s.Select("tue")
	assert.Equal(t, "tue", s.Current())

	s.Select("tue")
	assert.Equal(t, "tue", s.Current())

	assert.False(t, s.Reconcile("tue"))
}

func TestSelection_ObserveIgnoresStaleEcho(t *testing.T) {
	s := NewSelection(weekTabs(), "mon")

	s.Select("tue")
	assert.False(t, s.Observe("mon"), "unchanged caller key must not revert a pick")
	assert.Equal(t, "tue", s.Current())

	assert.False(t, s.Observe("tue"), "caller catching up is a no-op")
	assert.Equal(t, "tue", s.Current())

	assert.True(t, s.Observe("wed"))
	assert.Equal(t, "wed", s.Current())

	assert.False(t, s.Observe(""))
	assert.Equal(t, "wed", s.Current(), "empty caller key leaves the selection alone")

	assert.True(t, s.Observe("mon"), "a key seen before an empty one is a change again")
	assert.Equal(t, "mon", s.Current())
}
