package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderEntries_Flags(t *testing.T) {
	entries := RenderEntries(weekTabs(), "wed")
	require.Len(t, entries, 3)

	assert.Equal(t, []string{"mon", "tue", "wed"}, []string{entries[0].Key, entries[1].Key, entries[2].Key})

	for _, e := range entries[:2] {
		assert.False(t, e.Active, e.Key)
		assert.False(t, e.Indicator, e.Key)
	}
	assert.True(t, entries[2].Active)
	assert.True(t, entries[2].Indicator)
	assert.Equal(t, []string{ClassItem, ClassActive}, entries[2].Classes)
}

func TestRenderEntries_TodayOverridesLabelNotDate(t *testing.T) {
	entries := RenderEntries(weekTabs(), "mon")

	today := entries[1]
	assert.Equal(t, "今天", today.Label)
	assert.Equal(t, 2, today.Date)
	assert.True(t, today.Today)
	assert.Equal(t, []string{ClassItem, ClassToday}, today.Classes)

	assert.Equal(t, "Mon", entries[0].Label)
}

func TestRenderEntries_ActiveTodayCarriesBothClasses(t *testing.T) {
	entries := RenderEntries(weekTabs(), "tue")
	assert.Equal(t, []string{ClassItem, ClassActive, ClassToday}, entries[1].Classes)
}

func TestRenderEntries_UnmatchedKeyHighlightsNothing(t *testing.T) {
	for _, key := range []string{"sun", ""} {
		for _, e := range RenderEntries(weekTabs(), key) {
			assert.False(t, e.Active, "key %q entry %q", key, e.Key)
			assert.False(t, e.Indicator, "key %q entry %q", key, e.Key)
		}
	}
}

func TestRenderEntries_FirstDuplicateWins(t *testing.T) {
	tabs := []Tab{
		{Key: "a", Label: "A1", Date: 1},
		{Key: "a", Label: "A2", Date: 2},
	}
	entries := RenderEntries(tabs, "a")
	assert.True(t, entries[0].Active)
	assert.False(t, entries[1].Active)
	assert.False(t, entries[1].Indicator)
}

func TestRenderEntries_SeveralTodayFlags(t *testing.T) {
	tabs := []Tab{
		{Key: "a", Label: "A", Date: 1, IsToday: true},
		{Key: "b", Label: "B", Date: 2, IsToday: true},
	}
	for _, e := range RenderEntries(tabs, "") {
		assert.True(t, e.Today)
		assert.Equal(t, DefaultTodayLabel, e.Label)
	}
}

func TestRenderEntries_EmptyList(t *testing.T) {
	assert.Empty(t, RenderEntries(nil, "mon"))
}

func TestRenderEntriesWithLabel(t *testing.T) {
	entries := RenderEntriesWithLabel(weekTabs(), "mon", "Today")
	assert.Equal(t, "Today", entries[1].Label)

	entries = RenderEntriesWithLabel(weekTabs(), "mon", "")
	assert.Equal(t, DefaultTodayLabel, entries[1].Label)
}
