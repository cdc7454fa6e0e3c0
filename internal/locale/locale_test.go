package locale

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBundle_FindsEmbeddedLanguages(t *testing.T) {
	_, langs, err := NewBundle()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"en", "zh"}, langs)
}

func TestTranslator_Chinese(t *testing.T) {
	tr, err := New("zh")
	require.NoError(t, err)

	assert.Equal(t, "今天", tr.Today())
	assert.Equal(t, "周一", tr.Weekday(time.Monday))
	assert.Equal(t, "周日", tr.Weekday(time.Sunday))
}

func TestTranslator_English(t *testing.T) {
	tr, err := New("en")
	require.NoError(t, err)

	assert.Equal(t, "en", tr.Language())
	assert.Equal(t, "Today", tr.Today())
	assert.Equal(t, "Wed", tr.Weekday(time.Wednesday))
}

func TestTranslator_FallsBackToDefault(t *testing.T) {
	for _, lang := range []string{"", "fr"} {
		tr, err := New(lang)
		require.NoError(t, err)
		assert.Equal(t, DefaultLanguage, tr.Language(), "lang %q", lang)
		assert.Equal(t, "今天", tr.Today(), "lang %q", lang)
	}
}

// Every weekday must have a message in every locale.
func TestTranslator_AllWeekdaysTranslated(t *testing.T) {
	_, langs, err := NewBundle()
	require.NoError(t, err)

	for _, lang := range langs {
		tr, err := New(lang)
		require.NoError(t, err)
		for d := time.Sunday; d <= time.Saturday; d++ {
			_, ok := tr.lookup(weekdayIDs[d])
			assert.True(t, ok, "lang %s day %s", lang, d)
		}
		_, ok := tr.lookup(MsgToday)
		assert.True(t, ok, "lang %s", lang)
	}
}

// A translation may equal its own message id; only a missing message falls
// back to the id.
func TestTranslator_MissingMessageFallsBackToID(t *testing.T) {
	tr, err := New("en")
	require.NoError(t, err)

	_, ok := tr.lookup("NoSuchMessage")
	assert.False(t, ok)
	assert.Equal(t, "NoSuchMessage", tr.msg("NoSuchMessage"))
	assert.Equal(t, "Today", tr.Today())
}
