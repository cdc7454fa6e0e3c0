// Package locale translates weekday names and the "today" label.
package locale

import (
	"embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/hy4ri/weekdaytab/internal/logging"
)

//go:embed locales/*.json
var localeFS embed.FS

// DefaultLanguage is used when no language is configured or the configured
// one has no message file.
const DefaultLanguage = "zh"

// Message IDs.
const (
	MsgToday = "TodayLabel"
)

var weekdayIDs = [7]string{
	time.Sunday:    "WeekdaySunday",
	time.Monday:    "WeekdayMonday",
	time.Tuesday:   "WeekdayTuesday",
	time.Wednesday: "WeekdayWednesday",
	time.Thursday:  "WeekdayThursday",
	time.Friday:    "WeekdayFriday",
	time.Saturday:  "WeekdaySaturday",
}

// Translator looks up display strings for one language.
type Translator struct {
	lang      string
	localizer *i18n.Localizer
}

// NewBundle loads every embedded message file and returns the bundle with
// the language codes it found.
func NewBundle() (*i18n.Bundle, []string, error) {
	bundle := i18n.NewBundle(language.Chinese)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read locales: %w", err)
	}

	var langs []string
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, "active.") || !strings.HasSuffix(name, ".json") {
			slog.Debug("skipping locale file", logging.KeyComponent, "locale", "file", name)
			continue
		}

		code := strings.TrimSuffix(strings.TrimPrefix(name, "active."), ".json")
		if _, err := bundle.LoadMessageFileFS(localeFS, "locales/"+name); err != nil {
			return nil, nil, fmt.Errorf("failed to load locale %s: %w", name, err)
		}
		slog.Debug("locale loaded", logging.KeyComponent, "locale", "lang", code)
		langs = append(langs, code)
	}

	return bundle, langs, nil
}

// New returns a Translator for lang. Unknown languages fall back to
// DefaultLanguage.
func New(lang string) (*Translator, error) {
	bundle, langs, err := NewBundle()
	if err != nil {
		return nil, err
	}

	if lang == "" || !slices.Contains(langs, lang) {
		if lang != "" {
			slog.Warn("unsupported language, using default", logging.KeyComponent, "locale", "lang", lang, "default", DefaultLanguage)
		}
		lang = DefaultLanguage
	}

	return &Translator{
		lang:      lang,
		localizer: i18n.NewLocalizer(bundle, lang),
	}, nil
}

// Language returns the language code in use.
func (t *Translator) Language() string {
	return t.lang
}

// Weekday implements week.Labeler.
func (t *Translator) Weekday(d time.Weekday) string {
	return t.msg(weekdayIDs[d])
}

// Today returns the label that replaces today's weekday name.
func (t *Translator) Today() string {
	return t.msg(MsgToday)
}

// msg translates id, returning id itself when no translation exists.
func (t *Translator) msg(id string) string {
	out, ok := t.lookup(id)
	if !ok {
		return id
	}
	return out
}

// lookup translates id and reports whether the bundle had a message for it.
func (t *Translator) lookup(id string) (string, bool) {
	out, err := t.localizer.Localize(&i18n.LocalizeConfig{MessageID: id})
	if err != nil {
		slog.Debug("translation missing", logging.KeyComponent, "locale", logging.KeyKey, id, logging.KeyError, err)
		return "", false
	}
	return out, true
}
