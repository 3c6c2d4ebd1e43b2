package i18n

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func newTestNegotiator(t *testing.T) *Negotiator {
	t.Helper()
	n, err := NewNegotiator(DefaultConfig())
	require.NoError(t, err)
	return n
}

func TestNewNegotiator_RejectsBadConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DefaultLocale = "de"
	_, err := NewNegotiator(cfg)
	require.ErrorIs(t, err, ErrUnsupportedDefault)

	cfg = DefaultConfig()
	cfg.DefaultTimezone = "Vulcan"
	_, err = NewNegotiator(cfg)
	require.Error(t, err)
}

func TestSelectLocale_Priority(t *testing.T) {
	n := newTestNegotiator(t)
	fr := &Profile{Locale: strPtr("fr")}

	require.Equal(t, "fr", n.SelectLocale(Request{QueryLocale: "fr", HeaderLocale: "en"}))
	// Unsupported query values fall through to the user's locale.
	require.Equal(t, "fr", n.SelectLocale(Request{QueryLocale: "kg", User: fr, HeaderLocale: "en"}))
	require.Equal(t, "en", n.SelectLocale(Request{User: &Profile{Locale: strPtr("kg")}, HeaderLocale: "en", AcceptLanguage: "fr"}))
	require.Equal(t, "fr", n.SelectLocale(Request{User: &Profile{}, HeaderLocale: "fr"}))
	require.Equal(t, "fr", n.SelectLocale(Request{AcceptLanguage: "fr-CH, fr;q=0.9, en;q=0.8"}))
	require.Equal(t, "en", n.SelectLocale(Request{AcceptLanguage: "en-US,en;q=0.5"}))
	require.Equal(t, "en", n.SelectLocale(Request{AcceptLanguage: "ja"}))
	require.Equal(t, "en", n.SelectLocale(Request{}))
}

func TestSelectTimezone_Priority(t *testing.T) {
	n := newTestNegotiator(t)

	name, loc := n.SelectTimezone(Request{QueryTimezone: "Europe/Paris", User: &Profile{Timezone: "US/Central"}})
	require.Equal(t, "Europe/Paris", name)
	require.Equal(t, "Europe/Paris", loc.String())

	name, _ = n.SelectTimezone(Request{QueryTimezone: "Vulcan", User: &Profile{Timezone: "US/Central"}})
	require.Equal(t, "US/Central", name)

	name, loc = n.SelectTimezone(Request{User: &Profile{Timezone: "Vulcan"}})
	require.Equal(t, "UTC", name)
	require.Equal(t, time.UTC.String(), loc.String())

	name, _ = n.SelectTimezone(Request{QueryTimezone: "Local"})
	require.Equal(t, "UTC", name)
}

func TestPrinter_Translates(t *testing.T) {
	n := newTestNegotiator(t)

	require.Equal(t, "Bienvenue chez Holberton", n.Printer("fr").Sprintf(HomeTitle))
	require.Equal(t, "Welcome to Holberton", n.Printer("en").Sprintf(HomeTitle))
	require.Equal(t, "You are logged in as Beyonce.", n.Printer("en").Sprintf(LoggedInAs, "Beyonce"))
	require.Equal(t, "Vous êtes connecté en tant que Balou.", n.Printer("fr").Sprintf(LoggedInAs, "Balou"))
}

func TestFormatTime(t *testing.T) {
	ts := time.Date(2026, time.October, 16, 14, 5, 9, 0, time.UTC)
	require.Equal(t, "Oct 16, 2026, 2:05:09 PM", FormatTime(ts, "en"))
	require.Equal(t, "16 Oct 2026 14:05:09", FormatTime(ts, "fr"))
	require.Equal(t, "Oct 16, 2026, 2:05:09 PM", FormatTime(ts, "kg"))
}
