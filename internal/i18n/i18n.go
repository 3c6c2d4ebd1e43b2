package i18n

import (
	"errors"
	"fmt"
	"slices"
	"time"
	_ "time/tzdata"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// ErrUnsupportedDefault is returned by NewNegotiator when the default locale
// is not among the supported languages.
var ErrUnsupportedDefault = errors.New("default locale must be one of the supported languages")

// Config lists the supported languages and the fallbacks used when a request
// expresses no usable preference.
type Config struct {
	Languages       []string `json:"languages"`
	DefaultLocale   string   `json:"default_locale"`
	DefaultTimezone string   `json:"default_timezone"`
}

func DefaultConfig() Config {
	return Config{
		Languages:       []string{"en", "fr"},
		DefaultLocale:   "en",
		DefaultTimezone: "UTC",
	}
}

// Profile carries the preferences stored for a logged-in user.
type Profile struct {
	Locale   *string
	Timezone string
}

// Request is the subset of an incoming request that drives negotiation.
type Request struct {
	QueryLocale    string
	HeaderLocale   string
	AcceptLanguage string
	QueryTimezone  string
	User           *Profile
}

// Negotiator picks a locale and timezone per request.
type Negotiator struct {
	cfg      Config
	matcher  language.Matcher
	catalog  *catalog.Builder
	fallback *time.Location
}

func NewNegotiator(cfg Config) (*Negotiator, error) {
	if !slices.Contains(cfg.Languages, cfg.DefaultLocale) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDefault, cfg.DefaultLocale)
	}
	fallback, ok := loadTimezone(cfg.DefaultTimezone)
	if !ok {
		return nil, fmt.Errorf("unknown default timezone %q", cfg.DefaultTimezone)
	}

	tags := make([]language.Tag, 0, len(cfg.Languages))
	for _, l := range cfg.Languages {
		tag, err := language.Parse(l)
		if err != nil {
			return nil, fmt.Errorf("parse language %q: %w", l, err)
		}
		tags = append(tags, tag)
	}

	return &Negotiator{
		cfg:      cfg,
		matcher:  language.NewMatcher(tags),
		catalog:  newCatalog(),
		fallback: fallback,
	}, nil
}

// SelectLocale applies, in order: the locale query parameter, the user's
// stored locale, the locale header, then the best Accept-Language match.
// Only supported languages are ever returned.
func (n *Negotiator) SelectLocale(r Request) string {
	if n.supported(r.QueryLocale) {
		return r.QueryLocale
	}
	if r.User != nil && r.User.Locale != nil && n.supported(*r.User.Locale) {
		return *r.User.Locale
	}
	if n.supported(r.HeaderLocale) {
		return r.HeaderLocale
	}
	return n.bestMatch(r.AcceptLanguage)
}

// SelectTimezone applies, in order: the timezone query parameter, the user's
// stored timezone, then the default. Unknown zone names are skipped.
func (n *Negotiator) SelectTimezone(r Request) (string, *time.Location) {
	if loc, ok := loadTimezone(r.QueryTimezone); ok {
		return r.QueryTimezone, loc
	}
	if r.User != nil {
		if loc, ok := loadTimezone(r.User.Timezone); ok {
			return r.User.Timezone, loc
		}
	}
	return n.cfg.DefaultTimezone, n.fallback
}

// Printer returns a message printer for a locale chosen by SelectLocale.
func (n *Negotiator) Printer(locale string) *message.Printer {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Make(n.cfg.DefaultLocale)
	}
	return message.NewPrinter(tag, message.Catalog(n.catalog))
}

func (n *Negotiator) supported(locale string) bool {
	return locale != "" && slices.Contains(n.cfg.Languages, locale)
}

func (n *Negotiator) bestMatch(acceptLanguage string) string {
	if acceptLanguage == "" {
		return n.cfg.DefaultLocale
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return n.cfg.DefaultLocale
	}
	_, index, confidence := n.matcher.Match(tags...)
	if confidence == language.No {
		return n.cfg.DefaultLocale
	}
	return n.cfg.Languages[index]
}

func loadTimezone(name string) (*time.Location, bool) {
	// LoadLocation maps "" to UTC and "Local" to the host zone; neither is a
	// zone name a client may ask for.
	if name == "" || name == "Local" {
		return nil, false
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, false
	}
	return loc, true
}
