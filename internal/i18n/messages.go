package i18n

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message/catalog"
)

// Message keys understood by Printer.
const (
	HomeTitle     = "home_title"
	HomeHeader    = "home_header"
	LoggedInAs    = "logged_in_as"
	NotLoggedIn   = "not_logged_in"
	CurrentTimeIs = "current_time_is"
)

var translations = map[language.Tag]map[string]string{
	language.English: {
		HomeTitle:     "Welcome to Holberton",
		HomeHeader:    "Hello world!",
		LoggedInAs:    "You are logged in as %s.",
		NotLoggedIn:   "You are not logged in.",
		CurrentTimeIs: "The current time is %s.",
	},
	language.French: {
		HomeTitle:     "Bienvenue chez Holberton",
		HomeHeader:    "Bonjour monde!",
		LoggedInAs:    "Vous êtes connecté en tant que %s.",
		NotLoggedIn:   "Vous n'êtes pas connecté.",
		CurrentTimeIs: "Nous sommes le %s.",
	},
}

var timeLayouts = map[string]string{
	"en": "Jan 2, 2006, 3:04:05 PM",
	"fr": "2 Jan 2006 15:04:05",
}

func newCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for tag, msgs := range translations {
		for key, msg := range msgs {
			// Keys and messages are static; SetString only fails on malformed tags.
			_ = b.SetString(tag, key, msg)
		}
	}
	return b
}

// FormatTime renders t for display in locale.
func FormatTime(t time.Time, locale string) string {
	layout, ok := timeLayouts[locale]
	if !ok {
		layout = timeLayouts["en"]
	}
	return t.Format(layout)
}
