// Package i18n holds the public site's UI strings and picks a locale
// for each request. The rendering layer is the consumer; the server
// only hands over the negotiated label table.
package i18n

import (
	"golang.org/x/text/language"
)

// LocaleCookie stores the visitor's explicit language choice.
const LocaleCookie = "bandland-locale"

// DefaultLocale is used when neither cookie nor Accept-Language helps.
const DefaultLocale = "en"

// Labels maps dotted string keys to translated UI text.
type Labels map[string]string

var supported = []language.Tag{
	language.English,   // en, first entry is the fallback
	language.Afrikaans, // af
}

var matcher = language.NewMatcher(supported)

var tables = map[string]Labels{
	"en": {
		"meta.description":  "Official landing page. Music, shows, and merch coming soon.",
		"nav.home":          "Home",
		"nav.shows":         "Shows",
		"nav.merch":         "Merch",
		"nav.gallery":       "Gallery",
		"nav.language":      "Language",
		"shows.title":       "Upcoming shows",
		"shows.empty":       "No shows announced yet. Check back soon.",
		"shows.tickets":     "Tickets",
		"merch.title":       "Merch",
		"merch.empty":       "The store is being restocked.",
		"merch.buy":         "Buy",
		"footer.contact":    "Bookings & press",
		"admin.signIn":      "Sign in",
		"admin.password":    "Password",
		"admin.signInError": "Sign-in failed. Check the password and try again.",
	},
	"af": {
		"meta.description":  "Amptelike tuisblad. Musiek, vertonings en handelsware binnekort.",
		"nav.home":          "Tuis",
		"nav.shows":         "Vertonings",
		"nav.merch":         "Handelsware",
		"nav.gallery":       "Galery",
		"nav.language":      "Taal",
		"shows.title":       "Komende vertonings",
		"shows.empty":       "Nog geen vertonings aangekondig nie. Kom kyk gerus weer.",
		"shows.tickets":     "Kaartjies",
		"merch.title":       "Handelsware",
		"merch.empty":       "Die winkel word aangevul.",
		"merch.buy":         "Koop",
		"footer.contact":    "Besprekings & pers",
		"admin.signIn":      "Teken in",
		"admin.password":    "Wagwoord",
		"admin.signInError": "Intekening het misluk. Kontroleer die wagwoord en probeer weer.",
	},
}

// IsLocale reports whether s names a supported locale.
func IsLocale(s string) bool {
	_, ok := tables[s]
	return ok
}

// Negotiate picks a locale: an explicit cookie value wins, then the
// request's Accept-Language header via the matcher, then the default.
func Negotiate(cookieValue, acceptLanguage string) string {
	if IsLocale(cookieValue) {
		return cookieValue
	}
	if acceptLanguage != "" {
		if prefs, _, err := language.ParseAcceptLanguage(acceptLanguage); err == nil {
			_, idx, conf := matcher.Match(prefs...)
			if conf > language.No {
				base, _ := supported[idx].Base()
				if IsLocale(base.String()) {
					return base.String()
				}
			}
		}
	}
	return DefaultLocale
}

// Get returns the label table for locale, falling back to the default
// table for unknown locales.
func Get(locale string) Labels {
	if t, ok := tables[locale]; ok {
		return t
	}
	return tables[DefaultLocale]
}
