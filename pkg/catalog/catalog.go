// Package catalog holds the static pattern reference data the signal
// extractors match against: language and slang regexps, city names, phone
// dial-code patterns, UTC-offset country groupings, and the country
// display-name table. A Catalog is built once at process start and is
// read-only afterwards, so concurrent readers need no locking.
package catalog

import (
	"fmt"
	"regexp"
	"strings"
)

// LanguagePattern maps a language or slang regexp to candidate countries.
type LanguagePattern struct {
	Pattern     *regexp.Regexp
	Countries   []string // ordered, most likely first
	Confidence  float64  // in (0, 1]
	Description string
}

// LocationPattern maps a city name (plus aliases) to its country.
type LocationPattern struct {
	City       string
	Aliases    []string
	Country    string
	Confidence float64

	// whole-word matchers for the city name and each alias, compiled
	// at catalog construction
	matchers []*regexp.Regexp
}

// MatchesWord reports whether the city name or any alias appears as a
// whole word in text. Matching is case-insensitive.
func (p *LocationPattern) MatchesWord(text string) bool {
	for _, m := range p.matchers {
		if m.MatchString(text) {
			return true
		}
	}
	return false
}

// PhoneCodePattern maps an international dial code to a country.
type PhoneCodePattern struct {
	Code       string // display form, e.g. "+62"
	Country    string
	Pattern    *regexp.Regexp
	Confidence float64
}

// LanguageHint is a device-language inference: one plausible country with a
// confidence discounted for how many countries actually speak the language.
type LanguageHint struct {
	Country    string
	Confidence float64
}

// Catalog is the full set of immutable pattern tables.
type Catalog struct {
	Languages        []LanguagePattern
	Locations        []LocationPattern
	PhoneCodes       []PhoneCodePattern // table order matters: first match wins
	Timezones        map[string][]string
	DeviceLanguages  map[string]LanguageHint
	HashtagCountries map[string]string

	countryNames map[string]string
}

// New builds the catalog. All regexps compile via MustCompile: a malformed
// table entry is a programming error and must fail the process at startup
// rather than surface at request time.
func New() *Catalog {
	c := &Catalog{
		Languages:        languagePatterns(),
		Locations:        locationPatterns(),
		PhoneCodes:       phoneCodePatterns(),
		Timezones:        timezoneCountries,
		DeviceLanguages:  deviceLanguageHints,
		HashtagCountries: hashtagCountries,
		countryNames:     countryNames,
	}
	for i := range c.Locations {
		loc := &c.Locations[i]
		names := append([]string{loc.City}, loc.Aliases...)
		for _, name := range names {
			loc.matchers = append(loc.matchers,
				regexp.MustCompile(`(?i)\b`+regexp.QuoteMeta(name)+`\b`))
		}
	}
	return c
}

// IsKnownCountry reports whether code is present in the display-name table.
// The code must already be uppercase.
func (c *Catalog) IsKnownCountry(code string) bool {
	_, ok := c.countryNames[code]
	return ok
}

// CountryName returns the display name for an uppercase 2-letter code, or
// the code itself when the table has no entry for it.
func (c *Catalog) CountryName(code string) string {
	if name, ok := c.countryNames[strings.ToUpper(code)]; ok {
		return name
	}
	return code
}

// DisplayName is the package-level form of CountryName for callers that
// only need the static name table, not a full catalog.
func DisplayName(code string) string {
	if name, ok := countryNames[strings.ToUpper(code)]; ok {
		return name
	}
	return code
}

// OffsetLabel formats an integer UTC offset the way the timezone table keys
// it: "UTC+7", "UTC-5", "UTC+0".
func OffsetLabel(offset int) string {
	return fmt.Sprintf("UTC%+d", offset)
}
