package lang

import "sort"

// Base is the language documents are analyzed in. Translation and the
// translated-text view only apply when a different language was requested.
const Base = "en"

// displayNames maps every selectable language code to its display name.
// This table is the single source of truth for both the upload selector
// and result rendering.
var displayNames = map[string]string{
	"en":  "English",
	"hi":  "Hindi",
	"bn":  "Bengali",
	"te":  "Telugu",
	"mr":  "Marathi",
	"ta":  "Tamil",
	"ur":  "Urdu",
	"gu":  "Gujarati",
	"kn":  "Kannada",
	"ml":  "Malayalam",
	"or":  "Odia",
	"pa":  "Punjabi",
	"as":  "Assamese",
	"mai": "Maithili",
	"sat": "Santali",
	"ks":  "Kashmiri",
	"ne":  "Nepali",
	"sd":  "Sindhi",
	"kok": "Konkani",
	"doi": "Dogri",
	"mni": "Manipuri",
	"sa":  "Sanskrit",
}

// DisplayName returns the display name for a language code. Unknown codes
// are returned unchanged so callers always have something to render.
func DisplayName(code string) string {
	if name, ok := displayNames[code]; ok {
		return name
	}
	return code
}

// Supported reports whether code is one of the selectable languages.
func Supported(code string) bool {
	_, ok := displayNames[code]
	return ok
}

// Codes returns all selectable language codes in sorted order.
func Codes() []string {
	out := make([]string, 0, len(displayNames))
	for c := range displayNames {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}
