package view

import (
	"github.com/kagazlabs/kagaz-cli/internal/api"
	"github.com/kagazlabs/kagaz-cli/internal/lang"
)

// TranslationToggle is the ephemeral show/hide state for translated content.
// It is never persisted: make a fresh toggle (or Reset) whenever a new
// document is loaded.
type TranslationToggle struct {
	shown bool
}

// Shown reports whether the translation should currently be visible.
func (t *TranslationToggle) Shown() bool { return t.shown }

// Click flips the state.
func (t *TranslationToggle) Click() { t.shown = !t.shown }

// Enter forces the translation visible.
func (t *TranslationToggle) Enter() { t.shown = true }

// Leave forces the translation hidden.
func (t *TranslationToggle) Leave() { t.shown = false }

// Reset returns the toggle to hidden.
func (t *TranslationToggle) Reset() { t.shown = false }

// TranslationOffered reports whether doc carries translated content worth
// toggling at all: the requested language must differ from the extraction
// base and the analysis must hold a non-empty translation.
func TranslationOffered(doc *api.Document) bool {
	if doc == nil || doc.Language == lang.Base {
		return false
	}
	a := doc.Analysis
	return a != nil && a.TranslatedText != nil && *a.TranslatedText != ""
}
