package view

import (
	"fmt"
	"strings"

	"github.com/kagazlabs/kagaz-cli/internal/api"
	"github.com/kagazlabs/kagaz-cli/internal/lang"
	"github.com/kagazlabs/kagaz-cli/internal/utils"
)

// Options controls how a document is rendered.
type Options struct {
	// ShowTranslation overlays translated text when the document offers one.
	ShowTranslation bool
	// AudioURL resolves a server-side audio reference to a fetchable URL.
	// If nil, the audio section shows the stored reference as-is.
	AudioURL func(ref string) string
	// MaxContentRunes limits the extracted-text preview; 0 means unlimited.
	MaxContentRunes int
}

// Render composes the printable report for a loaded document. Every section
// is gated on its backing field: an analysis stage that failed or was skipped
// upstream simply produces no section, never a placeholder.
func Render(doc *api.Document, opts Options) string {
	var b strings.Builder
	b.WriteString("[DOCUMENT]\n")
	if doc.Title != "" {
		b.WriteString(fmt.Sprintf("Title: %s\n", doc.Title))
	}
	if doc.Language != "" {
		b.WriteString(fmt.Sprintf("Language: %s\n", lang.DisplayName(doc.Language)))
	}
	if doc.CreatedAt != "" {
		b.WriteString(fmt.Sprintf("Uploaded: %s\n", doc.CreatedAt))
	}
	if doc.ID != "" {
		b.WriteString(fmt.Sprintf("ID: %s\n", doc.ID))
	}

	a := doc.Analysis
	if a != nil && a.ConfidenceScore != nil {
		b.WriteString(fmt.Sprintf("Confidence: %s\n", Confidence(*a.ConfidenceScore)))
	}

	if a != nil && a.Summary != nil && *a.Summary != "" {
		b.WriteString("\n[SUMMARY]\n")
		b.WriteString(*a.Summary)
		b.WriteString("\n")
	}

	if opts.ShowTranslation && TranslationOffered(doc) {
		b.WriteString("\n[TRANSLATION]\n")
		b.WriteString(fmt.Sprintf("(%s)\n", lang.DisplayName(doc.Language)))
		b.WriteString(*a.TranslatedText)
		b.WriteString("\n")
	}

	if a != nil && len(a.Entities) > 0 {
		b.WriteString("\n[ENTITIES]\n")
		for _, e := range a.Entities {
			b.WriteString(fmt.Sprintf("- %s: %s\n", e.Word, e.Entity))
		}
	}

	if a != nil && a.AudioResponse != nil && *a.AudioResponse != "" {
		ref := *a.AudioResponse
		if opts.AudioURL != nil {
			ref = opts.AudioURL(ref)
		}
		b.WriteString("\n[AUDIO]\n")
		b.WriteString(fmt.Sprintf("Spoken summary: %s\n", ref))
	}

	if doc.Content != nil && *doc.Content != "" {
		text := *doc.Content
		if opts.MaxContentRunes > 0 {
			text = utils.TruncateRunes(text, opts.MaxContentRunes)
		}
		b.WriteString("\n[EXTRACTED TEXT]\n")
		b.WriteString(text)
		b.WriteString("\n")
	}

	if a != nil && a.TranslationError != nil && *a.TranslationError != "" {
		b.WriteString("\n[NOTES]\n")
		b.WriteString(fmt.Sprintf("- translation failed: %s\n", *a.TranslationError))
	}

	return b.String()
}

// Confidence formats a 0..1 score as a percentage with one fractional digit.
func Confidence(score float64) string {
	return fmt.Sprintf("%.1f%%", score*100)
}
