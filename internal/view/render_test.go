package view_test

import (
	"strings"
	"testing"

	"github.com/kagazlabs/kagaz-cli/internal/api"
	"github.com/kagazlabs/kagaz-cli/internal/view"
)

func strPtr(s string) *string { return &s }

func f64Ptr(f float64) *float64 { return &f }

func TestToggleTransitions(t *testing.T) {
	var tg view.TranslationToggle
	if tg.Shown() {
		t.Fatalf("toggle should start hidden")
	}
	tg.Click()
	if !tg.Shown() {
		t.Fatalf("click should show")
	}
	tg.Click()
	if tg.Shown() {
		t.Fatalf("second click should hide")
	}
	tg.Enter()
	if !tg.Shown() {
		t.Fatalf("enter should force shown")
	}
	tg.Enter()
	if !tg.Shown() {
		t.Fatalf("enter is not a flip")
	}
	tg.Leave()
	if tg.Shown() {
		t.Fatalf("leave should force hidden")
	}
	tg.Click()
	tg.Reset()
	if tg.Shown() {
		t.Fatalf("reset should return to hidden")
	}
}

func TestTranslationOffered(t *testing.T) {
	hindi := &api.Document{
		Language: "hi",
		Analysis: &api.Analysis{TranslatedText: strPtr("नमस्ते")},
	}
	if !view.TranslationOffered(hindi) {
		t.Fatalf("hindi document with translated text should offer the toggle")
	}

	for name, doc := range map[string]*api.Document{
		"nil document":      nil,
		"base language":     {Language: "en", Analysis: &api.Analysis{TranslatedText: strPtr("hello")}},
		"no analysis":       {Language: "hi"},
		"no translation":    {Language: "hi", Analysis: &api.Analysis{}},
		"empty translation": {Language: "hi", Analysis: &api.Analysis{TranslatedText: strPtr("")}},
	} {
		if view.TranslationOffered(doc) {
			t.Errorf("%s: toggle should not be offered", name)
		}
	}
}

func TestRenderConfidence(t *testing.T) {
	if got := view.Confidence(0.873); got != "87.3%" {
		t.Fatalf("Confidence(0.873) = %q", got)
	}

	doc := &api.Document{
		ID:       "abc",
		Title:    "scan.pdf",
		Language: "en",
		Analysis: &api.Analysis{ConfidenceScore: f64Ptr(0.999)},
	}
	out := view.Render(doc, view.Options{})
	if !strings.Contains(out, "99.9%") {
		t.Fatalf("render should contain the percentage, got:\n%s", out)
	}

	doc.Analysis.ConfidenceScore = nil
	out = view.Render(doc, view.Options{})
	if strings.Contains(out, "Confidence") {
		t.Fatalf("absent score must not render a confidence line, got:\n%s", out)
	}
}

func TestRenderOmitsAbsentSections(t *testing.T) {
	doc := &api.Document{ID: "abc", Title: "bare.pdf", Language: "ta"}
	out := view.Render(doc, view.Options{ShowTranslation: true})
	for _, section := range []string{"[SUMMARY]", "[TRANSLATION]", "[ENTITIES]", "[AUDIO]", "[EXTRACTED TEXT]", "[NOTES]"} {
		if strings.Contains(out, section) {
			t.Errorf("section %s rendered without a backing field:\n%s", section, out)
		}
	}
	if !strings.Contains(out, "Title: bare.pdf") {
		t.Errorf("header missing title:\n%s", out)
	}
	if !strings.Contains(out, "Language: Tamil") {
		t.Errorf("language label should come from the registry:\n%s", out)
	}
}

func TestRenderTranslationGating(t *testing.T) {
	doc := &api.Document{
		ID:       "abc",
		Language: "hi",
		Analysis: &api.Analysis{TranslatedText: strPtr("अनुवादित पाठ")},
	}

	hidden := view.Render(doc, view.Options{})
	if strings.Contains(hidden, "[TRANSLATION]") {
		t.Fatalf("translation rendered while toggle hidden:\n%s", hidden)
	}

	shown := view.Render(doc, view.Options{ShowTranslation: true})
	if !strings.Contains(shown, "[TRANSLATION]") || !strings.Contains(shown, "अनुवादित पाठ") {
		t.Fatalf("translation missing while toggle shown:\n%s", shown)
	}

	// Base-language documents never get the section, shown or not.
	doc.Language = "en"
	base := view.Render(doc, view.Options{ShowTranslation: true})
	if strings.Contains(base, "[TRANSLATION]") {
		t.Fatalf("base-language document rendered a translation:\n%s", base)
	}
}

func TestRenderEntitiesInServerOrder(t *testing.T) {
	doc := &api.Document{
		ID:       "abc",
		Language: "en",
		Analysis: &api.Analysis{Entities: []api.Entity{
			{Word: "Zanzibar", Entity: "LOC"},
			{Word: "Amina", Entity: "PER"},
			{Word: "Kagaz Labs", Entity: "ORG"},
		}},
	}
	out := view.Render(doc, view.Options{})
	zi := strings.Index(out, "Zanzibar")
	ai := strings.Index(out, "Amina")
	ki := strings.Index(out, "Kagaz Labs")
	if zi < 0 || ai < 0 || ki < 0 {
		t.Fatalf("entities missing:\n%s", out)
	}
	if !(zi < ai && ai < ki) {
		t.Fatalf("entity order not preserved:\n%s", out)
	}
	if !strings.Contains(out, "- Amina: PER") {
		t.Fatalf("entity line format changed:\n%s", out)
	}

	doc.Analysis.Entities = nil
	out = view.Render(doc, view.Options{})
	if strings.Contains(out, "[ENTITIES]") {
		t.Fatalf("empty entity list rendered a section:\n%s", out)
	}
}

func TestRenderAudioUsesResolver(t *testing.T) {
	doc := &api.Document{
		ID:       "abc",
		Language: "en",
		Analysis: &api.Analysis{AudioResponse: strPtr("/tmp/audiofiles/audio_abc.wav")},
	}
	out := view.Render(doc, view.Options{
		AudioURL: func(ref string) string { return "http://localhost:8001/audio/audio_abc.wav" },
	})
	if !strings.Contains(out, "[AUDIO]") || !strings.Contains(out, "http://localhost:8001/audio/audio_abc.wav") {
		t.Fatalf("audio section should show the resolved URL:\n%s", out)
	}

	raw := view.Render(doc, view.Options{})
	if !strings.Contains(raw, "/tmp/audiofiles/audio_abc.wav") {
		t.Fatalf("without a resolver the stored reference should appear:\n%s", raw)
	}
}

func TestRenderContentPreviewTruncates(t *testing.T) {
	doc := &api.Document{
		ID:       "abc",
		Language: "en",
		Content:  strPtr(strings.Repeat("x", 50)),
	}
	out := view.Render(doc, view.Options{MaxContentRunes: 10})
	if !strings.Contains(out, "[EXTRACTED TEXT]") {
		t.Fatalf("content preview missing:\n%s", out)
	}
	if strings.Contains(out, strings.Repeat("x", 11)) {
		t.Fatalf("preview not truncated:\n%s", out)
	}

	full := view.Render(doc, view.Options{})
	if !strings.Contains(full, strings.Repeat("x", 50)) {
		t.Fatalf("zero limit should keep the full text:\n%s", full)
	}
}

func TestRenderTranslationFailureNote(t *testing.T) {
	doc := &api.Document{
		ID:       "abc",
		Language: "hi",
		Analysis: &api.Analysis{TranslationError: strPtr("target model unavailable")},
	}
	out := view.Render(doc, view.Options{ShowTranslation: true})
	if strings.Contains(out, "[TRANSLATION]") {
		t.Fatalf("failed translation must not render a translation section:\n%s", out)
	}
	if !strings.Contains(out, "[NOTES]") || !strings.Contains(out, "translation failed: target model unavailable") {
		t.Fatalf("translation failure note missing:\n%s", out)
	}
}
