package inspect_test

import (
	"archive/zip"
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/kagazlabs/kagaz-cli/internal/inspect"
	"github.com/kagazlabs/kagaz-cli/internal/validate"
)

func writeTempFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

// writeDocx builds a minimal .docx: a zip holding word/document.xml.
func writeDocx(t *testing.T, name string, paragraphs []string) string {
	t.Helper()
	var body strings.Builder
	body.WriteString(`<?xml version="1.0"?><w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	for _, p := range paragraphs {
		body.WriteString(`<w:p><w:r><w:t>` + p + `</w:t></w:r></w:p>`)
	}
	body.WriteString(`</w:body></w:document>`)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := f.Write([]byte(body.String())); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return writeTempFile(t, name, buf.Bytes())
}

func TestFileTextPreview(t *testing.T) {
	path := writeTempFile(t, "notes.txt", []byte("ration card renewal form, submitted twice"))
	p, err := inspect.File(path, 0)
	if err != nil {
		t.Fatalf("File: %v", err)
	}
	if p.MediaType != "text/plain" {
		t.Fatalf("MediaType = %q", p.MediaType)
	}
	if p.Text != "ration card renewal form, submitted twice" {
		t.Fatalf("Text = %q", p.Text)
	}
	if p.Warning != "" {
		t.Fatalf("unexpected warning %q", p.Warning)
	}
}

func TestFilePreviewTruncates(t *testing.T) {
	path := writeTempFile(t, "big.txt", []byte(strings.Repeat("a", 100)))
	p, err := inspect.File(path, 10)
	if err != nil {
		t.Fatalf("File: %v", err)
	}
	if n := utf8.RuneCountInString(p.Text); n != 11 {
		t.Fatalf("preview is %d runes, want 10 plus ellipsis", n)
	}
	if !strings.HasSuffix(p.Text, "…") {
		t.Fatalf("truncated preview should end with an ellipsis, got %q", p.Text)
	}
}

func TestFileDocxPreview(t *testing.T) {
	path := writeDocx(t, "form.docx", []string{"First paragraph.", "Second paragraph."})
	p, err := inspect.File(path, 0)
	if err != nil {
		t.Fatalf("File: %v", err)
	}
	if p.Text != "First paragraph.\nSecond paragraph." {
		t.Fatalf("Text = %q", p.Text)
	}
}

func TestFileCorruptDocxWarnsButSucceeds(t *testing.T) {
	path := writeTempFile(t, "broken.docx", []byte("this is not a zip archive"))
	p, err := inspect.File(path, 0)
	if err != nil {
		t.Fatalf("extraction failure should not fail inspection: %v", err)
	}
	if p.Warning == "" {
		t.Fatalf("corrupt archive should set a warning")
	}
	if p.Text != "" {
		t.Fatalf("no text expected, got %q", p.Text)
	}
}

func TestFileImageHasNoPreview(t *testing.T) {
	path := writeTempFile(t, "scan.png", []byte{0x89, 'P', 'N', 'G'})
	p, err := inspect.File(path, 0)
	if err != nil {
		t.Fatalf("File: %v", err)
	}
	if p.MediaType != "image/png" {
		t.Fatalf("MediaType = %q", p.MediaType)
	}
	if p.Text != "" || p.Warning != "" {
		t.Fatalf("images are server-side OCR territory: %+v", p)
	}
}

func TestFileRejectsLikeSubmit(t *testing.T) {
	path := writeTempFile(t, "tool.exe", []byte("MZ"))
	_, err := inspect.File(path, 0)
	var invalid *validate.InvalidTypeError
	if !errors.As(err, &invalid) {
		t.Fatalf("err = %v, want InvalidTypeError", err)
	}

	if _, err := inspect.File(filepath.Join(t.TempDir(), "missing.pdf"), 0); err == nil {
		t.Fatalf("missing file should error")
	}
}
