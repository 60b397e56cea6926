package inspect

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/kagazlabs/kagaz-cli/internal/utils"
	"github.com/kagazlabs/kagaz-cli/internal/validate"
)

// Preview describes a candidate file before anything is sent to the service.
type Preview struct {
	Name      string
	MediaType string
	Size      int64
	// Pages is set for PDFs, 0 otherwise.
	Pages int
	// Text holds the locally extracted preview, truncated to the caller's
	// rune limit. Empty for formats that need server-side OCR.
	Text string
	// Warning is set when local extraction failed. The file is still
	// uploadable; the service runs its own extraction pipeline.
	Warning string
}

// File runs the same pre-upload checks the submit path runs and, for
// formats readable without OCR, extracts a text preview capped at maxRunes.
func File(path string, maxRunes int) (*Preview, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}
	if err := validate.Check(info.Name(), info.Size()); err != nil {
		return nil, err
	}

	mt, _ := validate.MediaType(info.Name())
	p := &Preview{Name: info.Name(), MediaType: mt, Size: info.Size()}

	switch strings.ToLower(filepath.Ext(info.Name())) {
	case ".txt":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read file: %w", err)
		}
		p.Text = clip(string(data), maxRunes)
	case ".pdf":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read file: %w", err)
		}
		text, pages, err := pdfText(data)
		p.Pages = pages
		if err != nil {
			p.Warning = fmt.Sprintf("could not extract text: %v", err)
		} else {
			p.Text = clip(text, maxRunes)
		}
	case ".docx":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read file: %w", err)
		}
		text, err := docxText(data)
		if err != nil {
			p.Warning = fmt.Sprintf("could not extract text: %v", err)
		} else {
			p.Text = clip(text, maxRunes)
		}
	default:
		// Images and legacy .doc need the server's OCR; metadata only.
	}
	return p, nil
}

// clip truncates to limit runes; limit <= 0 keeps the whole text.
func clip(text string, limit int) string {
	if limit <= 0 {
		return text
	}
	return utils.TruncateRunes(text, limit)
}

func pdfText(data []byte) (string, int, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", 0, err
	}
	pages := r.NumPage()
	plain, err := r.GetPlainText()
	if err != nil {
		return "", pages, err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", pages, err
	}
	return buf.String(), pages, nil
}

// docxText pulls the character data out of word/document.xml, inserting a
// newline at each paragraph or line break.
func docxText(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	var docFile *zip.File
	for _, f := range zr.File {
		if strings.ReplaceAll(f.Name, "\\", "/") == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return "", errors.New("word/document.xml not found")
	}
	rc, err := docFile.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()

	dec := xml.NewDecoder(rc)
	var buf strings.Builder
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", err
		}
		switch t := tok.(type) {
		case xml.CharData:
			buf.Write(t)
		case xml.EndElement:
			if (t.Name.Local == "p" || t.Name.Local == "br") && buf.Len() > 0 {
				buf.WriteString("\n")
			}
		}
	}
	return strings.TrimSpace(buf.String()), nil
}
