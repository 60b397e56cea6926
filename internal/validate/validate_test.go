package validate

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestCheckAcceptedTypes(t *testing.T) {
	cases := []struct {
		name string
		size int64
	}{
		{"contract.pdf", 2 << 20},
		{"scan.PDF", 1024},
		{"notes.txt", 10},
		{"photo.jpeg", 512},
		{"photo.jpg", 512},
		{"page.png", 512},
		{"fax.tiff", 512},
		{"old.doc", 512},
		{"new.docx", 512},
		{"frame.gif", 512},
		{"bitmap.bmp", 512},
	}
	for _, c := range cases {
		if err := Check(c.name, c.size); err != nil {
			t.Fatalf("Check(%q, %d) = %v, want nil", c.name, c.size, err)
		}
	}
}

func TestCheckRejectsUnknownType(t *testing.T) {
	err := Check("tool.exe", 100)
	var invalid *InvalidTypeError
	if !errors.As(err, &invalid) {
		t.Fatalf("Check(.exe) = %v, want InvalidTypeError", err)
	}
	if invalid.Ext != ".exe" {
		t.Fatalf("InvalidTypeError.Ext = %q, want .exe", invalid.Ext)
	}
	if err := Check("noextension", 100); err == nil {
		t.Fatalf("expected error for file without extension")
	}
}

func TestCheckSizeCeiling(t *testing.T) {
	if err := Check("big.pdf", MaxFileBytes); err != nil {
		t.Fatalf("file at exactly the ceiling should pass, got %v", err)
	}
	err := Check("big.pdf", MaxFileBytes+1)
	var large *TooLargeError
	if !errors.As(err, &large) {
		t.Fatalf("Check(over ceiling) = %v, want TooLargeError", err)
	}
	if large.Size != MaxFileBytes+1 {
		t.Fatalf("TooLargeError.Size = %d, want %d", large.Size, MaxFileBytes+1)
	}
}

func TestMediaType(t *testing.T) {
	mt, ok := MediaType("Contract.PDF")
	if !ok || mt != "application/pdf" {
		t.Fatalf("MediaType(.PDF) = %q, %v", mt, ok)
	}
	if _, ok := MediaType("archive.zip"); ok {
		t.Fatalf("did not expect a media type for .zip")
	}
}

func TestCheckFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")
	if err := os.WriteFile(path, []byte("hello"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if err := CheckFile(path); err != nil {
		t.Fatalf("CheckFile(valid txt) = %v", err)
	}
	if err := CheckFile(filepath.Join(dir, "missing.txt")); err == nil {
		t.Fatalf("expected error for missing file")
	}
	if err := CheckFile(dir); err == nil {
		t.Fatalf("expected error for directory")
	}
}
