package validate

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// MaxFileBytes is the upload size ceiling enforced before any network call.
const MaxFileBytes = 10 << 20

// mediaTypes maps accepted file extensions to the MIME type sent with the
// multipart file part. The backend extracts text server-side, so the client
// only gates on metadata.
var mediaTypes = map[string]string{
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".txt":  "text/plain",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".tif":  "image/tiff",
	".tiff": "image/tiff",
	".bmp":  "image/bmp",
	".gif":  "image/gif",
}

// InvalidTypeError indicates the file extension is outside the accepted set.
type InvalidTypeError struct {
	Name string
	Ext  string
}

func (e *InvalidTypeError) Error() string {
	ext := e.Ext
	if ext == "" {
		ext = "(none)"
	}
	return fmt.Sprintf("unsupported file type %s for %s: accepted extensions are %s",
		ext, e.Name, strings.Join(Extensions(), ", "))
}

// TooLargeError indicates the file exceeds MaxFileBytes.
type TooLargeError struct {
	Name string
	Size int64
}

func (e *TooLargeError) Error() string {
	return fmt.Sprintf("file %s is %d bytes, over the %d MiB upload limit", e.Name, e.Size, MaxFileBytes>>20)
}

// MediaType returns the MIME type for an accepted filename.
func MediaType(name string) (string, bool) {
	mt, ok := mediaTypes[strings.ToLower(filepath.Ext(name))]
	return mt, ok
}

// Extensions returns the accepted extensions in sorted order.
func Extensions() []string {
	out := make([]string, 0, len(mediaTypes))
	for ext := range mediaTypes {
		out = append(out, ext)
	}
	sort.Strings(out)
	return out
}

// Check validates file metadata against the accepted type set and size
// ceiling. It is a pure predicate so callers can run it at selection time
// and again right before submission.
func Check(name string, size int64) error {
	if _, ok := MediaType(name); !ok {
		return &InvalidTypeError{Name: filepath.Base(name), Ext: strings.ToLower(filepath.Ext(name))}
	}
	if size > MaxFileBytes {
		return &TooLargeError{Name: filepath.Base(name), Size: size}
	}
	return nil
}

// CheckFile stats path and validates it with Check.
func CheckFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat file: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}
	return Check(info.Name(), info.Size())
}
