package history

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/kagazlabs/kagaz-cli/internal/utils"
)

// Entry records one successful upload so later commands can default to the
// most recent document.
type Entry struct {
	ID         string `yaml:"id"`
	DocumentID string `yaml:"document_id"`
	Title      string `yaml:"title"`
	Language   string `yaml:"language"`
	UploadedAt string `yaml:"uploaded_at"`
}

// File is the on-disk upload history, oldest entry first.
type File struct {
	Entries []Entry `yaml:"entries"`

	// Not serialized: on-disk location of the history file.
	path string
}

// Load reads the history at path. A missing file yields an empty history.
func Load(path string) (*File, error) {
	f := &File{path: path}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return f, nil
		}
		return nil, fmt.Errorf("read history: %w", err)
	}
	if err := yaml.Unmarshal(b, f); err != nil {
		return nil, fmt.Errorf("parse history: %w", err)
	}
	return f, nil
}

// Add appends an entry for a completed upload. Call Save() to persist.
func (f *File) Add(documentID, title, language string) Entry {
	e := Entry{
		ID:         uuid.NewString(),
		DocumentID: documentID,
		Title:      title,
		Language:   language,
		UploadedAt: time.Now().UTC().Format(time.RFC3339),
	}
	f.Entries = append(f.Entries, e)
	return e
}

// Last returns the most recent entry.
func (f *File) Last() (Entry, bool) {
	if len(f.Entries) == 0 {
		return Entry{}, false
	}
	return f.Entries[len(f.Entries)-1], true
}

// Save writes the history using an atomic rename.
func (f *File) Save() error {
	if f.path == "" {
		return errors.New("history path not set")
	}
	if err := utils.EnsureDir(filepath.Dir(f.path)); err != nil {
		return fmt.Errorf("ensure dir: %w", err)
	}
	b, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("marshal history: %w", err)
	}
	return utils.SafeWriteFile(f.path, b)
}
