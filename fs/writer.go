// Package fs provides file-based input and output for the themes catalog.
package fs

import (
	"bytes"
	"context"
	"os"
	"path/filepath"

	"github.com/fwojciec/omzthemes"
)

// DefaultOutputPath is the file the catalog is written to.
const DefaultOutputPath = "ohmyzsh_themes.json"

// WriteFile writes data to path atomically. The data is written to a
// temporary file in the same directory and renamed over path, so readers
// never see a partially written file.
func WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return err
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}

// Ensure ThemeWriter implements omzthemes.ThemeWriter at compile time.
var _ omzthemes.ThemeWriter = (*ThemeWriter)(nil)

// ThemeWriter writes the catalog as a JSON file.
type ThemeWriter struct {
	path string
}

// NewThemeWriter creates a new ThemeWriter that writes to path.
func NewThemeWriter(path string) *ThemeWriter {
	return &ThemeWriter{path: path}
}

// Path returns the destination file.
func (w *ThemeWriter) Path() string {
	return w.path
}

// WriteThemes validates the themes and replaces the destination file.
// Nothing is written if any theme is invalid.
func (w *ThemeWriter) WriteThemes(ctx context.Context, themes []*omzthemes.Theme) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, t := range themes {
		if err := t.Validate(); err != nil {
			return err
		}
	}

	var buf bytes.Buffer
	if err := omzthemes.EncodeThemes(&buf, themes); err != nil {
		return err
	}

	return WriteFile(w.path, buf.Bytes())
}
