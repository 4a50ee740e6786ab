package fs

import (
	"context"
	"errors"
	"net/url"
	"os"
	"strings"

	"github.com/fwojciec/omzthemes"
)

// Ensure Fetcher implements omzthemes.Fetcher at compile time.
var _ omzthemes.Fetcher = (*Fetcher)(nil)

// Fetcher reads HTML from local files, e.g. a page saved with --save-html.
// It accepts plain paths and file:// URLs.
type Fetcher struct{}

// NewFetcher creates a new Fetcher.
func NewFetcher() *Fetcher {
	return &Fetcher{}
}

// Fetch returns the contents of the file at path.
// Returns ENOTFOUND if the file does not exist.
func (f *Fetcher) Fetch(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if strings.HasPrefix(path, "file://") {
		u, err := url.Parse(path)
		if err != nil {
			return "", omzthemes.Errorf(omzthemes.EINVALID, "invalid file URL %q: %v", path, err)
		}
		path = u.Path
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", omzthemes.Errorf(omzthemes.ENOTFOUND, "file %q not found", path)
	} else if err != nil {
		return "", err
	}
	return string(data), nil
}

// Close is a no-op.
func (f *Fetcher) Close() error {
	return nil
}
