package omzthemes

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
)

// EncodeThemes writes themes as an indented JSON array.
// Non-ASCII and HTML characters are written verbatim; a nil slice is
// written as an empty array.
func EncodeThemes(w io.Writer, themes []*Theme) error {
	if themes == nil {
		themes = []*Theme{}
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	return enc.Encode(themes)
}

// FormatSample formats the first n themes for display.
// Returns an empty string if there is nothing to show.
func FormatSample(themes []*Theme, n int) (string, error) {
	if n <= 0 || len(themes) == 0 {
		return "", nil
	}
	if n < len(themes) {
		themes = themes[:n]
	}

	var buf bytes.Buffer
	if err := EncodeThemes(&buf, themes); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
