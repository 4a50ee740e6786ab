package omzthemes

import "context"

// ThemeWriter persists the extracted catalog.
type ThemeWriter interface {
	// WriteThemes replaces the destination with the given themes.
	// An empty slice is written as an empty array, not skipped.
	WriteThemes(ctx context.Context, themes []*Theme) error
}
