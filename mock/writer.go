package mock

import (
	"context"

	"github.com/fwojciec/omzthemes"
)

var _ omzthemes.ThemeWriter = (*ThemeWriter)(nil)

// ThemeWriter is a mock implementation of omzthemes.ThemeWriter.
type ThemeWriter struct {
	WriteThemesFn func(ctx context.Context, themes []*omzthemes.Theme) error
}

func (w *ThemeWriter) WriteThemes(ctx context.Context, themes []*omzthemes.Theme) error {
	return w.WriteThemesFn(ctx, themes)
}
