package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/omzthemes"
)

// Ensure LoggingThemeWriter implements omzthemes.ThemeWriter.
var _ omzthemes.ThemeWriter = (*LoggingThemeWriter)(nil)

// LoggingThemeWriter wraps a ThemeWriter with logging.
type LoggingThemeWriter struct {
	next   omzthemes.ThemeWriter
	logger *slog.Logger
}

// NewLoggingThemeWriter creates a new LoggingThemeWriter.
func NewLoggingThemeWriter(next omzthemes.ThemeWriter, logger *slog.Logger) *LoggingThemeWriter {
	return &LoggingThemeWriter{next: next, logger: logger}
}

// WriteThemes delegates to the wrapped writer and logs the operation.
func (w *LoggingThemeWriter) WriteThemes(ctx context.Context, themes []*omzthemes.Theme) (err error) {
	defer func(begin time.Time) {
		w.logger.Info("write themes",
			"count", len(themes),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteThemes(ctx, themes)
}
