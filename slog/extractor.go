package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/omzthemes"
)

// Ensure LoggingExtractor implements omzthemes.Extractor.
var _ omzthemes.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging. Every rejected
// candidate block is logged at debug level with the reason.
type LoggingExtractor struct {
	next   omzthemes.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next omzthemes.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) Extract(html string) (result *omzthemes.ExtractResult, err error) {
	defer func(begin time.Time) {
		if err != nil {
			e.logger.Info("extract", "duration", time.Since(begin), "err", err)
			return
		}
		for _, r := range result.Rejected {
			e.logger.Debug("candidate rejected",
				"index", r.Index,
				"name", r.Name,
				"reason", omzthemes.ErrorMessage(r.Err),
			)
		}
		e.logger.Info("extract",
			"candidates", result.Candidates,
			"fallback", result.Fallback,
			"themes", len(result.Themes),
			"rejected", len(result.Rejected),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return e.next.Extract(html)
}
