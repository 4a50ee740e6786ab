package slog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/fwojciec/omzthemes"
	"github.com/fwojciec/omzthemes/mock"
	omzslog "github.com/fwojciec/omzthemes/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("logs candidate and theme counts", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		want := &omzthemes.ExtractResult{
			Candidates: 4,
			Fallback:   true,
			Themes: []*omzthemes.Theme{
				{Name: "agnoster", PreviewImageURL: "https://i.imgur.com/a.png"},
			},
			Rejected: []omzthemes.Rejection{
				{Index: 1, Err: omzthemes.Errorf(omzthemes.EINVALID, "theme name required")},
			},
		}
		inner := &mock.Extractor{
			ExtractFn: func(html string) (*omzthemes.ExtractResult, error) {
				return want, nil
			},
		}

		extractor := omzslog.NewLoggingExtractor(inner, logger)
		result, err := extractor.Extract("<html></html>")

		require.NoError(t, err)
		assert.Equal(t, want, result)
		output := buf.String()
		assert.Contains(t, output, "msg=extract")
		assert.Contains(t, output, "candidates=4")
		assert.Contains(t, output, "fallback=true")
		assert.Contains(t, output, "themes=1")
		assert.Contains(t, output, "rejected=1")
		assert.NotContains(t, output, "candidate rejected")
	})

	t.Run("logs rejections at debug level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		inner := &mock.Extractor{
			ExtractFn: func(html string) (*omzthemes.ExtractResult, error) {
				return &omzthemes.ExtractResult{
					Candidates: 2,
					Themes:     []*omzthemes.Theme{},
					Rejected: []omzthemes.Rejection{
						{Index: 0, Name: "x", Err: omzthemes.Errorf(omzthemes.EINVALID, "theme name %q is malformed", "x")},
						{Index: 1, Name: "ys", Err: omzthemes.Errorf(omzthemes.ECONFLICT, "duplicate theme %q", "ys")},
					},
				}, nil
			},
		}

		extractor := omzslog.NewLoggingExtractor(inner, logger)
		_, err := extractor.Extract("<html></html>")

		require.NoError(t, err)
		output := buf.String()
		assert.Contains(t, output, "candidate rejected")
		assert.Contains(t, output, "index=0")
		assert.Contains(t, output, "malformed")
		assert.Contains(t, output, "index=1")
		assert.Contains(t, output, "duplicate theme")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Extractor{
			ExtractFn: func(html string) (*omzthemes.ExtractResult, error) {
				return nil, omzthemes.Errorf(omzthemes.ENOTFOUND, "content region not found")
			},
		}

		extractor := omzslog.NewLoggingExtractor(inner, logger)
		_, err := extractor.Extract("<html></html>")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "msg=extract")
		assert.Contains(t, output, "content region not found")
		assert.NotContains(t, output, "candidates=")
	})
}
