package main_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/omzthemes"
	main "github.com/fwojciec/omzthemes/cmd/omzthemes"
	"github.com/fwojciec/omzthemes/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDeps(stdout, stderr *bytes.Buffer) *main.Dependencies {
	return &main.Dependencies{
		Ctx:    context.Background(),
		Stdout: stdout,
		Stderr: stderr,
		Fetcher: &mock.Fetcher{
			FetchFn: func(_ context.Context, _ string) (string, error) {
				return "<html></html>", nil
			},
		},
	}
}

func TestScrapeCmd_Run(t *testing.T) {
	t.Parallel()

	themes := []*omzthemes.Theme{
		{Name: "agnoster", PreviewImageURL: "https://i.imgur.com/1.png"},
		{Name: "bira", PreviewImageURL: "https://i.imgur.com/2.png"},
		{Name: "candy", PreviewImageURL: "https://i.imgur.com/3.png"},
	}

	t.Run("passes extracted themes to writer", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		deps := newTestDeps(&stdout, &stderr)
		deps.Extractor = &mock.Extractor{
			ExtractFn: func(html string) (*omzthemes.ExtractResult, error) {
				return &omzthemes.ExtractResult{Candidates: 3, Themes: themes}, nil
			},
		}
		var written []*omzthemes.Theme
		deps.Writer = &mock.ThemeWriter{
			WriteThemesFn: func(_ context.Context, got []*omzthemes.Theme) error {
				written = got
				return nil
			},
		}

		cmd := &main.ScrapeCmd{URL: main.DefaultURL, Output: "themes.json", Sample: 2}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, themes, written)
		out := stdout.String()
		assert.Contains(t, out, "Saved 3 themes to themes.json")
		assert.Contains(t, out, "Sample data (first 2 themes):")
		assert.Contains(t, out, `"bira"`)
		assert.NotContains(t, out, `"candy"`)
	})

	t.Run("returns write error", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		deps := newTestDeps(&stdout, &stderr)
		deps.Extractor = &mock.Extractor{
			ExtractFn: func(html string) (*omzthemes.ExtractResult, error) {
				return &omzthemes.ExtractResult{Candidates: 3, Themes: themes}, nil
			},
		}
		deps.Writer = &mock.ThemeWriter{
			WriteThemesFn: func(_ context.Context, _ []*omzthemes.Theme) error {
				return errors.New("permission denied")
			},
		}

		cmd := &main.ScrapeCmd{URL: main.DefaultURL, Output: "/readonly/themes.json", Sample: 5}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error writing /readonly/themes.json: permission denied")
		assert.NotContains(t, stdout.String(), "Saved")
	})

	t.Run("does not write when extraction fails", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		deps := newTestDeps(&stdout, &stderr)
		deps.Extractor = &mock.Extractor{
			ExtractFn: func(html string) (*omzthemes.ExtractResult, error) {
				return nil, omzthemes.Errorf(omzthemes.EINVALID, "failed to parse HTML")
			},
		}
		writeCalled := false
		deps.Writer = &mock.ThemeWriter{
			WriteThemesFn: func(_ context.Context, _ []*omzthemes.Theme) error {
				writeCalled = true
				return nil
			},
		}

		cmd := &main.ScrapeCmd{URL: main.DefaultURL, Output: "themes.json"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.False(t, writeCalled)
		assert.Contains(t, stderr.String(), "error parsing page: failed to parse HTML")
	})

	t.Run("warns when fallback selection was used", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		deps := newTestDeps(&stdout, &stderr)
		deps.Extractor = &mock.Extractor{
			ExtractFn: func(html string) (*omzthemes.ExtractResult, error) {
				return &omzthemes.ExtractResult{Candidates: 3, Fallback: true, Themes: themes}, nil
			},
		}
		deps.Writer = &mock.ThemeWriter{
			WriteThemesFn: func(_ context.Context, _ []*omzthemes.Theme) error { return nil },
		}

		cmd := &main.ScrapeCmd{URL: main.DefaultURL, Output: "themes.json"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stderr.String(), "using all nested paragraphs")
	})
}
