package main

import (
	"context"
	"fmt"
	"io"

	"github.com/fwojciec/omzthemes"
	"github.com/fwojciec/omzthemes/fs"
	"github.com/fwojciec/omzthemes/goquery"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Fetcher   omzthemes.Fetcher
	Extractor omzthemes.Extractor
	Writer    omzthemes.ThemeWriter
}

// ScrapeCmd fetches the themes page, extracts the catalog and saves it.
type ScrapeCmd struct {
	URL      string
	Output   string
	Sample   int
	SaveHTML string
}

const failedMessage = "Scraping failed. No output file generated."

// Run executes the scrape. The output file is only touched once the page
// has been fetched and parsed; an empty catalog is still written.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	fmt.Fprintf(deps.Stdout, "Fetching themes from: %s\n", c.URL)

	html, err := deps.Fetcher.Fetch(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error fetching %s: %s\n", c.URL, omzthemes.ErrorMessage(err))
		fmt.Fprintln(deps.Stderr, failedMessage)
		return err
	}
	fmt.Fprintln(deps.Stdout, "Successfully fetched page content.")

	if c.SaveHTML != "" {
		if err := fs.WriteFile(c.SaveHTML, []byte(html)); err != nil {
			fmt.Fprintf(deps.Stderr, "warning: could not save page HTML to %s: %v\n", c.SaveHTML, err)
		} else {
			fmt.Fprintf(deps.Stdout, "Saved page HTML to %s\n", c.SaveHTML)
		}
	}

	result, err := deps.Extractor.Extract(html)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error parsing page: %s\n", omzthemes.ErrorMessage(err))
		fmt.Fprintln(deps.Stderr, failedMessage)
		return err
	}

	if result.Fallback && result.Candidates > 0 {
		fmt.Fprintf(deps.Stderr, "warning: no paragraphs directly inside %s, using all nested paragraphs\n", goquery.ContentSelector)
	}
	fmt.Fprintf(deps.Stdout, "Found %d potential theme containers.\n", result.Candidates)
	fmt.Fprintf(deps.Stdout, "Successfully processed %d unique themes.\n", len(result.Themes))

	if result.StructureDrift() {
		fmt.Fprintf(deps.Stderr, "warning: found %d potential theme containers but extracted no themes; the page structure may have changed\n", result.Candidates)
	}
	if len(result.Themes) == 0 {
		fmt.Fprintln(deps.Stderr, "warning: no theme data was extracted")
	}

	if err := deps.Writer.WriteThemes(deps.Ctx, result.Themes); err != nil {
		fmt.Fprintf(deps.Stderr, "error writing %s: %v\n", c.Output, err)
		return err
	}
	fmt.Fprintf(deps.Stdout, "Saved %d themes to %s\n", len(result.Themes), c.Output)

	sample, err := omzthemes.FormatSample(result.Themes, c.Sample)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error formatting sample: %v\n", err)
		return err
	}
	if sample != "" {
		fmt.Fprintf(deps.Stdout, "\nSample data (first %d themes):\n%s\n", min(c.Sample, len(result.Themes)), sample)
	}

	return nil
}
