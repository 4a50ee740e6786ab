package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/omzthemes"
	"github.com/fwojciec/omzthemes/fs"
	"github.com/fwojciec/omzthemes/goquery"
	omzhttp "github.com/fwojciec/omzthemes/http"
	omzslog "github.com/fwojciec/omzthemes/slog"
)

// DefaultURL is the wiki page listing the bundled themes.
const DefaultURL = "https://github.com/ohmyzsh/ohmyzsh/wiki/Themes"

func main() {
	ctx := context.Background()

	m := NewMain()

	// Run reports its own failures on stderr.
	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Fetcher overrides the page source. Set before calling Run() to run
	// without network access.
	Fetcher omzthemes.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments. Every failure is reported
// once on stderr before the error is returned.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("omzthemes"),
		kong.Description("Scrape the Oh My Zsh themes wiki into a JSON catalog"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Vars{
			"url":        DefaultURL,
			"base_url":   goquery.DefaultBaseURL,
			"output":     fs.DefaultOutputPath,
			"user_agent": omzhttp.DefaultUserAgent,
		},
	)
	if err != nil {
		err = fmt.Errorf("failed to create parser: %w", err)
		fmt.Fprintln(stderr, err)
		return err
	}

	if wantsHelp(args) {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		fmt.Fprintf(stderr, "omzthemes: %v\n", err)
		return err
	}

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	target := cli.URL
	fetcher := m.Fetcher
	if cli.Input != "" {
		target = cli.Input
		if fetcher == nil {
			fetcher = fs.NewFetcher()
		}
	}
	if fetcher == nil {
		fetcher = omzhttp.NewFetcher(
			omzhttp.WithTimeout(cli.Timeout),
			omzhttp.WithUserAgent(cli.UserAgent),
		)
	}
	defer fetcher.Close()

	deps.Fetcher = fetcher
	deps.Extractor = goquery.NewExtractor(goquery.WithBaseURL(cli.BaseURL))
	deps.Writer = fs.NewThemeWriter(cli.Output)

	if cli.Verbose {
		logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		deps.Fetcher = omzslog.NewLoggingFetcher(deps.Fetcher, logger)
		deps.Extractor = omzslog.NewLoggingExtractor(deps.Extractor, logger)
		deps.Writer = omzslog.NewLoggingThemeWriter(deps.Writer, logger)
	}

	cmd := &ScrapeCmd{
		URL:      target,
		Output:   cli.Output,
		Sample:   cli.Sample,
		SaveHTML: cli.SaveHTML,
	}

	return cmd.Run(deps)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	URL       string        `short:"u" default:"${url}" env:"OMZTHEMES_URL" help:"Wiki page listing the themes"`
	BaseURL   string        `default:"${base_url}" env:"OMZTHEMES_BASE_URL" help:"Origin used to resolve relative links"`
	Output    string        `short:"o" default:"${output}" env:"OMZTHEMES_OUTPUT" help:"Output JSON file"`
	Timeout   time.Duration `short:"t" default:"20s" env:"OMZTHEMES_TIMEOUT" help:"Fetch timeout"`
	UserAgent string        `default:"${user_agent}" env:"OMZTHEMES_USER_AGENT" help:"User-Agent header sent with the request"`
	Sample    int           `default:"5" help:"Number of themes to print after saving (0 disables)"`
	Input     string        `short:"i" help:"Read HTML from a local file instead of fetching the page"`
	SaveHTML  string        `name:"save-html" help:"Also save the fetched HTML to this file"`
	Verbose   bool          `short:"v" help:"Log fetch, extraction and write details to stderr"`
}

// wantsHelp reports whether the arguments ask for usage information.
func wantsHelp(args []string) bool {
	if len(args) == 1 && args[0] == "help" {
		return true
	}
	for _, arg := range args {
		if arg == "--help" || arg == "-h" {
			return true
		}
	}
	return false
}
