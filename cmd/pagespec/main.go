package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pagespec"
	"github.com/fwojciec/pagespec/analyze"
	"github.com/fwojciec/pagespec/fs"
	"github.com/fwojciec/pagespec/goquery"
	pagespechttp "github.com/fwojciec/pagespec/http"
	"github.com/fwojciec/pagespec/htmltomarkdown"
	"github.com/fwojciec/pagespec/readability"
	"github.com/fwojciec/pagespec/rod"
	pagespecslog "github.com/fwojciec/pagespec/slog"
	"github.com/fwojciec/pagespec/sqlite"
	"github.com/fwojciec/pagespec/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Service for end-to-end testing.
	AnalysisService pagespec.AnalysisService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pagespec"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'pagespec --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set PAGESPEC_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.AnalysisService = sqlite.NewAnalysisService(m.DB)
	deps.DB = m.DB
	deps.Analyses = m.AnalysisService

	logger := slog.New(slog.NewTextHandler(stderr, nil))

	if cmd == "analyze" {
		opts := []rod.Option{rod.WithNavigationTimeout(cli.Analyze.Timeout)}
		if cli.Analyze.Stealth {
			opts = append(opts, rod.WithStealth())
		}

		browser, err := rod.NewBrowser(opts...)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		defer browser.Close()

		deps.Browser = browser
		deps.Analyzer = pagespecslog.NewLoggingAnalyzer(analyze.NewAnalyzer(browser), logger)
		deps.Writer = fs.NewWriter(cli.Analyze.Path)

		if cli.Analyze.Probe {
			deps.Prober = pagespechttp.NewProber()
		}
		if cli.Analyze.Content {
			if cli.Analyze.Extractor == "readability" {
				deps.Extractor = readability.NewExtractor()
			} else {
				deps.Extractor = trafilatura.NewExtractor()
			}
			deps.Converter = htmltomarkdown.NewConverter()
		}
	}

	if cmd == "preview" {
		fetcher := pagespechttp.NewFetcher()
		defer fetcher.Close()

		deps.Fetcher = fetcher
		deps.Scanner = goquery.NewScanner()
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("PAGESPEC_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "pagespec.db"
	}
	return filepath.Join(home, ".pagespec", "pagespec.db")
}
