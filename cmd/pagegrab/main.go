package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pagegrab"
	"github.com/fwojciec/pagegrab/etree"
	"github.com/fwojciec/pagegrab/goquery"
	"github.com/fwojciec/pagegrab/htmltomarkdown"
	grabhttp "github.com/fwojciec/pagegrab/http"
	"github.com/fwojciec/pagegrab/re2"
	"github.com/fwojciec/pagegrab/readability"
	"github.com/fwojciec/pagegrab/scrape"
	grabslog "github.com/fwojciec/pagegrab/slog"
	"github.com/fwojciec/pagegrab/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Fetcher overrides the HTTP fetcher. Set before calling Run().
	Fetcher pagegrab.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments. Failures are reported on
// stderr before being returned.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	err := m.run(ctx, args, stdout, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", errorMessage(err))
	}
	return err
}

func (m *Main) run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pagegrab"),
		kong.Description("Fetch a web page and extract its text, links, images or tables"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	format, err := pagegrab.ParseFormat(cli.Format)
	if err != nil {
		return err
	}
	encode, err := encoderFor(cli.Output)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	locators, err := tableLocators(cli.Strategies, logger)
	if err != nil {
		return err
	}
	extractor, err := articleExtractor(cli.Extractor)
	if err != nil {
		return err
	}

	// Wire dependencies
	fetcher := m.Fetcher
	if fetcher == nil {
		opts := []grabhttp.Option{grabhttp.WithTimeout(cli.Timeout)}
		if cli.UserAgent != "" {
			opts = append(opts, grabhttp.WithUserAgent(cli.UserAgent))
		}
		fetcher = grabhttp.NewFetcher(opts...)
	}
	fetcher = grabslog.NewLoggingFetcher(fetcher, logger)
	defer fetcher.Close()

	s := &scrape.Scraper{
		Fetcher:     fetcher,
		Parser:      goquery.NewParser(),
		Tables:      pagegrab.NewLocatorCascade(locators...),
		Converter:   htmltomarkdown.NewConverter(),
		Extractor:   extractor,
		RetryDelays: retryDelays(cli.Retries),
		Log: func(format string, args ...any) {
			logger.Warn(fmt.Sprintf(format, args...))
		},
	}

	result, err := s.Scrape(ctx, cli.URL, format)
	if err != nil {
		return err
	}

	return encode(stdout, result)
}

// errorMessage returns the message of application errors and the full text
// of anything else, such as transport failures.
func errorMessage(err error) string {
	if pagegrab.ErrorCode(err) == pagegrab.EINTERNAL {
		return err.Error()
	}
	return pagegrab.ErrorMessage(err)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Format     string        `short:"f" default:"all" help:"What to extract: text, links, images, tables, raw, markdown, article or all"`
	Output     string        `short:"o" default:"json" enum:"json,yaml,table" help:"Output encoding: json, yaml or table"`
	Timeout    time.Duration `short:"t" default:"10s" help:"Fetch timeout"`
	UserAgent  string        `name:"user-agent" short:"u" help:"User-Agent header sent with the request"`
	Strategies []string      `short:"s" default:"dom,xpath,regex" help:"Table extraction strategies in priority order"`
	Extractor  string        `short:"e" default:"trafilatura" enum:"trafilatura,readability" help:"Main content extractor for the article format"`
	Retries    int           `short:"r" default:"3" help:"Retries for transient fetch failures"`
	Verbose    bool          `short:"v" help:"Log fetch and extraction details to stderr"`
	URL        string        `arg:"" required:"" help:"Page URL to fetch"`
}

// tableLocators builds the locator cascade entries named by strategies.
func tableLocators(strategies []string, logger *slog.Logger) ([]pagegrab.TableLocator, error) {
	var locators []pagegrab.TableLocator
	for _, name := range strategies {
		var loc pagegrab.TableLocator
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "dom":
			loc = goquery.NewTableLocator()
		case "xpath":
			loc = etree.NewTableLocator()
		case "regex":
			loc = re2.NewTableLocator()
		default:
			return nil, pagegrab.Errorf(pagegrab.EINVALID, "unknown table strategy %q", name)
		}
		locators = append(locators, grabslog.NewLoggingTableLocator(loc, logger))
	}
	return locators, nil
}

func articleExtractor(name string) (pagegrab.Extractor, error) {
	switch name {
	case "", "trafilatura":
		return trafilatura.NewExtractor(), nil
	case "readability":
		return readability.NewExtractor(), nil
	}
	return nil, pagegrab.Errorf(pagegrab.EINVALID, "unknown extractor %q", name)
}

// retryDelays returns n doubling delays starting at one second.
func retryDelays(n int) []time.Duration {
	delays := []time.Duration{}
	d := time.Second
	for i := 0; i < n; i++ {
		delays = append(delays, d)
		d *= 2
	}
	return delays
}
