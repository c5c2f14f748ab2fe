package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	iofs "io/fs"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/tenderscan"
	"github.com/fwojciec/tenderscan/edgar"
	"github.com/fwojciec/tenderscan/extract"
	"github.com/fwojciec/tenderscan/fs"
	"github.com/fwojciec/tenderscan/goquery"
	tshttp "github.com/fwojciec/tenderscan/http"
	tsslog "github.com/fwojciec/tenderscan/slog"
	"github.com/fwojciec/tenderscan/sqlite"
	"github.com/joho/godotenv"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := loadEnv(".env"); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadEnv loads environment variables from path if the file exists.
// Variables already set in the environment take precedence.
func loadEnv(path string) error {
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, iofs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("tenderscan"),
		kong.Description("Find SEC issuer tender offer filings (SC TO-I) for a list of CIKs"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Vars{
			"quote":      tenderscan.DefaultRecordFormat.IdentifierQuote,
			"host":       edgar.DefaultHost,
			"user_agent": tshttp.DefaultUserAgent,
		},
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

	_, err = parser.Parse(args)
	if err != nil {
		return err
	}

	if cli.Limit < 0 {
		return fmt.Errorf("limit must not be negative")
	}

	// Wire dependencies
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	httpFetcher := tshttp.NewFetcher(
		tshttp.WithTimeout(cli.Timeout),
		tshttp.WithUserAgent(cli.UserAgent),
		tshttp.WithRateLimit(cli.Rate),
	)
	defer httpFetcher.Close()

	var fetcher tenderscan.Fetcher = httpFetcher
	markup := goquery.NewParser()
	opts := []edgar.Option{edgar.WithHost(cli.Host)}

	var logger *slog.Logger
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
		fetcher = tsslog.NewLoggingFetcher(fetcher, logger)
	}

	var resolver tenderscan.IndexResolver = edgar.NewIndexResolver(fetcher, markup, opts...)
	var locator tenderscan.DocumentLocator = edgar.NewDocumentLocator(fetcher, markup, opts...)
	if logger != nil {
		resolver = tsslog.NewLoggingIndexResolver(resolver, logger)
		locator = tsslog.NewLoggingDocumentLocator(locator, logger)
	}

	deps.Extractor = &extract.Extractor{
		Resolver:       resolver,
		Locator:        locator,
		Fetcher:        fetcher,
		FilterByOddLot: cli.OddLot,
	}

	format := tenderscan.RecordFormat{IdentifierQuote: cli.Quote}
	deps.Writers = append(deps.Writers, fs.NewCSVWriter(cli.Output, format))

	if cli.DB != "" {
		db := sqlite.NewDB(cli.DB)
		if err := db.Open(); err != nil {
			return err
		}
		defer db.Close()
		deps.Writers = append(deps.Writers, sqlite.NewRecordWriter(db, format))
	}

	if logger != nil {
		for i, w := range deps.Writers {
			deps.Writers[i] = tsslog.NewLoggingRecordWriter(w, logger)
		}
	}

	cmd := &ExtractCmd{
		Input: cli.Input,
		Limit: cli.Limit,
	}

	return cmd.Run(deps)
}
