package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/tenderscan"
	"github.com/fwojciec/tenderscan/extract"
)

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Input     string        `arg:"" required:"" help:"File of newline-delimited CIK identifiers"`
	Output    string        `short:"o" default:"tender_offer_data.csv" help:"CSV file to write records to"`
	DB        string        `help:"Also write records to this SQLite database"`
	OddLot    bool          `help:"Keep only filings whose submission text mentions an odd lot"`
	Limit     int           `short:"n" default:"5000" help:"Read at most this many lines of the input file (0 for all)"`
	Quote     string        `default:"${quote}" help:"String written around each CIK in the output (empty for none)"`
	Host      string        `default:"${host}" env:"TENDERSCAN_HOST" help:"EDGAR host"`
	UserAgent string        `default:"${user_agent}" env:"TENDERSCAN_USER_AGENT" help:"User-Agent sent to EDGAR; SEC asks for a name and contact email"`
	Timeout   time.Duration `short:"t" default:"10s" help:"Timeout per request (0 for none)"`
	Rate      float64       `default:"0" help:"Maximum requests per second (0 for unpaced)"`
	Verbose   bool          `short:"v" help:"Log every request to stderr"`
}

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Extractor *extract.Extractor
	Writers   []tenderscan.RecordWriter
}

// ExtractCmd runs a batch and writes its records.
type ExtractCmd struct {
	Input string
	Limit int
}
