package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/helpchunk"
	"github.com/fwojciec/helpchunk/crawl"
	hchttp "github.com/fwojciec/helpchunk/http"
)

// DefaultIndexURL is the help index harvested when no URL is given.
const DefaultIndexURL = "https://www.notion.so/help/reference"

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Fetcher  helpchunk.Fetcher
	Source   helpchunk.URLSource
	Pipeline *crawl.Pipeline
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	URL          string        `arg:"" optional:"" default:"${default_url}" help:"Help index URL to harvest (default: ${default})"`
	Output       string        `short:"o" default:"results.yaml" env:"HELPCHUNK_OUTPUT" help:"Chunk output file (YAML)"`
	DB           string        `name:"db" env:"HELPCHUNK_DB" help:"Also store chunks in this SQLite database"`
	Preview      bool          `short:"p" help:"List discovered document URLs without fetching them"`
	MaxChunkSize int           `default:"750" help:"Advisory chunk size in characters"`
	Delay        time.Duration `default:"1s" help:"Pause between documents"`
	Timeout      time.Duration `short:"t" default:"30s" help:"Timeout per request"`
	Attempts     int           `default:"3" help:"Fetch attempts per URL"`
	RetryDelay   time.Duration `default:"3s" help:"Pause between fetch attempts"`
	RPS          float64       `name:"rps" default:"2" help:"Requests per second per host (0 disables)"`
	UserAgent    string        `default:"${default_user_agent}" help:"User-Agent header"`
	LogLevel     string        `default:"info" enum:"debug,info,warn,error" help:"Log level (debug, info, warn, error)"`
	LogJSON      bool          `name:"log-json" help:"Write logs as JSON"`
}

// HarvestCmd handles the harvest operation.
type HarvestCmd struct {
	URL     string
	Output  string
	Preview bool
}

// vars are the interpolation variables for CLI defaults.
func vars() map[string]string {
	return map[string]string{
		"default_url":        DefaultIndexURL,
		"default_user_agent": hchttp.DefaultUserAgent,
	}
}
