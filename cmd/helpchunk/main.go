package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/helpchunk"
	"github.com/fwojciec/helpchunk/crawl"
	"github.com/fwojciec/helpchunk/fs"
	"github.com/fwojciec/helpchunk/goquery"
	"github.com/fwojciec/helpchunk/htmltomarkdown"
	hchttp "github.com/fwojciec/helpchunk/http"
	hcslog "github.com/fwojciec/helpchunk/slog"
	"github.com/fwojciec/helpchunk/sqlite"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		m.Close()
		os.Exit(1)
	}
	m.Close()
}

// Main represents the program.
type Main struct {
	// SQLite database used by the optional chunk store.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
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
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("helpchunk"),
		kong.Description("Harvest help-center articles into heading-aligned text chunks"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Vars(vars()),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	logger, err := newLogger(stderr, cli.LogLevel, cli.LogJSON)
	if err != nil {
		return err
	}

	// Wire dependencies
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
	}

	limiter := crawl.NewDomainLimiter(cli.RPS)
	transport := hchttp.NewFetcher(
		hchttp.WithTimeout(cli.Timeout),
		hchttp.WithUserAgent(cli.UserAgent),
		hchttp.WithLimiter(limiter),
	)
	policy := crawl.RetryPolicy{
		MaxAttempts: cli.Attempts,
		Delay:       cli.RetryDelay,
	}
	deps.Fetcher = crawl.NewRetryFetcher(hcslog.NewLoggingFetcher(transport, logger), policy, logger)
	defer deps.Fetcher.Close()

	deps.Source = hcslog.NewLoggingURLSource(&crawl.Discoverer{
		Fetcher: deps.Fetcher,
		Parser:  goquery.NewNextDataParser(),
		Logger:  logger,
	}, logger)

	if !cli.Preview {
		sinks := []helpchunk.ChunkSink{
			hcslog.NewLoggingChunkSink(fs.NewChunkFile(cli.Output), cli.Output, logger),
		}
		if cli.DB != "" {
			m.DB = sqlite.NewDB(cli.DB)
			if err := m.DB.Open(); err != nil {
				fmt.Fprintf(stderr, "Hint: Set HELPCHUNK_DB to use a different database path\n")
				return fmt.Errorf("failed to open database at %q: %w", cli.DB, err)
			}
			sinks = append(sinks, hcslog.NewLoggingChunkSink(sqlite.NewChunkStore(m.DB), cli.DB, logger))
		}

		deps.Pipeline = &crawl.Pipeline{
			Source:       deps.Source,
			Fetcher:      deps.Fetcher,
			Extractor:    goquery.NewArticleExtractor(),
			Converter:    htmltomarkdown.NewConverter(),
			Sink:         helpchunk.MultiChunkSink(sinks...),
			MaxChunkSize: cli.MaxChunkSize,
			Delay:        cli.Delay,
			Logger:       logger,
		}
	}

	cmd := &HarvestCmd{
		URL:     cli.URL,
		Output:  cli.Output,
		Preview: cli.Preview,
	}

	return cmd.Run(deps)
}
