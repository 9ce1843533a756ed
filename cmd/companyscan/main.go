package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"

	"github.com/fwojciec/companyscan"
	"github.com/fwojciec/companyscan/fs"
	"github.com/fwojciec/companyscan/goquery"
	scanhttp "github.com/fwojciec/companyscan/http"
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
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	URLs           []string      `arg:"" optional:"" help:"URLs or local HTML file paths to process."`
	URLsFile       string        `name:"urls-file" default:"input.txt" help:"Text file with one URL per line."`
	Out            string        `default:"company_names.csv" help:"Output CSV (single 'company_name' column by default)."`
	Report         string        `help:"Optional per-URL report CSV (url, domain, extractor, names_count, note)."`
	RPS            float64       `name:"rps" default:"1" help:"Max requests per second per domain."`
	Concurrency    int           `short:"c" default:"3" help:"Concurrent fetch limit."`
	Timeout        time.Duration `short:"t" default:"25s" help:"Fetch timeout per page."`
	KeepDuplicates bool          `help:"Keep duplicate names (default removes them)."`
	SourceColumn   bool          `help:"Include 'source' and 'from_url' columns in the output."`
	Verbose        bool          `short:"v" help:"Enable debug logging."`
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("companyscan"),
		kong.Description("Extract company names from job-listing pages to CSV"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
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

	level := zerolog.InfoLevel
	if cli.Verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: stderr, TimeFormat: time.RFC3339}).
		Level(level).With().Timestamp().Logger()

	targets, err := CollectTargets(cli.URLs, cli.URLsFile)
	if err != nil {
		return err
	}
	if len(targets) == 0 {
		return companyscan.Errorf(companyscan.EINVALID,
			"no URLs found; put them in %s or pass them as arguments", cli.URLsFile)
	}

	// Wire dependencies
	deps := &Dependencies{
		Logger: logger,
		Fetcher: NewCompositeFetcher(
			scanhttp.NewFetcher(scanhttp.WithTimeout(cli.Timeout)),
			fs.NewFetcher(),
		),
		Extractor: goquery.NewDispatcher(),
		Limiter:   scanhttp.NewDomainLimiter(cli.RPS),
	}

	cmd := &RunCmd{
		Targets:        targets,
		Out:            cli.Out,
		Report:         cli.Report,
		Concurrency:    cli.Concurrency,
		KeepDuplicates: cli.KeepDuplicates,
		SourceColumn:   cli.SourceColumn,
	}
	return cmd.Run(ctx, deps)
}
