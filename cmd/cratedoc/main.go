// Command cratedoc prints Rust crate documentation as Markdown.
//
// By default documentation is built locally with cargo doc; with --online
// the pre-rendered page is fetched from docs.rs instead.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/cratedoc"
	"github.com/fwojciec/cratedoc/cargo"
	"github.com/fwojciec/cratedoc/goquery"
	"github.com/fwojciec/cratedoc/htmltomarkdown"
	cratedochttp "github.com/fwojciec/cratedoc/http"
	cratedocslog "github.com/fwojciec/cratedoc/slog"
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

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("cratedoc"),
		kong.Description("View Rust crate documentation as Markdown in the terminal"),
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

	_, err = parser.Parse(args)
	if err != nil {
		return err
	}

	timeout := cli.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	// Wire the pipeline
	var fetcher cratedoc.Fetcher = cratedochttp.NewFetcher(cratedochttp.WithTimeout(timeout))

	buildOpts := []cargo.Option{}
	if cli.Verbose {
		buildOpts = append(buildOpts, cargo.WithOutput(stderr))
	}
	var builder cratedoc.Builder = cargo.NewBuilder(buildOpts...)

	if cli.Verbose {
		logger := slog.New(slog.NewTextHandler(stderr, nil))
		fetcher = cratedocslog.NewLoggingFetcher(fetcher, logger)
		builder = cratedocslog.NewLoggingBuilder(builder, logger)
	}
	defer fetcher.Close()
	defer builder.Close()

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Service: &cratedoc.Service{
			Fetcher:   fetcher,
			Builder:   builder,
			Extractor: goquery.NewExtractor(),
			Converter: htmltomarkdown.NewConverter(),
		},
	}

	cmd := &DocsCmd{
		Crate:  cli.Crate,
		Item:   cli.Item,
		Online: cli.Online,
	}

	return cmd.Run(deps)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Online  bool          `short:"o" help:"Fetch documentation from docs.rs instead of building locally"`
	Timeout time.Duration `short:"t" default:"10s" help:"Fetch timeout"`
	Verbose bool          `short:"v" help:"Log pipeline stages to stderr"`
	Crate   string        `arg:"" required:"" help:"Crate name to show documentation for"`
	Item    string        `arg:"" optional:"" help:"Item path within the crate (e.g. struct.Rope or de::struct.Error)"`
}
