package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	bluemondaylib "github.com/microcosm-cc/bluemonday"
	"github.com/quanghuy1242/docser"
	docbluemonday "github.com/quanghuy1242/docser/bluemonday"
	docgoquery "github.com/quanghuy1242/docser/goquery"
	"github.com/quanghuy1242/docser/htmltomarkdown"
	docslog "github.com/quanghuy1242/docser/slog"
	"golang.org/x/sync/errgroup"
)

// CLI defines the command-line interface.
type CLI struct {
	Paths []string `arg:"" optional:"" help:"HTML files to process. Reads stdin when empty."`

	BaseURL     string `help:"Base URL for resolving relative links and images." name:"base-url"`
	Lang        string `help:"Declared content language (BCP 47). Auto-detected when empty."`
	Format      string `help:"Output format." enum:"html,markdown,text" default:"html"`
	Concurrency int    `help:"Number of files processed in parallel." default:"4"`
	KeepClassID bool   `help:"Retain class and id attributes in output." name:"keep-class-id"`
	Verbose     bool   `short:"v" help:"Log extraction provenance to stderr."`
}

// Run executes the CLI with the given arguments.
func Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docser"),
		kong.Description("Extract main content from rendered HTML, removing boilerplate."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}
	if _, err := parser.Parse(args); err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	cfg := docser.DefaultConfig()
	cfg.KeepClassID = cli.KeepClassID
	if err := cfg.Validate(); err != nil {
		return err
	}

	var extractor docser.Extractor = docgoquery.NewExtractorWithConfig(
		cfg,
		docbluemonday.NewSanitizerWithConfig(cfg, logger),
	)
	if cli.Verbose {
		extractor = docslog.NewLoggingExtractor(extractor, logger)
	}

	meta := docser.Meta{SourceURL: cli.BaseURL, Language: cli.Lang}

	if len(cli.Paths) == 0 {
		raw, err := io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		out, err := process(extractor, string(raw), meta, cli.Format)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, out)
		return nil
	}

	// Extraction is CPU-bound and per-call independent, so files fan out
	// across a bounded worker group; output order follows argument order.
	outputs := make([]string, len(cli.Paths))
	errs := make([]error, len(cli.Paths))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(cli.Concurrency)
	for i, path := range cli.Paths {
		g.Go(func() error {
			raw, err := os.ReadFile(path)
			if err != nil {
				errs[i] = err
				return nil
			}
			out, err := process(extractor, string(raw), meta, cli.Format)
			if err != nil {
				errs[i] = fmt.Errorf("%s: %w", path, err)
				return nil
			}
			outputs[i] = out
			return nil
		})
	}
	_ = g.Wait()

	var failed int
	for i, path := range cli.Paths {
		if errs[i] != nil {
			fmt.Fprintln(stderr, errs[i])
			failed++
			continue
		}
		if len(cli.Paths) > 1 {
			fmt.Fprintf(stdout, "==> %s <==\n", path)
		}
		fmt.Fprintln(stdout, outputs[i])
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d inputs failed", failed, len(cli.Paths))
	}
	return nil
}

// process runs one extraction and renders it in the requested format.
func process(extractor docser.Extractor, raw string, meta docser.Meta, format string) (string, error) {
	result, err := extractor.Extract(raw, meta)
	if err != nil {
		return "", err
	}

	switch format {
	case "markdown":
		return htmltomarkdown.NewConverter().Convert(result.Fragment)
	case "text":
		text := bluemondaylib.StripTagsPolicy().Sanitize(result.Fragment)
		return strings.TrimSpace(text), nil
	default:
		return result.Fragment, nil
	}
}
