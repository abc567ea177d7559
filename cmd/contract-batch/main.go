package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/ordersight/contracts-extractor/internal/common"
	"github.com/ordersight/contracts-extractor/internal/contract"
	"github.com/ordersight/contracts-extractor/internal/export"
	"github.com/ordersight/contracts-extractor/internal/extract"
	"github.com/ordersight/contracts-extractor/internal/ingest"
	"github.com/ordersight/contracts-extractor/internal/pdftext"
	"github.com/ordersight/contracts-extractor/internal/pipeline"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

type stringList []string

func (s *stringList) String() string { return strings.Join(*s, ",") }

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

func main() {
	// Parse CLI flags
	var pdfs stringList
	flag.Var(&pdfs, "pdf", "path to a PDF order form (repeatable; defaults to all PDFs in the current directory)")
	var (
		dir        = flag.String("dir", "", "directory to scan recursively for order forms")
		out        = flag.String("output", "", "output file path (default: contracts.csv)")
		format     = flag.String("format", "", "output format: csv or xlsx (default: inferred from output path)")
		configPath = flag.String("config", "", "optional YAML config file")
		watch      = flag.Bool("watch", false, "keep watching --dir and rewrite the output on new documents")
		verbose    = flag.Bool("verbose", false, "enable debug logging")
	)
	flag.Parse()

	// Layer config: env, then file, then flags.
	cfg := common.LoadConfig()
	if *configPath != "" {
		fc, err := common.LoadFileConfig(*configPath)
		if err != nil {
			printError("Error: %v\n", err)
			os.Exit(1)
		}
		cfg.Apply(fc)
		if *dir == "" {
			*dir = fc.Dir
		}
		if !*watch {
			*watch = fc.Watch
		}
	}
	if *out != "" {
		cfg.Output = *out
	}
	if *format != "" {
		cfg.Format = *format
	}
	if err := cfg.Validate(); err != nil {
		printError("Error: %v\n", err)
		os.Exit(1)
	}

	// Setup logger
	level := cfg.LogLevel
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	runID := uuid.New()
	logger.Info("starting run", "run_id", runID, "output", cfg.Output, "format", cfg.ResolveFormat())

	// Wire the pipeline
	extractor := pdftext.NewExtractor(logger)
	engine := extract.NewEngine(logger)
	processor := pipeline.NewProcessor(logger, extractor, engine)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	n, err := runBatch(ctx, processor, cfg, pdfs, *dir)
	if err != nil {
		printError("Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %d record(s) to %s\n", n, cfg.Output)

	if !*watch {
		return
	}
	if *dir == "" {
		printError("Error: --watch requires --dir\n")
		os.Exit(1)
	}

	evCh, errCh, err := ingest.StartWatcher(ctx, ingest.WatchConfig{
		Root:        *dir,
		AllowedExts: ingest.ExtSet(cfg.Exts),
		Debounce:    500 * time.Millisecond,
	}, logger)
	if err != nil {
		printError("Error: failed to start watcher: %v\n", err)
		os.Exit(1)
	}
	logger.Info("watching for new documents", "dir", *dir)

	for {
		select {
		case <-ctx.Done():
			return
		case path, ok := <-evCh:
			if !ok {
				return
			}
			logger.Info("document changed", "path", path)
			n, err := runBatch(ctx, processor, cfg, nil, *dir)
			if err != nil {
				// Keep watching; the next settled write may succeed.
				logger.Error("batch failed", "err", err)
				continue
			}
			fmt.Printf("Wrote %d record(s) to %s\n", n, cfg.Output)
		case werr, ok := <-errCh:
			if ok && werr != nil {
				logger.Error("watch error", "err", werr)
			}
		}
	}
}

// runBatch resolves inputs, processes each document in order, and writes the
// tabular output in one pass. Returns the number of records written.
func runBatch(ctx context.Context, processor *pipeline.Processor, cfg *common.Config, pdfs []string, dir string) (int, error) {
	paths, err := ingest.ResolveInputs(pdfs, dir, cfg.Exts)
	if err != nil {
		return 0, err
	}
	if len(paths) == 0 {
		return 0, common.NewAppError("NO_INPUT", "no PDF files found to process", common.ErrNoInput)
	}

	records := make([]*contract.Record, 0, len(paths))
	for _, path := range paths {
		rec, err := processor.ProcessFile(ctx, path)
		if err != nil {
			// One unreadable document aborts the whole batch.
			return 0, common.WrapError(err, fmt.Sprintf("process %s", path))
		}
		records = append(records, rec)
	}

	switch cfg.ResolveFormat() {
	case common.FormatXLSX:
		err = export.WriteXLSXFile(cfg.Output, records)
	default:
		err = export.WriteCSVFile(cfg.Output, records)
	}
	if err != nil {
		return 0, err
	}
	return len(records), nil
}
