package main

import (
	"context"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/qa-dash/metrics-engine/internal/async"
	"github.com/qa-dash/metrics-engine/internal/common"
	"github.com/qa-dash/metrics-engine/internal/export"
	"github.com/qa-dash/metrics-engine/internal/normalize"
	"github.com/qa-dash/metrics-engine/internal/pipeline"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		dir = flag.String("dir", "", "directory of PDF reports to process (required)")
		out = flag.String("out", "", "output directory for exports (optional, defaults to --dir)")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}
	if *out == "" {
		*out = *dir
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()
	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	table, err := normalize.LoadTable(cfg.Normalizer.SynonymsPath)
	if err != nil {
		logger.Error("failed to load synonym table", "path", cfg.Normalizer.SynonymsPath, "error", err)
		os.Exit(1)
	}

	pipe := pipeline.New(table, logger)
	exporter := export.NewService(logger)
	processor := pipeline.NewProcessor(logger, pipe, exporter, nil, *out)

	queue := async.NewProcessorQueue(processor, logger,
		async.WithWorkers(cfg.Batch.Workers),
		async.WithQueueSize(cfg.Batch.QueueSize),
		async.WithReportTimeout(cfg.Batch.ReportTimeout),
	)

	logger.Info("scanning for reports", "dir", *dir)
	scanned := 0
	err = filepath.WalkDir(*dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".pdf") {
			return nil
		}
		scanned++
		return queue.Enqueue(ctx, async.Job{Path: path, SubmittedAt: time.Now()})
	})
	if err != nil {
		logger.Error("failed to scan directory", "dir", *dir, "error", err)
		os.Exit(1)
	}
	if scanned == 0 {
		logger.Warn("no PDF reports found", "dir", *dir)
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Minute)
	defer cancel()
	queue.Shutdown(shutdownCtx)

	processed, failed := queue.Stats()
	logger.Info("batch processing complete",
		"scanned", scanned,
		"processed", processed,
		"failures", failed,
		"out", *out,
	)
	if failed > 0 {
		os.Exit(1)
	}
}
