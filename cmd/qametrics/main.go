package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/qa-dash/metrics-engine/internal/common"
	"github.com/qa-dash/metrics-engine/internal/export"
	"github.com/qa-dash/metrics-engine/internal/metrics"
	"github.com/qa-dash/metrics-engine/internal/normalize"
	"github.com/qa-dash/metrics-engine/internal/pipeline"
	"github.com/qa-dash/metrics-engine/internal/summary"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		file      = flag.String("file", "", "PDF report to process (required)")
		out       = flag.String("out", "", "directory for CSV/XLSX exports (optional, defaults to QA_EXPORT_DIR)")
		noExport  = flag.Bool("no-export", false, "skip CSV/XLSX exports")
		summarize = flag.Bool("summarize", false, "request an AI summary (needs QA_SUMMARY_* env)")
		verbose   = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *file == "" {
		printError("Error: --file is required\n")
		os.Exit(1)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	ctx := context.Background()
	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	if *out != "" {
		cfg.Export.OutputDir = *out
	}

	table, err := normalize.LoadTable(cfg.Normalizer.SynonymsPath)
	if err != nil {
		logger.Error("failed to load synonym table", "path", cfg.Normalizer.SynonymsPath, "error", err)
		os.Exit(1)
	}

	// Summary client is optional (graceful if missing)
	var summarizer *summary.Client
	if *summarize {
		if cfg.Summary.APIKey == "" {
			logger.Warn("summary API key not configured, AI summary will be skipped")
		} else {
			summarizer = summary.NewClient(cfg.Summary, logger)
			logger.Info("summary client initialized", "model", cfg.Summary.Model)
		}
	}

	var exporter *export.Service
	if !*noExport {
		exporter = export.NewService(logger)
	}

	pipe := pipeline.New(table, logger)
	processor := pipeline.NewProcessor(logger, pipe, exporter, summarizer, cfg.Export.OutputDir)

	res, err := processor.ProcessFile(ctx, *file)
	if err != nil {
		logger.Error("failed to process report", "path", *file, "error", err)
		os.Exit(1)
	}

	output := struct {
		ReportID string          `json:"report_id"`
		Record   *metrics.Record `json:"record"`
		KPIs     metrics.KPIs    `json:"kpis"`
		CSVPath  string          `json:"csv_path,omitempty"`
		XLSXPath string          `json:"xlsx_path,omitempty"`
		Summary  string          `json:"summary,omitempty"`
	}{
		ReportID: res.ReportID.String(),
		Record:   res.Record,
		KPIs:     res.KPIs,
		CSVPath:  res.CSVPath,
		XLSXPath: res.XLSXPath,
		Summary:  res.Summary,
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(output); err != nil {
		logger.Error("failed to encode output", "error", err)
		os.Exit(1)
	}
}
