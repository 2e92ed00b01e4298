package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/qa-dash/metrics-engine/internal/document"
	"github.com/qa-dash/metrics-engine/internal/export"
	"github.com/qa-dash/metrics-engine/internal/metrics"
	"github.com/qa-dash/metrics-engine/internal/summary"
)

// Result carries everything produced for one report file.
type Result struct {
	ReportID uuid.UUID
	Record   *metrics.Record
	KPIs     metrics.KPIs
	CSVPath  string
	XLSXPath string
	Summary  string
}

// Processor coordinates parse (PDF → document) then extract (document →
// record), KPI derivation, exports, and the optional AI summary for one
// file. The summarizer may be nil; its absence or failure never affects the
// record.
type Processor struct {
	logger     *slog.Logger
	pipe       *Pipeline
	exporter   *export.Service
	summarizer *summary.Client
	outDir     string
}

func NewProcessor(logger *slog.Logger, pipe *Pipeline, exporter *export.Service, summarizer *summary.Client, outDir string) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{logger: logger, pipe: pipe, exporter: exporter, summarizer: summarizer, outDir: outDir}
}

// ProcessFile runs one PDF report through the full pipeline. Exports are
// written next to outDir under the report's base name.
func (p *Processor) ProcessFile(ctx context.Context, path string) (*Result, error) {
	start := time.Now()
	res := &Result{ReportID: uuid.New()}

	data, err := os.ReadFile(path)
	if err != nil {
		return res, fmt.Errorf("read report: %w", err)
	}

	doc, err := document.FromPDF(data)
	if err != nil {
		p.logger.Error("processor.parse.failed", "report_id", res.ReportID, "path", path, "err", err)
		return res, err
	}
	p.logger.Debug("processor.parse.ok",
		"report_id", res.ReportID,
		"path", path,
		"lines", len(doc.Lines),
		"tables", len(doc.Tables),
	)

	rec, err := p.pipe.Extract(doc)
	if err != nil {
		p.logger.Error("processor.extract.failed", "report_id", res.ReportID, "path", path, "err", err)
		return res, err
	}
	res.Record = rec
	res.KPIs = metrics.ComputeKPIs(rec)

	if p.exporter != nil {
		if err := p.writeExports(res, path); err != nil {
			return res, err
		}
	}

	if p.summarizer != nil {
		text, err := p.summarizer.Generate(ctx, rec, res.KPIs)
		if err != nil {
			// Optional collaborator: log and move on with a valid record.
			p.logger.Warn("processor.summary.failed", "report_id", res.ReportID, "err", err)
		} else {
			res.Summary = text
		}
	}

	p.logger.Info("processor.report.ok",
		"report_id", res.ReportID,
		"path", path,
		"total", rec.Total(),
		"execution_percent", res.KPIs.ExecutionPercent,
		"success_percent", res.KPIs.SuccessPercent,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return res, nil
}

func (p *Processor) writeExports(res *Result, path string) error {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	csvBytes, err := p.exporter.RecordCSV(res.Record)
	if err != nil {
		return fmt.Errorf("render csv: %w", err)
	}
	res.CSVPath = filepath.Join(p.outDir, base+"_metrics.csv")
	if err := os.WriteFile(res.CSVPath, csvBytes, 0o644); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}

	xlsxBytes, err := p.exporter.RecordXLSX(res.Record, res.KPIs)
	if err != nil {
		return fmt.Errorf("render xlsx: %w", err)
	}
	res.XLSXPath = filepath.Join(p.outDir, base+"_metrics.xlsx")
	if err := os.WriteFile(res.XLSXPath, xlsxBytes, 0o644); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return nil
}
