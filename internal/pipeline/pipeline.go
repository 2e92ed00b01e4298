// Package pipeline coordinates extraction: tables first, text fallback,
// then normalization and aggregation into a single metrics record.
package pipeline

import (
	"fmt"
	"log/slog"

	"github.com/qa-dash/metrics-engine/constants"
	"github.com/qa-dash/metrics-engine/internal/common"
	"github.com/qa-dash/metrics-engine/internal/document"
	"github.com/qa-dash/metrics-engine/internal/extract"
	"github.com/qa-dash/metrics-engine/internal/metrics"
	"github.com/qa-dash/metrics-engine/internal/normalize"
)

// Pipeline is the engine's single public entry point. It holds no per-call
// state, so one Pipeline may serve concurrent documents without locking.
type Pipeline struct {
	table  *normalize.Table
	logger *slog.Logger
}

func New(table *normalize.Table, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{table: table, logger: logger}
}

// Extract produces the metrics record for one document. Table extraction is
// authoritative when it yields anything; the text path runs only as
// fallback, never mixed in, so one test case is never counted twice from
// two representations of the same data. When both paths come up empty the
// document carries no extractable data and ErrNoDataFound is returned.
func (p *Pipeline) Extract(doc *document.Document) (*metrics.Record, error) {
	obs, skipped := extract.FromTables(doc)
	source := extract.SourceTable
	if len(obs) == 0 {
		obs = extract.FromText(doc, p.table)
		source = extract.SourceText
	}
	if len(obs) == 0 {
		p.logger.Warn("pipeline.extract.no_data", "lines", len(doc.Lines), "tables", len(doc.Tables))
		return nil, common.ErrNoDataFound
	}

	var warnings []string
	if skipped > 0 {
		warnings = append(warnings, fmt.Sprintf("skipped %d table row(s) with malformed counts", skipped))
	}

	counts := make(map[constants.StatusCategory]int)
	merges := make(map[constants.StatusCategory]int)
	for _, o := range obs {
		cat := p.table.Normalize(o.Label)
		counts[cat] += o.Count
		merges[cat]++
		if cat == constants.StatusUnmapped {
			warnings = append(warnings, fmt.Sprintf("unmapped status label %q (count %d)", o.Label, o.Count))
		}
	}
	for _, cat := range constants.Categories() {
		if merges[cat] > 1 {
			warnings = append(warnings, fmt.Sprintf("merged %d entries for %s (counts summed)", merges[cat], cat.Display()))
		}
	}
	warnings = append(warnings, fmt.Sprintf("extraction path: %s", source))

	rec := metrics.NewRecord(counts, warnings)
	p.logger.Info("pipeline.extract.ok",
		"source", string(source),
		"observations", len(obs),
		"total", rec.Total(),
		"unmapped", rec.Count(constants.StatusUnmapped),
		"warnings", len(rec.Warnings()),
	)
	return rec, nil
}
