// Package export renders a metrics record for downstream consumers. It
// reads records read-only and never mutates them.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/qa-dash/metrics-engine/constants"
	"github.com/qa-dash/metrics-engine/internal/metrics"
)

// Service produces CSV and XLSX bytes for a metrics record.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// RecordCSV renders one Status,Count row per category in canonical order
// plus a trailing Total row.
func (s *Service) RecordCSV(rec *metrics.Record) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"Status", "Count"}); err != nil {
		return nil, fmt.Errorf("csv write: %w", err)
	}
	for _, cat := range constants.Categories() {
		if err := w.Write([]string{cat.Display(), strconv.Itoa(rec.Count(cat))}); err != nil {
			return nil, fmt.Errorf("csv write: %w", err)
		}
	}
	if err := w.Write([]string{"Total", strconv.Itoa(rec.Total())}); err != nil {
		return nil, fmt.Errorf("csv write: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("csv flush: %w", err)
	}
	return buf.Bytes(), nil
}

// RecordXLSX returns an XLSX workbook (as bytes) with the status counters,
// the derived KPIs, and any warnings the record carries.
func (s *Service) RecordXLSX(rec *metrics.Record, kpis metrics.KPIs) ([]byte, error) {
	start := time.Now()

	f := excelize.NewFile()
	const sheet = "Summary"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	write := func(col, row int, v any) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		_ = f.SetCellValue(sheet, cell, v)
	}

	write(1, 1, "Status")
	write(2, 1, "Count")
	row := 2
	for _, cat := range constants.Categories() {
		write(1, row, cat.Display())
		write(2, row, rec.Count(cat))
		row++
	}
	write(1, row, "Total")
	write(2, row, rec.Total())
	row += 2

	write(1, row, "Execution %")
	write(2, row, fmt.Sprintf("%.2f", kpis.ExecutionPercent))
	row++
	write(1, row, "Success %")
	write(2, row, fmt.Sprintf("%.2f", kpis.SuccessPercent))
	row += 2

	for i, warning := range rec.Warnings() {
		if i == 0 {
			write(1, row, "Warnings")
		}
		write(2, row, warning)
		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 16) // status / kpi labels
	_ = f.SetColWidth(sheet, "B", "B", 60) // counts and warning text

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"total", rec.Total(),
		"warnings", len(rec.Warnings()),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
