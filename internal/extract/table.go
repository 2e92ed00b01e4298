package extract

import (
	"strconv"
	"strings"

	"github.com/qa-dash/metrics-engine/internal/document"
	"github.com/qa-dash/metrics-engine/internal/normalize"
)

// Header synonyms for the two columns the table extractor needs. Matched
// after folding, so "Situação" finds "situacao".
var (
	statusHeaders = []string{"status", "estado", "situacao", "resultado", "result", "outcome"}
	countHeaders  = []string{"total", "count", "qtd", "quantidade", "casos", "cases", "qty"}
)

// FromTables scans every detected table for a Status/Total-style header pair
// and emits one observation per data row under it. Rows whose count cell
// does not parse as a non-negative integer are skipped; the skip count is
// returned for the pipeline to turn into a warning. No matching header
// anywhere yields an empty slice, which is the fallback signal, not an
// error.
func FromTables(doc *document.Document) ([]RawObservation, int) {
	var obs []RawObservation
	skipped := 0
	for _, table := range doc.Tables {
		headerIdx, statusCol, countCol, ok := findHeader(table)
		if !ok {
			continue
		}
		for _, row := range table[headerIdx+1:] {
			if statusCol >= len(row) || countCol >= len(row) {
				skipped++
				continue
			}
			label := strings.TrimSpace(row[statusCol])
			if label == "" {
				skipped++
				continue
			}
			if isHeaderRow(row, statusCol, countCol) {
				// Repeated header, e.g. a table continued on the next page.
				continue
			}
			count, err := parseCount(row[countCol])
			if err != nil {
				skipped++
				continue
			}
			obs = append(obs, RawObservation{Label: label, Count: count, Source: SourceTable})
		}
	}
	return obs, skipped
}

// findHeader locates the first row holding both a status-like and a
// count-like column name, and returns their column indexes.
func findHeader(table document.Table) (rowIdx, statusCol, countCol int, ok bool) {
	for i, row := range table {
		statusCol, countCol = -1, -1
		for col, cell := range row {
			folded := normalize.Fold(cell)
			if statusCol < 0 && matchesAny(folded, statusHeaders) {
				statusCol = col
				continue
			}
			if countCol < 0 && matchesAny(folded, countHeaders) {
				countCol = col
			}
		}
		if statusCol >= 0 && countCol >= 0 {
			return i, statusCol, countCol, true
		}
	}
	return 0, 0, 0, false
}

func isHeaderRow(row []string, statusCol, countCol int) bool {
	return matchesAny(normalize.Fold(row[statusCol]), statusHeaders) &&
		matchesAny(normalize.Fold(row[countCol]), countHeaders)
}

func matchesAny(folded string, vocab []string) bool {
	for _, v := range vocab {
		if folded == v {
			return true
		}
	}
	return false
}

func parseCount(cell string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(cell))
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, strconv.ErrRange
	}
	return n, nil
}
