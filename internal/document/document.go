// Package document holds the in-memory representation the engine consumes:
// the text lines and detected tables of one already-decoded report. Building
// it from raw PDF bytes is the collaborator in pdf.go; the extraction engine
// itself never touches file formats.
package document

import (
	"regexp"
	"strings"
)

// Table is one detected tabular region: rows of cell strings.
type Table [][]string

// Document is the engine's input boundary for a single report.
type Document struct {
	Lines  []string
	Tables []Table
}

var (
	reCRLF       = regexp.MustCompile(`\r\n?`)
	reTabs       = regexp.MustCompile(`\t+`)
	reMultiBlank = regexp.MustCompile(`\n{3,}`)
	reCellSplit  = regexp.MustCompile(` {2,}|\t+`)
)

// NormalizeText collapses noisy whitespace from PDF text extraction.
// Conservative: keeps line breaks and the multi-space runs that separate
// table columns; collapses >2 newlines into a single blank line.
func NormalizeText(s string) string {
	if s == "" {
		return s
	}
	s = reCRLF.ReplaceAllString(s, "\n")
	s = reTabs.ReplaceAllString(s, "  ")
	s = reMultiBlank.ReplaceAllString(s, "\n\n")
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// SplitCells splits one text line into table cells. Pipe-delimited rows win;
// otherwise runs of two or more spaces act as column separators.
func SplitCells(line string) []string {
	var parts []string
	if strings.Contains(line, "|") {
		parts = strings.Split(line, "|")
	} else {
		parts = reCellSplit.Split(line, -1)
	}
	cells := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			cells = append(cells, p)
		}
	}
	return cells
}

// FromText builds a Document from plain report text: every non-empty line
// becomes a Line, and consecutive multi-cell lines are grouped into Tables.
// Useful for tests and for callers that already hold extracted text.
func FromText(text string) *Document {
	doc := &Document{}
	var current Table
	flush := func() {
		// A single multi-cell line is prose with odd spacing, not a table.
		if len(current) >= 2 {
			doc.Tables = append(doc.Tables, current)
		}
		current = nil
	}
	for _, line := range strings.Split(NormalizeText(text), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			flush()
			continue
		}
		doc.Lines = append(doc.Lines, trimmed)
		if cells := SplitCells(line); len(cells) >= 2 {
			current = append(current, cells)
		} else {
			flush()
		}
	}
	flush()
	return doc
}
