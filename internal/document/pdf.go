package document

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Column breaks in -layout style output: fragments further apart than this
// (in points) are separated by a double space so SplitCells sees a cell
// boundary. Word breaks use a single space.
const (
	columnGapPt = 12.0
	wordGapPt   = 1.0
	rowTolPt    = 2.0
)

// FromPDF parses raw PDF bytes into a Document. Text is reassembled
// page-by-page from positioned fragments so that tabular regions keep their
// column alignment. The pdf library panics on some malformed files; panics
// are recovered and returned as errors.
func FromPDF(data []byte) (doc *Document, err error) {
	defer func() {
		if r := recover(); r != nil {
			doc = nil
			err = fmt.Errorf("malformed pdf: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		for _, line := range pageLines(page) {
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	doc = FromText(b.String())
	if len(doc.Lines) == 0 {
		return nil, fmt.Errorf("pdf contains no extractable text")
	}
	return doc, nil
}

// pageLines groups a page's text fragments into visual rows (by Y, top to
// bottom) and joins each row left to right, widening inter-column gaps.
func pageLines(page pdf.Page) []string {
	texts := page.Content().Text
	if len(texts) == 0 {
		return nil
	}

	sort.SliceStable(texts, func(i, j int) bool {
		if texts[i].Y != texts[j].Y {
			return texts[i].Y > texts[j].Y // PDF Y grows upward
		}
		return texts[i].X < texts[j].X
	})

	var lines []string
	var row []pdf.Text
	rowY := texts[0].Y
	flush := func() {
		if len(row) == 0 {
			return
		}
		lines = append(lines, joinRow(row))
		row = row[:0]
	}
	for _, t := range texts {
		if rowY-t.Y > rowTolPt {
			flush()
			rowY = t.Y
		}
		row = append(row, t)
	}
	flush()
	return lines
}

func joinRow(row []pdf.Text) string {
	var b strings.Builder
	var endX float64
	for i, t := range row {
		if i > 0 {
			switch gap := t.X - endX; {
			case gap > columnGapPt:
				b.WriteString("  ")
			case gap > wordGapPt:
				b.WriteString(" ")
			}
		}
		b.WriteString(t.S)
		endX = t.X + t.W
	}
	return b.String()
}
