// Package metrics defines the engine's output record and the KPI
// derivations over it.
package metrics

import (
	"encoding/json"

	"github.com/qa-dash/metrics-engine/constants"
)

// Record is the engine's sole output: normalized status counters for one
// processed report. It is immutable once produced; recomputation always
// starts fresh from the source document. Counts always carries every
// category explicitly, so Total equals the sum over all five.
type Record struct {
	counts   map[constants.StatusCategory]int
	total    int
	warnings []string
}

// NewRecord assembles a Record, filling absent categories with explicit
// zeros and computing the total.
func NewRecord(counts map[constants.StatusCategory]int, warnings []string) *Record {
	r := &Record{
		counts:   make(map[constants.StatusCategory]int, len(constants.Categories())),
		warnings: append(make([]string, 0, len(warnings)), warnings...),
	}
	for _, cat := range constants.Categories() {
		n := counts[cat]
		r.counts[cat] = n
		r.total += n
	}
	return r
}

// Count returns the counter for one category.
func (r *Record) Count(cat constants.StatusCategory) int {
	return r.counts[cat]
}

// Counts returns a copy of the full counter map.
func (r *Record) Counts() map[constants.StatusCategory]int {
	out := make(map[constants.StatusCategory]int, len(r.counts))
	for k, v := range r.counts {
		out[k] = v
	}
	return out
}

// Total is the sum of all category counts, Unmapped included.
func (r *Record) Total() int {
	return r.total
}

// Warnings returns the ordered non-fatal conditions accumulated while the
// record was built (unmapped labels, merged duplicates, skipped rows, the
// extraction path used).
func (r *Record) Warnings() []string {
	return append([]string(nil), r.warnings...)
}

// MarshalJSON renders the record with stable category order.
func (r *Record) MarshalJSON() ([]byte, error) {
	counts := make(map[string]int, len(r.counts))
	for cat, n := range r.counts {
		counts[string(cat)] = n
	}
	return json.Marshal(struct {
		Counts   map[string]int `json:"counts"`
		Total    int            `json:"total"`
		Warnings []string       `json:"warnings"`
	}{Counts: counts, Total: r.total, Warnings: r.warnings})
}
