// Package extract pulls raw (label, count) observations out of a document,
// from structured tables when possible and from loose text otherwise. It
// performs no normalization and writes no warnings; the pipeline owns both.
package extract

// Source identifies which extraction path produced an observation.
type Source string

const (
	SourceTable Source = "TABLE"
	SourceText  Source = "TEXT"
)

// RawObservation is one (label, count) pair extracted from a document before
// normalization. Ephemeral: consumed immediately by the pipeline.
type RawObservation struct {
	Label  string
	Count  int
	Source Source
}

// Vocabulary is the shared status vocabulary the text extractor matches
// candidate labels against. Implemented by normalize.Table.
type Vocabulary interface {
	Matches(label string) bool
}
