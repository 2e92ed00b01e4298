package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/qa-dash/metrics-engine/internal/document"
)

// Two line shapes, tried in order: "Passed: 12" then "3 Failed". Labels are
// only accepted when the shared status vocabulary recognizes them; free text
// is expected to be mostly irrelevant and non-matching lines are ignored.
var (
	reLabelCount = regexp.MustCompile(`^(.+?)\s*:\s*(\d+)\s*$`)
	reCountLabel = regexp.MustCompile(`^(\d+)\s+(\D.*?)\s*$`)
)

// FromText scans the document's text lines for status keywords adjacent to
// numeric counts. At most one observation is taken per line. An empty result
// is a legitimate outcome, not a failure.
func FromText(doc *document.Document, vocab Vocabulary) []RawObservation {
	var obs []RawObservation
	for _, line := range doc.Lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if o, ok := matchLine(line, vocab); ok {
			obs = append(obs, o)
		}
	}
	return obs
}

func matchLine(line string, vocab Vocabulary) (RawObservation, bool) {
	if m := reLabelCount.FindStringSubmatch(line); m != nil {
		if label := strings.TrimSpace(m[1]); vocab.Matches(label) {
			if count, err := strconv.Atoi(m[2]); err == nil {
				return RawObservation{Label: label, Count: count, Source: SourceText}, true
			}
		}
	}
	if m := reCountLabel.FindStringSubmatch(line); m != nil {
		if label := strings.TrimSpace(m[2]); vocab.Matches(label) {
			if count, err := strconv.Atoi(m[1]); err == nil {
				return RawObservation{Label: label, Count: count, Source: SourceText}, true
			}
		}
	}
	return RawObservation{}, false
}
