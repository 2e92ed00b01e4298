package summary

import (
	"fmt"
	"strings"

	"github.com/qa-dash/metrics-engine/constants"
	"github.com/qa-dash/metrics-engine/internal/metrics"
)

// BuildPrompt composes the generation prompt for a Teams-ready QA summary:
// the KPI headline numbers followed by the per-status distribution.
func BuildPrompt(rec *metrics.Record, kpis metrics.KPIs) string {
	var b strings.Builder
	b.WriteString("Based on the following QA test-execution metrics, write a professional, ")
	b.WriteString("clear and concise summary for posting on Microsoft Teams.\n\n")
	b.WriteString("Formatting rules:\n")
	b.WriteString("- Use relevant emojis to make the post scannable.\n")
	b.WriteString("- Bold key figures using Markdown double asterisks.\n")
	b.WriteString("- Short, objective sentences; lead with the totals.\n\n")

	b.WriteString("Input data:\n")
	b.WriteString(fmt.Sprintf("- Total test cases: %d\n", rec.Total()))
	b.WriteString(fmt.Sprintf("- Passed cases: %d\n", rec.Count(constants.StatusPassed)))
	b.WriteString(fmt.Sprintf("- Execution rate: %.1f%%\n", kpis.ExecutionPercent))
	b.WriteString(fmt.Sprintf("- Success rate: %.1f%%\n", kpis.SuccessPercent))

	b.WriteString("\nStatus distribution:\n")
	for _, cat := range constants.Categories() {
		if n := rec.Count(cat); n > 0 {
			b.WriteString(fmt.Sprintf("- %s: %d cases\n", cat.Display(), n))
		}
	}

	if warnings := rec.Warnings(); len(warnings) > 0 {
		b.WriteString("\nExtraction caveats (mention only if relevant):\n")
		for _, w := range warnings {
			b.WriteString("- ")
			b.WriteString(w)
			b.WriteString("\n")
		}
	}
	return b.String()
}
