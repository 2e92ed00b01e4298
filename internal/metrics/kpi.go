package metrics

import "github.com/qa-dash/metrics-engine/constants"

// KPIs are the derived percentage metrics for one record.
type KPIs struct {
	// ExecutionPercent is the share of total cases that were actually run.
	ExecutionPercent float64 `json:"execution_percent"`
	// SuccessPercent is the share of executed cases that passed.
	SuccessPercent float64 `json:"success_percent"`
}

// ComputeKPIs derives percentages from a record. Pure and total: an empty or
// fully-unexecuted report is a valid, displayable state, so zero
// denominators degrade to 0 instead of failing.
func ComputeKPIs(r *Record) KPIs {
	total := r.Total()
	executed := total - r.Count(constants.StatusNotExecuted)

	var k KPIs
	if total > 0 {
		k.ExecutionPercent = 100 * float64(executed) / float64(total)
	}
	if executed > 0 {
		k.SuccessPercent = 100 * float64(r.Count(constants.StatusPassed)) / float64(executed)
	}
	return k
}
