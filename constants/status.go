package constants

// StatusCategory is the canonical outcome class every raw status label from
// a report normalizes into.
type StatusCategory string

// Stable values (exported in records and exports).
const (
	StatusPassed      StatusCategory = "PASSED"
	StatusFailed      StatusCategory = "FAILED"
	StatusBlocked     StatusCategory = "BLOCKED"
	StatusNotExecuted StatusCategory = "NOT_EXECUTED" // present in the report but never run
	StatusUnmapped    StatusCategory = "UNMAPPED"     // label had no synonym mapping
)

// Categories returns every category in canonical display/export order.
func Categories() []StatusCategory {
	return []StatusCategory{
		StatusPassed,
		StatusFailed,
		StatusBlocked,
		StatusNotExecuted,
		StatusUnmapped,
	}
}

// Display returns the human-readable label used in exports and summaries.
func (c StatusCategory) Display() string {
	switch c {
	case StatusPassed:
		return "Passed"
	case StatusFailed:
		return "Failed"
	case StatusBlocked:
		return "Blocked"
	case StatusNotExecuted:
		return "Not Executed"
	case StatusUnmapped:
		return "Unmapped"
	default:
		return string(c)
	}
}

// Valid reports whether c is one of the closed set of categories.
func (c StatusCategory) Valid() bool {
	switch c {
	case StatusPassed, StatusFailed, StatusBlocked, StatusNotExecuted, StatusUnmapped:
		return true
	}
	return false
}
