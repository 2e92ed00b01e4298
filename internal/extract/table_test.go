package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/qa-dash/metrics-engine/internal/document"
)

func TestFromTablesStatusTotalHeader(t *testing.T) {
	doc := &document.Document{
		Tables: []document.Table{{
			{"Status", "Total"},
			{"Passed", "10"},
			{"Failed", "2"},
		}},
	}

	obs, skipped := FromTables(doc)
	assert.Equal(t, 0, skipped)
	assert.Equal(t, []RawObservation{
		{Label: "Passed", Count: 10, Source: SourceTable},
		{Label: "Failed", Count: 2, Source: SourceTable},
	}, obs)
}

func TestFromTablesLocalizedHeaders(t *testing.T) {
	doc := &document.Document{
		Tables: []document.Table{{
			{"Situação", "Qtd"},
			{"Passou", "7"},
		}},
	}

	obs, skipped := FromTables(doc)
	assert.Equal(t, 0, skipped)
	assert.Len(t, obs, 1)
	assert.Equal(t, "Passou", obs[0].Label)
	assert.Equal(t, 7, obs[0].Count)
}

func TestFromTablesHeaderNotFirstRow(t *testing.T) {
	doc := &document.Document{
		Tables: []document.Table{{
			{"Execution Report", "2024-01-10"},
			{"Status", "Count"},
			{"Blocked", "3"},
		}},
	}

	obs, _ := FromTables(doc)
	assert.Len(t, obs, 1)
	assert.Equal(t, "Blocked", obs[0].Label)
}

func TestFromTablesSkipsMalformedCounts(t *testing.T) {
	doc := &document.Document{
		Tables: []document.Table{{
			{"Status", "Total"},
			{"Passed", "10"},
			{"Failed", "two"},
			{"Blocked", "-1"},
			{"", "4"},
		}},
	}

	obs, skipped := FromTables(doc)
	assert.Len(t, obs, 1)
	assert.Equal(t, 3, skipped)
}

func TestFromTablesSkipsRepeatedHeaderRows(t *testing.T) {
	doc := &document.Document{
		Tables: []document.Table{{
			{"Status", "Total"},
			{"Passed", "10"},
			{"Status", "Total"}, // table continued on next page
			{"Failed", "2"},
		}},
	}

	obs, skipped := FromTables(doc)
	assert.Equal(t, 0, skipped)
	assert.Len(t, obs, 2)
}

func TestFromTablesNoMatchingHeader(t *testing.T) {
	doc := &document.Document{
		Tables: []document.Table{{
			{"Name", "Date"},
			{"CT01", "2024-01-10"},
		}},
	}

	obs, skipped := FromTables(doc)
	assert.Empty(t, obs)
	assert.Equal(t, 0, skipped)
}

func TestFromTablesExtraColumns(t *testing.T) {
	doc := &document.Document{
		Tables: []document.Table{{
			{"Suite", "Status", "Comment", "Total"},
			{"ECPU-213", "Passed", "looks good", "5"},
		}},
	}

	obs, _ := FromTables(doc)
	assert.Equal(t, []RawObservation{{Label: "Passed", Count: 5, Source: SourceTable}}, obs)
}
