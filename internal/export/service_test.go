package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/qa-dash/metrics-engine/constants"
	"github.com/qa-dash/metrics-engine/internal/metrics"
)

func testRecord() *metrics.Record {
	return metrics.NewRecord(map[constants.StatusCategory]int{
		constants.StatusPassed: 12,
		constants.StatusFailed: 3,
	}, []string{"extraction path: TEXT"})
}

func TestRecordCSVShape(t *testing.T) {
	svc := NewService(nil)

	got, err := svc.RecordCSV(testRecord())
	require.NoError(t, err)

	want := "Status,Count\n" +
		"Passed,12\n" +
		"Failed,3\n" +
		"Blocked,0\n" +
		"Not Executed,0\n" +
		"Unmapped,0\n" +
		"Total,15\n"
	assert.Equal(t, want, string(got))
}

func TestRecordXLSX(t *testing.T) {
	svc := NewService(nil)
	rec := testRecord()

	got, err := svc.RecordXLSX(rec, metrics.ComputeKPIs(rec))
	require.NoError(t, err)
	require.NotEmpty(t, got)

	f, err := excelize.OpenReader(bytes.NewReader(got))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	header, err := f.GetCellValue("Summary", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Status", header)

	passed, err := f.GetCellValue("Summary", "B2")
	require.NoError(t, err)
	assert.Equal(t, "12", passed)

	total, err := f.GetCellValue("Summary", "B7")
	require.NoError(t, err)
	assert.Equal(t, "15", total)
}
