package summary

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qa-dash/metrics-engine/constants"
	"github.com/qa-dash/metrics-engine/internal/common"
	"github.com/qa-dash/metrics-engine/internal/metrics"
)

func testRecord() (*metrics.Record, metrics.KPIs) {
	rec := metrics.NewRecord(map[constants.StatusCategory]int{
		constants.StatusPassed:      10,
		constants.StatusFailed:      2,
		constants.StatusBlocked:     1,
		constants.StatusNotExecuted: 3,
	}, []string{"extraction path: TABLE"})
	return rec, metrics.ComputeKPIs(rec)
}

func TestBuildPrompt(t *testing.T) {
	rec, kpis := testRecord()
	prompt := BuildPrompt(rec, kpis)

	assert.Contains(t, prompt, "Total test cases: 16")
	assert.Contains(t, prompt, "Passed cases: 10")
	assert.Contains(t, prompt, "Execution rate: 81.2%")
	assert.Contains(t, prompt, "Success rate: 76.9%")
	assert.Contains(t, prompt, "Blocked: 1 cases")
	assert.NotContains(t, prompt, "Unmapped", "zero categories stay out of the distribution")
}

func TestClientGenerate(t *testing.T) {
	var gotAuth string
	var gotReq generateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		_ = json.NewEncoder(w).Encode(generateResponse{Text: "all good"})
	}))
	defer srv.Close()

	client := NewClient(common.SummaryConfig{
		Endpoint: srv.URL,
		APIKey:   "secret",
		Model:    "gemini-1.5-flash",
		Timeout:  5 * time.Second,
	}, nil)

	rec, kpis := testRecord()
	text, err := client.Generate(context.Background(), rec, kpis)
	require.NoError(t, err)
	assert.Equal(t, "all good", text)
	assert.Equal(t, "Bearer secret", gotAuth)
	assert.Equal(t, "gemini-1.5-flash", gotReq.Model)
	assert.Contains(t, gotReq.Prompt, "Total test cases: 16")
}

func TestClientGenerateNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(common.SummaryConfig{Endpoint: srv.URL, Timeout: 5 * time.Second}, nil)
	rec, kpis := testRecord()
	_, err := client.Generate(context.Background(), rec, kpis)
	assert.Error(t, err)
}

func TestClientGenerateEmptyText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(generateResponse{})
	}))
	defer srv.Close()

	client := NewClient(common.SummaryConfig{Endpoint: srv.URL, Timeout: 5 * time.Second}, nil)
	rec, kpis := testRecord()
	_, err := client.Generate(context.Background(), rec, kpis)
	assert.Error(t, err)
}
