// Package summary is the optional AI-summary collaborator: it turns a
// metrics record into a text prompt and asks a configured generation
// endpoint for a Teams-ready write-up. It only ever reads the record, and
// its failure never affects record correctness.
package summary

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/qa-dash/metrics-engine/internal/common"
	"github.com/qa-dash/metrics-engine/internal/metrics"
)

// Client posts summary prompts to a generation endpoint.
type Client struct {
	cfg    common.SummaryConfig
	http   *http.Client
	logger *slog.Logger
}

func NewClient(cfg common.SummaryConfig, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
}

type generateResponse struct {
	Text string `json:"text"`
}

// Generate requests a summary for the record and its KPIs.
func (c *Client) Generate(ctx context.Context, rec *metrics.Record, kpis metrics.KPIs) (string, error) {
	body := generateRequest{
		Model:  c.cfg.Model,
		Prompt: BuildPrompt(rec, kpis),
	}
	headers := map[string]string{
		"Authorization": "Bearer " + c.cfg.APIKey,
	}

	raw, _, err := SendJSON(ctx, c.http, c.cfg.Endpoint, body, headers, c.logger)
	if err != nil {
		return "", fmt.Errorf("summary request: %w", err)
	}

	var resp generateResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", fmt.Errorf("decode summary response: %w", err)
	}
	if resp.Text == "" {
		return "", fmt.Errorf("summary response contained no text")
	}
	return resp.Text, nil
}
