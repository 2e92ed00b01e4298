package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	assert.Equal(t, "", cfg.Normalizer.SynonymsPath)
	assert.Equal(t, ".", cfg.Export.OutputDir)
	assert.Equal(t, 4, cfg.Batch.Workers)
	assert.Equal(t, 256, cfg.Batch.QueueSize)
	assert.Equal(t, 45*time.Second, cfg.Summary.Timeout)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("QA_SYNONYMS_PATH", "/etc/qa/synonyms.json")
	t.Setenv("QA_BATCH_WORKERS", "8")
	t.Setenv("QA_SUMMARY_TIMEOUT", "10s")
	t.Setenv("QA_BATCH_QUEUE_SIZE", "not-a-number")

	cfg := LoadConfig()
	assert.Equal(t, "/etc/qa/synonyms.json", cfg.Normalizer.SynonymsPath)
	assert.Equal(t, 8, cfg.Batch.Workers)
	assert.Equal(t, 10*time.Second, cfg.Summary.Timeout)
	assert.Equal(t, 256, cfg.Batch.QueueSize, "unparseable values fall back to defaults")
}

func TestValidateRejectsBadConfig(t *testing.T) {
	cfg := LoadConfig()
	cfg.Batch.Workers = 0
	assert.Error(t, cfg.Validate())

	cfg = LoadConfig()
	cfg.Summary.APIKey = "key-without-endpoint"
	assert.Error(t, cfg.Validate())
}
