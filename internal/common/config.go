package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Normalizer NormalizerConfig
	Export     ExportConfig
	Summary    SummaryConfig
	Batch      BatchConfig
}

// NormalizerConfig holds label-normalization configuration
type NormalizerConfig struct {
	// SynonymsPath points at an external JSON synonym table. Empty means
	// the embedded default table.
	SynonymsPath string
}

// ExportConfig holds export-related configuration
type ExportConfig struct {
	OutputDir string
}

// SummaryConfig holds AI-summary configuration
type SummaryConfig struct {
	Endpoint string
	APIKey   string
	Model    string
	Timeout  time.Duration
}

// BatchConfig holds batch-processing configuration
type BatchConfig struct {
	Workers       int
	QueueSize     int
	ReportTimeout time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Normalizer: NormalizerConfig{
			SynonymsPath: getEnv("QA_SYNONYMS_PATH", ""),
		},
		Export: ExportConfig{
			OutputDir: getEnv("QA_EXPORT_DIR", "."),
		},
		Summary: SummaryConfig{
			Endpoint: getEnv("QA_SUMMARY_ENDPOINT", ""),
			APIKey:   getEnv("QA_SUMMARY_API_KEY", ""),
			Model:    getEnv("QA_SUMMARY_MODEL", "gemini-1.5-flash"),
			Timeout:  getEnvAsDuration("QA_SUMMARY_TIMEOUT", 45*time.Second),
		},
		Batch: BatchConfig{
			Workers:       getEnvAsInt("QA_BATCH_WORKERS", 4),
			QueueSize:     getEnvAsInt("QA_BATCH_QUEUE_SIZE", 256),
			ReportTimeout: getEnvAsDuration("QA_BATCH_REPORT_TIMEOUT", time.Minute),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Batch.Workers <= 0 {
		return NewAppError("CONFIG_ERROR", "QA_BATCH_WORKERS must be positive", ErrInvalidInput)
	}
	if c.Batch.QueueSize <= 0 {
		return NewAppError("CONFIG_ERROR", "QA_BATCH_QUEUE_SIZE must be positive", ErrInvalidInput)
	}
	if c.Summary.APIKey != "" && c.Summary.Endpoint == "" {
		return NewAppError("CONFIG_ERROR", "QA_SUMMARY_ENDPOINT is required when an API key is set", ErrInvalidInput)
	}
	return nil
}
