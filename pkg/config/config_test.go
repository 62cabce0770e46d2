package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"TRONSCAN_API_KEY", "TRONSCAN_BASE_URL", "API_TIMEOUT", "REQUEST_DELAY_MS",
		"TX_PAGE_SIZE", "TRANSFER_PAGE_SIZE", "OUTPUT_DIR", "REPORT_GMT_OFFSET",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://apilist.tronscanapi.com/api", cfg.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.Equal(t, 300*time.Millisecond, cfg.RequestDelay)
	assert.Equal(t, 20, cfg.TxPageSize)
	assert.Equal(t, 50, cfg.TransferPageSize)
	assert.Equal(t, "wallet_analysis_output", cfg.OutputDir)
	assert.Equal(t, 7, cfg.GMTOffset)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("TRONSCAN_API_KEY", "key123")
	t.Setenv("API_TIMEOUT", "5")
	t.Setenv("REQUEST_DELAY_MS", "0")
	t.Setenv("REPORT_GMT_OFFSET", "0")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "key123", cfg.APIKey)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, time.Duration(0), cfg.RequestDelay)
	assert.Equal(t, 0, cfg.GMTOffset)
}

func TestLoadInvalidNumber(t *testing.T) {
	t.Setenv("API_TIMEOUT", "soon")
	_, err := Load()
	require.Error(t, err)
}

func TestReportLocation(t *testing.T) {
	cfg := &Config{GMTOffset: 7}
	ts := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC).In(cfg.ReportLocation())
	assert.Equal(t, "2021-01-01 07:00", ts.Format("2006-01-02 15:04"))
}
