package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config carries the process-wide settings, loaded once at startup and
// passed to each component at construction.
type Config struct {
	APIKey           string
	BaseURL          string
	Timeout          time.Duration
	RequestDelay     time.Duration
	TxPageSize       int
	TransferPageSize int
	OutputDir        string
	GMTOffset        int
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		APIKey: os.Getenv("TRONSCAN_API_KEY"),
	}

	cfg.BaseURL = os.Getenv("TRONSCAN_BASE_URL")
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://apilist.tronscanapi.com/api"
	}

	timeoutSec, err := intEnv("API_TIMEOUT", 10)
	if err != nil {
		return nil, err
	}
	cfg.Timeout = time.Duration(timeoutSec) * time.Second

	delayMs, err := intEnv("REQUEST_DELAY_MS", 300)
	if err != nil {
		return nil, err
	}
	cfg.RequestDelay = time.Duration(delayMs) * time.Millisecond

	if cfg.TxPageSize, err = intEnv("TX_PAGE_SIZE", 20); err != nil {
		return nil, err
	}
	if cfg.TransferPageSize, err = intEnv("TRANSFER_PAGE_SIZE", 50); err != nil {
		return nil, err
	}
	if cfg.GMTOffset, err = intEnv("REPORT_GMT_OFFSET", 7); err != nil {
		return nil, err
	}

	cfg.OutputDir = os.Getenv("OUTPUT_DIR")
	if cfg.OutputDir == "" {
		cfg.OutputDir = "wallet_analysis_output"
	}

	return cfg, nil
}

// ReportLocation returns the fixed-offset timezone reports are rendered in.
func (c *Config) ReportLocation() *time.Location {
	return time.FixedZone(fmt.Sprintf("GMT%+d", c.GMTOffset), c.GMTOffset*3600)
}

func intEnv(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q", key, v)
	}
	return n, nil
}
