package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// PriceSource selects which price provider backs an analysis run.
type PriceSource string

const (
	SourceTable PriceSource = "table" // fixed in-memory price table
	SourceLive  PriceSource = "live"  // Alpha Vantage with table fallback
	SourceStore PriceSource = "store" // local history store
)

// Config holds application configuration
type Config struct {
	DataDir         string
	HistoryDir      string
	AlphaVantageKey string
	AlphaVantageURL string
	PriceSource     PriceSource
	Watchlist       []string
	SyncSchedule    string
	HistoryDays     int
	LogLevel        string
	PrettyLogs      bool
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		DataDir:         getEnv("DATA_DIR", "./data"),
		HistoryDir:      getEnv("HISTORY_DIR", "./data/history"),
		AlphaVantageKey: getEnv("ALPHA_VANTAGE_API_KEY", ""),
		AlphaVantageURL: getEnv("ALPHA_VANTAGE_URL", "https://www.alphavantage.co/query"),
		PriceSource:     PriceSource(getEnv("PRICE_SOURCE", string(SourceTable))),
		Watchlist:       getEnvAsList("WATCHLIST", []string{"AAPL", "MSFT", "SPY", "QQQ"}),
		SyncSchedule:    getEnv("SYNC_SCHEDULE", "0 18 * * MON-FRI"),
		HistoryDays:     getEnvAsInt("HISTORY_DAYS", 30),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		PrettyLogs:      getEnvAsBool("PRETTY_LOGS", true),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if required configuration is present
func (c *Config) Validate() error {
	switch c.PriceSource {
	case SourceTable, SourceLive, SourceStore:
	default:
		return fmt.Errorf("PRICE_SOURCE must be one of table, live, store, got %q", c.PriceSource)
	}

	if c.PriceSource == SourceLive && c.AlphaVantageKey == "" {
		return fmt.Errorf("ALPHA_VANTAGE_API_KEY is required when PRICE_SOURCE=live")
	}

	if c.HistoryDays < 2 {
		return fmt.Errorf("HISTORY_DAYS must be at least 2, got %d", c.HistoryDays)
	}

	return nil
}

// Helper functions
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

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var out []string
	for _, part := range strings.Split(value, ",") {
		part = strings.ToUpper(strings.TrimSpace(part))
		if part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
