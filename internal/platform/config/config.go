// Package config loads process configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	// DefaultTradingBaseURL is the live trading/asset API endpoint.
	DefaultTradingBaseURL = "https://api.alpaca.markets"
	// PaperTradingBaseURL is the paper trading endpoint, selected automatically
	// for paper API keys (prefix "PK").
	PaperTradingBaseURL = "https://paper-api.alpaca.markets"
	// DefaultDataBaseURL is the historical market data endpoint.
	DefaultDataBaseURL = "https://data.alpaca.markets"
)

// Config holds all process-level configuration. Immutable after Load.
type Config struct {
	AlpacaAPIKey    string        // Alpaca API key ID
	AlpacaAPISecret string        // Alpaca API secret
	AccessKeyDigest string        // SHA-256 hex digest of the valid client access key
	TradingBaseURL  string        // trading/asset API base URL
	DataBaseURL     string        // market data API base URL
	Port            string        // HTTP listen port
	Timeout         time.Duration // per upstream call timeout
}

// Load reads configuration from the environment. It returns an error naming
// every missing required variable so the process can fail fast at startup.
func Load() (Config, error) {
	cfg := Config{
		AlpacaAPIKey:    os.Getenv("ALPACA_API_KEY"),
		AlpacaAPISecret: os.Getenv("ALPACA_API_SECRET"),
		AccessKeyDigest: os.Getenv("ACCESS_KEY_HASH"),
		Port:            os.Getenv("PORT"),
		Timeout:         10 * time.Second,
	}

	var missing []string
	if cfg.AlpacaAPIKey == "" {
		missing = append(missing, "ALPACA_API_KEY")
	}
	if cfg.AlpacaAPISecret == "" {
		missing = append(missing, "ALPACA_API_SECRET")
	}
	if cfg.AccessKeyDigest == "" {
		missing = append(missing, "ACCESS_KEY_HASH")
	}
	if len(missing) > 0 {
		return Config{}, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	// Paper trading keys start with "PK", live keys start with "AK".
	cfg.TradingBaseURL = DefaultTradingBaseURL
	if strings.HasPrefix(cfg.AlpacaAPIKey, "PK") {
		cfg.TradingBaseURL = PaperTradingBaseURL
	}
	if s := os.Getenv("APCA_API_BASE_URL"); s != "" {
		cfg.TradingBaseURL = s
	}

	cfg.DataBaseURL = DefaultDataBaseURL
	if s := os.Getenv("APCA_API_DATA_URL"); s != "" {
		cfg.DataBaseURL = s
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	return cfg, nil
}
