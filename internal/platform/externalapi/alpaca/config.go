// Package alpaca provides a client for the Alpaca market data and trading asset APIs.
package alpaca

import "time"

// Config holds configuration for the Alpaca API client.
type Config struct {
	APIKey         string        // APCA-API-KEY-ID header value
	APISecret      string        // APCA-API-SECRET-KEY header value
	TradingBaseURL string        // trading/asset API base URL (e.g. "https://api.alpaca.markets")
	DataBaseURL    string        // market data API base URL (e.g. "https://data.alpaca.markets")
	Timeout        time.Duration // HTTP request timeout
}
