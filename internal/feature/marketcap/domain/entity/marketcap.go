// Package entity defines the domain models for the marketcap feature.
package entity

import "time"

// MarketCapRecord represents the market capitalization of a symbol at the
// moment the service answered. Timestamp is generated by the service, not
// sourced from upstream.
type MarketCapRecord struct {
	Symbol    string    // Normalized ticker symbol
	MarketCap float64   // Market capitalization value
	Currency  string    // Currency code, "USD" when upstream omits it
	Timestamp time.Time // Response generation time (UTC)
}
