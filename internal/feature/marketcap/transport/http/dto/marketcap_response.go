// Package dto defines response DTOs for the marketcap feature.
package dto

import "time"

// MarketCapResponse is the JSON body of the market-cap endpoint.
type MarketCapResponse struct {
	Symbol    string    `json:"symbol"`
	MarketCap float64   `json:"market_cap"`
	Currency  string    `json:"currency"`
	Timestamp time.Time `json:"timestamp"`
}
