// Package entity defines the domain models for the marketdata feature.
package entity

import "time"

// Trade represents the latest trade for a stock symbol, translated from the
// upstream short-key form (p, t, s) into descriptive fields.
type Trade struct {
	Price     float64   // Trade price
	Timestamp time.Time // Trade time, timezone-aware
	Volume    int64     // Trade size
}
