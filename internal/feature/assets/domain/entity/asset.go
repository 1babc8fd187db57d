// Package entity defines the domain models for the assets feature.
package entity

// Suggestion is a single search result for a tradable asset.
type Suggestion struct {
	Symbol   string
	Name     string
	Exchange string
}

// ValidationResult describes a symbol that exists upstream and is tradable.
type ValidationResult struct {
	Valid    bool
	Symbol   string
	Name     string
	Exchange string
	Tradable bool
}
