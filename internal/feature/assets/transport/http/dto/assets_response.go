// Package dto はassetsフィーチャーのレスポンスDTOを定義します。
package dto

// SuggestionItem は検索候補1件のレスポンスDTOです。
type SuggestionItem struct {
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Exchange string `json:"exchange"`
}

// SearchResponse は銘柄検索のレスポンスDTOです。
type SearchResponse struct {
	Suggestions []SuggestionItem `json:"suggestions"`
}

// ValidateResponse は銘柄検証のレスポンスDTOです。
type ValidateResponse struct {
	Valid    bool   `json:"valid"`
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Exchange string `json:"exchange"`
	Tradable bool   `json:"tradable"`
}
