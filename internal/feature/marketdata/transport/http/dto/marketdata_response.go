// Package dto はmarketdataフィーチャーのレスポンスDTOを定義します。
package dto

import (
	"encoding/json"
	"time"
)

// TradeResponse は最新取引のレスポンスDTOです。
// 上流の短縮キー（p, t, s）は公開せず、記述的なフィールド名のみを返します。
type TradeResponse struct {
	Price     float64   `json:"price"`     // 約定価格
	Timestamp time.Time `json:"timestamp"` // 約定時刻
	Volume    int64     `json:"volume"`    // 約定数量
}

// BarsResponse はバーデータのレスポンスDTOです。
type BarsResponse struct {
	Symbol    string                     `json:"symbol"`
	StartDate time.Time                  `json:"start_date"`
	EndDate   time.Time                  `json:"end_date"`
	Timeframe string                     `json:"timeframe"`
	Bars      map[string]json.RawMessage `json:"bars"`
}

// MarketStatusResponse は市場時計のレスポンスDTOです。
type MarketStatusResponse struct {
	IsOpen    bool      `json:"is_open"`    // 現在開場中か
	NextOpen  time.Time `json:"next_open"`  // 次回の開場時刻
	NextClose time.Time `json:"next_close"` // 次回の閉場時刻
}
