package entity

import (
	"encoding/json"
	"time"
)

// BarSeries は1銘柄分のバーデータと、エコーバックするリクエストパラメータを
// まとめたものです。Barsの中身は上流のレスポンスを加工せずそのまま保持します。
type BarSeries struct {
	Symbol    string
	Start     time.Time
	End       time.Time
	Timeframe string // リクエストで指定された時間足ラベル
	Bars      map[string]json.RawMessage
}
