package entity

import (
	"fmt"
	"strings"
)

// TimeframeUnit は時間足の基準単位です。
type TimeframeUnit string

// Supported timeframe base units.
const (
	UnitMinute TimeframeUnit = "Min"
	UnitHour   TimeframeUnit = "Hour"
	UnitDay    TimeframeUnit = "Day"
	UnitWeek   TimeframeUnit = "Week"
	UnitMonth  TimeframeUnit = "Month"
)

// Timeframe は時間足ラベルと(基準単位, 倍率)の対応を表す不変の値です。
// Multiplierは倍率付きの時間足（5Min, 15Min）のみ設定され、それ以外は0のままです。
type Timeframe struct {
	Label      string
	Unit       TimeframeUnit
	Multiplier int
}

// timeframes は受け付ける時間足の静的テーブルです。順序はエラーメッセージの
// 列挙順としてそのまま使われます。
var timeframes = []Timeframe{
	{Label: "1Min", Unit: UnitMinute},
	{Label: "5Min", Unit: UnitMinute, Multiplier: 5},
	{Label: "15Min", Unit: UnitMinute, Multiplier: 15},
	{Label: "1Hour", Unit: UnitHour},
	{Label: "1Day", Unit: UnitDay},
	{Label: "1Week", Unit: UnitWeek},
	{Label: "1Month", Unit: UnitMonth},
}

// ParseTimeframe はラベルを静的テーブルから検索します。
func ParseTimeframe(label string) (Timeframe, bool) {
	for _, tf := range timeframes {
		if tf.Label == label {
			return tf, true
		}
	}
	return Timeframe{}, false
}

// TimeframeLabels は有効な時間足ラベルをテーブル順で返します。
func TimeframeLabels() []string {
	labels := make([]string, 0, len(timeframes))
	for _, tf := range timeframes {
		labels = append(labels, tf.Label)
	}
	return labels
}

// TimeframeOptions は有効な時間足ラベルをカンマ区切りで返します。
func TimeframeOptions() string {
	return strings.Join(TimeframeLabels(), ", ")
}

// APIString は上流APIへ渡す時間足表現を返します。倍率が未設定の場合は1として扱います。
func (t Timeframe) APIString() string {
	m := t.Multiplier
	if m == 0 {
		m = 1
	}
	return fmt.Sprintf("%d%s", m, t.Unit)
}
