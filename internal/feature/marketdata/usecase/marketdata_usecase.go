// Package usecase は市場データ取得のビジネスロジックを実装します。
package usecase

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/bguntupallics/TradingSandbox/internal/feature/marketdata/domain/entity"
	"github.com/bguntupallics/TradingSandbox/internal/platform/externalapi/alpaca"
	"github.com/bguntupallics/TradingSandbox/internal/shared/apperr"
)

// DefaultTimeframe はバー取得のデフォルト時間足です。
const DefaultTimeframe = "1Day"

// dateLayouts は受け付ける日付形式です。先頭から順に試行します。
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// AlpacaClient は上流のAlpaca APIを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type AlpacaClient interface {
	GetLatestTrade(ctx context.Context, symbol string) (alpaca.RawTrade, error)
	GetBars(ctx context.Context, symbol string, start, end time.Time, timeframe string) (map[string]json.RawMessage, error)
	GetClock(ctx context.Context) (alpaca.Clock, error)
}

// marketDataUsecase は市場データ取得のユースケースを定義します。
type marketDataUsecase struct {
	alpaca AlpacaClient
}

// NewMarketDataUsecase はmarketDataUsecaseの新しいインスタンスを生成します。
func NewMarketDataUsecase(client AlpacaClient) *marketDataUsecase {
	return &marketDataUsecase{alpaca: client}
}

// GetLatestTrade は指定銘柄の最新取引を取得し、短縮キーを
// 記述的なフィールド名へ変換して返します。
func (u *marketDataUsecase) GetLatestTrade(ctx context.Context, symbol string) (entity.Trade, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))

	raw, err := u.alpaca.GetLatestTrade(ctx, symbol)
	if err != nil {
		return entity.Trade{}, err
	}

	return entity.Trade{
		Price:     raw.Price,
		Timestamp: raw.Timestamp,
		Volume:    raw.Size,
	}, nil
}

// GetBars は日付と時間足を検証した上でバーデータを取得します。
// 検証エラーの場合、上流呼び出しは一切行いません。
func (u *marketDataUsecase) GetBars(ctx context.Context, symbol, startStr, endStr, timeframeStr string) (entity.BarSeries, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if timeframeStr == "" {
		timeframeStr = DefaultTimeframe
	}

	start, err := parseDate(startStr)
	if err != nil {
		return entity.BarSeries{}, err
	}
	end, err := parseDate(endStr)
	if err != nil {
		return entity.BarSeries{}, err
	}

	tf, ok := entity.ParseTimeframe(timeframeStr)
	if !ok {
		return entity.BarSeries{}, apperr.Newf(http.StatusBadRequest,
			"Invalid timeframe. Options: %s", entity.TimeframeOptions())
	}

	bars, err := u.alpaca.GetBars(ctx, symbol, start, end, tf.APIString())
	if err != nil {
		return entity.BarSeries{}, err
	}

	return entity.BarSeries{
		Symbol:    symbol,
		Start:     start,
		End:       end,
		Timeframe: tf.Label,
		Bars:      bars,
	}, nil
}

// GetMarketStatus は市場時計を取得します。上流の形をそのまま返します。
func (u *marketDataUsecase) GetMarketStatus(ctx context.Context) (alpaca.Clock, error) {
	return u.alpaca.GetClock(ctx)
}

// parseDate はISO-8601形式の日付文字列をパースします。
func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, apperr.New(http.StatusBadRequest, "Invalid date format. Use YYYY-MM-DD")
}
