package alpaca

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/bguntupallics/TradingSandbox/internal/shared/apperr"
)

// RawTrade はAlpacaの最新取引レスポンスの短縮キー形式です。
type RawTrade struct {
	Price     float64   `json:"p"`
	Timestamp time.Time `json:"t"`
	Size      int64     `json:"s"`
}

// latestTradeResponse は /v2/stocks/{symbol}/trades/latest のレスポンス全体です。
type latestTradeResponse struct {
	Symbol string   `json:"symbol"`
	Trade  RawTrade `json:"trade"`
}

// barsResponse は /v2/stocks/bars のレスポンスです。barsの中身は加工せず
// そのまま呼び出し元へ渡します。
type barsResponse struct {
	Bars map[string]json.RawMessage `json:"bars"`
}

// Clock は /v2/clock が返す市場時計です。
type Clock struct {
	IsOpen    bool      `json:"is_open"`
	NextOpen  time.Time `json:"next_open"`
	NextClose time.Time `json:"next_close"`
}

// Asset は /v2/assets が返す銘柄レコードです。
type Asset struct {
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Exchange string `json:"exchange"`
	Tradable bool   `json:"tradable"`
}

// Client はAlpaca REST APIのクライアントです。
// 同一の*http.Clientを共有するため並行利用できます。
type Client struct {
	cfg    Config
	client *http.Client
}

// NewClient は指定された設定とHTTPクライアントでClientの新しいインスタンスを生成します。
func NewClient(cfg Config, client *http.Client) *Client {
	return &Client{cfg: cfg, client: client}
}

// get はGETリクエストを実行し、2xxレスポンスのボディをoutへデコードします。
// 非2xxは*apperr.UpstreamStatusErrorとして返します。
func (c *Client) get(ctx context.Context, u string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set("APCA-API-KEY-ID", c.cfg.APIKey)
	req.Header.Set("APCA-API-SECRET-KEY", c.cfg.APISecret)

	res, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return &apperr.UpstreamStatusError{StatusCode: res.StatusCode, URL: req.URL.Path}
	}

	return json.NewDecoder(res.Body).Decode(out)
}

// GetLatestTrade は指定銘柄の最新取引を短縮キー形式のまま取得します。
func (c *Client) GetLatestTrade(ctx context.Context, symbol string) (RawTrade, error) {
	u := fmt.Sprintf("%s/v2/stocks/%s/trades/latest?feed=iex&currency=USD",
		c.cfg.DataBaseURL, url.PathEscape(symbol))

	var body latestTradeResponse
	if err := c.get(ctx, u, &body); err != nil {
		return RawTrade{}, err
	}
	return body.Trade, nil
}

// GetBars は指定銘柄・期間・時間足のバーデータを取得します。
// バー配列は加工せずそのまま返します。
func (c *Client) GetBars(ctx context.Context, symbol string, start, end time.Time, timeframe string) (map[string]json.RawMessage, error) {
	q := url.Values{}
	q.Set("symbols", symbol)
	q.Set("timeframe", timeframe)
	q.Set("start", start.Format(time.RFC3339))
	q.Set("end", end.Format(time.RFC3339))
	q.Set("feed", "iex")
	q.Set("limit", "10000")

	u := fmt.Sprintf("%s/v2/stocks/bars?%s", c.cfg.DataBaseURL, q.Encode())

	var body barsResponse
	if err := c.get(ctx, u, &body); err != nil {
		return nil, err
	}
	return body.Bars, nil
}

// GetClock は市場の開場状況と次回の開場・閉場時刻を取得します。
func (c *Client) GetClock(ctx context.Context) (Clock, error) {
	var body Clock
	if err := c.get(ctx, c.cfg.TradingBaseURL+"/v2/clock", &body); err != nil {
		return Clock{}, err
	}
	return body, nil
}

// ListActiveAssets は取引可能性を問わず、activeな米国株の銘柄一覧を取得します。
func (c *Client) ListActiveAssets(ctx context.Context) ([]Asset, error) {
	u := c.cfg.TradingBaseURL + "/v2/assets?status=active&asset_class=us_equity"

	var body []Asset
	if err := c.get(ctx, u, &body); err != nil {
		return nil, err
	}
	return body, nil
}

// GetAsset は指定銘柄の銘柄レコードを取得します。
// 銘柄が存在しない場合は404を持つ*apperr.UpstreamStatusErrorを返します。
func (c *Client) GetAsset(ctx context.Context, symbol string) (Asset, error) {
	u := fmt.Sprintf("%s/v2/assets/%s", c.cfg.TradingBaseURL, url.PathEscape(symbol))

	var body Asset
	if err := c.get(ctx, u, &body); err != nil {
		return Asset{}, err
	}
	return body, nil
}
