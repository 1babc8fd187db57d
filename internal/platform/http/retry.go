package http

import (
	"io"
	"net/http"
	"time"
)

const (
	// maxRetries はリトライの上限回数です（初回を除く）。
	maxRetries = 3
	// retryBackoffBase は指数バックオフの基準待機時間です。
	retryBackoffBase = 500 * time.Millisecond
)

// retryStatusCodes はリトライ対象とする上流のステータスコードです。
var retryStatusCodes = map[int]bool{
	http.StatusInternalServerError: true,
	http.StatusBadGateway:          true,
	http.StatusServiceUnavailable:  true,
	http.StatusGatewayTimeout:      true,
}

// RetryTransport は一時的な障害に対してリクエストを再試行するRoundTripperです。
//
// リトライ条件:
//   - GETリクエストのみ（冪等でないメソッドは再試行しない）
//   - 接続エラー・タイムアウトなどのトランスポートエラー
//   - 500 / 502 / 503 / 504 レスポンス
//
// 4xxレスポンスは再試行せずそのまま返します。待機時間は指数バックオフ
// （0.5s, 1s, 2s）です。
type RetryTransport struct {
	Base http.RoundTripper

	// sleep はテストから差し替え可能な待機関数です。
	sleep func(time.Duration)
}

// RoundTrip はリトライポリシーを適用してリクエストを実行します。
func (t *RetryTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}
	sleep := t.sleep
	if sleep == nil {
		sleep = time.Sleep
	}

	if req.Method != http.MethodGet {
		return base.RoundTrip(req)
	}

	var resp *http.Response
	var err error
	backoff := retryBackoffBase
	for attempt := 0; ; attempt++ {
		resp, err = base.RoundTrip(req)

		retryable := err != nil || retryStatusCodes[resp.StatusCode]
		if !retryable || attempt >= maxRetries {
			return resp, err
		}

		// リトライ前にレスポンスボディを破棄してコネクションを再利用可能にする
		if resp != nil {
			_, _ = io.Copy(io.Discard, resp.Body)
			_ = resp.Body.Close()
		}

		select {
		case <-req.Context().Done():
			return nil, req.Context().Err()
		default:
		}

		sleep(backoff)
		backoff *= 2
	}
}
