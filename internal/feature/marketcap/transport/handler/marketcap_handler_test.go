package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/bguntupallics/TradingSandbox/internal/feature/marketcap/domain/entity"
	"github.com/bguntupallics/TradingSandbox/internal/feature/marketcap/transport/handler"
	"github.com/bguntupallics/TradingSandbox/internal/shared/apperr"
)

// mockMarketCapUsecase はMarketCapUsecaseインターフェースのモック実装です。
type mockMarketCapUsecase struct {
	GetMarketCapFunc func(ctx context.Context, symbol string) (entity.MarketCapRecord, error)
}

func (m *mockMarketCapUsecase) GetMarketCap(ctx context.Context, symbol string) (entity.MarketCapRecord, error) {
	return m.GetMarketCapFunc(ctx, symbol)
}

func setupRouter(mockUC *mockMarketCapUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := handler.NewMarketCapHandler(mockUC)
	r := gin.New()
	r.GET("/market-cap/:symbol", h.GetMarketCapHandler)
	return r
}

// TestGetMarketCapHandler は時価総額エンドポイントのリクエスト/レスポンス処理をテストします。
func TestGetMarketCapHandler(t *testing.T) {
	testTime := time.Date(2025, 7, 8, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		url            string
		mockFunc       func(ctx context.Context, symbol string) (entity.MarketCapRecord, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success",
			url:  "/market-cap/AAPL",
			mockFunc: func(ctx context.Context, symbol string) (entity.MarketCapRecord, error) {
				assert.Equal(t, "AAPL", symbol)
				return entity.MarketCapRecord{
					Symbol:    "AAPL",
					MarketCap: 3000000000000,
					Currency:  "USD",
					Timestamp: testTime,
				}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"symbol":"AAPL","market_cap":3000000000000,"currency":"USD","timestamp":"2025-07-08T12:00:00Z"}`,
		},
		{
			name: "error: data not available passes through as 404",
			url:  "/market-cap/NOPE",
			mockFunc: func(ctx context.Context, symbol string) (entity.MarketCapRecord, error) {
				return entity.MarketCapRecord{}, apperr.New(http.StatusNotFound, "Data not available for NOPE")
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error":"Data not available for NOPE"}`,
		},
		{
			name: "error: upstream status forwarded with fixed message",
			url:  "/market-cap/AAPL",
			mockFunc: func(ctx context.Context, symbol string) (entity.MarketCapRecord, error) {
				return entity.MarketCapRecord{}, &apperr.UpstreamStatusError{StatusCode: http.StatusTooManyRequests, URL: "/v7/finance/quote"}
			},
			expectedStatus: http.StatusTooManyRequests,
			expectedBody:   `{"error":"Failed to fetch quote data"}`,
		},
		{
			name: "error: transport failure yields 503",
			url:  "/market-cap/AAPL",
			mockFunc: func(ctx context.Context, symbol string) (entity.MarketCapRecord, error) {
				return entity.MarketCapRecord{}, &url.Error{Op: "Get", URL: "https://query1.finance.yahoo.com", Err: context.DeadlineExceeded}
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   `{"error":"Alpaca API temporarily unavailable"}`,
		},
		{
			name: "error: unknown error does not leak details",
			url:  "/market-cap/AAPL",
			mockFunc: func(ctx context.Context, symbol string) (entity.MarketCapRecord, error) {
				return entity.MarketCapRecord{}, assert.AnError
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"An internal error occurred while fetching market cap data."}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := &mockMarketCapUsecase{GetMarketCapFunc: tt.mockFunc}
			router := setupRouter(mockUC)

			req, _ := http.NewRequest(http.MethodGet, tt.url, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}
