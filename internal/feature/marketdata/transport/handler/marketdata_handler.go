// Package handler はmarketdataフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bguntupallics/TradingSandbox/internal/api"
	"github.com/bguntupallics/TradingSandbox/internal/feature/marketdata/domain/entity"
	"github.com/bguntupallics/TradingSandbox/internal/feature/marketdata/transport/http/dto"
	"github.com/bguntupallics/TradingSandbox/internal/platform/externalapi/alpaca"
	"github.com/bguntupallics/TradingSandbox/internal/shared/apperr"
)

// MarketDataUsecase は市場データ操作のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type MarketDataUsecase interface {
	GetLatestTrade(ctx context.Context, symbol string) (entity.Trade, error)
	GetBars(ctx context.Context, symbol, startStr, endStr, timeframeStr string) (entity.BarSeries, error)
	GetMarketStatus(ctx context.Context) (alpaca.Clock, error)
}

// MarketDataHandler は市場データのHTTPリクエストを処理します。
type MarketDataHandler struct {
	uc MarketDataUsecase
}

// NewMarketDataHandler は指定されたusecaseでMarketDataHandlerの新しいインスタンスを生成します。
func NewMarketDataHandler(uc MarketDataUsecase) *MarketDataHandler {
	return &MarketDataHandler{uc: uc}
}

// GetLatestTradeHandler は指定銘柄の最新取引をJSONで返します。
//
// エンドポイント例:
// GET /latest-trade/AAPL
func (h *MarketDataHandler) GetLatestTradeHandler(c *gin.Context) {
	symbol := c.Param("symbol")

	trade, err := h.uc.GetLatestTrade(c.Request.Context(), symbol)
	if err != nil {
		slog.Error("failed to fetch latest trade", "symbol", symbol, "error", err)
		e := apperr.Normalize(err,
			"Failed to fetch data from Alpaca",
			"An internal error occurred while fetching trade data.")
		c.JSON(e.Status, api.ErrorResponse{Error: e.Message})
		return
	}

	c.JSON(http.StatusOK, dto.TradeResponse{
		Price:     trade.Price,
		Timestamp: trade.Timestamp,
		Volume:    trade.Volume,
	})
}

// GetBarsHandler は指定銘柄・期間・時間足のバーデータをJSONで返します。
//
// エンドポイント例:
// GET /bars/AAPL?start_date=2025-01-01&end_date=2025-02-01&timeframe=1Day
func (h *MarketDataHandler) GetBarsHandler(c *gin.Context) {
	symbol := c.Param("symbol")
	startStr := c.Query("start_date")
	endStr := c.Query("end_date")
	// 未指定の場合はusecase側でデフォルト値を適用
	timeframeStr := c.Query("timeframe")

	series, err := h.uc.GetBars(c.Request.Context(), symbol, startStr, endStr, timeframeStr)
	if err != nil {
		slog.Error("failed to fetch bars", "symbol", symbol, "timeframe", timeframeStr, "error", err)
		e := apperr.Normalize(err,
			"Failed to fetch bars from Alpaca",
			"An internal error occurred while fetching bar data.")
		c.JSON(e.Status, api.ErrorResponse{Error: e.Message})
		return
	}

	c.JSON(http.StatusOK, dto.BarsResponse{
		Symbol:    series.Symbol,
		StartDate: series.Start,
		EndDate:   series.End,
		Timeframe: series.Timeframe,
		Bars:      series.Bars,
	})
}

// GetMarketStatusHandler は市場の開場状況と次回の開場・閉場時刻をJSONで返します。
//
// エンドポイント例:
// GET /market-status
func (h *MarketDataHandler) GetMarketStatusHandler(c *gin.Context) {
	clock, err := h.uc.GetMarketStatus(c.Request.Context())
	if err != nil {
		slog.Error("failed to fetch market status", "error", err)
		e := apperr.Normalize(err,
			"Failed to fetch market clock from Alpaca",
			"An internal error occurred while fetching market status.")
		c.JSON(e.Status, api.ErrorResponse{Error: e.Message})
		return
	}

	c.JSON(http.StatusOK, dto.MarketStatusResponse{
		IsOpen:    clock.IsOpen,
		NextOpen:  clock.NextOpen,
		NextClose: clock.NextClose,
	})
}
