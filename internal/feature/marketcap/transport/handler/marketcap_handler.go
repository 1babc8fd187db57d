// Package handler provides HTTP handlers for the marketcap feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bguntupallics/TradingSandbox/internal/api"
	"github.com/bguntupallics/TradingSandbox/internal/feature/marketcap/domain/entity"
	"github.com/bguntupallics/TradingSandbox/internal/feature/marketcap/transport/http/dto"
	"github.com/bguntupallics/TradingSandbox/internal/shared/apperr"
)

// MarketCapUsecase defines the usecase interface for market cap lookups.
// Following Go convention: interfaces are defined by the consumer (handler).
type MarketCapUsecase interface {
	GetMarketCap(ctx context.Context, symbol string) (entity.MarketCapRecord, error)
}

// MarketCapHandler handles HTTP requests for market capitalization data.
type MarketCapHandler struct {
	uc MarketCapUsecase
}

// NewMarketCapHandler creates a new MarketCapHandler with the given usecase.
func NewMarketCapHandler(uc MarketCapUsecase) *MarketCapHandler {
	return &MarketCapHandler{uc: uc}
}

// GetMarketCapHandler returns the market capitalization record for a symbol.
//
// Example:
// GET /market-cap/AAPL
func (h *MarketCapHandler) GetMarketCapHandler(c *gin.Context) {
	symbol := c.Param("symbol")

	record, err := h.uc.GetMarketCap(c.Request.Context(), symbol)
	if err != nil {
		slog.Error("failed to fetch market cap", "symbol", symbol, "error", err)
		e := apperr.Normalize(err,
			"Failed to fetch quote data",
			"An internal error occurred while fetching market cap data.")
		c.JSON(e.Status, api.ErrorResponse{Error: e.Message})
		return
	}

	c.JSON(http.StatusOK, dto.MarketCapResponse{
		Symbol:    record.Symbol,
		MarketCap: record.MarketCap,
		Currency:  record.Currency,
		Timestamp: record.Timestamp,
	})
}
