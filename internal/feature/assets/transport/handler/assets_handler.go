// Package handler はassetsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bguntupallics/TradingSandbox/internal/api"
	"github.com/bguntupallics/TradingSandbox/internal/feature/assets/domain/entity"
	"github.com/bguntupallics/TradingSandbox/internal/feature/assets/transport/http/dto"
	"github.com/bguntupallics/TradingSandbox/internal/shared/apperr"
)

// AssetsUsecase は銘柄検索・検証のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type AssetsUsecase interface {
	Search(ctx context.Context, query string, limit int) ([]entity.Suggestion, error)
	Validate(ctx context.Context, symbol string) (entity.ValidationResult, error)
}

// AssetsHandler は銘柄検索・検証のHTTPリクエストを処理します。
type AssetsHandler struct {
	uc AssetsUsecase
}

// NewAssetsHandler は指定されたusecaseでAssetsHandlerの新しいインスタンスを生成します。
func NewAssetsHandler(uc AssetsUsecase) *AssetsHandler {
	return &AssetsHandler{uc: uc}
}

// SearchHandler はクエリに一致する銘柄候補をJSONで返します。
//
// エンドポイント例:
// GET /search/AMD?limit=10
func (h *AssetsHandler) SearchHandler(c *gin.Context) {
	query := c.Param("query")
	limitStr := c.DefaultQuery("limit", "10")
	// 文字列を整数に変換（不正な値はusecase側でデフォルト値になる）
	limit, _ := strconv.Atoi(limitStr)

	suggestions, err := h.uc.Search(c.Request.Context(), query, limit)
	if err != nil {
		slog.Error("failed to search assets", "query", query, "error", err)
		e := apperr.Normalize(err,
			"Failed to fetch assets from Alpaca",
			"An internal error occurred while searching assets.")
		c.JSON(e.Status, api.ErrorResponse{Error: e.Message})
		return
	}

	out := make([]dto.SuggestionItem, 0, len(suggestions))
	for _, s := range suggestions {
		out = append(out, dto.SuggestionItem{
			Symbol:   s.Symbol,
			Name:     s.Name,
			Exchange: s.Exchange,
		})
	}

	c.JSON(http.StatusOK, dto.SearchResponse{Suggestions: out})
}

// ValidateHandler は銘柄が存在し取引可能かを検証し、結果をJSONで返します。
//
// エンドポイント例:
// GET /validate/AAPL
func (h *AssetsHandler) ValidateHandler(c *gin.Context) {
	symbol := c.Param("symbol")

	result, err := h.uc.Validate(c.Request.Context(), symbol)
	if err != nil {
		slog.Error("failed to validate symbol", "symbol", symbol, "error", err)
		e := apperr.Normalize(err,
			"Failed to validate symbol",
			"An internal error occurred while validating the symbol.")
		c.JSON(e.Status, api.ErrorResponse{Error: e.Message})
		return
	}

	c.JSON(http.StatusOK, dto.ValidateResponse{
		Valid:    result.Valid,
		Symbol:   result.Symbol,
		Name:     result.Name,
		Exchange: result.Exchange,
		Tradable: result.Tradable,
	})
}
