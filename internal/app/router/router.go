package router

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/bguntupallics/TradingSandbox/internal/api"
	assetshandler "github.com/bguntupallics/TradingSandbox/internal/feature/assets/transport/handler"
	marketcaphandler "github.com/bguntupallics/TradingSandbox/internal/feature/marketcap/transport/handler"
	marketdatahandler "github.com/bguntupallics/TradingSandbox/internal/feature/marketdata/transport/handler"
	"github.com/bguntupallics/TradingSandbox/internal/platform/auth"
	"github.com/bguntupallics/TradingSandbox/internal/platform/http/handler"
	"github.com/bguntupallics/TradingSandbox/internal/platform/ratelimit"
)

// WelcomeMessage はルートエンドポイントが返す固定メッセージです。
const WelcomeMessage = "Welcome to TradingSandbox Data Acquisition, Powered by Alpaca Markets :)"

// ルートごとの1分あたりリクエスト上限。
const (
	defaultBudget = 30
	heavyBudget   = 20 // バー取得・時価総額はペイロードが大きいため低めに設定
)

// NewRouter はミドルウェアチェーンとすべてのルートを組み立てます。
// 認証とレートリミットはルータ構築時に明示的に合成され、
// /health のみ両方の対象外です。
func NewRouter(accessKeyDigest string, marketData *marketdatahandler.MarketDataHandler,
	marketCap *marketcaphandler.MarketCapHandler, assets *assetshandler.AssetsHandler) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	// 認証不要
	// 導通確認用（レートリミット対象外）
	r.GET("/health", handler.Health)

	// 認証必須のルート
	// r.Group("/") でルートグループを作成し、アクセスキー検証を適用
	protected := r.Group("/")
	protected.Use(auth.Required(accessKeyDigest))
	{
		protected.GET("/", ratelimit.PerMinute(defaultBudget), func(c *gin.Context) {
			c.JSON(http.StatusOK, api.WelcomeResponse{Message: WelcomeMessage})
		})
		protected.GET("/latest-trade/:symbol", ratelimit.PerMinute(defaultBudget), marketData.GetLatestTradeHandler)
		protected.GET("/bars/:symbol", ratelimit.PerMinute(heavyBudget), marketData.GetBarsHandler)
		protected.GET("/market-status", ratelimit.PerMinute(defaultBudget), marketData.GetMarketStatusHandler)
		protected.GET("/market-cap/:symbol", ratelimit.PerMinute(heavyBudget), marketCap.GetMarketCapHandler)
		protected.GET("/search/:query", ratelimit.PerMinute(defaultBudget), assets.SearchHandler)
		protected.GET("/validate/:symbol", ratelimit.PerMinute(defaultBudget), assets.ValidateHandler)
	}

	return r
}
