package main

import (
	"log"

	"github.com/bguntupallics/TradingSandbox/internal/app/router"
	assetshandler "github.com/bguntupallics/TradingSandbox/internal/feature/assets/transport/handler"
	assetsusecase "github.com/bguntupallics/TradingSandbox/internal/feature/assets/usecase"
	marketcaphandler "github.com/bguntupallics/TradingSandbox/internal/feature/marketcap/transport/handler"
	marketcapusecase "github.com/bguntupallics/TradingSandbox/internal/feature/marketcap/usecase"
	marketdatahandler "github.com/bguntupallics/TradingSandbox/internal/feature/marketdata/transport/handler"
	marketdatausecase "github.com/bguntupallics/TradingSandbox/internal/feature/marketdata/usecase"
	"github.com/bguntupallics/TradingSandbox/internal/platform/config"
	"github.com/bguntupallics/TradingSandbox/internal/platform/externalapi/alpaca"
	"github.com/bguntupallics/TradingSandbox/internal/platform/externalapi/yahoo"
	httpx "github.com/bguntupallics/TradingSandbox/internal/platform/http"
)

func main() {
	// 設定（必須の環境変数が欠けていれば即時終了）
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// 上流クライアント（リトライ付きHTTPクライアントを全ルートで共有）
	httpClient := httpx.NewRetryingHTTPClient(cfg.Timeout)
	alpacaClient := alpaca.NewClient(alpaca.Config{
		APIKey:         cfg.AlpacaAPIKey,
		APISecret:      cfg.AlpacaAPISecret,
		TradingBaseURL: cfg.TradingBaseURL,
		DataBaseURL:    cfg.DataBaseURL,
		Timeout:        cfg.Timeout,
	}, httpClient)
	yahooClient := yahoo.NewClient(yahoo.WithHTTPClient(httpx.NewHTTPClient(cfg.Timeout)))

	// Usecase
	marketDataUC := marketdatausecase.NewMarketDataUsecase(alpacaClient)
	marketCapUC := marketcapusecase.NewMarketCapUsecase(yahooClient)
	assetsUC := assetsusecase.NewAssetsUsecase(alpacaClient)

	// Handler
	marketDataH := marketdatahandler.NewMarketDataHandler(marketDataUC)
	marketCapH := marketcaphandler.NewMarketCapHandler(marketCapUC)
	assetsH := assetshandler.NewAssetsHandler(assetsUC)

	// ルータ生成
	r := router.NewRouter(cfg.AccessKeyDigest, marketDataH, marketCapH, assetsH)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
