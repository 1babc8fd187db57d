// Package usecase implements the business logic for the marketcap feature.
package usecase

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/bguntupallics/TradingSandbox/internal/feature/marketcap/domain/entity"
	"github.com/bguntupallics/TradingSandbox/internal/platform/externalapi/yahoo"
	"github.com/bguntupallics/TradingSandbox/internal/shared/apperr"
)

// DefaultCurrency is assumed when upstream reports no currency code.
const DefaultCurrency = "USD"

// QuoteProvider abstracts the secondary quote data source.
// Following Go convention: interfaces are defined by the consumer (usecase).
type QuoteProvider interface {
	GetFundamentals(ctx context.Context, symbol string) (yahoo.Fundamentals, error)
}

// MarketCapUsecase provides business logic for market capitalization lookups.
type MarketCapUsecase struct {
	quotes QuoteProvider
	now    func() time.Time
}

// NewMarketCapUsecase creates a new MarketCapUsecase with the given provider.
func NewMarketCapUsecase(quotes QuoteProvider) *MarketCapUsecase {
	return &MarketCapUsecase{quotes: quotes, now: time.Now}
}

// GetMarketCap fetches fundamentals for symbol and assembles a MarketCapRecord.
// Market cap and a price (regular market price, falling back to previous close)
// are both required; missing either yields a 404.
func (u *MarketCapUsecase) GetMarketCap(ctx context.Context, symbol string) (entity.MarketCapRecord, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))

	f, err := u.quotes.GetFundamentals(ctx, symbol)
	if err != nil {
		return entity.MarketCapRecord{}, err
	}

	price := f.RegularMarketPrice
	if price == nil {
		price = f.PreviousClose
	}
	if f.MarketCap == nil || price == nil {
		return entity.MarketCapRecord{}, apperr.Newf(http.StatusNotFound, "Data not available for %s", symbol)
	}

	currency := DefaultCurrency
	if f.Currency != nil {
		currency = *f.Currency
	}

	return entity.MarketCapRecord{
		Symbol:    symbol,
		MarketCap: *f.MarketCap,
		Currency:  currency,
		Timestamp: u.now().UTC(),
	}, nil
}
