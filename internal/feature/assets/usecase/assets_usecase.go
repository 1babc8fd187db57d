// Package usecase は銘柄検索・検証のビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"net/http"
	"sort"
	"strings"

	"github.com/bguntupallics/TradingSandbox/internal/feature/assets/domain/entity"
	"github.com/bguntupallics/TradingSandbox/internal/platform/externalapi/alpaca"
	"github.com/bguntupallics/TradingSandbox/internal/shared/apperr"
)

// DefaultSearchLimit は検索結果のデフォルト上限件数です。
const DefaultSearchLimit = 10

// AssetClient は上流の銘柄APIを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type AssetClient interface {
	ListActiveAssets(ctx context.Context) ([]alpaca.Asset, error)
	GetAsset(ctx context.Context, symbol string) (alpaca.Asset, error)
}

// AssetsUsecase は銘柄検索・検証のユースケースを定義します。
type AssetsUsecase struct {
	alpaca AssetClient
}

// NewAssetsUsecase はAssetsUsecaseの新しいインスタンスを生成します。
func NewAssetsUsecase(client AssetClient) *AssetsUsecase {
	return &AssetsUsecase{alpaca: client}
}

// Search はクエリに一致する取引可能な銘柄の候補リストを返します。
//
// マッチ条件はシンボルの前方一致、または銘柄名（大文字化）への部分一致です。
// 候補の収集はlimit件に達した時点で打ち切り、その後に並べ替えます。
// 打ち切りより後ろの候補は評価されません（上流順で最初のlimit件のみが
// 並べ替え対象になります）。空白のみのクエリは上流を呼ばずに空リストを返します。
func (u *AssetsUsecase) Search(ctx context.Context, query string, limit int) ([]entity.Suggestion, error) {
	query = strings.ToUpper(strings.TrimSpace(query))
	if query == "" {
		return []entity.Suggestion{}, nil
	}
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	assets, err := u.alpaca.ListActiveAssets(ctx)
	if err != nil {
		return nil, err
	}

	suggestions := make([]entity.Suggestion, 0, limit)
	for _, a := range assets {
		if !a.Tradable {
			continue
		}
		if strings.HasPrefix(a.Symbol, query) || strings.Contains(strings.ToUpper(a.Name), query) {
			suggestions = append(suggestions, entity.Suggestion{
				Symbol:   a.Symbol,
				Name:     a.Name,
				Exchange: a.Exchange,
			})
		}
		if len(suggestions) >= limit {
			break
		}
	}

	// 完全一致 > 前方一致 > シンボル長の複合キーで並べ替え。
	// 同順位は上流の順序を維持する。
	sort.SliceStable(suggestions, func(i, j int) bool {
		ki, kj := matchKey(suggestions[i].Symbol, query), matchKey(suggestions[j].Symbol, query)
		if ki[0] != kj[0] {
			return ki[0] < kj[0]
		}
		if ki[1] != kj[1] {
			return ki[1] < kj[1]
		}
		return ki[2] < kj[2]
	})

	if len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	return suggestions, nil
}

// matchKey はクエリに対するシンボルの一致品質を表す複合キーを返します。
func matchKey(symbol, query string) [3]int {
	exact, prefix := 1, 1
	if symbol == query {
		exact = 0
	}
	if strings.HasPrefix(symbol, query) {
		prefix = 0
	}
	return [3]int{exact, prefix, len(symbol)}
}

// Validate は銘柄が存在し取引可能かを検証します。
// 存在しない、または取引不可能な銘柄は404エラーになります。
func (u *AssetsUsecase) Validate(ctx context.Context, symbol string) (entity.ValidationResult, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))

	asset, err := u.alpaca.GetAsset(ctx, symbol)
	if err != nil {
		var se *apperr.UpstreamStatusError
		if errors.As(err, &se) && se.StatusCode == http.StatusNotFound {
			return entity.ValidationResult{}, apperr.Newf(http.StatusNotFound,
				"Stock symbol '%s' not found. Please check the ticker and try again.", symbol)
		}
		return entity.ValidationResult{}, err
	}

	if !asset.Tradable {
		return entity.ValidationResult{}, apperr.Newf(http.StatusNotFound,
			"Stock '%s' exists but is not currently tradable.", symbol)
	}

	return entity.ValidationResult{
		Valid:    true,
		Symbol:   asset.Symbol,
		Name:     asset.Name,
		Exchange: asset.Exchange,
		Tradable: asset.Tradable,
	}, nil
}
