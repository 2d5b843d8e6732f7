package usecase

import (
	"context"
	"net/http"
	"strings"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
)

// LineItemGenerator は (variant, quantity) から明細を作る。
// 価格とタイトルは生成時点でスナップショットし、後から再計算しない。
type LineItemGenerator struct {
	idGen IDGenerator
}

// DI
func NewLineItemGenerator(idGen IDGenerator) *LineItemGenerator {
	return &LineItemGenerator{idGen: idGen}
}

type GenerateLineItemInput struct {
	VariantID string
	Region    model.Region
	Quantity  int64

	//顧客別価格は未対応（地域・通貨のみで決める）
	CustomerID *string
}

// Generate は1件の明細を生成する。repoはトランザクション内のものを渡せるよう引数で受け取る。
func (g *LineItemGenerator) Generate(ctx context.Context, variants repo.VariantRepository, in GenerateLineItemInput) (model.LineItem, error) {
	if in.Quantity < 1 {
		return model.LineItem{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}

	v, err := variants.FindByID(ctx, in.VariantID)
	if err == repo.ErrNotFound {
		return model.LineItem{}, NewHTTPError(http.StatusNotFound, "variant not found")
	}
	if err != nil {
		return model.LineItem{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	prices, err := variants.ListPrices(ctx, in.VariantID)
	if err != nil {
		return model.LineItem{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	unitPrice, ok := pickUnitPrice(prices, in.Region)
	if !ok {
		//この地域では買えない
		return model.LineItem{}, NewHTTPError(http.StatusNotFound, "variant not available in region")
	}

	return model.LineItem{
		ID:        g.idGen.NewID(),
		VariantID: v.ID,
		ProductID: v.ProductID,
		Title:     v.Title,
		UnitPrice: unitPrice,
		Quantity:  in.Quantity,
	}, nil
}

// 地域限定価格＞通貨単位価格の順で選ぶ
func pickUnitPrice(prices []model.MoneyAmount, region model.Region) (int64, bool) {
	for _, p := range prices {
		if p.RegionID != nil && *p.RegionID == region.ID {
			return p.Amount, true
		}
	}
	for _, p := range prices {
		if p.RegionID == nil && strings.EqualFold(p.CurrencyCode, region.CurrencyCode) {
			return p.Amount, true
		}
	}
	return 0, false
}
