package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/model"
)

// 見つかりませんを統一
var ErrNotFound = errors.New("not found")

type VariantRepository interface {
	FindByID(ctx context.Context, variantID string) (model.ProductVariant, error)
	//価格一覧（地域限定・通貨単位の両方）を取得
	ListPrices(ctx context.Context, variantID string) ([]model.MoneyAmount, error)
}
