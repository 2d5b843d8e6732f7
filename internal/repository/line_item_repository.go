package repository

import (
	"context"

	"storefront/internal/domain/model"
)

type LineItemRepository interface {
	//入力順を保ったまま一括作成
	CreateBulk(ctx context.Context, cartID string, items []model.LineItem) error
	ListByCartID(ctx context.Context, cartID string) ([]model.LineItem, error)
}
