package repository

import (
	"context"

	"storefront/internal/domain/model"
)

type CartRepository interface {
	//配送先住所があれば同時に作成する
	Create(ctx context.Context, cart *model.Cart) error
	FindByID(ctx context.Context, cartID string) (model.Cart, error)
	//明細・住所・地域も含めて取得
	FindWithRelations(ctx context.Context, cartID string) (model.Cart, error)
}
