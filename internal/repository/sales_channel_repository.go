package repository

import (
	"context"

	"storefront/internal/domain/model"
)

type SalesChannelRepository interface {
	FindByID(ctx context.Context, channelID string) (model.SalesChannel, error)
	//チャネルがその商品を扱っているか
	CarriesProduct(ctx context.Context, channelID string, productID string) (bool, error)
}
