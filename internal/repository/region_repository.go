package repository

import (
	"context"

	"storefront/internal/domain/model"
)

type RegionRepository interface {
	//国も含めて全地域を作成順で取得
	ListWithCountries(ctx context.Context) ([]model.Region, error)
	FindByID(ctx context.Context, regionID string) (model.Region, error)
}
