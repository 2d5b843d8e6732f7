package usecase

import (
	"context"
	"errors"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
)

// 地域が1つも設定されていない
var ErrNoRegionsConfigured = errors.New("no regions configured")

// RegionResolver はカートに適用する地域を決める。
type RegionResolver struct {
	regions repo.RegionRepository
}

// DI
func NewRegionResolver(regions repo.RegionRepository) *RegionResolver {
	return &RegionResolver{regions: regions}
}

// Resolve は明示IDがあればその地域、無ければ一覧の先頭を返す。
// 一覧が空なら ErrNoRegionsConfigured。
func (r *RegionResolver) Resolve(ctx context.Context, explicitID string) (model.Region, error) {
	if explicitID != "" {
		return r.regions.FindByID(ctx, explicitID)
	}

	regions, err := r.regions.ListWithCountries(ctx)
	if err != nil {
		return model.Region{}, err
	}
	if len(regions) == 0 {
		return model.Region{}, ErrNoRegionsConfigured
	}

	return regions[0], nil
}
