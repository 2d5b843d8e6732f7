package usecase

import (
	"context"
	"net/http"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
)

// RegionUsecase は /regions の業務ロジックです。
type RegionUsecase struct {
	regions repo.RegionRepository
}

// DI
func NewRegionUsecase(regions repo.RegionRepository) *RegionUsecase {
	return &RegionUsecase{regions: regions}
}

type RegionListOutput struct {
	Regions []model.Region `json:"regions"`
}

// 公開地域一覧（国も含む）
func (u *RegionUsecase) ListRegions(ctx context.Context) (RegionListOutput, error) {
	regions, err := u.regions.ListWithCountries(ctx)
	if err != nil {
		return RegionListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return RegionListOutput{Regions: regions}, nil
}
