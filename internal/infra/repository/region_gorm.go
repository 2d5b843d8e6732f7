package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"

	"gorm.io/gorm"
)

type RegionGormRepository struct {
	db *gorm.DB
}

// DI
func NewRegionGormRepository(db *gorm.DB) *RegionGormRepository {
	return &RegionGormRepository{db: db}
}

// 国も含めて全地域を作成順で取得
func (r *RegionGormRepository) ListWithCountries(ctx context.Context) ([]model.Region, error) {
	var regions []model.Region

	if err := r.db.WithContext(ctx).
		Preload("Countries").
		Order("created_at asc").
		Find(&regions).Error; err != nil {
		return []model.Region{}, err
	}

	return regions, nil
}

// 地域を1件取得
func (r *RegionGormRepository) FindByID(ctx context.Context, regionID string) (model.Region, error) {
	var region model.Region

	err := r.db.WithContext(ctx).
		Preload("Countries").
		Where("id = ?", regionID).
		First(&region).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Region{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Region{}, err
	}
	return region, nil
}
