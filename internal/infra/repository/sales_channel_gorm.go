package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"

	"gorm.io/gorm"
)

type SalesChannelGormRepository struct {
	db *gorm.DB
}

// DI
func NewSalesChannelGormRepository(db *gorm.DB) *SalesChannelGormRepository {
	return &SalesChannelGormRepository{db: db}
}

// チャネルを1件取得
func (r *SalesChannelGormRepository) FindByID(ctx context.Context, channelID string) (model.SalesChannel, error) {
	var sc model.SalesChannel

	err := r.db.WithContext(ctx).
		Where("id = ?", channelID).
		First(&sc).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.SalesChannel{}, repo.ErrNotFound
	}
	if err != nil {
		return model.SalesChannel{}, err
	}
	return sc, nil
}

// チャネルがその商品を扱っているかを判定
func (r *SalesChannelGormRepository) CarriesProduct(ctx context.Context, channelID string, productID string) (bool, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&model.ProductSalesChannel{}).
		Where("sales_channel_id = ? AND product_id = ?", channelID, productID).
		Count(&count).Error

	if err != nil {
		return false, err
	}

	return count > 0, nil
}
