package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"

	"gorm.io/gorm"
)

type VariantGormRepository struct {
	db *gorm.DB
}

// DI
func NewVariantGormRepository(db *gorm.DB) *VariantGormRepository {
	return &VariantGormRepository{db: db}
}

// バリアントを1件取得
func (r *VariantGormRepository) FindByID(ctx context.Context, variantID string) (model.ProductVariant, error) {
	var v model.ProductVariant

	err := r.db.WithContext(ctx).
		Where("id = ?", variantID).
		First(&v).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.ProductVariant{}, repo.ErrNotFound
	}
	if err != nil {
		return model.ProductVariant{}, err
	}
	return v, nil
}

// バリアントの価格一覧（地域限定・通貨単位の両方）
func (r *VariantGormRepository) ListPrices(ctx context.Context, variantID string) ([]model.MoneyAmount, error) {
	var prices []model.MoneyAmount

	if err := r.db.WithContext(ctx).
		Where("variant_id = ?", variantID).
		Order("id asc").
		Find(&prices).Error; err != nil {
		return []model.MoneyAmount{}, err
	}

	return prices, nil
}
