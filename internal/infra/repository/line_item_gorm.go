package repository

import (
	"context"

	"storefront/internal/domain/model"

	"gorm.io/gorm"
)

type LineItemGormRepository struct {
	db *gorm.DB
}

// DI
func NewLineItemGormRepository(db *gorm.DB) *LineItemGormRepository {
	return &LineItemGormRepository{db: db}
}

// 明細を入力順のまま一括作成。positionで並びを固定する。
func (r *LineItemGormRepository) CreateBulk(ctx context.Context, cartID string, items []model.LineItem) error {
	if len(items) == 0 {
		return nil
	}

	for i := range items {
		items[i].CartID = cartID
		items[i].Position = i
	}

	return r.db.WithContext(ctx).Create(&items).Error
}

// カートの明細を並び順で取得
func (r *LineItemGormRepository) ListByCartID(ctx context.Context, cartID string) ([]model.LineItem, error) {
	var items []model.LineItem

	if err := r.db.WithContext(ctx).
		Where("cart_id = ?", cartID).
		Order("position asc").
		Find(&items).Error; err != nil {
		return []model.LineItem{}, err
	}

	return items, nil
}
