package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartGormRepository struct {
	db *gorm.DB
}

// DI
func NewCartGormRepository(db *gorm.DB) *CartGormRepository {
	return &CartGormRepository{db: db}
}

// カートを作成。配送先住所があれば先に作成してFKを張る。
// 関連の自動保存はさせない（明細はCreateBulkでのみ入れる）。
func (r *CartGormRepository) Create(ctx context.Context, cart *model.Cart) error {
	if cart.ShippingAddress != nil {
		if err := r.db.WithContext(ctx).Create(cart.ShippingAddress).Error; err != nil {
			return err
		}
		cart.ShippingAddressID = &cart.ShippingAddress.ID
	}

	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(cart).Error
}

// カートを1件取得（関連なし）
func (r *CartGormRepository) FindByID(ctx context.Context, cartID string) (model.Cart, error) {
	var cart model.Cart

	err := r.db.WithContext(ctx).
		Where("id = ?", cartID).
		First(&cart).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Cart{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Cart{}, err
	}
	return cart, nil
}

// 明細・住所・地域も含めて取得。明細はリクエスト順。
func (r *CartGormRepository) FindWithRelations(ctx context.Context, cartID string) (model.Cart, error) {
	var cart model.Cart

	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position asc")
		}).
		Preload("ShippingAddress").
		Preload("Region").
		Where("id = ?", cartID).
		First(&cart).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Cart{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Cart{}, err
	}
	return cart, nil
}
