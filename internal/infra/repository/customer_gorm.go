package repository

import (
	"context"
	"errors"
	"time"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"

	"gorm.io/gorm"
)

type CustomerGormRepository struct {
	db *gorm.DB
}

// DI
func NewCustomerGormRepository(db *gorm.DB) *CustomerGormRepository {
	return &CustomerGormRepository{db: db}
}

func (r *CustomerGormRepository) Create(ctx context.Context, customer *model.Customer) error {
	return r.db.WithContext(ctx).Create(customer).Error
}

// IDから顧客を1件取得
func (r *CustomerGormRepository) FindByID(ctx context.Context, customerID string) (model.Customer, error) {
	var c model.Customer

	err := r.db.WithContext(ctx).
		Where("id = ?", customerID).
		First(&c).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Customer{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Customer{}, err
	}
	return c, nil
}

// メールから顧客を1件取得
func (r *CustomerGormRepository) FindByEmail(ctx context.Context, email string) (model.Customer, error) {
	var c model.Customer

	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&c).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Customer{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Customer{}, err
	}
	return c, nil
}

// 最終ログイン時刻を更新
func (r *CustomerGormRepository) UpdateLastLogin(ctx context.Context, customerID string, at time.Time) error {
	res := r.db.WithContext(ctx).
		Model(&model.Customer{}).
		Where("id = ?", customerID).
		Update("last_login_at", at)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
