package repository

import (
	"context"
	"time"

	"storefront/internal/domain/model"
)

type CustomerRepository interface {
	Create(ctx context.Context, customer *model.Customer) error
	// IDから顧客を1件取得する。
	FindByID(ctx context.Context, customerID string) (model.Customer, error)
	//メールから顧客を1件取得する。
	FindByEmail(ctx context.Context, email string) (model.Customer, error)
	//最終ログイン時刻を更新
	UpdateLastLogin(ctx context.Context, customerID string, at time.Time) error
}
