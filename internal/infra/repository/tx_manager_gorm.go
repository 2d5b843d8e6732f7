package repository

import (
	"context"

	repo "storefront/internal/repository"

	"gorm.io/gorm"
)

type txReposGorm struct {
	carts         repo.CartRepository
	lineItems     repo.LineItemRepository
	variants      repo.VariantRepository
	salesChannels repo.SalesChannelRepository
}

func (r *txReposGorm) Carts() repo.CartRepository                 { return r.carts }
func (r *txReposGorm) LineItems() repo.LineItemRepository         { return r.lineItems }
func (r *txReposGorm) Variants() repo.VariantRepository           { return r.variants }
func (r *txReposGorm) SalesChannels() repo.SalesChannelRepository { return r.salesChannels }

type TxManagerGorm struct {
	db *gorm.DB
}

func NewTxManagerGorm(db *gorm.DB) *TxManagerGorm {
	return &TxManagerGorm{db: db}
}

func (tm *TxManagerGorm) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		//repoはtxを持ったDBで作り直す
		r := &txReposGorm{
			carts:         NewCartGormRepository(tx),
			lineItems:     NewLineItemGormRepository(tx),
			variants:      NewVariantGormRepository(tx),
			salesChannels: NewSalesChannelGormRepository(tx),
		}
		return fn(r)
	})
}
