package model

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID          string         `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Title       string         `gorm:"type:varchar(255);not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	CreatedAt   time.Time      `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"not null;autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// 商品バリアント（購入単位）。価格はMoneyAmountで地域／通貨ごとに持つ。
type ProductVariant struct {
	ID        string        `gorm:"primaryKey;type:varchar(64)" json:"id"`
	ProductID string        `gorm:"type:varchar(64);not null;index" json:"product_id"`
	Title     string        `gorm:"type:varchar(255);not null" json:"title"`
	SKU       string        `gorm:"type:varchar(100);uniqueIndex" json:"sku"`
	Prices    []MoneyAmount `gorm:"foreignKey:VariantID" json:"prices,omitempty"`
	CreatedAt time.Time     `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time     `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
