package model

import "time"

// 販売チャネル（ストアフロント単位）。
// フィーチャーフラグ有効時のみ、扱える商品を制限する。
type SalesChannel struct {
	ID          string    `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	IsDisabled  bool      `gorm:"not null;default:false" json:"is_disabled"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

// チャネルが扱う商品の関連
type ProductSalesChannel struct {
	ID             int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	SalesChannelID string `gorm:"type:varchar(64);not null;uniqueIndex:idx_channel_product" json:"sales_channel_id"`
	ProductID      string `gorm:"type:varchar(64);not null;uniqueIndex:idx_channel_product" json:"product_id"`
}
