package model

import "time"

// バリアントの価格。
// region_id があれば地域限定価格、無ければ通貨単位の価格。
// 地域限定が通貨単位より優先される。
type MoneyAmount struct {
	ID           string    `gorm:"primaryKey;type:varchar(64)" json:"id"`
	VariantID    string    `gorm:"type:varchar(64);not null;index" json:"variant_id"`
	RegionID     *string   `gorm:"type:varchar(64);index" json:"region_id"`
	CurrencyCode string    `gorm:"type:varchar(3);not null;index" json:"currency_code"`
	Amount       int64     `gorm:"not null" json:"amount"`
	CreatedAt    time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
