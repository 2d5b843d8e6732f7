package model

import "time"

// 地域（通貨・税率・対象国のまとまり）。
// カート作成時に参照するだけで、このフローでは更新しない。
type Region struct {
	ID           string  `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Name         string  `gorm:"type:varchar(255);not null" json:"name"`
	CurrencyCode string  `gorm:"type:varchar(3);not null;index" json:"currency_code"`
	//税率（％）
	TaxRate   float64   `gorm:"not null;default:0" json:"tax_rate"`
	Countries []Country `gorm:"foreignKey:RegionID" json:"countries"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

// ISO 3166-1 alpha-2の国コード。1国は1地域に属する。
type Country struct {
	ID       int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	ISO2     string `gorm:"column:iso_2;type:varchar(2);not null;uniqueIndex" json:"iso_2"`
	RegionID string `gorm:"type:varchar(64);not null;index" json:"region_id"`
}
