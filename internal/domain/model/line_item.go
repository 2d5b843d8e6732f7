package model

import "time"

// カートの明細。
// 生成時点の価格とタイトルを必ずスナップショット保存。
type LineItem struct {
	ID        string `gorm:"primaryKey;type:varchar(64)" json:"id"`
	CartID    string `gorm:"type:varchar(64);not null;index" json:"cart_id"`
	VariantID string `gorm:"type:varchar(64);not null;index" json:"variant_id"`
	//販売チャネル検証で使う
	ProductID string `gorm:"type:varchar(64);not null;index" json:"product_id"`
	Title     string `gorm:"type:varchar(255);not null" json:"title"`
	UnitPrice int64  `gorm:"not null;column:unit_price" json:"unit_price"`
	Quantity  int64  `gorm:"not null" json:"quantity"`
	//カート内の並び順（リクエスト順）
	Position  int       `gorm:"not null;default:0" json:"position"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
