package model

import "time"

// カート（チェックアウト前の注文集約）。
// 作成時に必ず1つの地域に属する。明細の追加は一括でのみ行う。
type Cart struct {
	ID                string   `gorm:"primaryKey;type:varchar(64)" json:"id"`
	RegionID          string   `gorm:"type:varchar(64);not null;index" json:"region_id"`
	Region            *Region  `gorm:"foreignKey:RegionID" json:"region,omitempty"`
	CustomerID        *string  `gorm:"type:varchar(64);index" json:"customer_id"`
	Email             *string  `gorm:"type:varchar(255)" json:"email"`
	SalesChannelID    *string  `gorm:"type:varchar(64);index" json:"sales_channel_id"`
	ShippingAddressID *string  `gorm:"type:varchar(64)" json:"-"`
	ShippingAddress   *Address `gorm:"foreignKey:ShippingAddressID" json:"shipping_address,omitempty"`

	// ip / user_agent を自動設定し、呼び出し元のcontextを上書きマージ
	Context map[string]any `gorm:"serializer:json;type:jsonb" json:"context"`

	Items     []LineItem `gorm:"foreignKey:CartID" json:"items"`
	CreatedAt time.Time  `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
