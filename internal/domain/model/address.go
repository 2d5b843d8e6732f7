package model

import "time"

// 配送先住所
type Address struct {
	ID string `gorm:"primaryKey;type:varchar(64)" json:"id"`

	//国コード（小文字で保存）
	CountryCode string `gorm:"type:varchar(2);not null" json:"country_code"`

	//郵便番号
	PostalCode string `gorm:"type:varchar(20)" json:"postal_code"`

	//都道府県・州
	Province string `gorm:"type:varchar(100)" json:"province"`

	//市区町村
	City string `gorm:"type:varchar(255)" json:"city"`

	//番地など
	Line1 string `gorm:"type:varchar(255)" json:"line1"`

	//建物名など
	Line2 string `gorm:"type:varchar(255)" json:"line2"`

	//宛名
	Name string `gorm:"type:varchar(255)" json:"name"`

	//電話番号
	Phone string `gorm:"type:varchar(30)" json:"phone"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
