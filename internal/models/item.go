package models

import (
	"time"
)

// Item 商品表
type Item struct {
	ID              uint      `gorm:"primarykey" json:"id"`                                 // 主键
	Name            string    `gorm:"not null" json:"name"`                                 // 商品名称
	Body            string    `gorm:"type:text;not null" json:"body"`                       // 商品详情（富文本）
	ImageURL        string    `gorm:"type:varchar(500);not null" json:"image_url"`          // 商品图片
	Price           Money     `gorm:"type:decimal(20,2);not null;default:0" json:"price"`   // 本地价格（展示与计价）
	CategoryID      uint      `gorm:"not null;index" json:"category_id"`                    // 分类ID
	ProviderPriceID string    `gorm:"type:varchar(100)" json:"provider_price_id,omitempty"` // 外部支付系统价格标识（可选）
	CreatedAt       time.Time `gorm:"index" json:"created_at"`                              // 创建时间

	Category Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"` // 分类信息
}

// TableName 指定表名
func (Item) TableName() string {
	return "items"
}
