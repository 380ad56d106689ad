package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

// QuantityMap 商品数量快照（item_id -> quantity），以 JSON 存储
type QuantityMap map[string]int

// Value 实现 driver.Valuer 接口
func (q QuantityMap) Value() (driver.Value, error) {
	if q == nil {
		return nil, nil
	}
	return json.Marshal(q)
}

// Scan 实现 sql.Scanner 接口
func (q *QuantityMap) Scan(value interface{}) error {
	if value == nil {
		*q = make(QuantityMap)
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, q)
	case string:
		return json.Unmarshal([]byte(v), q)
	default:
		return nil
	}
}

// Order 订单表（结账完成后的购买快照，创建后不可变更）
type Order struct {
	ID                uint        `gorm:"primarykey" json:"id"`                                     // 主键
	UserID            uint        `gorm:"index;not null" json:"user_id"`                            // 用户ID
	Items             QuantityMap `gorm:"type:json;not null" json:"items"`                          // 结账时的购物车快照
	TotalPrice        Money       `gorm:"type:decimal(20,2);not null;default:0" json:"total_price"` // 实付总额
	ProviderSessionID string      `gorm:"uniqueIndex;not null" json:"provider_session_id"`          // 外部支付会话ID（幂等保护）
	CreatedAt         time.Time   `gorm:"index" json:"created_at"`                                  // 下单时间
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}
