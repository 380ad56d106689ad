package models

import (
	"time"
)

// PendingPayment 待支付记录表
// 支付会话创建与订单落库分属两次请求，中间没有任何本地记录可查；
// 该表在第一步写入、第二步提升为订单，用于对账与防止重复落单。
type PendingPayment struct {
	ID                uint       `gorm:"primarykey" json:"id"`                                // 主键
	ProviderSessionID string     `gorm:"uniqueIndex;not null" json:"provider_session_id"`     // 外部支付会话ID
	CartSessionID     string     `gorm:"index;not null" json:"cart_session_id"`               // 浏览器会话ID
	Amount            Money      `gorm:"type:decimal(20,2);not null;default:0" json:"amount"` // 会话创建时的购物车总额
	Status            string     `gorm:"index;not null" json:"status"`                        // 状态（pending/completed）
	OrderID           *uint      `gorm:"index" json:"order_id,omitempty"`                     // 提升后的订单ID
	CreatedAt         time.Time  `gorm:"index" json:"created_at"`                             // 创建时间
	CompletedAt       *time.Time `json:"completed_at"`                                        // 完成时间
}

// TableName 指定表名
func (PendingPayment) TableName() string {
	return "pending_payments"
}
