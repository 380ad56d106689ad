package session

import (
	"context"
	"time"
)

// Cart 购物车映射（item_id -> quantity），仅存活于浏览器会话
type Cart map[string]int

// Clone 复制购物车映射
func (c Cart) Clone() Cart {
	cloned := make(Cart, len(c))
	for id, qty := range c {
		cloned[id] = qty
	}
	return cloned
}

// Store 浏览器会话存储接口
// 保存购物车与提示消息；数据仅在会话生命周期内有效。
type Store interface {
	GetCart(ctx context.Context, sessionID string) (Cart, error)
	SaveCart(ctx context.Context, sessionID string, cart Cart) error
	ClearCart(ctx context.Context, sessionID string) error
	PushFlash(ctx context.Context, sessionID, message string) error
	PopFlashes(ctx context.Context, sessionID string) ([]string, error)
}

// TTLFromHours 将小时配置转换为会话 TTL
func TTLFromHours(hours int) time.Duration {
	if hours <= 0 {
		hours = 72
	}
	return time.Duration(hours) * time.Hour
}
