package service

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/northwear-shop/internal/constants"
	"github.com/northwear-shop/internal/models"
	"github.com/northwear-shop/internal/repository"
	"github.com/northwear-shop/internal/session"

	"github.com/shopspring/decimal"
)

// CartLine 购物车行（用于响应与计价）
type CartLine struct {
	Item     *models.Item `json:"item"`
	Quantity int          `json:"quantity"`
	Subtotal models.Money `json:"subtotal"`
}

// CartService 购物车服务
// 购物车只存活于浏览器会话，不落关系库；数量不校验库存，也没有上限。
type CartService struct {
	store    session.Store
	itemRepo repository.ItemRepository
}

// NewCartService 创建购物车服务
func NewCartService(store session.Store, itemRepo repository.ItemRepository) *CartService {
	return &CartService{store: store, itemRepo: itemRepo}
}

// AddItem 将商品加入购物车（数量 +1，不存在时从 1 开始）
func (s *CartService) AddItem(ctx context.Context, sessionID string, itemID uint) error {
	item, err := s.itemRepo.GetByID(itemID)
	if err != nil {
		return err
	}
	if item == nil {
		return ErrItemNotFound
	}

	cart, err := s.store.GetCart(ctx, sessionID)
	if err != nil {
		return err
	}
	key := strconv.FormatUint(uint64(itemID), 10)
	cart[key]++
	if err := s.store.SaveCart(ctx, sessionID, cart); err != nil {
		return err
	}
	return s.store.PushFlash(ctx, sessionID, fmt.Sprintf("%s added to your cart", item.Name))
}

// UpdateItem 增减购物车内某商品的数量
// 减到 0 及以下时移除条目；商品不在购物车中时静默忽略（客户端可能持有过期状态）。
func (s *CartService) UpdateItem(ctx context.Context, sessionID string, itemID uint, action string) error {
	if action != constants.CartActionIncrease && action != constants.CartActionDecrease {
		return ErrInvalidCartAction
	}

	cart, err := s.store.GetCart(ctx, sessionID)
	if err != nil {
		return err
	}
	key := strconv.FormatUint(uint64(itemID), 10)
	qty, ok := cart[key]
	if !ok {
		return nil
	}
	switch action {
	case constants.CartActionIncrease:
		cart[key] = qty + 1
	case constants.CartActionDecrease:
		if qty-1 <= 0 {
			delete(cart, key)
		} else {
			cart[key] = qty - 1
		}
	}
	return s.store.SaveCart(ctx, sessionID, cart)
}

// View 读取购物车明细与总额（不修改购物车）
// 任一条目引用的商品已不存在时整体失败，不做部分降级。
func (s *CartService) View(ctx context.Context, sessionID string) ([]CartLine, models.Money, error) {
	cart, err := s.store.GetCart(ctx, sessionID)
	if err != nil {
		return nil, models.Money{}, err
	}
	return s.price(cart)
}

// Clear 清空购物车
func (s *CartService) Clear(ctx context.Context, sessionID string) error {
	return s.store.ClearCart(ctx, sessionID)
}

// PopFlashes 取出排队中的提示消息
func (s *CartService) PopFlashes(ctx context.Context, sessionID string) ([]string, error) {
	return s.store.PopFlashes(ctx, sessionID)
}

// price 按商品单价 × 数量逐行计价并汇总
// 结账回跳时复用同一逻辑，保证订单金额与购物车页展示一致。
func (s *CartService) price(cart session.Cart) ([]CartLine, models.Money, error) {
	keys := make([]string, 0, len(cart))
	for key := range cart {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	lines := make([]CartLine, 0, len(cart))
	total := decimal.Zero
	for _, key := range keys {
		itemID, err := strconv.ParseUint(key, 10, 64)
		if err != nil {
			return nil, models.Money{}, ErrItemNotFound
		}
		item, err := s.itemRepo.GetByID(uint(itemID))
		if err != nil {
			return nil, models.Money{}, err
		}
		if item == nil {
			return nil, models.Money{}, ErrItemNotFound
		}
		qty := cart[key]
		subtotal := item.Price.Mul(decimal.NewFromInt(int64(qty)))
		lines = append(lines, CartLine{
			Item:     item,
			Quantity: qty,
			Subtotal: models.NewMoneyFromDecimal(subtotal),
		})
		total = total.Add(subtotal)
	}
	return lines, models.NewMoneyFromDecimal(total), nil
}
