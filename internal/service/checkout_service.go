package service

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"github.com/northwear-shop/internal/constants"
	"github.com/northwear-shop/internal/logger"
	"github.com/northwear-shop/internal/models"
	"github.com/northwear-shop/internal/payment/stripe"
	"github.com/northwear-shop/internal/repository"
	"github.com/northwear-shop/internal/session"

	"github.com/shopspring/decimal"
)

// PaymentProcessor 外部支付处理器能力
// 以接口注入，测试可替换假处理器；不做自动重试，请求次数保持可观测。
type PaymentProcessor interface {
	CreateEmbeddedSession(ctx context.Context, items []stripe.LineItem) (*stripe.SessionResult, error)
	RetrieveSession(ctx context.Context, sessionID string) (*stripe.StatusResult, error)
}

// SessionStatus 支付会话状态查询结果
type SessionStatus struct {
	Status        string `json:"status"`
	CustomerEmail string `json:"customer_email"`
}

// CheckoutService 结账协调服务
// 负责把会话购物车换成外部支付会话，并在买家回跳时把已完成的支付落成订单。
// 支付会话创建与订单写入分属两次 HTTP 请求，二者之间没有任何事务跨越。
type CheckoutService struct {
	store       session.Store
	cartService *CartService
	itemRepo    repository.ItemRepository
	orderRepo   repository.OrderRepository
	pendingRepo repository.PendingPaymentRepository
	processor   PaymentProcessor
}

// NewCheckoutService 创建结账协调服务
func NewCheckoutService(store session.Store, cartService *CartService, itemRepo repository.ItemRepository, orderRepo repository.OrderRepository, pendingRepo repository.PendingPaymentRepository, processor PaymentProcessor) *CheckoutService {
	return &CheckoutService{
		store:       store,
		cartService: cartService,
		itemRepo:    itemRepo,
		orderRepo:   orderRepo,
		pendingRepo: pendingRepo,
		processor:   processor,
	}
}

// CreateSession 从购物车创建外部支付会话，返回前端支付组件所需的 client secret
// 缺少外部价格标识的商品静默跳过，不向调用方报错；购物车本身不被修改。
// 行项目为空时仍然发起外部调用，由外部服务按请求错误拒绝。
func (s *CheckoutService) CreateSession(ctx context.Context, sessionID string) (string, error) {
	if s.processor == nil {
		return "", ErrPaymentNotConfigured
	}
	cart, err := s.store.GetCart(ctx, sessionID)
	if err != nil {
		return "", err
	}

	keys := make([]string, 0, len(cart))
	for key := range cart {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	lineItems := make([]stripe.LineItem, 0, len(cart))
	amount := decimal.Zero
	for _, key := range keys {
		itemID, err := strconv.ParseUint(key, 10, 64)
		if err != nil {
			return "", ErrItemNotFound
		}
		item, err := s.itemRepo.GetByID(uint(itemID))
		if err != nil {
			return "", err
		}
		if item == nil {
			return "", ErrItemNotFound
		}
		if strings.TrimSpace(item.ProviderPriceID) == "" {
			logger.Warnw("checkout_item_missing_provider_price", "item_id", item.ID)
			continue
		}
		qty := cart[key]
		lineItems = append(lineItems, stripe.LineItem{
			PriceID:  item.ProviderPriceID,
			Quantity: qty,
		})
		amount = amount.Add(item.Price.Mul(decimal.NewFromInt(int64(qty))))
	}

	result, err := s.processor.CreateEmbeddedSession(ctx, lineItems)
	if err != nil {
		return "", err
	}

	record := &models.PendingPayment{
		ProviderSessionID: result.SessionID,
		CartSessionID:     sessionID,
		Amount:            models.NewMoneyFromDecimal(amount),
		Status:            constants.PendingPaymentStatusPending,
	}
	if err := s.pendingRepo.Create(record); err != nil {
		// 支付会话已在外部创建成功，本地记录失败只降级对账能力，不阻断结账
		logger.Errorw("pending_payment_record_failed", "provider_session_id", result.SessionID, "error", err)
	}
	return result.ClientSecret, nil
}

// Status 查询外部支付会话状态，不涉及任何本地状态
func (s *CheckoutService) Status(ctx context.Context, providerSessionID string) (*SessionStatus, error) {
	if s.processor == nil {
		return nil, ErrPaymentNotConfigured
	}
	result, err := s.processor.RetrieveSession(ctx, providerSessionID)
	if err != nil {
		return nil, err
	}
	return &SessionStatus{
		Status:        result.Status,
		CustomerEmail: result.CustomerEmail,
	}, nil
}

// CompleteReturn 买家支付完成回跳后的对账落单
// 仅当会话购物车非空且调用方已登录时写订单，否则静默跳过；
// 无论是否落单，购物车都会在操作结束时被清空——匿名回跳会直接丢弃购物车。
// 同一外部支付会话重复回跳不会产生第二笔订单。
func (s *CheckoutService) CompleteReturn(ctx context.Context, sessionID, providerSessionID string, userID uint) (*models.Order, error) {
	providerSessionID = strings.TrimSpace(providerSessionID)
	if providerSessionID == "" {
		return nil, ErrInvalidPaymentSession
	}

	cart, err := s.store.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(cart) == 0 || userID == 0 {
		if err := s.store.ClearCart(ctx, sessionID); err != nil {
			return nil, err
		}
		return nil, nil
	}

	existing, err := s.orderRepo.GetByProviderSessionID(providerSessionID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if err := s.store.ClearCart(ctx, sessionID); err != nil {
			return nil, err
		}
		return nil, nil
	}

	_, total, err := s.cartService.price(cart)
	if err != nil {
		return nil, err
	}

	order := &models.Order{
		UserID:            userID,
		Items:             models.QuantityMap(cart),
		TotalPrice:        total,
		ProviderSessionID: providerSessionID,
	}
	if err := s.orderRepo.Create(order); err != nil {
		return nil, err
	}

	if err := s.pendingRepo.MarkCompleted(providerSessionID, &order.ID); err != nil {
		logger.Warnw("pending_payment_mark_completed_failed", "provider_session_id", providerSessionID, "error", err)
	}

	if err := s.store.ClearCart(ctx, sessionID); err != nil {
		return nil, err
	}
	return order, nil
}
