package service

import (
	"github.com/northwear-shop/internal/models"
	"github.com/northwear-shop/internal/repository"
)

// OrderService 订单查询服务
// 订单由结账回跳写入，这里只提供按用户维度的只读视图。
type OrderService struct {
	orderRepo repository.OrderRepository
}

// NewOrderService 创建订单查询服务
func NewOrderService(orderRepo repository.OrderRepository) *OrderService {
	return &OrderService{orderRepo: orderRepo}
}

// ListByUser 获取用户的订单列表（按创建时间倒序）
func (s *OrderService) ListByUser(userID uint) ([]models.Order, error) {
	if userID == 0 {
		return nil, ErrInvalidUser
	}
	return s.orderRepo.ListByUser(userID)
}

// GetForUser 获取用户的单笔订单详情
// 订单不存在或属于其他用户时一律返回未找到，不泄露归属信息。
func (s *OrderService) GetForUser(userID, orderID uint) (*models.Order, error) {
	if userID == 0 {
		return nil, ErrInvalidUser
	}
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil || order.UserID != userID {
		return nil, ErrOrderNotFound
	}
	return order, nil
}
