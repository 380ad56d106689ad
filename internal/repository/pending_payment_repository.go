package repository

import (
	"errors"
	"time"

	"github.com/northwear-shop/internal/constants"
	"github.com/northwear-shop/internal/models"

	"gorm.io/gorm"
)

// PendingPaymentRepository 待支付记录数据访问接口
type PendingPaymentRepository interface {
	Create(record *models.PendingPayment) error
	GetByProviderSessionID(providerSessionID string) (*models.PendingPayment, error)
	MarkCompleted(providerSessionID string, orderID *uint) error
}

// GormPendingPaymentRepository GORM 实现
type GormPendingPaymentRepository struct {
	db *gorm.DB
}

// NewPendingPaymentRepository 创建待支付记录仓库
func NewPendingPaymentRepository(db *gorm.DB) *GormPendingPaymentRepository {
	return &GormPendingPaymentRepository{db: db}
}

// Create 创建待支付记录
func (r *GormPendingPaymentRepository) Create(record *models.PendingPayment) error {
	return r.db.Create(record).Error
}

// GetByProviderSessionID 根据外部支付会话 ID 获取待支付记录
func (r *GormPendingPaymentRepository) GetByProviderSessionID(providerSessionID string) (*models.PendingPayment, error) {
	var record models.PendingPayment
	if err := r.db.Where("provider_session_id = ?", providerSessionID).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

// MarkCompleted 将待支付记录标记为已完成
func (r *GormPendingPaymentRepository) MarkCompleted(providerSessionID string, orderID *uint) error {
	now := time.Now()
	updates := map[string]interface{}{
		"status":       constants.PendingPaymentStatusCompleted,
		"completed_at": &now,
	}
	if orderID != nil {
		updates["order_id"] = *orderID
	}
	return r.db.Model(&models.PendingPayment{}).
		Where("provider_session_id = ?", providerSessionID).
		Updates(updates).Error
}
