package repository

import (
	"errors"

	"github.com/northwear-shop/internal/models"

	"gorm.io/gorm"
)

// ItemRepository 商品数据访问接口
type ItemRepository interface {
	List() ([]models.Item, error)
	ListByCategory(categoryID uint) ([]models.Item, error)
	GetByID(id uint) (*models.Item, error)
	Create(item *models.Item) error
}

// GormItemRepository GORM 实现
type GormItemRepository struct {
	db *gorm.DB
}

// NewItemRepository 创建商品仓库
func NewItemRepository(db *gorm.DB) *GormItemRepository {
	return &GormItemRepository{db: db}
}

// List 商品列表（首页）
func (r *GormItemRepository) List() ([]models.Item, error) {
	var items []models.Item
	if err := r.db.Preload("Category").Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ListByCategory 按分类获取商品
func (r *GormItemRepository) ListByCategory(categoryID uint) ([]models.Item, error) {
	var items []models.Item
	if err := r.db.Where("category_id = ?", categoryID).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// GetByID 根据 ID 获取商品
func (r *GormItemRepository) GetByID(id uint) (*models.Item, error) {
	var item models.Item
	if err := r.db.Preload("Category").First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// Create 创建商品
func (r *GormItemRepository) Create(item *models.Item) error {
	return r.db.Create(item).Error
}
