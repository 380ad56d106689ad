package service

import (
	"strings"

	"github.com/northwear-shop/internal/models"
	"github.com/northwear-shop/internal/repository"
)

// CatalogService 商品目录服务
type CatalogService struct {
	itemRepo     repository.ItemRepository
	categoryRepo repository.CategoryRepository
}

// NewCatalogService 创建商品目录服务
func NewCatalogService(itemRepo repository.ItemRepository, categoryRepo repository.CategoryRepository) *CatalogService {
	return &CatalogService{itemRepo: itemRepo, categoryRepo: categoryRepo}
}

// CreateItemInput 创建商品输入
type CreateItemInput struct {
	Name            string
	Body            string
	ImageURL        string
	Price           string
	CategoryID      uint
	ProviderPriceID string
}

// ListItems 获取商品列表，categoryID 为 0 时不过滤分类
func (s *CatalogService) ListItems(categoryID uint) ([]models.Item, error) {
	if categoryID == 0 {
		return s.itemRepo.List()
	}
	return s.itemRepo.ListByCategory(categoryID)
}

// GetItem 获取商品详情
func (s *CatalogService) GetItem(id uint) (*models.Item, error) {
	item, err := s.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}
	return item, nil
}

// ListCategories 获取分类列表
func (s *CatalogService) ListCategories() ([]models.Category, error) {
	return s.categoryRepo.List()
}

// CreateItem 创建商品（管理员）
// 价格必须是可解析的非负十进制数；分类必须已存在。
func (s *CatalogService) CreateItem(input CreateItemInput) (*models.Item, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrInvalidItemInput
	}
	price, err := models.NewMoneyFromString(input.Price)
	if err != nil || price.IsNegative() {
		return nil, ErrInvalidItemInput
	}

	category, err := s.categoryRepo.GetByID(input.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	item := models.Item{
		Name:            name,
		Body:            input.Body,
		ImageURL:        strings.TrimSpace(input.ImageURL),
		Price:           price,
		CategoryID:      category.ID,
		ProviderPriceID: strings.TrimSpace(input.ProviderPriceID),
	}
	if err := s.itemRepo.Create(&item); err != nil {
		return nil, err
	}
	return &item, nil
}
