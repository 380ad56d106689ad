package public

import (
	"errors"
	"strconv"

	"github.com/northwear-shop/internal/http/response"
	"github.com/northwear-shop/internal/service"

	"github.com/gin-gonic/gin"
)

// ListItems 获取商品列表，支持按分类过滤
func (h *Handler) ListItems(c *gin.Context) {
	var categoryID uint
	if raw := c.Query("category_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			response.BadRequest(c, "category id invalid")
			return
		}
		categoryID = uint(parsed)
	}

	items, err := h.CatalogService.ListItems(categoryID)
	if err != nil {
		response.Error(c, response.CodeInternal, "failed to fetch items")
		return
	}
	response.Success(c, gin.H{"items": items})
}

// GetItem 获取商品详情
func (h *Handler) GetItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "item id invalid")
		return
	}

	item, err := h.CatalogService.GetItem(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			response.NotFound(c, "item not found")
			return
		}
		response.Error(c, response.CodeInternal, "failed to fetch item")
		return
	}
	response.Success(c, gin.H{"item": item})
}

// ListCategories 获取分类列表
func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.CatalogService.ListCategories()
	if err != nil {
		response.Error(c, response.CodeInternal, "failed to fetch categories")
		return
	}
	response.Success(c, gin.H{"categories": categories})
}
