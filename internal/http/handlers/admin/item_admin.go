package admin

import (
	"errors"

	"github.com/northwear-shop/internal/http/response"
	"github.com/northwear-shop/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateItemRequest 创建商品请求
type CreateItemRequest struct {
	Name            string `json:"name" binding:"required"`
	Body            string `json:"body"`
	ImageURL        string `json:"image_url"`
	Price           string `json:"price" binding:"required"`
	CategoryID      uint   `json:"category_id" binding:"required"`
	ProviderPriceID string `json:"provider_price_id"`
}

// CreateItem 创建商品
func (h *Handler) CreateItem(c *gin.Context) {
	var req CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "request invalid")
		return
	}

	item, err := h.CatalogService.CreateItem(service.CreateItemInput{
		Name:            req.Name,
		Body:            req.Body,
		ImageURL:        req.ImageURL,
		Price:           req.Price,
		CategoryID:      req.CategoryID,
		ProviderPriceID: req.ProviderPriceID,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidItemInput):
			response.BadRequest(c, "item input invalid")
		case errors.Is(err, service.ErrCategoryNotFound):
			response.NotFound(c, "category not found")
		default:
			response.Error(c, response.CodeInternal, "failed to create item")
		}
		return
	}
	response.SuccessWithMsg(c, "item created", gin.H{"item": item})
}
