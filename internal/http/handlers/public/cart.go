package public

import (
	"errors"

	"github.com/northwear-shop/internal/http/response"
	"github.com/northwear-shop/internal/service"

	"github.com/gin-gonic/gin"
)

// CartAddRequest 加入购物车请求
type CartAddRequest struct {
	ItemID uint `json:"item_id" binding:"required"`
}

// CartUpdateRequest 调整购物车数量请求
type CartUpdateRequest struct {
	ItemID uint   `json:"item_id" binding:"required"`
	Action string `json:"action" binding:"required"`
}

// AddCartItem 将商品加入购物车
func (h *Handler) AddCartItem(c *gin.Context) {
	sid, ok := getSessionID(c)
	if !ok {
		return
	}

	var req CartAddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "request invalid")
		return
	}

	if err := h.CartService.AddItem(c.Request.Context(), sid, req.ItemID); err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			response.NotFound(c, "item not found")
			return
		}
		response.Error(c, response.CodeInternal, "failed to update cart")
		return
	}
	response.SuccessWithMsg(c, "item added", nil)
}

// UpdateCartItem 增减购物车内商品数量
func (h *Handler) UpdateCartItem(c *gin.Context) {
	sid, ok := getSessionID(c)
	if !ok {
		return
	}

	var req CartUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "request invalid")
		return
	}

	if err := h.CartService.UpdateItem(c.Request.Context(), sid, req.ItemID, req.Action); err != nil {
		if errors.Is(err, service.ErrInvalidCartAction) {
			response.BadRequest(c, "cart action invalid")
			return
		}
		response.Error(c, response.CodeInternal, "failed to update cart")
		return
	}
	response.Success(c, nil)
}

// GetCart 获取购物车明细、总额与排队中的提示消息
func (h *Handler) GetCart(c *gin.Context) {
	sid, ok := getSessionID(c)
	if !ok {
		return
	}

	lines, total, err := h.CartService.View(c.Request.Context(), sid)
	if err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			response.NotFound(c, "item not found")
			return
		}
		response.Error(c, response.CodeInternal, "failed to fetch cart")
		return
	}

	flashes, err := h.CartService.PopFlashes(c.Request.Context(), sid)
	if err != nil {
		flashes = nil
	}

	response.Success(c, gin.H{
		"items":    lines,
		"total":    total,
		"messages": flashes,
	})
}
