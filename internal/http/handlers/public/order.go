package public

import (
	"errors"
	"strconv"

	"github.com/northwear-shop/internal/http/response"
	"github.com/northwear-shop/internal/service"

	"github.com/gin-gonic/gin"
)

// ListOrders 获取当前用户的订单列表
func (h *Handler) ListOrders(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	orders, err := h.OrderService.ListByUser(uid)
	if err != nil {
		response.Error(c, response.CodeInternal, "failed to fetch orders")
		return
	}
	response.Success(c, gin.H{"orders": orders})
}

// GetOrder 获取当前用户的订单详情
func (h *Handler) GetOrder(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "order id invalid")
		return
	}

	order, err := h.OrderService.GetForUser(uid, uint(id))
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			response.NotFound(c, "order not found")
			return
		}
		response.Error(c, response.CodeInternal, "failed to fetch order")
		return
	}
	response.Success(c, gin.H{"order": order})
}
