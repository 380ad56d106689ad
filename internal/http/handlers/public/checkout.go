package public

import (
	"errors"

	"github.com/northwear-shop/internal/http/response"
	"github.com/northwear-shop/internal/payment/stripe"
	"github.com/northwear-shop/internal/service"

	"github.com/gin-gonic/gin"
)

// isProcessorError 外部支付处理器的调用失败（请求未达或响应异常）
func isProcessorError(err error) bool {
	return errors.Is(err, stripe.ErrRequestFailed) || errors.Is(err, stripe.ErrResponseInvalid)
}

// CreateCheckoutSession 从购物车创建嵌入式支付会话
func (h *Handler) CreateCheckoutSession(c *gin.Context) {
	sid, ok := getSessionID(c)
	if !ok {
		return
	}

	clientSecret, err := h.CheckoutService.CreateSession(c.Request.Context(), sid)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrItemNotFound):
			response.NotFound(c, "item not found")
		case errors.Is(err, service.ErrPaymentNotConfigured):
			response.Error(c, response.CodeInternal, "payment not configured")
		case isProcessorError(err):
			// 外部处理器拒绝或不可达，把失败原因透传给前端
			response.BadRequest(c, err.Error())
		default:
			response.Error(c, response.CodeInternal, "failed to create payment session")
		}
		return
	}

	response.Success(c, gin.H{
		"client_secret":   clientSecret,
		"publishable_key": h.PaymentClient.PublishableKey(),
	})
}

// CheckoutStatus 查询支付会话状态（直通外部处理器）
func (h *Handler) CheckoutStatus(c *gin.Context) {
	providerSessionID := c.Query("session_id")
	if providerSessionID == "" {
		response.BadRequest(c, "session id required")
		return
	}

	status, err := h.CheckoutService.Status(c.Request.Context(), providerSessionID)
	if err != nil {
		if errors.Is(err, service.ErrPaymentNotConfigured) {
			response.Error(c, response.CodeInternal, "payment not configured")
			return
		}
		if isProcessorError(err) {
			response.BadRequest(c, err.Error())
			return
		}
		response.Error(c, response.CodeInternal, "failed to fetch payment session")
		return
	}
	response.Success(c, status)
}

// CheckoutReturn 买家支付完成回跳，触发对账落单
// 认证是可选的：匿名回跳不会写订单，只会清空购物车。
func (h *Handler) CheckoutReturn(c *gin.Context) {
	sid, ok := getSessionID(c)
	if !ok {
		return
	}

	providerSessionID := c.Query("session_id")
	order, err := h.CheckoutService.CompleteReturn(c.Request.Context(), sid, providerSessionID, currentUserID(c))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidPaymentSession):
			response.BadRequest(c, "payment session id invalid")
		case errors.Is(err, service.ErrItemNotFound):
			response.NotFound(c, "item not found")
		default:
			response.Error(c, response.CodeInternal, "failed to complete checkout")
		}
		return
	}

	if order == nil {
		response.Success(c, gin.H{"order": nil})
		return
	}
	response.SuccessWithMsg(c, "order created", gin.H{"order": order})
}
