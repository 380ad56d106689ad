package public

import (
	"github.com/northwear-shop/internal/http/response"

	"github.com/gin-gonic/gin"
)

// getUserID 读取认证中间件写入的用户 ID，缺失或类型错误时直接响应失败
func getUserID(c *gin.Context) (uint, bool) {
	value, exists := c.Get("user_id")
	if !exists {
		response.Unauthorized(c, "user not authenticated")
		return 0, false
	}
	uid, ok := value.(uint)
	if !ok || uid == 0 {
		response.Unauthorized(c, "user identity invalid")
		return 0, false
	}
	return uid, true
}

// currentUserID 读取可选认证写入的用户 ID，未登录时返回 0
func currentUserID(c *gin.Context) uint {
	value, exists := c.Get("user_id")
	if !exists {
		return 0
	}
	uid, _ := value.(uint)
	return uid
}

// getSessionID 读取会话中间件写入的购物车会话标识
func getSessionID(c *gin.Context) (string, bool) {
	value, exists := c.Get("session_id")
	if !exists {
		response.Error(c, response.CodeInternal, "session not initialized")
		return "", false
	}
	sid, ok := value.(string)
	if !ok || sid == "" {
		response.Error(c, response.CodeInternal, "session not initialized")
		return "", false
	}
	return sid, true
}
