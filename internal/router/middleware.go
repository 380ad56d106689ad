package router

import (
	"strconv"
	"strings"
	"time"

	"github.com/northwear-shop/internal/config"
	"github.com/northwear-shop/internal/constants"
	"github.com/northwear-shop/internal/http/response"
	"github.com/northwear-shop/internal/repository"
	"github.com/northwear-shop/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const requestIDKey = "request_id"
const requestIDHeader = "X-Request-ID"
const sessionIDKey = "session_id"
const userIDKey = "user_id"
const userRoleKey = "user_role"

// CORSMiddleware 跨域中间件
func CORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	allowedOrigins := cfg.AllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	allowedMethods := cfg.AllowedMethods
	if len(allowedMethods) == 0 {
		allowedMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	}
	allowedHeaders := cfg.AllowedHeaders
	if len(allowedHeaders) == 0 {
		allowedHeaders = []string{
			"Content-Type",
			"Content-Length",
			"Accept-Encoding",
			"Authorization",
			"Cache-Control",
			"X-Requested-With",
		}
	}
	methodsHeader := strings.Join(allowedMethods, ", ")
	headersHeader := strings.Join(allowedHeaders, ", ")

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		allowedOrigin := resolveAllowedOrigin(origin, allowedOrigins, cfg.AllowCredentials)
		if allowedOrigin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
			if allowedOrigin != "*" {
				c.Writer.Header().Add("Vary", "Origin")
			}
		}
		if cfg.AllowCredentials {
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		}
		c.Writer.Header().Set("Access-Control-Allow-Headers", headersHeader)
		c.Writer.Header().Set("Access-Control-Allow-Methods", methodsHeader)
		if cfg.MaxAge > 0 {
			c.Writer.Header().Set("Access-Control-Max-Age", strconv.Itoa(cfg.MaxAge))
		}

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

func resolveAllowedOrigin(origin string, allowedOrigins []string, allowCredentials bool) string {
	if len(allowedOrigins) == 0 {
		return ""
	}
	for _, allowed := range allowedOrigins {
		if allowed == "*" {
			if allowCredentials && origin != "" {
				return origin
			}
			return "*"
		}
	}
	if origin == "" {
		return ""
	}
	for _, allowed := range allowedOrigins {
		if strings.EqualFold(allowed, origin) {
			return origin
		}
	}
	return ""
}

// RequestIDMiddleware 请求 ID 中间件
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := strings.TrimSpace(c.GetHeader(requestIDHeader))
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(requestIDKey, requestID)
		c.Writer.Header().Set(requestIDHeader, requestID)
		c.Next()
	}
}

// LoggerMiddleware 结构化请求日志中间件
func LoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.L()
	}
	sugar := logger.Sugar()
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log := sugar.With(
			"request_id", getRequestID(c),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		)
		if len(c.Errors) > 0 {
			log.Errorw("request", "errors", c.Errors.String())
			return
		}
		log.Infow("request")
	}
}

func getRequestID(c *gin.Context) string {
	value, ok := c.Get(requestIDKey)
	if !ok {
		return ""
	}
	if requestID, ok := value.(string); ok {
		return requestID
	}
	return ""
}

// SessionMiddleware 购物车会话中间件
// 没有会话 Cookie 时签发一个新的随机标识；会话只承载购物车与提示消息，
// 与用户登录态相互独立，登录不会迁移或合并购物车。
func SessionMiddleware(cfg config.SessionConfig) gin.HandlerFunc {
	cookieName := strings.TrimSpace(cfg.CookieName)
	if cookieName == "" {
		cookieName = constants.SessionCookieName
	}
	ttlHours := cfg.TTLHours
	if ttlHours <= 0 {
		ttlHours = constants.SessionTTLHours
	}
	maxAge := ttlHours * 3600

	return func(c *gin.Context) {
		sid, err := c.Cookie(cookieName)
		if err != nil || strings.TrimSpace(sid) == "" {
			sid = uuid.NewString()
		}
		c.SetCookie(cookieName, sid, maxAge, "/", "", cfg.Secure, true)
		c.Set(sessionIDKey, sid)
		c.Next()
	}
}

// UserJWTAuthMiddleware 用户 JWT 鉴权中间件
func UserJWTAuthMiddleware(secretKey string, userRepo repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseBearerClaims(c, secretKey)
		if !ok {
			response.Unauthorized(c, "token invalid")
			c.Abort()
			return
		}

		user, err := userRepo.GetByID(claims.UserID)
		if err != nil || user == nil {
			response.Unauthorized(c, "token invalid")
			c.Abort()
			return
		}

		c.Set(userIDKey, user.ID)
		c.Set(userRoleKey, user.Role)
		c.Next()
	}
}

// OptionalUserAuthMiddleware 可选用户鉴权中间件
// Token 缺失或无效时不拒绝请求，只是不写入用户身份；用于结账回跳。
func OptionalUserAuthMiddleware(secretKey string, userRepo repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseBearerClaims(c, secretKey)
		if ok {
			user, err := userRepo.GetByID(claims.UserID)
			if err == nil && user != nil {
				c.Set(userIDKey, user.ID)
				c.Set(userRoleKey, user.Role)
			}
		}
		c.Next()
	}
}

// RequireAdminMiddleware 管理端角色守卫
// 角色取自用户记录的 role 字段，使用显式中间件而非路由继承。
func RequireAdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get(userRoleKey)
		if !exists {
			response.Forbidden(c, "admin required")
			c.Abort()
			return
		}
		role, ok := value.(string)
		if !ok || role != constants.RoleAdmin {
			response.Forbidden(c, "admin required")
			c.Abort()
			return
		}
		c.Next()
	}
}

func parseBearerClaims(c *gin.Context, secretKey string) (*service.UserJWTClaims, bool) {
	if secretKey == "" {
		return nil, false
	}
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if !(len(parts) == 2 && parts[0] == "Bearer") {
		return nil, false
	}

	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	claims := &service.UserJWTClaims{}
	token, err := parser.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secretKey), nil
	})
	if err != nil || !token.Valid || claims.UserID == 0 {
		return nil, false
	}
	return claims, true
}
