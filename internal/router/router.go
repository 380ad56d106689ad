package router

import (
	"github.com/northwear-shop/internal/config"
	adminhandlers "github.com/northwear-shop/internal/http/handlers/admin"
	publichandlers "github.com/northwear-shop/internal/http/handlers/public"
	"github.com/northwear-shop/internal/logger"
	"github.com/northwear-shop/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.New(c)
	adminHandler := adminhandlers.New(c)

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))
	r.Use(SessionMiddleware(cfg.Session))

	// API 路由组
	apiV1 := r.Group("/api/v1")
	{
		// 公开接口
		apiV1.GET("/items", publicHandler.ListItems)
		apiV1.GET("/items/:id", publicHandler.GetItem)
		apiV1.GET("/categories", publicHandler.ListCategories)

		// 用户认证接口
		auth := apiV1.Group("/auth")
		{
			auth.POST("/register", publicHandler.Register)
			auth.POST("/login", publicHandler.Login)
		}

		// 购物车与结账（会话维度，不要求登录）
		apiV1.POST("/cart/add", publicHandler.AddCartItem)
		apiV1.POST("/cart/update", publicHandler.UpdateCartItem)
		apiV1.GET("/cart", publicHandler.GetCart)
		apiV1.POST("/checkout/session", publicHandler.CreateCheckoutSession)
		apiV1.GET("/checkout/status", publicHandler.CheckoutStatus)

		// 结账回跳：鉴权可选，匿名回跳只清空购物车不落单
		apiV1.GET("/checkout/return",
			OptionalUserAuthMiddleware(cfg.JWT.SecretKey, c.UserRepo),
			publicHandler.CheckoutReturn)

		// 用户接口（需鉴权）
		user := apiV1.Group("")
		user.Use(UserJWTAuthMiddleware(cfg.JWT.SecretKey, c.UserRepo))
		{
			user.GET("/me", publicHandler.Me)
			user.GET("/orders", publicHandler.ListOrders)
			user.GET("/orders/:id", publicHandler.GetOrder)
		}

		// 管理端接口（角色守卫显式挂在分组上）
		admin := apiV1.Group("/admin")
		admin.Use(UserJWTAuthMiddleware(cfg.JWT.SecretKey, c.UserRepo))
		admin.Use(RequireAdminMiddleware())
		{
			admin.POST("/items", adminHandler.CreateItem)
		}
	}

	return r
}
