package provider

import (
	"github.com/northwear-shop/internal/config"
	"github.com/northwear-shop/internal/logger"
	"github.com/northwear-shop/internal/models"
	"github.com/northwear-shop/internal/payment/stripe"
	"github.com/northwear-shop/internal/repository"
	"github.com/northwear-shop/internal/service"
	"github.com/northwear-shop/internal/session"
)

// Container 依赖注入容器
type Container struct {
	Config       *config.Config
	SessionStore session.Store

	// Repositories
	UserRepo           repository.UserRepository
	CategoryRepo       repository.CategoryRepository
	ItemRepo           repository.ItemRepository
	OrderRepo          repository.OrderRepository
	PendingPaymentRepo repository.PendingPaymentRepository

	// Services
	UserAuthService *service.UserAuthService
	CatalogService  *service.CatalogService
	CartService     *service.CartService
	CheckoutService *service.CheckoutService
	OrderService    *service.OrderService

	// Payment
	PaymentClient *stripe.Client
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	c := &Container{Config: cfg}

	// 1. 初始化会话存储（Redis 不可用时退化为进程内存储）
	c.initSessionStore()

	// 2. 初始化 Repositories
	c.initRepositories()

	// 3. 初始化支付客户端与 Services
	c.initServices()

	return c
}

func (c *Container) initSessionStore() {
	ttl := session.TTLFromHours(c.Config.Session.TTLHours)
	store, err := session.NewRedisStore(&c.Config.Redis, ttl)
	if err != nil {
		logger.Warnw("provider_session_store_fallback_memory", "error", err)
		c.SessionStore = session.NewMemoryStore(ttl)
		return
	}
	c.SessionStore = store
}

func (c *Container) initRepositories() {
	db := models.DB
	c.UserRepo = repository.NewUserRepository(db)
	c.CategoryRepo = repository.NewCategoryRepository(db)
	c.ItemRepo = repository.NewItemRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
	c.PendingPaymentRepo = repository.NewPendingPaymentRepository(db)
}

func (c *Container) initServices() {
	paymentClient, err := stripe.New(stripe.Config{
		SecretKey:          c.Config.Payment.SecretKey,
		PublishableKey:     c.Config.Payment.PublishableKey,
		APIBaseURL:         c.Config.Payment.APIBaseURL,
		ReturnURL:          c.Config.Payment.ReturnURL,
		ShippingCountry:    c.Config.Payment.ShippingCountry,
		PaymentMethodTypes: c.Config.Payment.PaymentMethods,
		TimeoutSeconds:     c.Config.Payment.TimeoutSeconds,
	})
	if err != nil {
		logger.Errorw("provider_init_payment_client_failed", "error", err)
	}
	c.PaymentClient = paymentClient

	c.UserAuthService = service.NewUserAuthService(c.Config, c.UserRepo)
	c.CatalogService = service.NewCatalogService(c.ItemRepo, c.CategoryRepo)
	c.CartService = service.NewCartService(c.SessionStore, c.ItemRepo)
	var processor service.PaymentProcessor
	if paymentClient != nil {
		processor = paymentClient
	}
	c.CheckoutService = service.NewCheckoutService(c.SessionStore, c.CartService, c.ItemRepo, c.OrderRepo, c.PendingPaymentRepo, processor)
	c.OrderService = service.NewOrderService(c.OrderRepo)
}
