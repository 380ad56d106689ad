package constants

// 用户角色常量
const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// 购物车操作常量
const (
	CartActionIncrease = "increase"
	CartActionDecrease = "decrease"
)

// 支付会话状态常量（外部处理器侧）
const (
	PaymentSessionOpen     = "open"
	PaymentSessionComplete = "complete"
	PaymentSessionExpired  = "expired"
)

// 待支付记录状态常量（本地侧）
const (
	PendingPaymentStatusPending   = "pending"
	PendingPaymentStatusCompleted = "completed"
)

// 会话常量
const (
	SessionCookieName = "nw_session"
	SessionTTLHours   = 72
)
