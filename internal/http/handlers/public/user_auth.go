package public

import (
	"errors"

	"github.com/northwear-shop/internal/http/response"
	"github.com/northwear-shop/internal/models"
	"github.com/northwear-shop/internal/service"

	"github.com/gin-gonic/gin"
)

// RegisterRequest 用户注册请求
type RegisterRequest struct {
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// LoginRequest 用户登录请求
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserView 用户信息响应
type UserView struct {
	ID        uint   `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
}

func newUserView(user *models.User) UserView {
	return UserView{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      user.Role,
	}
}

// Register 用户注册
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "request invalid")
		return
	}

	user, err := h.UserAuthService.Register(service.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailExists):
			response.BadRequest(c, "email already registered")
		case errors.Is(err, service.ErrInvalidEmail):
			response.BadRequest(c, "email invalid")
		case errors.Is(err, service.ErrWeakPassword):
			response.BadRequest(c, "password too weak")
		default:
			response.Error(c, response.CodeInternal, "failed to register")
		}
		return
	}
	response.SuccessWithMsg(c, "registered", gin.H{"user": newUserView(user)})
}

// Login 用户登录
// 邮箱未注册与密码错误返回不同的提示，与原站注册/登录页的行为一致。
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "request invalid")
		return
	}

	user, token, expiresAt, err := h.UserAuthService.Login(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailNotFound):
			response.Unauthorized(c, "email not registered")
		case errors.Is(err, service.ErrPasswordIncorrect):
			response.Unauthorized(c, "password incorrect")
		case errors.Is(err, service.ErrInvalidEmail):
			response.BadRequest(c, "email invalid")
		default:
			response.Error(c, response.CodeInternal, "failed to login")
		}
		return
	}

	response.Success(c, gin.H{
		"token":      token,
		"expires_at": expiresAt,
		"user":       newUserView(user),
	})
}

// Me 获取当前登录用户信息
func (h *Handler) Me(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	user, err := h.UserRepo.GetByID(uid)
	if err != nil || user == nil {
		response.Unauthorized(c, "user not found")
		return
	}
	response.Success(c, gin.H{"user": newUserView(user)})
}
