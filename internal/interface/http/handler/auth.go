package handler

import (
	"github.com/gin-gonic/gin"

	appuser "github.com/xiebiao/bookshop/internal/application/user"
	"github.com/xiebiao/bookshop/internal/interface/http/dto"
	"github.com/xiebiao/bookshop/internal/interface/http/middleware"
	"github.com/xiebiao/bookshop/pkg/response"
)

// AuthHandler 认证HTTP处理器
type AuthHandler struct {
	register *appuser.RegisterUseCase
	login    *appuser.LoginUseCase
	logout   *appuser.LogoutUseCase
}

// NewAuthHandler 创建认证处理器
func NewAuthHandler(
	register *appuser.RegisterUseCase,
	login *appuser.LoginUseCase,
	logout *appuser.LogoutUseCase,
) *AuthHandler {
	return &AuthHandler{
		register: register,
		login:    login,
		logout:   logout,
	}
}

// Register 注册
// @Summary      注册
// @Description  注册新账号，固定USER角色
// @Tags         认证
// @Accept       json
// @Produce      json
// @Param        request body dto.RegisterRequest true "注册信息"
// @Success      200 {object} dto.RegisterResponse
// @Failure      409 {object} response.ProblemDetail "用户名已存在"
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := bindJSON(c, &req); err != nil {
		response.Problem(c, err)
		return
	}

	u, err := h.register.Execute(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		response.Problem(c, err)
		return
	}

	response.JSON(c, dto.RegisterResponse{
		ID:       u.ID,
		Username: u.Username,
		Role:     u.Role,
	})
}

// Login 登录
// @Summary      登录
// @Tags         认证
// @Accept       json
// @Produce      json
// @Param        request body dto.LoginRequest true "登录凭证"
// @Success      200 {object} dto.LoginResponse
// @Failure      401 {object} response.ProblemDetail "用户名或密码错误"
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := bindJSON(c, &req); err != nil {
		response.Problem(c, err)
		return
	}

	result, err := h.login.Execute(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		response.Problem(c, err)
		return
	}

	response.JSON(c, dto.LoginResponse{Token: result.Token, Role: result.Role})
}

// Logout 登出
// @Summary      登出
// @Description  当前Token加入黑名单，立即失效
// @Tags         认证
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} map[string]string
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	err := h.logout.Execute(c.Request.Context(), middleware.GetUsername(c), middleware.GetToken(c))
	if err != nil {
		response.Problem(c, err)
		return
	}

	response.JSON(c, gin.H{"message": "已登出"})
}
