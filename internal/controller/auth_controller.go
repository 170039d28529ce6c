package controller

import (
	"online_course_backend/internal/model"
	"online_course_backend/internal/service"
	"online_course_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	authService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

type SignupRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	UserID   uint   `json:"userId"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

func toAuthResponse(user *model.User) AuthResponse {
	return AuthResponse{
		UserID:   user.ID,
		Username: user.Name,
		Email:    user.Email,
		Role:     string(user.Role),
	}
}

// Signup godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param body body SignupRequest true "signup payload"
// @Success 200 {object} util.Response{data=AuthResponse}
// @Router /auth/signup [post]
func (c *AuthController) Signup(ctx *gin.Context) {
	var req SignupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.authService.Signup(req.Username, req.Email, req.Password, req.Role)
	if err != nil {
		util.DomainError(ctx, err)
		return
	}

	util.Success(ctx, toAuthResponse(user))
}

// Login godoc
// @Summary Log in with email and password
// @Description The username field carries the email address.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "login payload"
// @Success 200 {object} util.Response{data=AuthResponse}
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.authService.Login(req.Username, req.Password)
	if err != nil {
		util.DomainError(ctx, err)
		return
	}

	util.Success(ctx, toAuthResponse(user))
}
