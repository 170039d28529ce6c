package controller

import (
	"online_course_backend/internal/service"
	"online_course_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	userService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{userService: userService}
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}

// GetAllUsers godoc
// @Summary List all users
// @Tags users
// @Produce json
// @Success 200 {object} util.Response{data=[]model.User}
// @Router /users [get]
func (c *UserController) GetAllUsers(ctx *gin.Context) {
	users, err := c.userService.GetAll()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, users)
}

// GetUserByID godoc
// @Summary Get one user by id
// @Tags users
// @Produce json
// @Param id path int true "user id"
// @Success 200 {object} util.Response{data=model.User}
// @Router /users/{id} [get]
func (c *UserController) GetUserByID(ctx *gin.Context) {
	user, err := c.userService.GetByID(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		util.DomainError(ctx, err)
		return
	}
	util.Success(ctx, user)
}

// GetUserByEmail godoc
// @Summary Get one user by email
// @Tags users
// @Produce json
// @Param email path string true "email"
// @Success 200 {object} util.Response{data=model.User}
// @Router /users/email/{email} [get]
func (c *UserController) GetUserByEmail(ctx *gin.Context) {
	user, err := c.userService.GetByEmail(ctx.Param("email"))
	if err != nil {
		util.DomainError(ctx, err)
		return
	}
	util.Success(ctx, user)
}

// GetUsersByRole godoc
// @Summary List users with a given role
// @Tags users
// @Produce json
// @Param role path string true "STUDENT or INSTRUCTOR"
// @Success 200 {object} util.Response{data=[]model.User}
// @Router /users/role/{role} [get]
func (c *UserController) GetUsersByRole(ctx *gin.Context) {
	users, err := c.userService.GetByRole(ctx.Param("role"))
	if err != nil {
		util.DomainError(ctx, err)
		return
	}
	util.Success(ctx, users)
}

// CheckEmailExists godoc
// @Summary Check whether an email is registered
// @Tags users
// @Produce json
// @Param email path string true "email"
// @Success 200 {object} util.Response{data=bool}
// @Router /users/check-email/{email} [get]
func (c *UserController) CheckEmailExists(ctx *gin.Context) {
	exists, err := c.userService.EmailExists(ctx.Param("email"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, exists)
}

// UpdateProfile godoc
// @Summary Update profile fields
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "user id"
// @Param body body service.ProfileUpdateInput true "fields to update"
// @Success 200 {object} util.Response{data=model.User}
// @Router /users/{id} [put]
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	var req service.ProfileUpdateInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.userService.UpdateProfile(util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		util.DomainError(ctx, err)
		return
	}
	util.Success(ctx, user)
}

// UpdateAvatar godoc
// @Summary Update the avatar index only
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "user id"
// @Param body body service.ProfileUpdateInput true "avatarIndex"
// @Success 200 {object} util.Response{data=model.User}
// @Router /users/{id}/avatar [patch]
func (c *UserController) UpdateAvatar(ctx *gin.Context) {
	var req service.ProfileUpdateInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.userService.UpdateProfile(util.MustParseUint(ctx.Param("id")),
		service.ProfileUpdateInput{AvatarIndex: req.AvatarIndex})
	if err != nil {
		util.DomainError(ctx, err)
		return
	}
	util.Success(ctx, user)
}

// ChangePassword godoc
// @Summary Change a user's password
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "user id"
// @Param body body ChangePasswordRequest true "current and new password"
// @Success 200 {object} util.Response
// @Router /users/{id}/change-password [post]
func (c *UserController) ChangePassword(ctx *gin.Context) {
	var req ChangePasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	err := c.userService.ChangePassword(util.MustParseUint(ctx.Param("id")),
		req.CurrentPassword, req.NewPassword)
	if err != nil {
		util.DomainError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"message": "password changed"})
}

// DeleteUser godoc
// @Summary Delete a user
// @Tags users
// @Produce json
// @Param id path int true "user id"
// @Success 200 {object} util.Response
// @Router /users/{id} [delete]
func (c *UserController) DeleteUser(ctx *gin.Context) {
	if err := c.userService.Delete(util.MustParseUint(ctx.Param("id"))); err != nil {
		util.DomainError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
