package util

import (
	"errors"
	"net/http"
	"online_course_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Response 统一响应结构
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    http.StatusOK,
		Message: "success",
		Data:    data,
	})
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code:    http.StatusCreated,
		Message: "created",
		Data:    data,
	})
}

func Error(c *gin.Context, code int, message string) {
	c.JSON(code, Response{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

func NotFound(c *gin.Context) {
	Error(c, http.StatusNotFound, "Resource not found")
}

func Conflict(c *gin.Context, message string) {
	Error(c, http.StatusConflict, message)
}

func InternalServerError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "Internal server error")
}

func LogInternalError(c *gin.Context, err error) {
	logger.Log.Error("Internal server error", zap.Error(err))
	InternalServerError(c)
}

// DomainError 按错误类型映射HTTP状态码
func DomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrCourseNotFound),
		errors.Is(err, ErrEnrollmentNotFound),
		errors.Is(err, ErrRatingNotFound),
		errors.Is(err, ErrTestResultNotFound),
		errors.Is(err, ErrCertificateNotFound):
		Error(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrNotAStudent),
		errors.Is(err, ErrInvalidRating),
		errors.Is(err, ErrInvalidTotalQuestions),
		errors.Is(err, ErrInvalidRole),
		errors.Is(err, ErrNotEnrolled),
		errors.Is(err, ErrWrongPassword),
		errors.Is(err, ErrBadCredentials),
		errors.Is(err, ErrCourseNotCompleted):
		BadRequest(c, err.Error())
	case errors.Is(err, ErrAlreadyRated),
		errors.Is(err, ErrEmailRegistered),
		errors.Is(err, ErrEmailTaken):
		Conflict(c, err.Error())
	default:
		LogInternalError(c, err)
	}
}
