package service

import (
	"errors"
	"online_course_backend/internal/model"
	"online_course_backend/internal/repository"
	"online_course_backend/internal/util"
	"online_course_backend/pkg/logger"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AuthService handles signup and login. Credentials are stored and
// compared verbatim, reproducing the behavior of the system this one
// replaces. Known limitation; see README.
type AuthService struct {
	userRepo *repository.UserRepository
}

func NewAuthService(userRepo *repository.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

func ParseRole(role string) (model.UserRole, error) {
	switch model.UserRole(strings.ToUpper(role)) {
	case model.Student:
		return model.Student, nil
	case model.Instructor:
		return model.Instructor, nil
	default:
		return "", util.ErrInvalidRole
	}
}

func (s *AuthService) Signup(name, email, password, role string) (*model.User, error) {
	parsedRole, err := ParseRole(role)
	if err != nil {
		return nil, err
	}

	exists, err := s.userRepo.ExistsByEmail(email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, util.ErrEmailRegistered
	}

	user := &model.User{
		Name:     name,
		Email:    email,
		Password: password,
		Role:     parsedRole,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	logger.Log.Info("user registered",
		zap.Uint("userId", user.ID),
		zap.String("role", string(parsedRole)))

	return user, nil
}

func (s *AuthService) Login(email, password string) (*model.User, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrBadCredentials
		}
		return nil, err
	}

	if user.Password != password {
		return nil, util.ErrBadCredentials
	}

	return user, nil
}
