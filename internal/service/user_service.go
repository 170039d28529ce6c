package service

import (
	"errors"
	"online_course_backend/internal/model"
	"online_course_backend/internal/repository"
	"online_course_backend/internal/util"

	"gorm.io/gorm"
)

type ProfileUpdateInput struct {
	Name        *string `json:"name"`
	Email       *string `json:"email"`
	AvatarIndex *int    `json:"avatarIndex"`
}

type UserService struct {
	userRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) GetAll() ([]model.User, error) {
	return s.userRepo.FindAll()
}

func (s *UserService) GetByID(id uint) (*model.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) GetByEmail(email string) (*model.User, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) GetByRole(role string) ([]model.User, error) {
	parsedRole, err := ParseRole(role)
	if err != nil {
		return nil, err
	}
	return s.userRepo.FindByRole(parsedRole)
}

func (s *UserService) EmailExists(email string) (bool, error) {
	return s.userRepo.ExistsByEmail(email)
}

// UpdateProfile applies the supplied fields. An email change is rejected
// when another user already holds the address.
func (s *UserService) UpdateProfile(id uint, in ProfileUpdateInput) (*model.User, error) {
	user, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil && *in.Name != "" {
		user.Name = *in.Name
	}
	if in.Email != nil && *in.Email != "" {
		existing, err := s.userRepo.FindByEmail(*in.Email)
		if err == nil && existing.ID != id {
			return nil, util.ErrEmailTaken
		}
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		user.Email = *in.Email
	}
	if in.AvatarIndex != nil {
		user.AvatarIndex = *in.AvatarIndex
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) ChangePassword(id uint, currentPassword, newPassword string) error {
	user, err := s.GetByID(id)
	if err != nil {
		return err
	}

	// Verbatim comparison, matching the stored form.
	if user.Password != currentPassword {
		return util.ErrWrongPassword
	}

	user.Password = newPassword
	return s.userRepo.Update(user)
}

func (s *UserService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	return s.userRepo.Delete(id)
}
