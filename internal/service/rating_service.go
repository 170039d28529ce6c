package service

import (
	"context"
	"errors"
	"math"
	"online_course_backend/internal/model"
	"online_course_backend/internal/repository"
	"online_course_backend/internal/util"
	"online_course_backend/pkg/logger"
	"online_course_backend/pkg/monitoring"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type RatingInput struct {
	Stars     *int    `json:"stars"`
	Comment   *string `json:"comment"`
	StudentID uint    `json:"studentId"`
	CourseID  uint    `json:"courseId"`
}

// RatingService manages first-class rating records. Unlike enroll and
// test-result saves, adding a second rating for the same (student,
// course) pair is an error rather than an upsert.
type RatingService struct {
	ratingRepo     *repository.RatingRepository
	courseRepo     *repository.CourseRepository
	enrollmentRepo *repository.EnrollmentRepository
	userRepo       *repository.UserRepository
	cache          *CourseCache
}

func NewRatingService(
	ratingRepo *repository.RatingRepository,
	courseRepo *repository.CourseRepository,
	enrollmentRepo *repository.EnrollmentRepository,
	userRepo *repository.UserRepository,
	cache *CourseCache,
) *RatingService {
	return &RatingService{
		ratingRepo:     ratingRepo,
		courseRepo:     courseRepo,
		enrollmentRepo: enrollmentRepo,
		userRepo:       userRepo,
		cache:          cache,
	}
}

func (s *RatingService) AddRating(in RatingInput) (*model.Rating, error) {
	student, err := s.userRepo.FindByID(in.StudentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}
	if student.Role != model.Student {
		return nil, util.ErrNotAStudent
	}

	if _, err := s.courseRepo.FindByID(in.CourseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}

	if _, err := s.enrollmentRepo.FindByStudentAndCourse(in.StudentID, in.CourseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrNotEnrolled
		}
		return nil, err
	}

	exists, err := s.ratingRepo.ExistsByStudentAndCourse(in.StudentID, in.CourseID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, util.ErrAlreadyRated
	}

	if in.Stars == nil || *in.Stars < 1 || *in.Stars > 5 {
		return nil, util.ErrInvalidRating
	}

	rating := &model.Rating{
		Stars:     *in.Stars,
		StudentID: in.StudentID,
		CourseID:  in.CourseID,
	}
	if in.Comment != nil {
		rating.Comment = *in.Comment
	}

	if err := s.ratingRepo.Create(rating); err != nil {
		return nil, err
	}

	if err := s.Recompute(in.CourseID); err != nil {
		logger.Log.Error("rating recompute failed",
			zap.Uint("courseId", in.CourseID), zap.Error(err))
	}

	return rating, nil
}

func (s *RatingService) UpdateRating(ratingID uint, in RatingInput) (*model.Rating, error) {
	rating, err := s.ratingRepo.FindByID(ratingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrRatingNotFound
		}
		return nil, err
	}

	if in.Stars != nil {
		if *in.Stars < 1 || *in.Stars > 5 {
			return nil, util.ErrInvalidRating
		}
		rating.Stars = *in.Stars
	}
	if in.Comment != nil {
		rating.Comment = *in.Comment
	}

	if err := s.ratingRepo.Update(rating); err != nil {
		return nil, err
	}

	if err := s.Recompute(rating.CourseID); err != nil {
		logger.Log.Error("rating recompute failed",
			zap.Uint("courseId", rating.CourseID), zap.Error(err))
	}

	return rating, nil
}

// DeleteRating removes the rating and recomputes its course aggregate.
// Deleting an absent id is a silent no-op.
func (s *RatingService) DeleteRating(ratingID uint) error {
	rating, err := s.ratingRepo.FindByID(ratingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	if err := s.ratingRepo.Delete(ratingID); err != nil {
		return err
	}

	return s.Recompute(rating.CourseID)
}

func (s *RatingService) RatingsByCourse(courseID uint) ([]model.Rating, error) {
	return s.ratingRepo.FindByCourseID(courseID)
}

func (s *RatingService) RatingsByStudent(studentID uint) ([]model.Rating, error) {
	return s.ratingRepo.FindByStudentID(studentID)
}

func (s *RatingService) RatingForStudentAndCourse(studentID, courseID uint) (*model.Rating, error) {
	rating, err := s.ratingRepo.FindByStudentAndCourse(studentID, courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrRatingNotFound
		}
		return nil, err
	}
	return rating, nil
}

// Recompute rebuilds the course's derived rating columns from the full
// set of rating rows for the course.
func (s *RatingService) Recompute(courseID uint) error {
	ratings, err := s.ratingRepo.FindByCourseID(courseID)
	if err != nil {
		return err
	}

	average := 0.0
	if len(ratings) > 0 {
		sum := 0
		for _, r := range ratings {
			sum += r.Stars
		}
		average = math.Round(float64(sum)/float64(len(ratings))*10) / 10
	}

	if err := s.courseRepo.UpdateRatingStats(courseID, average, len(ratings)); err != nil {
		return err
	}

	monitoring.RatingRecomputeCounter.WithLabelValues("rating").Inc()
	s.cache.InvalidateCourse(context.Background(), courseID)

	logger.Log.Info("course rating recomputed",
		zap.Uint("courseId", courseID),
		zap.Float64("averageRating", average),
		zap.Int("totalRatings", len(ratings)))

	return nil
}
