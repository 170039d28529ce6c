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
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const passThreshold = 60.0

// CompletionInput carries the optional fields of a completion request.
// Nil fields leave the corresponding enrollment field untouched.
type CompletionInput struct {
	Completed      *bool      `json:"completed"`
	CompletedAt    *time.Time `json:"completionDate"`
	TestScore      *int       `json:"testScore"`
	TotalQuestions *int       `json:"totalQuestions"`
	Percentage     *float64   `json:"percentage"`
	Passed         *bool      `json:"passed"`
	Rating         *int       `json:"rating"`
	Feedback       *string    `json:"feedback"`
}

type EnrollmentService struct {
	enrollmentRepo *repository.EnrollmentRepository
	userRepo       *repository.UserRepository
	courseRepo     *repository.CourseRepository
	views          *CourseService
	cache          *CourseCache
}

func NewEnrollmentService(
	enrollmentRepo *repository.EnrollmentRepository,
	userRepo *repository.UserRepository,
	courseRepo *repository.CourseRepository,
	views *CourseService,
	cache *CourseCache,
) *EnrollmentService {
	return &EnrollmentService{
		enrollmentRepo: enrollmentRepo,
		userRepo:       userRepo,
		courseRepo:     courseRepo,
		views:          views,
		cache:          cache,
	}
}

// Enroll creates the enrollment for (studentID, courseID), or returns the
// existing one unchanged. Enrolling twice is not an error.
func (s *EnrollmentService) Enroll(studentID, courseID uint) (*model.Enrollment, error) {
	student, err := s.userRepo.FindByID(studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}
	if student.Role != model.Student {
		return nil, util.ErrNotAStudent
	}

	if _, err := s.courseRepo.FindByID(courseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}

	existing, err := s.enrollmentRepo.FindByStudentAndCourse(studentID, courseID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	enrollment := &model.Enrollment{
		StudentID:      studentID,
		CourseID:       courseID,
		EnrolledAt:     time.Now(),
		TotalQuestions: 10,
	}
	if err := s.enrollmentRepo.Create(enrollment); err != nil {
		return nil, err
	}

	logger.Log.Info("student enrolled",
		zap.Uint("studentId", studentID),
		zap.Uint("courseId", courseID),
		zap.Uint("enrollmentId", enrollment.ID))

	return enrollment, nil
}

// RecordTestResult persists a test submission onto the enrollment. It
// never flips the completed flag; completion is a separate decision.
func (s *EnrollmentService) RecordTestResult(enrollmentID uint, score, totalQuestions int) (*model.Enrollment, error) {
	if totalQuestions <= 0 {
		return nil, util.ErrInvalidTotalQuestions
	}

	enrollment, err := s.enrollmentRepo.FindByID(enrollmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrEnrollmentNotFound
		}
		return nil, err
	}

	percentage := float64(score) * 100 / float64(totalQuestions)
	enrollment.TestScore = score
	enrollment.TotalQuestions = totalQuestions
	enrollment.Percentage = percentage
	enrollment.Passed = percentage >= passThreshold

	if err := s.enrollmentRepo.Update(enrollment); err != nil {
		return nil, err
	}

	logger.Log.Info("test result recorded",
		zap.Uint("enrollmentId", enrollmentID),
		zap.Int("score", score),
		zap.Int("totalQuestions", totalQuestions),
		zap.Float64("percentage", percentage),
		zap.Bool("passed", enrollment.Passed))

	return enrollment, nil
}

// CompleteCourse applies a completion request. A failed test can never
// mark the course completed, whatever else the request says. The
// completed flag resolves as: explicit value if supplied, else the passed
// value if supplied, else unchanged.
func (s *EnrollmentService) CompleteCourse(enrollmentID uint, in CompletionInput) (*model.Enrollment, error) {
	if in.Passed != nil && !*in.Passed {
		forced := false
		in.Completed = &forced
	}

	enrollment, err := s.enrollmentRepo.FindByID(enrollmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrEnrollmentNotFound
		}
		return nil, err
	}

	if in.Completed != nil {
		enrollment.Completed = *in.Completed
	} else if in.Passed != nil {
		enrollment.Completed = *in.Passed
	}

	if enrollment.Completed {
		if in.CompletedAt != nil {
			enrollment.CompletedAt = in.CompletedAt
		} else {
			now := time.Now()
			enrollment.CompletedAt = &now
		}
	} else {
		enrollment.CompletedAt = nil
	}

	if in.TestScore != nil {
		enrollment.TestScore = *in.TestScore
	}
	if in.TotalQuestions != nil {
		enrollment.TotalQuestions = *in.TotalQuestions
	}
	if in.Percentage != nil {
		enrollment.Percentage = *in.Percentage
	}
	if in.Passed != nil {
		enrollment.Passed = *in.Passed
	}

	ratingChanged := false
	if in.Rating != nil {
		if enrollment.Rating == nil || *enrollment.Rating != *in.Rating {
			ratingChanged = true
		}
		enrollment.Rating = in.Rating
	}
	if in.Feedback != nil {
		enrollment.Feedback = in.Feedback
	}

	if err := s.enrollmentRepo.Update(enrollment); err != nil {
		return nil, err
	}

	logger.Log.Info("course completion applied",
		zap.Uint("enrollmentId", enrollmentID),
		zap.Bool("completed", enrollment.Completed),
		zap.Bool("passed", enrollment.Passed))

	if ratingChanged {
		if err := s.RecomputeCourseRating(enrollment.CourseID); err != nil {
			logger.Log.Error("rating recompute failed",
				zap.Uint("courseId", enrollment.CourseID), zap.Error(err))
		}
	}

	return enrollment, nil
}

// RateCourse records a personal rating without touching completion state.
func (s *EnrollmentService) RateCourse(enrollmentID uint, rating int, feedback string) (*model.Enrollment, error) {
	if rating < 1 || rating > 5 {
		return nil, util.ErrInvalidRating
	}

	enrollment, err := s.CompleteCourse(enrollmentID, CompletionInput{
		Rating:   &rating,
		Feedback: &feedback,
	})
	if err != nil {
		return nil, err
	}

	if err := s.RecomputeCourseRating(enrollment.CourseID); err != nil {
		logger.Log.Error("rating recompute failed",
			zap.Uint("courseId", enrollment.CourseID), zap.Error(err))
	}

	return enrollment, nil
}

// Unenroll deletes the enrollment. Deleting an absent id is not an error.
func (s *EnrollmentService) Unenroll(enrollmentID uint) error {
	return s.enrollmentRepo.Delete(enrollmentID)
}

// RecomputeCourseRating recomputes the course's derived rating columns
// from the full set of rated enrollments. Full recompute every time;
// ratings are low-frequency, so correctness wins over counters.
func (s *EnrollmentService) RecomputeCourseRating(courseID uint) error {
	enrollments, err := s.enrollmentRepo.FindByCourseID(courseID)
	if err != nil {
		return err
	}

	sum, count := 0, 0
	for _, e := range enrollments {
		if e.Rating != nil && *e.Rating > 0 {
			sum += *e.Rating
			count++
		}
	}

	average := 0.0
	if count > 0 {
		average = math.Round(float64(sum)/float64(count)*10) / 10
	}

	if err := s.courseRepo.UpdateRatingStats(courseID, average, count); err != nil {
		return err
	}

	monitoring.RatingRecomputeCounter.WithLabelValues("enrollment").Inc()
	s.cache.InvalidateCourse(context.Background(), courseID)

	logger.Log.Info("course rating recomputed",
		zap.Uint("courseId", courseID),
		zap.Float64("averageRating", average),
		zap.Int("totalRatings", count))

	return nil
}

// StudentEnrollments assembles the enrollment views for one student.
func (s *EnrollmentService) StudentEnrollments(studentID uint) ([]model.EnrollmentView, error) {
	enrollments, err := s.enrollmentRepo.FindByStudentID(studentID)
	if err != nil {
		return nil, err
	}
	return s.views.AssembleEnrollmentViews(enrollments), nil
}

// CourseEnrollments assembles the enrollment views for one course.
func (s *EnrollmentService) CourseEnrollments(courseID uint) ([]model.EnrollmentView, error) {
	enrollments, err := s.enrollmentRepo.FindByCourseID(courseID)
	if err != nil {
		return nil, err
	}
	return s.views.AssembleEnrollmentViews(enrollments), nil
}

func (s *EnrollmentService) GetEnrollment(enrollmentID uint) (*model.Enrollment, error) {
	enrollment, err := s.enrollmentRepo.FindByID(enrollmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrEnrollmentNotFound
		}
		return nil, err
	}
	return enrollment, nil
}
