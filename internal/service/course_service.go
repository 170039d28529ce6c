package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"online_course_backend/internal/model"
	"online_course_backend/internal/repository"
	"online_course_backend/internal/util"
	"online_course_backend/pkg/logger"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Fallback values substituted when an assembled record is missing data.
// The assembler never lets one malformed record abort a whole list.
const (
	fallbackCourseTitle = "Unknown Course"
	fallbackCategory    = "General"
	fallbackDuration    = "8 weeks"
	fallbackLevel       = "Beginner"
	fallbackBatch       = "Current Batch"
	fallbackInstructor  = "Course Instructor"
)

type CourseInput struct {
	Title        *string  `json:"title"`
	Category     *string  `json:"category"`
	Duration     *string  `json:"duration"`
	Batch        *string  `json:"batch"`
	Level        *string  `json:"level"`
	Price        *float64 `json:"price"`
	InstructorID uint     `json:"instructorId"`
}

type CourseService struct {
	courseRepo     *repository.CourseRepository
	enrollmentRepo *repository.EnrollmentRepository
	userRepo       *repository.UserRepository
	cache          *CourseCache
}

func NewCourseService(
	courseRepo *repository.CourseRepository,
	enrollmentRepo *repository.EnrollmentRepository,
	userRepo *repository.UserRepository,
	cache *CourseCache,
) *CourseService {
	return &CourseService{
		courseRepo:     courseRepo,
		enrollmentRepo: enrollmentRepo,
		userRepo:       userRepo,
		cache:          cache,
	}
}

func (s *CourseService) CreateCourse(in CourseInput) (*model.Course, error) {
	instructor, err := s.userRepo.FindByID(in.InstructorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}
	if instructor.Role != model.Instructor {
		return nil, util.ErrInvalidRole
	}

	course := &model.Course{InstructorID: in.InstructorID}
	applyCourseInput(course, in)

	if err := s.courseRepo.Create(course); err != nil {
		return nil, err
	}

	s.cache.InvalidateCourse(context.Background(), course.ID)
	logger.Log.Info("course created",
		zap.Uint("courseId", course.ID),
		zap.Uint("instructorId", in.InstructorID))

	return course, nil
}

// UpdateCourse applies the supplied fields. The owning instructor is
// never changed by an edit.
func (s *CourseService) UpdateCourse(courseID uint, in CourseInput) (*model.Course, error) {
	course, err := s.courseRepo.FindByID(courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}

	applyCourseInput(course, in)

	if err := s.courseRepo.Update(course); err != nil {
		return nil, err
	}

	s.cache.InvalidateCourse(context.Background(), courseID)
	return course, nil
}

func applyCourseInput(course *model.Course, in CourseInput) {
	if in.Title != nil {
		course.Title = *in.Title
	}
	if in.Category != nil {
		course.Category = *in.Category
	}
	if in.Duration != nil {
		course.Duration = *in.Duration
	}
	if in.Batch != nil {
		course.Batch = *in.Batch
	}
	if in.Level != nil {
		course.Level = *in.Level
	}
	if in.Price != nil {
		course.Price = *in.Price
	}
}

func (s *CourseService) DeleteCourse(courseID uint) error {
	if err := s.courseRepo.Delete(courseID); err != nil {
		return err
	}
	s.cache.InvalidateCourse(context.Background(), courseID)
	return nil
}

func (s *CourseService) GetCourse(courseID uint) (*model.Course, error) {
	course, err := s.courseRepo.FindByID(courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}
	return course, nil
}

func (s *CourseService) GetCourseView(ctx context.Context, courseID uint) (*model.CourseView, error) {
	key := fmt.Sprintf(courseViewKeyFmt, courseID)
	var cached model.CourseView
	if s.cache.Get(ctx, key, &cached) {
		return &cached, nil
	}

	course, err := s.GetCourse(courseID)
	if err != nil {
		return nil, err
	}

	view := s.toCourseView(course)
	s.cache.Set(ctx, key, view)
	return &view, nil
}

func (s *CourseService) ListCourses(ctx context.Context) ([]model.CourseView, error) {
	var cached []model.CourseView
	if s.cache.Get(ctx, courseListKey, &cached) {
		return cached, nil
	}

	courses, err := s.courseRepo.FindAll()
	if err != nil {
		return nil, err
	}

	views := s.toCourseViews(courses)
	s.cache.Set(ctx, courseListKey, views)
	return views, nil
}

func (s *CourseService) ListCoursesByCategory(category string) ([]model.CourseView, error) {
	courses, err := s.courseRepo.FindByCategory(category)
	if err != nil {
		return nil, err
	}
	return s.toCourseViews(courses), nil
}

func (s *CourseService) ListCoursesByBatch(batch string) ([]model.CourseView, error) {
	courses, err := s.courseRepo.FindByBatch(batch)
	if err != nil {
		return nil, err
	}
	return s.toCourseViews(courses), nil
}

func (s *CourseService) ListCoursesByInstructor(instructorID uint) ([]model.CourseView, error) {
	courses, err := s.courseRepo.FindByInstructorID(instructorID)
	if err != nil {
		return nil, err
	}
	return s.toCourseViews(courses), nil
}

func (s *CourseService) toCourseViews(courses []model.Course) []model.CourseView {
	views := make([]model.CourseView, 0, len(courses))
	for i := range courses {
		views = append(views, s.toCourseView(&courses[i]))
	}
	return views
}

func (s *CourseService) toCourseView(course *model.Course) model.CourseView {
	view := model.CourseView{
		ID:             course.ID,
		Title:          course.Title,
		Category:       course.Category,
		Duration:       course.Duration,
		Batch:          course.Batch,
		Level:          course.Level,
		Price:          course.Price,
		InstructorID:   course.InstructorID,
		InstructorName: fallbackInstructor,
		CreatedAt:      course.CreatedAt,
		AverageRating:  course.AverageRating,
		TotalRatings:   course.TotalRatings,
	}
	if view.Title == "" {
		view.Title = fallbackCourseTitle
	}
	if view.Category == "" {
		view.Category = fallbackCategory
	}
	if view.Duration == "" {
		view.Duration = fallbackDuration
	}
	if view.Level == "" {
		view.Level = fallbackLevel
	}
	if view.Batch == "" {
		view.Batch = fallbackBatch
	}

	if course.Instructor != nil {
		view.InstructorName = instructorDisplayName(course.Instructor)
	}

	// Stored aggregate is used when present; rows that predate the
	// aggregator are recomputed on the fly.
	if view.TotalRatings == 0 {
		avg, total := s.ratingStatsFromEnrollments(course.ID)
		view.AverageRating = avg
		view.TotalRatings = total
	}

	if count, err := s.enrollmentRepo.CountByCourseID(course.ID); err == nil {
		view.EnrolledStudents = int(count)
	} else {
		logger.Log.Warn("enrolled student count failed",
			zap.Uint("courseId", course.ID), zap.Error(err))
	}

	return view
}

// instructorDisplayName resolves a display name for an instructor:
// name field, then the local part of the email, then a synthetic label.
func instructorDisplayName(u *model.User) string {
	if strings.TrimSpace(u.Name) != "" {
		return u.Name
	}
	if u.Email != "" {
		return strings.SplitN(u.Email, "@", 2)[0]
	}
	return fmt.Sprintf("Instructor #%d", u.ID)
}

func (s *CourseService) ratingStatsFromEnrollments(courseID uint) (float64, int) {
	enrollments, err := s.enrollmentRepo.FindByCourseID(courseID)
	if err != nil {
		logger.Log.Warn("rating stats scan failed",
			zap.Uint("courseId", courseID), zap.Error(err))
		return 0, 0
	}

	sum, count := 0, 0
	for _, e := range enrollments {
		if e.Rating != nil && *e.Rating > 0 {
			sum += *e.Rating
			count++
		}
	}
	if count == 0 {
		return 0, 0
	}
	return math.Round(float64(sum)/float64(count)*10) / 10, count
}

// AssembleEnrollmentViews builds read models for a set of enrollments.
// A record whose course cannot be loaded gets safe defaults instead of
// aborting the list.
func (s *CourseService) AssembleEnrollmentViews(enrollments []model.Enrollment) []model.EnrollmentView {
	views := make([]model.EnrollmentView, 0, len(enrollments))
	for i := range enrollments {
		views = append(views, s.AssembleEnrollmentView(&enrollments[i]))
	}
	return views
}

func (s *CourseService) AssembleEnrollmentView(e *model.Enrollment) model.EnrollmentView {
	view := model.EnrollmentView{
		ID:             e.ID,
		EnrollmentID:   e.ID,
		StudentID:      e.StudentID,
		StudentName:    fmt.Sprintf("Student #%d", e.StudentID),
		CourseID:       e.CourseID,
		CourseTitle:    fallbackCourseTitle,
		CourseCategory: fallbackCategory,
		EnrolledAt:     e.EnrolledAt,
		CompletedAt:    e.CompletedAt,
		Completed:      e.Completed,
		Rating:         e.Rating,
		Feedback:       e.Feedback,
		TestScore:      e.TestScore,
		TotalQuestions: e.TotalQuestions,
		Percentage:     e.Percentage,
		Passed:         e.Passed,
		InstructorName: fallbackInstructor,
		Duration:       fallbackDuration,
		Level:          fallbackLevel,
		Batch:          fallbackBatch,
	}

	course, err := s.courseRepo.FindByID(e.CourseID)
	if err != nil {
		logger.Log.Warn("enrollment view missing course",
			zap.Uint("enrollmentId", e.ID),
			zap.Uint("courseId", e.CourseID),
			zap.Error(err))
		return view
	}

	courseView := s.toCourseView(course)
	view.CourseTitle = courseView.Title
	view.CourseCategory = courseView.Category
	view.InstructorName = courseView.InstructorName
	view.Duration = courseView.Duration
	view.Level = courseView.Level
	view.Batch = courseView.Batch
	view.Price = courseView.Price
	view.CourseAverageRating = courseView.AverageRating
	view.CourseTotalRatings = courseView.TotalRatings
	view.EnrolledStudents = courseView.EnrolledStudents

	return view
}
