package service

import (
	"fmt"
	"online_course_backend/internal/model"
	"online_course_backend/internal/repository"
	"online_course_backend/pkg/database"
	"online_course_backend/pkg/logger"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type testEnv struct {
	db *gorm.DB

	userRepo        *repository.UserRepository
	courseRepo      *repository.CourseRepository
	enrollmentRepo  *repository.EnrollmentRepository
	ratingRepo      *repository.RatingRepository
	testResultRepo  *repository.TestResultRepository
	certificateRepo *repository.CertificateRepository

	auth        *AuthService
	user        *UserService
	course      *CourseService
	enrollment  *EnrollmentService
	rating      *RatingService
	testResult  *TestResultService
	certificate *CertificateService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	logger.Log = zap.NewNop()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// 单连接，保证内存库在整个测试期间存活
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))

	env := &testEnv{
		db:              db,
		userRepo:        repository.NewUserRepository(db),
		courseRepo:      repository.NewCourseRepository(db),
		enrollmentRepo:  repository.NewEnrollmentRepository(db),
		ratingRepo:      repository.NewRatingRepository(db),
		testResultRepo:  repository.NewTestResultRepository(db),
		certificateRepo: repository.NewCertificateRepository(db),
	}

	cache := NewCourseCache(nil)

	env.auth = NewAuthService(env.userRepo)
	env.user = NewUserService(env.userRepo)
	env.course = NewCourseService(env.courseRepo, env.enrollmentRepo, env.userRepo, cache)
	env.enrollment = NewEnrollmentService(env.enrollmentRepo, env.userRepo, env.courseRepo, env.course, cache)
	env.rating = NewRatingService(env.ratingRepo, env.courseRepo, env.enrollmentRepo, env.userRepo, cache)
	env.testResult = NewTestResultService(env.testResultRepo)
	env.certificate = NewCertificateService(env.certificateRepo, env.enrollmentRepo, env.courseRepo)

	return env
}

func (env *testEnv) createStudent(t *testing.T, name string) *model.User {
	t.Helper()
	user := &model.User{
		Name:     name,
		Email:    fmt.Sprintf("%s@example.com", name),
		Password: "secret",
		Role:     model.Student,
	}
	require.NoError(t, env.userRepo.Create(user))
	return user
}

func (env *testEnv) createInstructor(t *testing.T, name string) *model.User {
	t.Helper()
	user := &model.User{
		Name:     name,
		Email:    fmt.Sprintf("%s@example.com", name),
		Password: "secret",
		Role:     model.Instructor,
	}
	require.NoError(t, env.userRepo.Create(user))
	return user
}

func (env *testEnv) createCourse(t *testing.T, title string, instructorID uint) *model.Course {
	t.Helper()
	course := &model.Course{
		Title:        title,
		Category:     "Programming",
		Duration:     "12 weeks",
		Batch:        "2026-A",
		Level:        "Intermediate",
		Price:        49.99,
		InstructorID: instructorID,
	}
	require.NoError(t, env.courseRepo.Create(course))
	return course
}

func (env *testEnv) enroll(t *testing.T, studentID, courseID uint) *model.Enrollment {
	t.Helper()
	enrollment, err := env.enrollment.Enroll(studentID, courseID)
	require.NoError(t, err)
	return enrollment
}

func (env *testEnv) courseByID(t *testing.T, courseID uint) *model.Course {
	t.Helper()
	course, err := env.courseRepo.FindByID(courseID)
	require.NoError(t, err)
	return course
}

func timePtr(ts time.Time) *time.Time { return &ts }
func intPtr(v int) *int               { return &v }
func boolPtr(v bool) *bool            { return &v }
func strPtr(v string) *string         { return &v }
