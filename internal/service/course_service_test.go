package service

import (
	"context"
	"online_course_backend/internal/model"
	"online_course_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCourseRequiresInstructor(t *testing.T) {
	env := newTestEnv(t)
	student := env.createStudent(t, "alice")

	_, err := env.course.CreateCourse(CourseInput{
		Title:        strPtr("Go Basics"),
		InstructorID: student.ID,
	})
	assert.ErrorIs(t, err, util.ErrInvalidRole)

	_, err = env.course.CreateCourse(CourseInput{
		Title:        strPtr("Go Basics"),
		InstructorID: 9999,
	})
	assert.ErrorIs(t, err, util.ErrUserNotFound)
}

func TestUpdateCourseNeverChangesInstructor(t *testing.T) {
	env := newTestEnv(t)
	bob := env.createInstructor(t, "bob")
	eve := env.createInstructor(t, "eve")
	course := env.createCourse(t, "Go Basics", bob.ID)

	updated, err := env.course.UpdateCourse(course.ID, CourseInput{
		Title:        strPtr("Advanced Go"),
		InstructorID: eve.ID,
	})
	require.NoError(t, err)

	assert.Equal(t, "Advanced Go", updated.Title)
	assert.Equal(t, bob.ID, updated.InstructorID)
}

func TestDeleteCourseRemovesEnrollments(t *testing.T) {
	env := newTestEnv(t)
	student := env.createStudent(t, "alice")
	instructor := env.createInstructor(t, "bob")
	course := env.createCourse(t, "Go Basics", instructor.ID)
	env.enroll(t, student.ID, course.ID)

	require.NoError(t, env.course.DeleteCourse(course.ID))

	_, err := env.course.GetCourse(course.ID)
	assert.ErrorIs(t, err, util.ErrCourseNotFound)

	enrollments, err := env.enrollmentRepo.FindByStudentID(student.ID)
	require.NoError(t, err)
	assert.Empty(t, enrollments)
}

func TestCourseViewSubstitutesFallbacks(t *testing.T) {
	env := newTestEnv(t)
	instructor := env.createInstructor(t, "bob")

	course := &model.Course{InstructorID: instructor.ID}
	require.NoError(t, env.courseRepo.Create(course))

	view, err := env.course.GetCourseView(context.Background(), course.ID)
	require.NoError(t, err)

	assert.Equal(t, "Unknown Course", view.Title)
	assert.Equal(t, "General", view.Category)
	assert.Equal(t, "8 weeks", view.Duration)
	assert.Equal(t, "Beginner", view.Level)
	assert.Equal(t, "Current Batch", view.Batch)
	assert.Equal(t, "bob", view.InstructorName)
}

func TestCourseViewInstructorNameFallsBackToEmail(t *testing.T) {
	env := newTestEnv(t)

	instructor := &model.User{
		Email:    "jane.doe@example.com",
		Password: "secret",
		Role:     model.Instructor,
	}
	require.NoError(t, env.userRepo.Create(instructor))
	course := env.createCourse(t, "Go Basics", instructor.ID)

	view, err := env.course.GetCourseView(context.Background(), course.ID)
	require.NoError(t, err)
	assert.Equal(t, "jane.doe", view.InstructorName)
}

func TestCourseViewInstructorFallbackLabel(t *testing.T) {
	env := newTestEnv(t)
	instructor := env.createInstructor(t, "bob")
	course := env.createCourse(t, "Go Basics", instructor.ID)

	// 课程记录挂着一个已被删除的讲师
	require.NoError(t, env.userRepo.Delete(instructor.ID))

	view, err := env.course.GetCourseView(context.Background(), course.ID)
	require.NoError(t, err)
	assert.Equal(t, "Course Instructor", view.InstructorName)
}

func TestCourseViewCountsEnrolledStudents(t *testing.T) {
	env := newTestEnv(t)
	instructor := env.createInstructor(t, "bob")
	course := env.createCourse(t, "Go Basics", instructor.ID)

	for _, name := range []string{"alice", "carol"} {
		student := env.createStudent(t, name)
		env.enroll(t, student.ID, course.ID)
	}

	view, err := env.course.GetCourseView(context.Background(), course.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, view.EnrolledStudents)
}

func TestCourseViewRecomputesWhenAggregateMissing(t *testing.T) {
	env := newTestEnv(t)
	student := env.createStudent(t, "alice")
	instructor := env.createInstructor(t, "bob")
	course := env.createCourse(t, "Go Basics", instructor.ID)
	enrollment := env.enroll(t, student.ID, course.ID)

	// Rated row predating the aggregator: rating set directly, derived
	// columns left at zero.
	enrollment.Rating = intPtr(4)
	require.NoError(t, env.enrollmentRepo.Update(enrollment))

	view, err := env.course.GetCourseView(context.Background(), course.ID)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, view.AverageRating, 0.0001)
	assert.Equal(t, 1, view.TotalRatings)
}

func TestListCoursesByCategoryAndBatch(t *testing.T) {
	env := newTestEnv(t)
	instructor := env.createInstructor(t, "bob")
	env.createCourse(t, "Go Basics", instructor.ID)

	other := &model.Course{Title: "Cooking", Category: "Lifestyle", Batch: "2026-B", InstructorID: instructor.ID}
	require.NoError(t, env.courseRepo.Create(other))

	byCategory, err := env.course.ListCoursesByCategory("Programming")
	require.NoError(t, err)
	require.Len(t, byCategory, 1)
	assert.Equal(t, "Go Basics", byCategory[0].Title)

	byBatch, err := env.course.ListCoursesByBatch("2026-B")
	require.NoError(t, err)
	require.Len(t, byBatch, 1)
	assert.Equal(t, "Cooking", byBatch[0].Title)

	byInstructor, err := env.course.ListCoursesByInstructor(instructor.ID)
	require.NoError(t, err)
	assert.Len(t, byInstructor, 2)
}

func TestAssembleEnrollmentViewWithMissingCourse(t *testing.T) {
	env := newTestEnv(t)
	student := env.createStudent(t, "alice")
	instructor := env.createInstructor(t, "bob")
	course := env.createCourse(t, "Go Basics", instructor.ID)
	enrollment := env.enroll(t, student.ID, course.ID)

	require.NoError(t, env.courseRepo.Delete(course.ID))

	// 课程没了也要给出带兜底字段的视图，而不是报错
	stale := model.Enrollment{
		BaseModel: enrollment.BaseModel,
		StudentID: student.ID,
		CourseID:  course.ID,
	}
	views := env.course.AssembleEnrollmentViews([]model.Enrollment{stale})
	require.Len(t, views, 1)

	view := views[0]
	assert.Equal(t, "Unknown Course", view.CourseTitle)
	assert.Equal(t, "General", view.CourseCategory)
	assert.Equal(t, "Course Instructor", view.InstructorName)
	assert.Contains(t, view.StudentName, "Student #")
}

func TestStudentEnrollmentViews(t *testing.T) {
	env := newTestEnv(t)
	student := env.createStudent(t, "alice")
	instructor := env.createInstructor(t, "bob")
	course := env.createCourse(t, "Go Basics", instructor.ID)
	enrollment := env.enroll(t, student.ID, course.ID)

	_, err := env.enrollment.RateCourse(enrollment.ID, 4, "solid")
	require.NoError(t, err)

	views, err := env.enrollment.StudentEnrollments(student.ID)
	require.NoError(t, err)
	require.Len(t, views, 1)

	view := views[0]
	assert.Equal(t, "Go Basics", view.CourseTitle)
	assert.Equal(t, "bob", view.InstructorName)
	assert.Equal(t, 1, view.EnrolledStudents)
	require.NotNil(t, view.Rating)
	assert.Equal(t, 4, *view.Rating)
	assert.InDelta(t, 4.0, view.CourseAverageRating, 0.0001)
}
