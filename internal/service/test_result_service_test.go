package service

import (
	"online_course_backend/internal/model"
	"online_course_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveTestResultComputesOutcome(t *testing.T) {
	env := newTestEnv(t)
	student := env.createStudent(t, "alice")
	instructor := env.createInstructor(t, "bob")
	course := env.createCourse(t, "Go Basics", instructor.ID)
	enrollment := env.enroll(t, student.ID, course.ID)

	result, err := env.testResult.SaveTestResult(TestResultInput{
		EnrollmentID:   enrollment.ID,
		CourseID:       course.ID,
		StudentID:      student.ID,
		TestScore:      9,
		TotalQuestions: 12,
	})
	require.NoError(t, err)

	assert.InDelta(t, 75.0, result.Percentage, 0.0001)
	assert.True(t, result.Passed)
	assert.True(t, result.Completed)
}

func TestSaveTestResultUpserts(t *testing.T) {
	env := newTestEnv(t)
	student := env.createStudent(t, "alice")
	instructor := env.createInstructor(t, "bob")
	course := env.createCourse(t, "Go Basics", instructor.ID)
	enrollment := env.enroll(t, student.ID, course.ID)

	in := TestResultInput{
		EnrollmentID:   enrollment.ID,
		CourseID:       course.ID,
		StudentID:      student.ID,
		TestScore:      3,
		TotalQuestions: 10,
	}
	first, err := env.testResult.SaveTestResult(in)
	require.NoError(t, err)
	assert.False(t, first.Passed)

	in.TestScore = 8
	second, err := env.testResult.SaveTestResult(in)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.True(t, second.Passed)

	var count int64
	require.NoError(t, env.db.Model(&model.TestResult{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestSaveTestResultRejectsBadTotal(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.testResult.SaveTestResult(TestResultInput{TotalQuestions: 0})
	assert.ErrorIs(t, err, util.ErrInvalidTotalQuestions)
}

func TestHasPassedCourse(t *testing.T) {
	env := newTestEnv(t)
	student := env.createStudent(t, "alice")
	instructor := env.createInstructor(t, "bob")
	course := env.createCourse(t, "Go Basics", instructor.ID)
	enrollment := env.enroll(t, student.ID, course.ID)

	// 没有成绩时视为未通过，而不是错误
	passed, err := env.testResult.HasPassedCourse(course.ID, student.ID)
	require.NoError(t, err)
	assert.False(t, passed)

	_, err = env.testResult.SaveTestResult(TestResultInput{
		EnrollmentID:   enrollment.ID,
		CourseID:       course.ID,
		StudentID:      student.ID,
		TestScore:      7,
		TotalQuestions: 10,
	})
	require.NoError(t, err)

	passed, err = env.testResult.HasPassedCourse(course.ID, student.ID)
	require.NoError(t, err)
	assert.True(t, passed)
}

func TestGetTestResultNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.testResult.GetByEnrollment(9999)
	assert.ErrorIs(t, err, util.ErrTestResultNotFound)

	_, err = env.testResult.GetByCourseAndStudent(9999, 9999)
	assert.ErrorIs(t, err, util.ErrTestResultNotFound)
}
