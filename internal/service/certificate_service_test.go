package service

import (
	"fmt"
	"online_course_backend/internal/util"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCertificateRequiresCompletion(t *testing.T) {
	env := newTestEnv(t)
	student := env.createStudent(t, "alice")
	instructor := env.createInstructor(t, "bob")
	course := env.createCourse(t, "Go Basics", instructor.ID)
	enrollment := env.enroll(t, student.ID, course.ID)

	_, err := env.certificate.Generate(CertificateInput{EnrollmentID: enrollment.ID})
	assert.ErrorIs(t, err, util.ErrCourseNotCompleted)

	_, err = env.certificate.Generate(CertificateInput{EnrollmentID: 9999})
	assert.ErrorIs(t, err, util.ErrEnrollmentNotFound)
}

func TestGenerateCertificateIsIdempotent(t *testing.T) {
	env := newTestEnv(t)
	student := env.createStudent(t, "alice")
	instructor := env.createInstructor(t, "bob")
	course := env.createCourse(t, "Go Basics", instructor.ID)
	enrollment := env.enroll(t, student.ID, course.ID)

	_, err := env.enrollment.CompleteCourse(enrollment.ID, CompletionInput{Completed: boolPtr(true)})
	require.NoError(t, err)

	first, err := env.certificate.Generate(CertificateInput{
		EnrollmentID: enrollment.ID,
		StudentName:  "Alice",
	})
	require.NoError(t, err)

	second, err := env.certificate.Generate(CertificateInput{
		EnrollmentID: enrollment.ID,
		StudentName:  "Someone Else",
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.Code, second.Code)
	assert.Equal(t, "Alice", second.StudentName)
}

func TestGenerateCertificateFields(t *testing.T) {
	env := newTestEnv(t)
	student := env.createStudent(t, "alice")
	instructor := env.createInstructor(t, "bob")
	course := env.createCourse(t, "Go Basics", instructor.ID)
	enrollment := env.enroll(t, student.ID, course.ID)

	_, err := env.enrollment.CompleteCourse(enrollment.ID, CompletionInput{Completed: boolPtr(true)})
	require.NoError(t, err)

	certificate, err := env.certificate.Generate(CertificateInput{
		EnrollmentID: enrollment.ID,
		Score:        85,
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(certificate.Code, "CERT-"))
	assert.Equal(t, fmt.Sprintf("/certificates/%s.pdf", certificate.Code), certificate.CertificateURL)
	assert.False(t, certificate.IssuedAt.IsZero())
	assert.NotNil(t, certificate.CompletedAt)
	assert.Equal(t, 85, certificate.Score)

	// 空白快照字段从课程记录回填
	assert.Equal(t, "Go Basics", certificate.CourseTitle)
	assert.Equal(t, "Programming", certificate.CourseCategory)
	assert.Equal(t, "bob", certificate.InstructorName)
	assert.Equal(t, fmt.Sprintf("Student #%d", student.ID), certificate.StudentName)
}

func TestCertificateLookups(t *testing.T) {
	env := newTestEnv(t)
	student := env.createStudent(t, "alice")
	instructor := env.createInstructor(t, "bob")
	course := env.createCourse(t, "Go Basics", instructor.ID)
	enrollment := env.enroll(t, student.ID, course.ID)

	exists, err := env.certificate.ExistsForEnrollment(enrollment.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = env.enrollment.CompleteCourse(enrollment.ID, CompletionInput{Completed: boolPtr(true)})
	require.NoError(t, err)

	issued, err := env.certificate.Generate(CertificateInput{EnrollmentID: enrollment.ID})
	require.NoError(t, err)

	byCode, err := env.certificate.GetByCode(issued.Code)
	require.NoError(t, err)
	assert.Equal(t, issued.ID, byCode.ID)

	byEnrollment, err := env.certificate.GetByEnrollment(enrollment.ID)
	require.NoError(t, err)
	assert.Equal(t, issued.ID, byEnrollment.ID)

	mine, err := env.certificate.StudentCertificates(student.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, issued.ID, mine[0].ID)

	exists, err = env.certificate.ExistsForEnrollment(enrollment.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	_, err = env.certificate.GetByCode("CERT-does-not-exist")
	assert.ErrorIs(t, err, util.ErrCertificateNotFound)
}
