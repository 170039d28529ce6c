package service

import (
	"online_course_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddRatingRequiresEnrollment(t *testing.T) {
	env := newTestEnv(t)
	student := env.createStudent(t, "alice")
	instructor := env.createInstructor(t, "bob")
	course := env.createCourse(t, "Go Basics", instructor.ID)

	_, err := env.rating.AddRating(RatingInput{
		Stars:     intPtr(4),
		StudentID: student.ID,
		CourseID:  course.ID,
	})
	assert.ErrorIs(t, err, util.ErrNotEnrolled)
}

func TestAddRatingRejectsDuplicate(t *testing.T) {
	env := newTestEnv(t)
	student := env.createStudent(t, "alice")
	instructor := env.createInstructor(t, "bob")
	course := env.createCourse(t, "Go Basics", instructor.ID)
	env.enroll(t, student.ID, course.ID)

	_, err := env.rating.AddRating(RatingInput{
		Stars:     intPtr(4),
		StudentID: student.ID,
		CourseID:  course.ID,
	})
	require.NoError(t, err)

	_, err = env.rating.AddRating(RatingInput{
		Stars:     intPtr(5),
		StudentID: student.ID,
		CourseID:  course.ID,
	})
	assert.ErrorIs(t, err, util.ErrAlreadyRated)
}

func TestAddRatingValidatesStars(t *testing.T) {
	env := newTestEnv(t)
	student := env.createStudent(t, "alice")
	instructor := env.createInstructor(t, "bob")
	course := env.createCourse(t, "Go Basics", instructor.ID)
	env.enroll(t, student.ID, course.ID)

	for _, stars := range []int{0, 6, -1} {
		_, err := env.rating.AddRating(RatingInput{
			Stars:     intPtr(stars),
			StudentID: student.ID,
			CourseID:  course.ID,
		})
		assert.ErrorIs(t, err, util.ErrInvalidRating)
	}

	_, err := env.rating.AddRating(RatingInput{
		StudentID: student.ID,
		CourseID:  course.ID,
	})
	assert.ErrorIs(t, err, util.ErrInvalidRating)
}

func TestAddRatingRejectsNonStudent(t *testing.T) {
	env := newTestEnv(t)
	instructor := env.createInstructor(t, "bob")
	course := env.createCourse(t, "Go Basics", instructor.ID)

	_, err := env.rating.AddRating(RatingInput{
		Stars:     intPtr(4),
		StudentID: instructor.ID,
		CourseID:  course.ID,
	})
	assert.ErrorIs(t, err, util.ErrNotAStudent)
}

func TestAddRatingUpdatesAggregate(t *testing.T) {
	env := newTestEnv(t)
	instructor := env.createInstructor(t, "bob")
	course := env.createCourse(t, "Go Basics", instructor.ID)

	stars := []int{5, 4, 3}
	for i, name := range []string{"alice", "carol", "dave"} {
		student := env.createStudent(t, name)
		env.enroll(t, student.ID, course.ID)
		_, err := env.rating.AddRating(RatingInput{
			Stars:     intPtr(stars[i]),
			StudentID: student.ID,
			CourseID:  course.ID,
		})
		require.NoError(t, err)
	}

	refreshed := env.courseByID(t, course.ID)
	assert.InDelta(t, 4.0, refreshed.AverageRating, 0.0001)
	assert.Equal(t, 3, refreshed.TotalRatings)
}

func TestUpdateRatingRecomputes(t *testing.T) {
	env := newTestEnv(t)
	student := env.createStudent(t, "alice")
	instructor := env.createInstructor(t, "bob")
	course := env.createCourse(t, "Go Basics", instructor.ID)
	env.enroll(t, student.ID, course.ID)

	rating, err := env.rating.AddRating(RatingInput{
		Stars:     intPtr(2),
		StudentID: student.ID,
		CourseID:  course.ID,
	})
	require.NoError(t, err)

	updated, err := env.rating.UpdateRating(rating.ID, RatingInput{
		Stars:   intPtr(5),
		Comment: strPtr("better than I thought"),
	})
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Stars)
	assert.Equal(t, "better than I thought", updated.Comment)

	refreshed := env.courseByID(t, course.ID)
	assert.InDelta(t, 5.0, refreshed.AverageRating, 0.0001)
}

func TestUpdateRatingNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.rating.UpdateRating(9999, RatingInput{Stars: intPtr(3)})
	assert.ErrorIs(t, err, util.ErrRatingNotFound)
}

func TestDeleteLastRatingResetsAggregate(t *testing.T) {
	env := newTestEnv(t)
	student := env.createStudent(t, "alice")
	instructor := env.createInstructor(t, "bob")
	course := env.createCourse(t, "Go Basics", instructor.ID)
	env.enroll(t, student.ID, course.ID)

	rating, err := env.rating.AddRating(RatingInput{
		Stars:     intPtr(4),
		StudentID: student.ID,
		CourseID:  course.ID,
	})
	require.NoError(t, err)

	require.NoError(t, env.rating.DeleteRating(rating.ID))

	refreshed := env.courseByID(t, course.ID)
	assert.Zero(t, refreshed.AverageRating)
	assert.Zero(t, refreshed.TotalRatings)
}

func TestDeleteRatingAbsentIsSilent(t *testing.T) {
	env := newTestEnv(t)

	assert.NoError(t, env.rating.DeleteRating(424242))
}

func TestRatingForStudentAndCourse(t *testing.T) {
	env := newTestEnv(t)
	student := env.createStudent(t, "alice")
	instructor := env.createInstructor(t, "bob")
	course := env.createCourse(t, "Go Basics", instructor.ID)
	env.enroll(t, student.ID, course.ID)

	_, err := env.rating.RatingForStudentAndCourse(student.ID, course.ID)
	assert.ErrorIs(t, err, util.ErrRatingNotFound)

	created, err := env.rating.AddRating(RatingInput{
		Stars:     intPtr(3),
		StudentID: student.ID,
		CourseID:  course.ID,
	})
	require.NoError(t, err)

	found, err := env.rating.RatingForStudentAndCourse(student.ID, course.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
}
