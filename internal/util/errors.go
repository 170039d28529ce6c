package util

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrCourseNotFound      = errors.New("course not found")
	ErrEnrollmentNotFound  = errors.New("enrollment not found")
	ErrRatingNotFound      = errors.New("rating not found")
	ErrTestResultNotFound  = errors.New("test result not found")
	ErrCertificateNotFound = errors.New("certificate not found")

	ErrNotAStudent           = errors.New("user is not a student")
	ErrInvalidRating         = errors.New("rating must be between 1 and 5 stars")
	ErrInvalidTotalQuestions = errors.New("total questions must be greater than zero")
	ErrInvalidRole           = errors.New("invalid role")

	ErrAlreadyRated    = errors.New("student has already rated this course")
	ErrNotEnrolled     = errors.New("student is not enrolled in this course")
	ErrEmailRegistered = errors.New("email already registered")
	ErrEmailTaken      = errors.New("email is already taken")
	ErrWrongPassword   = errors.New("current password is incorrect")
	ErrBadCredentials  = errors.New("invalid email or password")

	ErrCourseNotCompleted = errors.New("course must be completed before generating certificate")
)
