package model

import "time"

// Read-model shapes assembled for clients. These are built by the service
// layer from several entities plus the derived rating figures.

// swagger:model CourseView
type CourseView struct {
	ID             uint      `json:"id"`
	Title          string    `json:"title"`
	Category       string    `json:"category"`
	Duration       string    `json:"duration"`
	Batch          string    `json:"batch"`
	Level          string    `json:"level"`
	Price          float64   `json:"price"`
	InstructorID   uint      `json:"instructorId,omitempty"`
	InstructorName string    `json:"instructorName"`
	CreatedAt      time.Time `json:"createdAt"`

	AverageRating    float64 `json:"averageRating"`
	TotalRatings     int     `json:"totalRatings"`
	EnrolledStudents int     `json:"enrolledStudents"`
}

// swagger:model EnrollmentView
type EnrollmentView struct {
	ID             uint       `json:"id"`
	EnrollmentID   uint       `json:"enrollmentId"`
	StudentID      uint       `json:"studentId"`
	StudentName    string     `json:"studentName"`
	CourseID       uint       `json:"courseId"`
	CourseTitle    string     `json:"courseTitle"`
	CourseCategory string     `json:"courseCategory"`
	EnrolledAt     time.Time  `json:"enrolledAt"`
	CompletedAt    *time.Time `json:"completedAt"`
	Completed      bool       `json:"completed"`

	Rating   *int    `json:"rating"`
	Feedback *string `json:"feedback"`

	TestScore      int     `json:"testScore"`
	TotalQuestions int     `json:"totalQuestions"`
	Percentage     float64 `json:"percentage"`
	Passed         bool    `json:"passed"`

	InstructorName string  `json:"instructorName"`
	Duration       string  `json:"duration"`
	Level          string  `json:"level"`
	Batch          string  `json:"batch"`
	Price          float64 `json:"price"`

	CourseAverageRating float64 `json:"courseAverageRating"`
	CourseTotalRatings  int     `json:"courseTotalRatings"`
	EnrolledStudents    int     `json:"enrolledStudents"`
}
