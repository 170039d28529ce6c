package model

import "time"

// Enrollment is the student/course pairing. At most one row exists per
// (student, course); enrolling twice returns the existing row.
// swagger:model Enrollment
type Enrollment struct {
	BaseModel
	StudentID uint  `gorm:"uniqueIndex:idx_student_course;not null" json:"studentId"`
	CourseID  uint  `gorm:"uniqueIndex:idx_student_course;not null" json:"courseId"`
	Student   *User `gorm:"foreignKey:StudentID" json:"-"`

	EnrolledAt  time.Time  `gorm:"not null" json:"enrolledAt"`
	Completed   bool       `gorm:"default:false" json:"completed"`
	CompletedAt *time.Time `json:"completedAt"` // non-nil iff Completed

	TestScore      int     `gorm:"default:0" json:"testScore"`
	TotalQuestions int     `gorm:"default:10" json:"totalQuestions"`
	Percentage     float64 `gorm:"default:0" json:"percentage"`
	Passed         bool    `gorm:"default:false" json:"passed"`

	Rating   *int    `json:"rating"` // 1-5 once rated
	Feedback *string `gorm:"size:1000" json:"feedback"`
}

func (Enrollment) TableName() string {
	return "enrollments"
}
