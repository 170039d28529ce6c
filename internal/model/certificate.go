package model

import "time"

// Certificate snapshots student/course/instructor display data at issue
// time. Only completed enrollments are eligible, one certificate each.
// swagger:model Certificate
type Certificate struct {
	BaseModel
	Code           string     `gorm:"size:64;unique;not null" json:"code"`
	EnrollmentID   uint       `gorm:"uniqueIndex;not null" json:"enrollmentId"`
	StudentName    string     `gorm:"size:100;not null" json:"studentName"`
	CourseTitle    string     `gorm:"size:255;not null" json:"courseTitle"`
	CourseCategory string     `gorm:"size:100;not null" json:"courseCategory"`
	InstructorName string     `gorm:"size:100" json:"instructorName"`
	IssuedAt       time.Time  `gorm:"not null" json:"issuedAt"`
	CompletedAt    *time.Time `json:"completedAt"`
	Score          int        `json:"score"`
	CertificateURL string     `gorm:"size:1000" json:"certificateUrl"`
}

func (Certificate) TableName() string {
	return "certificates"
}
