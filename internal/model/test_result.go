package model

// TestResult tracks test submissions per enrollment, independently of the
// test fields carried on Enrollment itself. A second submission for the
// same enrollment updates the existing row.
// swagger:model TestResult
type TestResult struct {
	BaseModel
	EnrollmentID   uint    `gorm:"uniqueIndex;not null" json:"enrollmentId"`
	CourseID       uint    `gorm:"index;not null" json:"courseId"`
	StudentID      uint    `gorm:"index;not null" json:"studentId"`
	TestScore      int     `gorm:"not null" json:"testScore"`
	TotalQuestions int     `gorm:"not null" json:"totalQuestions"`
	Percentage     float64 `gorm:"not null" json:"percentage"`
	Passed         bool    `gorm:"not null" json:"passed"`
	Completed      bool    `gorm:"default:false" json:"completed"`
}

func (TestResult) TableName() string {
	return "test_results"
}
