package model

// swagger:model Rating
type Rating struct {
	BaseModel
	Stars     int    `gorm:"not null" json:"stars"`
	Comment   string `gorm:"size:1000" json:"comment"`
	StudentID uint   `gorm:"uniqueIndex:idx_rating_student_course;not null" json:"studentId"`
	CourseID  uint   `gorm:"uniqueIndex:idx_rating_student_course;not null" json:"courseId"`
}

func (Rating) TableName() string {
	return "ratings"
}
