package model

// swagger:model Course
type Course struct {
	BaseModel
	Title    string  `gorm:"size:255;not null" json:"title"`
	Category string  `gorm:"size:100" json:"category"`
	Duration string  `gorm:"size:50" json:"duration"`
	Batch    string  `gorm:"size:50" json:"batch"`
	Level    string  `gorm:"size:50" json:"level"`
	Price    float64 `gorm:"type:decimal(10,2);default:0" json:"price"`

	// AverageRating and TotalRatings are derived columns. The rating
	// recompute path is their only writer.
	AverageRating float64 `gorm:"type:decimal(3,2);default:0" json:"averageRating"`
	TotalRatings  int     `gorm:"default:0" json:"totalRatings"`

	InstructorID uint  `gorm:"index" json:"instructorId"`
	Instructor   *User `gorm:"foreignKey:InstructorID" json:"instructor,omitempty"`

	Enrollments []Enrollment `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Course) TableName() string {
	return "courses"
}
