package repository

import (
	"online_course_backend/internal/model"

	"gorm.io/gorm"
)

type TestResultRepository struct {
	DB *gorm.DB
}

func NewTestResultRepository(db *gorm.DB) *TestResultRepository {
	return &TestResultRepository{DB: db}
}

func (r *TestResultRepository) Save(result *model.TestResult) error {
	return r.DB.Save(result).Error
}

func (r *TestResultRepository) FindByEnrollmentID(enrollmentID uint) (*model.TestResult, error) {
	var result model.TestResult
	err := r.DB.Where("enrollment_id = ?", enrollmentID).First(&result).Error
	return &result, err
}

func (r *TestResultRepository) FindByStudentID(studentID uint) ([]model.TestResult, error) {
	var results []model.TestResult
	err := r.DB.Where("student_id = ?", studentID).Find(&results).Error
	return results, err
}

func (r *TestResultRepository) FindByCourseAndStudent(courseID, studentID uint) (*model.TestResult, error) {
	var result model.TestResult
	err := r.DB.Where("course_id = ? AND student_id = ?", courseID, studentID).First(&result).Error
	return &result, err
}

func (r *TestResultRepository) Delete(id uint) error {
	return r.DB.Delete(&model.TestResult{}, id).Error
}
