package repository

import (
	"online_course_backend/internal/model"

	"gorm.io/gorm"
)

type EnrollmentRepository struct {
	DB *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) *EnrollmentRepository {
	return &EnrollmentRepository{DB: db}
}

func (r *EnrollmentRepository) Create(enrollment *model.Enrollment) error {
	return r.DB.Create(enrollment).Error
}

func (r *EnrollmentRepository) FindByID(id uint) (*model.Enrollment, error) {
	var enrollment model.Enrollment
	err := r.DB.First(&enrollment, id).Error
	return &enrollment, err
}

func (r *EnrollmentRepository) FindByStudentID(studentID uint) ([]model.Enrollment, error) {
	var enrollments []model.Enrollment
	err := r.DB.Where("student_id = ?", studentID).Find(&enrollments).Error
	return enrollments, err
}

func (r *EnrollmentRepository) FindByCourseID(courseID uint) ([]model.Enrollment, error) {
	var enrollments []model.Enrollment
	err := r.DB.Where("course_id = ?", courseID).Find(&enrollments).Error
	return enrollments, err
}

func (r *EnrollmentRepository) FindByStudentAndCourse(studentID, courseID uint) (*model.Enrollment, error) {
	var enrollment model.Enrollment
	err := r.DB.Where("student_id = ? AND course_id = ?", studentID, courseID).First(&enrollment).Error
	return &enrollment, err
}

func (r *EnrollmentRepository) CountByCourseID(courseID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Enrollment{}).Where("course_id = ?", courseID).Count(&count).Error
	return count, err
}

func (r *EnrollmentRepository) Update(enrollment *model.Enrollment) error {
	return r.DB.Save(enrollment).Error
}

// Delete is a no-op for absent ids, matching the CRUD layer's idempotent
// unenroll behavior.
func (r *EnrollmentRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Enrollment{}, id).Error
}
