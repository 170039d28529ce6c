package repository

import (
	"online_course_backend/internal/model"

	"gorm.io/gorm"
)

type CertificateRepository struct {
	DB *gorm.DB
}

func NewCertificateRepository(db *gorm.DB) *CertificateRepository {
	return &CertificateRepository{DB: db}
}

func (r *CertificateRepository) Create(certificate *model.Certificate) error {
	return r.DB.Create(certificate).Error
}

func (r *CertificateRepository) FindByID(id uint) (*model.Certificate, error) {
	var certificate model.Certificate
	err := r.DB.First(&certificate, id).Error
	return &certificate, err
}

func (r *CertificateRepository) FindByCode(code string) (*model.Certificate, error) {
	var certificate model.Certificate
	err := r.DB.Where("code = ?", code).First(&certificate).Error
	return &certificate, err
}

func (r *CertificateRepository) FindByEnrollmentID(enrollmentID uint) (*model.Certificate, error) {
	var certificate model.Certificate
	err := r.DB.Where("enrollment_id = ?", enrollmentID).First(&certificate).Error
	return &certificate, err
}

func (r *CertificateRepository) FindByStudentID(studentID uint) ([]model.Certificate, error) {
	var certificates []model.Certificate
	err := r.DB.
		Joins("JOIN enrollments ON enrollments.id = certificates.enrollment_id").
		Where("enrollments.student_id = ?", studentID).
		Find(&certificates).Error
	return certificates, err
}

func (r *CertificateRepository) ExistsByEnrollmentID(enrollmentID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&model.Certificate{}).
		Where("enrollment_id = ?", enrollmentID).
		Count(&count).Error
	return count > 0, err
}

func (r *CertificateRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Certificate{}, id).Error
}
