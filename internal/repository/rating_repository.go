package repository

import (
	"online_course_backend/internal/model"

	"gorm.io/gorm"
)

type RatingRepository struct {
	DB *gorm.DB
}

func NewRatingRepository(db *gorm.DB) *RatingRepository {
	return &RatingRepository{DB: db}
}

func (r *RatingRepository) Create(rating *model.Rating) error {
	return r.DB.Create(rating).Error
}

func (r *RatingRepository) FindByID(id uint) (*model.Rating, error) {
	var rating model.Rating
	err := r.DB.First(&rating, id).Error
	return &rating, err
}

func (r *RatingRepository) FindByCourseID(courseID uint) ([]model.Rating, error) {
	var ratings []model.Rating
	err := r.DB.Where("course_id = ?", courseID).Find(&ratings).Error
	return ratings, err
}

func (r *RatingRepository) FindByStudentID(studentID uint) ([]model.Rating, error) {
	var ratings []model.Rating
	err := r.DB.Where("student_id = ?", studentID).Find(&ratings).Error
	return ratings, err
}

func (r *RatingRepository) FindByStudentAndCourse(studentID, courseID uint) (*model.Rating, error) {
	var rating model.Rating
	err := r.DB.Where("student_id = ? AND course_id = ?", studentID, courseID).First(&rating).Error
	return &rating, err
}

func (r *RatingRepository) ExistsByStudentAndCourse(studentID, courseID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&model.Rating{}).
		Where("student_id = ? AND course_id = ?", studentID, courseID).
		Count(&count).Error
	return count > 0, err
}

func (r *RatingRepository) Update(rating *model.Rating) error {
	return r.DB.Save(rating).Error
}

func (r *RatingRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Rating{}, id).Error
}
