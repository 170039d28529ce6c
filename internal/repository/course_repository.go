package repository

import (
	"online_course_backend/internal/model"

	"gorm.io/gorm"
)

type CourseRepository struct {
	DB *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{DB: db}
}

func (r *CourseRepository) Create(course *model.Course) error {
	return r.DB.Create(course).Error
}

func (r *CourseRepository) FindByID(id uint) (*model.Course, error) {
	var course model.Course
	err := r.DB.Preload("Instructor").First(&course, id).Error
	return &course, err
}

func (r *CourseRepository) FindAll() ([]model.Course, error) {
	var courses []model.Course
	err := r.DB.Preload("Instructor").Find(&courses).Error
	return courses, err
}

func (r *CourseRepository) FindByCategory(category string) ([]model.Course, error) {
	var courses []model.Course
	err := r.DB.Preload("Instructor").Where("category = ?", category).Find(&courses).Error
	return courses, err
}

func (r *CourseRepository) FindByBatch(batch string) ([]model.Course, error) {
	var courses []model.Course
	err := r.DB.Preload("Instructor").Where("batch = ?", batch).Find(&courses).Error
	return courses, err
}

func (r *CourseRepository) FindByInstructorID(instructorID uint) ([]model.Course, error) {
	var courses []model.Course
	err := r.DB.Preload("Instructor").Where("instructor_id = ?", instructorID).Find(&courses).Error
	return courses, err
}

func (r *CourseRepository) Update(course *model.Course) error {
	return r.DB.Save(course).Error
}

// UpdateRatingStats writes the derived aggregate columns only.
func (r *CourseRepository) UpdateRatingStats(courseID uint, averageRating float64, totalRatings int) error {
	return r.DB.Model(&model.Course{}).
		Where("id = ?", courseID).
		Updates(map[string]interface{}{
			"average_rating": averageRating,
			"total_ratings":  totalRatings,
		}).Error
}

// Delete removes the course and its enrollments in one transaction.
func (r *CourseRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("course_id = ?", id).Delete(&model.Enrollment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("course_id = ?", id).Delete(&model.Rating{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Course{}, id).Error
	})
}
