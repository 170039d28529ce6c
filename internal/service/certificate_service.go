package service

import (
	"errors"
	"fmt"
	"online_course_backend/internal/model"
	"online_course_backend/internal/repository"
	"online_course_backend/internal/util"
	"online_course_backend/pkg/logger"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CertificateInput struct {
	EnrollmentID   uint   `json:"enrollmentId"`
	StudentName    string `json:"studentName"`
	CourseTitle    string `json:"courseTitle"`
	CourseCategory string `json:"courseCategory"`
	InstructorName string `json:"instructorName"`
	Score          int    `json:"score"`
}

type CertificateService struct {
	certificateRepo *repository.CertificateRepository
	enrollmentRepo  *repository.EnrollmentRepository
	courseRepo      *repository.CourseRepository
}

func NewCertificateService(
	certificateRepo *repository.CertificateRepository,
	enrollmentRepo *repository.EnrollmentRepository,
	courseRepo *repository.CourseRepository,
) *CertificateService {
	return &CertificateService{
		certificateRepo: certificateRepo,
		enrollmentRepo:  enrollmentRepo,
		courseRepo:      courseRepo,
	}
}

// Generate issues a certificate for a completed enrollment. Only one
// certificate ever exists per enrollment; repeat requests return the
// existing one.
func (s *CertificateService) Generate(in CertificateInput) (*model.Certificate, error) {
	enrollment, err := s.enrollmentRepo.FindByID(in.EnrollmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrEnrollmentNotFound
		}
		return nil, err
	}

	if !enrollment.Completed {
		return nil, util.ErrCourseNotCompleted
	}

	existing, err := s.certificateRepo.FindByEnrollmentID(in.EnrollmentID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	code := "CERT-" + uuid.New().String()

	certificate := &model.Certificate{
		Code:           code,
		EnrollmentID:   in.EnrollmentID,
		StudentName:    in.StudentName,
		CourseTitle:    in.CourseTitle,
		CourseCategory: in.CourseCategory,
		InstructorName: in.InstructorName,
		IssuedAt:       time.Now(),
		CompletedAt:    enrollment.CompletedAt,
		Score:          in.Score,
		// PDF rendering is an external concern; only the URL is stored.
		CertificateURL: fmt.Sprintf("/certificates/%s.pdf", code),
	}
	if certificate.StudentName == "" {
		certificate.StudentName = fmt.Sprintf("Student #%d", enrollment.StudentID)
	}
	s.fillCourseSnapshot(certificate, enrollment.CourseID)

	if err := s.certificateRepo.Create(certificate); err != nil {
		return nil, err
	}

	logger.Log.Info("certificate issued",
		zap.Uint("enrollmentId", in.EnrollmentID),
		zap.String("code", code))

	return certificate, nil
}

// fillCourseSnapshot backfills denormalized course fields the caller
// left blank from the course record itself.
func (s *CertificateService) fillCourseSnapshot(c *model.Certificate, courseID uint) {
	if c.CourseTitle != "" && c.CourseCategory != "" && c.InstructorName != "" {
		return
	}

	course, err := s.courseRepo.FindByID(courseID)
	if err != nil {
		if c.CourseTitle == "" {
			c.CourseTitle = fallbackCourseTitle
		}
		if c.CourseCategory == "" {
			c.CourseCategory = fallbackCategory
		}
		if c.InstructorName == "" {
			c.InstructorName = fallbackInstructor
		}
		return
	}

	if c.CourseTitle == "" {
		c.CourseTitle = course.Title
	}
	if c.CourseCategory == "" {
		c.CourseCategory = course.Category
	}
	if c.InstructorName == "" && course.Instructor != nil {
		c.InstructorName = instructorDisplayName(course.Instructor)
	}
	if c.InstructorName == "" {
		c.InstructorName = fallbackInstructor
	}
}

func (s *CertificateService) GetByID(id uint) (*model.Certificate, error) {
	certificate, err := s.certificateRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCertificateNotFound
		}
		return nil, err
	}
	return certificate, nil
}

func (s *CertificateService) GetByCode(code string) (*model.Certificate, error) {
	certificate, err := s.certificateRepo.FindByCode(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCertificateNotFound
		}
		return nil, err
	}
	return certificate, nil
}

func (s *CertificateService) GetByEnrollment(enrollmentID uint) (*model.Certificate, error) {
	certificate, err := s.certificateRepo.FindByEnrollmentID(enrollmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCertificateNotFound
		}
		return nil, err
	}
	return certificate, nil
}

func (s *CertificateService) StudentCertificates(studentID uint) ([]model.Certificate, error) {
	return s.certificateRepo.FindByStudentID(studentID)
}

func (s *CertificateService) ExistsForEnrollment(enrollmentID uint) (bool, error) {
	return s.certificateRepo.ExistsByEnrollmentID(enrollmentID)
}

func (s *CertificateService) DeleteCertificate(id uint) error {
	return s.certificateRepo.Delete(id)
}
