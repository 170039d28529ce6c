package service

import (
	"errors"
	"online_course_backend/internal/model"
	"online_course_backend/internal/repository"
	"online_course_backend/internal/util"

	"gorm.io/gorm"
)

type TestResultInput struct {
	EnrollmentID   uint `json:"enrollmentId"`
	CourseID       uint `json:"courseId"`
	StudentID      uint `json:"studentId"`
	TestScore      int  `json:"testScore"`
	TotalQuestions int  `json:"totalQuestions"`
}

// TestResultService tracks test submissions as standalone records,
// independent of the test fields carried on Enrollment. One row per
// enrollment; a second submission updates the existing row.
type TestResultService struct {
	testResultRepo *repository.TestResultRepository
}

func NewTestResultService(testResultRepo *repository.TestResultRepository) *TestResultService {
	return &TestResultService{testResultRepo: testResultRepo}
}

func (s *TestResultService) SaveTestResult(in TestResultInput) (*model.TestResult, error) {
	if in.TotalQuestions <= 0 {
		return nil, util.ErrInvalidTotalQuestions
	}

	percentage := float64(in.TestScore) * 100 / float64(in.TotalQuestions)
	passed := percentage >= passThreshold

	result, err := s.testResultRepo.FindByEnrollmentID(in.EnrollmentID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		result = &model.TestResult{
			EnrollmentID: in.EnrollmentID,
			CourseID:     in.CourseID,
			StudentID:    in.StudentID,
		}
	}

	result.TestScore = in.TestScore
	result.TotalQuestions = in.TotalQuestions
	result.Percentage = percentage
	result.Passed = passed
	result.Completed = passed

	if err := s.testResultRepo.Save(result); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *TestResultService) GetByEnrollment(enrollmentID uint) (*model.TestResult, error) {
	result, err := s.testResultRepo.FindByEnrollmentID(enrollmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrTestResultNotFound
		}
		return nil, err
	}
	return result, nil
}

func (s *TestResultService) GetByStudent(studentID uint) ([]model.TestResult, error) {
	return s.testResultRepo.FindByStudentID(studentID)
}

func (s *TestResultService) GetByCourseAndStudent(courseID, studentID uint) (*model.TestResult, error) {
	result, err := s.testResultRepo.FindByCourseAndStudent(courseID, studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrTestResultNotFound
		}
		return nil, err
	}
	return result, nil
}

// HasPassedCourse reports whether the student has a passing test result
// for the course. Absent results count as not passed.
func (s *TestResultService) HasPassedCourse(courseID, studentID uint) (bool, error) {
	result, err := s.testResultRepo.FindByCourseAndStudent(courseID, studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return result.Passed, nil
}

func (s *TestResultService) DeleteTestResult(id uint) error {
	return s.testResultRepo.Delete(id)
}
