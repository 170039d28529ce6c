package controller

import (
	"online_course_backend/internal/service"
	"online_course_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type EnrollmentController struct {
	enrollmentService *service.EnrollmentService
}

func NewEnrollmentController(enrollmentService *service.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{enrollmentService: enrollmentService}
}

type EnrollRequest struct {
	StudentID uint `json:"studentId" binding:"required"`
	CourseID  uint `json:"courseId" binding:"required"`
}

type RateRequest struct {
	Rating   int    `json:"rating" binding:"required"`
	Feedback string `json:"feedback"`
}

type TestResultRequest struct {
	TestScore      int `json:"testScore"`
	TotalQuestions int `json:"totalQuestions"`
}

// Enroll godoc
// @Summary Enroll a student in a course
// @Description Enrolling twice returns the existing enrollment unchanged.
// @Tags enrollments
// @Accept json
// @Produce json
// @Param body body EnrollRequest true "student and course ids"
// @Success 200 {object} util.Response{data=model.Enrollment}
// @Router /enrollments/enroll [post]
func (c *EnrollmentController) Enroll(ctx *gin.Context) {
	var req EnrollRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	enrollment, err := c.enrollmentService.Enroll(req.StudentID, req.CourseID)
	if err != nil {
		util.DomainError(ctx, err)
		return
	}
	util.Success(ctx, enrollment)
}

// Unenroll godoc
// @Summary Remove an enrollment
// @Description Deleting an absent id succeeds silently.
// @Tags enrollments
// @Produce json
// @Param enrollmentId path int true "enrollment id"
// @Success 200 {object} util.Response
// @Router /enrollments/{enrollmentId} [delete]
func (c *EnrollmentController) Unenroll(ctx *gin.Context) {
	if err := c.enrollmentService.Unenroll(util.MustParseUint(ctx.Param("enrollmentId"))); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// StudentEnrollments godoc
// @Summary List a student's enrollments with course details
// @Tags enrollments
// @Produce json
// @Param studentId path int true "student id"
// @Success 200 {object} util.Response{data=[]model.EnrollmentView}
// @Router /enrollments/student/{studentId} [get]
func (c *EnrollmentController) StudentEnrollments(ctx *gin.Context) {
	views, err := c.enrollmentService.StudentEnrollments(util.MustParseUint(ctx.Param("studentId")))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, views)
}

// CourseEnrollments godoc
// @Summary List a course's enrollments
// @Tags enrollments
// @Produce json
// @Param courseId path int true "course id"
// @Success 200 {object} util.Response{data=[]model.EnrollmentView}
// @Router /enrollments/course/{courseId} [get]
func (c *EnrollmentController) CourseEnrollments(ctx *gin.Context) {
	views, err := c.enrollmentService.CourseEnrollments(util.MustParseUint(ctx.Param("courseId")))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, views)
}

// Complete godoc
// @Summary Apply a completion request to an enrollment
// @Description A failed test (passed=false) can never mark the course completed.
// @Tags enrollments
// @Accept json
// @Produce json
// @Param enrollmentId path int true "enrollment id"
// @Param body body service.CompletionInput true "completion fields"
// @Success 200 {object} util.Response{data=model.Enrollment}
// @Router /enrollments/{enrollmentId}/complete [put]
func (c *EnrollmentController) Complete(ctx *gin.Context) {
	var req service.CompletionInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	enrollment, err := c.enrollmentService.CompleteCourse(util.MustParseUint(ctx.Param("enrollmentId")), req)
	if err != nil {
		util.DomainError(ctx, err)
		return
	}
	util.Success(ctx, enrollment)
}

// Rate godoc
// @Summary Rate a course through its enrollment
// @Tags enrollments
// @Accept json
// @Produce json
// @Param enrollmentId path int true "enrollment id"
// @Param body body RateRequest true "rating and feedback"
// @Success 200 {object} util.Response{data=model.Enrollment}
// @Router /enrollments/{enrollmentId}/rate [put]
func (c *EnrollmentController) Rate(ctx *gin.Context) {
	var req RateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	enrollment, err := c.enrollmentService.RateCourse(
		util.MustParseUint(ctx.Param("enrollmentId")), req.Rating, req.Feedback)
	if err != nil {
		util.DomainError(ctx, err)
		return
	}
	util.Success(ctx, enrollment)
}

// RecordTestResult godoc
// @Summary Record a test submission on an enrollment
// @Description Recording a result never completes the course by itself.
// @Tags enrollments
// @Accept json
// @Produce json
// @Param enrollmentId path int true "enrollment id"
// @Param body body TestResultRequest true "score and question count"
// @Success 200 {object} util.Response{data=model.Enrollment}
// @Router /enrollments/{enrollmentId}/test-result [post]
func (c *EnrollmentController) RecordTestResult(ctx *gin.Context) {
	var req TestResultRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	enrollment, err := c.enrollmentService.RecordTestResult(
		util.MustParseUint(ctx.Param("enrollmentId")), req.TestScore, req.TotalQuestions)
	if err != nil {
		util.DomainError(ctx, err)
		return
	}
	util.Success(ctx, enrollment)
}
