package controller

import (
	"online_course_backend/internal/service"
	"online_course_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type TestResultController struct {
	testResultService *service.TestResultService
}

func NewTestResultController(testResultService *service.TestResultService) *TestResultController {
	return &TestResultController{testResultService: testResultService}
}

// SaveTestResult godoc
// @Summary Save a standalone test result
// @Description A second submission for the same enrollment replaces the first.
// @Tags test-results
// @Accept json
// @Produce json
// @Param body body service.TestResultInput true "submission payload"
// @Success 200 {object} util.Response{data=model.TestResult}
// @Router /test-results/save [post]
func (c *TestResultController) SaveTestResult(ctx *gin.Context) {
	var req service.TestResultInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.testResultService.SaveTestResult(req)
	if err != nil {
		util.DomainError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// GetByEnrollment godoc
// @Summary Get the test result for an enrollment
// @Tags test-results
// @Produce json
// @Param enrollmentId path int true "enrollment id"
// @Success 200 {object} util.Response{data=model.TestResult}
// @Router /test-results/enrollment/{enrollmentId} [get]
func (c *TestResultController) GetByEnrollment(ctx *gin.Context) {
	result, err := c.testResultService.GetByEnrollment(util.MustParseUint(ctx.Param("enrollmentId")))
	if err != nil {
		util.DomainError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// GetByStudent godoc
// @Summary List a student's test results
// @Tags test-results
// @Produce json
// @Param studentId path int true "student id"
// @Success 200 {object} util.Response{data=[]model.TestResult}
// @Router /test-results/student/{studentId} [get]
func (c *TestResultController) GetByStudent(ctx *gin.Context) {
	results, err := c.testResultService.GetByStudent(util.MustParseUint(ctx.Param("studentId")))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, results)
}

// GetByCourseAndStudent godoc
// @Summary Get a student's test result for a course
// @Tags test-results
// @Produce json
// @Param courseId path int true "course id"
// @Param studentId path int true "student id"
// @Success 200 {object} util.Response{data=model.TestResult}
// @Router /test-results/course/{courseId}/student/{studentId} [get]
func (c *TestResultController) GetByCourseAndStudent(ctx *gin.Context) {
	result, err := c.testResultService.GetByCourseAndStudent(
		util.MustParseUint(ctx.Param("courseId")), util.MustParseUint(ctx.Param("studentId")))
	if err != nil {
		util.DomainError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// HasPassed godoc
// @Summary Check whether a student has passed a course's test
// @Tags test-results
// @Produce json
// @Param courseId path int true "course id"
// @Param studentId path int true "student id"
// @Success 200 {object} util.Response{data=bool}
// @Router /test-results/check-passed/{courseId}/{studentId} [get]
func (c *TestResultController) HasPassed(ctx *gin.Context) {
	passed, err := c.testResultService.HasPassedCourse(
		util.MustParseUint(ctx.Param("courseId")), util.MustParseUint(ctx.Param("studentId")))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, passed)
}

// DeleteTestResult godoc
// @Summary Delete a test result
// @Tags test-results
// @Produce json
// @Param id path int true "test result id"
// @Success 200 {object} util.Response
// @Router /test-results/{id} [delete]
func (c *TestResultController) DeleteTestResult(ctx *gin.Context) {
	if err := c.testResultService.DeleteTestResult(util.MustParseUint(ctx.Param("id"))); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
