package controller

import (
	"online_course_backend/internal/service"
	"online_course_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CourseController struct {
	courseService *service.CourseService
}

func NewCourseController(courseService *service.CourseService) *CourseController {
	return &CourseController{courseService: courseService}
}

// ListCourses godoc
// @Summary List all courses with rating and enrollment figures
// @Tags courses
// @Produce json
// @Success 200 {object} util.Response{data=[]model.CourseView}
// @Router /courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	views, err := c.courseService.ListCourses(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, views)
}

// GetCourse godoc
// @Summary Get one course view
// @Tags courses
// @Produce json
// @Param id path int true "course id"
// @Success 200 {object} util.Response{data=model.CourseView}
// @Router /courses/{id} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	view, err := c.courseService.GetCourseView(ctx.Request.Context(), util.MustParseUint(ctx.Param("id")))
	if err != nil {
		util.DomainError(ctx, err)
		return
	}
	util.Success(ctx, view)
}

// CreateCourse godoc
// @Summary Create a course owned by an instructor
// @Tags courses
// @Accept json
// @Produce json
// @Param body body service.CourseInput true "course payload"
// @Success 201 {object} util.Response{data=model.Course}
// @Router /courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req service.CourseInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	course, err := c.courseService.CreateCourse(req)
	if err != nil {
		util.DomainError(ctx, err)
		return
	}
	util.Created(ctx, course)
}

// UpdateCourse godoc
// @Summary Edit course fields (the owning instructor never changes)
// @Tags courses
// @Accept json
// @Produce json
// @Param id path int true "course id"
// @Param body body service.CourseInput true "fields to update"
// @Success 200 {object} util.Response{data=model.Course}
// @Router /courses/{id} [put]
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	var req service.CourseInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	course, err := c.courseService.UpdateCourse(util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		util.DomainError(ctx, err)
		return
	}
	util.Success(ctx, course)
}

// DeleteCourse godoc
// @Summary Delete a course and its enrollments
// @Tags courses
// @Produce json
// @Param id path int true "course id"
// @Success 200 {object} util.Response
// @Router /courses/{id} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	if err := c.courseService.DeleteCourse(util.MustParseUint(ctx.Param("id"))); err != nil {
		util.DomainError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// ListByInstructor godoc
// @Summary List an instructor's courses
// @Tags courses
// @Produce json
// @Param instructorId path int true "instructor id"
// @Success 200 {object} util.Response{data=[]model.CourseView}
// @Router /courses/instructor/{instructorId} [get]
func (c *CourseController) ListByInstructor(ctx *gin.Context) {
	views, err := c.courseService.ListCoursesByInstructor(util.MustParseUint(ctx.Param("instructorId")))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, views)
}

// ListByCategory godoc
// @Summary List courses in a category
// @Tags courses
// @Produce json
// @Param category path string true "category"
// @Success 200 {object} util.Response{data=[]model.CourseView}
// @Router /courses/category/{category} [get]
func (c *CourseController) ListByCategory(ctx *gin.Context) {
	views, err := c.courseService.ListCoursesByCategory(ctx.Param("category"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, views)
}

// ListByBatch godoc
// @Summary List courses in a batch
// @Tags courses
// @Produce json
// @Param batch path string true "batch label"
// @Success 200 {object} util.Response{data=[]model.CourseView}
// @Router /courses/batch/{batch} [get]
func (c *CourseController) ListByBatch(ctx *gin.Context) {
	views, err := c.courseService.ListCoursesByBatch(ctx.Param("batch"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, views)
}
