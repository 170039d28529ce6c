package controller

import (
	"online_course_backend/internal/service"
	"online_course_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type RatingController struct {
	ratingService *service.RatingService
}

func NewRatingController(ratingService *service.RatingService) *RatingController {
	return &RatingController{ratingService: ratingService}
}

// AddRating godoc
// @Summary Add a rating for a course
// @Description The student must be enrolled and may rate each course once.
// @Tags ratings
// @Accept json
// @Produce json
// @Param body body service.RatingInput true "rating payload"
// @Success 201 {object} util.Response{data=model.Rating}
// @Router /ratings [post]
func (c *RatingController) AddRating(ctx *gin.Context) {
	var req service.RatingInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	rating, err := c.ratingService.AddRating(req)
	if err != nil {
		util.DomainError(ctx, err)
		return
	}
	util.Created(ctx, rating)
}

// UpdateRating godoc
// @Summary Edit a rating's stars or comment
// @Tags ratings
// @Accept json
// @Produce json
// @Param id path int true "rating id"
// @Param body body service.RatingInput true "fields to update"
// @Success 200 {object} util.Response{data=model.Rating}
// @Router /ratings/{id} [put]
func (c *RatingController) UpdateRating(ctx *gin.Context) {
	var req service.RatingInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	rating, err := c.ratingService.UpdateRating(util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		util.DomainError(ctx, err)
		return
	}
	util.Success(ctx, rating)
}

// DeleteRating godoc
// @Summary Delete a rating
// @Description Deleting an absent id succeeds silently.
// @Tags ratings
// @Produce json
// @Param id path int true "rating id"
// @Success 200 {object} util.Response
// @Router /ratings/{id} [delete]
func (c *RatingController) DeleteRating(ctx *gin.Context) {
	if err := c.ratingService.DeleteRating(util.MustParseUint(ctx.Param("id"))); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// RatingsByCourse godoc
// @Summary List a course's ratings
// @Tags ratings
// @Produce json
// @Param courseId path int true "course id"
// @Success 200 {object} util.Response{data=[]model.Rating}
// @Router /ratings/course/{courseId} [get]
func (c *RatingController) RatingsByCourse(ctx *gin.Context) {
	ratings, err := c.ratingService.RatingsByCourse(util.MustParseUint(ctx.Param("courseId")))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, ratings)
}

// RatingsByStudent godoc
// @Summary List a student's ratings
// @Tags ratings
// @Produce json
// @Param studentId path int true "student id"
// @Success 200 {object} util.Response{data=[]model.Rating}
// @Router /ratings/student/{studentId} [get]
func (c *RatingController) RatingsByStudent(ctx *gin.Context) {
	ratings, err := c.ratingService.RatingsByStudent(util.MustParseUint(ctx.Param("studentId")))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, ratings)
}

// RatingForStudentAndCourse godoc
// @Summary Get a student's rating of a course
// @Tags ratings
// @Produce json
// @Param studentId path int true "student id"
// @Param courseId path int true "course id"
// @Success 200 {object} util.Response{data=model.Rating}
// @Router /ratings/student/{studentId}/course/{courseId} [get]
func (c *RatingController) RatingForStudentAndCourse(ctx *gin.Context) {
	rating, err := c.ratingService.RatingForStudentAndCourse(
		util.MustParseUint(ctx.Param("studentId")), util.MustParseUint(ctx.Param("courseId")))
	if err != nil {
		util.DomainError(ctx, err)
		return
	}
	util.Success(ctx, rating)
}
