package app

import (
	"online_course_backend/docs"

	"online_course_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)

		auth := api.Group("/auth")
		{
			auth.POST("/signup", c.auth.Signup)
			auth.POST("/login", c.auth.Login)
		}

		users := api.Group("/users")
		{
			users.GET("", c.user.GetAllUsers)
			users.GET("/:id", c.user.GetUserByID)
			users.PUT("/:id", c.user.UpdateProfile)
			users.PATCH("/:id/avatar", c.user.UpdateAvatar)
			users.DELETE("/:id", c.user.DeleteUser)
			users.GET("/email/:email", c.user.GetUserByEmail)
			users.GET("/role/:role", c.user.GetUsersByRole)
			users.GET("/check-email/:email", c.user.CheckEmailExists)
			users.POST("/:id/change-password", c.user.ChangePassword)
		}

		courses := api.Group("/courses")
		{
			courses.GET("", c.course.ListCourses)
			courses.POST("", c.course.CreateCourse)
			courses.GET("/:id", c.course.GetCourse)
			courses.PUT("/:id", c.course.UpdateCourse)
			courses.DELETE("/:id", c.course.DeleteCourse)
			courses.GET("/instructor/:instructorId", c.course.ListByInstructor)
			courses.GET("/category/:category", c.course.ListByCategory)
			courses.GET("/batch/:batch", c.course.ListByBatch)
		}

		enrollments := api.Group("/enrollments")
		{
			enrollments.POST("/enroll", c.enrollment.Enroll)
			enrollments.DELETE("/:enrollmentId", c.enrollment.Unenroll)
			enrollments.GET("/student/:studentId", c.enrollment.StudentEnrollments)
			enrollments.GET("/course/:courseId", c.enrollment.CourseEnrollments)
			enrollments.PUT("/:enrollmentId/complete", c.enrollment.Complete)
			enrollments.PUT("/:enrollmentId/rate", c.enrollment.Rate)
			enrollments.POST("/:enrollmentId/test-result", c.enrollment.RecordTestResult)
		}

		ratings := api.Group("/ratings")
		{
			ratings.POST("", c.rating.AddRating)
			ratings.PUT("/:id", c.rating.UpdateRating)
			ratings.DELETE("/:id", c.rating.DeleteRating)
			ratings.GET("/course/:courseId", c.rating.RatingsByCourse)
			ratings.GET("/student/:studentId", c.rating.RatingsByStudent)
			ratings.GET("/student/:studentId/course/:courseId", c.rating.RatingForStudentAndCourse)
		}

		testResults := api.Group("/test-results")
		{
			testResults.POST("/save", c.testResult.SaveTestResult)
			testResults.DELETE("/:id", c.testResult.DeleteTestResult)
			testResults.GET("/enrollment/:enrollmentId", c.testResult.GetByEnrollment)
			testResults.GET("/student/:studentId", c.testResult.GetByStudent)
			testResults.GET("/course/:courseId/student/:studentId", c.testResult.GetByCourseAndStudent)
			testResults.GET("/check-passed/:courseId/:studentId", c.testResult.HasPassed)
		}

		certificates := api.Group("/certificates")
		{
			certificates.POST("/generate", c.certificate.Generate)
			certificates.GET("/:id", c.certificate.GetByID)
			certificates.DELETE("/:id", c.certificate.DeleteCertificate)
			certificates.GET("/code/:code", c.certificate.GetByCode)
			certificates.GET("/enrollment/:enrollmentId", c.certificate.GetByEnrollment)
			certificates.GET("/enrollment/:enrollmentId/exists", c.certificate.ExistsForEnrollment)
			certificates.GET("/student/:studentId", c.certificate.StudentCertificates)
		}
	}
}
