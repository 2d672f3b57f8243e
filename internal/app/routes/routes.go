package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/emreo/coursereg/internal/app/controllers"
	"github.com/emreo/coursereg/internal/app/models/dto"
	"github.com/emreo/coursereg/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	courseController *controllers.CourseController,
	registrationController *controllers.RegistrationController,
	authMiddleware *middleware.AuthMiddleware,
	env string,
) {
	api := router.Group("/api")

	// Health check endpoint (public)
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.HealthResponse{
			Status:    "OK",
			Timestamp: time.Now().UTC(),
			Env:       env,
		})
	})

	// --- Public auth routes ---
	auth := api.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// --- Catalog routes (public) ---
	courses := api.Group("/courses")
	{
		courses.GET("", courseController.GetCourses)
		courses.GET("/meta/departments", courseController.GetDepartments)
		courses.GET("/:id", courseController.GetCourseByID)

		// Demo-grade maintenance endpoints, no role system in front of them
		courses.POST("", courseController.CreateCourse)
		courses.PUT("/:id", courseController.UpdateCourse)
	}

	// --- Registration routes (auth required) ---
	registrations := api.Group("/registrations")
	registrations.Use(authMiddleware.JWTAuth())
	{
		registrations.GET("/my-courses", registrationController.GetMyCourses)
		registrations.POST("/register", registrationController.Register)
		registrations.DELETE("/drop/:courseId", registrationController.Drop)
	}

	// Prometheus exposition (outside the /api contract)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
