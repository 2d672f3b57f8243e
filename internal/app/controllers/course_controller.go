package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/emreo/coursereg/internal/app/models"
	"github.com/emreo/coursereg/internal/app/models/dto"
	"github.com/emreo/coursereg/internal/app/services"
	"github.com/emreo/coursereg/internal/middleware"
)

// CourseController handles catalog endpoints
type CourseController struct {
	courseService *services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService *services.CourseService) *CourseController {
	return &CourseController{courseService: courseService}
}

// GetCourses handles GET /api/courses with the recognized filters:
// semester, year, department and a case-insensitive search.
func (c *CourseController) GetCourses(ctx *gin.Context) {
	filter := models.CourseFilter{
		Semester:   models.Semester(ctx.Query("semester")),
		Department: ctx.Query("department"),
		Search:     ctx.Query("search"),
	}

	if yearStr := ctx.Query("year"); yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("year must be a number"))
			return
		}
		filter.Year = year
	}

	courses, err := c.courseService.ListCourses(ctx.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, courses)
}

// GetCourseByID handles GET /api/courses/:id
func (c *CourseController) GetCourseByID(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Course ID must be a valid number"))
		return
	}

	course, err := c.courseService.GetCourseByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, course)
}

// GetDepartments handles GET /api/courses/meta/departments
func (c *CourseController) GetDepartments(ctx *gin.Context) {
	departments, err := c.courseService.GetDepartments(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, departments)
}

// CreateCourse handles POST /api/courses
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var course models.Course
	if err := ctx.ShouldBindJSON(&course); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.HandleValidationError(err))
		return
	}
	course.IsActive = true

	if err := c.courseService.CreateCourse(ctx.Request.Context(), &course); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CourseResponse{
		Message: "Course created successfully",
		Course:  &course,
	})
}

// UpdateCourse handles PUT /api/courses/:id
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Course ID must be a valid number"))
		return
	}

	var course models.Course
	if err := ctx.ShouldBindJSON(&course); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.HandleValidationError(err))
		return
	}
	course.ID = id

	if err := c.courseService.UpdateCourse(ctx.Request.Context(), &course); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CourseResponse{
		Message: "Course updated successfully",
		Course:  &course,
	})
}
