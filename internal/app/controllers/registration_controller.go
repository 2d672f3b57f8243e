package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/emreo/coursereg/internal/app/models/dto"
	"github.com/emreo/coursereg/internal/app/services"
	"github.com/emreo/coursereg/internal/middleware"
)

// RegistrationController handles registration endpoints. All of them
// require the auth middleware to have resolved a student first.
type RegistrationController struct {
	registrationService *services.RegistrationService
}

// NewRegistrationController creates a new RegistrationController
func NewRegistrationController(registrationService *services.RegistrationService) *RegistrationController {
	return &RegistrationController{registrationService: registrationService}
}

// GetMyCourses handles GET /api/registrations/my-courses
func (c *RegistrationController) GetMyCourses(ctx *gin.Context) {
	student, ok := middleware.StudentFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Access token required"))
		return
	}

	registrations, err := c.registrationService.ListMyCourses(ctx.Request.Context(), student.ID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, registrations)
}

// Register handles POST /api/registrations/register
func (c *RegistrationController) Register(ctx *gin.Context) {
	student, ok := middleware.StudentFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Access token required"))
		return
	}

	var req dto.RegisterCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.HandleValidationError(err))
		return
	}

	registration, err := c.registrationService.Register(ctx.Request.Context(), student.ID, req.CourseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.RegistrationResponse{
		Message:      "Successfully registered for course",
		Registration: registration,
	})
}

// Drop handles DELETE /api/registrations/drop/:courseId
func (c *RegistrationController) Drop(ctx *gin.Context) {
	student, ok := middleware.StudentFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Access token required"))
		return
	}

	courseID, err := strconv.ParseInt(ctx.Param("courseId"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Course ID must be a valid number"))
		return
	}

	if err := c.registrationService.Drop(ctx.Request.Context(), student.ID, courseID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Successfully dropped course"})
}
