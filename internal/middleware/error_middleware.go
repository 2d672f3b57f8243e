package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emreo/coursereg/internal/app/models/dto"
	"github.com/emreo/coursereg/internal/pkg/apperrors"
	"github.com/emreo/coursereg/internal/pkg/logger"
)

// HandleAPIError maps service errors to HTTP responses. Business-rule
// failures surface as 4xx with their canonical message; anything unknown
// becomes a generic 500 so internals never leak to the caller.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrCourseNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Course not found"))
	case errors.Is(err, apperrors.ErrRegistrationNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Registration not found"))
	case errors.Is(err, apperrors.ErrStudentNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Student not found"))

	case errors.Is(err, apperrors.ErrCapacityExceeded):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Course is full"))
	case errors.Is(err, apperrors.ErrDuplicateRegistration):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Already registered for this course"))
	case errors.Is(err, apperrors.ErrScheduleConflict):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Schedule conflict detected"))

	case errors.Is(err, apperrors.ErrCourseCodeExists):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Course ID already exists"))
	case errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))

	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Invalid credentials"))
	case errors.Is(err, apperrors.ErrTokenExpired), errors.Is(err, apperrors.ErrTokenInvalid):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Invalid or expired token"))

	case errors.Is(err, apperrors.ErrInconsistency):
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Possible partial write")
		c.JSON(http.StatusInternalServerError,
			dto.NewErrorResponse("Operation outcome unknown, state may need reconciliation"))

	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Server error"))
	}
}
