package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/emreo/coursereg/internal/app/models"
	"github.com/emreo/coursereg/internal/pkg/apperrors"
	"github.com/emreo/coursereg/internal/pkg/schedule"
)

// CourseService handles catalog queries and course maintenance
type CourseService struct {
	courseRepo CourseStore
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo CourseStore) *CourseService {
	return &CourseService{courseRepo: courseRepo}
}

// ListCourses returns active courses matching the filter, ordered by course
// code. The filter is validated before it reaches the storage layer.
func (s *CourseService) ListCourses(ctx context.Context, filter models.CourseFilter) ([]*models.Course, error) {
	if filter.Semester != "" && !filter.Semester.IsValid() {
		return nil, fmt.Errorf("%w: unknown semester %q", apperrors.ErrValidationFailed, filter.Semester)
	}
	if filter.Year < 0 {
		return nil, fmt.Errorf("%w: year cannot be negative", apperrors.ErrValidationFailed)
	}

	courses, err := s.courseRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing courses: %w", err)
	}
	if courses == nil {
		courses = []*models.Course{}
	}
	return courses, nil
}

// GetCourseByID retrieves a single course
func (s *CourseService) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid course ID", apperrors.ErrValidationFailed)
	}
	return s.courseRepo.GetByID(ctx, id)
}

// GetDepartments returns the sorted distinct departments of active courses
func (s *CourseService) GetDepartments(ctx context.Context) ([]string, error) {
	return s.courseRepo.GetDepartments(ctx)
}

// CreateCourse validates and creates a new catalog entry
func (s *CourseService) CreateCourse(ctx context.Context, course *models.Course) error {
	if err := validateCourse(course); err != nil {
		return err
	}
	return s.courseRepo.Create(ctx, course)
}

// UpdateCourse validates and updates an existing catalog entry
func (s *CourseService) UpdateCourse(ctx context.Context, course *models.Course) error {
	if course.ID <= 0 {
		return fmt.Errorf("%w: invalid course ID", apperrors.ErrValidationFailed)
	}
	if err := validateCourse(course); err != nil {
		return err
	}
	return s.courseRepo.Update(ctx, course)
}

// validateCourse checks the catalog invariants before any write
func validateCourse(course *models.Course) error {
	if course == nil {
		return fmt.Errorf("%w: course is nil", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(course.Code) == "" {
		return fmt.Errorf("%w: course ID cannot be empty", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(course.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}
	if course.Credits < 1 || course.Credits > 6 {
		return fmt.Errorf("%w: credits must be between 1 and 6", apperrors.ErrValidationFailed)
	}
	if course.Capacity < 1 {
		return fmt.Errorf("%w: capacity must be at least 1", apperrors.ErrValidationFailed)
	}
	if !course.Semester.IsValid() {
		return fmt.Errorf("%w: unknown semester %q", apperrors.ErrValidationFailed, course.Semester)
	}
	if len(course.Schedule.Days) == 0 {
		return fmt.Errorf("%w: schedule needs at least one day", apperrors.ErrValidationFailed)
	}
	for _, day := range course.Schedule.Days {
		if !day.IsValid() {
			return fmt.Errorf("%w: unknown weekday %q", apperrors.ErrValidationFailed, day)
		}
	}

	start, err := schedule.ParseTimeOfDay(course.Schedule.StartTime)
	if err != nil {
		return fmt.Errorf("%w: bad start time: %v", apperrors.ErrValidationFailed, err)
	}
	end, err := schedule.ParseTimeOfDay(course.Schedule.EndTime)
	if err != nil {
		return fmt.Errorf("%w: bad end time: %v", apperrors.ErrValidationFailed, err)
	}
	if start >= end {
		return fmt.Errorf("%w: start time must be before end time", apperrors.ErrValidationFailed)
	}

	return nil
}
