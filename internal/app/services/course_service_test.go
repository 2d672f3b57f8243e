package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emreo/coursereg/internal/app/models"
	"github.com/emreo/coursereg/internal/pkg/apperrors"
)

func validTestCourse() *models.Course {
	return &models.Course{
		Code:     "CS101",
		Name:     "Introduction to Computer Science",
		Credits:  3,
		Capacity: 30,
		Schedule: models.Schedule{
			Days:      []models.Weekday{models.Monday, models.Wednesday},
			StartTime: "9:00 AM",
			EndTime:   "10:00 AM",
		},
		Department: "Computer Science",
		Semester:   models.SemesterSpring,
		Year:       2025,
		IsActive:   true,
	}
}

func TestCreateCourse(t *testing.T) {
	store := newFakeCourseStore()
	svc := NewCourseService(store)

	course := validTestCourse()
	require.NoError(t, svc.CreateCourse(context.Background(), course))
	assert.NotZero(t, course.ID)

	stored, err := svc.GetCourseByID(context.Background(), course.ID)
	require.NoError(t, err)
	assert.Equal(t, "CS101", stored.Code)
}

func TestCreateCourseDuplicateCode(t *testing.T) {
	store := newFakeCourseStore()
	svc := NewCourseService(store)

	require.NoError(t, svc.CreateCourse(context.Background(), validTestCourse()))
	err := svc.CreateCourse(context.Background(), validTestCourse())
	assert.ErrorIs(t, err, apperrors.ErrCourseCodeExists)
}

func TestCreateCourseValidation(t *testing.T) {
	store := newFakeCourseStore()
	svc := NewCourseService(store)

	tests := []struct {
		name   string
		mutate func(c *models.Course)
	}{
		{"empty code", func(c *models.Course) { c.Code = "  " }},
		{"empty name", func(c *models.Course) { c.Name = "" }},
		{"zero credits", func(c *models.Course) { c.Credits = 0 }},
		{"too many credits", func(c *models.Course) { c.Credits = 7 }},
		{"zero capacity", func(c *models.Course) { c.Capacity = 0 }},
		{"unknown semester", func(c *models.Course) { c.Semester = "Winter" }},
		{"no days", func(c *models.Course) { c.Schedule.Days = nil }},
		{"unknown day", func(c *models.Course) { c.Schedule.Days = []models.Weekday{"Sunday"} }},
		{"bad start time", func(c *models.Course) { c.Schedule.StartTime = "25:00" }},
		{"bad end time", func(c *models.Course) { c.Schedule.EndTime = "noonish" }},
		{"start after end", func(c *models.Course) { c.Schedule.StartTime = "11:00 AM"; c.Schedule.EndTime = "10:00 AM" }},
		{"start equals end", func(c *models.Course) { c.Schedule.StartTime = "10:00 AM"; c.Schedule.EndTime = "10:00 AM" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			course := validTestCourse()
			tt.mutate(course)
			err := svc.CreateCourse(context.Background(), course)
			assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		})
	}
}

func TestListCoursesInvalidFilter(t *testing.T) {
	svc := NewCourseService(newFakeCourseStore())

	_, err := svc.ListCourses(context.Background(), models.CourseFilter{Semester: "Winter"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.ListCourses(context.Background(), models.CourseFilter{Year: -1})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestListCoursesEmpty(t *testing.T) {
	svc := NewCourseService(newFakeCourseStore())

	courses, err := svc.ListCourses(context.Background(), models.CourseFilter{})
	require.NoError(t, err)
	assert.NotNil(t, courses)
	assert.Empty(t, courses)
}

func TestListCoursesExcludesInactive(t *testing.T) {
	store := newFakeCourseStore()
	svc := NewCourseService(store)

	active := validTestCourse()
	require.NoError(t, svc.CreateCourse(context.Background(), active))

	retired := validTestCourse()
	retired.Code = "CS100"
	retired.IsActive = false
	require.NoError(t, svc.CreateCourse(context.Background(), retired))

	courses, err := svc.ListCourses(context.Background(), models.CourseFilter{})
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, "CS101", courses[0].Code)
}

func TestGetCourseByIDInvalid(t *testing.T) {
	svc := NewCourseService(newFakeCourseStore())

	_, err := svc.GetCourseByID(context.Background(), 0)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.GetCourseByID(context.Background(), 99)
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}

func TestUpdateCourse(t *testing.T) {
	store := newFakeCourseStore()
	svc := NewCourseService(store)

	course := validTestCourse()
	require.NoError(t, svc.CreateCourse(context.Background(), course))

	course.Capacity = 50
	require.NoError(t, svc.UpdateCourse(context.Background(), course))

	stored, err := svc.GetCourseByID(context.Background(), course.ID)
	require.NoError(t, err)
	assert.Equal(t, 50, stored.Capacity)
}

func TestUpdateCourseInvalidID(t *testing.T) {
	svc := NewCourseService(newFakeCourseStore())

	course := validTestCourse()
	err := svc.UpdateCourse(context.Background(), course)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}
