package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emreo/coursereg/internal/app/models"
	"github.com/emreo/coursereg/internal/pkg/apperrors"
)

// In-memory stores backing the service tests. They reproduce the storage
// semantics the services rely on: GetByID returns copies, CreateActive
// re-checks capacity and duplication, drops flip status instead of deleting.

type fakeCourseStore struct {
	courses map[int64]*models.Course
	nextID  int64
}

func newFakeCourseStore() *fakeCourseStore {
	return &fakeCourseStore{courses: make(map[int64]*models.Course), nextID: 1}
}

func (s *fakeCourseStore) Create(_ context.Context, course *models.Course) error {
	for _, c := range s.courses {
		if c.Code == course.Code {
			return apperrors.ErrCourseCodeExists
		}
	}
	course.ID = s.nextID
	s.nextID++
	cp := *course
	s.courses[course.ID] = &cp
	return nil
}

func (s *fakeCourseStore) GetByID(_ context.Context, id int64) (*models.Course, error) {
	course, ok := s.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	cp := *course
	return &cp, nil
}

func (s *fakeCourseStore) List(_ context.Context, filter models.CourseFilter) ([]*models.Course, error) {
	var out []*models.Course
	for _, c := range s.courses {
		if !filter.IncludeInactive && !c.IsActive {
			continue
		}
		if filter.Semester != "" && c.Semester != filter.Semester {
			continue
		}
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (s *fakeCourseStore) GetDepartments(_ context.Context) ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	for _, c := range s.courses {
		if c.IsActive && !seen[c.Department] {
			seen[c.Department] = true
			out = append(out, c.Department)
		}
	}
	return out, nil
}

func (s *fakeCourseStore) Update(_ context.Context, course *models.Course) error {
	if _, ok := s.courses[course.ID]; !ok {
		return apperrors.ErrCourseNotFound
	}
	cp := *course
	s.courses[course.ID] = &cp
	return nil
}

type fakeRegistrationStore struct {
	courses *fakeCourseStore
	regs    []*models.Registration
	nextID  int64
}

func newFakeRegistrationStore(courses *fakeCourseStore) *fakeRegistrationStore {
	return &fakeRegistrationStore{courses: courses, nextID: 1}
}

func (s *fakeRegistrationStore) FindActive(_ context.Context, studentID, courseID int64) (*models.Registration, error) {
	for _, r := range s.regs {
		if r.StudentID == studentID && r.CourseID == courseID && r.Status == models.StatusRegistered {
			cp := *r
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *fakeRegistrationStore) ListActiveByStudent(_ context.Context, studentID int64) ([]*models.Registration, error) {
	var out []*models.Registration
	for _, r := range s.regs {
		if r.StudentID != studentID || r.Status != models.StatusRegistered {
			continue
		}
		cp := *r
		course, err := s.courses.GetByID(context.Background(), r.CourseID)
		if err != nil {
			return nil, err
		}
		cp.Course = course
		out = append(out, &cp)
	}
	return out, nil
}

func (s *fakeRegistrationStore) CreateActive(_ context.Context, reg *models.Registration) error {
	course, ok := s.courses.courses[reg.CourseID]
	if !ok {
		return apperrors.ErrCourseNotFound
	}
	if course.Enrolled >= course.Capacity {
		return apperrors.ErrCapacityExceeded
	}
	for _, r := range s.regs {
		if r.StudentID == reg.StudentID && r.CourseID == reg.CourseID && r.Status == models.StatusRegistered {
			return apperrors.ErrDuplicateRegistration
		}
	}

	reg.ID = s.nextID
	s.nextID++
	reg.Status = models.StatusRegistered
	reg.RegistrationDate = time.Now().UTC()
	course.Enrolled++

	cp := *reg
	s.regs = append(s.regs, &cp)
	return nil
}

func (s *fakeRegistrationStore) DropActive(_ context.Context, studentID, courseID int64) error {
	for _, r := range s.regs {
		if r.StudentID == studentID && r.CourseID == courseID && r.Status == models.StatusRegistered {
			r.Status = models.StatusDropped
			if course, ok := s.courses.courses[courseID]; ok && course.Enrolled > 0 {
				course.Enrolled--
			}
			return nil
		}
	}
	return apperrors.ErrRegistrationNotFound
}

func newTestRegistrationService(t *testing.T) (*RegistrationService, *fakeCourseStore, *fakeRegistrationStore) {
	t.Helper()
	courses := newFakeCourseStore()
	regs := newFakeRegistrationStore(courses)
	svc := NewRegistrationService(regs, courses, nil, zerolog.Nop())
	return svc, courses, regs
}

func seedCourse(t *testing.T, courses *fakeCourseStore, code string, capacity int, days []models.Weekday, start, end string) *models.Course {
	t.Helper()
	course := &models.Course{
		Code:     code,
		Name:     code + " Test Course",
		Credits:  3,
		Capacity: capacity,
		Schedule: models.Schedule{Days: days, StartTime: start, EndTime: end},
		Semester: models.SemesterSpring,
		Year:     2025,
		IsActive: true,
	}
	require.NoError(t, courses.Create(context.Background(), course))
	return course
}

func TestRegisterSuccess(t *testing.T) {
	svc, courses, _ := newTestRegistrationService(t)
	course := seedCourse(t, courses, "CS101", 30, []models.Weekday{models.Monday, models.Wednesday}, "9:00 AM", "10:00 AM")

	reg, err := svc.Register(context.Background(), 1, course.ID)
	require.NoError(t, err)

	assert.Equal(t, int64(1), reg.StudentID)
	assert.Equal(t, course.ID, reg.CourseID)
	assert.Equal(t, models.StatusRegistered, reg.Status)
	assert.Equal(t, models.SemesterSpring, reg.Semester)
	assert.Equal(t, 2025, reg.Year)
	require.NotNil(t, reg.Course)
	assert.Equal(t, 1, reg.Course.Enrolled)

	stored, err := courses.GetByID(context.Background(), course.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.Enrolled)
}

func TestRegisterCourseNotFound(t *testing.T) {
	svc, _, _ := newTestRegistrationService(t)

	reg, err := svc.Register(context.Background(), 1, 42)
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
	assert.Nil(t, reg)
}

func TestRegisterCourseFull(t *testing.T) {
	svc, courses, _ := newTestRegistrationService(t)
	course := seedCourse(t, courses, "CS101", 1, []models.Weekday{models.Monday}, "9:00 AM", "10:00 AM")

	_, err := svc.Register(context.Background(), 1, course.ID)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), 2, course.ID)
	assert.ErrorIs(t, err, apperrors.ErrCapacityExceeded)

	stored, err := courses.GetByID(context.Background(), course.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.Enrolled)
}

func TestRegisterDuplicate(t *testing.T) {
	svc, courses, _ := newTestRegistrationService(t)
	course := seedCourse(t, courses, "CS101", 30, []models.Weekday{models.Monday}, "9:00 AM", "10:00 AM")

	_, err := svc.Register(context.Background(), 1, course.ID)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), 1, course.ID)
	assert.ErrorIs(t, err, apperrors.ErrDuplicateRegistration)

	stored, err := courses.GetByID(context.Background(), course.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.Enrolled)
}

func TestRegisterScheduleConflict(t *testing.T) {
	svc, courses, _ := newTestRegistrationService(t)
	first := seedCourse(t, courses, "CS101", 30, []models.Weekday{models.Monday, models.Wednesday}, "9:00 AM", "10:00 AM")
	// Overlaps CS101 by half an hour on Monday
	second := seedCourse(t, courses, "MATH201", 30, []models.Weekday{models.Monday}, "9:30 AM", "10:30 AM")

	_, err := svc.Register(context.Background(), 1, first.ID)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), 1, second.ID)
	assert.ErrorIs(t, err, apperrors.ErrScheduleConflict)

	stored, err := courses.GetByID(context.Background(), second.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.Enrolled)
}

func TestRegisterConflictAcrossTimeFormats(t *testing.T) {
	svc, courses, _ := newTestRegistrationService(t)
	first := seedCourse(t, courses, "PHYS101", 30, []models.Weekday{models.Monday}, "14:00", "15:30")
	second := seedCourse(t, courses, "CHEM101", 30, []models.Weekday{models.Monday}, "2:30 PM", "4:00 PM")

	_, err := svc.Register(context.Background(), 1, first.ID)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), 1, second.ID)
	assert.ErrorIs(t, err, apperrors.ErrScheduleConflict)
}

func TestRegisterNoConflict(t *testing.T) {
	svc, courses, _ := newTestRegistrationService(t)
	first := seedCourse(t, courses, "CS101", 30, []models.Weekday{models.Monday, models.Wednesday}, "9:00 AM", "10:00 AM")
	// Same days, back to back. The interval is half-open so a course ending
	// at 10:00 does not collide with one starting at 10:00.
	second := seedCourse(t, courses, "MATH201", 30, []models.Weekday{models.Monday, models.Wednesday}, "10:00 AM", "11:00 AM")
	// Same time, different day
	third := seedCourse(t, courses, "ENG101", 30, []models.Weekday{models.Tuesday}, "9:00 AM", "10:00 AM")

	_, err := svc.Register(context.Background(), 1, first.ID)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), 1, second.ID)
	assert.NoError(t, err)

	_, err = svc.Register(context.Background(), 1, third.ID)
	assert.NoError(t, err)
}

func TestDropAndReRegister(t *testing.T) {
	svc, courses, _ := newTestRegistrationService(t)
	course := seedCourse(t, courses, "CS101", 1, []models.Weekday{models.Monday}, "9:00 AM", "10:00 AM")

	_, err := svc.Register(context.Background(), 1, course.ID)
	require.NoError(t, err)

	require.NoError(t, svc.Drop(context.Background(), 1, course.ID))

	stored, err := courses.GetByID(context.Background(), course.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.Enrolled)

	// The seat freed by the drop is available again, even to the same student
	_, err = svc.Register(context.Background(), 1, course.ID)
	assert.NoError(t, err)
}

func TestDropFreesSeatForOtherStudent(t *testing.T) {
	svc, courses, _ := newTestRegistrationService(t)
	course := seedCourse(t, courses, "CS101", 1, []models.Weekday{models.Monday}, "9:00 AM", "10:00 AM")

	_, err := svc.Register(context.Background(), 1, course.ID)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), 2, course.ID)
	require.ErrorIs(t, err, apperrors.ErrCapacityExceeded)

	require.NoError(t, svc.Drop(context.Background(), 1, course.ID))

	_, err = svc.Register(context.Background(), 2, course.ID)
	assert.NoError(t, err)
}

func TestDropWithoutRegistration(t *testing.T) {
	svc, courses, _ := newTestRegistrationService(t)
	course := seedCourse(t, courses, "CS101", 30, []models.Weekday{models.Monday}, "9:00 AM", "10:00 AM")

	err := svc.Drop(context.Background(), 1, course.ID)
	assert.ErrorIs(t, err, apperrors.ErrRegistrationNotFound)
}

func TestDropTwice(t *testing.T) {
	svc, courses, _ := newTestRegistrationService(t)
	course := seedCourse(t, courses, "CS101", 30, []models.Weekday{models.Monday}, "9:00 AM", "10:00 AM")

	_, err := svc.Register(context.Background(), 1, course.ID)
	require.NoError(t, err)

	require.NoError(t, svc.Drop(context.Background(), 1, course.ID))
	err = svc.Drop(context.Background(), 1, course.ID)
	assert.ErrorIs(t, err, apperrors.ErrRegistrationNotFound)
}

func TestListMyCourses(t *testing.T) {
	svc, courses, _ := newTestRegistrationService(t)
	first := seedCourse(t, courses, "CS101", 30, []models.Weekday{models.Monday}, "9:00 AM", "10:00 AM")
	second := seedCourse(t, courses, "ENG101", 30, []models.Weekday{models.Tuesday}, "9:30 AM", "11:00 AM")

	_, err := svc.Register(context.Background(), 1, first.ID)
	require.NoError(t, err)
	_, err = svc.Register(context.Background(), 1, second.ID)
	require.NoError(t, err)

	require.NoError(t, svc.Drop(context.Background(), 1, second.ID))

	regs, err := svc.ListMyCourses(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, regs, 1)
	assert.Equal(t, first.ID, regs[0].CourseID)
	require.NotNil(t, regs[0].Course)
	assert.Equal(t, "CS101", regs[0].Course.Code)
}

func TestListMyCoursesEmpty(t *testing.T) {
	svc, _, _ := newTestRegistrationService(t)

	regs, err := svc.ListMyCourses(context.Background(), 1)
	require.NoError(t, err)
	assert.NotNil(t, regs)
	assert.Empty(t, regs)
}

func TestRegisterManyStudentsUpToCapacity(t *testing.T) {
	svc, courses, _ := newTestRegistrationService(t)
	course := seedCourse(t, courses, "CS101", 5, []models.Weekday{models.Monday}, "9:00 AM", "10:00 AM")

	for i := 1; i <= 5; i++ {
		_, err := svc.Register(context.Background(), int64(i), course.ID)
		require.NoError(t, err, fmt.Sprintf("student %d should get a seat", i))
	}

	_, err := svc.Register(context.Background(), 6, course.ID)
	assert.ErrorIs(t, err, apperrors.ErrCapacityExceeded)

	stored, err := courses.GetByID(context.Background(), course.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, stored.Enrolled)
	assert.Equal(t, 0, stored.AvailableSpots())
}
