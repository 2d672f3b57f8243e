package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/emreo/coursereg/internal/app/models"
	"github.com/emreo/coursereg/internal/pkg/apperrors"
	"github.com/emreo/coursereg/internal/pkg/metrics"
	"github.com/emreo/coursereg/internal/pkg/schedule"
)

// RegistrationService enforces the registration invariants: a student may
// register for a course only if it exists, has a free seat, is not already
// actively registered, and does not collide with any of the student's other
// active courses.
type RegistrationService struct {
	registrationRepo RegistrationStore
	courseRepo       CourseStore
	metrics          *metrics.Metrics
	logger           zerolog.Logger
}

// NewRegistrationService creates a new RegistrationService. metrics may be
// nil (tests).
func NewRegistrationService(
	registrationRepo RegistrationStore,
	courseRepo CourseStore,
	m *metrics.Metrics,
	logger zerolog.Logger,
) *RegistrationService {
	return &RegistrationService{
		registrationRepo: registrationRepo,
		courseRepo:       courseRepo,
		metrics:          m,
		logger:           logger,
	}
}

// Register registers the student for the course. Checks run in a fixed
// order, each with its own failure mode: course existence, capacity,
// duplicate active registration, schedule conflict. On success the ledger
// row, the course's enrollment counter and the student's registered set are
// updated in one transaction, and the created registration is returned with
// its course populated.
func (s *RegistrationService) Register(ctx context.Context, studentID, courseID int64) (*models.Registration, error) {
	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	if course.Enrolled >= course.Capacity {
		s.countFailure("capacity")
		return nil, apperrors.ErrCapacityExceeded
	}

	existing, err := s.registrationRepo.FindActive(ctx, studentID, courseID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		s.countFailure("duplicate")
		return nil, apperrors.ErrDuplicateRegistration
	}

	active, err := s.registrationRepo.ListActiveByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	for _, reg := range active {
		if reg.Course == nil {
			return nil, fmt.Errorf("registration %d has no course attached", reg.ID)
		}
		conflicts, err := schedule.Conflicts(course.Schedule, reg.Course.Schedule)
		if err != nil {
			return nil, fmt.Errorf("error comparing schedules for course %s: %w", reg.Course.Code, err)
		}
		if conflicts {
			s.countFailure("conflict")
			return nil, apperrors.ErrScheduleConflict
		}
	}

	reg := &models.Registration{
		StudentID: studentID,
		CourseID:  courseID,
		Semester:  course.Semester,
		Year:      course.Year,
	}

	// The store re-checks capacity and duplication under the transaction,
	// so a concurrent registration for the last seat loses cleanly here
	// instead of overbooking the course.
	if err := s.registrationRepo.CreateActive(ctx, reg); err != nil {
		if errors.Is(err, apperrors.ErrCapacityExceeded) {
			s.countFailure("capacity")
		} else if errors.Is(err, apperrors.ErrDuplicateRegistration) {
			s.countFailure("duplicate")
		}
		return nil, err
	}

	course.Enrolled++
	reg.Course = course

	if s.metrics != nil {
		s.metrics.IncrementRegistrations()
	}
	s.logger.Info().
		Int64("studentId", studentID).
		Str("course", course.Code).
		Int("enrolled", course.Enrolled).
		Msg("Student registered for course")

	return reg, nil
}

// Drop drops the student's active registration for the course. The ledger
// row is retained with status dropped.
func (s *RegistrationService) Drop(ctx context.Context, studentID, courseID int64) error {
	if err := s.registrationRepo.DropActive(ctx, studentID, courseID); err != nil {
		return err
	}

	if s.metrics != nil {
		s.metrics.IncrementDrops()
	}
	s.logger.Info().
		Int64("studentId", studentID).
		Int64("courseId", courseID).
		Msg("Student dropped course")

	return nil
}

// ListMyCourses returns the student's active registrations, each joined
// with its full course record.
func (s *RegistrationService) ListMyCourses(ctx context.Context, studentID int64) ([]*models.Registration, error) {
	registrations, err := s.registrationRepo.ListActiveByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if registrations == nil {
		registrations = []*models.Registration{}
	}
	return registrations, nil
}

func (s *RegistrationService) countFailure(reason string) {
	if s.metrics != nil {
		s.metrics.IncrementRegistrationFailure(reason)
	}
}
