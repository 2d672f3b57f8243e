package services

import (
	"context"

	"github.com/emreo/coursereg/internal/app/models"
	"github.com/emreo/coursereg/internal/app/repositories"
)

// Store interfaces consumed by the services. The pgx-backed repositories
// satisfy them in production; tests substitute in-memory fakes.

// CourseStore provides access to the course catalog
type CourseStore interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	List(ctx context.Context, filter models.CourseFilter) ([]*models.Course, error)
	GetDepartments(ctx context.Context) ([]string, error)
	Update(ctx context.Context, course *models.Course) error
}

// StudentStore provides access to the student directory
type StudentStore interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetByEmail(ctx context.Context, email string) (*models.Student, error)
	ExistsByEmailOrStudentID(ctx context.Context, email, studentID string) (bool, error)
}

// RegistrationStore provides access to the registration ledger. CreateActive
// and DropActive are transactional: the ledger row, the course enrollment
// counter and the student's registered set change together or not at all.
type RegistrationStore interface {
	FindActive(ctx context.Context, studentID, courseID int64) (*models.Registration, error)
	ListActiveByStudent(ctx context.Context, studentID int64) ([]*models.Registration, error)
	CreateActive(ctx context.Context, reg *models.Registration) error
	DropActive(ctx context.Context, studentID, courseID int64) error
}

var (
	_ CourseStore       = (*repositories.CourseRepository)(nil)
	_ StudentStore      = (*repositories.StudentRepository)(nil)
	_ RegistrationStore = (*repositories.RegistrationRepository)(nil)
)
