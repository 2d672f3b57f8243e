package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories is a container for all application repositories
type Repositories struct {
	CourseRepository       *CourseRepository
	StudentRepository      *StudentRepository
	RegistrationRepository *RegistrationRepository
}

// NewRepositories creates all repositories sharing a single connection pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		CourseRepository:       NewCourseRepository(db),
		StudentRepository:      NewStudentRepository(db),
		RegistrationRepository: NewRegistrationRepository(db),
	}
}
