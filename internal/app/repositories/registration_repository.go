package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emreo/coursereg/internal/app/models"
	"github.com/emreo/coursereg/internal/db"
	"github.com/emreo/coursereg/internal/pkg/apperrors"
	"github.com/emreo/coursereg/internal/pkg/dberrors"
)

// RegistrationRepository handles database operations for the registration
// ledger. The write paths run inside a single transaction so the ledger
// insert, the enrollment counter and the student's denormalized course set
// can never diverge.
type RegistrationRepository struct {
	db *pgxpool.Pool
}

// NewRegistrationRepository creates a new registration repository
func NewRegistrationRepository(db *pgxpool.Pool) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

// FindActive returns the active registration for (student, course), or nil
// if there is none. Dropped rows are ignored.
func (r *RegistrationRepository) FindActive(ctx context.Context, studentID, courseID int64) (*models.Registration, error) {
	query := `
		SELECT id, student_id, course_id, status, registration_date, semester, year
		FROM registrations
		WHERE student_id = $1 AND course_id = $2 AND status = 'registered'
	`

	var reg models.Registration
	err := r.db.QueryRow(ctx, query, studentID, courseID).Scan(
		&reg.ID, &reg.StudentID, &reg.CourseID, &reg.Status,
		&reg.RegistrationDate, &reg.Semester, &reg.Year,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving registration: %w", err)
	}

	return &reg, nil
}

// ListActiveByStudent returns the student's active registrations, each with
// its course record populated, in insertion order.
func (r *RegistrationRepository) ListActiveByStudent(ctx context.Context, studentID int64) ([]*models.Registration, error) {
	query := fmt.Sprintf(`
		SELECT r.id, r.student_id, r.course_id, r.status, r.registration_date, r.semester, r.year,
			%s
		FROM registrations r
		JOIN courses c ON c.id = r.course_id
		WHERE r.student_id = $1 AND r.status = 'registered'
		ORDER BY r.id ASC
	`, prefixedCourseColumns("c"))

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, fmt.Errorf("error listing registrations: %w", err)
	}
	defer rows.Close()

	var registrations []*models.Registration
	for rows.Next() {
		var reg models.Registration
		var course models.Course
		var days []string
		err := rows.Scan(
			&reg.ID, &reg.StudentID, &reg.CourseID, &reg.Status,
			&reg.RegistrationDate, &reg.Semester, &reg.Year,
			&course.ID, &course.Code, &course.Name, &course.Description, &course.Instructor,
			&course.Credits, &course.Capacity, &course.Enrolled,
			&days, &course.Schedule.StartTime, &course.Schedule.EndTime,
			&course.Location, &course.Prerequisites, &course.Department,
			&course.Semester, &course.Year, &course.IsActive,
			&course.CreatedAt, &course.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		course.Schedule.Days = make([]models.Weekday, len(days))
		for i, d := range days {
			course.Schedule.Days[i] = models.Weekday(d)
		}
		reg.Course = &course
		registrations = append(registrations, &reg)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return registrations, nil
}

// CreateActive records a new active registration: inserts the ledger row,
// increments the course's enrollment counter and adds the course to the
// student's registered set, all atomically. The counter increment is
// conditional on remaining capacity, so two concurrent registrations for
// the last seat cannot both succeed.
func (r *RegistrationRepository) CreateActive(ctx context.Context, reg *models.Registration) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		cmdTag, err := tx.Exec(ctx, `
			UPDATE courses SET enrolled = enrolled + 1, updated_at = NOW()
			WHERE id = $1 AND enrolled < capacity
		`, reg.CourseID)
		if err != nil {
			return fmt.Errorf("error incrementing enrollment: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			// Course existence was checked upstream, so zero rows means
			// the last seat went to someone else.
			return apperrors.ErrCapacityExceeded
		}

		err = tx.QueryRow(ctx, `
			INSERT INTO registrations (student_id, course_id, status, semester, year)
			VALUES ($1, $2, 'registered', $3, $4)
			RETURNING id, registration_date
		`, reg.StudentID, reg.CourseID, reg.Semester, reg.Year).Scan(&reg.ID, &reg.RegistrationDate)
		if err != nil {
			if dberrors.IsDuplicateConstraintError(err, "uq_registrations_active") {
				return apperrors.ErrDuplicateRegistration
			}
			return fmt.Errorf("error inserting registration: %w", err)
		}
		reg.Status = models.StatusRegistered

		// Set semantics: appending is skipped when the course is already
		// present.
		_, err = tx.Exec(ctx, `
			UPDATE students
			SET registered_courses = array_append(registered_courses, $2), updated_at = NOW()
			WHERE id = $1 AND NOT ($2 = ANY(registered_courses))
		`, reg.StudentID, reg.CourseID)
		if err != nil {
			return fmt.Errorf("error updating student course set: %w", err)
		}

		return nil
	})
}

// DropActive flips the active registration for (student, course) to
// dropped, decrements the course's enrollment counter and removes the
// course from the student's registered set, atomically.
func (r *RegistrationRepository) DropActive(ctx context.Context, studentID, courseID int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		cmdTag, err := tx.Exec(ctx, `
			UPDATE registrations SET status = 'dropped', updated_at = NOW()
			WHERE student_id = $1 AND course_id = $2 AND status = 'registered'
		`, studentID, courseID)
		if err != nil {
			return fmt.Errorf("error dropping registration: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrRegistrationNotFound
		}

		// Floored so a stray drop can never push the counter negative.
		_, err = tx.Exec(ctx, `
			UPDATE courses SET enrolled = GREATEST(enrolled - 1, 0), updated_at = NOW()
			WHERE id = $1
		`, courseID)
		if err != nil {
			return fmt.Errorf("error decrementing enrollment: %w", err)
		}

		_, err = tx.Exec(ctx, `
			UPDATE students
			SET registered_courses = array_remove(registered_courses, $2), updated_at = NOW()
			WHERE id = $1
		`, studentID, courseID)
		if err != nil {
			return fmt.Errorf("error updating student course set: %w", err)
		}

		return nil
	})
}

// prefixedCourseColumns qualifies the course column list with a table alias
func prefixedCourseColumns(alias string) string {
	return fmt.Sprintf(`%[1]s.id, %[1]s.code, %[1]s.name, %[1]s.description, %[1]s.instructor,
		%[1]s.credits, %[1]s.capacity, %[1]s.enrolled,
		%[1]s.days, %[1]s.start_time, %[1]s.end_time,
		%[1]s.location, %[1]s.prerequisites, %[1]s.department,
		%[1]s.semester, %[1]s.year, %[1]s.is_active,
		%[1]s.created_at, %[1]s.updated_at`, alias)
}
