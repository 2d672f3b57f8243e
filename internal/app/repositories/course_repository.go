package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emreo/coursereg/internal/app/models"
	"github.com/emreo/coursereg/internal/pkg/apperrors"
	"github.com/emreo/coursereg/internal/pkg/dberrors"
)

const courseColumns = `id, code, name, description, instructor, credits, capacity, enrolled,
	days, start_time, end_time, location, prerequisites, department, semester, year, is_active,
	created_at, updated_at`

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{db: db}
}

func scanCourse(row pgx.Row) (*models.Course, error) {
	var course models.Course
	var days []string
	err := row.Scan(
		&course.ID,
		&course.Code,
		&course.Name,
		&course.Description,
		&course.Instructor,
		&course.Credits,
		&course.Capacity,
		&course.Enrolled,
		&days,
		&course.Schedule.StartTime,
		&course.Schedule.EndTime,
		&course.Location,
		&course.Prerequisites,
		&course.Department,
		&course.Semester,
		&course.Year,
		&course.IsActive,
		&course.CreatedAt,
		&course.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	course.Schedule.Days = make([]models.Weekday, len(days))
	for i, d := range days {
		course.Schedule.Days[i] = models.Weekday(d)
	}
	return &course, nil
}

func weekdayStrings(days []models.Weekday) []string {
	out := make([]string, len(days))
	for i, d := range days {
		out[i] = string(d)
	}
	return out
}

// Create inserts a new course
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	query := `
		INSERT INTO courses (code, name, description, instructor, credits, capacity, enrolled,
			days, start_time, end_time, location, prerequisites, department, semester, year, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING id, created_at, updated_at
	`

	if course.Prerequisites == nil {
		course.Prerequisites = []string{}
	}

	err := r.db.QueryRow(ctx, query,
		course.Code, course.Name, course.Description, course.Instructor,
		course.Credits, course.Capacity, course.Enrolled,
		weekdayStrings(course.Schedule.Days), course.Schedule.StartTime, course.Schedule.EndTime,
		course.Location, course.Prerequisites, course.Department,
		course.Semester, course.Year, course.IsActive,
	).Scan(&course.ID, &course.CreatedAt, &course.UpdatedAt)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "courses_code_key") {
			return apperrors.ErrCourseCodeExists
		}
		return fmt.Errorf("error creating course: %w", err)
	}

	return nil
}

// GetByID retrieves a course by its internal ID
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	query := fmt.Sprintf(`SELECT %s FROM courses WHERE id = $1`, courseColumns)

	course, err := scanCourse(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	return course, nil
}

// List retrieves courses matching the filter, ordered by course code.
// Filters are enumerated explicitly; unrecognized input never reaches the
// query.
func (r *CourseRepository) List(ctx context.Context, filter models.CourseFilter) ([]*models.Course, error) {
	query := fmt.Sprintf(`SELECT %s FROM courses`, courseColumns)
	var conditions []string
	var args []interface{}

	if !filter.IncludeInactive {
		conditions = append(conditions, "is_active = TRUE")
	}
	if filter.Semester != "" {
		args = append(args, filter.Semester)
		conditions = append(conditions, fmt.Sprintf("semester = $%d", len(args)))
	}
	if filter.Year != 0 {
		args = append(args, filter.Year)
		conditions = append(conditions, fmt.Sprintf("year = $%d", len(args)))
	}
	if filter.Department != "" {
		args = append(args, filter.Department)
		conditions = append(conditions, fmt.Sprintf("department = $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		conditions = append(conditions,
			fmt.Sprintf("(name ILIKE $%d OR code ILIKE $%d OR instructor ILIKE $%d)", n, n, n))
	}

	for i, cond := range conditions {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += " ORDER BY code ASC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing courses: %w", err)
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

// GetDepartments returns the sorted distinct departments of active courses
func (r *CourseRepository) GetDepartments(ctx context.Context) ([]string, error) {
	query := `SELECT DISTINCT department FROM courses WHERE is_active = TRUE ORDER BY department ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error retrieving departments: %w", err)
	}
	defer rows.Close()

	departments := []string{}
	for rows.Next() {
		var dept string
		if err := rows.Scan(&dept); err != nil {
			return nil, err
		}
		departments = append(departments, dept)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return departments, nil
}

// Update updates an existing course's catalog fields
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	query := `
		UPDATE courses
		SET name = $1, description = $2, instructor = $3, credits = $4, capacity = $5,
			days = $6, start_time = $7, end_time = $8, location = $9, prerequisites = $10,
			department = $11, semester = $12, year = $13, is_active = $14, updated_at = NOW()
		WHERE id = $15
	`

	cmdTag, err := r.db.Exec(ctx, query,
		course.Name, course.Description, course.Instructor, course.Credits, course.Capacity,
		weekdayStrings(course.Schedule.Days), course.Schedule.StartTime, course.Schedule.EndTime,
		course.Location, course.Prerequisites, course.Department,
		course.Semester, course.Year, course.IsActive, course.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// Count returns the total number of courses
func (r *CourseRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM courses`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting courses: %w", err)
	}
	return count, nil
}
