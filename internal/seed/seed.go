package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/emreo/coursereg/internal/app/models"
	appRepos "github.com/emreo/coursereg/internal/app/repositories"
)

// sampleCourses mirrors the historical catalog seed. Note the mixed time
// formats: most records use 12-hour clock strings, one uses 24-hour, which
// is exactly the inconsistency the schedule parser has to absorb.
var sampleCourses = []appModels.Course{
	{
		Code:        "CS101",
		Name:        "Introduction to Computer Science",
		Description: "Fundamental concepts of computer science including programming basics, algorithms, and data structures.",
		Instructor:  "Dr. Alice Johnson",
		Credits:     3,
		Capacity:    30,
		Schedule: appModels.Schedule{
			Days:      []appModels.Weekday{appModels.Monday, appModels.Wednesday, appModels.Friday},
			StartTime: "9:00 AM",
			EndTime:   "10:00 AM",
		},
		Location:      "Tech Building Room 101",
		Prerequisites: []string{},
		Department:    "Computer Science",
		Semester:      appModels.SemesterSpring,
		Year:          2025,
		IsActive:      true,
	},
	{
		Code:        "CS201",
		Name:        "Data Structures and Algorithms",
		Description: "Advanced study of data structures, algorithms, and their applications.",
		Instructor:  "Dr. Bob Smith",
		Credits:     4,
		Capacity:    25,
		Schedule: appModels.Schedule{
			Days:      []appModels.Weekday{appModels.Tuesday, appModels.Thursday},
			StartTime: "11:00 AM",
			EndTime:   "12:30 PM",
		},
		Location:      "Tech Building Room 205",
		Prerequisites: []string{"CS101"},
		Department:    "Computer Science",
		Semester:      appModels.SemesterSpring,
		Year:          2025,
		IsActive:      true,
	},
	{
		Code:        "MATH201",
		Name:        "Calculus I",
		Description: "Introduction to differential and integral calculus.",
		Instructor:  "Dr. Carol Wilson",
		Credits:     4,
		Capacity:    40,
		Schedule: appModels.Schedule{
			Days:      []appModels.Weekday{appModels.Monday, appModels.Wednesday, appModels.Friday},
			StartTime: "10:30 AM",
			EndTime:   "11:30 AM",
		},
		Location:      "Math Building Room 150",
		Prerequisites: []string{},
		Department:    "Mathematics",
		Semester:      appModels.SemesterSpring,
		Year:          2025,
		IsActive:      true,
	},
	{
		Code:        "PHYS101",
		Name:        "General Physics I",
		Description: "Introduction to mechanics, thermodynamics, and wave phenomena.",
		Instructor:  "Dr. David Brown",
		Credits:     4,
		Capacity:    35,
		Schedule: appModels.Schedule{
			Days:      []appModels.Weekday{appModels.Monday, appModels.Wednesday},
			StartTime: "14:00",
			EndTime:   "15:30",
		},
		Location:      "Science Building Room 201",
		Prerequisites: []string{"MATH201"},
		Department:    "Physics",
		Semester:      appModels.SemesterSpring,
		Year:          2025,
		IsActive:      true,
	},
	{
		Code:        "ENG101",
		Name:        "English Composition I",
		Description: "Development of writing skills with emphasis on clear, effective communication.",
		Instructor:  "Prof. Emily Davis",
		Credits:     3,
		Capacity:    25,
		Schedule: appModels.Schedule{
			Days:      []appModels.Weekday{appModels.Tuesday, appModels.Thursday},
			StartTime: "9:30 AM",
			EndTime:   "11:00 AM",
		},
		Location:      "Liberal Arts Building Room 305",
		Prerequisites: []string{},
		Department:    "English",
		Semester:      appModels.SemesterSpring,
		Year:          2025,
		IsActive:      true,
	},
}

// CreateDefaultData seeds the sample catalog if the courses table is empty.
// Safe to run on every startup.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	courseRepo := appRepos.NewCourseRepository(dbPool)

	count, err := courseRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("error checking course count: %w", err)
	}
	if count > 0 {
		lgr.Debug().Int64("count", count).Msg("Courses already seeded, skipping")
		return nil
	}

	lgr.Info().Msg("Seeding sample courses...")
	for i := range sampleCourses {
		course := sampleCourses[i]
		if err := courseRepo.Create(ctx, &course); err != nil {
			return fmt.Errorf("error seeding course %s: %w", course.Code, err)
		}
	}

	lgr.Info().Int("count", len(sampleCourses)).Msg("Sample courses seeded")
	return nil
}
