package models

import "time"

// Registration links a student to a course, based on the 'registrations'
// table. Records are never deleted; dropping flips the status instead, so
// the ledger keeps the full history of registration attempts.
type Registration struct {
	ID               int64              `json:"id" db:"id" example:"1"`
	StudentID        int64              `json:"studentId" db:"student_id" example:"1"`
	CourseID         int64              `json:"courseId" db:"course_id" example:"3"`
	Status           RegistrationStatus `json:"status" db:"status" example:"registered"`
	RegistrationDate time.Time          `json:"registrationDate" db:"registration_date"`

	// Semester and year are copied from the course at registration time so
	// the record stays meaningful if the course is later edited.
	Semester Semester `json:"semester" db:"semester" example:"Spring"`
	Year     int      `json:"year" db:"year" example:"2025"`

	// Relations (populated when needed)
	Course *Course `json:"course,omitempty"`
}
