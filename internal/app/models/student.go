package models

import "time"

// Student defines the student model based on the 'students' table
type Student struct {
	ID           int64  `json:"id" db:"id" example:"1"`                              // Internal record ID
	StudentID    string `json:"studentId" db:"student_id" example:"S2025001"`        // External student number, unique
	Name         string `json:"name" db:"name" example:"Jane Doe"`
	Email        string `json:"email" db:"email" example:"jane@university.edu"`      // Unique
	PasswordHash string `json:"-" db:"password_hash"`                                // Never serialized
	Year         int    `json:"year" db:"year" example:"2"`                          // 1-4
	Major        string `json:"major" db:"major" example:"Computer Science"`

	// Denormalized set of currently registered course IDs. The registration
	// ledger remains the source of truth.
	RegisteredCourses []int64 `json:"registeredCourses" db:"registered_courses"`

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
