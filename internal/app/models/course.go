package models

import (
	"encoding/json"
	"time"
)

// Schedule describes when a course meets during the week. Start and end
// times are wall-clock-of-day strings; seed data mixes 12-hour ("9:00 AM")
// and 24-hour ("09:00") forms, so comparisons must go through the schedule
// package rather than raw string ordering.
type Schedule struct {
	Days      []Weekday `json:"days" db:"days"`
	StartTime string    `json:"startTime" db:"start_time" example:"9:00 AM"`
	EndTime   string    `json:"endTime" db:"end_time" example:"10:00 AM"`
}

// Course represents a course in the catalog, based on the 'courses' table.
type Course struct {
	ID            int64    `json:"id" db:"id" example:"1"`
	Code          string   `json:"courseId" db:"code" example:"CS101"` // Unique course code
	Name          string   `json:"name" db:"name" example:"Introduction to Computer Science"`
	Description   string   `json:"description" db:"description"`
	Instructor    string   `json:"instructor" db:"instructor" example:"Dr. Alice Johnson"`
	Credits       int      `json:"credits" db:"credits" example:"3"`
	Capacity      int      `json:"capacity" db:"capacity" example:"30"`
	Enrolled      int      `json:"enrolled" db:"enrolled" example:"15"`
	Schedule      Schedule `json:"schedule"`
	Location      string   `json:"location" db:"location"`
	Prerequisites []string `json:"prerequisites" db:"prerequisites"`
	Department    string   `json:"department" db:"department" example:"Computer Science"`
	Semester      Semester `json:"semester" db:"semester" example:"Spring"`
	Year          int      `json:"year" db:"year" example:"2025"`
	IsActive      bool     `json:"isActive" db:"is_active"`

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// AvailableSpots returns the number of open seats. Derived from capacity and
// enrolled, never stored independently.
func (c *Course) AvailableSpots() int {
	return c.Capacity - c.Enrolled
}

// CourseFilter enumerates the recognized catalog filters. Zero values mean
// "no filter". Anything else the caller sends is ignored rather than merged
// into the query.
type CourseFilter struct {
	Semester   Semester
	Year       int
	Department string
	// Search matches name, course code and instructor, case-insensitively
	Search string
	// IncludeInactive widens the result beyond active courses
	IncludeInactive bool
}

// MarshalJSON includes the derived availableSpots field in responses,
// matching the shape the frontend expects.
func (c Course) MarshalJSON() ([]byte, error) {
	type alias Course
	return json.Marshal(struct {
		alias
		AvailableSpots int `json:"availableSpots"`
	}{
		alias:          alias(c),
		AvailableSpots: c.Capacity - c.Enrolled,
	})
}
