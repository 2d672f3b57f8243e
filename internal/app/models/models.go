package models

// Semester represents an academic semester tag
type Semester string

// Semester constants
const (
	SemesterFall   Semester = "Fall"
	SemesterSpring Semester = "Spring"
	SemesterSummer Semester = "Summer"
)

// IsValid reports whether the semester is one of the known values
func (s Semester) IsValid() bool {
	switch s {
	case SemesterFall, SemesterSpring, SemesterSummer:
		return true
	}
	return false
}

// Weekday represents a day a course meets. Sunday is not a teaching day.
type Weekday string

// Weekday constants
const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
)

// IsValid reports whether the weekday is one of the six teaching days
func (d Weekday) IsValid() bool {
	switch d {
	case Monday, Tuesday, Wednesday, Thursday, Friday, Saturday:
		return true
	}
	return false
}

// RegistrationStatus represents the lifecycle state of a registration record
type RegistrationStatus string

// Registration status constants. Waitlisted is reserved: the schema accepts
// it but no code path currently assigns it.
const (
	StatusRegistered RegistrationStatus = "registered"
	StatusDropped    RegistrationStatus = "dropped"
	StatusWaitlisted RegistrationStatus = "waitlisted"
)
