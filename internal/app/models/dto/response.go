package dto

import (
	"time"

	"github.com/emreo/coursereg/internal/app/models"
)

// MessageResponse is the generic success payload
type MessageResponse struct {
	Message string `json:"message" example:"Successfully dropped course"`
}

// HealthResponse reports service liveness
type HealthResponse struct {
	Status    string    `json:"status" example:"OK"`
	Timestamp time.Time `json:"timestamp"`
	Env       string    `json:"env" example:"development"`
}

// AuthResponse is returned by signup and login
type AuthResponse struct {
	Message string          `json:"message" example:"Login successful"`
	Token   string          `json:"token"`
	Student *models.Student `json:"student"`
}

// RegistrationResponse wraps a created registration with its course
type RegistrationResponse struct {
	Message      string               `json:"message" example:"Successfully registered for course"`
	Registration *models.Registration `json:"registration"`
}

// CourseResponse wraps a created or updated course
type CourseResponse struct {
	Message string         `json:"message" example:"Course created successfully"`
	Course  *models.Course `json:"course"`
}
