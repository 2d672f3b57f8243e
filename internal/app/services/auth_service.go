package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/emreo/coursereg/internal/app/models"
	"github.com/emreo/coursereg/internal/app/models/dto"
	"github.com/emreo/coursereg/internal/pkg/apperrors"
	"github.com/emreo/coursereg/internal/pkg/auth"
)

// AuthService handles student signup and login
type AuthService struct {
	studentRepo StudentStore
	jwtService  *auth.JWTService
	logger      zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(studentRepo StudentStore, jwtService *auth.JWTService, logger zerolog.Logger) *AuthService {
	return &AuthService{
		studentRepo: studentRepo,
		jwtService:  jwtService,
		logger:      logger,
	}
}

// RegisterStudent creates a student account and issues a bearer token. The
// raw password is hashed before it ever reaches the directory.
func (s *AuthService) RegisterStudent(ctx context.Context, req *dto.RegisterRequest) (*models.Student, string, error) {
	exists, err := s.studentRepo.ExistsByEmailOrStudentID(ctx, req.Email, req.StudentID)
	if err != nil {
		return nil, "", fmt.Errorf("error checking student existence: %w", err)
	}
	if exists {
		return nil, "", apperrors.NewCustomError(apperrors.ErrValidationFailed,
			"student with this email or student ID already exists")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, "", fmt.Errorf("error hashing password: %w", err)
	}

	student := &models.Student{
		StudentID:    req.StudentID,
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Year:         req.Year,
		Major:        req.Major,
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		// The existence pre-check can lose a race with a concurrent signup;
		// the unique constraints are the real guard.
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) || errors.Is(err, apperrors.ErrStudentIDAlreadyExists) {
			return nil, "", apperrors.NewCustomError(apperrors.ErrValidationFailed,
				"student with this email or student ID already exists")
		}
		return nil, "", err
	}

	token, _, err := s.jwtService.GenerateToken(student)
	if err != nil {
		return nil, "", fmt.Errorf("error issuing token: %w", err)
	}

	s.logger.Info().Str("studentId", student.StudentID).Msg("Student account created")
	return student, token, nil
}

// Login verifies credentials and issues a bearer token. Failures are
// deliberately uniform: an unknown email and a wrong password are
// indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.Student, string, error) {
	student, err := s.studentRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, "", apperrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !auth.CheckPassword(student.PasswordHash, password) {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	token, _, err := s.jwtService.GenerateToken(student)
	if err != nil {
		return nil, "", fmt.Errorf("error issuing token: %w", err)
	}

	return student, token, nil
}
