package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emreo/coursereg/internal/app/models"
	"github.com/emreo/coursereg/internal/app/models/dto"
	"github.com/emreo/coursereg/internal/pkg/apperrors"
	"github.com/emreo/coursereg/internal/pkg/auth"
)

type fakeStudentStore struct {
	students map[int64]*models.Student
	nextID   int64
}

func newFakeStudentStore() *fakeStudentStore {
	return &fakeStudentStore{students: make(map[int64]*models.Student), nextID: 1}
}

func (s *fakeStudentStore) Create(_ context.Context, student *models.Student) error {
	for _, st := range s.students {
		if st.Email == student.Email {
			return apperrors.ErrEmailAlreadyExists
		}
		if st.StudentID == student.StudentID {
			return apperrors.ErrStudentIDAlreadyExists
		}
	}
	student.ID = s.nextID
	s.nextID++
	cp := *student
	s.students[student.ID] = &cp
	return nil
}

func (s *fakeStudentStore) GetByID(_ context.Context, id int64) (*models.Student, error) {
	student, ok := s.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	cp := *student
	return &cp, nil
}

func (s *fakeStudentStore) GetByEmail(_ context.Context, email string) (*models.Student, error) {
	for _, st := range s.students {
		if st.Email == email {
			cp := *st
			return &cp, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (s *fakeStudentStore) ExistsByEmailOrStudentID(_ context.Context, email, studentID string) (bool, error) {
	for _, st := range s.students {
		if st.Email == email || st.StudentID == studentID {
			return true, nil
		}
	}
	return false, nil
}

func newTestAuthService(t *testing.T) (*AuthService, *fakeStudentStore, *auth.JWTService) {
	t.Helper()
	store := newFakeStudentStore()
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret-key-for-auth-service",
		TokenExp:    time.Hour,
		TokenIssuer: "coursereg.test",
	})
	return NewAuthService(store, jwtService, zerolog.Nop()), store, jwtService
}

func signupRequest() *dto.RegisterRequest {
	return &dto.RegisterRequest{
		StudentID: "S2025001",
		Name:      "Jane Doe",
		Email:     "jane@university.edu",
		Password:  "secret123",
		Year:      2,
		Major:     "Computer Science",
	}
}

func TestRegisterStudent(t *testing.T) {
	svc, _, jwtService := newTestAuthService(t)

	student, token, err := svc.RegisterStudent(context.Background(), signupRequest())
	require.NoError(t, err)
	require.NotNil(t, student)
	assert.NotZero(t, student.ID)
	assert.Equal(t, "S2025001", student.StudentID)

	// Stored credential is a hash, never the raw password
	assert.NotEqual(t, "secret123", student.PasswordHash)
	assert.True(t, auth.CheckPassword(student.PasswordHash, "secret123"))

	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, student.ID, claims.StudentID)
	assert.Equal(t, "jane@university.edu", claims.Email)
}

func TestRegisterStudentDuplicate(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	_, _, err := svc.RegisterStudent(context.Background(), signupRequest())
	require.NoError(t, err)

	// Same email
	req := signupRequest()
	req.StudentID = "S2025002"
	_, _, err = svc.RegisterStudent(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	// Same student ID
	req = signupRequest()
	req.Email = "jane.d@university.edu"
	_, _, err = svc.RegisterStudent(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestLogin(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	registered, _, err := svc.RegisterStudent(context.Background(), signupRequest())
	require.NoError(t, err)

	student, token, err := svc.Login(context.Background(), "jane@university.edu", "secret123")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, student.ID)
	assert.NotEmpty(t, token)
}

func TestLoginFailuresAreUniform(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	_, _, err := svc.RegisterStudent(context.Background(), signupRequest())
	require.NoError(t, err)

	_, _, wrongPassword := svc.Login(context.Background(), "jane@university.edu", "wrong")
	_, _, unknownEmail := svc.Login(context.Background(), "nobody@university.edu", "secret123")

	assert.ErrorIs(t, wrongPassword, apperrors.ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, apperrors.ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}
