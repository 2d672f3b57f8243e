package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emreo/coursereg/internal/app/models"
	"github.com/emreo/coursereg/internal/app/models/dto"
	"github.com/emreo/coursereg/internal/pkg/auth"
)

// Context keys set by the auth middleware
const (
	ContextStudentKey   = "student"
	ContextStudentIDKey = "studentID"
)

// StudentResolver resolves a token's student claim to a directory record
type StudentResolver interface {
	GetByID(ctx context.Context, id int64) (*models.Student, error)
}

// AuthMiddleware authenticates bearer tokens and attaches the resolved
// student to the request context.
type AuthMiddleware struct {
	jwtService  *auth.JWTService
	studentRepo StudentResolver
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService, studentRepo StudentResolver) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService:  jwtService,
		studentRepo: studentRepo,
	}
}

// JWTAuth validates the Authorization header, resolves the student and
// aborts with 401/403 on failure. Nothing downstream runs without an
// authenticated student in the context.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("Access token required"))
			return
		}

		tokenString, err := auth.ExtractBearerToken(authHeader)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("Access token required"))
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse("Invalid or expired token"))
			return
		}

		student, err := m.studentRepo.GetByID(c.Request.Context(), claims.StudentID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("Invalid token"))
			return
		}

		c.Set(ContextStudentKey, student)
		c.Set(ContextStudentIDKey, student.ID)

		c.Next()
	}
}

// StudentFromContext returns the authenticated student set by JWTAuth
func StudentFromContext(c *gin.Context) (*models.Student, bool) {
	value, exists := c.Get(ContextStudentKey)
	if !exists {
		return nil, false
	}
	student, ok := value.(*models.Student)
	return student, ok
}
