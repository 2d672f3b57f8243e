package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// BcryptCost is the cost factor existing student records are hashed with.
const BcryptCost = 12

// HashPassword hashes a raw password for persistence
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPassword verifies a raw password against a stored hash
func CheckPassword(hashedPassword, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}
