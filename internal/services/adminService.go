package services

import (
	"crypto/subtle"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// AdminService exchanges the shared admin passphrase for a signed
// bearer token. The passphrase is preferably supplied as a bcrypt hash;
// a plaintext value is accepted as a fallback and compared in constant
// time.
type AdminService struct {
	jwtSecret    []byte
	password     string
	passwordHash string
}

func NewAdminService(jwtSecret, password, passwordHash string) *AdminService {
	return &AdminService{
		jwtSecret:    []byte(jwtSecret),
		password:     password,
		passwordHash: passwordHash,
	}
}

// Login verifies the passphrase and returns a signed admin token.
func (s *AdminService) Login(password string) (string, error) {
	if !s.verify(password) {
		return "", ErrInvalidCredentials
	}

	claims := jwt.MapClaims{
		"role": "admin",
		"exp":  time.Now().Add(4 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

func (s *AdminService) verify(password string) bool {
	if s.passwordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)) == nil
	}
	if s.password == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(s.password), []byte(password)) == 1
}
