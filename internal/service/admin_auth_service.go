package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"phillymounting/internal/config"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// AdminAuthService checks the single configured admin credential pair and
// issues short-lived session tokens.
type AdminAuthService struct {
	username     string
	password     string
	passwordHash string
	jwtSecret    string
}

func NewAdminAuthService(cfg config.Config) *AdminAuthService {
	return &AdminAuthService{
		username:     cfg.AdminUsername,
		password:     cfg.AdminPassword,
		passwordHash: cfg.AdminPasswordHash,
		jwtSecret:    cfg.JWTSecret,
	}
}

func (s *AdminAuthService) Login(username, password string) (string, error) {
	if s.username == "" || username != s.username {
		return "", ErrInvalidCredentials
	}
	if !s.passwordMatches(password) {
		return "", ErrInvalidCredentials
	}
	if s.jwtSecret == "" {
		return "", errors.New("JWT_SECRET not set")
	}

	claims := jwt.MapClaims{
		"username": s.username,
		"exp":      time.Now().Add(time.Hour * 1).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

func (s *AdminAuthService) passwordMatches(password string) bool {
	if s.passwordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)) == nil
	}
	return s.password != "" && password == s.password
}
