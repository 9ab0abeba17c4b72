package services

import (
	"errors"
	"time"

	"mini-pdv/utils"
)

var ErrInvalidPassword = errors.New("Senha inválida")

// AuthService guards the admin surface with a single password hashed
// at startup. A successful login issues a short-lived admin token.
type AuthService struct {
	passwordHash string
	jwtSecret    string
	jwtExpiry    time.Duration
}

func NewAuthService(adminPassword, jwtSecret string, jwtExpiry time.Duration) (*AuthService, error) {
	hash, err := utils.HashPassword(adminPassword)
	if err != nil {
		return nil, err
	}
	return &AuthService{
		passwordHash: hash,
		jwtSecret:    jwtSecret,
		jwtExpiry:    jwtExpiry,
	}, nil
}

func (s *AuthService) Login(password string) (string, error) {
	if !utils.VerifyPassword(s.passwordHash, password) {
		return "", ErrInvalidPassword
	}
	return utils.GenerateToken(s.jwtSecret, "admin", s.jwtExpiry)
}
