package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// The single administrative identity. There are no user records; the
// admin credential pair comes from configuration and this is the only
// principal the system recognizes.
const (
	AdminIdentityID = "1"
	AdminName       = "Admin"
)

type Config struct {
	AdminUsername string    `mapstructure:"admin_username"`
	AdminPassword string    `mapstructure:"admin_password"`
	JWT           JWTConfig `mapstructure:"jwt"`
}

type Service struct {
	config Config
}

func NewService(config Config) *Service {
	return &Service{config: config}
}

// Login checks a credential pair against the configured admin identity
// and returns a session token on an exact match. Any mismatch, including
// empty input, yields ErrInvalidCredentials with no hint of which field
// was wrong.
func (s *Service) Login(username, password string) (string, error) {
	usernameMatch := subtle.ConstantTimeCompare([]byte(username), []byte(s.config.AdminUsername)) == 1
	passwordMatch := CheckPassword(password, s.config.AdminPassword)
	if !usernameMatch || !passwordMatch {
		return "", ErrInvalidCredentials
	}

	token, err := GenerateToken(s.config.JWT, AdminIdentityID, AdminName)
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return token, nil
}
