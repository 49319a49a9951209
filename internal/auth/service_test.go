package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() Config {
	return Config{
		AdminUsername: "admin",
		AdminPassword: "s3cret",
		JWT:           JWTConfig{Secret: "signing-secret", Lifetime: time.Hour},
	}
}

func TestLoginSuccess(t *testing.T) {
	svc := NewService(testConfig())

	token, err := svc.Login("admin", "s3cret")
	require.NoError(t, err)

	claims, err := ValidateToken("signing-secret", token)
	require.NoError(t, err)
	assert.Equal(t, AdminIdentityID, claims.IdentityID)
	assert.Equal(t, AdminName, claims.Name)
}

func TestLoginExactMatchOnly(t *testing.T) {
	svc := NewService(testConfig())

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"wrong password", "admin", "wrong"},
		{"wrong username", "root", "s3cret"},
		{"both wrong", "root", "wrong"},
		{"empty password", "admin", ""},
		{"empty username", "", "s3cret"},
		{"both empty", "", ""},
		{"username case", "Admin", "s3cret"},
		{"password prefix", "admin", "s3cre"},
		{"password suffix", "admin", "s3crets"},
		{"swapped", "s3cret", "admin"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(tt.username, tt.password)
			assert.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

func TestLoginBcryptPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.DefaultCost)
	require.NoError(t, err)

	cfg := testConfig()
	cfg.AdminPassword = string(hash)
	svc := NewService(cfg)

	token, err := svc.Login("admin", "s3cret")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	_, err = svc.Login("admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginTokenExpiry(t *testing.T) {
	cfg := testConfig()
	cfg.JWT.Lifetime = -time.Minute
	svc := NewService(cfg)

	token, err := svc.Login("admin", "s3cret")
	require.NoError(t, err)

	// Issued past its own lifetime: verification must fail
	_, err = ValidateToken(cfg.JWT.Secret, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
