package auth

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials is returned when the username is unknown or the
	// password does not match. The two cases are not distinguished.
	ErrInvalidCredentials = errors.New("auth: invalid credentials")
	ErrUserExists         = errors.New("auth: user already exists")
	ErrEmptyUsername      = errors.New("auth: username is empty")
	ErrEmptyPassword      = errors.New("auth: password is empty")
)

// User is an account that can log in.
type User struct {
	ID           string
	Username     string
	PasswordHash []byte
	Active       bool
}

// Authenticator verifies a username/password pair.
// Inactive users are returned without error; callers decide what to do.
type Authenticator interface {
	Authenticate(ctx context.Context, username, password string) (*User, error)
}

// HashPassword hashes password with bcrypt at the default cost.
func HashPassword(password string) ([]byte, error) {
	if password == "" {
		return nil, ErrEmptyPassword
	}
	return bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
}

// checkPassword compares in constant time. A nil hash always fails.
func checkPassword(hash []byte, password string) bool {
	if len(hash) == 0 {
		return false
	}
	return bcrypt.CompareHashAndPassword(hash, []byte(password)) == nil
}

func normalizeUsername(username string) string {
	return strings.TrimSpace(username)
}
