package domain

import (
	"errors"
	"strings"
)

// Role is the permission tier attached to a user. It is a closed set:
// only the two constants below are valid values.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleExternal Role = "EXTERNAL"
)

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidRole = errors.New("invalid role")
var ErrInvalidToken = errors.New("invalid token")
var ErrTooManyAttempts = errors.New("too many login attempts")

// ParseRole converts a raw string into a Role, accepting any casing.
// Unknown values fail with ErrInvalidRole so unchecked role strings
// never reach the policy table.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToUpper(strings.TrimSpace(s))) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleExternal:
		return RoleExternal, nil
	default:
		return "", ErrInvalidRole
	}
}

// Valid reports whether r is one of the defined roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleExternal
}

// User is the identity record held by the credential store.
type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Role         Role   `json:"role"`
}

// Identity is the request-scoped view of an authenticated caller,
// derived fresh from a bearer token on every request.
type Identity struct {
	Email string
	Role  Role
}
