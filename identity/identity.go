// Package identity resolves bearer tokens into caller identities and
// permission decisions using the external auth service or local JWTs.
package identity

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Identity is the caller as described by the auth service for one permission check.
type Identity struct {
	Permitted  bool
	UserID     uint
	Email      string
	FullName   string
	Roles      []string
	HospitalID uint
}

// User is an account known to the auth service.
type User struct {
	ID       uint
	FullName string
	Email    string
	Mobile   string
}

// Provider decides whether the holder of token has permission.
type Provider interface {
	Check(ctx context.Context, token, permission string) (*Identity, error)
}

// UserDirectory resolves accounts by email address.
type UserDirectory interface {
	LookupUser(ctx context.Context, token, email string) (*User, error)
}

var ErrMissingToken = errors.New("access token is required")

// StatusError is a failure reported by the auth service, carrying the
// status it answered with.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("auth service responded %d: %s", e.StatusCode, e.Message)
}

// StatusCodeOf returns the status of a *StatusError, or fallback.
func StatusCodeOf(err error, fallback int) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.StatusCode
	}
	return fallback
}

// flexID accepts ids encoded either as JSON numbers or numeric strings.
type flexID uint

func (f *flexID) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id %s: %w", b, err)
	}
	*f = flexID(v)
	return nil
}
