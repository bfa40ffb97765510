package service

import (
	"errors"
	"maps"
	"slices"
	"strings"
)

var (
	// ErrUnauthorized covers missing, malformed, expired or revoked tokens and bad credentials.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotMember is returned when the caller has no membership in the requested organization.
	ErrNotMember            = errors.New("not a member of this organization")
	ErrForbidden            = errors.New("insufficient role for this organization")
	ErrEmailTaken           = errors.New("email already registered")
	ErrOrganizationNotFound = errors.New("organization not found")
)

// ValidationError reports every rejected input field with a message.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := slices.Sorted(maps.Keys(e.Fields))
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

type fieldErrors map[string]string

// add keeps the first message recorded for a field.
func (f fieldErrors) add(field, message string) {
	if _, ok := f[field]; !ok {
		f[field] = message
	}
}

func (f fieldErrors) err() error {
	if len(f) == 0 {
		return nil
	}
	return &ValidationError{Fields: map[string]string(f)}
}

func IsValidation(err error) (*ValidationError, bool) {
	var v *ValidationError
	if errors.As(err, &v) {
		return v, true
	}
	return nil, false
}
