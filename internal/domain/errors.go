package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError carries field-level messages so the API can list every
// violated field in the response details.
type ValidationError struct {
	Msg     string
	Details []string
	Err     error
}

func (e ValidationError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if len(e.Details) > 0 {
		return strings.Join(e.Details, "; ")
	}
	return "datos no válidos"
}

func (e ValidationError) Unwrap() error { return e.Err }

type NotFoundError struct {
	Resource string
	Err      error
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "registro no encontrado"
	}
	return fmt.Sprintf("%s no encontrado", e.Resource)
}

func (e NotFoundError) Unwrap() error { return e.Err }

// UnauthorizedError: missing or invalid credential (maps to 401).
type UnauthorizedError struct {
	Msg string
	Err error
}

func (e UnauthorizedError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "no autorizado"
}

func (e UnauthorizedError) Unwrap() error { return e.Err }

// ForbiddenError: authenticated but lacking the required permission (403).
// Kept distinct from UnauthorizedError so the two are never conflated.
type ForbiddenError struct {
	Permission string
	Err        error
}

func (e ForbiddenError) Error() string {
	if e.Permission == "" {
		return "permiso insuficiente"
	}
	return fmt.Sprintf("permiso insuficiente: se requiere %s", e.Permission)
}

func (e ForbiddenError) Unwrap() error { return e.Err }

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsUnauthorized(err error) bool {
	var target UnauthorizedError
	return errors.As(err, &target)
}

func IsForbidden(err error) bool {
	var target ForbiddenError
	return errors.As(err, &target)
}

// ValidationDetails extracts the per-field messages when err wraps a
// ValidationError, nil otherwise.
func ValidationDetails(err error) []string {
	var target ValidationError
	if errors.As(err, &target) {
		return target.Details
	}
	return nil
}
