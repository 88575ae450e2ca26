package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/skillbridge/skillbridge/internal/analysis"
	"github.com/skillbridge/skillbridge/internal/extraction"
	"github.com/skillbridge/skillbridge/internal/ingestion"
)

// ErrEmailAlreadyExists indicates email is already registered
type ErrEmailAlreadyExists struct {
	Email string
}

func (e *ErrEmailAlreadyExists) Error() string {
	return fmt.Sprintf("email already registered: %s", e.Email)
}

// ErrInvalidCredentials indicates invalid login credentials
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid email or password"
}

// ErrUserNotFound indicates user was not found
type ErrUserNotFound struct {
	UserID uuid.UUID
}

func (e *ErrUserNotFound) Error() string {
	return fmt.Sprintf("user not found: %s", e.UserID)
}

// ErrNotFound indicates a resource does not exist or is owned by someone
// else. The two cases intentionally share one error so responses do not leak
// which resources exist.
type ErrNotFound struct {
	Resource string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrEmailAlreadyExists:
		return http.StatusConflict
	case *ErrInvalidCredentials:
		return http.StatusUnauthorized
	case *ErrUserNotFound, *ErrNotFound:
		return http.StatusNotFound
	}

	var ingestionValidation *ingestion.ValidationError
	var unsupportedType *ingestion.UnsupportedTypeError
	var parseErr *ingestion.ParseError
	var extractionValidation *extraction.ValidationError
	var analysisValidation *analysis.ValidationError
	switch {
	case errors.As(err, &ingestionValidation),
		errors.As(err, &unsupportedType),
		errors.As(err, &parseErr),
		errors.As(err, &extractionValidation),
		errors.As(err, &analysisValidation):
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}
