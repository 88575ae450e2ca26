package server

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/skillbridge/skillbridge/internal/analysis"
	"github.com/skillbridge/skillbridge/internal/extraction"
	"github.com/skillbridge/skillbridge/internal/ingestion"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"email exists", &ErrEmailAlreadyExists{Email: "a@b.c"}, http.StatusConflict},
		{"invalid credentials", &ErrInvalidCredentials{}, http.StatusUnauthorized},
		{"user not found", &ErrUserNotFound{}, http.StatusNotFound},
		{"resource not found", &ErrNotFound{Resource: "report"}, http.StatusNotFound},
		{"upload validation", &ingestion.ValidationError{Field: "size", Message: "too large"}, http.StatusBadRequest},
		{"unsupported type", &ingestion.UnsupportedTypeError{Extension: ".txt"}, http.StatusBadRequest},
		{"parse failure", &ingestion.ParseError{Message: "corrupt file"}, http.StatusBadRequest},
		{"empty resume text", &extraction.ValidationError{Message: "resume text is empty"}, http.StatusBadRequest},
		{"bad analysis input", &analysis.ValidationError{Message: "target is required"}, http.StatusBadRequest},
		{"AI failure", &analysis.AnalysisError{Message: "AI call failed"}, http.StatusInternalServerError},
		{"extraction failure", &extraction.ExtractionError{Message: "AI call failed"}, http.StatusInternalServerError},
		{"generic", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}
