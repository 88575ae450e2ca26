package server

import (
	"time"

	"github.com/google/uuid"
)

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse is the public view of an account.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	User  *UserResponse `json:"user"`
	Token string        `json:"token"`
}

// GapCheckRequest is the body of POST /api/analysis/gap-check.
type GapCheckRequest struct {
	ResumeID     uuid.UUID `json:"resumeId" validate:"required"`
	AnalysisType string    `json:"analysisType" validate:"required"`
	Target       string    `json:"target"`
	// TargetURL optionally points at a job posting to fetch and use as the
	// target for job-description analyses.
	TargetURL string `json:"targetUrl" validate:"omitempty,url"`
	// DomainContext optionally narrows a market analysis to one field.
	DomainContext string `json:"domainContext"`
}
