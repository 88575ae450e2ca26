package db

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/skillbridge/skillbridge/internal/extraction"
)

// User represents an account
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never serialize to JSON
	CreatedAt    time.Time `json:"createdAt"`
}

// ResumeRecord is the persisted outcome of one resume upload. The file itself
// is transient; the filename, extracted text, and skills survive.
type ResumeRecord struct {
	ID              uuid.UUID            `json:"id"`
	OwnerID         uuid.UUID            `json:"ownerId"`
	Filename        string               `json:"filename"`
	RawText         string               `json:"rawText"`
	ExtractedSkills *extraction.SkillSet `json:"extractedSkills"`
	CreatedAt       time.Time            `json:"createdAt"`
}

// AnalysisReport is one persisted gap analysis.
type AnalysisReport struct {
	ID           uuid.UUID       `json:"id"`
	OwnerID      uuid.UUID       `json:"ownerId"`
	ResumeID     *uuid.UUID      `json:"resumeId,omitempty"`
	AnalysisType string          `json:"analysisType"`
	Target       string          `json:"target"`
	Report       json.RawMessage `json:"report"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// ReportSummary is the history projection: metadata plus headline score,
// without the full report body.
type ReportSummary struct {
	ID           uuid.UUID `json:"id"`
	AnalysisType string    `json:"analysisType"`
	Target       string    `json:"target"`
	OverallMatch int       `json:"overallMatch"`
	CreatedAt    time.Time `json:"createdAt"`
}
