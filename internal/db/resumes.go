package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/skillbridge/skillbridge/internal/extraction"
)

// SaveResume stores the extracted text and skill set for an upload and
// returns the record ID
func (db *DB) SaveResume(ctx context.Context, ownerID uuid.UUID, filename, rawText string, skills *extraction.SkillSet) (uuid.UUID, error) {
	skillsJSON, err := json.Marshal(skills)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal skills: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO resumes (owner_id, filename, raw_text, extracted_skills)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		ownerID, filename, rawText, skillsJSON,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save resume: %w", err)
	}
	return id, nil
}

// GetResume retrieves a resume record scoped to its owner. A record owned by
// someone else is indistinguishable from a missing one.
func (db *DB) GetResume(ctx context.Context, resumeID, ownerID uuid.UUID) (*ResumeRecord, error) {
	var record ResumeRecord
	var skillsJSON []byte
	err := db.pool.QueryRow(ctx,
		`SELECT id, owner_id, filename, raw_text, extracted_skills, created_at
		 FROM resumes WHERE id = $1 AND owner_id = $2`,
		resumeID, ownerID,
	).Scan(&record.ID, &record.OwnerID, &record.Filename, &record.RawText, &skillsJSON, &record.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}

	if err := json.Unmarshal(skillsJSON, &record.ExtractedSkills); err != nil {
		return nil, fmt.Errorf("failed to unmarshal skills: %w", err)
	}
	return &record, nil
}
