package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/skillbridge/skillbridge/internal/analysis"
)

// SaveReport persists a gap analysis report and returns its ID
func (db *DB) SaveReport(ctx context.Context, ownerID uuid.UUID, resumeID *uuid.UUID, analysisType, target string, report *analysis.ReportData) (uuid.UUID, error) {
	reportJSON, err := json.Marshal(report)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal report: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO reports (owner_id, resume_id, analysis_type, target, report)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		ownerID, resumeID, analysisType, target, reportJSON,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save report: %w", err)
	}
	return id, nil
}

// GetReport retrieves a report scoped to its owner. The ownership predicate
// lives in the query so a foreign report is indistinguishable from a missing
// one.
func (db *DB) GetReport(ctx context.Context, reportID, ownerID uuid.UUID) (*AnalysisReport, error) {
	var report AnalysisReport
	err := db.pool.QueryRow(ctx,
		`SELECT id, owner_id, resume_id, analysis_type, target, report, created_at
		 FROM reports WHERE id = $1 AND owner_id = $2`,
		reportID, ownerID,
	).Scan(&report.ID, &report.OwnerID, &report.ResumeID, &report.AnalysisType, &report.Target, &report.Report, &report.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get report: %w", err)
	}
	return &report, nil
}

// ListHistory retrieves all of a user's report summaries, newest first
func (db *DB) ListHistory(ctx context.Context, ownerID uuid.UUID) ([]ReportSummary, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, analysis_type, target, (report->>'overallMatch')::int, created_at
		 FROM reports WHERE owner_id = $1 ORDER BY created_at DESC`,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	defer rows.Close()

	summaries := []ReportSummary{}
	for rows.Next() {
		var s ReportSummary
		if err := rows.Scan(&s.ID, &s.AnalysisType, &s.Target, &s.OverallMatch, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan report summary: %w", err)
		}
		summaries = append(summaries, s)
	}
	return summaries, nil
}
