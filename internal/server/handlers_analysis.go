package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/skillbridge/skillbridge/internal/analysis"
	"github.com/skillbridge/skillbridge/internal/fetch"
	"github.com/skillbridge/skillbridge/internal/server/middleware"
)

// GapCheckResponse is returned by POST /api/analysis/gap-check.
type GapCheckResponse struct {
	ReportID uuid.UUID            `json:"reportId"`
	Report   *analysis.ReportData `json:"report"`
}

// handleGapCheck runs a gap analysis for one of the caller's stored resumes
// and persists the report.
func (s *Server) handleGapCheck(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		errorResponse(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req GapCheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validator.Struct(req); err != nil {
		errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	analysisType := analysis.AnalysisType(req.AnalysisType)
	if !analysisType.Valid() {
		errorResponse(w, http.StatusBadRequest, "analysisType must be one of: domain, job-description, market")
		return
	}

	resume, err := s.store.GetResume(r.Context(), req.ResumeID, userID)
	if err != nil {
		log.Printf("Failed to get resume: %v", err)
		errorResponse(w, http.StatusInternalServerError, "failed to load resume")
		return
	}
	if resume == nil {
		errorResponse(w, HTTPStatus(&ErrNotFound{Resource: "resume"}), "resume not found")
		return
	}

	target := req.Target
	if req.TargetURL != "" && analysisType == analysis.TypeJobDescription {
		fetched, err := fetch.JobPostingText(r.Context(), req.TargetURL)
		if err != nil {
			errorResponse(w, http.StatusBadRequest, "failed to fetch job posting: "+err.Error())
			return
		}
		target = fetched
	}
	if analysisType != analysis.TypeMarket && strings.TrimSpace(target) == "" {
		errorResponse(w, http.StatusBadRequest, "target is required for this analysis type")
		return
	}

	report, err := analysis.Generate(r.Context(), s.aiClient, analysis.Request{
		Skills:        resume.ExtractedSkills,
		Type:          analysisType,
		Target:        target,
		DomainContext: req.DomainContext,
	})
	if err != nil {
		errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	storedTarget := analysis.StoredTarget(analysisType, target)
	reportID, err := s.store.SaveReport(r.Context(), userID, &resume.ID, string(analysisType), storedTarget, report)
	if err != nil {
		log.Printf("Failed to save report: %v", err)
		errorResponse(w, http.StatusInternalServerError, "failed to save report")
		return
	}

	jsonResponse(w, http.StatusCreated, GapCheckResponse{ReportID: reportID, Report: report})
}

// handleGetReport returns one of the caller's reports. A report owned by
// another user is reported as not found.
func (s *Server) handleGetReport(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		errorResponse(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	reportID, err := uuid.Parse(r.PathValue("reportId"))
	if err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid report ID")
		return
	}

	report, err := s.store.GetReport(r.Context(), reportID, userID)
	if err != nil {
		log.Printf("Failed to get report: %v", err)
		errorResponse(w, http.StatusInternalServerError, "failed to load report")
		return
	}
	if report == nil {
		errorResponse(w, http.StatusNotFound, "report not found")
		return
	}

	jsonResponse(w, http.StatusOK, report)
}

// handleHistory lists the caller's report summaries, newest first.
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		errorResponse(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	summaries, err := s.store.ListHistory(r.Context(), userID)
	if err != nil {
		log.Printf("Failed to list history: %v", err)
		errorResponse(w, http.StatusInternalServerError, "failed to load history")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]any{"reports": summaries})
}
