package server

import (
	"errors"
	"log"
	"net/http"
	"os"

	"github.com/google/uuid"

	"github.com/skillbridge/skillbridge/internal/extraction"
	"github.com/skillbridge/skillbridge/internal/ingestion"
	"github.com/skillbridge/skillbridge/internal/server/middleware"
)

// ResumeUploadResponse is returned by POST /api/resume/upload.
type ResumeUploadResponse struct {
	ResumeID        uuid.UUID            `json:"resumeId"`
	ExtractedSkills *extraction.SkillSet `json:"extractedSkills"`
}

// multipartOverhead covers boundaries and form fields beyond the file itself.
const multipartOverhead = 1 << 20

// handleResumeUpload accepts a resume file, extracts its text, runs AI skill
// extraction, and persists the result. The uploaded file is transient: it is
// removed before the handler returns on every path.
func (s *Server) handleResumeUpload(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		errorResponse(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, ingestion.MaxFileSize+multipartOverhead)
	if err := r.ParseMultipartForm(ingestion.MaxFileSize + multipartOverhead); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			errorResponse(w, http.StatusBadRequest, "file exceeds the 5 MiB limit")
			return
		}
		errorResponse(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile(ingestion.FieldName)
	if err != nil {
		errorResponse(w, http.StatusBadRequest, "missing file field: "+ingestion.FieldName)
		return
	}
	defer file.Close()

	if err := ingestion.ValidateUpload(header.Filename, header.Header.Get("Content-Type"), header.Size); err != nil {
		errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	path, err := ingestion.Store(s.uploadDir, userID, header.Filename, file)
	if err != nil {
		log.Printf("Failed to store upload: %v", err)
		errorResponse(w, http.StatusInternalServerError, "failed to store upload")
		return
	}
	defer func() {
		if err := os.Remove(path); err != nil {
			log.Printf("Failed to remove uploaded file %s: %v", path, err)
		}
	}()

	text, err := ingestion.ExtractText(path)
	if err != nil {
		errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	skills, err := extraction.ExtractSkills(r.Context(), s.aiClient, text)
	if err != nil {
		errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	resumeID, err := s.store.SaveResume(r.Context(), userID, header.Filename, text, skills)
	if err != nil {
		log.Printf("Failed to save resume: %v", err)
		errorResponse(w, http.StatusInternalServerError, "failed to save resume")
		return
	}

	jsonResponse(w, http.StatusCreated, ResumeUploadResponse{
		ResumeID:        resumeID,
		ExtractedSkills: skills,
	})
}
