package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/aravindh/hirelens/internal/pipeline"
	"github.com/aravindh/hirelens/internal/scoring"
	"github.com/aravindh/hirelens/internal/types"
)

// maxUploadSize bounds resume uploads; resumes are small documents.
const maxUploadSize = 10 << 20

var validate = validator.New()

type errorResponse struct {
	Stage string `json:"stage"`
	Error string `json:"error"`
}

type uploadRequest struct {
	FileName    string `validate:"required,max=255"`
	GithubToken string `validate:"omitempty,max=255"`
}

type uploadResponse struct {
	ID     string             `json:"id"`
	Record types.StoredRecord `json:"record"`
}

type formattedFields struct {
	Skills            string `json:"skills"`
	Projects          string `json:"projects"`
	TimeExperience    string `json:"time_experience"`
	ExperienceCompany string `json:"experience_company"`
}

type resumeResponse struct {
	Record    types.StoredRecord `json:"record"`
	Formatted formattedFields    `json:"formatted"`
}

// handleUploadResume accepts a multipart resume upload, runs extraction and
// profile processing, and stores the result.
func (s *Server) handleUploadResume(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeError(w, http.StatusBadRequest, StageRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, StageRequest, "missing file field")
		return
	}
	defer file.Close()

	req := uploadRequest{
		FileName:    header.Filename,
		GithubToken: r.FormValue("github_token"),
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, StageRequest, err.Error())
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, maxUploadSize))
	if err != nil {
		writeError(w, http.StatusBadRequest, StageRequest, "failed to read uploaded file")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), uploadTimeout)
	defer cancel()

	record, id, err := s.service.ProcessResume(ctx, data, pipeline.ProcessOptions{
		FileName:    req.FileName,
		GithubToken: req.GithubToken,
	})
	if err != nil {
		writePipelineError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, uploadResponse{ID: id.String(), Record: record})
}

// handleGetResume returns the stored record for a filename, with the list
// fields additionally rendered as display strings.
func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	ctx, cancel := context.WithTimeout(r.Context(), lookupTimeout)
	defer cancel()

	record, err := s.service.Lookup(ctx, name)
	if err != nil {
		writePipelineError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resumeResponse{
		Record: record,
		Formatted: formattedFields{
			Skills:            scoring.FormatListField(record.Skills),
			Projects:          scoring.FormatListField(record.Projects),
			TimeExperience:    record.TimeExperience,
			ExperienceCompany: scoring.FormatListField(record.ExperienceCompany),
		},
	})
}

// handleAssessResume runs the scoring pipeline against a stored record.
func (s *Server) handleAssessResume(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	ctx, cancel := context.WithTimeout(r.Context(), assessmentTimeout)
	defer cancel()

	result, err := s.service.Assess(ctx, name)
	if err != nil {
		writePipelineError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writePipelineError(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Msg("request failed")
	} else {
		log.Warn().Err(err).Msg("request rejected")
	}
	writeError(w, status, Stage(err), err.Error())
}

func writeError(w http.ResponseWriter, status int, stage, message string) {
	writeJSON(w, status, errorResponse{Stage: stage, Error: message})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}
