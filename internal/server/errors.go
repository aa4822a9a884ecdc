package server

import (
	"errors"
	"net/http"

	"github.com/aravindh/hirelens/internal/extraction"
	"github.com/aravindh/hirelens/internal/llm"
	"github.com/aravindh/hirelens/internal/scoring"
	"github.com/aravindh/hirelens/internal/store"
)

// Pipeline stages reported in error responses, so a client can tell a bad
// upload from a failing model call.
const (
	StageExtraction = "extraction"
	StageModel      = "model"
	StageStorage    = "storage"
	StageAssessment = "assessment"
	StageRequest    = "request"
)

// HTTPStatus maps a pipeline error to the response status code.
func HTTPStatus(err error) int {
	var (
		emptyContent *extraction.EmptyContentError
		decodeErr    *extraction.DecodeError
		notFound     *store.NotFoundError
		upstream     *llm.UpstreamError
		malformed    *llm.MalformedResponseError
		parseErr     *scoring.AssessmentParseError
	)

	switch {
	case errors.As(err, &emptyContent), errors.As(err, &decodeErr):
		return http.StatusUnprocessableEntity
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &upstream), errors.As(err, &malformed), errors.As(err, &parseErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Stage names the pipeline stage an error came from.
func Stage(err error) string {
	var (
		emptyContent *extraction.EmptyContentError
		decodeErr    *extraction.DecodeError
		notFound     *store.NotFoundError
		upstream     *llm.UpstreamError
		malformed    *llm.MalformedResponseError
		parseErr     *scoring.AssessmentParseError
	)

	switch {
	case errors.As(err, &emptyContent), errors.As(err, &decodeErr):
		return StageExtraction
	case errors.As(err, &notFound):
		return StageStorage
	case errors.As(err, &parseErr):
		return StageAssessment
	case errors.As(err, &upstream), errors.As(err, &malformed):
		return StageModel
	default:
		return StageRequest
	}
}
