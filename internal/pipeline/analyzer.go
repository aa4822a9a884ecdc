// Package pipeline provides the high-level orchestration for resume analysis:
// document decoding, profile extraction, persistence, and on-demand scoring.
package pipeline

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/aravindh/hirelens/internal/extraction"
	"github.com/aravindh/hirelens/internal/llm"
	"github.com/aravindh/hirelens/internal/profile"
	"github.com/aravindh/hirelens/internal/scoring"
	"github.com/aravindh/hirelens/internal/store"
	"github.com/aravindh/hirelens/internal/types"
)

// ProgressEvent represents a progress update during resume processing.
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
	Content any    `json:"content,omitempty"`
}

// ProgressCallback is called when processing progress occurs.
type ProgressCallback func(event ProgressEvent)

// Processing step names reported through ProgressCallback.
const (
	StepExtractText    = "extract_text"
	StepExtractProfile = "extract_profile"
	StepStoreRecord    = "store_record"
)

// Analyzer wires the pipeline stages together. Each invocation owns its own
// intermediate state; a single Analyzer is safe for concurrent use as long
// as its collaborators are.
type Analyzer struct {
	client    llm.Client
	extractor *extraction.Extractor
	store     store.Store
	now       func() time.Time
}

func NewAnalyzer(client llm.Client, extractor *extraction.Extractor, st store.Store) *Analyzer {
	return &Analyzer{
		client:    client,
		extractor: extractor,
		store:     st,
		now:       time.Now,
	}
}

// ProcessOptions holds per-upload parameters.
type ProcessOptions struct {
	FileName string
	// GithubToken is carried through to the stored record verbatim. The
	// pipeline never inspects or validates it.
	GithubToken string
	OnProgress  ProgressCallback
}

func emitProgress(opts *ProcessOptions, step, message string, content any) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{Step: step, Message: message, Content: content})
	}
}

// ProcessResume runs the ingest half of the pipeline: decode the document,
// extract a candidate profile, and persist it. Returns the stored record
// and its ID.
func (a *Analyzer) ProcessResume(ctx context.Context, data []byte, opts ProcessOptions) (types.StoredRecord, uuid.UUID, error) {
	kind, err := extraction.KindFromFilename(opts.FileName)
	if err != nil {
		return types.StoredRecord{}, uuid.Nil, err
	}

	text, err := a.extractor.ExtractText(ctx, data, kind)
	if err != nil {
		return types.StoredRecord{}, uuid.Nil, err
	}
	emitProgress(&opts, StepExtractText, "Extracted document text", nil)

	extracted, err := profile.Extract(ctx, a.client, text)
	if err != nil {
		return types.StoredRecord{}, uuid.Nil, err
	}
	emitProgress(&opts, StepExtractProfile, "Extracted candidate profile", extracted)

	record := types.NewStoredRecord(extracted, opts.FileName, opts.GithubToken, a.now())
	id, err := a.store.Insert(ctx, record)
	if err != nil {
		return types.StoredRecord{}, uuid.Nil, err
	}
	emitProgress(&opts, StepStoreRecord, "Stored candidate profile", nil)

	log.Info().
		Str("file_name", record.FileName).
		Str("record_id", id.String()).
		Msg("resume processed")

	return record, id, nil
}

// Lookup returns the stored record for a filename, applying the store's
// filename normalization.
func (a *Analyzer) Lookup(ctx context.Context, fileName string) (types.StoredRecord, error) {
	return a.store.FindByFileName(ctx, fileName)
}

// Assess runs the scoring half of the pipeline against a previously stored
// record: rule-based experience scoring plus a model assessment of skills
// and company history, aggregated into the composite result.
func (a *Analyzer) Assess(ctx context.Context, fileName string) (types.AssessmentResult, error) {
	record, err := a.store.FindByFileName(ctx, fileName)
	if err != nil {
		return types.AssessmentResult{}, err
	}

	skills := scoring.FormatListField(record.Skills)
	company := scoring.FormatListField(record.ExperienceCompany)
	experienceScore := scoring.ExperienceScore(record.TimeExperience)

	assessment, err := scoring.Assess(ctx, a.client, skills, company)
	if err != nil {
		return types.AssessmentResult{}, err
	}

	result := scoring.Aggregate(assessment, experienceScore)

	log.Info().
		Str("file_name", record.FileName).
		Float64("total_score", result.TotalScore).
		Msg("candidate assessed")

	return result, nil
}
