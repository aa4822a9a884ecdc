// Package profile maps raw resume text to a structured candidate profile
// through a single model call.
package profile

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/aravindh/hirelens/internal/llm"
	"github.com/aravindh/hirelens/internal/prompts"
	"github.com/aravindh/hirelens/internal/schemas"
	"github.com/aravindh/hirelens/internal/types"
)

// Generation parameters for profile extraction. Low temperature keeps the
// output close to the requested strict-JSON shape.
const (
	extractionTemperature     = 0.2
	extractionMaxOutputTokens = 2048
)

// Extract asks the model to pull a CandidateProfile out of resume text.
// Transport and response-shape failures propagate; a response that reaches
// us but does not parse as a profile falls back to the all-sentinel default,
// since a subjective extraction call is best-effort. The result always goes
// through Coerce.
func Extract(ctx context.Context, client llm.Client, resumeText string) (types.CandidateProfile, error) {
	template := prompts.MustGet("extraction.json", "extract-profile")
	prompt := prompts.Format(template, map[string]string{"ResumeText": resumeText})

	raw, err := client.GenerateJSON(ctx, prompt, llm.GenerateOptions{
		Tier:            llm.TierStandard,
		Temperature:     extractionTemperature,
		MaxOutputTokens: extractionMaxOutputTokens,
	})
	if err != nil {
		return types.CandidateProfile{}, err
	}

	return Coerce(parseProfile(raw)), nil
}

// parseProfile decodes the model's JSON text, recovering with the default
// profile when the text is not a valid profile object.
func parseProfile(raw string) types.CandidateProfile {
	if err := schemas.ValidateCandidateProfile([]byte(raw)); err != nil {
		log.Warn().Err(err).Msg("model output failed profile schema, using default profile")
		return types.DefaultProfile()
	}

	var p types.CandidateProfile
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		log.Warn().Err(err).Msg("failed to decode profile JSON, using default profile")
		return types.DefaultProfile()
	}
	return p
}
