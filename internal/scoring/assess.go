package scoring

import (
	"context"
	"encoding/json"

	"github.com/aravindh/hirelens/internal/llm"
	"github.com/aravindh/hirelens/internal/prompts"
	"github.com/aravindh/hirelens/internal/schemas"
	"github.com/aravindh/hirelens/internal/types"
)

// Generation parameters for the qualitative assessment. The lite model tier
// is enough for two scores and two sentences.
const (
	assessmentTemperature     = 0.3
	assessmentMaxOutputTokens = 500
)

// Assessment holds the model-produced half of the composite score.
type Assessment struct {
	SkillScore       float64 `json:"skill_score"`
	CompanyScore     float64 `json:"company_score"`
	SkillReasoning   string  `json:"skill_reasoning"`
	CompanyReasoning string  `json:"company_reasoning"`
}

// Assess asks the model to rate the candidate's skills and company history,
// each in [0,1]. skills and company must already be formatted display
// strings (see FormatListField). Transport failures and unparsable
// responses propagate; scores are clamped to [0,1] whatever the model
// returned, and missing reasoning gets a default.
func Assess(ctx context.Context, client llm.Client, skills, company string) (Assessment, error) {
	template := prompts.MustGet("assessment.json", "assess-candidate")
	prompt := prompts.Format(template, map[string]string{
		"Skills":  skills,
		"Company": company,
	})

	raw, err := client.GenerateJSON(ctx, prompt, llm.GenerateOptions{
		Tier:            llm.TierLite,
		Temperature:     assessmentTemperature,
		MaxOutputTokens: assessmentMaxOutputTokens,
	})
	if err != nil {
		return Assessment{}, err
	}

	if err := schemas.ValidateAssessment([]byte(raw)); err != nil {
		return Assessment{}, &AssessmentParseError{Message: "response failed assessment schema", Cause: err}
	}

	var a Assessment
	if err := json.Unmarshal([]byte(raw), &a); err != nil {
		return Assessment{}, &AssessmentParseError{Message: "response is not valid JSON", Cause: err}
	}

	a.SkillScore = clamp01(a.SkillScore)
	a.CompanyScore = clamp01(a.CompanyScore)
	if a.SkillReasoning == "" {
		a.SkillReasoning = types.DefaultReasoning
	}
	if a.CompanyReasoning == "" {
		a.CompanyReasoning = types.DefaultReasoning
	}

	return a, nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
