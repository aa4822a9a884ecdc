package types

// MaxTotalScore is the fixed ceiling of the composite score: skill (0-1) +
// experience (0-2) + company (0-1).
const MaxTotalScore = 4.0

// DefaultReasoning is substituted when the model returns a score without an
// explanation.
const DefaultReasoning = "No reasoning provided"

// AssessmentResult is the composite suitability score for a candidate.
// TotalScore is always recomputed from its components, never set directly.
type AssessmentResult struct {
	SkillScore       float64 `json:"skill_score" validate:"gte=0,lte=1"`
	ExperienceScore  int     `json:"experience_score" validate:"gte=0,lte=2"`
	CompanyScore     float64 `json:"company_score" validate:"gte=0,lte=1"`
	TotalScore       float64 `json:"total_score" validate:"gte=0,lte=4"`
	MaxScore         float64 `json:"max_score"`
	SkillReasoning   string  `json:"skill_reasoning"`
	CompanyReasoning string  `json:"company_reasoning"`
}
