package scoring

import "github.com/aravindh/hirelens/internal/types"

// Aggregate combines the model assessment with the rule-based experience
// score into the composite result. Experience carries twice the ceiling of
// either model score, so the total is bounded by MaxTotalScore. Pure
// function, never fails.
func Aggregate(assessment Assessment, experienceScore int) types.AssessmentResult {
	return types.AssessmentResult{
		SkillScore:       assessment.SkillScore,
		ExperienceScore:  experienceScore,
		CompanyScore:     assessment.CompanyScore,
		TotalScore:       assessment.SkillScore + float64(experienceScore) + assessment.CompanyScore,
		MaxScore:         types.MaxTotalScore,
		SkillReasoning:   assessment.SkillReasoning,
		CompanyReasoning: assessment.CompanyReasoning,
	}
}
