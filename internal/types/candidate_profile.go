// Package types provides type definitions for structured data used throughout the HireLens system.
package types

// Placeholder is the sentinel value stored in place of missing list data.
// A profile field that the model could not populate is never absent; it is
// a single-element list containing this value.
const Placeholder = "NA"

// DefaultTimeExperience is the sentinel duration for candidates with no
// recognizable experience.
const DefaultTimeExperience = "0"

// Limits on the extracted profile, matching the extraction prompt.
const (
	MaxSkills   = 5
	MaxProjects = 3
)

// CandidateProfile is the normalized record extracted from a resume.
// After coercion all four fields are populated; absence of real data is
// represented by the placeholder sentinel, never by a nil field.
type CandidateProfile struct {
	Skills            []string `json:"skills"`
	Projects          []string `json:"projects"`
	TimeExperience    string   `json:"time_experience"`
	ExperienceCompany []string `json:"experience_company"`
}

// DefaultProfile returns the all-placeholder profile used when the model
// response cannot be parsed.
func DefaultProfile() CandidateProfile {
	return CandidateProfile{
		Skills:            []string{Placeholder},
		Projects:          []string{Placeholder},
		TimeExperience:    DefaultTimeExperience,
		ExperienceCompany: []string{Placeholder},
	}
}
