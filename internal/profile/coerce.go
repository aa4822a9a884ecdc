package profile

import (
	"strings"

	"github.com/aravindh/hirelens/internal/types"
)

// Coerce guarantees every CandidateProfile field is populated. Missing or
// empty fields get the placeholder sentinel, list fields are capped at their
// maximum length, and blank entries are dropped. Pure function, never fails.
func Coerce(p types.CandidateProfile) types.CandidateProfile {
	p.Skills = coerceList(p.Skills, types.MaxSkills)
	p.Projects = coerceList(p.Projects, types.MaxProjects)
	p.ExperienceCompany = coerceList(p.ExperienceCompany, 0)

	p.TimeExperience = strings.TrimSpace(p.TimeExperience)
	if p.TimeExperience == "" {
		p.TimeExperience = types.DefaultTimeExperience
	}

	return p
}

// coerceList drops blank entries, substitutes the sentinel when nothing
// remains, and truncates to max entries (0 means unbounded).
func coerceList(values []string, max int) []string {
	cleaned := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		cleaned = append(cleaned, v)
	}

	if len(cleaned) == 0 {
		return []string{types.Placeholder}
	}
	if max > 0 && len(cleaned) > max {
		cleaned = cleaned[:max]
	}
	return cleaned
}
