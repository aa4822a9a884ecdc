package types

import (
	"encoding/json"
	"fmt"
	"time"
)

// fieldAliases maps each canonical stored-field name to the ordered list of
// historical names a record may carry for the same concept. Readers take the
// first present, non-null value; the stored document itself is never mutated.
var fieldAliases = map[string][]string{
	"skills":             {"skills", "skill"},
	"projects":           {"projects", "project"},
	"time_experience":    {"time_experience", "experience_time"},
	"experience_company": {"experience_company", "company"},
	"timestamp":          {"timestamp", "createdAt"},
	"fileName":           {"fileName", "file_name"},
	"github_token":       {"github_token", "githubToken", "githubTokenLower"},
}

// StoredRecord is a CandidateProfile plus persistence metadata, as written to
// and read from the document store. The list-shaped fields are typed `any`
// because historical records hold either a string slice or a single
// comma-delimited string; the field formatter accepts both.
//
// GithubToken is a caller-supplied credential carried through verbatim. The
// pipeline never inspects or validates it.
type StoredRecord struct {
	Skills            any    `json:"skills"`
	Projects          any    `json:"projects"`
	TimeExperience    string `json:"time_experience"`
	ExperienceCompany any    `json:"experience_company"`
	Timestamp         string `json:"timestamp"`
	FileName          string `json:"fileName"`
	GithubToken       string `json:"github_token,omitempty"`
}

// NewStoredRecord builds the canonical document written at extraction time.
func NewStoredRecord(profile CandidateProfile, fileName, githubToken string, createdAt time.Time) StoredRecord {
	return StoredRecord{
		Skills:            profile.Skills,
		Projects:          profile.Projects,
		TimeExperience:    profile.TimeExperience,
		ExperienceCompany: profile.ExperienceCompany,
		Timestamp:         createdAt.UTC().Format(time.RFC3339),
		FileName:          fileName,
		GithubToken:       githubToken,
	}
}

// UnmarshalJSON decodes a stored document, normalizing legacy field names
// into the canonical ones via the alias table.
func (r *StoredRecord) UnmarshalJSON(data []byte) error {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	r.Skills = resolveAny(doc, "skills")
	r.Projects = resolveAny(doc, "projects")
	r.ExperienceCompany = resolveAny(doc, "experience_company")
	r.TimeExperience = resolveString(doc, "time_experience")
	r.Timestamp = resolveString(doc, "timestamp")
	r.FileName = resolveString(doc, "fileName")
	r.GithubToken = resolveString(doc, "github_token")
	return nil
}

// resolveRaw returns the first present, non-null raw value among the
// canonical name and its aliases.
func resolveRaw(doc map[string]json.RawMessage, canonical string) (json.RawMessage, bool) {
	names, ok := fieldAliases[canonical]
	if !ok {
		names = []string{canonical}
	}
	for _, name := range names {
		raw, present := doc[name]
		if present && string(raw) != "null" {
			return raw, true
		}
	}
	return nil, false
}

func resolveAny(doc map[string]json.RawMessage, canonical string) any {
	raw, ok := resolveRaw(doc, canonical)
	if !ok {
		return nil
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	return v
}

func resolveString(doc map[string]json.RawMessage, canonical string) string {
	raw, ok := resolveRaw(doc, canonical)
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	// Lenient fallback for records that stored a non-string scalar,
	// e.g. time_experience written as the number 0.
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return ""
	}
	return fmt.Sprint(v)
}
