package scoring

import (
	"regexp"
	"strconv"
	"strings"
)

// yearPattern matches "<number><optional +> year", e.g. "3 years", "1.5+ years".
var yearPattern = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*\+?\s*year`)

// ExperienceScore maps a free-text experience duration to an integer in
// {0, 1, 2}. A numeric year match decides the score by its value; text
// that only mentions months counts as a sub-year duration. The year match
// is checked before the month fallback, so "18 months over 2 years" scores
// by the year figure.
func ExperienceScore(duration string) int {
	trimmed := strings.TrimSpace(duration)
	if trimmed == "" || trimmed == "0" || strings.EqualFold(trimmed, "n/a") {
		return 0
	}

	lower := strings.ToLower(trimmed)
	if match := yearPattern.FindStringSubmatch(trimmed); match != nil {
		years, err := strconv.ParseFloat(match[1], 64)
		if err != nil {
			return 0
		}
		switch {
		case years > 1:
			return 2
		case years > 0:
			return 1
		default:
			return 0
		}
	}

	if strings.Contains(lower, "month") && !strings.Contains(lower, "year") {
		return 1
	}

	return 0
}
