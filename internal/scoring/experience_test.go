package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExperienceScore(t *testing.T) {
	tests := []struct {
		name     string
		duration string
		want     int
	}{
		{name: "two years", duration: "2 years", want: 2},
		{name: "one year", duration: "1 year", want: 1},
		{name: "half a year", duration: "0.5 years", want: 1},
		{name: "months only", duration: "8 months", want: 1},
		{name: "zero sentinel", duration: "0", want: 0},
		{name: "not available", duration: "N/A", want: 0},
		{name: "empty", duration: "", want: 0},
		{name: "whitespace only", duration: "   ", want: 0},
		{name: "plus suffix", duration: "5+ years", want: 2},
		{name: "fractional above one", duration: "1.5 years", want: 2},
		{name: "zero years", duration: "0 years", want: 0},
		{name: "case insensitive", duration: "3 YEARS", want: 2},
		{name: "embedded in sentence", duration: "over 4 years of backend work", want: 2},
		{name: "year figure beats month mention", duration: "18 months across 2 years", want: 2},
		{name: "no duration signal", duration: "experienced engineer", want: 0},
		{name: "lowercase n/a", duration: "n/a", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExperienceScore(tt.duration))
		})
	}
}
