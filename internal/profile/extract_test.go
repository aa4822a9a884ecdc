package profile

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aravindh/hirelens/internal/llm"
	"github.com/aravindh/hirelens/internal/types"
)

type fakeClient struct {
	response string
	err      error
	prompt   string
	opts     llm.GenerateOptions
}

func (c *fakeClient) GenerateJSON(_ context.Context, prompt string, opts llm.GenerateOptions) (string, error) {
	c.prompt = prompt
	c.opts = opts
	return c.response, c.err
}

func (c *fakeClient) Close() error { return nil }

func TestExtract(t *testing.T) {
	t.Run("valid response", func(t *testing.T) {
		client := &fakeClient{response: `{
			"skills": ["Go", "SQL", "Docker"],
			"projects": ["Billing service"],
			"time_experience": "3 years",
			"experience_company": ["Acme Corp"]
		}`}

		p, err := Extract(context.Background(), client, "resume text here")
		require.NoError(t, err)
		assert.Equal(t, []string{"Go", "SQL", "Docker"}, p.Skills)
		assert.Equal(t, []string{"Billing service"}, p.Projects)
		assert.Equal(t, "3 years", p.TimeExperience)
		assert.Equal(t, []string{"Acme Corp"}, p.ExperienceCompany)

		assert.Contains(t, client.prompt, "resume text here")
		assert.Equal(t, llm.TierStandard, client.opts.Tier)
		assert.InDelta(t, 0.2, client.opts.Temperature, 1e-6)
		assert.Equal(t, int32(2048), client.opts.MaxOutputTokens)
	})

	t.Run("unparsable response falls back to default profile", func(t *testing.T) {
		client := &fakeClient{response: "I could not find a resume in this document."}

		p, err := Extract(context.Background(), client, "resume text")
		require.NoError(t, err)
		assert.Equal(t, types.DefaultProfile(), p)
	})

	t.Run("missing field falls back to default profile", func(t *testing.T) {
		client := &fakeClient{response: `{"skills": ["Go"]}`}

		p, err := Extract(context.Background(), client, "resume text")
		require.NoError(t, err)
		assert.Equal(t, types.DefaultProfile(), p)
	})

	t.Run("transport error propagates", func(t *testing.T) {
		upstreamErr := &llm.UpstreamError{StatusCode: 429, Message: "quota exceeded"}
		client := &fakeClient{err: upstreamErr}

		_, err := Extract(context.Background(), client, "resume text")
		assert.ErrorIs(t, err, upstreamErr)
	})
}

func TestCoerce(t *testing.T) {
	tests := []struct {
		name  string
		input types.CandidateProfile
		want  types.CandidateProfile
	}{
		{
			name:  "empty profile becomes all sentinels",
			input: types.CandidateProfile{},
			want:  types.DefaultProfile(),
		},
		{
			name: "blank entries are dropped",
			input: types.CandidateProfile{
				Skills:            []string{"Go", "  ", ""},
				Projects:          []string{""},
				TimeExperience:    "  2 years ",
				ExperienceCompany: []string{" Acme "},
			},
			want: types.CandidateProfile{
				Skills:            []string{"Go"},
				Projects:          []string{types.Placeholder},
				TimeExperience:    "2 years",
				ExperienceCompany: []string{"Acme"},
			},
		},
		{
			name: "lists truncated to their caps",
			input: types.CandidateProfile{
				Skills:            []string{"a", "b", "c", "d", "e", "f", "g"},
				Projects:          []string{"p1", "p2", "p3", "p4"},
				TimeExperience:    "5 years",
				ExperienceCompany: []string{"c1", "c2", "c3", "c4", "c5", "c6"},
			},
			want: types.CandidateProfile{
				Skills:            []string{"a", "b", "c", "d", "e"},
				Projects:          []string{"p1", "p2", "p3"},
				TimeExperience:    "5 years",
				ExperienceCompany: []string{"c1", "c2", "c3", "c4", "c5", "c6"},
			},
		},
		{
			name: "already valid profile is unchanged",
			input: types.CandidateProfile{
				Skills:            []string{"Go"},
				Projects:          []string{"API"},
				TimeExperience:    "1 year",
				ExperienceCompany: []string{"Acme"},
			},
			want: types.CandidateProfile{
				Skills:            []string{"Go"},
				Projects:          []string{"API"},
				TimeExperience:    "1 year",
				ExperienceCompany: []string{"Acme"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Coerce(tt.input))
		})
	}
}
