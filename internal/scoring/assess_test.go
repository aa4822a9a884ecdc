package scoring

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

func TestAssess(t *testing.T) {
	t.Run("valid response", func(t *testing.T) {
		client := &fakeClient{response: `{
			"skill_score": 0.9,
			"company_score": 0.8,
			"skill_reasoning": "modern backend stack",
			"company_reasoning": "well-known employers"
		}`}

		a, err := Assess(context.Background(), client, "Go, SQL", "Acme, Globex")
		require.NoError(t, err)
		assert.InDelta(t, 0.9, a.SkillScore, 1e-9)
		assert.InDelta(t, 0.8, a.CompanyScore, 1e-9)
		assert.Equal(t, "modern backend stack", a.SkillReasoning)

		assert.Contains(t, client.prompt, "Go, SQL")
		assert.Contains(t, client.prompt, "Acme, Globex")
		assert.Equal(t, llm.TierLite, client.opts.Tier)
		assert.InDelta(t, 0.3, client.opts.Temperature, 1e-6)
		assert.Equal(t, int32(500), client.opts.MaxOutputTokens)
	})

	t.Run("out-of-range scores are clamped", func(t *testing.T) {
		client := &fakeClient{response: `{"skill_score": 1.4, "company_score": -0.2}`}

		a, err := Assess(context.Background(), client, "Go", "Acme")
		require.NoError(t, err)
		assert.Equal(t, 1.0, a.SkillScore)
		assert.Equal(t, 0.0, a.CompanyScore)
	})

	t.Run("missing reasoning gets default", func(t *testing.T) {
		client := &fakeClient{response: `{"skill_score": 0.5, "company_score": 0.5}`}

		a, err := Assess(context.Background(), client, "Go", "Acme")
		require.NoError(t, err)
		assert.Equal(t, types.DefaultReasoning, a.SkillReasoning)
		assert.Equal(t, types.DefaultReasoning, a.CompanyReasoning)
	})

	t.Run("missing scores default to zero", func(t *testing.T) {
		client := &fakeClient{response: `{"skill_reasoning": "no scores returned"}`}

		a, err := Assess(context.Background(), client, "Go", "Acme")
		require.NoError(t, err)
		assert.Equal(t, 0.0, a.SkillScore)
		assert.Equal(t, 0.0, a.CompanyScore)
		assert.Equal(t, "no scores returned", a.SkillReasoning)
	})

	t.Run("non-numeric score fails the schema", func(t *testing.T) {
		client := &fakeClient{response: `{"skill_score": "high", "company_score": 0.5}`}

		_, err := Assess(context.Background(), client, "Go", "Acme")

		var parseErr *AssessmentParseError
		require.ErrorAs(t, err, &parseErr)
	})

	t.Run("unparsable response propagates as parse error", func(t *testing.T) {
		client := &fakeClient{response: "the candidate looks strong overall"}

		_, err := Assess(context.Background(), client, "Go", "Acme")

		var parseErr *AssessmentParseError
		require.ErrorAs(t, err, &parseErr)
	})

	t.Run("upstream error propagates", func(t *testing.T) {
		upstreamErr := &llm.UpstreamError{StatusCode: 500, Message: "quota exceeded"}
		client := &fakeClient{err: upstreamErr}

		_, err := Assess(context.Background(), client, "Go", "Acme")
		assert.ErrorIs(t, err, upstreamErr)
	})
}

func TestAggregate(t *testing.T) {
	result := Aggregate(Assessment{
		SkillScore:       0.9,
		CompanyScore:     0.8,
		SkillReasoning:   "strong",
		CompanyReasoning: "known",
	}, 2)

	assert.InDelta(t, 3.7, result.TotalScore, 1e-9)
	assert.Equal(t, 2, result.ExperienceScore)
	assert.Equal(t, types.MaxTotalScore, result.MaxScore)
	assert.Equal(t, "strong", result.SkillReasoning)
}

func TestAggregateBounds(t *testing.T) {
	full := Aggregate(Assessment{SkillScore: 1, CompanyScore: 1}, 2)
	assert.Equal(t, types.MaxTotalScore, full.TotalScore)

	empty := Aggregate(Assessment{}, 0)
	assert.Equal(t, 0.0, empty.TotalScore)
}
