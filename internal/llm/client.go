package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// GenerateOptions carries the per-call generation parameters.
type GenerateOptions struct {
	Tier            ModelTier
	Temperature     float32
	MaxOutputTokens int32
}

// Client is the capability reference handed to the pipeline stages that call
// the model. Exactly one call per operation; callers decide what to do with
// failures.
type Client interface {
	// GenerateJSON sends a prompt expected to yield strict JSON and returns
	// the response text with Markdown fences stripped.
	GenerateJSON(ctx context.Context, prompt string, opts GenerateOptions) (string, error)
	// Close releases any resources held by the client.
	Close() error
}

// GeminiClient implements Client on the Gemini generateContent API.
type GeminiClient struct {
	client *genai.Client
	config *Config
}

// NewGeminiClient creates a Gemini-backed client. The API key must already
// have been validated by config; this is a guard, not the contract.
func NewGeminiClient(ctx context.Context, config *Config, apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if config == nil {
		config = DefaultConfig()
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{client: client, config: config}, nil
}

// GenerateJSON makes a single generateContent call. HTTP and transport
// failures come back as *UpstreamError, a success response without a text
// payload as *MalformedResponseError.
func (c *GeminiClient) GenerateJSON(ctx context.Context, prompt string, opts GenerateOptions) (string, error) {
	model := c.client.GenerativeModel(c.config.GetModel(opts.Tier))
	model.SetTemperature(opts.Temperature)
	if opts.MaxOutputTokens > 0 {
		model.SetMaxOutputTokens(opts.MaxOutputTokens)
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", wrapUpstream(err)
	}

	text, err := extractTextFromResponse(resp)
	if err != nil {
		return "", err
	}
	return CleanJSONBlock(text), nil
}

// Close releases resources held by the client.
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// wrapUpstream converts SDK errors into the pipeline's upstream taxonomy,
// surfacing the error body's message field when present.
func wrapUpstream(err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		msg := gerr.Message
		if msg == "" {
			msg = strings.TrimSpace(gerr.Body)
		}
		if msg == "" {
			msg = http.StatusText(gerr.Code)
		}
		return &UpstreamError{StatusCode: gerr.Code, Message: msg, Cause: err}
	}
	return &UpstreamError{Message: err.Error(), Cause: err}
}

// extractTextFromResponse pulls the nested text payload out of a
// generateContent response.
func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", &MalformedResponseError{Reason: "no candidates in response"}
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", &MalformedResponseError{Reason: "no content in response"}
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}
	if len(parts) == 0 {
		return "", &MalformedResponseError{Reason: "no text parts in response"}
	}

	return strings.Join(parts, ""), nil
}
