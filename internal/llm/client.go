package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Temperature for all generation calls. The engine wants reproducible
// extraction, not prose.
const generationTemperature = 0.1

// Client is the seam the rest of the engine talks to the model through.
// Tests substitute stubs so no pipeline test needs an API key.
type Client interface {
	// GenerateContent runs a free-text prompt under the given role's model.
	GenerateContent(ctx context.Context, prompt string, role ModelRole) (string, error)
	// GenerateJSON runs a prompt in JSON response mode and returns the reply
	// with any markdown wrapping already stripped.
	GenerateJSON(ctx context.Context, prompt string, role ModelRole) (string, error)
	// ModelFor reports which model a role resolves to.
	ModelFor(role ModelRole) string
	// Close releases the underlying API connection.
	Close() error
}

// GeminiClient implements Client against the Gemini API.
type GeminiClient struct {
	api    *genai.Client
	config *Config
}

// NewClient builds a Gemini-backed client. A nil config gets the defaults.
func NewClient(ctx context.Context, config *Config, apiKey string) (Client, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	api, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}
	return &GeminiClient{api: api, config: config}, nil
}

func (c *GeminiClient) generate(ctx context.Context, prompt string, role ModelRole, jsonMode bool) (string, error) {
	name := c.config.ModelFor(role)
	if name == "" {
		return "", fmt.Errorf("no model configured for role %q", role)
	}

	model := c.api.GenerativeModel(name)
	model.SetTemperature(generationTemperature)
	if jsonMode {
		model.ResponseMIMEType = "application/json"
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("generating with %s: %w", name, err)
	}
	return joinTextParts(resp)
}

// GenerateContent runs a free-text prompt under the given role's model.
func (c *GeminiClient) GenerateContent(ctx context.Context, prompt string, role ModelRole) (string, error) {
	return c.generate(ctx, prompt, role, false)
}

// GenerateJSON runs a prompt in JSON response mode. JSON mode is a request,
// not a guarantee, so the reply still goes through CleanJSONBlock.
func (c *GeminiClient) GenerateJSON(ctx context.Context, prompt string, role ModelRole) (string, error) {
	text, err := c.generate(ctx, prompt, role, true)
	if err != nil {
		return "", err
	}
	return CleanJSONBlock(text), nil
}

// ModelFor reports which model a role resolves to.
func (c *GeminiClient) ModelFor(role ModelRole) string {
	return c.config.ModelFor(role)
}

// Close releases the underlying API connection.
func (c *GeminiClient) Close() error {
	if c.api != nil {
		return c.api.Close()
	}
	return nil
}

// joinTextParts flattens a Gemini response to plain text. Non-text parts
// are skipped; an all-empty response is an error.
func joinTextParts(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("empty response: no candidates")
	}
	content := resp.Candidates[0].Content
	if content == nil {
		return "", fmt.Errorf("empty response: no content")
	}

	var b strings.Builder
	for _, part := range content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("empty response: no text parts")
	}
	return b.String(), nil
}
