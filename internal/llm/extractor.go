// Package llm - extractor.go provides the two collaborator call sites used
// by the signal engine: raw-content cleanup and literal link extraction.
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/candidate-signals/internal/prompts"
	"github.com/jonathan/candidate-signals/internal/schemas"
	"github.com/jonathan/candidate-signals/internal/social"
)

// Extractor wraps a Client with the engine's prompt construction and reply
// validation. It satisfies both extraction.Cleaner and social.LinkExtractor.
type Extractor struct {
	client Client
}

// NewExtractor creates an Extractor around an existing client.
func NewExtractor(client Client) *Extractor {
	return &Extractor{client: client}
}

// CleanResumeText asks the collaborator to turn noisy raw content into
// readable resume text. The reply is plain text, not JSON.
func (e *Extractor) CleanResumeText(ctx context.Context, raw string) (string, error) {
	prompt := buildCleanupPrompt(raw)

	text, err := e.client.GenerateContent(ctx, prompt, RoleCleanup)
	if err != nil {
		return "", fmt.Errorf("cleanup request failed: %w", err)
	}
	return strings.TrimSpace(text), nil
}

// ExtractLinks asks the collaborator for identity links that literally
// appear in the text. The JSON reply is schema-validated before parsing; an
// unparseable or invalid reply means "no result", not a failure the caller
// must handle.
func (e *Extractor) ExtractLinks(ctx context.Context, text string) (*social.SuggestedLinks, error) {
	prompt := BuildExtractionPrompt(SocialLinksSchema(), text)

	jsonResp, err := e.client.GenerateJSON(ctx, prompt, RoleExtraction)
	if err != nil {
		return nil, fmt.Errorf("link extraction request failed: %w", err)
	}

	jsonResp = CleanJSONBlock(jsonResp)
	if jsonResp == "" {
		return nil, nil
	}

	if err := schemas.ValidateJSONString(schemas.SocialLinksSchema, jsonResp); err != nil {
		return nil, nil
	}

	var links social.SuggestedLinks
	if err := json.Unmarshal([]byte(jsonResp), &links); err != nil {
		return nil, nil
	}
	return &links, nil
}

// buildCleanupPrompt fills the externalized resume-cleanup template.
func buildCleanupPrompt(raw string) string {
	template := prompts.MustGet("extraction.json", "cleanup")
	return prompts.Format(template, map[string]string{"Content": raw})
}

// ExtractionSchema defines the structure for LLM-based content extraction.
type ExtractionSchema struct {
	Name        string        // Schema name (e.g., "SocialLinks")
	Description string        // System prompt preamble describing the extraction task
	Fields      []SchemaField // Expected output fields
}

// SchemaField defines a single field in the extraction output.
type SchemaField struct {
	Name        string // JSON field name
	Type        string // Type hint: "string", "[]string"
	Description string // Description for the LLM
	Required    bool   // Whether this field is required
}

// BuildExtractionPrompt constructs the LLM prompt from schema and input text.
func BuildExtractionPrompt(schema ExtractionSchema, inputText string) string {
	var sb strings.Builder

	sb.WriteString(schema.Description)
	sb.WriteString("\n\n")

	sb.WriteString("Return ONLY valid JSON matching this exact structure:\n{\n")
	for i, field := range schema.Fields {
		typeHint := field.Type
		if typeHint == "" {
			typeHint = "string"
		}
		requiredHint := ""
		if field.Required {
			requiredHint = " (required)"
		}
		sb.WriteString(fmt.Sprintf("  \"%s\": %s%s", field.Name, typeHint, requiredHint))
		if field.Description != "" {
			sb.WriteString(fmt.Sprintf(" // %s", field.Description))
		}
		if i < len(schema.Fields)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}\n\n")

	sb.WriteString("IMPORTANT:\n")
	sb.WriteString("- Extract information directly from the text, do not invent or summarize.\n")
	sb.WriteString("- Return ONLY the JSON object, no markdown, no explanation, no code blocks.\n\n")

	sb.WriteString("Input text:\n\"\"\"\n")
	sb.WriteString(inputText)
	sb.WriteString("\n\"\"\"\n")

	return sb.String()
}

// SocialLinksSchema returns the extraction schema for identity links.
// The hard constraint is literalness: a link must appear in the input text.
func SocialLinksSchema() ExtractionSchema {
	return ExtractionSchema{
		Name:        "SocialLinks",
		Description: prompts.MustGet("extraction.json", "links_description"),
		Fields: []SchemaField{
			{
				Name:        "linkedin",
				Type:        "\"string\"",
				Description: "LinkedIn profile URL exactly as it appears in the text",
				Required:    false,
			},
			{
				Name:        "github",
				Type:        "\"string\"",
				Description: "GitHub profile URL exactly as it appears in the text",
				Required:    false,
			},
			{
				Name:        "portfolio",
				Type:        "\"string\"",
				Description: "Personal website or portfolio URL exactly as it appears in the text",
				Required:    false,
			},
		},
	}
}
