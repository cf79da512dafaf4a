// Package llm wraps the Gemini API for the two model-backed steps of the
// engine: recovering readable text from damaged documents and extracting
// structured links from resume text.
package llm

// ModelRole names the job a model is picked for. Roles resolve to concrete
// model names through Config so call sites never hard-code one.
type ModelRole string

const (
	// RoleCleanup recovers plain text from partially unreadable input.
	RoleCleanup ModelRole = "cleanup"
	// RoleExtraction pulls structured data out of already-readable text.
	RoleExtraction ModelRole = "extraction"
)

// Config maps roles to Gemini model names.
type Config struct {
	Models map[ModelRole]string
}

// DefaultConfig assigns the flash-lite model to both roles. Both jobs are
// extraction-grade work and do not need a reasoning-tier model.
func DefaultConfig() *Config {
	return &Config{
		Models: map[ModelRole]string{
			RoleCleanup:    "gemini-2.5-flash-lite",
			RoleExtraction: "gemini-2.5-flash-lite",
		},
	}
}

// ModelFor resolves the model name for a role. A sparse config falls back
// to the extraction model, then the cleanup model, then "".
func (c *Config) ModelFor(role ModelRole) string {
	if model, ok := c.Models[role]; ok {
		return model
	}
	if model, ok := c.Models[RoleExtraction]; ok {
		return model
	}
	if model, ok := c.Models[RoleCleanup]; ok {
		return model
	}
	return ""
}

// WithModel returns a copy of the config with one role overridden.
func (c *Config) WithModel(role ModelRole, model string) *Config {
	models := make(map[ModelRole]string, len(c.Models)+1)
	for k, v := range c.Models {
		models[k] = v
	}
	models[role] = model
	return &Config{Models: models}
}
