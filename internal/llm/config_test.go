package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, "gemini-2.5-flash-lite", config.ModelFor(RoleCleanup))
	assert.Equal(t, "gemini-2.5-flash-lite", config.ModelFor(RoleExtraction))
}

func TestModelFor_Fallback(t *testing.T) {
	config := &Config{
		Models: map[ModelRole]string{
			RoleCleanup: "fallback-model",
		},
	}

	assert.Equal(t, "fallback-model", config.ModelFor("unknown"))
}

func TestModelFor_EmptyConfig(t *testing.T) {
	config := &Config{Models: map[ModelRole]string{}}

	assert.Equal(t, "", config.ModelFor(RoleExtraction))
}

func TestWithModel(t *testing.T) {
	config := DefaultConfig()
	custom := config.WithModel(RoleExtraction, "custom-model")

	// Original is unchanged.
	assert.Equal(t, "gemini-2.5-flash-lite", config.ModelFor(RoleExtraction))

	assert.Equal(t, "custom-model", custom.ModelFor(RoleExtraction))
	assert.Equal(t, "gemini-2.5-flash-lite", custom.ModelFor(RoleCleanup))
}
