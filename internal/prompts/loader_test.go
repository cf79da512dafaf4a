package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_ExtractionPrompts(t *testing.T) {
	cleanup, err := Get("extraction.json", "cleanup")
	require.NoError(t, err)
	assert.Contains(t, cleanup, "{{.Content}}")
	assert.Contains(t, cleanup, "do not invent")

	description, err := Get("extraction.json", "links_description")
	require.NoError(t, err)
	assert.Contains(t, description, "literally appear")
}

func TestGet_MissingKey(t *testing.T) {
	_, err := Get("extraction.json", "no_such_prompt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no_such_prompt")
}

func TestGet_MissingFile(t *testing.T) {
	_, err := Get("missing.json", "cleanup")
	require.Error(t, err)
}

func TestMustGet_PanicsOnMissing(t *testing.T) {
	assert.Panics(t, func() { MustGet("extraction.json", "no_such_prompt") })
}

func TestFormat(t *testing.T) {
	result := Format("before {{.Content}} after", map[string]string{"Content": "middle"})
	assert.Equal(t, "before middle after", result)

	// Unknown placeholders are left alone.
	result = Format("{{.Other}}", map[string]string{"Content": "x"})
	assert.Equal(t, "{{.Other}}", result)
}
