package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateJSONString_SocialLinks(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		valid   bool
	}{
		{
			name:    "all fields",
			payload: `{"linkedin":"https://linkedin.com/in/jdoe","github":"https://github.com/jdoe","portfolio":"https://janedoe.dev"}`,
			valid:   true,
		},
		{
			name:    "subset of fields",
			payload: `{"github":"https://github.com/jdoe"}`,
			valid:   true,
		},
		{
			name:    "empty object",
			payload: `{}`,
			valid:   true,
		},
		{
			name:    "unknown key rejected",
			payload: `{"github":"https://github.com/jdoe","twitter":"https://x.com/jdoe"}`,
			valid:   false,
		},
		{
			name:    "wrong type rejected",
			payload: `{"github":42}`,
			valid:   false,
		},
		{
			name:    "array rejected",
			payload: `["https://github.com/jdoe"]`,
			valid:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateJSONString(SocialLinksSchema, tt.payload)
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.NotEmpty(t, validationErr.Errors)
		})
	}
}

func TestValidateJSONString_MalformedDocument(t *testing.T) {
	err := ValidateJSONString(SocialLinksSchema, `{not json`)
	var loadErr *SchemaLoadError
	require.ErrorAs(t, err, &loadErr)
}

func TestValidationError_Message(t *testing.T) {
	err := &ValidationError{Errors: []FieldError{{Field: "github", Message: "Invalid type"}}}
	assert.Contains(t, err.Error(), "github")
	assert.Contains(t, err.Error(), "Invalid type")
}
