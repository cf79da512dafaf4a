package social

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateLinkedInURL(t *testing.T) {
	tests := []struct {
		name  string
		url   string
		valid bool
	}{
		{name: "standard profile", url: "https://www.linkedin.com/in/jdoe", valid: true},
		{name: "no www", url: "https://linkedin.com/in/jane-doe-123", valid: true},
		{name: "synthetic three-char username", url: "https://linkedin.com/in/AdI", valid: false},
		{name: "single char username", url: "https://linkedin.com/in/j", valid: false},
		{name: "wrong host", url: "https://linkedout.example.com/in/jdoe", valid: false},
		{name: "missing scheme", url: "linkedin.com/in/jdoe", valid: false},
		{name: "ftp scheme", url: "ftp://linkedin.com/in/jdoe", valid: false},
		{name: "empty", url: "", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidateLinkedInURL(tt.url))
		})
	}
}

func TestValidateGitHubURL(t *testing.T) {
	tests := []struct {
		name  string
		url   string
		valid bool
	}{
		{name: "standard profile", url: "https://github.com/jdoe", valid: true},
		{name: "www prefix", url: "https://www.github.com/octocat", valid: true},
		{name: "synthetic username", url: "https://github.com/xYz", valid: false},
		{name: "empty path", url: "https://github.com/", valid: false},
		{name: "wrong host", url: "https://gitlab.com/jdoe", valid: false},
		{name: "overlong username", url: "https://github.com/" + strings.Repeat("a", 60), valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidateGitHubURL(tt.url))
		})
	}
}

func TestValidatePortfolioURL(t *testing.T) {
	tests := []struct {
		name  string
		url   string
		valid bool
	}{
		{name: "personal site", url: "https://janedoe.dev", valid: true},
		{name: "www site", url: "https://www.janedoe.com", valid: true},
		{name: "host too short", url: "https://a.b", valid: false},
		{name: "no tld", url: "https://localhost", valid: false},
		{name: "generated host shape", url: "https://ab-cd-ef.com", valid: false},
		{name: "not a url", url: "not a url", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidatePortfolioURL(tt.url))
		})
	}
}

func TestUsernameFromGitHubURL(t *testing.T) {
	assert.Equal(t, "jdoe", UsernameFromGitHubURL("https://github.com/jdoe"))
	assert.Equal(t, "jdoe", UsernameFromGitHubURL("https://github.com/jdoe/repo"))
	assert.Empty(t, UsernameFromGitHubURL("https://github.com/"))
	assert.Empty(t, UsernameFromGitHubURL("github.com/jdoe"))
}
