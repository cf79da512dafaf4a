package fetch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectPlatform_LinkedIn(t *testing.T) {
	tests := []struct {
		url      string
		expected Platform
	}{
		{"https://www.linkedin.com/in/jdoe", PlatformLinkedIn},
		{"https://linkedin.com/in/jane-smith-123", PlatformLinkedIn},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			result := DetectPlatform(tt.url)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestDetectPlatform_GitHub(t *testing.T) {
	tests := []struct {
		url      string
		expected Platform
	}{
		{"https://github.com/jdoe", PlatformGitHub},
		{"https://www.github.com/jdoe", PlatformGitHub},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			result := DetectPlatform(tt.url)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestDetectPlatform_Twitter(t *testing.T) {
	tests := []struct {
		url      string
		expected Platform
	}{
		{"https://twitter.com/jdoe", PlatformTwitter},
		{"https://x.com/jdoe", PlatformTwitter},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			result := DetectPlatform(tt.url)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestDetectPlatform_Portfolio(t *testing.T) {
	tests := []struct {
		url      string
		expected Platform
	}{
		{"https://janedoe.dev", PlatformPortfolio},
		{"https://example.com/about", PlatformPortfolio},
		{"not a url at all %%%", PlatformPortfolio},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			result := DetectPlatform(tt.url)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestPlatformContentSelectors_LinkedIn(t *testing.T) {
	selectors := PlatformContentSelectors(PlatformLinkedIn)
	assert.Contains(t, selectors, ".top-card-layout")
	assert.Contains(t, selectors, "main")
}

func TestPlatformContentSelectors_Portfolio(t *testing.T) {
	selectors := PlatformContentSelectors(PlatformPortfolio)
	// Falls back to the generic content selectors
	assert.Contains(t, selectors, "main")
	assert.Contains(t, selectors, "article")
}

func TestPlatformNoiseSelectors_LinkedIn(t *testing.T) {
	selectors := PlatformNoiseSelectors(PlatformLinkedIn)
	// Common selectors
	assert.Contains(t, selectors, ".authwall")
	assert.Contains(t, selectors, ".cookie-banner")
	// LinkedIn-specific
	assert.Contains(t, selectors, ".contextual-sign-in-modal")
}

func TestPlatformNoiseSelectors_Portfolio(t *testing.T) {
	selectors := PlatformNoiseSelectors(PlatformPortfolio)
	assert.Contains(t, selectors, ".authwall")
	assert.Contains(t, selectors, ".cookie-banner")
}
