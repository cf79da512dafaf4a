package social

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/candidate-signals/internal/types"
)

func TestResolve_LabeledAndBareLinks(t *testing.T) {
	text := `Jane Doe
LinkedIn: https://www.linkedin.com/in/jdoe
Code at github.com/jdoe
`
	resolver := NewResolver(nil)
	links := resolver.Resolve(context.Background(), text, types.SocialLinks{})

	assert.Equal(t, "https://www.linkedin.com/in/jdoe", links.LinkedIn)
	assert.Equal(t, "https://github.com/jdoe", links.GitHub)
}

func TestResolve_PatternCascade(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		linkedin  string
		github    string
		twitter   string
		portfolio string
	}{
		{
			name:     "username only form",
			text:     "GitHub: jdoe",
			github:   "https://github.com/jdoe",
		},
		{
			name:     "bare linkedin domain",
			text:     "find me at linkedin.com/in/jane-doe",
			linkedin: "https://linkedin.com/in/jane-doe",
		},
		{
			name:    "x dot com handle",
			text:    "posts at https://x.com/janedoe",
			twitter: "https://x.com/janedoe",
		},
		{
			name:      "portfolio labeled",
			text:      "Portfolio: https://janedoe.dev",
			portfolio: "https://janedoe.dev",
		},
		{
			name:      "portfolio bare url",
			text:      "see https://janedoe.dev for projects",
			portfolio: "https://janedoe.dev",
		},
		{
			name: "nothing to find",
			text: "plain resume text with no links",
		},
	}

	resolver := NewResolver(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			links := resolver.Resolve(context.Background(), tt.text, types.SocialLinks{})
			assert.Equal(t, tt.linkedin, links.LinkedIn)
			assert.Equal(t, tt.github, links.GitHub)
			assert.Equal(t, tt.twitter, links.Twitter)
			assert.Equal(t, tt.portfolio, links.Portfolio)
		})
	}
}

func TestResolve_ImplausibleLinkRejected(t *testing.T) {
	resolver := NewResolver(nil)
	links := resolver.Resolve(context.Background(), "https://linkedin.com/in/AdI", types.SocialLinks{})
	assert.Empty(t, links.LinkedIn)
}

func TestResolve_RejectedLabeledURLStaysAbsent(t *testing.T) {
	// The username-only form must not capture the scheme of a labeled URL
	// whose username failed validation and rebuild a link around it.
	tests := []struct {
		name string
		text string
	}{
		{name: "labeled linkedin url", text: "LinkedIn: https://www.linkedin.com/in/AdI"},
		{name: "labeled github url", text: "GitHub: https://github.com/AdI"},
		{name: "scheme-less labeled linkedin url", text: "LinkedIn: www.linkedin.com/in/AdI"},
	}

	resolver := NewResolver(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			links := resolver.Resolve(context.Background(), tt.text, types.SocialLinks{})
			assert.Empty(t, links.LinkedIn)
			assert.Empty(t, links.GitHub)
		})
	}
}

func TestResolve_HintFieldsPreserved(t *testing.T) {
	hint := types.SocialLinks{GitHub: "https://github.com/existing"}
	resolver := NewResolver(nil)
	links := resolver.Resolve(context.Background(), "github.com/other", hint)
	assert.Equal(t, "https://github.com/existing", links.GitHub)
}

func TestResolve_PortfolioExcludesPlatformURLs(t *testing.T) {
	text := "https://github.com/jdoe and https://janedoe.dev"
	resolver := NewResolver(nil)
	links := resolver.Resolve(context.Background(), text, types.SocialLinks{})
	assert.Equal(t, "https://github.com/jdoe", links.GitHub)
	assert.Equal(t, "https://janedoe.dev", links.Portfolio)
}

// fakeExtractor implements LinkExtractor for tests.
type fakeExtractor struct {
	links *SuggestedLinks
	err   error
	calls int
}

func (f *fakeExtractor) ExtractLinks(_ context.Context, _ string) (*SuggestedLinks, error) {
	f.calls++
	return f.links, f.err
}

func TestResolve_LLMFillsMissingFields(t *testing.T) {
	extractor := &fakeExtractor{links: &SuggestedLinks{
		LinkedIn:  "https://www.linkedin.com/in/jdoe",
		Portfolio: "https://janedoe.dev",
	}}
	resolver := NewResolver(extractor)

	links := resolver.Resolve(context.Background(), "no links in this text", types.SocialLinks{})
	require.Equal(t, 1, extractor.calls)
	assert.Equal(t, "https://www.linkedin.com/in/jdoe", links.LinkedIn)
	assert.Equal(t, "https://janedoe.dev", links.Portfolio)
	assert.Empty(t, links.GitHub)
}

func TestResolve_LLMNotConsultedWhenCascadeSucceeds(t *testing.T) {
	extractor := &fakeExtractor{}
	resolver := NewResolver(extractor)

	text := `LinkedIn: https://www.linkedin.com/in/jdoe
GitHub: https://github.com/jdoe
Portfolio: https://janedoe.dev`
	resolver.Resolve(context.Background(), text, types.SocialLinks{})
	assert.Zero(t, extractor.calls)
}

func TestResolve_LLMSuggestionsValidated(t *testing.T) {
	extractor := &fakeExtractor{links: &SuggestedLinks{
		LinkedIn: "https://linkedin.com/in/AdI",
		GitHub:   "https://gitlab.com/jdoe",
	}}
	resolver := NewResolver(extractor)

	links := resolver.Resolve(context.Background(), "nothing here", types.SocialLinks{})
	assert.Empty(t, links.LinkedIn)
	assert.Empty(t, links.GitHub)
}

func TestResolve_LLMErrorIsNonFatal(t *testing.T) {
	extractor := &fakeExtractor{err: errors.New("model unavailable")}
	resolver := NewResolver(extractor)

	links := resolver.Resolve(context.Background(), "nothing here", types.SocialLinks{})
	assert.True(t, links.IsEmpty())
}

func TestEnsureScheme(t *testing.T) {
	assert.Equal(t, "https://example.com", ensureScheme("example.com"))
	assert.Equal(t, "http://example.com", ensureScheme("http://example.com"))
	assert.Equal(t, "https://example.com", ensureScheme("https://example.com"))
}
