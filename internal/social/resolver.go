// Package social extracts and validates candidate-asserted identity links
// from resume text. Every accepted link passed platform plausibility
// validation; a field the resolver cannot fill stays empty rather than
// being guessed.
package social

import (
	"context"
	"log"
	"regexp"
	"strings"

	"github.com/jonathan/candidate-signals/internal/types"
)

// maxLLMPayload caps the text sent to the LLM link extractor.
const maxLLMPayload = 3000

// LinkExtractor is the optional LLM collaborator consulted only when the
// pattern cascade finds nothing. A nil extractor skips the feature.
type LinkExtractor interface {
	// ExtractLinks asks for links that literally appear in the text.
	// A nil result means the collaborator found none.
	ExtractLinks(ctx context.Context, text string) (*SuggestedLinks, error)
}

// SuggestedLinks is the structured reply from the LLM link extractor.
type SuggestedLinks struct {
	LinkedIn  string `json:"linkedin,omitempty"`
	GitHub    string `json:"github,omitempty"`
	Portfolio string `json:"portfolio,omitempty"`
}

// Resolver fills SocialLinks fields from resume text.
type Resolver struct {
	extractor LinkExtractor
}

// NewResolver creates a Resolver. extractor may be nil.
func NewResolver(extractor LinkExtractor) *Resolver {
	return &Resolver{extractor: extractor}
}

// linkedinPatterns is the cascade for the professional-network link, tried
// in order: labeled form, direct URL, bare domain, "platform: username".
var linkedinPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)linkedin:?\s*(https?://(?:www\.)?linkedin\.com/in/[A-Za-z0-9\-_%.]+)`),
	regexp.MustCompile(`(https?://(?:www\.)?linkedin\.com/in/[A-Za-z0-9\-_%.]+)`),
	regexp.MustCompile(`(?i)\b((?:www\.)?linkedin\.com/in/[A-Za-z0-9\-_%.]+)`),
	regexp.MustCompile(`(?i)linkedin:?\s+([A-Za-z][A-Za-z0-9\-_.]{1,49})\b`),
}

var githubPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)github:?\s*(https?://(?:www\.)?github\.com/[A-Za-z0-9\-_.]+)`),
	regexp.MustCompile(`(https?://(?:www\.)?github\.com/[A-Za-z0-9\-_.]+)`),
	regexp.MustCompile(`(?i)\b((?:www\.)?github\.com/[A-Za-z0-9\-_.]+)`),
	regexp.MustCompile(`(?i)github:?\s+([A-Za-z][A-Za-z0-9\-_.]{1,49})\b`),
}

var twitterPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(https?://(?:www\.)?(?:twitter|x)\.com/[A-Za-z0-9_]+)`),
	regexp.MustCompile(`(?i)\b((?:www\.)?(?:twitter|x)\.com/[A-Za-z0-9_]+)`),
}

// portfolioPatterns matches labeled and bare URLs for a personal site.
// URLs already claimed by linkedin/github/twitter are excluded afterwards.
var portfolioPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:portfolio|website|site|blog):?\s*(https?://[^\s<>"]+)`),
	regexp.MustCompile(`(https?://[^\s<>"]+)`),
}

// Resolve fills only the fields the segmenter left empty in hint and
// returns the combined result. Pattern cascades run first; the LLM
// extractor is a last resort, and its suggestions face the same
// plausibility validation as everything else.
func (r *Resolver) Resolve(ctx context.Context, text string, hint types.SocialLinks) types.SocialLinks {
	links := hint

	if links.LinkedIn == "" {
		links.LinkedIn = resolveLinkedIn(text)
	}
	if links.GitHub == "" {
		links.GitHub = resolveGitHub(text)
	}
	if links.Twitter == "" {
		links.Twitter = resolveTwitter(text)
	}
	if links.Portfolio == "" {
		links.Portfolio = resolvePortfolio(text, links)
	}

	if r.extractor != nil && (links.LinkedIn == "" || links.GitHub == "" || links.Portfolio == "") {
		r.fillFromLLM(ctx, text, &links)
	}

	return links
}

// resolveLinkedIn applies the linkedin cascade and validates the winner.
func resolveLinkedIn(text string) string {
	for i, pattern := range linkedinPatterns {
		var candidate string
		// The username-only form needs a URL built around its token.
		if i == len(linkedinPatterns)-1 {
			token := usernameFormToken(pattern, text)
			if token == "" {
				continue
			}
			candidate = "https://www.linkedin.com/in/" + token
		} else {
			match := pattern.FindStringSubmatch(text)
			if match == nil {
				continue
			}
			candidate = ensureScheme(match[1])
		}
		if ValidateLinkedInURL(candidate) {
			return candidate
		}
	}
	return ""
}

// resolveGitHub applies the github cascade and validates the winner.
func resolveGitHub(text string) string {
	for i, pattern := range githubPatterns {
		var candidate string
		if i == len(githubPatterns)-1 {
			token := usernameFormToken(pattern, text)
			if token == "" {
				continue
			}
			candidate = "https://github.com/" + token
		} else {
			match := pattern.FindStringSubmatch(text)
			if match == nil {
				continue
			}
			candidate = ensureScheme(match[1])
		}
		if ValidateGitHubURL(candidate) {
			return candidate
		}
	}
	return ""
}

// usernameFormToken extracts the capture from a "platform: username"
// pattern, refusing tokens that are really the start of a URL. A labeled
// URL whose username failed validation must stay absent, not be rebuilt
// into a link around its scheme.
func usernameFormToken(pattern *regexp.Regexp, text string) string {
	loc := pattern.FindStringSubmatchIndex(text)
	if loc == nil {
		return ""
	}
	token := text[loc[2]:loc[3]]
	switch strings.ToLower(token) {
	case "http", "https", "www":
		return ""
	}
	// A token continuing with a scheme or path is a URL fragment, not a
	// bare username.
	rest := text[loc[3]:]
	if strings.HasPrefix(rest, "://") || strings.HasPrefix(rest, "/") {
		return ""
	}
	return token
}

// resolveTwitter applies the twitter cascade.
func resolveTwitter(text string) string {
	for _, pattern := range twitterPatterns {
		if match := pattern.FindStringSubmatch(text); match != nil {
			return ensureScheme(match[1])
		}
	}
	return ""
}

// resolvePortfolio picks the first URL not already claimed by another
// platform and validates it as a personal site.
func resolvePortfolio(text string, claimed types.SocialLinks) string {
	for _, pattern := range portfolioPatterns {
		for _, match := range pattern.FindAllStringSubmatch(text, -1) {
			candidate := ensureScheme(strings.TrimRight(match[1], ".,;)"))
			if isPlatformURL(candidate) {
				continue
			}
			if candidate == claimed.LinkedIn || candidate == claimed.GitHub || candidate == claimed.Twitter {
				continue
			}
			if ValidatePortfolioURL(candidate) {
				return candidate
			}
		}
	}
	return ""
}

// fillFromLLM consults the LLM extractor for still-empty fields. Suggestions
// failing plausibility validation are discarded, never substituted.
func (r *Resolver) fillFromLLM(ctx context.Context, text string, links *types.SocialLinks) {
	payload := text
	if len(payload) > maxLLMPayload {
		payload = payload[:maxLLMPayload]
	}

	suggested, err := r.extractor.ExtractLinks(ctx, payload)
	if err != nil {
		log.Printf("social: link extraction failed: %v", err)
		return
	}
	if suggested == nil {
		return
	}

	if links.LinkedIn == "" && suggested.LinkedIn != "" {
		if candidate := ensureScheme(suggested.LinkedIn); ValidateLinkedInURL(candidate) {
			links.LinkedIn = candidate
		}
	}
	if links.GitHub == "" && suggested.GitHub != "" {
		if candidate := ensureScheme(suggested.GitHub); ValidateGitHubURL(candidate) {
			links.GitHub = candidate
		}
	}
	if links.Portfolio == "" && suggested.Portfolio != "" {
		candidate := ensureScheme(suggested.Portfolio)
		if !isPlatformURL(candidate) && ValidatePortfolioURL(candidate) {
			links.Portfolio = candidate
		}
	}
}

// ensureScheme prepends https:// to scheme-less URLs.
func ensureScheme(u string) string {
	if strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://") {
		return u
	}
	return "https://" + u
}

// isPlatformURL reports whether the URL belongs to a known platform rather
// than a personal site.
func isPlatformURL(u string) bool {
	lower := strings.ToLower(u)
	return strings.Contains(lower, "linkedin.com") ||
		strings.Contains(lower, "github.com") ||
		strings.Contains(lower, "twitter.com") ||
		strings.Contains(lower, "x.com/")
}
