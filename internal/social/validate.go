package social

import (
	"net/url"
	"regexp"
	"strings"
)

// Username length bounds for platform profile paths.
const (
	minUsernameLength = 2
	maxUsernameLength = 50
)

// syntheticUsernamePattern matches a 3-character alternating-case token,
// a shape hallucinated links tend to have ("AdI", "xYz") and real usernames
// essentially never do.
var syntheticUsernamePattern = regexp.MustCompile(`^(?:[A-Z][a-z][A-Z]|[a-z][A-Z][a-z])$`)

// generatedHostPattern matches hyphenated two-letter host fragments like
// "ab-cd-ef", another telltale of fabricated portfolio domains.
var generatedHostPattern = regexp.MustCompile(`^([a-z]{2}-){2,}[a-z]{2}`)

// tldPattern requires a host to end in a plausible TLD.
var tldPattern = regexp.MustCompile(`\.[a-zA-Z]{2,}$`)

// ValidateLinkedInURL reports whether a candidate professional-network link
// is plausible. Pure and total: never panics, never errors.
func ValidateLinkedInURL(raw string) bool {
	parsed, ok := parseHTTPURL(raw)
	if !ok {
		return false
	}
	if !strings.Contains(strings.ToLower(parsed.Hostname()), "linkedin.com") {
		return false
	}
	return plausibleUsername(profileSegment(parsed.Path, "in"))
}

// ValidateGitHubURL reports whether a candidate code-hosting link is plausible.
func ValidateGitHubURL(raw string) bool {
	parsed, ok := parseHTTPURL(raw)
	if !ok {
		return false
	}
	if !strings.Contains(strings.ToLower(parsed.Hostname()), "github.com") {
		return false
	}
	return plausibleUsername(firstPathSegment(parsed.Path))
}

// ValidatePortfolioURL reports whether a candidate personal-site link is
// plausible: parseable, host of reasonable length with a valid TLD, and not
// shaped like a generated domain.
func ValidatePortfolioURL(raw string) bool {
	parsed, ok := parseHTTPURL(raw)
	if !ok {
		return false
	}

	host := strings.ToLower(parsed.Hostname())
	if len(host) < 4 {
		return false
	}
	if !tldPattern.MatchString(host) {
		return false
	}

	label := strings.TrimPrefix(host, "www.")
	if idx := strings.Index(label, "."); idx > 0 {
		label = label[:idx]
	}
	return !generatedHostPattern.MatchString(label)
}

// UsernameFromGitHubURL returns the username path segment of a validated
// code-hosting profile URL, or "" when absent.
func UsernameFromGitHubURL(raw string) string {
	parsed, ok := parseHTTPURL(raw)
	if !ok {
		return ""
	}
	return firstPathSegment(parsed.Path)
}

// parseHTTPURL parses raw and requires an http(s) scheme and a host.
func parseHTTPURL(raw string) (*url.URL, bool) {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, false
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, false
	}
	if parsed.Hostname() == "" {
		return nil, false
	}
	return parsed, true
}

// plausibleUsername checks length bounds and the synthetic micro-pattern.
func plausibleUsername(username string) bool {
	if len(username) < minUsernameLength || len(username) > maxUsernameLength {
		return false
	}
	return !syntheticUsernamePattern.MatchString(username)
}

// firstPathSegment returns the first non-empty path segment.
func firstPathSegment(path string) string {
	for _, segment := range strings.Split(path, "/") {
		if segment != "" {
			return segment
		}
	}
	return ""
}

// profileSegment returns the path segment following marker (e.g. the
// username after "/in/"), falling back to the first segment.
func profileSegment(path, marker string) string {
	segments := strings.Split(strings.Trim(path, "/"), "/")
	for i, segment := range segments {
		if segment == marker && i+1 < len(segments) {
			return segments[i+1]
		}
	}
	if len(segments) > 0 {
		return segments[len(segments)-1]
	}
	return ""
}
