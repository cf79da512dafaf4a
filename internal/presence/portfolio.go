package presence

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/candidate-signals/internal/fetch"
	"github.com/jonathan/candidate-signals/internal/types"
)

// technologyVocabulary is the fixed keyword set scanned for on portfolio
// pages. Matching is case-insensitive against the page text.
var technologyVocabulary = []string{
	"Go", "Python", "JavaScript", "TypeScript", "Java", "Rust", "Ruby",
	"React", "Vue", "Angular", "Node.js", "Django", "Rails",
	"Kubernetes", "Docker", "Terraform", "AWS", "GCP", "Azure",
	"PostgreSQL", "MySQL", "MongoDB", "Redis", "Kafka", "GraphQL",
}

// analyzePortfolio fetches a personal site and extracts its title,
// description, and technology mentions. When plain fetching yields too
// little text and the browser is enabled, the page is re-rendered headless.
func (a *Aggregator) analyzePortfolio(ctx context.Context, siteURL string) (*types.PortfolioSite, error) {
	result, err := fetch.URL(ctx, siteURL, a.fetchOpts)
	if err != nil {
		return nil, err
	}

	html := result.HTML
	text, err := fetch.ExtractMainText(html, fetch.PortfolioSelectors())
	if err != nil {
		return nil, err
	}

	if a.useBrowser && fetch.ShouldUseBrowser(text) {
		rendered, browserErr := fetch.WithBrowser(ctx, siteURL, a.fetchOpts.Timeout, a.verbose)
		if browserErr != nil {
			log.Printf("presence: browser rendering failed for %s: %v", siteURL, browserErr)
		} else {
			html = rendered
			if renderedText, textErr := fetch.ExtractMainText(html, fetch.PortfolioSelectors()); textErr == nil {
				text = renderedText
			}
		}
	}

	site := &types.PortfolioSite{
		URL:       siteURL,
		Reachable: true,
	}
	site.Title, site.Description = pageMetadata(html)
	site.Technologies = detectTechnologies(text)

	return site, nil
}

// checkLinkedIn probes the public profile page. Most profiles sit behind an
// auth wall; the source records reachability rather than failing.
func (a *Aggregator) checkLinkedIn(ctx context.Context, profileURL string) (*types.LinkedInPresence, error) {
	presence := &types.LinkedInPresence{URL: profileURL}

	result, err := fetch.URL(ctx, profileURL, a.fetchOpts)
	if err != nil {
		// An unreachable page is still a recorded presence; only pass the
		// error up when we got no response at all.
		if result == nil {
			return nil, err
		}
		return presence, nil
	}

	if result.StatusCode != http.StatusOK {
		return presence, nil
	}

	presence.Accessible = true
	if text, err := fetch.ExtractMainText(result.HTML, fetch.PlatformContentSelectors(fetch.PlatformLinkedIn), fetch.PlatformNoiseSelectors(fetch.PlatformLinkedIn)...); err == nil {
		presence.Headline = firstLine(text)
	}

	return presence, nil
}

// pageMetadata pulls the title and meta description out of raw HTML.
func pageMetadata(html string) (title, description string) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", ""
	}

	title = strings.TrimSpace(doc.Find("title").First().Text())
	if desc, ok := doc.Find(`meta[name="description"]`).Attr("content"); ok {
		description = strings.TrimSpace(desc)
	}
	return title, description
}

// detectTechnologies scans text for the fixed technology vocabulary.
func detectTechnologies(text string) []string {
	lower := strings.ToLower(text)
	var found []string
	for _, tech := range technologyVocabulary {
		if containsWord(lower, strings.ToLower(tech)) {
			found = append(found, tech)
		}
	}
	return found
}

// containsWord reports a word-boundary-ish match: the keyword must not be
// embedded inside a longer alphanumeric run ("Go" should not match "Google").
func containsWord(haystack, needle string) bool {
	idx := 0
	for {
		pos := strings.Index(haystack[idx:], needle)
		if pos < 0 {
			return false
		}
		pos += idx
		before := pos - 1
		after := pos + len(needle)
		beforeOK := before < 0 || !isAlnum(haystack[before])
		afterOK := after >= len(haystack) || !isAlnum(haystack[after])
		if beforeOK && afterOK {
			return true
		}
		idx = pos + len(needle)
	}
}

func isAlnum(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

// firstLine returns the first non-empty line of text.
func firstLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
