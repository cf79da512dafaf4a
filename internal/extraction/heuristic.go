package extraction

import (
	"regexp"
	"strings"
)

// minHeuristicLength is the minimum joined length for a heuristic recovery
// to be accepted.
const minHeuristicLength = 100

// namePattern matches capitalized two-word name candidates.
var namePattern = regexp.MustCompile(`\b[A-Z][a-z]+ [A-Z][a-z]+\b`)

// sectionKeywords is the fixed vocabulary scanned for in binary decodes.
// Windows of surrounding text are collected around each hit.
var sectionKeywords = []string{
	"experience", "education", "skills", "summary", "objective",
	"certifications", "projects", "employment", "linkedin", "github",
	"university", "bachelor", "master", "engineer", "developer",
}

// extractFromBinary scans a raw byte-as-text decode for resume fragments:
// regex hits for emails, phones, URLs and names, plus context windows
// around known section keywords. Fragments are de-duplicated and joined.
// Returns "" when the recovered text is too short to be useful.
func extractFromBinary(raw string) string {
	seen := make(map[string]bool)
	var fragments []string

	add := func(s string) {
		s = strings.TrimSpace(s)
		if s == "" || seen[s] {
			return
		}
		seen[s] = true
		fragments = append(fragments, s)
	}

	for _, match := range emailPattern.FindAllString(raw, -1) {
		add(match)
	}
	for _, match := range phonePattern.FindAllString(raw, -1) {
		add(match)
	}
	for _, match := range urlPattern.FindAllString(raw, -1) {
		add(match)
	}
	for _, match := range namePattern.FindAllString(raw, -1) {
		add(match)
	}

	lower := strings.ToLower(raw)
	for _, keyword := range sectionKeywords {
		idx := 0
		for {
			pos := strings.Index(lower[idx:], keyword)
			if pos < 0 {
				break
			}
			pos += idx
			add(printableWindow(raw, pos-50, pos+len(keyword)+100))
			idx = pos + len(keyword)
		}
	}

	joined := strings.Join(fragments, "\n")
	if len(joined) <= minHeuristicLength {
		return ""
	}
	return joined
}

// printableWindow returns the slice of raw between start and end, clamped to
// bounds and stripped of non-printable runes.
func printableWindow(raw string, start, end int) string {
	if start < 0 {
		start = 0
	}
	if end > len(raw) {
		end = len(raw)
	}
	if start >= end {
		return ""
	}

	var sb strings.Builder
	for _, r := range raw[start:end] {
		if r == '\n' || r == '\t' || (r >= 32 && r < 127) {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
