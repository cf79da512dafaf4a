package segmenter

import (
	"regexp"
	"strings"
)

var (
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)

	// Separators exclude newlines; a phone number never spans lines.
	phonePattern = regexp.MustCompile(`(?:\+?\d{1,3}[ .\-]?)?\(?\d{2,4}\)?[ .\-]?\d{3,4}[ .\-]?\d{3,4}`)

	// yearRangePattern screens out duration tokens like "2016-2020" that
	// are phone-shaped but never phone numbers.
	yearRangePattern = regexp.MustCompile(`^(?:19|20)\d{2}\s*[-–]\s*(?:19|20)\d{2}`)

	// candidateNamePattern matches a two-capitalized-word line, allowing a
	// middle name or initial.
	candidateNamePattern = regexp.MustCompile(`^[A-Z][a-z]+(?: [A-Z]\.?)? [A-Z][a-z]+$`)

	summaryKeywordPattern = regexp.MustCompile(`(?i)\b(summary|objective|profile|about me|about)\b`)
)

// nameBoilerplate disqualifies a line from being a name. A resume header
// like "Curriculum Vitae" is capitalized two words but never a name.
var nameBoilerplate = []string{"resume", "cv", "curriculum", "vitae", "email", "phone", "address"}

// maxNameLines is how many leading lines are scanned for a name.
const maxNameLines = 5

// maxSummaryLines caps how many lines after a summary keyword are collected.
const maxSummaryLines = 4

// extractName looks for a plausible candidate name in the first lines of the
// document. When nothing qualifies the name stays empty; a wrong guess is
// worse than no name.
func extractName(text string) string {
	lines := strings.Split(text, "\n")
	checked := 0
	for _, rawLine := range lines {
		line := strings.TrimSpace(rawLine)
		if line == "" {
			continue
		}
		checked++
		if checked > maxNameLines {
			break
		}
		if !candidateNamePattern.MatchString(line) {
			continue
		}
		if containsBoilerplate(line) {
			continue
		}
		return line
	}
	return ""
}

// containsBoilerplate reports whether the line carries resume-header words.
func containsBoilerplate(line string) bool {
	lower := strings.ToLower(line)
	for _, word := range nameBoilerplate {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}

// ExtractEmail returns the first well-formed email address in the text, or "".
func ExtractEmail(text string) string {
	return emailPattern.FindString(text)
}

// extractPhone returns the first phone-shaped token in the text, or "".
// Year ranges from duration columns are skipped.
func extractPhone(text string) string {
	for _, match := range phonePattern.FindAllString(text, -1) {
		match = strings.TrimSpace(match)
		if yearRangePattern.MatchString(match) {
			continue
		}
		return match
	}
	return ""
}

// extractSummary collects up to maxSummaryLines lines following a line that
// contains a summary/objective/profile/about keyword, stopping early at the
// next section header.
func extractSummary(text string) string {
	lines := strings.Split(text, "\n")
	for i, rawLine := range lines {
		line := strings.TrimSpace(rawLine)
		if line == "" || !summaryKeywordPattern.MatchString(line) {
			continue
		}
		// Only treat short heading-like lines as summary markers, not any
		// sentence that happens to mention "about".
		if len(line) > 40 {
			continue
		}

		var collected []string
		for _, next := range lines[i+1:] {
			nextLine := strings.TrimSpace(next)
			if nextLine == "" {
				continue
			}
			if _, isHeader := matchSectionHeader(nextLine); isHeader {
				break
			}
			collected = append(collected, nextLine)
			if len(collected) == maxSummaryLines {
				break
			}
		}
		if len(collected) > 0 {
			return strings.Join(collected, " ")
		}
	}
	return ""
}
