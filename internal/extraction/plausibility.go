package extraction

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// minPrintableRatio is the fraction of printable/whitespace characters a
// decode must reach before indicator matching is even consulted.
const minPrintableRatio = 0.70

// minIndicators is how many independent resume indicators must match.
// Binary decodes are often superficially printable; requiring multiple
// indicators avoids accepting semantic noise.
const minIndicators = 3

var (
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
	phonePattern = regexp.MustCompile(`\+?\d{1,3}[\s.\-]?\(?\d{2,4}\)?[\s.\-]?\d{3,4}[\s.\-]?\d{3,4}`)
	urlPattern   = regexp.MustCompile(`https?://[^\s<>"]+`)

	sectionHeaderPattern = regexp.MustCompile(`(?i)\b(experience|education|skills|certifications|summary|objective|employment|projects)\b`)
	jobTitlePattern      = regexp.MustCompile(`(?i)\b(engineer|developer|manager|analyst|designer|architect|consultant|director|scientist|administrator)\b`)
	degreePattern        = regexp.MustCompile(`(?i)\b(bachelor|master|phd|b\.?s\.?|m\.?s\.?|mba|degree|university|college)\b`)
)

// LooksLikeResume is the two-part plausibility gate for decoded text: the
// decode must be mostly printable AND match at least minIndicators of the
// fixed indicator set.
func LooksLikeResume(text string) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}
	if printableRatio(text) < minPrintableRatio {
		return false
	}
	return countIndicators(text) >= minIndicators
}

// printableRatio returns the fraction of printable or whitespace runes.
// Bytes that are not valid UTF-8 count as non-printable; a range loop would
// decode them to U+FFFD, which IsPrint accepts.
func printableRatio(text string) float64 {
	total := 0
	printable := 0
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		total++
		if !(r == utf8.RuneError && size == 1) && (unicode.IsPrint(r) || unicode.IsSpace(r)) {
			printable++
		}
		i += size
	}
	if total == 0 {
		return 0
	}
	return float64(printable) / float64(total)
}

// countIndicators counts distinct resume indicators present in the text.
func countIndicators(text string) int {
	lower := strings.ToLower(text)
	count := 0

	if emailPattern.MatchString(text) {
		count++
	}
	if phonePattern.MatchString(text) {
		count++
	}
	if strings.Contains(lower, "linkedin.com") || strings.Contains(lower, "github.com") {
		count++
	}
	if sectionHeaderPattern.MatchString(text) {
		count++
	}
	if jobTitlePattern.MatchString(text) {
		count++
	}
	if degreePattern.MatchString(text) {
		count++
	}

	return count
}
