// Package extraction turns raw resume document bytes into plain text using a
// prioritized cascade of strategies. Extraction never fails hard: input that
// no strategy can read degrades to an empty-text result that downstream
// stages treat as "no information available".
package extraction

import (
	"context"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Strategy identifies which extraction strategy produced the text.
type Strategy string

const (
	// StrategyDirectText means the bytes decoded directly into readable resume text
	StrategyDirectText Strategy = "direct_text"
	// StrategyBinaryHeuristic means text was recovered by regex/keyword scanning of a binary decode
	StrategyBinaryHeuristic Strategy = "binary_heuristic"
	// StrategyAIAssisted means an LLM collaborator cleaned the raw content into resume text
	StrategyAIAssisted Strategy = "ai_assisted"
	// StrategyNone means no strategy produced usable text
	StrategyNone Strategy = "none"
)

// Result holds the extracted text and how it was obtained.
// Invariant: Strategy == StrategyNone iff Text is empty.
type Result struct {
	Text     string   `json:"text"`
	Strategy Strategy `json:"strategy"`
	Length   int      `json:"length"`
}

// Cleaner is the optional LLM collaborator used by the AI-assisted strategy.
// A nil Cleaner simply skips that strategy.
type Cleaner interface {
	// CleanResumeText asks the collaborator to turn raw noisy content into
	// readable resume text. An empty reply means no result.
	CleanResumeText(ctx context.Context, raw string) (string, error)
}

// Extractor runs the strategy cascade.
type Extractor struct {
	cleaner Cleaner
}

// NewExtractor creates an Extractor. cleaner may be nil, in which case the
// AI-assisted strategy is skipped entirely.
func NewExtractor(cleaner Cleaner) *Extractor {
	return &Extractor{cleaner: cleaner}
}

// Extract tries each strategy in fixed priority order and returns the first
// result that passes the resume-content plausibility gate. It returns an
// EmptyDocumentError only when data is empty; every other failure degrades
// to a StrategyNone result.
func (e *Extractor) Extract(ctx context.Context, data []byte, filename string) (*Result, error) {
	if len(data) == 0 {
		return nil, &EmptyDocumentError{Filename: filename}
	}

	raw := string(data)

	// Strategy 1: direct text decoding, gated on plausibility.
	if LooksLikeResume(raw) {
		text := normalizeText(raw)
		return &Result{Text: text, Strategy: StrategyDirectText, Length: len(text)}, nil
	}

	// Strategy 2/3: AI-assisted cleanup when configured, heuristic recovery
	// otherwise. AI failure falls back to the heuristic.
	if e.cleaner != nil {
		if text := e.extractWithAI(ctx, raw); text != "" {
			return &Result{Text: text, Strategy: StrategyAIAssisted, Length: len(text)}, nil
		}
	}

	if text := extractFromBinary(raw); text != "" {
		return &Result{Text: text, Strategy: StrategyBinaryHeuristic, Length: len(text)}, nil
	}

	return &Result{Text: "", Strategy: StrategyNone, Length: 0}, nil
}

// extractWithAI pre-filters the raw content to resume-like lines, caps the
// payload, and asks the collaborator for a cleanup. Any failure or an
// implausibly short reply yields "".
func (e *Extractor) extractWithAI(ctx context.Context, raw string) string {
	filtered := filterResumeLines(raw)
	if filtered == "" {
		return ""
	}
	if len(filtered) > maxAIPayload {
		filtered = filtered[:maxAIPayload]
	}

	cleaned, err := e.cleaner.CleanResumeText(ctx, filtered)
	if err != nil {
		return ""
	}
	cleaned = strings.TrimSpace(cleaned)
	if len(cleaned) <= minAIReplyLength {
		return ""
	}
	return cleaned
}

// maxAIPayload caps the content sent to the LLM collaborator.
const maxAIPayload = 8000

// minAIReplyLength is the minimum reply length accepted from the collaborator.
const minAIReplyLength = 50

// filterResumeLines keeps only lines that look like resume content, dropping
// binary garbage before the payload reaches the collaborator.
func filterResumeLines(raw string) string {
	lines := strings.Split(raw, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if isResumeLikeLine(line) {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

// isResumeLikeLine reports whether a line contains enough printable,
// word-like content to plausibly belong to a resume.
func isResumeLikeLine(line string) bool {
	if len(line) < 3 {
		return false
	}
	printable := 0
	letters := 0
	total := 0
	for _, r := range line {
		total++
		if r != utf8.RuneError && (unicode.IsPrint(r) || unicode.IsSpace(r)) {
			printable++
		}
		if unicode.IsLetter(r) {
			letters++
		}
	}
	return printable == total && letters*2 >= total
}

// normalizeText normalizes line endings and trims trailing whitespace while
// preserving the line structure the segmenter depends on.
func normalizeText(content string) string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned = append(cleaned, strings.TrimRight(line, " \t"))
	}
	return strings.TrimSpace(strings.Join(cleaned, "\n"))
}
