// Package segmenter turns extracted plain text into a structured ParsedResume
// using a single-pass line-oriented state machine. Lines that match no known
// pattern are silently skipped; segmentation never fails.
package segmenter

import (
	"regexp"
	"strings"

	"github.com/jonathan/candidate-signals/internal/types"
)

// section is the state of the line machine.
type section int

const (
	sectionNone section = iota
	sectionExperience
	sectionEducation
	sectionSkills
	sectionCertifications
)

// sectionKeywords maps each section to the header lines that enter it.
// Matching is case-insensitive against the whole trimmed line.
var sectionKeywords = map[section][]string{
	sectionExperience: {
		"experience", "work experience", "employment", "professional experience", "work history",
	},
	sectionEducation: {
		"education", "academic background", "qualifications",
	},
	sectionSkills: {
		"skills", "technical skills", "core competencies", "technologies",
	},
	sectionCertifications: {
		"certifications", "certificates", "licenses",
	},
}

// pipeRecordPattern matches the 3-field pipe-delimited record form used for
// both experience (Position | Company | Duration) and education
// (Degree | Institution | Duration).
var pipeRecordPattern = regexp.MustCompile(`^([^|]+)\|([^|]+)\|([^|]+)$`)

// bulletPrefixes are the characters that mark a description line.
var bulletPrefixes = []string{"•", "-", "*", "·", "●", "▪"}

// Segment parses plain resume text into a ParsedResume. Social links are not
// resolved here; the resolver fills them afterwards. Segment is pure: the
// same text always yields the same result.
func Segment(text string) *types.ParsedResume {
	resume := types.NewParsedResume()
	if strings.TrimSpace(text) == "" {
		return resume
	}

	resume.Name = extractName(text)
	resume.Email = ExtractEmail(text)
	resume.Phone = extractPhone(text)
	resume.Summary = extractSummary(text)

	m := &machine{resume: resume}
	for _, rawLine := range strings.Split(text, "\n") {
		line := strings.TrimSpace(rawLine)
		if line == "" {
			continue
		}
		m.consume(line)
	}
	// End-of-input commits whatever record is still pending. flush clears
	// the buffers on section exit, so nothing is committed twice.
	m.flush()

	return resume
}

// machine holds the current section and the pending record buffers.
type machine struct {
	resume     *types.ParsedResume
	state      section
	pendingExp *types.WorkExperience
	pendingEdu *types.Education
}

// consume processes one non-blank trimmed line.
func (m *machine) consume(line string) {
	// A section header both exits the current section and enters the next.
	// The header line itself is consumed, never treated as data.
	if next, ok := matchSectionHeader(line); ok {
		m.flush()
		m.state = next
		return
	}

	switch m.state {
	case sectionExperience:
		m.consumeExperience(line)
	case sectionEducation:
		m.consumeEducation(line)
	case sectionSkills:
		m.resume.Skills = append(m.resume.Skills, parseSkillLine(line)...)
	case sectionCertifications:
		m.resume.Certifications = append(m.resume.Certifications, strings.TrimLeft(line, "•-*· \t"))
	case sectionNone:
		// Lines outside any section carry no structure; skip.
	}
}

// flush commits any pending record and clears the buffers. It is the single
// commit path for both section transitions and end-of-input.
func (m *machine) flush() {
	if m.pendingExp != nil {
		if m.pendingExp.Position != "" && m.pendingExp.Company != "" {
			m.resume.Experience = append(m.resume.Experience, *m.pendingExp)
		}
		m.pendingExp = nil
	}
	if m.pendingEdu != nil {
		if m.pendingEdu.Degree != "" && m.pendingEdu.Institution != "" {
			m.resume.Education = append(m.resume.Education, *m.pendingEdu)
		}
		m.pendingEdu = nil
	}
}

// consumeExperience handles lines while in the experience section.
func (m *machine) consumeExperience(line string) {
	if match := pipeRecordPattern.FindStringSubmatch(line); match != nil {
		m.flush()
		m.pendingExp = &types.WorkExperience{
			Position: strings.TrimSpace(match[1]),
			Company:  strings.TrimSpace(match[2]),
			Duration: strings.TrimSpace(match[3]),
		}
		return
	}

	if m.pendingExp != nil && isBulletLine(line) {
		if m.pendingExp.Description == "" {
			m.pendingExp.Description = line
		} else {
			m.pendingExp.Description += " " + line
		}
	}
}

// eduFallbackPattern matches single-line degree forms like
// "Bachelor of Science in CS - MIT - 2016-2020", tolerating hyphen, pipe,
// comma and "at" separators.
var eduFallbackPattern = regexp.MustCompile(`(?i)^(bachelor[^,|–\-]*|master[^,|–\-]*|ph\.?d\.?[^,|–\-]*|associate[^,|–\-]*|b\.?s\.?[^,|–\-]*|m\.?s\.?[^,|–\-]*|mba)[\s,|–\-]+(?:at\s+)?(.+?)[\s,|–\-]+(\d{4}\s*[-–]\s*(?:\d{4}|present)|\d{4})$`)

// consumeEducation handles lines while in the education section.
func (m *machine) consumeEducation(line string) {
	if match := pipeRecordPattern.FindStringSubmatch(line); match != nil {
		m.flush()
		m.pendingEdu = &types.Education{
			Degree:      strings.TrimSpace(match[1]),
			Institution: strings.TrimSpace(match[2]),
			Duration:    strings.TrimSpace(match[3]),
		}
		return
	}

	if match := eduFallbackPattern.FindStringSubmatch(line); match != nil {
		m.flush()
		m.pendingEdu = &types.Education{
			Degree:      strings.TrimSpace(match[1]),
			Institution: strings.TrimSpace(strings.Trim(match[2], ",-–| ")),
			Duration:    strings.TrimSpace(match[3]),
		}
	}
}

// matchSectionHeader reports whether the line is a section header and which
// section it enters.
func matchSectionHeader(line string) (section, bool) {
	normalized := strings.ToLower(strings.TrimRight(strings.TrimSpace(line), ":"))
	for sec, keywords := range sectionKeywords {
		for _, keyword := range keywords {
			if normalized == keyword {
				return sec, true
			}
		}
	}
	return sectionNone, false
}

// isBulletLine reports whether the line starts with a bullet character.
func isBulletLine(line string) bool {
	for _, prefix := range bulletPrefixes {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}

// parseSkillLine extracts zero or more skills from one skills-section line.
// Formats are tried in order: "Category: a, b", comma/semicolon list, bullet
// item, whole line. Duplicates across lines are preserved deliberately; the
// frequency signal may matter downstream.
func parseSkillLine(line string) []string {
	// "Category: skill1, skill2"
	if idx := strings.Index(line, ":"); idx > 0 {
		return splitSkills(line[idx+1:])
	}
	if strings.ContainsAny(line, ",;") {
		return splitSkills(line)
	}
	if isBulletLine(line) {
		skill := strings.TrimSpace(strings.TrimLeft(line, "•-*·●▪ \t"))
		if skill == "" {
			return nil
		}
		return []string{skill}
	}
	return []string{line}
}

// splitSkills splits a comma/semicolon separated list, dropping empties.
func splitSkills(s string) []string {
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ';' })
	skills := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			skills = append(skills, trimmed)
		}
	}
	return skills
}
