package segmenter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = `Jane Doe
jane.doe@example.com
(555) 123-4567

SUMMARY
Experienced backend engineer focused on
distributed systems and data pipelines.

EXPERIENCE
Senior Engineer | Acme Corp | 2020-2023
• Built pipelines
• Led a team of four engineers
Software Engineer | Globex | 2017-2020
• Shipped internal tooling

EDUCATION
BS CS | MIT | 2016-2020

SKILLS
Languages: Go, Python, SQL
Docker, Kubernetes

CERTIFICATIONS
AWS Certified Solutions Architect
`

func TestSegment_FullResume(t *testing.T) {
	resume := Segment(sampleResume)
	require.NotNil(t, resume)

	assert.Equal(t, "Jane Doe", resume.Name)
	assert.Equal(t, "jane.doe@example.com", resume.Email)
	assert.Equal(t, "(555) 123-4567", resume.Phone)
	assert.Contains(t, resume.Summary, "distributed systems")

	require.Len(t, resume.Experience, 2)
	assert.Equal(t, "Senior Engineer", resume.Experience[0].Position)
	assert.Equal(t, "Acme Corp", resume.Experience[0].Company)
	assert.Equal(t, "2020-2023", resume.Experience[0].Duration)
	assert.Contains(t, resume.Experience[0].Description, "Built pipelines")
	assert.Contains(t, resume.Experience[0].Description, "Led a team")
	assert.Equal(t, "Globex", resume.Experience[1].Company)

	require.Len(t, resume.Education, 1)
	assert.Equal(t, "BS CS", resume.Education[0].Degree)
	assert.Equal(t, "MIT", resume.Education[0].Institution)
	assert.Equal(t, "2016-2020", resume.Education[0].Duration)

	assert.Contains(t, resume.Skills, "Go")
	assert.Contains(t, resume.Skills, "Python")
	assert.Contains(t, resume.Skills, "SQL")
	assert.Contains(t, resume.Skills, "Docker")
	assert.Contains(t, resume.Skills, "Kubernetes")

	require.Len(t, resume.Certifications, 1)
	assert.Equal(t, "AWS Certified Solutions Architect", resume.Certifications[0])
}

func TestSegment_PipeRecordCount(t *testing.T) {
	text := `EXPERIENCE
Engineer | A Corp | 2020
Engineer | B Corp | 2019
Engineer | C Corp | 2018
`
	resume := Segment(text)
	assert.Len(t, resume.Experience, 3)
}

func TestSegment_ExperienceEducationScenario(t *testing.T) {
	text := "EXPERIENCE\nSenior Engineer | Acme Corp | 2020-2023\n• Built pipelines\nEDUCATION\nBS CS | MIT | 2016-2020"

	resume := Segment(text)
	require.Len(t, resume.Experience, 1)
	assert.Equal(t, "Senior Engineer", resume.Experience[0].Position)
	assert.Equal(t, "Acme Corp", resume.Experience[0].Company)
	assert.Contains(t, resume.Experience[0].Description, "Built pipelines")
	require.Len(t, resume.Education, 1)
	assert.Equal(t, "BS CS", resume.Education[0].Degree)
	assert.Equal(t, "MIT", resume.Education[0].Institution)
}

func TestSegment_Idempotent(t *testing.T) {
	first := Segment(sampleResume)
	second := Segment(sampleResume)
	assert.Equal(t, first, second)
}

func TestSegment_LastRecordBeforeHeaderCommitted(t *testing.T) {
	// A pending experience record must flush when the section changes,
	// not be dropped or committed twice.
	text := `EXPERIENCE
Engineer | Acme | 2020
SKILLS
Go
`
	resume := Segment(text)
	require.Len(t, resume.Experience, 1)
	assert.Equal(t, "Acme", resume.Experience[0].Company)
	assert.Contains(t, resume.Skills, "Go")
}

func TestSegment_EmptyInput(t *testing.T) {
	resume := Segment("")
	require.NotNil(t, resume)
	assert.Empty(t, resume.Name)
	assert.Empty(t, resume.Experience)
	assert.Empty(t, resume.Education)
	assert.Empty(t, resume.Skills)
}

func TestSegment_HeaderVariants(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{name: "lowercase", header: "experience"},
		{name: "title case", header: "Work Experience"},
		{name: "trailing colon", header: "EXPERIENCE:"},
		{name: "work history", header: "Work History"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := tt.header + "\nEngineer | Acme | 2020\n"
			resume := Segment(text)
			require.Len(t, resume.Experience, 1)
			assert.Equal(t, "Acme", resume.Experience[0].Company)
		})
	}
}

func TestSegment_HeaderRequiresWholeLine(t *testing.T) {
	// A sentence that merely mentions a keyword must not switch sections.
	text := `SKILLS
Go
My experience with Python spans years
`
	resume := Segment(text)
	assert.Empty(t, resume.Experience)
	assert.Contains(t, resume.Skills, "Go")
}

func TestSegment_EducationSingleLineFallback(t *testing.T) {
	text := `EDUCATION
BS in Computer Science, Stanford University, 2016
`
	resume := Segment(text)
	require.Len(t, resume.Education, 1)
	assert.Contains(t, resume.Education[0].Degree, "BS in Computer Science")
	assert.Contains(t, resume.Education[0].Institution, "Stanford")
}

func TestSegment_DurationLinesAreNotAPhone(t *testing.T) {
	text := `EDUCATION
BS CS | MIT | 2016-2020
2014-2016 Community College
`
	resume := Segment(text)
	assert.Empty(t, resume.Phone)
}

func TestParseSkillLine(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected []string
	}{
		{
			name:     "colon category",
			line:     "Languages: Go, Python",
			expected: []string{"Go", "Python"},
		},
		{
			name:     "comma separated",
			line:     "Go, Python, SQL",
			expected: []string{"Go", "Python", "SQL"},
		},
		{
			name:     "semicolon separated",
			line:     "Go; Python",
			expected: []string{"Go", "Python"},
		},
		{
			name:     "bullet item",
			line:     "• Kubernetes",
			expected: []string{"Kubernetes"},
		},
		{
			name:     "single token line",
			line:     "Terraform",
			expected: []string{"Terraform"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseSkillLine(tt.line))
		})
	}
}

func TestSegment_DuplicateSkillsPreserved(t *testing.T) {
	text := `SKILLS
Languages: Go, Python
Tools: Go, Docker
`
	resume := Segment(text)
	count := 0
	for _, s := range resume.Skills {
		if s == "Go" {
			count++
		}
	}
	assert.Equal(t, 2, count)
}
