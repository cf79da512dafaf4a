// Package types provides type definitions for structured data used throughout the candidate-signals system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
)

// ParsedResume represents the structured output of resume extraction and segmentation.
// All containers are non-nil after Normalize; absent scalar fields stay empty strings.
type ParsedResume struct {
	Name           string           `json:"name,omitempty"`
	Email          string           `json:"email,omitempty"`
	Phone          string           `json:"phone,omitempty"`
	Summary        string           `json:"summary,omitempty"`
	Experience     []WorkExperience `json:"experience"`
	Education      []Education      `json:"education"`
	Skills         []string         `json:"skills"`
	Certifications []string         `json:"certifications"`
	SocialLinks    SocialLinks      `json:"social_links"`
}

// WorkExperience represents a single position held by the candidate.
// Records preserve document order; most-recent-first is not enforced.
type WorkExperience struct {
	Company      string   `json:"company"`
	Position     string   `json:"position"`
	Duration     string   `json:"duration"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
}

// Education represents a single degree or program.
type Education struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Duration    string `json:"duration"`
	GPA         string `json:"gpa,omitempty"`
}

// SocialLinks holds candidate-asserted identity links. Each field, when set,
// is a syntactically valid URL that passed platform plausibility validation.
type SocialLinks struct {
	LinkedIn  string `json:"linkedin,omitempty" validate:"omitempty,url"`
	GitHub    string `json:"github,omitempty" validate:"omitempty,url"`
	Portfolio string `json:"portfolio,omitempty" validate:"omitempty,url"`
	Twitter   string `json:"twitter,omitempty" validate:"omitempty,url"`
}

// linkValidator checks URL syntax on SocialLinks fields.
var linkValidator = validator.New()

// Validate reports whether every populated link is a syntactically valid URL.
func (s *SocialLinks) Validate() error {
	return linkValidator.Struct(s)
}

// IsEmpty reports whether no link is populated.
func (s *SocialLinks) IsEmpty() bool {
	return s.LinkedIn == "" && s.GitHub == "" && s.Portfolio == "" && s.Twitter == ""
}

// NewParsedResume returns a ParsedResume with all containers initialized.
func NewParsedResume() *ParsedResume {
	return &ParsedResume{
		Experience:     []WorkExperience{},
		Education:      []Education{},
		Skills:         []string{},
		Certifications: []string{},
	}
}

// Normalize replaces nil containers with empty ones so callers never see null
// lists in serialized output.
func (r *ParsedResume) Normalize() {
	if r.Experience == nil {
		r.Experience = []WorkExperience{}
	}
	if r.Education == nil {
		r.Education = []Education{}
	}
	if r.Skills == nil {
		r.Skills = []string{}
	}
	if r.Certifications == nil {
		r.Certifications = []string{}
	}
}
