// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/candidate-signals/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintParsedResume outputs a human-readable summary of the parsed resume.
func (p *Printer) PrintParsedResume(resume *types.ParsedResume) {
	if resume == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:   %s\n", orDash(resume.Name)))
	sb.WriteString(fmt.Sprintf("Email:  %s\n", orDash(resume.Email)))
	sb.WriteString(fmt.Sprintf("Phone:  %s\n", orDash(resume.Phone)))
	sb.WriteString("\n")

	if len(resume.Experience) > 0 {
		sb.WriteString(fmt.Sprintf("Experience (%d):\n", len(resume.Experience)))
		count := min(len(resume.Experience), maxItemsToShow)
		for i := 0; i < count; i++ {
			exp := resume.Experience[i]
			sb.WriteString(fmt.Sprintf("  • %s @ %s (%s)\n", exp.Position, exp.Company, exp.Duration))
		}
		if len(resume.Experience) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(resume.Experience)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(resume.Education) > 0 {
		sb.WriteString(fmt.Sprintf("Education (%d):\n", len(resume.Education)))
		count := min(len(resume.Education), 3)
		for i := 0; i < count; i++ {
			edu := resume.Education[i]
			sb.WriteString(fmt.Sprintf("  • %s, %s\n", edu.Degree, edu.Institution))
		}
	}

	if len(resume.Skills) > 0 {
		skills := strings.Join(resume.Skills, ", ")
		if len(skills) > 45 {
			skills = skills[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("\nSkills: %s\n", skills))
	}

	p.printBox("PARSED RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSocialLinks outputs the resolved identity links.
func (p *Printer) PrintSocialLinks(links *types.SocialLinks) {
	if links == nil || links.IsEmpty() {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("LinkedIn:  %s\n", orDash(links.LinkedIn)))
	sb.WriteString(fmt.Sprintf("GitHub:    %s\n", orDash(links.GitHub)))
	sb.WriteString(fmt.Sprintf("Portfolio: %s\n", orDash(links.Portfolio)))
	sb.WriteString(fmt.Sprintf("Twitter:   %s", orDash(links.Twitter)))

	p.printBox("SOCIAL LINKS", sb.String())
}

// PrintPresenceProfile outputs the aggregated online presence summary.
func (p *Printer) PrintPresenceProfile(profile *types.OnlinePresenceProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder

	if gh := profile.GitHub; gh != nil {
		sb.WriteString(fmt.Sprintf("GitHub: @%s\n", gh.Username))
		sb.WriteString(fmt.Sprintf("  Repos: %d  Followers: %d\n", gh.PublicRepos, gh.Followers))
		if gh.LanguageStats.PrimaryLanguage != "" {
			sb.WriteString(fmt.Sprintf("  Primary language: %s\n", gh.LanguageStats.PrimaryLanguage))
		}
		sb.WriteString(fmt.Sprintf("  Commit frequency: %s\n", gh.CommitPatterns.Frequency))
		sb.WriteString(fmt.Sprintf("  Quality: %d  Collaboration: %d\n", gh.RepoQuality.QualityScore, gh.CollaborationScore))
		sb.WriteString("\n")
	}

	if li := profile.LinkedIn; li != nil {
		access := "blocked"
		if li.Accessible {
			access = "accessible"
		}
		sb.WriteString(fmt.Sprintf("LinkedIn: %s (%s)\n", li.URL, access))
	}

	if site := profile.Portfolio; site != nil {
		sb.WriteString(fmt.Sprintf("Portfolio: %s\n", site.URL))
		if len(site.Technologies) > 0 {
			techs := strings.Join(site.Technologies, ", ")
			if len(techs) > 40 {
				techs = techs[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("  Tech: %s\n", techs))
		}
	}

	if len(profile.Errors) > 0 {
		sb.WriteString(fmt.Sprintf("\nFailed sources: %d\n", len(profile.Errors)))
		for _, srcErr := range profile.Errors {
			sb.WriteString(fmt.Sprintf("  ⚠ %s\n", srcErr.Source))
		}
	}

	if sb.Len() == 0 {
		sb.WriteString("No sources available")
	}

	p.printBox("ONLINE PRESENCE", strings.TrimSuffix(sb.String(), "\n"))
}

// orDash substitutes a dash for empty values in summaries.
func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
