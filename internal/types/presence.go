// Package types provides type definitions for structured data used throughout the candidate-signals system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"time"

	"github.com/google/uuid"
)

// OnlinePresenceProfile aggregates signals from a candidate's public online
// footprint. Sources are independently fallible; absent fields mean the
// source was unavailable, not that the candidate has no presence there.
type OnlinePresenceProfile struct {
	AnalysisID uuid.UUID         `json:"analysis_id"`
	FetchedAt  time.Time         `json:"fetched_at"`
	GitHub     *GitHubProfile    `json:"github,omitempty"`
	LinkedIn   *LinkedInPresence `json:"linkedin,omitempty"`
	Portfolio  *PortfolioSite    `json:"portfolio,omitempty"`
	Errors     []SourceError     `json:"errors,omitempty"`
}

// SourceError records a per-source fetch failure kept for diagnostics.
type SourceError struct {
	Source  string `json:"source"`
	Message string `json:"message"`
}

// GitHubProfile is a full aggregation snapshot of a candidate's code-hosting
// activity, rebuilt on every analysis.
type GitHubProfile struct {
	Username            string              `json:"username"`
	Name                string              `json:"name,omitempty"`
	Bio                 string              `json:"bio,omitempty"`
	Company             string              `json:"company,omitempty"`
	Location            string              `json:"location,omitempty"`
	Blog                string              `json:"blog,omitempty"`
	Followers           int                 `json:"followers"`
	Following           int                 `json:"following"`
	PublicRepos         int                 `json:"public_repos"`
	AccountAgeYears     float64             `json:"account_age_years"`
	Repositories        []Repository        `json:"repositories"`
	LanguageStats       LanguageStats       `json:"language_stats"`
	CommitPatterns      CommitPatterns      `json:"commit_patterns"`
	RepoQuality         RepoQuality         `json:"repo_quality"`
	ContributionMetrics ContributionMetrics `json:"contribution_metrics"`
	CollaborationScore  int                 `json:"collaboration_score"`
}

// Repository represents one code-hosting project, sourced verbatim from the
// external API and never mutated downstream.
type Repository struct {
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Language    string    `json:"language,omitempty"`
	Stars       int       `json:"stars"`
	Forks       int       `json:"forks"`
	UpdatedAt   time.Time `json:"updated_at"`
	IsForked    bool      `json:"is_forked"`
	OpenIssues  int       `json:"open_issues"`
	SizeKB      int       `json:"size_kb"`
}

// LanguageStats describes the language mix across non-forked repositories.
type LanguageStats struct {
	Percentages     map[string]float64 `json:"percentages"`
	PrimaryLanguage string             `json:"primary_language,omitempty"`
	DiversityScore  int                `json:"diversity_score"`
}

// CommitPatterns describes push cadence derived from recent events.
type CommitPatterns struct {
	ByHour           map[int]int    `json:"by_hour"`
	ByWeekday        map[string]int `json:"by_weekday"`
	RecentPushes     int            `json:"recent_pushes"`
	Frequency        string         `json:"frequency"` // High, Medium, or Low
	ConsistencyScore int            `json:"consistency_score"`
}

// RepoQuality summarizes how well-maintained the candidate's repositories are.
type RepoQuality struct {
	TotalStars      int     `json:"total_stars"`
	AverageStars    float64 `json:"average_stars"`
	DocumentedRepos int     `json:"documented_repos"`
	ActiveRepos     int     `json:"active_repos"`
	TopProjects     int     `json:"top_projects"`
	QualityScore    int     `json:"quality_score"`
}

// ContributionMetrics summarizes event-feed activity counts.
type ContributionMetrics struct {
	RecentEvents  int `json:"recent_events"`
	PushEvents    int `json:"push_events"`
	PullRequests  int `json:"pull_requests"`
	IssuesOpened  int `json:"issues_opened"`
	ReviewsGiven  int `json:"reviews_given"`
	StarsReceived int `json:"stars_received"`
	ForksReceived int `json:"forks_received"`
}

// LinkedInPresence records the professional-network link and whether the
// public page was reachable. Most profile pages block anonymous fetches.
type LinkedInPresence struct {
	URL        string `json:"url"`
	Accessible bool   `json:"accessible"`
	Headline   string `json:"headline,omitempty"`
}

// PortfolioSite records signals scraped from a personal site.
type PortfolioSite struct {
	URL          string   `json:"url"`
	Title        string   `json:"title,omitempty"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	Reachable    bool     `json:"reachable"`
}
