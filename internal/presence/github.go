// Package presence aggregates a candidate's public online footprint into an
// OnlinePresenceProfile. Every derived score is a pure function of the
// fetched snapshot, clamped to [0,100]; nothing is cached between analyses.
package presence

import (
	"context"
	"fmt"
	"time"

	"github.com/jonathan/candidate-signals/internal/githubapi"
	"github.com/jonathan/candidate-signals/internal/social"
	"github.com/jonathan/candidate-signals/internal/types"
)

// Push-count thresholds for the commit frequency label.
const (
	highFrequencyPushes   = 20
	mediumFrequencyPushes = 10
)

// activeWindow is how recently a repository must have been updated to count
// as active.
const activeWindow = 6 * 30 * 24 * time.Hour

// minDescriptionLength is the description length above which a repository
// counts as documented.
const minDescriptionLength = 10

// maxTopProjects caps the top-project contribution to the quality score.
const maxTopProjects = 5

// analyzeGitHub fetches the code-hosting snapshot for a profile URL and
// computes all derived metrics. The event feed is best-effort: a failure
// there degrades to empty commit patterns, not an error.
func (a *Aggregator) analyzeGitHub(ctx context.Context, profileURL string) (*types.GitHubProfile, error) {
	username := social.UsernameFromGitHubURL(profileURL)
	if username == "" {
		return nil, fmt.Errorf("no username in github url %q", profileURL)
	}

	user, err := a.github.GetUser(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("fetching user %s: %w", username, err)
	}

	apiRepos, err := a.github.ListRepositories(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("listing repositories for %s: %w", username, err)
	}

	events, err := a.github.ListEvents(ctx, username)
	if err != nil {
		events = nil
	}

	repos := convertRepos(apiRepos)
	now := a.now()

	return &types.GitHubProfile{
		Username:            user.Login,
		Name:                user.Name,
		Bio:                 user.Bio,
		Company:             user.Company,
		Location:            user.Location,
		Blog:                user.Blog,
		Followers:           user.Followers,
		Following:           user.Following,
		PublicRepos:         user.PublicRepos,
		AccountAgeYears:     accountAge(user.CreatedAt, now),
		Repositories:        repos,
		LanguageStats:       ComputeLanguageStats(repos),
		CommitPatterns:      ComputeCommitPatterns(events),
		RepoQuality:         ComputeRepoQuality(repos, now),
		ContributionMetrics: computeContributionMetrics(repos, events),
		CollaborationScore:  ComputeCollaborationScore(repos, events),
	}, nil
}

// convertRepos maps API payloads onto the domain type. Values are carried
// verbatim; nothing downstream mutates them.
func convertRepos(apiRepos []githubapi.Repo) []types.Repository {
	repos := make([]types.Repository, 0, len(apiRepos))
	for _, r := range apiRepos {
		repos = append(repos, types.Repository{
			Name:        r.Name,
			Description: r.Description,
			Language:    r.Language,
			Stars:       r.StargazersCount,
			Forks:       r.ForksCount,
			UpdatedAt:   r.UpdatedAt,
			IsForked:    r.Fork,
			OpenIssues:  r.OpenIssuesCount,
			SizeKB:      r.Size,
		})
	}
	return repos
}

// ComputeLanguageStats derives the language mix from non-forked repositories.
// Percentages are of repositories carrying a language; the primary language
// is the mode; diversity grows with distinct languages, capped at 100.
func ComputeLanguageStats(repos []types.Repository) types.LanguageStats {
	counts := make(map[string]int)
	total := 0
	for _, repo := range repos {
		if repo.IsForked || repo.Language == "" {
			continue
		}
		counts[repo.Language]++
		total++
	}

	stats := types.LanguageStats{Percentages: make(map[string]float64, len(counts))}
	if total == 0 {
		return stats
	}

	best := 0
	for language, count := range counts {
		stats.Percentages[language] = float64(count) / float64(total) * 100
		if count > best || (count == best && language < stats.PrimaryLanguage) {
			best = count
			stats.PrimaryLanguage = language
		}
	}
	stats.DiversityScore = clamp(len(counts) * 10)

	return stats
}

// ComputeCommitPatterns buckets push events by hour of day and weekday and
// labels the push cadence.
func ComputeCommitPatterns(events []githubapi.Event) types.CommitPatterns {
	patterns := types.CommitPatterns{
		ByHour:    make(map[int]int),
		ByWeekday: make(map[string]int),
		Frequency: "Low",
	}

	for _, event := range events {
		if event.Type != "PushEvent" {
			continue
		}
		patterns.RecentPushes++
		patterns.ByHour[event.CreatedAt.UTC().Hour()]++
		patterns.ByWeekday[event.CreatedAt.UTC().Weekday().String()]++
	}

	switch {
	case patterns.RecentPushes > highFrequencyPushes:
		patterns.Frequency = "High"
	case patterns.RecentPushes > mediumFrequencyPushes:
		patterns.Frequency = "Medium"
	}
	patterns.ConsistencyScore = clamp(patterns.RecentPushes * 2)

	return patterns
}

// ComputeRepoQuality scores maintenance signals over non-forked repositories.
func ComputeRepoQuality(repos []types.Repository, now time.Time) types.RepoQuality {
	var quality types.RepoQuality
	owned := 0

	for _, repo := range repos {
		if repo.IsForked {
			continue
		}
		owned++
		quality.TotalStars += repo.Stars
		if len(repo.Description) > minDescriptionLength {
			quality.DocumentedRepos++
		}
		if now.Sub(repo.UpdatedAt) <= activeWindow {
			quality.ActiveRepos++
		}
	}

	if owned > 0 {
		quality.AverageStars = float64(quality.TotalStars) / float64(owned)
	}
	quality.TopProjects = min(owned, maxTopProjects)
	quality.QualityScore = clamp(quality.DocumentedRepos*10 + quality.ActiveRepos*5 + quality.TotalStars*2 + quality.TopProjects*5)

	return quality
}

// ComputeCollaborationScore combines fork activity, stars and forks received,
// and recent event volume.
func ComputeCollaborationScore(repos []types.Repository, events []githubapi.Event) int {
	forkedRepos := 0
	starsReceived := 0
	forksReceived := 0
	for _, repo := range repos {
		if repo.IsForked {
			forkedRepos++
			continue
		}
		starsReceived += repo.Stars
		forksReceived += repo.Forks
	}
	return clamp(forkedRepos*5 + starsReceived*2 + forksReceived*3 + len(events))
}

// computeContributionMetrics counts event-feed activity by kind.
func computeContributionMetrics(repos []types.Repository, events []githubapi.Event) types.ContributionMetrics {
	metrics := types.ContributionMetrics{RecentEvents: len(events)}

	for _, event := range events {
		switch event.Type {
		case "PushEvent":
			metrics.PushEvents++
		case "PullRequestEvent":
			metrics.PullRequests++
		case "IssuesEvent":
			metrics.IssuesOpened++
		case "PullRequestReviewEvent":
			metrics.ReviewsGiven++
		}
	}

	for _, repo := range repos {
		if repo.IsForked {
			continue
		}
		metrics.StarsReceived += repo.Stars
		metrics.ForksReceived += repo.Forks
	}

	return metrics
}

// accountAge returns whole-and-fraction years between creation and now.
func accountAge(createdAt, now time.Time) float64 {
	if createdAt.IsZero() || now.Before(createdAt) {
		return 0
	}
	return now.Sub(createdAt).Hours() / (24 * 365.25)
}

// clamp bounds a derived score to [0,100].
func clamp(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
