package presence

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/candidate-signals/internal/fetch"
	"github.com/jonathan/candidate-signals/internal/githubapi"
	"github.com/jonathan/candidate-signals/internal/types"
)

// Aggregator fetches the three presence sources concurrently and merges the
// results. Sources are independently fallible: a failed source yields an
// absent field plus a diagnostic entry, never an aborted aggregation.
type Aggregator struct {
	github     *githubapi.Client
	fetchOpts  *fetch.Options
	useBrowser bool
	verbose    bool
	now        func() time.Time
}

// Options configures an Aggregator.
type Options struct {
	GitHubToken  string
	GitHubClient *githubapi.Client // Overrides the token-built client when set
	FetchOpts    *fetch.Options
	UseBrowser   bool
	Verbose      bool
}

// NewAggregator creates an Aggregator.
func NewAggregator(opts *Options) *Aggregator {
	if opts == nil {
		opts = &Options{}
	}
	fetchOpts := opts.FetchOpts
	if fetchOpts == nil {
		fetchOpts = fetch.DefaultOptions()
	}
	github := opts.GitHubClient
	if github == nil {
		github = githubapi.NewClient(opts.GitHubToken)
	}
	return &Aggregator{
		github:     github,
		fetchOpts:  fetchOpts,
		useBrowser: opts.UseBrowser,
		verbose:    opts.Verbose,
		now:        time.Now,
	}
}

// Aggregate fans out over the provided URLs and joins the results. Empty
// URLs mean the source is skipped; a partial profile is a valid outcome.
func (a *Aggregator) Aggregate(ctx context.Context, links types.SocialLinks) *types.OnlinePresenceProfile {
	profile := &types.OnlinePresenceProfile{
		AnalysisID: uuid.New(),
		FetchedAt:  a.now(),
	}

	var mu sync.Mutex
	recordError := func(source string, err error) {
		log.Printf("presence: %s source failed: %v", source, err)
		mu.Lock()
		profile.Errors = append(profile.Errors, types.SourceError{Source: source, Message: err.Error()})
		mu.Unlock()
	}

	// Each goroutine writes only its own field and returns nil so one
	// failed source never cancels the others.
	g, gCtx := errgroup.WithContext(ctx)

	if links.GitHub != "" {
		g.Go(func() error {
			gh, err := a.analyzeGitHub(gCtx, links.GitHub)
			if err != nil {
				recordError("github", err)
				return nil
			}
			profile.GitHub = gh
			return nil
		})
	}

	if links.LinkedIn != "" {
		g.Go(func() error {
			li, err := a.checkLinkedIn(gCtx, links.LinkedIn)
			if err != nil {
				recordError("linkedin", err)
				return nil
			}
			profile.LinkedIn = li
			return nil
		})
	}

	if links.Portfolio != "" {
		g.Go(func() error {
			site, err := a.analyzePortfolio(gCtx, links.Portfolio)
			if err != nil {
				recordError("portfolio", err)
				return nil
			}
			profile.Portfolio = site
			return nil
		})
	}

	_ = g.Wait()

	return profile
}
