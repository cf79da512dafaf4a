// Package pipeline provides the high-level orchestration for candidate
// signal extraction: document bytes in, ParsedResume and (optionally)
// OnlinePresenceProfile out.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jonathan/candidate-signals/internal/extraction"
	"github.com/jonathan/candidate-signals/internal/fetch"
	"github.com/jonathan/candidate-signals/internal/llm"
	"github.com/jonathan/candidate-signals/internal/observability"
	"github.com/jonathan/candidate-signals/internal/presence"
	"github.com/jonathan/candidate-signals/internal/segmenter"
	"github.com/jonathan/candidate-signals/internal/social"
	"github.com/jonathan/candidate-signals/internal/types"
)

// RunOptions holds configuration for running the extraction pipeline.
type RunOptions struct {
	APIKey      string        // Gemini API key; empty disables LLM assistance
	GitHubToken string        // Code-hosting API token; empty means anonymous
	UseBrowser  bool          // Allow headless rendering for SPA portfolio sites
	Verbose     bool          // Print box summaries of intermediate results
	Timeout     time.Duration // Per-request network timeout
	OutDir      string        // When set, JSON results are written here
}

// ParseDocument runs the document half of the pipeline: extraction,
// segmentation, then link resolution. The only hard error is an empty
// document; unreadable content degrades to an empty-field resume.
func ParseDocument(ctx context.Context, data []byte, filename string, opts RunOptions) (*types.ParsedResume, *extraction.Result, error) {
	var cleaner extraction.Cleaner
	var linkExtractor social.LinkExtractor

	if opts.APIKey != "" {
		client, err := llm.NewClient(ctx, llm.DefaultConfig(), opts.APIKey)
		if err != nil {
			// The heuristic paths remain the source of truth when the
			// collaborator cannot be constructed.
			fmt.Fprintf(os.Stderr, "Warning: LLM client unavailable: %v\n", err)
		} else {
			defer func() { _ = client.Close() }()
			ext := llm.NewExtractor(client)
			cleaner = ext
			linkExtractor = ext
		}
	}

	extractor := extraction.NewExtractor(cleaner)
	result, err := extractor.Extract(ctx, data, filename)
	if err != nil {
		return nil, nil, err
	}

	resume := segmenter.Segment(result.Text)

	resolver := social.NewResolver(linkExtractor)
	resume.SocialLinks = resolver.Resolve(ctx, result.Text, resume.SocialLinks)
	resume.Normalize()

	if opts.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintParsedResume(resume)
		printer.PrintSocialLinks(&resume.SocialLinks)
	}

	return resume, result, nil
}

// AnalyzePresence fans out over the validated links and aggregates whatever
// sources respond. It never fails: a fully-errored aggregation is an empty
// profile with diagnostics attached.
func AnalyzePresence(ctx context.Context, links types.SocialLinks, opts RunOptions) *types.OnlinePresenceProfile {
	fetchOpts := fetch.DefaultOptions()
	if opts.Timeout > 0 {
		fetchOpts.Timeout = opts.Timeout
	}

	aggregator := presence.NewAggregator(&presence.Options{
		GitHubToken: opts.GitHubToken,
		FetchOpts:   fetchOpts,
		UseBrowser:  opts.UseBrowser,
		Verbose:     opts.Verbose,
	})

	profile := aggregator.Aggregate(ctx, links)

	if opts.Verbose {
		observability.NewPrinter(os.Stdout).PrintPresenceProfile(profile)
	}

	return profile
}

// Analyze runs the full pipeline: parse the document, then analyze the
// online presence behind whatever links were resolved.
func Analyze(ctx context.Context, data []byte, filename string, opts RunOptions) (*types.ParsedResume, *types.OnlinePresenceProfile, error) {
	resume, _, err := ParseDocument(ctx, data, filename, opts)
	if err != nil {
		return nil, nil, err
	}

	profile := AnalyzePresence(ctx, resume.SocialLinks, opts)

	if opts.OutDir != "" {
		if err := WriteOutput(opts.OutDir, resume, profile); err != nil {
			return resume, profile, err
		}
	}

	return resume, profile, nil
}

// WriteOutput writes the resume and profile as JSON files in outDir.
// Either record may be nil, in which case its file is skipped.
func WriteOutput(outDir string, resume *types.ParsedResume, profile *types.OnlinePresenceProfile) error {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if resume != nil {
		if err := writeJSON(filepath.Join(outDir, "resume.parsed.json"), resume); err != nil {
			return err
		}
	}
	if profile != nil {
		if err := writeJSON(filepath.Join(outDir, "presence.json"), profile); err != nil {
			return err
		}
	}
	return nil
}

// writeJSON marshals v with indentation and writes it to path.
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
