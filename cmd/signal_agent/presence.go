package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/candidate-signals/internal/pipeline"
	"github.com/jonathan/candidate-signals/internal/types"
)

var presenceCommand = &cobra.Command{
	Use:   "presence",
	Short: "Aggregate a candidate's online presence from their profile URLs",
	Long: `Fetches the provided profile URLs concurrently and computes language, activity, quality, and collaboration metrics. A failed source leaves its field absent; partial profiles are expected.

URLs can be given directly or loaded from a previously parsed resume with --from.`,
	RunE: runPresenceCmd,
}

var (
	presenceConfigPath string
	presenceGitHub     string
	presenceLinkedIn   string
	presencePortfolio  string
	presenceFrom       string
	presenceOutDir     string
	presenceUseBrowser bool
	presenceVerbose    bool
)

func init() {
	presenceCommand.Flags().StringVar(&presenceConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	presenceCommand.Flags().StringVar(&presenceGitHub, "github", "", "GitHub profile URL")
	presenceCommand.Flags().StringVar(&presenceLinkedIn, "linkedin", "", "LinkedIn profile URL")
	presenceCommand.Flags().StringVar(&presencePortfolio, "portfolio", "", "Portfolio site URL")
	presenceCommand.Flags().StringVar(&presenceFrom, "from", "", "Path to a resume.parsed.json to take links from")
	presenceCommand.Flags().StringVarP(&presenceOutDir, "out", "o", "", "Directory for JSON output (optional, prints to stdout when unset)")
	presenceCommand.Flags().BoolVar(&presenceUseBrowser, "use-browser", false, "Use headless browser for SPA sites (requires Chrome)")
	presenceCommand.Flags().BoolVarP(&presenceVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(presenceCommand)
}

func runPresenceCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadMergedConfig(cmd, presenceConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("out") {
		cfg.OutDir = presenceOutDir
	}

	links, err := collectLinks()
	if err != nil {
		return err
	}
	if links.IsEmpty() {
		return fmt.Errorf("no profile URLs provided: use --github/--linkedin/--portfolio or --from")
	}

	opts := pipeline.RunOptions{
		GitHubToken: cfg.GitHubToken,
		UseBrowser:  cfg.UseBrowser || presenceUseBrowser,
		Verbose:     cfg.Verbose || presenceVerbose,
		Timeout:     time.Duration(cfg.TimeoutSeconds) * time.Second,
	}

	profile := pipeline.AnalyzePresence(ctx, links, opts)

	if cfg.OutDir != "" {
		return pipeline.WriteOutput(cfg.OutDir, nil, profile)
	}
	return printJSON(profile)
}

// collectLinks builds the link set from flags, optionally seeded from a
// parsed resume file.
func collectLinks() (types.SocialLinks, error) {
	var links types.SocialLinks

	if presenceFrom != "" {
		data, err := os.ReadFile(presenceFrom)
		if err != nil {
			return links, fmt.Errorf("failed to read parsed resume: %w", err)
		}
		var resume types.ParsedResume
		if err := json.Unmarshal(data, &resume); err != nil {
			return links, fmt.Errorf("failed to parse resume JSON: %w", err)
		}
		links = resume.SocialLinks
	}

	// Direct flags win over the file.
	if presenceGitHub != "" {
		links.GitHub = presenceGitHub
	}
	if presenceLinkedIn != "" {
		links.LinkedIn = presenceLinkedIn
	}
	if presencePortfolio != "" {
		links.Portfolio = presencePortfolio
	}

	return links, nil
}
