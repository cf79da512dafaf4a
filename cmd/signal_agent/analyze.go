package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/candidate-signals/internal/pipeline"
)

var analyzeCommand = &cobra.Command{
	Use:   "analyze",
	Short: "Run the full pipeline: parse a resume, then analyze its online presence",
	Long: `Parses the resume document, resolves the candidate's identity links, and aggregates their online presence behind those links.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runAnalyzeCmd,
}

var (
	analyzeConfigPath string
	analyzeFile       string
	analyzeOutDir     string
	analyzeUseBrowser bool
	analyzeVerbose    bool
)

func init() {
	analyzeCommand.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	analyzeCommand.Flags().StringVarP(&analyzeFile, "file", "f", "", "Path to the resume document")
	// Read through loadMergedConfig so the config-file merge sees it.
	analyzeCommand.Flags().String("api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	analyzeCommand.Flags().StringVarP(&analyzeOutDir, "out", "o", "", "Directory for JSON output (optional, prints to stdout when unset)")
	analyzeCommand.Flags().BoolVar(&analyzeUseBrowser, "use-browser", false, "Use headless browser for SPA sites (requires Chrome)")
	analyzeCommand.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(analyzeCommand)
}

func runAnalyzeCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadMergedConfig(cmd, analyzeConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("file") {
		cfg.File = analyzeFile
	}
	if cmd.Flags().Changed("out") {
		cfg.OutDir = analyzeOutDir
	}
	if cfg.File == "" {
		return fmt.Errorf("no resume file provided: use --file or set 'file' in the config")
	}

	data, err := os.ReadFile(cfg.File)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}

	opts := pipeline.RunOptions{
		APIKey:      cfg.APIKey,
		GitHubToken: cfg.GitHubToken,
		UseBrowser:  cfg.UseBrowser || analyzeUseBrowser,
		Verbose:     cfg.Verbose || analyzeVerbose,
		Timeout:     time.Duration(cfg.TimeoutSeconds) * time.Second,
		OutDir:      cfg.OutDir,
	}

	resume, profile, err := pipeline.Analyze(ctx, data, filepath.Base(cfg.File), opts)
	if err != nil {
		return err
	}

	if cfg.OutDir == "" {
		if err := printJSON(resume); err != nil {
			return err
		}
		return printJSON(profile)
	}
	fmt.Printf("Wrote results to %s\n", cfg.OutDir)
	return nil
}
