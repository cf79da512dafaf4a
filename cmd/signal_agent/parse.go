package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/candidate-signals/internal/config"
	"github.com/jonathan/candidate-signals/internal/pipeline"
)

var parseCommand = &cobra.Command{
	Use:   "parse",
	Short: "Parse a resume document into structured JSON",
	Long: `Runs the document half of the pipeline: text extraction (direct, heuristic, or AI-assisted), section segmentation, and social link resolution.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runParseCmd,
}

var (
	parseConfigPath string
	parseFile       string
	parseOutDir     string
	parseUseBrowser bool
	parseVerbose    bool
)

func init() {
	parseCommand.Flags().StringVar(&parseConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	parseCommand.Flags().StringVarP(&parseFile, "file", "f", "", "Path to the resume document")
	// Read through loadMergedConfig so the config-file merge sees it.
	parseCommand.Flags().String("api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	parseCommand.Flags().StringVarP(&parseOutDir, "out", "o", "", "Directory for JSON output (optional, prints to stdout when unset)")
	parseCommand.Flags().BoolVar(&parseUseBrowser, "use-browser", false, "Use headless browser for SPA sites (requires Chrome)")
	parseCommand.Flags().BoolVarP(&parseVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(parseCommand)
}

func runParseCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadMergedConfig(cmd, parseConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("file") {
		cfg.File = parseFile
	}
	if cmd.Flags().Changed("out") {
		cfg.OutDir = parseOutDir
	}
	if cfg.File == "" {
		return fmt.Errorf("no resume file provided: use --file or set 'file' in the config")
	}

	data, err := os.ReadFile(cfg.File)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}

	opts := pipeline.RunOptions{
		APIKey:     cfg.APIKey,
		UseBrowser: cfg.UseBrowser || parseUseBrowser,
		Verbose:    cfg.Verbose || parseVerbose,
		Timeout:    time.Duration(cfg.TimeoutSeconds) * time.Second,
	}

	resume, result, err := pipeline.ParseDocument(ctx, data, filepath.Base(cfg.File), opts)
	if err != nil {
		return err
	}

	if opts.Verbose {
		fmt.Printf("Extraction strategy: %s (%d chars)\n", result.Strategy, result.Length)
	}

	if cfg.OutDir != "" {
		return pipeline.WriteOutput(cfg.OutDir, resume, nil)
	}
	return printJSON(resume)
}

// loadMergedConfig loads the optional config file and applies env-var
// defaults for credentials.
func loadMergedConfig(cmd *cobra.Command, configPath string) (*config.Config, error) {
	var cfg config.Config
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return nil, err
		}
		cfg = *loaded
	}

	cfg = cfg.MergeWithDefaults(config.Config{
		APIKey:      os.Getenv("GEMINI_API_KEY"),
		GitHubToken: os.Getenv("GITHUB_TOKEN"),
	})

	if cmd.Flags().Changed("api-key") {
		apiKey, _ := cmd.Flags().GetString("api-key")
		cfg.APIKey = apiKey
	}

	return &cfg, nil
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
