// Package main provides the entry point for the candidate signal extraction CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "signal_agent",
	Short: "Candidate signal extraction engine",
	Long:  "signal_agent extracts structured candidate information from resume documents and aggregates a candidate's public online footprint into normalized records for downstream scoring.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
