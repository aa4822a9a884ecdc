// Package main provides the entry point for the HireLens resume analysis server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "hirelens",
	Short: "HireLens resume analysis service",
	Long:  "HireLens extracts structured candidate profiles from uploaded resumes and scores them against a fixed suitability rubric via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
