// Package main provides the entry point for the careerfolio HTTP API server
// and its data-directory tooling.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "careerfolio",
	Short: "Careerfolio profile and document API",
	Long:  "Careerfolio stores a personal career profile and derives résumé and career-statement documents, dashboard statistics and tech-stack summaries from it.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
