// Package main provides the entry point for the cv_extract command line tool.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cv_extract",
	Short: "Extract structured profiles from résumé and CV text",
	Long:  "cv_extract segments plain-text résumés and CVs into sections and extracts contact details, education, experience, publications, and skills into a structured profile draft with per-field confidence scores.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
