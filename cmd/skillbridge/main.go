// Package main provides the entry point for the SkillBridge HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "skillbridge",
	Short: "SkillBridge HTTP API Server",
	Long:  "SkillBridge analyzes resumes with generative AI, extracts a categorized skill profile, and produces gap analysis reports against a career domain, a job description, or current market trends.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
