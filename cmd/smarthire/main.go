// Package main provides the entry point for the SmartHire AI mock interview service.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "smarthire",
	Short: "SmartHire AI mock interview service",
	Long:  "SmartHire AI turns an uploaded resume into a role-specific mock interview, scores the answers and delivers a report with job recommendations.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
