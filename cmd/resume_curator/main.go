// Package main provides the entry point for the resume-curator CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "resume_curator",
	Short: "Resume Curator tailors a candidate profile to a job description",
	Long:  "Resume Curator scores a candidate's experience bank against a job description, selects the most relevant content that fits the page budget, and assembles a tailored resume.",
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to a config file (optional)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "Verbose/debug logging")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "JSON format for logging")

	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
