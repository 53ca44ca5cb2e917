package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-curator/internal/profile"
)

var validateCommand = &cobra.Command{
	Use:   "validate",
	Short: "Validate a profile directory and report every problem found",
	RunE:  runValidate,
}

var validateProfileDir string

func init() {
	validateCommand.Flags().StringVarP(&validateProfileDir, "profile", "p", "", "Directory containing the profile JSON documents")

	_ = validateCommand.MarkFlagRequired("profile")

	rootCmd.AddCommand(validateCommand)
}

func runValidate(_ *cobra.Command, _ []string) error {
	candidate, err := profile.Load(os.DirFS(validateProfileDir))
	if err != nil {
		var verr *profile.ValidationError
		if errors.As(err, &verr) {
			fmt.Printf("Profile has %d problem(s):\n", len(verr.Violations))
			for _, v := range verr.Violations {
				fmt.Printf("  - [%s] %s: %s\n", v.Document, v.Field, v.Message)
			}
			os.Exit(1)
		}
		return err
	}

	fmt.Printf("Profile OK: %d experiences, %d projects, %d education entries\n",
		len(candidate.Experiences), len(candidate.Projects), len(candidate.Education))
	return nil
}
