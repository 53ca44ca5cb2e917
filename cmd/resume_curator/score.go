package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jonathan/resume-curator/internal/config"
	"github.com/jonathan/resume-curator/internal/job"
	"github.com/jonathan/resume-curator/internal/observability"
	"github.com/jonathan/resume-curator/internal/profile"
	"github.com/jonathan/resume-curator/internal/scoring"
)

var scoreCommand = &cobra.Command{
	Use:   "score",
	Short: "Score a profile against a job description without building a resume",
	Long:  "Runs only the scoring stage and prints every entry with its relevance score, useful for checking how a profile matches a job before curating.",
	RunE:  runScore,
}

var (
	scoreProfileDir string
	scoreJobPath    string
	scoreAsJSON     bool
)

func init() {
	scoreCommand.Flags().StringVarP(&scoreProfileDir, "profile", "p", "", "Directory containing the profile JSON documents")
	scoreCommand.Flags().StringVar(&scoreJobPath, "job", "", "Path to the job description JSON file")
	scoreCommand.Flags().BoolVar(&scoreAsJSON, "json-output", false, "Print the scored entries as JSON")

	_ = scoreCommand.MarkFlagRequired("profile")
	_ = scoreCommand.MarkFlagRequired("job")

	rootCmd.AddCommand(scoreCommand)
}

func runScore(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(viper.GetViper(), cfgFile)
	if err != nil {
		return err
	}

	candidate, err := profile.Load(os.DirFS(scoreProfileDir))
	if err != nil {
		return err
	}

	jobContent, err := os.ReadFile(scoreJobPath)
	if err != nil {
		return fmt.Errorf("reading job description %s: %w", scoreJobPath, err)
	}
	jd, err := job.Parse(jobContent)
	if err != nil {
		return err
	}

	scorer := scoring.NewScorer(scoringConfig(cfg))
	scored := scorer.Score(candidate, jd)

	if scoreAsJSON {
		return writeJSON("", scored)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintJobDescription(jd)
	printer.PrintScoredEntries(scored)
	return nil
}
