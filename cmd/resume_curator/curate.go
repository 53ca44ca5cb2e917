package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jonathan/resume-curator/internal/config"
	"github.com/jonathan/resume-curator/internal/job"
	"github.com/jonathan/resume-curator/internal/llm"
	"github.com/jonathan/resume-curator/internal/logger"
	"github.com/jonathan/resume-curator/internal/optimize"
	"github.com/jonathan/resume-curator/internal/pipeline"
	"github.com/jonathan/resume-curator/internal/profile"
	"github.com/jonathan/resume-curator/internal/scoring"
)

var curateCommand = &cobra.Command{
	Use:   "curate",
	Short: "Curate a tailored resume for a job description",
	Long: `Runs the full curation pipeline: load and validate the profile, score it
against the job description, select the best-fitting content for the page
budget, optionally optimize bullet wording, and assemble the resume.`,
	RunE: runCurate,
}

var (
	curateProfileDir string
	curateJobPath    string
	curateOutput     string
)

func init() {
	curateCommand.Flags().StringVarP(&curateProfileDir, "profile", "p", "", "Directory containing the profile JSON documents")
	curateCommand.Flags().StringVar(&curateJobPath, "job", "", "Path to the job description JSON file")
	curateCommand.Flags().StringVarP(&curateOutput, "output", "o", "", "Write the resume JSON here instead of stdout")

	curateCommand.Flags().Int("pages", 1, "Page budget for the resume")
	curateCommand.Flags().Int("bullet-cap", 4, "Maximum bullets kept per entry")
	curateCommand.Flags().Bool("optimize", false, "Rewrite bullet text with the LLM")
	curateCommand.Flags().String("db-url", "", "PostgreSQL connection URL for artifact storage (optional)")
	curateCommand.Flags().BoolP("verbose", "v", false, "Print stage summaries")

	_ = viper.BindPFlag("pages", curateCommand.Flags().Lookup("pages"))
	_ = viper.BindPFlag("bullet-cap", curateCommand.Flags().Lookup("bullet-cap"))
	_ = viper.BindPFlag("optimizer.enabled", curateCommand.Flags().Lookup("optimize"))
	_ = viper.BindPFlag("database-url", curateCommand.Flags().Lookup("db-url"))
	_ = viper.BindPFlag("verbose", curateCommand.Flags().Lookup("verbose"))

	_ = curateCommand.MarkFlagRequired("profile")
	_ = curateCommand.MarkFlagRequired("job")

	rootCmd.AddCommand(curateCommand)
}

func runCurate(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(viper.GetViper(), cfgFile)
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.JSON, cfg.Debug)
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	candidate, err := profile.Load(os.DirFS(curateProfileDir))
	if err != nil {
		return err
	}

	jobContent, err := os.ReadFile(curateJobPath)
	if err != nil {
		return fmt.Errorf("reading job description %s: %w", curateJobPath, err)
	}
	jd, err := job.Parse(jobContent)
	if err != nil {
		return err
	}

	opts := pipeline.Options{
		Pages:       cfg.Pages,
		BulletCap:   cfg.BulletCap,
		Scoring:     scoringConfig(cfg),
		DatabaseURL: cfg.DatabaseURL,
		Verbose:     cfg.Verbose,
		Out:         os.Stdout,
		Log:         log,
	}

	if cfg.Optimizer.Enabled {
		apiKey := cfg.Optimizer.APIKey
		if apiKey == "" {
			apiKey = os.Getenv("GEMINI_API_KEY")
		}
		client, err := llm.NewGeminiClient(ctx, apiKey, cfg.Optimizer.Model)
		if err != nil {
			return fmt.Errorf("creating LLM client: %w", err)
		}
		defer func() { _ = client.Close() }()
		opts.Optimizer = optimize.NewLLMOptimizer(client, log, optimize.Options{
			Timeout: time.Duration(cfg.Optimizer.TimeoutSeconds) * time.Second,
		})
	}

	result, err := pipeline.Run(ctx, candidate, jd, opts)
	if err != nil {
		return err
	}

	for _, warning := range result.Warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", warning)
	}
	if result.Selection.Empty() {
		fmt.Fprintf(os.Stderr, "Warning: page budget too small, no content selected\n")
	}

	return writeJSON(curateOutput, result.Resume)
}

// scoringConfig maps file configuration onto the scorer, pinning the
// reference date at the CLI boundary so the pipeline itself stays pure.
func scoringConfig(cfg *config.Config) scoring.Config {
	sc := scoring.DefaultConfig(time.Now())
	if cfg.Scoring.RequiredWeight > 0 {
		sc.RequiredWeight = cfg.Scoring.RequiredWeight
	}
	if cfg.Scoring.PreferredWeight > 0 {
		sc.PreferredWeight = cfg.Scoring.PreferredWeight
	}
	if cfg.Scoring.KeywordWeight > 0 {
		sc.KeywordWeight = cfg.Scoring.KeywordWeight
	}
	if cfg.Scoring.Recency.Cap > 0 {
		sc.Recency = cfg.Scoring.Recency
	}
	return sc
}

// writeJSON writes v as indented JSON to path, or stdout when path is empty
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling output: %w", err)
	}
	data = append(data, '\n')

	if path == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing output %s: %w", path, err)
	}
	return nil
}
