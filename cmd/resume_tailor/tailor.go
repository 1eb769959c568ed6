package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/evanqhuang/resume-tailor/internal/client"
	"github.com/evanqhuang/resume-tailor/internal/config"
	"github.com/evanqhuang/resume-tailor/internal/ingest"
	"github.com/evanqhuang/resume-tailor/internal/logger"
	"github.com/evanqhuang/resume-tailor/internal/session"
)

var (
	tailorConfigPath string
	tailorServer     string
	tailorJob        string
	tailorJobURL     string
	tailorTitle      string
	tailorCompany    string
	tailorThreshold  float64
	tailorOutput     string
	tailorVerbose    bool
)

var tailorCmd = &cobra.Command{
	Use:   "tailor",
	Short: "Tailor the resume to a job posting and export a PDF",
	Long: `Runs a full tailoring session against a running server: load the resume,
analyze the job posting, apply the suggested selections, and export the
tailored PDF.`,
	RunE: runTailor,
}

func init() {
	tailorCmd.Flags().StringVar(&tailorConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	tailorCmd.Flags().StringVar(&tailorServer, "server", "http://localhost:8080", "Base URL of the tailor server")
	tailorCmd.Flags().StringVarP(&tailorJob, "job", "j", "", "Path to job posting text file (mutually exclusive with --job-url)")
	tailorCmd.Flags().StringVar(&tailorJobURL, "job-url", "", "URL to fetch job posting from (mutually exclusive with --job)")
	tailorCmd.Flags().StringVarP(&tailorTitle, "title", "t", "", "Job title (required)")
	tailorCmd.Flags().StringVar(&tailorCompany, "company", "", "Company name")
	tailorCmd.Flags().Float64Var(&tailorThreshold, "threshold", 0, "Relevance score threshold for suggested selections (0-100)")
	tailorCmd.Flags().StringVarP(&tailorOutput, "out", "o", "", "Path to write the generated PDF")
	tailorCmd.Flags().BoolVarP(&tailorVerbose, "verbose", "v", false, "Print detailed debug information")
	rootCmd.AddCommand(tailorCmd)
}

func runTailor(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadMergedConfig(tailorConfigPath, config.Config{
		Job:       tailorJob,
		JobURL:    tailorJobURL,
		Threshold: tailorThreshold,
		Output:    tailorOutput,
	})
	if err != nil {
		return err
	}
	if tailorTitle == "" {
		return fmt.Errorf("a job title is required: pass --title")
	}
	if cfg.Output == "" {
		cfg.Output = "resume.pdf"
	}

	log, err := logger.New(false, tailorVerbose || cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	description, err := jobDescription(ctx, cfg)
	if err != nil {
		return err
	}

	c := client.New(tailorServer)
	sess := session.New(session.Collaborators{
		Source:    c,
		Analyzer:  c,
		Persister: c,
		Exporter:  c,
	}, log)

	if err := sess.Load(ctx); err != nil {
		return fmt.Errorf("failed to load resume from server: %w", err)
	}

	if err := sess.Analyze(ctx, client.AnalyzeRequest{
		JobTitle:    tailorTitle,
		Company:     tailorCompany,
		Description: description,
	}); err != nil {
		return fmt.Errorf("job analysis failed: %w", err)
	}

	sess.ApplySuggestions(cfg.Threshold)

	state := sess.Store().State()
	log.Info("suggestions applied",
		zap.Float64("threshold", cfg.Threshold),
		zap.Int("keywords", len(state.Analysis.Keywords)),
		zap.Int("suggested", len(state.Analysis.SuggestedItems)),
	)

	pdf, err := sess.Export(ctx)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	if err := os.WriteFile(cfg.Output, pdf, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", cfg.Output, err)
	}
	log.Info("tailored resume written", zap.String("path", cfg.Output), zap.Int("bytes", len(pdf)))
	return nil
}

// jobDescription resolves the posting text from a file or a URL.
func jobDescription(ctx context.Context, cfg *config.Config) (string, error) {
	switch {
	case cfg.Job != "":
		return ingest.FromFile(cfg.Job)
	case cfg.JobURL != "":
		return ingest.FromURL(ctx, cfg.JobURL)
	default:
		return "", fmt.Errorf("a job posting is required: pass --job or --job-url")
	}
}
