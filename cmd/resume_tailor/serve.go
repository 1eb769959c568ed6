package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/evanqhuang/resume-tailor/internal/analysis"
	"github.com/evanqhuang/resume-tailor/internal/config"
	"github.com/evanqhuang/resume-tailor/internal/logger"
	"github.com/evanqhuang/resume-tailor/internal/orderstore"
	"github.com/evanqhuang/resume-tailor/internal/rendering"
	"github.com/evanqhuang/resume-tailor/internal/resume"
	"github.com/evanqhuang/resume-tailor/internal/server"
)

var (
	serveConfigPath string
	servePort       int
	serveResume     string
	serveOrderFile  string
	serveJSONLog    bool
	serveVerbose    bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the resume, job analysis, section order, and PDF generation endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on")
	serveCmd.Flags().StringVarP(&serveResume, "resume", "r", "", "Path to resume YAML file")
	serveCmd.Flags().StringVar(&serveOrderFile, "order-file", "", "Path to section order YAML file (ignored when DATABASE_URL is set)")
	serveCmd.Flags().BoolVar(&serveJSONLog, "json-log", false, "Log in JSON instead of console format")
	serveCmd.Flags().BoolVarP(&serveVerbose, "verbose", "v", false, "Print detailed debug information")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadMergedConfig(serveConfigPath, config.Config{
		Resume:    serveResume,
		OrderFile: serveOrderFile,
		Port:      servePort,
	})
	if err != nil {
		return err
	}
	if cfg.Resume == "" {
		return fmt.Errorf("a resume file is required: pass --resume or set 'resume' in the config file")
	}
	if cfg.OrderFile == "" {
		cfg.OrderFile = "section_order.yaml"
	}

	log, err := logger.New(serveJSONLog, serveVerbose || cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	var orders orderstore.Store
	if cfg.DatabaseURL != "" {
		pg, err := orderstore.ConnectPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer pg.Close()
		orders = pg
	} else {
		orders = orderstore.NewFileStore(cfg.OrderFile)
	}

	deps := server.Deps{
		Resume:  resume.NewCache(cfg.Resume),
		Orders:  orders,
		Printer: rendering.ChromePrinter{},
		Log:     log,
	}

	if cfg.APIKey != "" {
		gen, err := analysis.NewGemini(ctx, cfg.APIKey, os.Getenv("GEMINI_MODEL"))
		if err != nil {
			return fmt.Errorf("failed to create Gemini client: %w", err)
		}
		defer func() { _ = gen.Close() }()
		deps.Analyzer = analysis.NewAnalyzer(gen, log)
	}

	return server.New(server.Config{Port: cfg.Port}, deps).Start()
}

// loadMergedConfig loads the optional config file, overlays environment
// variables, applies flag values on top, and validates the result.
func loadMergedConfig(path string, flags config.Config) (*config.Config, error) {
	cfg := &config.Config{}
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	cfg.FromEnv()

	merged := flags.MergeWithDefaults(*cfg)
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return &merged, nil
}
