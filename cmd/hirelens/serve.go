package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aravindh/hirelens/internal/config"
	"github.com/aravindh/hirelens/internal/extraction"
	"github.com/aravindh/hirelens/internal/llm"
	"github.com/aravindh/hirelens/internal/logging"
	"github.com/aravindh/hirelens/internal/pipeline"
	"github.com/aravindh/hirelens/internal/server"
	"github.com/aravindh/hirelens/internal/store"
)

var (
	servePort       int
	serveConfigPath string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes resume upload, lookup, and assessment endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to JSON config file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(serveConfigPath)
	if err != nil {
		return err
	}
	cfg.ApplyEnv()
	if servePort != 0 {
		cfg.Port = servePort
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logging.Init(cfg.LogLevel, cfg.LogFormat)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	client, err := llm.NewGeminiClient(ctx, llm.DefaultConfig(), cfg.GeminiAPIKey)
	if err != nil {
		return fmt.Errorf("failed to create model client: %w", err)
	}
	defer client.Close()

	st, err := store.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer st.Close()
	if err := st.EnsureSchema(ctx); err != nil {
		return err
	}

	analyzer := pipeline.NewAnalyzer(client, extraction.NewExtractor(cfg.TikaURL), st)
	srv := server.New(server.Config{Port: cfg.Port}, analyzer)

	return srv.Start()
}
