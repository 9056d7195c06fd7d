package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/newsflow/hotaggr/pkg/cache"
	"github.com/newsflow/hotaggr/pkg/config"
	"github.com/newsflow/hotaggr/pkg/database"
	"github.com/newsflow/hotaggr/pkg/dispatch"
	"github.com/newsflow/hotaggr/pkg/llm"
	"github.com/newsflow/hotaggr/pkg/logging"
	"github.com/newsflow/hotaggr/pkg/prompt"
	"github.com/newsflow/hotaggr/pkg/version"
)

var envFile string

var rootCmd = &cobra.Command{
	Use:     "hotaggr",
	Short:   "LLM-driven hot news aggregation and event merging",
	Version: version.GitCommit,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if err := godotenv.Load(envFile); err != nil {
			slog.Warn("Could not load .env file, continuing with existing environment",
				"path", envFile, "error", err)
		}
		logging.Setup()
		slog.Debug("Logging initialized", "version", version.Full())
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Path to .env file")
}

// app holds the wired components shared by every command.
type app struct {
	cfg        *config.Config
	db         *database.Client
	llmClient  llm.Client
	dispatcher *dispatch.Dispatcher
	cache      *cache.Cache
}

// setup wires configuration, database, and the LLM dispatcher. The
// returned closer releases the database and gRPC connections.
func setup(ctx context.Context) (*app, func(), error) {
	cfg := config.Load()

	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load database config: %w", err)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	slog.Info("Connected to PostgreSQL database")

	// grpc.NewClient dials lazily; the connection is made on first RPC.
	llmClient, err := llm.NewGRPCClient(cfg.LLMServiceAddr)
	if err != nil {
		_ = dbClient.Close()
		return nil, nil, fmt.Errorf("failed to initialize LLM client: %w", err)
	}
	slog.Info("LLM client initialized", "addr", cfg.LLMServiceAddr)

	c := cache.New()
	dispatcher, err := dispatch.NewDispatcher(llmClient, prompt.NewBuilder(), c, cfg.Dispatch)
	if err != nil {
		_ = llmClient.Close()
		_ = dbClient.Close()
		return nil, nil, fmt.Errorf("failed to initialize dispatcher: %w", err)
	}

	a := &app{
		cfg:        cfg,
		db:         dbClient,
		llmClient:  llmClient,
		dispatcher: dispatcher,
		cache:      c,
	}
	closer := func() {
		if err := llmClient.Close(); err != nil {
			slog.Error("Error closing LLM client", "error", err)
		}
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}
	return a, closer, nil
}
