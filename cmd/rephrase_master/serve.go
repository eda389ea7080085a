package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/rephrase-master/internal/config"
	"github.com/jonathan/rephrase-master/internal/db"
	"github.com/jonathan/rephrase-master/internal/entitlement"
	"github.com/jonathan/rephrase-master/internal/history"
	"github.com/jonathan/rephrase-master/internal/llm"
	"github.com/jonathan/rephrase-master/internal/observability"
	"github.com/jonathan/rephrase-master/internal/rephrase"
	"github.com/jonathan/rephrase-master/internal/server"
	"github.com/jonathan/rephrase-master/internal/server/ratelimit"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	servePort int
	servePro  bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes rephrase, share, settings and history endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT)")
	serveCmd.Flags().BoolVar(&servePro, "pro", false, "Start with the Pro tier unlocked")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}
	if err := cfg.RequireAPIKey(); err != nil {
		return err
	}

	logger := observability.NewLogger(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	ctx := context.Background()

	service, closeClient, err := newRephraseService(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeClient()

	store, closeStore, err := openHistoryStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	srv, err := server.New(server.Config{
		Port:          cfg.Port,
		State:         initialState(servePro),
		Rephraser:     service,
		History:       store,
		RateLimit:     ratelimit.NewConfig(cfg.RateLimitEnabled, cfg.RateLimitDefault, cfg.RateLimitWindow, cfg.Whitelist()),
		Logger:        logger,
		ResetSchedule: cfg.DailyResetSchedule,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

// initialState seeds the entitlement the server starts with.
func initialState(pro bool) *entitlement.State {
	snap := entitlement.DefaultSnapshot()
	snap.IsPro = pro
	return entitlement.NewStateFrom(snap)
}

// openHistoryStore uses PostgreSQL when DATABASE_URL is set and process
// memory otherwise.
func openHistoryStore(ctx context.Context, cfg *config.Config, logger logrus.FieldLogger) (history.Store, func(), error) {
	if cfg.DatabaseURL == "" {
		logger.Info("DATABASE_URL not set, keeping history in memory")
		return history.NewMemoryStore(), func() {}, nil
	}

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("history stored in PostgreSQL")
	return db.NewHistoryStore(database), database.Close, nil
}

// newRephraseService wires the Gemini client into a rephrase.Service.
func newRephraseService(ctx context.Context, cfg *config.Config, logger logrus.FieldLogger) (*rephrase.Service, func(), error) {
	llmConfig := llm.DefaultConfig()
	if cfg.GeminiModel != "" {
		llmConfig = llmConfig.WithModel(llm.TierStandard, cfg.GeminiModel)
	}

	client, err := llm.NewClient(ctx, llmConfig, cfg.GeminiAPIKey)
	if err != nil {
		return nil, nil, err
	}

	service := rephrase.NewService(client, rephrase.Options{
		CacheTTL: cfg.RephraseCacheTTL,
		Logger:   logger,
	})
	closeClient := func() {
		if err := client.Close(); err != nil {
			logger.WithError(err).Warn("failed to close LLM client")
		}
	}
	return service, closeClient, nil
}
