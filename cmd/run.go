package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/weakspot/internal/app"
	"github.com/abhisek/weakspot/internal/llm"
	"github.com/abhisek/weakspot/internal/logging"
	"github.com/abhisek/weakspot/internal/studypack"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, closeLog, err := logging.NewFile(cfg.Log)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer closeLog()

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	sessionID := uuid.NewString()
	logger = logger.With(zap.String("component", "tui"))
	logger.Info("session starting", zap.String("session_id", sessionID))

	eventRepo := st.EventRepo()
	opts := app.Options{
		SessionID:     sessionID,
		Events:        eventRepo,
		ReferencePath: cfg.ReferencePath,
		Logger:        logger,
	}

	provider, err := llm.NewProvider(ctx, cfg.LLM, eventRepo, logger)
	switch {
	case err != nil:
		logger.Warn("llm provider unavailable, study notes disabled", zap.Error(err))
	case provider == nil:
		logger.Info("no llm provider configured, study notes disabled")
	default:
		logger.Info("llm provider ready", zap.String("provider", provider.Name()), zap.String("model", provider.ModelID()))
		notesCfg := studypack.DefaultConfig()
		notesCfg.Timeout = cfg.LLM.Timeout
		opts.Notes = studypack.NewService(provider, notesCfg)
	}

	return app.Run(ctx, opts)
}
