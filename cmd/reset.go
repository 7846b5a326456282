package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/weakspot/internal/logging"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete recorded ratings and quiz results",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		includeLLM, _ := cmd.Flags().GetBool("llm")
		if !yes {
			return fmt.Errorf("reset deletes learner data permanently; re-run with --yes to confirm")
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		logger, err := logging.NewStderr(cfg.Log)
		if err != nil {
			return err
		}
		defer logger.Sync()

		st, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.EventRepo().Reset(cmd.Context(), includeLLM); err != nil {
			return fmt.Errorf("reset: %w", err)
		}
		logger.Info("learner data reset", zap.Bool("llm_events", includeLLM))
		fmt.Fprintln(cmd.OutOrStdout(), "Learner data deleted.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm deletion")
	resetCmd.Flags().Bool("llm", false, "Also delete recorded LLM requests")
}
