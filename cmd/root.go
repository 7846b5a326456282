package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/weakspot/internal/config"
	"github.com/abhisek/weakspot/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "weakspot",
	Short: "Terminal study coach",
	Long: "weakspot finds the subjects you struggle with, builds a study package for one of them,\n" +
		"quizzes you on it and tells you what to do next.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config file (overrides "+config.PathEnvVar+")")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides db_path)")
	rootCmd.PersistentFlags().String("reference", "", "Path to reference dataset CSV (overrides reference_path)")

	rootCmd.AddCommand(diagnoseCmd)
	rootCmd.AddCommand(subjectsCmd)
	rootCmd.AddCommand(bandCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig resolves the configuration and applies flag overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(config.Options{Path: path})
	if err != nil {
		return nil, err
	}
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.DBPath = p
	}
	if p, _ := cmd.Flags().GetString("reference"); p != "" {
		cfg.ReferencePath = p
	}
	return cfg, nil
}

// openStore opens the event store at the configured path, falling back
// to the default XDG location.
func openStore(cfg *config.Config) (*store.Store, error) {
	path := cfg.DBPath
	if path == "" {
		var err error
		if path, err = store.DefaultDBPath(); err != nil {
			return nil, fmt.Errorf("resolve database path: %w", err)
		}
	}
	if err := store.EnsureDir(path); err != nil {
		return nil, fmt.Errorf("create database dir: %w", err)
	}
	s, err := store.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}
