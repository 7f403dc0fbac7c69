package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/greenhope/everrich/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "greenhope",
	Short: "GREENHOPE EVERRICH family financial planning",
	Long:  "GREENHOPE EVERRICH: the advisor's site and risk diagnostic in your terminal.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("env", config.DefaultEnvFile, "Optional .env file to load before reading the environment")
	rootCmd.PersistentFlags().String("log", "", "Write JSON logs to this file (overrides GREENHOPE_LOG)")
	rootCmd.PersistentFlags().String("recipient", "", "Consultation mailbox (overrides GREENHOPE_RECIPIENT)")
	rootCmd.Flags().Bool("no-splash", false, "Skip the welcome animation")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(diagnoseCmd)
	rootCmd.AddCommand(draftCmd)
}

// loadConfig reads the env file and environment, then applies flags, which
// have the highest priority.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	envFile, _ := cmd.Flags().GetString("env")
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, err
	}

	if p, _ := cmd.Flags().GetString("log"); p != "" {
		cfg.LogPath = p
	}
	if r, _ := cmd.Flags().GetString("recipient"); r != "" {
		cfg.Recipient = r
	}
	if f := cmd.Flags().Lookup("no-splash"); f != nil && f.Changed {
		cfg.SkipSplash, _ = cmd.Flags().GetBool("no-splash")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
