package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/greenhope/everrich/internal/app"
	"github.com/greenhope/everrich/internal/config"
	"github.com/greenhope/everrich/internal/inquiry"
	"github.com/greenhope/everrich/internal/logging"
)

// runApp loads configuration, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, closer, err := openLogger(cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	logger.Info("starting", "version", version, "recipient", cfg.Recipient)

	return app.Run(app.Options{
		Config:    cfg,
		Submitter: inquiry.NewSubmitter(cfg.Settings(), inquiry.BrowserOpener{}, logger),
		Logger:    logger,
	})
}

// openLogger opens the log configured by --log or GREENHOPE_LOG.
func openLogger(cfg *config.Config) (*slog.Logger, io.Closer, error) {
	logger, closer, err := logging.Open(cfg.LogPath, slog.LevelInfo)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	return logger, closer, nil
}
