package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/capy/internal/app"
	"github.com/abhisek/capy/internal/config"
	"github.com/abhisek/capy/internal/logging"
	"github.com/abhisek/capy/internal/quiz"
)

// runApp resolves configuration, loads the bank, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := config.Load(config.NewViper(cmd.Flags()))
	if err != nil {
		return err
	}

	logger, closeLog, err := logging.Open(cfg.LogFile, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	defer closeLog()

	bank, err := loadBank(cfg.BankPath)
	if err != nil {
		logger.Error("load bank failed", "path", cfg.BankPath, "error", err)
		return err
	}
	logger.Info("bank loaded",
		"path", cfg.BankPath,
		"questions", bank.Len(),
		"min_think_time", cfg.Session.MinThinkTime,
		"idle_threshold", cfg.Session.IdleThreshold)

	return app.Run(app.Options{
		Bank:    bank,
		Session: cfg.Session,
		Logger:  logger,
	})
}

// loadBank reads the bank at path, or returns the built-in bank when path is empty.
func loadBank(path string) (*quiz.Bank, error) {
	if path == "" {
		return quiz.DefaultBank(), nil
	}
	bank, err := quiz.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load bank: %w", err)
	}
	return bank, nil
}
