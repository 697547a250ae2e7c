package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/expense-tracker/internal/config"
	"github.com/cleared-dev/expense-tracker/internal/logging"
	"github.com/cleared-dev/expense-tracker/internal/store"
)

// session is the loaded state every command works against.
type session struct {
	cfg    *config.Config
	logger *slog.Logger
	store  *store.Store
}

// openSession resolves configuration and loads the expense store. An
// unreadable or corrupt data file is reported and the session starts empty.
func openSession(cmd *cobra.Command, opts *rootOptions) (*session, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if opts.dataFile != "" {
		cfg.DataFile = opts.dataFile
	}

	logger, err := logging.New(cmd.ErrOrStderr(), cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("configuring logging: %w", err)
	}

	expenses, err := store.Load(cfg.DataFile)
	if err != nil {
		logger.Warn("starting with an empty expense list", "path", cfg.DataFile, "error", err)
		fmt.Fprintln(cmd.OutOrStdout(), "Error loading data. Starting with an empty expense list.")
		expenses = nil
	}
	logger.Debug("expenses loaded", "path", cfg.DataFile, "count", len(expenses))

	s := store.New(cfg.DataFile, expenses, logger)
	if cfg.AuditLog.Enabled {
		s.SetAuditLog(cfg.AuditLog.Path)
	}

	return &session{cfg: cfg, logger: logger, store: s}, nil
}
