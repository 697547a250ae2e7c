package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/expense-tracker/internal/buildinfo"
	"github.com/cleared-dev/expense-tracker/internal/menu"
)

// rootOptions are the persistent flags shared by every command.
type rootOptions struct {
	configPath string
	dataFile   string
}

// NewRootCommand creates the root CLI command with all subcommands registered.
// Run without a subcommand it starts the interactive menu.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:     "expense-tracker",
		Short:   "Personal expense tracker",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		Args:    cobra.NoArgs,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(cmd, opts)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.dataFile, "file", "", "expense data file (default: data_file from config, else expenses.json)")
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "YAML config file")

	rootCmd.AddCommand(newListCommand(opts))
	rootCmd.AddCommand(newSummaryCommand(opts))
	rootCmd.AddCommand(newExportCommand(opts))

	return rootCmd
}

func runMenu(cmd *cobra.Command, opts *rootOptions) error {
	sess, err := openSession(cmd, opts)
	if err != nil {
		return err
	}
	m := menu.New(sess.store, cmd.InOrStdin(), cmd.OutOrStdout())
	return m.Run()
}
