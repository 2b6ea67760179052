package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/harrisonrobin/chore/pkg/config"
	"github.com/harrisonrobin/chore/pkg/session"
	"github.com/harrisonrobin/chore/pkg/storage"
	"github.com/harrisonrobin/chore/pkg/tasklist"
	"github.com/harrisonrobin/chore/pkg/ui"
)

// options are the global flags shared by every subcommand.
type options struct {
	configPath string
	dataPath   string
	calendar   string
}

// config loads the config file and applies flag overrides.
func (o *options) config() (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if o.dataPath != "" {
		cfg.DataFile = o.dataPath
	}
	if o.calendar != "" {
		cfg.Calendar = o.calendar
	}
	return cfg, nil
}

// load opens the data file named by the config. The returned list is empty
// when the file does not exist yet.
func (o *options) load() (*config.Config, *storage.File, *tasklist.List, error) {
	cfg, err := o.config()
	if err != nil {
		return nil, nil, nil, err
	}
	store := storage.NewFile(cfg.DataFile)
	tasks, err := store.Load()
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, store, tasklist.New(tasks...), nil
}

// NewRootCmd builds the command tree. Running it without a subcommand
// starts an interactive session.
func NewRootCmd(version string) *cobra.Command {
	opts := &options{}
	rootCmd := &cobra.Command{
		Use:   "chore",
		Short: "chore - a line-oriented task tracker",
		Long: `chore keeps a list of todos, deadlines and events in a plain text file.

Run it without arguments and type commands, one per line:
  todo <name>
  deadline <name> /by <dd-MM-yyyy HHmm>
  event <name> /from <dd-MM-yyyy HHmm> /to <dd-MM-yyyy HHmm>
  list | find <keyword> | mark <n> | unmark <n> | delete <n> | bye`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSession(cmd, opts)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default ~/.config/chore/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&opts.dataPath, "data", "", "task data file (overrides config)")
	rootCmd.PersistentFlags().StringVar(&opts.calendar, "calendar", "", "Google Calendar name (overrides config)")

	rootCmd.AddCommand(newImportCmd(opts))
	rootCmd.AddCommand(newOverdueCmd(opts))
	rootCmd.AddCommand(newCalendarCmd(opts))
	rootCmd.AddCommand(newConfigCmd(opts))
	return rootCmd
}

func runSession(cmd *cobra.Command, opts *options) error {
	cfg, store, list, err := opts.load()
	if err != nil {
		return err
	}
	s := &session.Session{
		List:          list,
		Saver:         store,
		UI:            ui.New(cmd.OutOrStdout(), ui.DefaultTheme),
		RemindOverdue: cfg.RemindOverdue,
	}
	return s.Run(cmd.InOrStdin())
}

// Execute runs the root command
func Execute(version string) error {
	if err := NewRootCmd(version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}
