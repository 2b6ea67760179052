package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/harrisonrobin/chore/pkg/auth"
	"github.com/harrisonrobin/chore/pkg/config"
	"github.com/harrisonrobin/chore/pkg/google"
	"github.com/harrisonrobin/chore/pkg/index"
)

const eventIndexFile = "events.json"

func newCalendarCmd(opts *options) *cobra.Command {
	calendarCmd := &cobra.Command{
		Use:   "calendar",
		Short: "Mirror deadlines and events to Google Calendar",
	}

	authCmd := &cobra.Command{
		Use:   "auth",
		Short: "Authenticate with Google Calendar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flow, err := newFlow(cmd)
			if err != nil {
				return err
			}
			if err := flow.Reset(); err != nil {
				return fmt.Errorf("could not delete token file, please delete it manually: %w", err)
			}
			if _, err := flow.GetCalendarService(cmd.Context()); err != nil {
				return fmt.Errorf("authentication failed: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Authentication successful! Token saved to %s\n", filepath.Join(flow.Dir, auth.TokenFile))
			return nil
		},
	}

	syncCmd := &cobra.Command{
		Use:   "sync",
		Short: "Create, update and delete calendar events to match the task list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, list, err := opts.load()
			if err != nil {
				return err
			}
			flow, err := newFlow(cmd)
			if err != nil {
				return err
			}
			srv, err := flow.GetCalendarService(cmd.Context())
			if err != nil {
				return err
			}
			idx, err := index.NewEventIndex(filepath.Join(flow.Dir, eventIndexFile))
			if err != nil {
				return fmt.Errorf("failed to open event index: %w", err)
			}
			client, err := google.NewClient(cmd.Context(), srv, cfg.Calendar, idx)
			if err != nil {
				return err
			}
			report, err := client.Sync(cmd.Context(), list.Tasks())
			fmt.Fprintf(cmd.OutOrStdout(), "Calendar %q: %d created, %d updated, %d unchanged, %d deleted, %d failed\n",
				cfg.Calendar, report.Created, report.Updated, report.Unchanged, report.Deleted, report.Failed)
			return err
		},
	}

	useCmd := &cobra.Command{
		Use:   "use NAME",
		Short: "Set the default Google Calendar name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Flag overrides are not persisted.
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			cfg.Calendar = args[0]
			if err := config.Save(opts.configPath, cfg); err != nil {
				return fmt.Errorf("error saving config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Default calendar set to: %s\n", args[0])
			return nil
		},
	}

	calendarCmd.AddCommand(authCmd)
	calendarCmd.AddCommand(syncCmd)
	calendarCmd.AddCommand(useCmd)
	return calendarCmd
}

func newFlow(cmd *cobra.Command) (*auth.Flow, error) {
	dir, err := config.Dir()
	if err != nil {
		return nil, fmt.Errorf("could not find path to configuration directory: %w", err)
	}
	return &auth.Flow{Dir: dir, Out: cmd.OutOrStdout()}, nil
}
