package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/harrisonrobin/chore/pkg/overdue"
	"github.com/harrisonrobin/chore/pkg/ui"
)

func newOverdueCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "overdue",
		Short: "List open deadlines that have passed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, list, err := opts.load()
			if err != nil {
				return err
			}
			r := ui.New(cmd.OutOrStdout(), ui.DefaultTheme)
			text := r.Reminder(overdue.Sweep(list, time.Now()))
			if text == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing is overdue.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}
}
