package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/harrisonrobin/chore/pkg/model"
	"github.com/harrisonrobin/chore/pkg/orgmode"
	"github.com/harrisonrobin/chore/pkg/taskwarrior"
)

func newImportCmd(opts *options) *cobra.Command {
	importCmd := &cobra.Command{
		Use:   "import",
		Short: "Append tasks from other tools to the list",
	}

	orgCmd := &cobra.Command{
		Use:   "org FILE...",
		Short: "Import TODO and DONE headings from Org-mode files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := orgmode.ParseFiles(args)
			if err != nil {
				return fmt.Errorf("failed to parse org files: %w", err)
			}
			return appendTasks(cmd, opts, tasks)
		},
	}

	var export bool
	twCmd := &cobra.Command{
		Use:   "taskwarrior [FILE | FILTER...]",
		Short: "Import tasks from a taskwarrior JSON export",
		Long: `Import tasks from a taskwarrior JSON export read from FILE or standard input.
With --export, run "task FILTER... export" instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client := taskwarrior.NewClient()
			var tw []taskwarrior.Task
			var err error
			switch {
			case export:
				tw, err = client.GetTasks(args)
			case len(args) > 1:
				return fmt.Errorf("expected at most one file, got %d", len(args))
			case len(args) == 1:
				tw, err = parseTaskwarriorFile(client, args[0])
			default:
				tw, err = client.ParseTasks(cmd.InOrStdin())
			}
			if err != nil {
				return err
			}
			return appendTasks(cmd, opts, taskwarrior.ToTasks(tw))
		},
	}
	twCmd.Flags().BoolVar(&export, "export", false, "run taskwarrior to export tasks")

	importCmd.AddCommand(orgCmd)
	importCmd.AddCommand(twCmd)
	return importCmd
}

func parseTaskwarriorFile(client *taskwarrior.Client, path string) ([]taskwarrior.Task, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return client.ParseTasks(f)
}

// appendTasks adds tasks to the end of the stored list and saves it once.
func appendTasks(cmd *cobra.Command, opts *options, tasks []model.Task) error {
	_, store, list, err := opts.load()
	if err != nil {
		return err
	}
	for _, task := range tasks {
		list.Add(task)
	}
	if len(tasks) > 0 {
		if err := store.Save(list.Tasks()); err != nil {
			return err
		}
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d tasks, the list now has %d.\n", len(tasks), list.Count())
	return nil
}
