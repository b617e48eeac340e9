package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dpramesti/remind/internal/export"
	"github.com/dpramesti/remind/internal/manager"
)

// newExportCmd creates the export command
func newExportCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export tasks to a text report",
		Long: `Write all tasks and statistics to a formatted text file.

Example:
  remind export
  remind export --out tasks.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			tasks := a.mgr.List(manager.FilterAll)
			path, err := export.WriteFile(out, tasks, time.Now())
			if err != nil {
				return err
			}

			fmt.Printf("Exported %d task(s) to %s\n", len(tasks), path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default task_export_<timestamp>.txt)")
	return cmd
}
