package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/doeshing/glot-go/internal/version"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show glot version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "glot version %s\n", version.Version)
			if version.Commit != "" {
				fmt.Fprintf(out, "Commit: %s\n", version.Commit)
			}
			if version.BuildDate != "" {
				fmt.Fprintf(out, "Built: %s\n", version.BuildDate)
			}
			fmt.Fprintf(out, "Go version: %s\n", runtime.Version())
			return nil
		},
	}
}
