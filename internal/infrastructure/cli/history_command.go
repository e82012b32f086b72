package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/doeshing/glot-go/internal/app"
)

const defaultHistoryLimit = 20

func newHistoryCommand(container *app.Container) *cobra.Command {
	var limit int

	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "List recent remote runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := container.History.Records(limit)
			if err != nil {
				return err
			}
			RenderHistory(cmd.OutOrStdout(), records)
			return nil
		},
	}
	historyCmd.Flags().IntVar(&limit, "limit", defaultHistoryLimit, "Max entries to show")

	historyCmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Delete all run history",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := container.History.Clear(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "History cleared.")
			return nil
		},
	})

	return historyCmd
}
