package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/doeshing/glot-go/internal/app"
)

func newDoctorCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check configuration and API connectivity",
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := container.Doctor.Run(cmd.Context())
			RenderHealthReport(cmd.OutOrStdout(), report)
			if err != nil {
				return fmt.Errorf("doctor found problems: %w", err)
			}
			if !report.Healthy() {
				return fmt.Errorf("doctor found problems")
			}
			return nil
		},
	}
}
