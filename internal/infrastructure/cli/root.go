package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/doeshing/glot-go/internal/app"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
}

// NewRootCmd wires the cobra root command.
func NewRootCmd(ctx context.Context, opts Options) (*cobra.Command, error) {
	container, err := app.BuildContainer(ctx, opts.Verbose)
	if err != nil {
		return nil, err
	}
	container.AttachUI(NewTerminalUI())

	root := &cobra.Command{
		Use:   "glot",
		Short: "glot - run code and manage snippets on glot.io",
		Long: "glot runs code remotely on glot.io and keeps your snippets in sync\n" +
			"with a local cache. Configure your API token in ~/.glot/config.yaml.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newRunCommand(container))
	root.AddCommand(newSnippetsCommand(container))
	root.AddCommand(newHistoryCommand(container))
	root.AddCommand(newConfigCommand(container))
	root.AddCommand(newDoctorCommand(container))
	root.AddCommand(newVersionCommand())
	return root, nil
}
