package cli

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/doeshing/glot-go/internal/app"
	"github.com/doeshing/glot-go/internal/application/snippets"
)

func newSnippetsCommand(container *app.Container) *cobra.Command {
	snippetsCmd := &cobra.Command{
		Use:   "snippets",
		Short: "Manage your glot.io snippets",
	}

	snippetsCmd.AddCommand(
		newSnippetsListCommand(container),
		newSnippetsOpenCommand(container),
		newSnippetsNewCommand(container),
		newSnippetsPushCommand(container),
		newSnippetsDeleteCommand(container),
	)

	return snippetsCmd
}

func newSnippetsListCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your snippets",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := container.Snippets.List(cmd.Context())
			if err != nil {
				return err
			}
			RenderSnippetList(cmd.OutOrStdout(), list)
			return nil
		},
	}
}

func newSnippetsOpenCommand(container *app.Container) *cobra.Command {
	var edit bool

	cmd := &cobra.Command{
		Use:   "open",
		Short: "Fetch a snippet into the local cache",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := container.Snippets.Open(cmd.Context())
			if err != nil {
				return err
			}
			if path == "" {
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			if edit {
				return openInEditor(path)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&edit, "edit", "e", false, "Open the cached file in $EDITOR")
	return cmd
}

func newSnippetsNewCommand(container *app.Container) *cobra.Command {
	var (
		language string
		title    string
		filename string
	)

	cmd := &cobra.Command{
		Use:   "new [file]",
		Short: "Create a snippet from a file (or stdin)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, name, lang, hasPath, err := readDocument(cmd, args, language)
			if err != nil {
				return err
			}
			if filename != "" {
				name = filename
			}
			path, err := container.Snippets.New(cmd.Context(), snippets.NewInput{
				Language: lang,
				Filename: name,
				Content:  content,
				Title:    title,
				HasPath:  hasPath,
			})
			if err != nil {
				return err
			}
			if path != "" {
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&language, "language", "l", "", "Snippet language (default: from file extension)")
	cmd.Flags().StringVarP(&title, "title", "t", "", "Snippet title (default: prompted)")
	cmd.Flags().StringVarP(&filename, "filename", "f", "", "Filename inside the snippet")
	return cmd
}

func newSnippetsPushCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "push <path>",
		Short: "Update the remote snippet a cached file belongs to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			return container.Snippets.Push(cmd.Context(), args[0], string(data))
		},
	}
}

func newSnippetsDeleteCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "delete",
		Short: "Delete a snippet remotely and locally",
		RunE: func(cmd *cobra.Command, args []string) error {
			return container.Snippets.Delete(cmd.Context())
		},
	}
}

func openInEditor(path string) error {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "vi"
	}
	editorCmd := exec.Command(editor, path)
	editorCmd.Stdin = os.Stdin
	editorCmd.Stdout = os.Stdout
	editorCmd.Stderr = os.Stderr
	return editorCmd.Run()
}
