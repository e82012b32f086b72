package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/doeshing/glot-go/internal/app"
	"github.com/doeshing/glot-go/internal/application/runner"
	"github.com/doeshing/glot-go/internal/domain"
)

func newRunCommand(container *app.Container) *cobra.Command {
	var (
		language    string
		version     string
		interactive bool
		stdin       string
		command     string
	)

	cmd := &cobra.Command{
		Use:   "run [file]",
		Short: "Run a file (or stdin) remotely and print its output",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, filename, lang, _, err := readDocument(cmd, args, language)
			if err != nil {
				return err
			}
			return container.Runner.Run(cmd.Context(), runner.Input{
				Language:    lang,
				Filename:    filename,
				Content:     content,
				Version:     version,
				Interactive: interactive,
				Stdin:       stdin,
				Command:     command,
			})
		},
	}

	cmd.Flags().StringVarP(&language, "language", "l", "", "Language to run as (default: from file extension)")
	cmd.Flags().StringVar(&version, "version", "", "Language version (default: from config, asks when ambiguous)")
	cmd.Flags().BoolVarP(&interactive, "interactive-io", "i", false, "Prompt for stdin and an editable run command")
	cmd.Flags().StringVar(&stdin, "stdin", "", "Stdin to pass to the program")
	cmd.Flags().StringVar(&command, "command", "", "Shell command to run instead of the language default")

	return cmd
}

// readDocument resolves the content, filename, and source language token
// for a command operating on a file argument or stdin.
func readDocument(cmd *cobra.Command, args []string, languageFlag string) (content, filename, language string, hasPath bool, err error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", "", false, err
		}
		filename = filepath.Base(args[0])
		language = languageFlag
		if language == "" {
			detected, ok := domain.DetectLanguage(filename)
			if !ok {
				return "", "", "", false, fmt.Errorf("cannot detect language of %s, use --language", filename)
			}
			language = detected
		}
		return string(data), filename, language, true, nil
	}

	if languageFlag == "" {
		return "", "", "", false, fmt.Errorf("specify --language when reading from stdin")
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", "", "", false, err
	}
	return string(data), "", languageFlag, false, nil
}
