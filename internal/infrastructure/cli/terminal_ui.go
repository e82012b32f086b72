package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/doeshing/glot-go/internal/ports"
)

// TerminalUI implements ports.UserInterface on a terminal: numbered
// selection menus, line prompts with defaults, status lines on stderr,
// and program output on stdout.
type TerminalUI struct {
	in          *bufio.Reader
	out         io.Writer
	errOut      io.Writer
	interactive bool
}

// NewTerminalUI constructs a UI on stdio. Prompts and pickers are only
// offered when stdin is a terminal.
func NewTerminalUI() *TerminalUI {
	return &TerminalUI{
		in:          bufio.NewReader(os.Stdin),
		out:         os.Stdout,
		errOut:      os.Stderr,
		interactive: isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()),
	}
}

// NewTestUI builds a UI over explicit readers/writers, always
// interactive. Used by tests.
func NewTestUI(in io.Reader, out, errOut io.Writer) *TerminalUI {
	return &TerminalUI{
		in:          bufio.NewReader(in),
		out:         out,
		errOut:      errOut,
		interactive: true,
	}
}

// Pick shows a numbered menu and reads a selection. An empty line
// cancels (-1).
func (u *TerminalUI) Pick(label string, items []string) (int, error) {
	if !u.interactive {
		return -1, fmt.Errorf("%s: interactive selection requires a terminal", strings.ToLower(label))
	}
	fmt.Fprintf(u.errOut, "%s:\n", label)
	for i, item := range items {
		fmt.Fprintf(u.errOut, "  %d) %s\n", i+1, item)
	}
	fmt.Fprintf(u.errOut, "Select [1-%d, empty to cancel]: ", len(items))

	line, err := u.in.ReadString('\n')
	if err != nil && line == "" {
		return -1, nil // EOF counts as cancel
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return -1, nil
	}
	choice, err := strconv.Atoi(line)
	if err != nil || choice < 1 || choice > len(items) {
		return -1, fmt.Errorf("invalid selection %q", line)
	}
	return choice - 1, nil
}

// Prompt reads one line with a default. EOF cancels; an empty line
// accepts the default.
func (u *TerminalUI) Prompt(label, def string) (string, bool, error) {
	if !u.interactive {
		// Non-interactive runs accept defaults so flags keep working
		// under pipes.
		return def, true, nil
	}
	if def != "" {
		fmt.Fprintf(u.errOut, "%s [%s]: ", label, def)
	} else {
		fmt.Fprintf(u.errOut, "%s: ", label)
	}
	line, err := u.in.ReadString('\n')
	if err != nil && line == "" {
		return "", false, nil // EOF counts as cancel
	}
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return def, true, nil
	}
	return line, true, nil
}

// Status prints a transient one-line message to stderr.
func (u *TerminalUI) Status(msg string) {
	fmt.Fprintln(u.errOut, "glot:", msg)
}

// Output prints the run output exactly as received, adding only a final
// newline when the text lacks one.
func (u *TerminalUI) Output(text string) {
	fmt.Fprint(u.out, text)
	if text != "" && !strings.HasSuffix(text, "\n") {
		fmt.Fprintln(u.out)
	}
}

var _ ports.UserInterface = (*TerminalUI)(nil)
