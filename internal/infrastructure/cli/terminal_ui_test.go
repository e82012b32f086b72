package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestPickReturnsZeroBasedIndex(t *testing.T) {
	var out, errOut bytes.Buffer
	ui := NewTestUI(strings.NewReader("2\n"), &out, &errOut)

	index, err := ui.Pick("Version", []string{"2", "latest"})
	if err != nil {
		t.Fatalf("Pick() error = %v", err)
	}
	if index != 1 {
		t.Errorf("index = %d, want 1", index)
	}
	if !strings.Contains(errOut.String(), "1) 2") || !strings.Contains(errOut.String(), "2) latest") {
		t.Errorf("menu output = %q", errOut.String())
	}
}

func TestPickEmptyLineCancels(t *testing.T) {
	ui := NewTestUI(strings.NewReader("\n"), &bytes.Buffer{}, &bytes.Buffer{})
	index, err := ui.Pick("Version", []string{"a", "b"})
	if err != nil || index != -1 {
		t.Errorf("Pick() = (%d, %v), want (-1, nil)", index, err)
	}
}

func TestPickEOFCancels(t *testing.T) {
	ui := NewTestUI(strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{})
	index, err := ui.Pick("Version", []string{"a"})
	if err != nil || index != -1 {
		t.Errorf("Pick() = (%d, %v), want (-1, nil)", index, err)
	}
}

func TestPickRejectsOutOfRange(t *testing.T) {
	ui := NewTestUI(strings.NewReader("7\n"), &bytes.Buffer{}, &bytes.Buffer{})
	if _, err := ui.Pick("Version", []string{"a", "b"}); err == nil {
		t.Error("expected error for out-of-range selection")
	}
}

func TestPromptDefaults(t *testing.T) {
	tests := []struct {
		name  string
		input string
		def   string
		want  string
		ok    bool
	}{
		{"value entered", "My title\n", "Untitled", "My title", true},
		{"empty accepts default", "\n", "Untitled", "Untitled", true},
		{"eof cancels", "", "Untitled", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui := NewTestUI(strings.NewReader(tt.input), &bytes.Buffer{}, &bytes.Buffer{})
			got, ok, err := ui.Prompt("Title", tt.def)
			if err != nil {
				t.Fatalf("Prompt() error = %v", err)
			}
			if got != tt.want || ok != tt.ok {
				t.Errorf("Prompt() = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestOutputPreservesText(t *testing.T) {
	var out bytes.Buffer
	ui := NewTestUI(strings.NewReader(""), &out, &bytes.Buffer{})

	ui.Output("ABC")
	if out.String() != "ABC\n" {
		t.Errorf("output = %q", out.String())
	}

	out.Reset()
	ui.Output("line\n")
	if out.String() != "line\n" {
		t.Errorf("output = %q, trailing newline duplicated", out.String())
	}
}
