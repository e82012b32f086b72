package domain_test

import (
	"testing"

	"github.com/doeshing/glot-go/internal/domain"
)

func TestCanonicalLanguage(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{"c++", "cpp"},
		{"cs", "csharp"},
		{"js", "javascript"},
		{"shell", "bash"},
		{"ts", "typescript"},
		// everything else passes through unchanged
		{"python", "python"},
		{"go", "go"},
		{"brainfuck", "brainfuck"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := domain.CanonicalLanguage(tt.source); got != tt.want {
			t.Errorf("CanonicalLanguage(%q) = %q, want %q", tt.source, got, tt.want)
		}
	}
}

func TestDefaultFilename(t *testing.T) {
	tests := []struct {
		language string
		want     string
	}{
		{"ats", "main.dats"},
		{"bash", "main.sh"},
		{"csharp", "Main.cs"},
		{"clojure", "main.clj"},
		{"crystal", "main.cr"},
		{"erlang", "main.erl"},
		{"haskell", "main.hs"},
		{"java", "Main.java"},
		{"javascript", "main.js"},
		{"ocaml", "main.ml"},
		{"perl", "main.pl"},
		{"python", "main.py"},
		{"ruby", "main.rb"},
		{"rust", "main.rs"},
		{"typescript", "main.ts"},
		// unknown languages fall back to main.<language>
		{"go", "main.go"},
		{"zig", "main.zig"},
	}

	for _, tt := range tests {
		if got := domain.DefaultFilename(tt.language); got != tt.want {
			t.Errorf("DefaultFilename(%q) = %q, want %q", tt.language, got, tt.want)
		}
	}
}

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		filename string
		want     string
		ok       bool
	}{
		{"main.py", "python", true},
		{"Main.java", "java", true},
		{"script.sh", "bash", true},
		{"app.TS", "typescript", true},
		{"notes.txt", "", false},
		{"Makefile", "", false},
	}

	for _, tt := range tests {
		got, ok := domain.DetectLanguage(tt.filename)
		if got != tt.want || ok != tt.ok {
			t.Errorf("DetectLanguage(%q) = (%q, %v), want (%q, %v)",
				tt.filename, got, ok, tt.want, tt.ok)
		}
	}
}
