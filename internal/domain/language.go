package domain

import (
	"path/filepath"
	"strings"
)

// canonicalNames maps editor/extension style language tokens to the
// identifiers the glot API recognizes. Everything else passes through.
var canonicalNames = map[string]string{
	"c++":   "cpp",
	"cs":    "csharp",
	"js":    "javascript",
	"shell": "bash",
	"ts":    "typescript",
}

// defaultFilenames maps canonical languages to their conventional
// entry-point filename.
var defaultFilenames = map[string]string{
	"ats":        "main.dats",
	"bash":       "main.sh",
	"csharp":     "Main.cs",
	"clojure":    "main.clj",
	"crystal":    "main.cr",
	"erlang":     "main.erl",
	"haskell":    "main.hs",
	"java":       "Main.java",
	"javascript": "main.js",
	"ocaml":      "main.ml",
	"perl":       "main.pl",
	"python":     "main.py",
	"ruby":       "main.rb",
	"rust":       "main.rs",
	"typescript": "main.ts",
}

// extensionNames resolves a file extension to a canonical language so
// `glot run main.py` needs no explicit --language flag.
var extensionNames = map[string]string{
	".c":     "c",
	".clj":   "clojure",
	".cpp":   "cpp",
	".cr":    "crystal",
	".cs":    "csharp",
	".dats":  "ats",
	".erl":   "erlang",
	".go":    "go",
	".hs":    "haskell",
	".java":  "java",
	".js":    "javascript",
	".lua":   "lua",
	".ml":    "ocaml",
	".php":   "php",
	".pl":    "perl",
	".py":    "python",
	".rb":    "ruby",
	".rs":    "rust",
	".sh":    "bash",
	".swift": "swift",
	".ts":    "typescript",
}

// CanonicalLanguage normalizes a source language token to the identifier
// the glot API expects. Unknown tokens are returned unchanged; the
// function is total and never fails.
func CanonicalLanguage(source string) string {
	if canonical, ok := canonicalNames[strings.ToLower(source)]; ok {
		return canonical
	}
	return source
}

// DefaultFilename returns the conventional entry-point filename for a
// canonical language, falling back to "main.<language>".
func DefaultFilename(language string) string {
	if name, ok := defaultFilenames[language]; ok {
		return name
	}
	return "main." + language
}

// DetectLanguage guesses the canonical language from a filename's
// extension. The second return is false when the extension is unknown.
func DetectLanguage(filename string) (string, bool) {
	ext := strings.ToLower(filepath.Ext(filename))
	language, ok := extensionNames[ext]
	return language, ok
}
