// Package ports defines the interfaces between the application core and
// the adapters in the infrastructure layer.
//
// The application services depend only on these abstractions; concrete
// implementations (HTTP client, filesystem mirror, terminal UI, SQLite
// history) live under internal/infrastructure and are wired together in
// internal/app.
package ports

import (
	"context"

	"github.com/doeshing/glot-go/internal/domain"
)

// ConfigProvider loads the latest configuration from persistent storage.
// Implementations typically read from ~/.glot/config.yaml; Load is called
// fresh on every command so edits take effect without restarts.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// SnippetService is the remote glot API: snippet CRUD plus code
// execution. Every method fails with domain.ErrMissingToken before any
// network I/O when no token is configured.
type SnippetService interface {
	ListSnippets(ctx context.Context) ([]domain.Snippet, error)
	GetSnippet(ctx context.Context, id string) (domain.Snippet, error)
	CreateSnippet(ctx context.Context, draft domain.SnippetDraft) (domain.Snippet, error)
	UpdateSnippet(ctx context.Context, id string, draft domain.SnippetDraft) (domain.Snippet, error)
	DeleteSnippet(ctx context.Context, id string) error
	RunCode(ctx context.Context, req domain.RunRequest) (domain.RunResult, error)
}

// CacheStore mirrors remote snippets into a local per-id directory.
type CacheStore interface {
	// EnsureLocalCopy creates <root>/<id>/<filename> with the given
	// content unless the file already exists, and returns its path.
	// Existing files are never overwritten.
	EnsureLocalCopy(id, filename, content string) (string, error)
	// DeleteLocalCopy removes <root>/<id> recursively. Callers treat
	// failures as best-effort cleanup.
	DeleteLocalCopy(id string) error
	// ResolveIDAndFilename derives (id, filename) from a path under the
	// cache root; ok is false for any other path.
	ResolveIDAndFilename(path string) (id, filename string, ok bool)
	// Root returns the cache root directory.
	Root() string
}

// HistoryStore records remote code executions.
type HistoryStore interface {
	Save(record domain.RunRecord) error
	Records(limit int) ([]domain.RunRecord, error)
	Clear() error
}

// UserInterface is the terminal-facing collaborator the flows drive:
// selection menus, line prompts, status lines, and program output.
type UserInterface interface {
	// Pick presents items and returns the chosen index, or -1 when the
	// user cancels.
	Pick(label string, items []string) (int, error)
	// Prompt asks for a line of input with a default; ok is false when
	// the user cancels.
	Prompt(label, def string) (value string, ok bool, err error)
	// Status prints a transient one-line message.
	Status(msg string)
	// Output prints program output (the run result).
	Output(text string)
}

// Logger provides leveled logging for the application layer.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
