// Package cache keeps a local mirror of remote snippets, one directory
// per snippet id with the snippet's single file inside it.
package cache

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/doeshing/glot-go/internal/pkg/filesystem"
	"github.com/doeshing/glot-go/internal/ports"
)

// Mirror maps snippet ids to <root>/<id>/<filename> on disk.
type Mirror struct {
	root string
}

// NewMirror returns a mirror rooted at dir, defaulting to
// ~/.glot/cache/snippets when dir is empty.
func NewMirror(dir string) *Mirror {
	if dir == "" {
		dir = filepath.Join(filesystem.UserHomeDir(), ".glot", "cache", "snippets")
	}
	return &Mirror{root: filepath.Clean(dir)}
}

// Root returns the cache root directory.
func (m *Mirror) Root() string {
	return m.root
}

// EnsureLocalCopy writes <root>/<id>/<filename> unless it already exists.
// An existing file is left untouched so local edits are never clobbered.
func (m *Mirror) EnsureLocalCopy(id, filename, content string) (string, error) {
	dir := filepath.Join(m.root, id)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, filename)
	if _, err := os.Stat(path); err == nil {
		return path, nil
	} else if !os.IsNotExist(err) {
		return "", err
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// DeleteLocalCopy removes the snippet's directory recursively. Callers
// log and discard the error: cache cleanliness is not a correctness
// requirement.
func (m *Mirror) DeleteLocalCopy(id string) error {
	if id == "" {
		return nil
	}
	return os.RemoveAll(filepath.Join(m.root, id))
}

// ResolveIDAndFilename recognizes a tracked snippet purely from its path:
// exactly <root>/<id>/<filename>. Anything else returns ok=false.
func (m *Mirror) ResolveIDAndFilename(path string) (string, string, bool) {
	rel, err := filepath.Rel(m.root, filepath.Clean(path))
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return "", "", false
	}
	parts := strings.Split(rel, string(filepath.Separator))
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}

var _ ports.CacheStore = (*Mirror)(nil)
