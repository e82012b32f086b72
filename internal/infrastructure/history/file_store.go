package history

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/doeshing/glot-go/internal/domain"
	"github.com/doeshing/glot-go/internal/pkg/filesystem"
	"github.com/doeshing/glot-go/internal/ports"
)

// FileStore appends run records to a jsonl file.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates a store under ~/.glot/history/history.jsonl.
func NewFileStore(path string) *FileStore {
	if path == "" {
		path = filepath.Join(filesystem.UserHomeDir(), ".glot", "history", "history.jsonl")
	}
	return &FileStore{path: path}
}

// Save implements ports.HistoryStore.
func (f *FileStore) Save(record domain.RunRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return err
	}
	file, err := os.OpenFile(f.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = file.Write(data)
	return err
}

// Records loads history entries, newest first (best-effort).
func (f *FileStore) Records(limit int) ([]domain.RunRecord, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	lines := bytes.Split(bytes.TrimSpace(data), []byte("\n"))
	var records []domain.RunRecord
	for _, line := range lines {
		if len(line) == 0 {
			continue
		}
		var rec domain.RunRecord
		if err := json.Unmarshal(line, &rec); err == nil {
			records = append(records, rec)
		}
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].Timestamp.After(records[j].Timestamp)
	})
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

// Clear removes the history file.
func (f *FileStore) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Path returns the backing file path.
func (f *FileStore) Path() string {
	return f.path
}

var _ ports.HistoryStore = (*FileStore)(nil)
