package history

import (
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/doeshing/glot-go/internal/domain"
	"github.com/doeshing/glot-go/internal/pkg/filesystem"
	"github.com/doeshing/glot-go/internal/ports"
)

// SQLiteStore persists run history in a SQLite database.
type SQLiteStore struct {
	db   *sql.DB
	path string
	mu   sync.Mutex
}

// NewSQLiteStore creates (or opens) the database at path, defaulting to
// ~/.glot/history/history.db. When the database cannot be opened the
// store degrades to the JSONL file fallback.
func NewSQLiteStore(path string) *SQLiteStore {
	if path == "" {
		path = filepath.Join(filesystem.UserHomeDir(), ".glot", "history", "history.db")
	}
	_ = os.MkdirAll(filepath.Dir(path), 0o755)
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return &SQLiteStore{path: path}
	}
	store := &SQLiteStore{db: db, path: path}
	if err := store.init(); err != nil {
		return &SQLiteStore{path: path}
	}
	return store
}

func (s *SQLiteStore) init() error {
	if s.db == nil {
		return os.ErrInvalid
	}
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp TEXT,
		language TEXT,
		version TEXT,
		filename TEXT,
		command TEXT,
		output_size INTEGER,
		failed INTEGER,
		error TEXT,
		duration_ms INTEGER
	);`)
	return err
}

func (s *SQLiteStore) fallback() *FileStore {
	return &FileStore{path: strings.TrimSuffix(s.path, filepath.Ext(s.path)) + ".jsonl"}
}

// Save inserts a new record.
func (s *SQLiteStore) Save(record domain.RunRecord) error {
	if s.db == nil {
		return s.fallback().Save(record)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(`INSERT INTO runs
		(timestamp, language, version, filename, command, output_size, failed, error, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		record.Timestamp.Format(time.RFC3339),
		record.Language,
		record.Version,
		record.Filename,
		record.Command,
		record.OutputSize,
		boolToInt(record.Failed),
		record.Error,
		record.DurationMS,
	)
	return err
}

// Records returns history entries, newest first.
func (s *SQLiteStore) Records(limit int) ([]domain.RunRecord, error) {
	if s.db == nil {
		return s.fallback().Records(limit)
	}
	query := strings.Builder{}
	query.WriteString(`SELECT timestamp, language, version, filename, command,
		output_size, failed, error, duration_ms FROM runs ORDER BY datetime(timestamp) DESC`)
	var args []interface{}
	if limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, limit)
	}
	rows, err := s.db.Query(query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var records []domain.RunRecord
	for rows.Next() {
		var rec domain.RunRecord
		var ts string
		var failed int
		if err := rows.Scan(&ts, &rec.Language, &rec.Version, &rec.Filename,
			&rec.Command, &rec.OutputSize, &failed, &rec.Error, &rec.DurationMS); err != nil {
			return nil, err
		}
		if t, err := time.Parse(time.RFC3339, ts); err == nil {
			rec.Timestamp = t
		}
		rec.Failed = failed == 1
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Clear drops all history rows.
func (s *SQLiteStore) Clear() error {
	if s.db == nil {
		return s.fallback().Clear()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(`DELETE FROM runs`)
	return err
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

var _ ports.HistoryStore = (*SQLiteStore)(nil)
