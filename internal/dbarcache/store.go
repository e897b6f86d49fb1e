package dbarcache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	_ "modernc.org/sqlite"

	"ripcheck/internal/dbar"
	"ripcheck/internal/logging"
)

const lockRetryDelay = 100 * time.Millisecond

// Entry describes one cached dBAR file without its blob.
type Entry struct {
	ID1           uint32    `json:"ar_id1"`
	ID2           uint32    `json:"ar_id2"`
	FreeDB        uint32    `json:"freedb_id"`
	TrackCount    int       `json:"track_count"`
	ResponseCount int       `json:"response_count"`
	ImportedAt    time.Time `json:"imported_at"`
}

// Name returns the disc identifier the entry is filed under, in the same
// form the database names its response files.
func (e Entry) Name() string {
	return fmt.Sprintf("%03d-%08x-%08x-%08x", e.TrackCount, e.ID1, e.ID2, e.FreeDB)
}

// Store keeps imported dBAR response files in a SQLite database keyed by
// the disc ID triple. Imports take a file lock so concurrent invocations
// do not interleave writes.
type Store struct {
	db     *sql.DB
	path   string
	lock   *flock.Flock
	logger *slog.Logger
}

// Open initializes or connects to the cache database under dir.
func Open(dir string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	logger = logging.NewComponentLogger(logger, "dbarcache")

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache directory: %w", err)
	}

	dbPath := filepath.Join(dir, "dbar.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Store{
		db:     db,
		path:   dbPath,
		lock:   flock.New(dbPath + ".lock"),
		logger: logger,
	}, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS dbar_files (
    id1 INTEGER NOT NULL,
    id2 INTEGER NOT NULL,
    freedb INTEGER NOT NULL,
    track_count INTEGER NOT NULL,
    response_count INTEGER NOT NULL,
    data BLOB NOT NULL,
    imported_at TEXT NOT NULL,
    PRIMARY KEY (id1, id2, freedb)
)`

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Import parses a dBAR blob and stores it under the disc IDs its header
// carries. An existing entry for the same disc is replaced.
func (s *Store) Import(ctx context.Context, data []byte) (Entry, error) {
	responses, err := dbar.Parse(data)
	if err != nil {
		return Entry{}, err
	}
	header := responses[0].Header

	locked, err := s.lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return Entry{}, fmt.Errorf("acquire cache lock: %w", err)
	}
	if !locked {
		return Entry{}, errors.New("cache lock held by another process")
	}
	defer func() {
		if unlockErr := s.lock.Unlock(); unlockErr != nil {
			s.logger.Warn("failed to release cache lock", logging.Error(unlockErr))
		}
	}()

	entry := Entry{
		ID1:           header.ID1,
		ID2:           header.ID2,
		FreeDB:        header.FreeDB,
		TrackCount:    header.TrackCount,
		ResponseCount: len(responses),
		ImportedAt:    time.Now().UTC(),
	}

	_, err = s.db.ExecContext(
		ctx,
		`INSERT OR REPLACE INTO dbar_files (
            id1, id2, freedb, track_count, response_count, data, imported_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		int64(entry.ID1),
		int64(entry.ID2),
		int64(entry.FreeDB),
		entry.TrackCount,
		entry.ResponseCount,
		data,
		entry.ImportedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return Entry{}, fmt.Errorf("insert dbar file: %w", err)
	}

	s.logger.Debug("imported dbar file",
		logging.String("disc", entry.Name()),
		logging.Int("responses", entry.ResponseCount))

	return entry, nil
}

// ImportFile reads a dBAR file from disk and imports it.
func (s *Store) ImportFile(ctx context.Context, path string) (Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Entry{}, fmt.Errorf("read dbar file: %w", err)
	}
	return s.Import(ctx, data)
}

// Lookup returns the parsed responses cached for a disc, or found=false
// when the disc is unknown.
func (s *Store) Lookup(ctx context.Context, id1, id2, freedb uint32) ([]dbar.Response, bool, error) {
	row := s.db.QueryRowContext(
		ctx,
		`SELECT data FROM dbar_files WHERE id1 = ? AND id2 = ? AND freedb = ?`,
		int64(id1), int64(id2), int64(freedb),
	)
	var data []byte
	if err := row.Scan(&data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("lookup dbar file: %w", err)
	}
	responses, err := dbar.Parse(data)
	if err != nil {
		return nil, false, fmt.Errorf("cached data for %08x-%08x-%08x: %w", id1, id2, freedb, err)
	}
	return responses, true, nil
}

// List returns all cached entries, newest first.
func (s *Store) List(ctx context.Context) ([]Entry, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id1, id2, freedb, track_count, response_count, imported_at
         FROM dbar_files ORDER BY imported_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list dbar files: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			id1, id2, freedb int64
			entry            Entry
			importedRaw      string
		)
		if err := rows.Scan(&id1, &id2, &freedb,
			&entry.TrackCount, &entry.ResponseCount, &importedRaw); err != nil {
			return nil, fmt.Errorf("scan dbar entry: %w", err)
		}
		entry.ID1 = uint32(id1)
		entry.ID2 = uint32(id2)
		entry.FreeDB = uint32(freedb)
		if imported, err := time.Parse(time.RFC3339Nano, importedRaw); err == nil {
			entry.ImportedAt = imported
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// Remove deletes the cached file for a disc.
func (s *Store) Remove(ctx context.Context, id1, id2, freedb uint32) (bool, error) {
	res, err := s.db.ExecContext(
		ctx,
		`DELETE FROM dbar_files WHERE id1 = ? AND id2 = ? AND freedb = ?`,
		int64(id1), int64(id2), int64(freedb),
	)
	if err != nil {
		return false, fmt.Errorf("delete dbar file: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return affected > 0, nil
}

// Clear removes every cached file.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM dbar_files`)
	if err != nil {
		return 0, fmt.Errorf("clear cache: %w", err)
	}
	return res.RowsAffected()
}

// Count returns the number of cached files.
func (s *Store) Count(ctx context.Context) (int, error) {
	row := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM dbar_files`)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("count dbar files: %w", err)
	}
	return count, nil
}
