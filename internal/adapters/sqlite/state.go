package sqlite

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"folderstar/internal/ports"
)

const schemaVersion = "1"

// GlobalScope is the installation-wide state scope
const GlobalScope = "global"

// StateDB is a SQLite-backed key-value database holding one namespace per
// scope. It implements durable storage for workspace and global state.
type StateDB struct {
	db     *sql.DB
	dbPath string
}

// Open opens (creating if needed) the state database at dbPath. A leading
// ~ is expanded to the home directory.
func Open(dbPath string) (*StateDB, error) {
	dbPath, err := expandHome(dbPath)
	if err != nil {
		return nil, err
	}

	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
			return nil, fmt.Errorf("failed to create state directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if dbPath == ":memory:" {
		// Every pooled connection would otherwise get its own empty database
		db.SetMaxOpenConns(1)
	}

	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA temp_store = MEMORY;

		CREATE TABLE IF NOT EXISTS state (
			scope TEXT NOT NULL,
			key TEXT NOT NULL,
			value BLOB NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (scope, key)
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to setup database: %w", err)
	}

	if _, err := db.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?)`, schemaVersion); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to update metadata: %w", err)
	}

	return &StateDB{db: db, dbPath: dbPath}, nil
}

// Close closes the database connection
func (s *StateDB) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Path returns the database file path
func (s *StateDB) Path() string {
	return s.dbPath
}

// Scope returns the state store for one scope
func (s *StateDB) Scope(name string) *State {
	return &State{db: s.db, scope: name}
}

// Global returns the installation-wide state store
func (s *StateDB) Global() *State {
	return s.Scope(GlobalScope)
}

// Workspace returns the state store for the workspace made of the given
// roots. The same set of roots always maps to the same scope.
func (s *StateDB) Workspace(roots []string) *State {
	return s.Scope(WorkspaceScope(roots))
}

// scopes lists every scope with stored state
func (s *StateDB) scopes(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT scope FROM state ORDER BY scope`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var scopes []string
	for rows.Next() {
		var scope string
		if err := rows.Scan(&scope); err != nil {
			return nil, err
		}
		scopes = append(scopes, scope)
	}
	return scopes, rows.Err()
}

// State is a key-value store restricted to one scope
type State struct {
	db    *sql.DB
	scope string
}

// Ensure State implements StateStore
var _ ports.StateStore = (*State)(nil)

// Name returns the scope name
func (st *State) Name() string {
	return st.scope
}

// Get returns the value stored under key
func (st *State) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := st.db.QueryRowContext(ctx,
		`SELECT value FROM state WHERE scope = ? AND key = ?`, st.scope, key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read %s/%s: %w", st.scope, key, err)
	}
	return value, true, nil
}

// Update replaces the value stored under key inside a transaction
func (st *State) Update(ctx context.Context, key string, value []byte) error {
	tx, err := st.begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := tx.Put(key, value); err != nil {
		return fmt.Errorf("failed to write %s/%s: %w", st.scope, key, err)
	}
	return tx.Commit()
}

// keys lists the keys stored in this scope
func (st *State) keys(ctx context.Context) ([]string, error) {
	rows, err := st.db.QueryContext(ctx, `SELECT key FROM state WHERE scope = ? ORDER BY key`, st.scope)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, rows.Err()
}

// WorkspaceScope derives a stable scope name from a set of workspace roots
func WorkspaceScope(roots []string) string {
	sorted := slices.Clone(roots)
	slices.Sort(sorted)
	return "workspace:" + hashPaths(sorted)
}

// hashPaths returns a short hash of the joined paths
func hashPaths(paths []string) string {
	h := sha256.Sum256([]byte(strings.Join(paths, "\x00")))
	return hex.EncodeToString(h[:8]) // First 8 bytes = 16 hex chars
}

func expandHome(path string) (string, error) {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		return filepath.Join(home, path[1:]), nil
	}
	return path, nil
}
