package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"addressbook/internal/domain"
)

// DefaultCatalogKey is the row key used when none is configured.
const DefaultCatalogKey = "default"

const createCatalogTable = `
CREATE TABLE IF NOT EXISTS catalogs (
	key        TEXT PRIMARY KEY,
	body       TEXT NOT NULL,
	updated_at INTEGER NOT NULL
)`

const upsertCatalog = `
INSERT INTO catalogs (key, body, updated_at) VALUES (?, ?, ?)
ON CONFLICT(key) DO UPDATE SET body = excluded.body, updated_at = excluded.updated_at`

// CatalogSQLiteStore keeps the catalog's JSON blob in a single SQLite row.
// Several catalogs can share one database file under different keys.
type CatalogSQLiteStore struct {
	db   *sql.DB
	path string
	key  string
	log  *zap.Logger
	mu   sync.Mutex
}

// OpenCatalogSQLiteStore opens (creating if needed) the database at path and
// binds the store to key.
func OpenCatalogSQLiteStore(path, key string, log *zap.Logger) (*CatalogSQLiteStore, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if key == "" {
		key = DefaultCatalogKey
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(createCatalogTable); err != nil {
		return nil, multierr.Append(fmt.Errorf("create catalogs table: %w", err), db.Close())
	}
	return &CatalogSQLiteStore{db: db, path: path, key: key, log: log.Named("store")}, nil
}

// Load reads the catalog row. No row gives an empty catalog; a query or
// decode failure is logged and also gives an empty catalog.
func (s *CatalogSQLiteStore) Load() domain.Catalog {
	s.mu.Lock()
	defer s.mu.Unlock()

	var body string
	err := s.db.QueryRow(`SELECT body FROM catalogs WHERE key = ?`, s.key).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		s.log.Debug("No catalog row", zap.String("path", s.path), zap.String("key", s.key))
		return domain.Catalog{}
	}
	if err != nil {
		s.log.Warn("Failed to load catalog, starting empty",
			zap.String("path", s.path), zap.String("key", s.key), zap.Error(err))
		return domain.Catalog{}
	}

	var c domain.Catalog
	if err := json.Unmarshal([]byte(body), &c); err != nil {
		s.log.Warn("Malformed catalog row, starting empty",
			zap.String("path", s.path), zap.String("key", s.key), zap.Error(err))
		return domain.Catalog{}
	}
	return c
}

// Save upserts the serialized catalog into its row.
func (s *CatalogSQLiteStore) Save(c domain.Catalog) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	body, err := json.Marshal(c)
	if err != nil {
		return &domain.StorageError{Op: "save", Path: s.location(), Err: err}
	}
	if _, err := s.db.Exec(upsertCatalog, s.key, string(body), time.Now().Unix()); err != nil {
		return &domain.StorageError{Op: "save", Path: s.location(), Err: err}
	}
	s.log.Debug("Catalog saved", zap.String("path", s.path), zap.String("key", s.key))
	return nil
}

// Close closes the database handle.
func (s *CatalogSQLiteStore) Close() error {
	return s.db.Close()
}

func (s *CatalogSQLiteStore) location() string { return s.path + "#" + s.key }

// Compile-time assertion that CatalogSQLiteStore implements domain.CatalogStore.
var _ domain.CatalogStore = (*CatalogSQLiteStore)(nil)
