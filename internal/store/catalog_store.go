package store

import (
	"sync"

	"go.uber.org/zap"

	"addressbook/internal/domain"
)

// CatalogFileStore persists the whole catalog as one JSON file.
type CatalogFileStore struct {
	path string
	log  *zap.Logger
	mu   sync.Mutex
}

// NewCatalogFileStore returns a CatalogFileStore writing to path.
// A nil logger discards load warnings.
func NewCatalogFileStore(path string, log *zap.Logger) *CatalogFileStore {
	if log == nil {
		log = zap.NewNop()
	}
	return &CatalogFileStore{path: path, log: log.Named("store")}
}

// Path returns the backing file location.
func (s *CatalogFileStore) Path() string { return s.path }

// Load reads the catalog. A missing file gives an empty catalog; an
// unreadable or malformed one is logged and also gives an empty catalog.
func (s *CatalogFileStore) Load() domain.Catalog {
	s.mu.Lock()
	defer s.mu.Unlock()

	var c domain.Catalog
	found, err := readJSON(s.path, &c)
	if err != nil {
		s.log.Warn("Failed to load catalog, starting empty",
			zap.String("path", s.path), zap.Error(err))
		return domain.Catalog{}
	}
	if !found {
		s.log.Debug("No catalog on disk", zap.String("path", s.path))
		return domain.Catalog{}
	}
	s.log.Debug("Catalog loaded",
		zap.String("path", s.path), zap.Int("books", len(c.Books)))
	return c
}

// Save replaces the file with the serialized catalog.
func (s *CatalogFileStore) Save(c domain.Catalog) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := writeJSON(s.path, c, 0o600); err != nil {
		return &domain.StorageError{Op: "save", Path: s.path, Err: err}
	}
	s.log.Debug("Catalog saved", zap.String("path", s.path))
	return nil
}

// Close is a no-op; files are not held open between calls.
func (s *CatalogFileStore) Close() error { return nil }

// Compile-time assertion that CatalogFileStore implements domain.CatalogStore.
var _ domain.CatalogStore = (*CatalogFileStore)(nil)
