package app

import (
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"addressbook/internal/domain"
	"addressbook/internal/logging"
	"addressbook/internal/services/addressbook"
	"addressbook/internal/store"
)

// Wire bundles the logger, store and service for the CLI.
type Wire struct {
	Config *Config
	Log    *zap.Logger
	Store  domain.CatalogStore
	Books  *addressbook.Service
}

// NewWire constructs the dependency graph from cfg. The catalog is loaded
// here, once.
func NewWire(cfg *Config) (*Wire, error) {
	if err := cfg.Normalize(); err != nil {
		return nil, err
	}

	log, err := logging.New(cfg.Logging.Mode, cfg.Logging.Level)
	if err != nil {
		return nil, err
	}

	var catalogStore domain.CatalogStore
	switch cfg.Store.Backend {
	case BackendSQLite:
		s, err := store.OpenCatalogSQLiteStore(cfg.Store.Path, cfg.Store.Key, log)
		if err != nil {
			return nil, err
		}
		catalogStore = s
	default:
		catalogStore = store.NewCatalogFileStore(cfg.Store.Path, log)
	}
	log.Debug("Store selected",
		zap.String("backend", cfg.Store.Backend), zap.String("path", cfg.Store.Path))

	return &Wire{
		Config: cfg,
		Log:    log,
		Store:  catalogStore,
		Books:  addressbook.New(catalogStore, log),
	}, nil
}

// LegacyStore opens the legacy single-book contact list at path.
func (w *Wire) LegacyStore(path string) domain.ContactListStore {
	return store.NewContactListFileStore(path, w.Log)
}

// Close releases the store.
func (w *Wire) Close() error {
	var err error
	if w.Store != nil {
		err = multierr.Append(err, w.Store.Close())
	}
	if w.Log != nil {
		_ = w.Log.Sync() // stderr sync fails on some terminals
	}
	return err
}
