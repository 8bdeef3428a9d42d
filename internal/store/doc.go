// Package store provides persistence for the address book catalog.
//
// It contains concrete implementations of the domain storage interfaces.
// Every implementation treats the catalog as one blob: Load reads all of it,
// Save replaces all of it. All methods are concurrency-safe via internal
// locking.
//
// The package includes:
//   - CatalogFileStore: the catalog as a JSON file, replaced atomically
//   - CatalogSQLiteStore: the same JSON blob held in a SQLite row
//   - ContactListFileStore: the legacy single-book contact list file
package store
