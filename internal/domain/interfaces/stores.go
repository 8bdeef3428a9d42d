package interfaces

import domaintypes "addressbook/internal/domain/types"

// CatalogStore loads and saves the whole catalog as one blob.
//
// Load never fails: a missing location yields an empty catalog and a
// malformed one is logged and also yields an empty catalog. Save replaces the
// stored blob in full and returns a *domain.StorageError on failure.
type CatalogStore interface {
	Load() domaintypes.Catalog
	Save(catalog domaintypes.Catalog) error
	Close() error
}

// ContactListStore is the legacy single-book list file.
type ContactListStore interface {
	Load() []domaintypes.Contact
	Save(contacts []domaintypes.Contact) error
	DeleteAt(index int) error
}
