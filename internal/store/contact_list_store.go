package store

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"addressbook/internal/domain"
)

// ContactListFileStore reads and writes the legacy single-book file: a bare
// JSON array of contacts.
type ContactListFileStore struct {
	path string
	log  *zap.Logger
	mu   sync.Mutex
}

// NewContactListFileStore returns a ContactListFileStore for path.
func NewContactListFileStore(path string, log *zap.Logger) *ContactListFileStore {
	if log == nil {
		log = zap.NewNop()
	}
	return &ContactListFileStore{path: path, log: log.Named("legacy")}
}

// Load returns the stored contacts, or an empty list when the file is
// missing or malformed.
func (s *ContactListFileStore) Load() []domain.Contact {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Save replaces the file with contacts.
func (s *ContactListFileStore) Save(contacts []domain.Contact) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(contacts)
}

// DeleteAt removes the contact at index. An index outside the list returns
// domain.ErrInvalidIndex and leaves the file untouched.
func (s *ContactListFileStore) DeleteAt(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	contacts := s.load()
	if index < 0 || index >= len(contacts) {
		return fmt.Errorf("%w: %d (have %d)", domain.ErrInvalidIndex, index, len(contacts))
	}
	contacts = append(contacts[:index], contacts[index+1:]...)
	return s.save(contacts)
}

func (s *ContactListFileStore) load() []domain.Contact {
	var contacts []domain.Contact
	if _, err := readJSON(s.path, &contacts); err != nil {
		s.log.Warn("Failed to load contacts", zap.String("path", s.path), zap.Error(err))
		return []domain.Contact{}
	}
	if contacts == nil {
		contacts = []domain.Contact{}
	}
	return contacts
}

func (s *ContactListFileStore) save(contacts []domain.Contact) error {
	if contacts == nil {
		contacts = []domain.Contact{}
	}
	if err := writeJSON(s.path, contacts, 0o600); err != nil {
		return &domain.StorageError{Op: "save", Path: s.path, Err: err}
	}
	return nil
}

// Compile-time assertion that ContactListFileStore implements domain.ContactListStore.
var _ domain.ContactListStore = (*ContactListFileStore)(nil)
