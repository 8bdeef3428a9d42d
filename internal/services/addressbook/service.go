package addressbook

import (
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/text/collate"

	"addressbook/internal/domain"
	"addressbook/internal/logging"
)

// Service is the address book manager. It owns the in-memory catalog and
// writes it through to its store after every mutation.
type Service struct {
	store   domain.CatalogStore
	log     *zap.Logger
	catalog domain.Catalog
	col     *collate.Collator
	mu      sync.Mutex
}

// New loads the catalog from store and returns a Service over it.
// A nil logger discards status output.
func New(store domain.CatalogStore, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		store:   store,
		log:     log.Named("addressbook"),
		catalog: store.Load(),
		col:     newCollator(),
	}
}

// CreateBook adds an empty book called name and saves. It reports false,
// without error, when the book already exists.
func (s *Service) CreateBook(name string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.catalog.Book(name) != nil {
		s.log.Info("Address book already exists", zap.String("book", name))
		return false, nil
	}
	s.catalog.AddBook(name)
	if err := s.persist(); err != nil {
		return false, err
	}
	s.log.Info("Address book created", zap.String("book", name))
	return true, nil
}

// Books returns the book names in creation order.
func (s *Service) Books() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog.Names()
}

// ValidateContact applies the field rules to c. See ValidateContact.
func (s *Service) ValidateContact(c domain.Contact) error {
	return ValidateContact(c)
}

// AddContact validates c and appends it to book, rejecting a second contact
// with the same first and last name.
func (s *Service) AddContact(book string, c domain.Contact) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.add(book, c); err != nil {
		return err
	}
	if err := s.persist(); err != nil {
		return err
	}
	s.log.Info("Contact added", logging.Contact(book, c.FirstName, c.LastName)...)
	return nil
}

func (s *Service) add(book string, c domain.Contact) error {
	b, err := s.book(book)
	if err != nil {
		return err
	}
	if err := ValidateContact(c); err != nil {
		s.log.Warn("Invalid contact", append(logging.Contact(book, c.FirstName, c.LastName),
			zap.Error(unwrapValidation(err)))...)
		return err
	}
	if b.Index(c.FirstName, c.LastName) >= 0 {
		s.log.Warn("Duplicate contact", logging.Contact(book, c.FirstName, c.LastName)...)
		return fmt.Errorf("%w: %s in %q", domain.ErrDuplicateContact, c.FullName(), book)
	}
	b.Contacts = append(b.Contacts, c)
	return nil
}

// ViewContacts returns a copy of book's contacts in stored order.
func (s *Service) ViewContacts(book string) ([]domain.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := s.book(book)
	if err != nil {
		return nil, err
	}
	return append([]domain.Contact{}, b.Contacts...), nil
}

// EditContact overwrites the fields set in update on the contact named
// (firstName, lastName). Edited values are not re-validated.
func (s *Service) EditContact(book, firstName, lastName string, update domain.ContactUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, i, err := s.contact(book, firstName, lastName)
	if err != nil {
		return err
	}
	update.Apply(&b.Contacts[i])
	if err := s.persist(); err != nil {
		return err
	}
	s.log.Info("Contact updated", logging.Contact(book, firstName, lastName)...)
	return nil
}

// DeleteContact removes the contact named exactly (firstName, lastName).
func (s *Service) DeleteContact(book, firstName, lastName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, i, err := s.contact(book, firstName, lastName)
	if err != nil {
		return err
	}
	b.Contacts = append(b.Contacts[:i], b.Contacts[i+1:]...)
	if err := s.persist(); err != nil {
		return err
	}
	s.log.Info("Contact deleted", logging.Contact(book, firstName, lastName)...)
	return nil
}

// DeleteContactAt removes the contact at position index of book. An index
// out of range returns domain.ErrInvalidIndex, which is not a reported
// outcome.
func (s *Service) DeleteContactAt(book string, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := s.book(book)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(b.Contacts) {
		return fmt.Errorf("%w: %d (book %q has %d contacts)",
			domain.ErrInvalidIndex, index, book, len(b.Contacts))
	}
	c := b.Contacts[index]
	b.Contacts = append(b.Contacts[:index], b.Contacts[index+1:]...)
	if err := s.persist(); err != nil {
		return err
	}
	s.log.Info("Contact deleted", append(logging.Contact(book, c.FirstName, c.LastName),
		zap.Int("index", index))...)
	return nil
}

// CountContacts returns the number of contacts in book, or 0 when the book
// does not exist.
func (s *Service) CountContacts(book string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if b := s.catalog.Book(book); b != nil {
		return len(b.Contacts)
	}
	return 0
}

// SearchByCityOrState returns every contact, across all books, whose city or
// state equals term ignoring case. Results follow book order, then contact
// order.
func (s *Service) SearchByCityOrState(term string) []domain.Contact {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []domain.Contact{}
	for _, b := range s.catalog.Books {
		for _, c := range b.Contacts {
			if strings.EqualFold(c.City, term) || strings.EqualFold(c.State, term) {
				out = append(out, c)
			}
		}
	}
	s.log.Debug("Search complete", zap.String("term", term), zap.Int("matches", len(out)))
	return out
}

// SortContacts stably reorders book ascending by field and saves.
func (s *Service) SortContacts(book string, field domain.SortField) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !field.Valid() {
		s.log.Warn("Invalid sort field", zap.String("field", field.String()))
		return fmt.Errorf("%w: %q", domain.ErrInvalidSortField, field)
	}
	b, err := s.book(book)
	if err != nil {
		return err
	}
	sortStable(s.col, b.Contacts, field)
	if err := s.persist(); err != nil {
		return err
	}
	s.log.Info("Address book sorted", zap.String("book", book), zap.String("field", field.String()))
	return nil
}

// ImportContacts adds each contact to book under the AddContact rules and
// saves once at the end. Rejected contacts are listed in the report; only a
// missing book or a failed save is returned as an error.
func (s *Service) ImportContacts(book string, contacts []domain.Contact) (domain.ImportReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	report := domain.ImportReport{Book: book}
	if _, err := s.book(book); err != nil {
		return report, err
	}
	for _, c := range contacts {
		if err := s.add(book, c); err != nil {
			report.Rejected = append(report.Rejected, domain.ImportRejection{Contact: c, Reason: err})
			continue
		}
		report.Added++
	}
	if report.Added > 0 {
		if err := s.persist(); err != nil {
			return report, err
		}
	}
	s.log.Info("Contacts imported", zap.String("book", book),
		zap.Int("added", report.Added), zap.Int("rejected", len(report.Rejected)))
	return report, nil
}

func (s *Service) book(name string) (*domain.AddressBook, error) {
	b := s.catalog.Book(name)
	if b == nil {
		s.log.Warn("Address book not found", zap.String("book", name))
		return nil, fmt.Errorf("%w: %q", domain.ErrBookNotFound, name)
	}
	return b, nil
}

func (s *Service) contact(book, firstName, lastName string) (*domain.AddressBook, int, error) {
	b, err := s.book(book)
	if err != nil {
		return nil, -1, err
	}
	i := b.Index(firstName, lastName)
	if i < 0 {
		s.log.Warn("Contact not found", logging.Contact(book, firstName, lastName)...)
		return nil, -1, fmt.Errorf("%w: %s %s in %q", domain.ErrContactNotFound, firstName, lastName, book)
	}
	return b, i, nil
}

func (s *Service) persist() error {
	if err := s.store.Save(s.catalog); err != nil {
		s.log.Error("Failed to save catalog", zap.Error(err))
		return err
	}
	return nil
}

// unwrapValidation drops the offending value so phone and email never reach
// the log.
func unwrapValidation(err error) error {
	if verr, ok := err.(*domain.ValidationError); ok {
		return fmt.Errorf("%w (%s)", verr.Err, verr.Field)
	}
	return err
}

// Compile-time assertion that Service implements domain.AddressBookService.
var _ domain.AddressBookService = (*Service)(nil)
